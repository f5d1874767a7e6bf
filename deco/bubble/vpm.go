// Package bubble implements the dual-phase models: VPM-B (varying
// permeability, Boyle-compensated) and RGBM (reduced gradient bubble model).
// Both share the 16-compartment ZH-L nitrogen kinetics and repurpose the
// gradient factor as a conservatism scalar.
package bubble

import (
	"github.com/deco-compare/deco-compare/deco"
	"github.com/deco-compare/deco-compare/deco/zhl"
)

// Bubble-mechanics tuning for VPM-B.
const (
	// Critical nucleus radii in micrometres: fastest compartment tolerates
	// the largest nuclei, so it gets the tightest Laplace gradient.
	radiusFastest = 1.20
	radiusSlowest = 0.35
	// crushGain scales how strongly deep exposure crushes nuclei smaller.
	crushGain = 0.05
	// boyleDamping damps the Boyle-expansion gradient reduction at shallow
	// stops.
	boyleDamping = 0.4
	// boyleFloor keeps the reduced gradient positive.
	boyleFloor = 0.2
)

// VPM is the VPM-B model.
type VPM struct {
	halfN2 []float64
}

// NewVPM returns a VPM-B instance on the shared 16-compartment half-times.
func NewVPM() *VPM {
	p, _ := zhl.VariantParams("zhl16c")
	return &VPM{halfN2: p.HalfN2}
}

// ID implements deco.Model.
func (m *VPM) ID() string {
	return "vpm"
}

// initialRadius interpolates the critical nucleus radius (micrometres)
// across compartments.
func (m *VPM) initialRadius(i int) float64 {
	n := len(m.halfN2)
	frac := 0.0
	if n > 1 {
		frac = float64(i) / float64(n-1)
	}
	return radiusFastest - (radiusFastest-radiusSlowest)*frac
}

// crushedRadius shrinks a nucleus for the deepest exposure of the dive:
// the crush grows with the exposure pressure and with compartment index.
func (m *VPM) crushedRadius(i int, pMax float64) float64 {
	n := len(m.halfN2)
	frac := 0.0
	if n > 1 {
		frac = float64(i) / float64(n-1)
	}
	crush := 1.0 + crushGain*(pMax-deco.PSurface)*(1.0+frac)
	return m.initialRadius(i) / crush
}

// allowedGradient is the Laplace supersaturation gradient in bar for a
// nucleus radius in micrometres.
func allowedGradient(radiusMicron float64) float64 {
	return 2.0 * (deco.SurfaceTension + deco.SkinCompression) / (radiusMicron * 1e-6) / 1e5
}

// boyleFactor reduces the allowed gradient at a stop for the expansion of
// bubbles formed at the first stop.
func boyleFactor(pFirstStop, pStop float64) float64 {
	if pStop <= 0 || pFirstStop <= pStop {
		return 1.0
	}
	f := 1.0 - boyleDamping*(pFirstStop/pStop-1.0)
	if f < boyleFloor {
		f = boyleFloor
	}
	return f
}

// gradients precomputes the per-compartment crushed gradients for a dive
// whose deepest pressure was pMax.
func (m *VPM) gradients(pMax float64) []float64 {
	out := make([]float64, len(m.halfN2))
	for i := range out {
		out[i] = allowedGradient(m.crushedRadius(i, pMax))
	}
	return out
}

// ceiling returns the VPM ceiling in metres at a fractional conservatism
// scalar.
func (m *VPM) ceiling(ts *deco.TissueState, gradients []float64, gf float64) float64 {
	maxP := 0.0
	for i := range ts.PN2 {
		if p := ts.PN2[i] - gradients[i]*gf; p > maxP {
			maxP = p
		}
	}
	return deco.PressureToDepth(maxP)
}

// vpmLimiter applies the Boyle-compensated, conservatism-scaled gradient at
// each stop.
type vpmLimiter struct {
	gradients []float64
	gfLow     float64
	gfHigh    float64
}

// CanAscend implements deco.AscentLimiter.
func (l *vpmLimiter) CanAscend(ts *deco.TissueState, ctx deco.StopContext) bool {
	gf := deco.GFAt(ctx.NextDepth, ctx.FirstStopDepth, l.gfLow, l.gfHigh) / 100.0
	next := ctx.NextDepth
	if next < 0 {
		next = 0
	}
	pNext := deco.DepthToPressure(next)
	pFirst := deco.DepthToPressure(ctx.FirstStopDepth)
	boyle := boyleFactor(pFirst, deco.DepthToPressure(ctx.CurrentDepth))
	for i := range ts.PN2 {
		if ts.PN2[i] > pNext+l.gradients[i]*gf*boyle {
			return false
		}
	}
	return true
}

// Run implements deco.Model.
func (m *VPM) Run(phases []deco.Phase, opts deco.Options) *deco.Result {
	opts = opts.Normalize()
	n := len(m.halfN2)
	ts := deco.NewTissueState(n)
	upd := &deco.SchreinerUpdater{HalfTimesN2: m.halfN2}
	deco.LoadPhases(ts, phases, opts.Gas, upd)

	deepest := deco.MaxPhaseDepth(phases)
	gradients := m.gradients(deco.DepthToPressure(deepest))
	ceiling := m.ceiling(ts, gradients, opts.GFLow/100.0)
	firstStop := deco.FirstStopFromCeiling(ceiling, deepest)

	res := &deco.Result{
		FirstStopDepth: firstStop,
		Ceiling:        ceiling,
		Compartments:   n,
		HalfTimes:      m.halfN2,
		MValues:        m.surfaceLimits(gradients),
	}
	if firstStop <= 0 {
		res.NoDecoLimit = true
		res.TissueLoading = append([]float64(nil), ts.PN2...)
		return res
	}

	cfg := deco.ScheduleConfig{
		FirstStopDepth: firstStop,
		LastStopDepth:  opts.LastStopDepth,
		DeepestDepth:   deepest,
		DecoAscentRate: opts.DecoAscentRate,
		Gas:            opts.Gas,
	}
	lim := &vpmLimiter{gradients: gradients, gfLow: opts.GFLow, gfHigh: opts.GFHigh}
	stops, capped := deco.RunSchedule(ts, cfg, lim, upd)
	res.DecoStops = stops
	res.CapWarning = capped
	res.TissueLoading = append([]float64(nil), ts.PN2...)
	return res
}

// surfaceLimits reports the tolerated surface pressures implied by the full
// (unscaled) gradients.
func (m *VPM) surfaceLimits(gradients []float64) []float64 {
	out := make([]float64, len(gradients))
	for i := range gradients {
		out[i] = deco.PSurface + gradients[i]
	}
	return out
}
