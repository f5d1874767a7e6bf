// Package zhl implements the Bühlmann ZH-L family with gradient factors:
// tabulated 16-compartment variants (A/B/C) and derived 12/8/6-compartment
// sets, trimix-aware via tissue-pressure-weighted a/b combination, with
// multi-gas deco switching.
package zhl

import (
	"github.com/deco-compare/deco-compare/deco"
)

// Buhlmann runs one ZH-L variant against the shared Model contract.
type Buhlmann struct {
	p Params
}

// New returns the model for a variant identifier, defaulting to ZH-L16C for
// unknown variants.
func New(variant string) *Buhlmann {
	p, ok := VariantParams(variant)
	if !ok {
		p = variants["zhl16c"]
	}
	return &Buhlmann{p: p}
}

// ID implements deco.Model.
func (m *Buhlmann) ID() string {
	return m.p.Variant
}

// combinedAB weights the nitrogen and helium coefficients by the tissue
// partial pressures. A compartment with no inert-gas loading falls back to
// the pure-nitrogen pair.
func (m *Buhlmann) combinedAB(i int, pN2, pHe float64) (float64, float64) {
	total := pN2 + pHe
	if total <= 0 {
		return m.p.A[i], m.p.B[i]
	}
	a := (m.p.A[i]*pN2 + m.p.AHe[i]*pHe) / total
	b := (m.p.B[i]*pN2 + m.p.BHe[i]*pHe) / total
	return a, b
}

// mValue is the tolerated tissue pressure at ambient pressure pAmb.
func mValue(a, b, pAmb float64) float64 {
	return a + pAmb/b
}

// allowedPressure scales the supersaturation gradient by the gradient
// factor (fractional).
func allowedPressure(pAmb, a, b, gf float64) float64 {
	return pAmb + (mValue(a, b, pAmb)-pAmb)*gf
}

// ceilingPressure is the closed-form smallest ambient pressure at which the
// tissue pressure stays within the gf-scaled limit.
func ceilingPressure(pTotal, a, b, gf float64) float64 {
	return (pTotal - a*gf) / (gf/b - gf + 1.0)
}

// Ceiling returns the current ceiling in metres at a fractional gradient
// factor.
func (m *Buhlmann) Ceiling(ts *deco.TissueState, gf float64) float64 {
	maxP := 0.0
	for i := range ts.PN2 {
		a, b := m.combinedAB(i, ts.PN2[i], ts.PHe[i])
		if p := ceilingPressure(ts.PN2[i]+ts.PHe[i], a, b, gf); p > maxP {
			maxP = p
		}
	}
	return deco.PressureToDepth(maxP)
}

// surfaceMValues reports the pure-nitrogen tolerated pressures at the
// surface.
func (m *Buhlmann) surfaceMValues() []float64 {
	out := make([]float64, len(m.p.A))
	for i := range m.p.A {
		out[i] = mValue(m.p.A[i], m.p.B[i], deco.PSurface)
	}
	return out
}

// gfLimiter is the per-stop ascent predicate: the gradient factor is
// interpolated from gfLow at the first stop to gfHigh at the surface.
type gfLimiter struct {
	m      *Buhlmann
	gfLow  float64
	gfHigh float64
}

// CanAscend implements deco.AscentLimiter.
func (l *gfLimiter) CanAscend(ts *deco.TissueState, ctx deco.StopContext) bool {
	gf := deco.GFAt(ctx.NextDepth, ctx.FirstStopDepth, l.gfLow, l.gfHigh) / 100.0
	next := ctx.NextDepth
	if next < 0 {
		next = 0
	}
	pNext := deco.DepthToPressure(next)
	for i := range ts.PN2 {
		a, b := l.m.combinedAB(i, ts.PN2[i], ts.PHe[i])
		if ts.PN2[i]+ts.PHe[i] > allowedPressure(pNext, a, b, gf) {
			return false
		}
	}
	return true
}

// Run implements deco.Model.
func (m *Buhlmann) Run(phases []deco.Phase, opts deco.Options) *deco.Result {
	opts = opts.Normalize()
	n := len(m.p.HalfN2)
	ts := deco.NewTissueState(n)
	upd := &deco.SchreinerUpdater{HalfTimesN2: m.p.HalfN2, HalfTimesHe: m.p.HalfHe}
	deco.LoadPhases(ts, phases, opts.Gas, upd)

	ceiling := m.Ceiling(ts, opts.GFLow/100.0)
	deepest := deco.MaxPhaseDepth(phases)
	firstStop := deco.FirstStopFromCeiling(ceiling, deepest)

	res := &deco.Result{
		FirstStopDepth: firstStop,
		Ceiling:        ceiling,
		Compartments:   n,
		HalfTimes:      m.p.HalfN2,
		MValues:        m.surfaceMValues(),
	}
	if firstStop <= 0 {
		res.NoDecoLimit = true
		res.TissueLoading = append([]float64(nil), ts.PN2...)
		res.HeLoading = append([]float64(nil), ts.PHe...)
		return res
	}

	gasPlan := deco.NewGasPlan(opts.Gas, opts.GasSwitches)
	cfg := deco.ScheduleConfig{
		FirstStopDepth: firstStop,
		LastStopDepth:  opts.LastStopDepth,
		DeepestDepth:   deepest,
		DecoAscentRate: opts.DecoAscentRate,
		Gas:            opts.Gas,
		GasAt:          gasPlan.ActiveAt,
		GasSwitchTime:  opts.GasSwitchTime,
	}
	stops, capped := deco.RunSchedule(ts, cfg, &gfLimiter{m: m, gfLow: opts.GFLow, gfHigh: opts.GFHigh}, upd)
	res.DecoStops = stops
	res.CapWarning = capped
	res.TissueLoading = append([]float64(nil), ts.PN2...)
	res.HeLoading = append([]float64(nil), ts.PHe...)
	return res
}
