package bubble

import (
	"github.com/deco-compare/deco-compare/deco"
	"github.com/deco-compare/deco-compare/deco/zhl"
)

// RGBM reduction tuning.
const (
	seedGrowthGain  = 0.02
	seedDecay       = 0.98
	seedThresholdLo = 0.5
	seedThresholdHi = 0.8
	compReduction   = 0.15
	timeHalfDay     = 1440.0
	timeFloor       = 0.75
	// ambientGuard bounds the allowed pressure below at 1.01 * P_amb.
	ambientGuard = 1.01
)

// RGBM is the reduced gradient bubble model: ZH-L16C dissolved-gas kinetics
// augmented with a per-compartment bubble-seed phase, with the effective
// M-value gradient reduced by ascent-rate, depth, dive-time and compartment
// factors.
type RGBM struct {
	p zhl.Params
}

// NewRGBM returns an RGBM instance.
func NewRGBM() *RGBM {
	p, _ := zhl.VariantParams("zhl16c")
	return &RGBM{p: p}
}

// ID implements deco.Model.
func (m *RGBM) ID() string {
	return "rgbm"
}

// seedThreshold is the supersaturation (bar) above which a compartment
// nucleates bubble seeds; slower compartments tolerate more before seeding.
func (m *RGBM) seedThreshold(i int) float64 {
	tauMax := m.p.HalfN2[len(m.p.HalfN2)-1]
	return seedThresholdLo + (seedThresholdHi-seedThresholdLo)*m.p.HalfN2[i]/tauMax
}

// rgbmUpdater advances the dissolved phase with Schreiner kinetics and grows
// or decays the bubble-seed phase from the post-update supersaturation.
type rgbmUpdater struct {
	m     *RGBM
	inner *deco.SchreinerUpdater
	seeds []float64
}

// Update implements deco.TissueUpdater.
func (u *rgbmUpdater) Update(ts *deco.TissueState, depth float64, gas deco.GasMix, minutes int) {
	if minutes <= 0 {
		return
	}
	u.inner.Update(ts, depth, gas, minutes)
	pAmb := deco.DepthToPressure(depth)
	for i := range ts.PN2 {
		supersat := ts.PN2[i] - pAmb
		if excess := supersat - u.m.seedThreshold(i); excess > 0 {
			u.seeds[i] += excess * float64(minutes) * seedGrowthGain
		} else {
			for k := 0; k < minutes; k++ {
				u.seeds[i] *= seedDecay
			}
		}
	}
}

// reductionFactor combines the four RGBM multipliers with the bubble-seed
// reduction for one compartment.
func (m *RGBM) reductionFactor(i int, ascentRate, maxDepth float64, totalMinutes int, seeds []float64) float64 {
	fAscent := 1.0
	switch {
	case ascentRate > 18:
		fAscent = 0.8
	case ascentRate > 10:
		fAscent = 0.9
	}
	fDepth := 1.0
	switch {
	case maxDepth > 40:
		fDepth = 0.85
	case maxDepth >= 18:
		fDepth = 0.9
	}
	fTime := 1.0 - float64(totalMinutes)/timeHalfDay
	if fTime < timeFloor {
		fTime = timeFloor
	}
	fComp := 1.0
	if n := len(m.p.HalfN2); n > 1 {
		fComp = 1.0 - compReduction*float64(i)/float64(n-1)
	}
	fBubble := 1.0 / (1.0 + seeds[i])
	return fAscent * fDepth * fTime * fComp * fBubble
}

// ceiling solves each compartment's ceiling pressure under the reduced
// gradient, honouring the ambient-pressure guard.
func (m *RGBM) ceiling(ts *deco.TissueState, gf float64, factors []float64) float64 {
	maxP := 0.0
	for i := range ts.PN2 {
		p := ts.PN2[i]
		g := gf * factors[i]
		a, b := m.p.A[i], m.p.B[i]
		byGradient := (p - a*g) / (g/b - g + 1.0)
		byGuard := p / ambientGuard
		ceil := byGradient
		if byGuard < ceil {
			ceil = byGuard
		}
		if ceil > maxP {
			maxP = ceil
		}
	}
	return deco.PressureToDepth(maxP)
}

// rgbmLimiter is the per-stop predicate under the reduced gradient.
type rgbmLimiter struct {
	m       *RGBM
	gfLow   float64
	gfHigh  float64
	factors []float64
}

// CanAscend implements deco.AscentLimiter.
func (l *rgbmLimiter) CanAscend(ts *deco.TissueState, ctx deco.StopContext) bool {
	gf := deco.GFAt(ctx.NextDepth, ctx.FirstStopDepth, l.gfLow, l.gfHigh) / 100.0
	next := ctx.NextDepth
	if next < 0 {
		next = 0
	}
	pNext := deco.DepthToPressure(next)
	for i := range ts.PN2 {
		a, b := l.m.p.A[i], l.m.p.B[i]
		g := gf * l.factors[i]
		allowed := pNext + (a+pNext/b-pNext)*g
		if guard := ambientGuard * pNext; guard > allowed {
			allowed = guard
		}
		if ts.PN2[i] > allowed {
			return false
		}
	}
	return true
}

// Run implements deco.Model.
func (m *RGBM) Run(phases []deco.Phase, opts deco.Options) *deco.Result {
	opts = opts.Normalize()
	n := len(m.p.HalfN2)
	ts := deco.NewTissueState(n)
	upd := &rgbmUpdater{
		m:     m,
		inner: &deco.SchreinerUpdater{HalfTimesN2: m.p.HalfN2},
		seeds: make([]float64, n),
	}
	deco.LoadPhases(ts, phases, opts.Gas, upd)

	deepest := deco.MaxPhaseDepth(phases)
	total := deco.TotalPhaseMinutes(phases)
	factors := make([]float64, n)
	for i := range factors {
		factors[i] = m.reductionFactor(i, opts.AscentRate, deepest, total, upd.seeds)
	}

	ceiling := m.ceiling(ts, opts.GFLow/100.0, factors)
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
		return res
	}

	cfg := deco.ScheduleConfig{
		FirstStopDepth: firstStop,
		LastStopDepth:  opts.LastStopDepth,
		DeepestDepth:   deepest,
		DecoAscentRate: opts.DecoAscentRate,
		Gas:            opts.Gas,
	}
	lim := &rgbmLimiter{m: m, gfLow: opts.GFLow, gfHigh: opts.GFHigh, factors: factors}
	stops, capped := deco.RunSchedule(ts, cfg, lim, upd)
	res.DecoStops = stops
	res.CapWarning = capped
	res.TissueLoading = append([]float64(nil), ts.PN2...)
	return res
}

func (m *RGBM) surfaceMValues() []float64 {
	out := make([]float64, len(m.p.A))
	for i := range m.p.A {
		out[i] = m.p.A[i] + deco.PSurface/m.p.B[i]
	}
	return out
}
