// Package classic implements the historical dissolved-gas models: Haldane's
// 1908 2:1 ratio, Workman's 1965 linear M-values, the Thalmann VVAL-18
// asymmetric-kinetics model and the DCIEM serial-compartment model.
package classic

import "github.com/deco-compare/deco-compare/deco"

// Haldane's five-compartment 2:1 supersaturation-ratio model.
type Haldane struct{}

var haldaneHalfTimes = []float64{5, 10, 20, 40, 75}

const haldaneRatio = 2.0

// NewHaldane returns the 1908 model.
func NewHaldane() *Haldane {
	return &Haldane{}
}

// ID implements deco.Model.
func (m *Haldane) ID() string {
	return "haldane"
}

// ceiling converts the worst compartment's tolerated ambient pressure to a
// depth: each compartment tolerates twice the ambient pressure.
func (m *Haldane) ceiling(ts *deco.TissueState) float64 {
	max := 0.0
	for _, p := range ts.PN2 {
		if d := (p/haldaneRatio - deco.PSurface) * 10.0; d > max {
			max = d
		}
	}
	return max
}

type haldaneLimiter struct{}

// CanAscend implements deco.AscentLimiter.
func (haldaneLimiter) CanAscend(ts *deco.TissueState, ctx deco.StopContext) bool {
	next := ctx.NextDepth
	if next < 0 {
		next = 0
	}
	limit := haldaneRatio * deco.DepthToPressure(next)
	for _, p := range ts.PN2 {
		if p > limit {
			return false
		}
	}
	return true
}

// Run implements deco.Model.
func (m *Haldane) Run(phases []deco.Phase, opts deco.Options) *deco.Result {
	opts = opts.Normalize()
	n := len(haldaneHalfTimes)
	ts := deco.NewTissueState(n)
	upd := &deco.SchreinerUpdater{HalfTimesN2: haldaneHalfTimes}
	deco.LoadPhases(ts, phases, opts.Gas, upd)

	ceiling := m.ceiling(ts)
	deepest := deco.MaxPhaseDepth(phases)
	firstStop := deco.FirstStopFromCeiling(ceiling, deepest)

	mValues := make([]float64, n)
	for i := range mValues {
		mValues[i] = haldaneRatio * deco.PSurface
	}
	res := &deco.Result{
		FirstStopDepth: firstStop,
		Ceiling:        ceiling,
		Compartments:   n,
		HalfTimes:      haldaneHalfTimes,
		MValues:        mValues,
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
	stops, capped := deco.RunSchedule(ts, cfg, haldaneLimiter{}, upd)
	res.DecoStops = stops
	res.CapWarning = capped
	res.TissueLoading = append([]float64(nil), ts.PN2...)
	return res
}
