package classic

import "github.com/deco-compare/deco-compare/deco"

// Workman's nine-compartment linear M-value model. M0 is the tolerated
// tissue pressure at the surface in feet of seawater; dM is its slope per
// foot of depth.
var (
	workmanHalfTimes = []float64{5, 10, 20, 40, 80, 120, 160, 200, 240}
	workmanM0Fsw     = []float64{104, 88, 72, 56, 54, 52, 51, 51, 50}
	workmanDMFsw     = []float64{2.27, 2.01, 1.67, 1.34, 1.26, 1.19, 1.15, 1.10, 1.10}
)

// Workman is the 1965 US Navy M-value model.
type Workman struct{}

// NewWorkman returns the model.
func NewWorkman() *Workman {
	return &Workman{}
}

// ID implements deco.Model.
func (m *Workman) ID() string {
	return "workman"
}

// workmanMValue is the tolerated tissue pressure in bar at a depth in
// metres for compartment i.
func workmanMValue(i int, depthMeters float64) float64 {
	feet := depthMeters * deco.MetersToFeet
	return (workmanM0Fsw[i] + workmanDMFsw[i]*feet) * deco.FswToBar
}

// workmanCeiling is the depth at which the compartment pressure equals its
// M-value.
func workmanCeiling(ts *deco.TissueState) float64 {
	max := 0.0
	for i, p := range ts.PN2 {
		feet := (p/deco.FswToBar - workmanM0Fsw[i]) / workmanDMFsw[i]
		if d := feet / deco.MetersToFeet; d > max {
			max = d
		}
	}
	return max
}

type workmanLimiter struct{}

// CanAscend implements deco.AscentLimiter.
func (workmanLimiter) CanAscend(ts *deco.TissueState, ctx deco.StopContext) bool {
	next := ctx.NextDepth
	if next < 0 {
		next = 0
	}
	for i, p := range ts.PN2 {
		if p > workmanMValue(i, next) {
			return false
		}
	}
	return true
}

// Run implements deco.Model.
func (m *Workman) Run(phases []deco.Phase, opts deco.Options) *deco.Result {
	opts = opts.Normalize()
	n := len(workmanHalfTimes)
	ts := deco.NewTissueState(n)
	upd := &deco.SchreinerUpdater{HalfTimesN2: workmanHalfTimes}
	deco.LoadPhases(ts, phases, opts.Gas, upd)

	ceiling := workmanCeiling(ts)
	deepest := deco.MaxPhaseDepth(phases)
	firstStop := deco.FirstStopFromCeiling(ceiling, deepest)

	mValues := make([]float64, n)
	for i := range mValues {
		mValues[i] = workmanMValue(i, 0)
	}
	res := &deco.Result{
		FirstStopDepth: firstStop,
		Ceiling:        ceiling,
		Compartments:   n,
		HalfTimes:      workmanHalfTimes,
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
	stops, capped := deco.RunSchedule(ts, cfg, workmanLimiter{}, upd)
	res.DecoStops = stops
	res.CapWarning = capped
	res.TissueLoading = append([]float64(nil), ts.PN2...)
	return res
}
