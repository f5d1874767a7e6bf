package classic

import "github.com/deco-compare/deco-compare/deco"

// DCIEM four-compartment serial model (Kidd-Stubbs lineage): only the first
// compartment sees the alveolar inspired pressure; each later compartment is
// fed by the arithmetic mean of the previous compartment's pre- and
// post-update pressures.
var (
	dciemHalfTimes = []float64{21, 21, 21, 21}
	dciemRatios    = []float64{2.3, 1.9, 1.6, 1.4}
)

const (
	dciemSafetyFactor = 0.9
	// dciemAscentPenalty stretches ascent-phase durations.
	dciemAscentPenalty = 1.1
)

// DCIEM is the serial-compartment model.
type DCIEM struct{}

// NewDCIEM returns the model.
func NewDCIEM() *DCIEM {
	return &DCIEM{}
}

// ID implements deco.Model.
func (m *DCIEM) ID() string {
	return "dciem"
}

// dciemUpdater advances the serial chain one minute at a time: the mean of a
// compartment's pre- and post-update pressures becomes the next
// compartment's inspired input.
type dciemUpdater struct{}

// Update implements deco.TissueUpdater.
func (dciemUpdater) Update(ts *deco.TissueState, depth float64, gas deco.GasMix, minutes int) {
	for k := 0; k < minutes; k++ {
		feed := deco.InspiredPressure(depth, gas.FN2())
		for i := range ts.PN2 {
			pre := ts.PN2[i]
			post := deco.Schreiner(pre, feed, 1, dciemHalfTimes[i])
			ts.PN2[i] = post
			feed = (pre + post) / 2.0
		}
	}
}

func dciemCeiling(ts *deco.TissueState) float64 {
	max := 0.0
	for i, p := range ts.PN2 {
		if d := deco.PressureToDepth(p / (dciemRatios[i] * dciemSafetyFactor)); d > max {
			max = d
		}
	}
	return max
}

type dciemLimiter struct{}

// CanAscend implements deco.AscentLimiter.
func (dciemLimiter) CanAscend(ts *deco.TissueState, ctx deco.StopContext) bool {
	next := ctx.NextDepth
	if next < 0 {
		next = 0
	}
	pNext := deco.DepthToPressure(next)
	for i, p := range ts.PN2 {
		if p > dciemRatios[i]*dciemSafetyFactor*pNext {
			return false
		}
	}
	return true
}

// penalizeAscents stretches ascent-phase durations by the DCIEM ascent
// penalty before tissue loading.
func penalizeAscents(phases []deco.Phase) []deco.Phase {
	out := make([]deco.Phase, len(phases))
	copy(out, phases)
	for i := range out {
		if out[i].Action == deco.ActionAscend {
			penalized := float64(out[i].Duration) * dciemAscentPenalty
			out[i].Duration = int(penalized + 0.5)
		}
	}
	return out
}

// Run implements deco.Model.
func (m *DCIEM) Run(phases []deco.Phase, opts deco.Options) *deco.Result {
	opts = opts.Normalize()
	n := len(dciemHalfTimes)
	ts := deco.NewTissueState(n)
	upd := dciemUpdater{}
	deco.LoadPhases(ts, penalizeAscents(phases), opts.Gas, upd)

	ceiling := dciemCeiling(ts)
	deepest := deco.MaxPhaseDepth(phases)
	firstStop := deco.FirstStopFromCeiling(ceiling, deepest)

	mValues := make([]float64, n)
	for i := range mValues {
		mValues[i] = dciemRatios[i] * dciemSafetyFactor * deco.PSurface
	}
	res := &deco.Result{
		FirstStopDepth: firstStop,
		Ceiling:        ceiling,
		Compartments:   n,
		HalfTimes:      dciemHalfTimes,
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
	stops, capped := deco.RunSchedule(ts, cfg, dciemLimiter{}, upd)
	res.DecoStops = stops
	res.CapWarning = capped
	res.TissueLoading = append([]float64(nil), ts.PN2...)
	return res
}
