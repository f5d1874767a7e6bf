package classic

import "github.com/deco-compare/deco-compare/deco"

// Thalmann VVAL-18 asymmetric kinetics: exponential uptake, linear
// elimination while the tissue is supersaturated beyond the crossover
// threshold, exponential elimination otherwise. M-values are linear in feet
// like Workman's.
var (
	thalmannHalfTimes = []float64{5, 10, 20, 40, 80, 120, 160, 200, 240}
	thalmannM0Fsw     = []float64{102, 86, 70, 54, 52, 50, 49, 49, 48}
	thalmannDMFsw     = []float64{2.27, 2.01, 1.67, 1.34, 1.26, 1.19, 1.15, 1.10, 1.10}
)

const (
	// thalmannCrossover is the supersaturation ratio above which
	// elimination turns linear.
	thalmannCrossover = 1.05
	// thalmannElimScale stretches the elimination half-times relative to
	// uptake.
	thalmannElimScale = 2.0
)

// Thalmann is the VVAL-18 model.
type Thalmann struct{}

// NewThalmann returns the model.
func NewThalmann() *Thalmann {
	return &Thalmann{}
}

// ID implements deco.Model.
func (m *Thalmann) ID() string {
	return "thalmann"
}

// thalmannUpdater advances tissues one minute at a time so the linear
// elimination segment tracks the crossover threshold correctly.
type thalmannUpdater struct{}

// Update implements deco.TissueUpdater.
func (thalmannUpdater) Update(ts *deco.TissueState, depth float64, gas deco.GasMix, minutes int) {
	pi := deco.InspiredPressure(depth, gas.FN2())
	threshold := thalmannCrossover * deco.DepthToPressure(depth)
	for k := 0; k < minutes; k++ {
		for i := range ts.PN2 {
			p0 := ts.PN2[i]
			switch {
			case pi >= p0:
				ts.PN2[i] = deco.Schreiner(p0, pi, 1, thalmannHalfTimes[i])
			case p0 > threshold:
				rate := (p0 - threshold) / (thalmannElimScale * thalmannHalfTimes[i])
				p := p0 - rate
				if p < pi {
					p = pi
				}
				ts.PN2[i] = p
			default:
				ts.PN2[i] = deco.Schreiner(p0, pi, 1, thalmannElimScale*thalmannHalfTimes[i])
			}
		}
	}
}

func thalmannMValue(i int, depthMeters float64) float64 {
	feet := depthMeters * deco.MetersToFeet
	return (thalmannM0Fsw[i] + thalmannDMFsw[i]*feet) * deco.FswToBar
}

func thalmannCeiling(ts *deco.TissueState) float64 {
	max := 0.0
	for i, p := range ts.PN2 {
		feet := (p/deco.FswToBar - thalmannM0Fsw[i]) / thalmannDMFsw[i]
		if d := feet / deco.MetersToFeet; d > max {
			max = d
		}
	}
	return max
}

type thalmannLimiter struct{}

// CanAscend implements deco.AscentLimiter.
func (thalmannLimiter) CanAscend(ts *deco.TissueState, ctx deco.StopContext) bool {
	next := ctx.NextDepth
	if next < 0 {
		next = 0
	}
	for i, p := range ts.PN2 {
		if p > thalmannMValue(i, next) {
			return false
		}
	}
	return true
}

// Run implements deco.Model.
func (m *Thalmann) Run(phases []deco.Phase, opts deco.Options) *deco.Result {
	opts = opts.Normalize()
	n := len(thalmannHalfTimes)
	ts := deco.NewTissueState(n)
	upd := thalmannUpdater{}
	deco.LoadPhases(ts, phases, opts.Gas, upd)

	ceiling := thalmannCeiling(ts)
	deepest := deco.MaxPhaseDepth(phases)
	firstStop := deco.FirstStopFromCeiling(ceiling, deepest)

	mValues := make([]float64, n)
	for i := range mValues {
		mValues[i] = thalmannMValue(i, 0)
	}
	res := &deco.Result{
		FirstStopDepth: firstStop,
		Ceiling:        ceiling,
		Compartments:   n,
		HalfTimes:      thalmannHalfTimes,
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
	stops, capped := deco.RunSchedule(ts, cfg, thalmannLimiter{}, upd)
	res.DecoStops = stops
	res.CapWarning = capped
	res.TissueLoading = append([]float64(nil), ts.PN2...)
	return res
}
