// Package tables implements the published-table algorithms: DSAT (RDP),
// US Navy Rev 7 air tables and BSAC '88. Lookups round the dive's maximum
// depth up to the next table row and the bottom time up to the next
// schedule; tissue loading is still simulated in parallel for display.
package tables

import "github.com/deco-compare/deco-compare/deco"

// schedule is one bottom-time column of a table row.
type schedule struct {
	maxMinutes int
	stops      []deco.DecoStop // deepest first; empty means no-stop dive
}

// row is one depth row with its schedules ordered by bottom time.
type row struct {
	depth     float64
	ndl       int
	schedules []schedule
}

// lookup resolves a (max depth, bottom time) pair against a table. Exposure
// beyond the deepest row or longest schedule is treated as omitted deco: the
// nearest schedule is taken and the overrun minutes are added to the
// shallowest stop, which keeps the lookup monotone in both depth and time.
func lookup(rows []row, maxDepth float64, bottomTime int) (row, schedule, []deco.DecoStop) {
	r := rows[len(rows)-1]
	depthOverrun := 0
	for _, cand := range rows {
		if cand.depth >= maxDepth {
			r = cand
			break
		}
	}
	if maxDepth > r.depth {
		depthOverrun = int(maxDepth - r.depth)
	}

	s := r.schedules[len(r.schedules)-1]
	timeOverrun := 0
	found := false
	for _, cand := range r.schedules {
		if cand.maxMinutes >= bottomTime {
			s = cand
			found = true
			break
		}
	}
	if !found {
		timeOverrun = bottomTime - s.maxMinutes
	}

	stops := make([]deco.DecoStop, len(s.stops))
	copy(stops, s.stops)
	extra := depthOverrun + timeOverrun
	if extra > 0 && len(stops) > 0 {
		stops[len(stops)-1].Time += extra
	}
	return r, s, stops
}

// tableResult assembles the shared Result shape for a table model: the stop
// list comes straight from the published lookup while a simple parallel
// Schreiner model supplies the display tissue loading.
func tableResult(phases []deco.Phase, opts deco.Options, halfTimes []float64, r row, s schedule, stops []deco.DecoStop, ndl int) *deco.Result {
	ts := deco.NewTissueState(len(halfTimes))
	upd := &deco.SchreinerUpdater{HalfTimesN2: halfTimes}
	deco.LoadPhases(ts, phases, opts.Gas, upd)

	firstStop := 0.0
	if len(stops) > 0 {
		firstStop = stops[0].Depth
	}
	mValues := make([]float64, len(halfTimes))
	for i := range mValues {
		mValues[i] = deco.PSurface
	}
	return &deco.Result{
		DecoStops:      stops,
		FirstStopDepth: firstStop,
		Ceiling:        firstStop,
		NoDecoLimit:    len(stops) == 0,
		Compartments:   len(halfTimes),
		HalfTimes:      halfTimes,
		MValues:        mValues,
		TissueLoading:  append([]float64(nil), ts.PN2...),
		NDL:            ndl,
		TableDepth:     r.depth,
		TableTime:      s.maxMinutes,
	}
}
