package tables

import "github.com/deco-compare/deco-compare/deco"

// US Navy Rev 7 air decompression table, metric subset. Stops are at 3 m
// intervals, shallowest last in run order but stored deepest first.
var usnavyRows = []row{
	{depth: 12, ndl: 163, schedules: []schedule{
		{163, nil},
		{180, []deco.DecoStop{{Depth: 3, Time: 5}}},
		{200, []deco.DecoStop{{Depth: 3, Time: 10}}},
	}},
	{depth: 15, ndl: 92, schedules: []schedule{
		{92, nil},
		{120, []deco.DecoStop{{Depth: 3, Time: 10}}},
		{140, []deco.DecoStop{{Depth: 3, Time: 21}}},
	}},
	{depth: 18, ndl: 63, schedules: []schedule{
		{63, nil},
		{80, []deco.DecoStop{{Depth: 3, Time: 14}}},
		{100, []deco.DecoStop{{Depth: 3, Time: 31}}},
	}},
	{depth: 21, ndl: 48, schedules: []schedule{
		{48, nil},
		{60, []deco.DecoStop{{Depth: 3, Time: 14}}},
		{80, []deco.DecoStop{{Depth: 3, Time: 36}}},
	}},
	{depth: 24, ndl: 39, schedules: []schedule{
		{39, nil},
		{50, []deco.DecoStop{{Depth: 3, Time: 16}}},
		{70, []deco.DecoStop{{Depth: 3, Time: 44}}},
		{90, []deco.DecoStop{{Depth: 6, Time: 2}, {Depth: 3, Time: 63}}},
	}},
	{depth: 27, ndl: 33, schedules: []schedule{
		{33, nil},
		{40, []deco.DecoStop{{Depth: 3, Time: 11}}},
		{60, []deco.DecoStop{{Depth: 3, Time: 36}}},
		{80, []deco.DecoStop{{Depth: 6, Time: 3}, {Depth: 3, Time: 59}}},
	}},
	{depth: 30, ndl: 25, schedules: []schedule{
		{25, nil},
		{40, []deco.DecoStop{{Depth: 3, Time: 22}}},
		{60, []deco.DecoStop{{Depth: 6, Time: 3}, {Depth: 3, Time: 49}}},
	}},
	{depth: 33, ndl: 20, schedules: []schedule{
		{20, nil},
		{30, []deco.DecoStop{{Depth: 3, Time: 14}}},
		{50, []deco.DecoStop{{Depth: 6, Time: 6}, {Depth: 3, Time: 45}}},
	}},
	{depth: 36, ndl: 15, schedules: []schedule{
		{15, nil},
		{25, []deco.DecoStop{{Depth: 3, Time: 13}}},
		{40, []deco.DecoStop{{Depth: 6, Time: 7}, {Depth: 3, Time: 38}}},
		{60, []deco.DecoStop{{Depth: 9, Time: 3}, {Depth: 6, Time: 18}, {Depth: 3, Time: 62}}},
	}},
	{depth: 39, ndl: 12, schedules: []schedule{
		{12, nil},
		{20, []deco.DecoStop{{Depth: 3, Time: 10}}},
		{30, []deco.DecoStop{{Depth: 6, Time: 4}, {Depth: 3, Time: 24}}},
		{50, []deco.DecoStop{{Depth: 9, Time: 4}, {Depth: 6, Time: 18}, {Depth: 3, Time: 52}}},
	}},
	{depth: 42, ndl: 10, schedules: []schedule{
		{10, nil},
		{20, []deco.DecoStop{{Depth: 6, Time: 2}, {Depth: 3, Time: 12}}},
		{30, []deco.DecoStop{{Depth: 6, Time: 9}, {Depth: 3, Time: 28}}},
		{40, []deco.DecoStop{{Depth: 9, Time: 5}, {Depth: 6, Time: 19}, {Depth: 3, Time: 45}}},
	}},
	{depth: 45, ndl: 8, schedules: []schedule{
		{8, nil},
		{15, []deco.DecoStop{{Depth: 3, Time: 7}}},
		{25, []deco.DecoStop{{Depth: 6, Time: 8}, {Depth: 3, Time: 23}}},
		{40, []deco.DecoStop{{Depth: 9, Time: 8}, {Depth: 6, Time: 23}, {Depth: 3, Time: 53}}},
	}},
	{depth: 48, ndl: 7, schedules: []schedule{
		{7, nil},
		{15, []deco.DecoStop{{Depth: 6, Time: 2}, {Depth: 3, Time: 9}}},
		{25, []deco.DecoStop{{Depth: 9, Time: 2}, {Depth: 6, Time: 10}, {Depth: 3, Time: 26}}},
	}},
	{depth: 51, ndl: 6, schedules: []schedule{
		{6, nil},
		{15, []deco.DecoStop{{Depth: 6, Time: 4}, {Depth: 3, Time: 12}}},
		{25, []deco.DecoStop{{Depth: 9, Time: 4}, {Depth: 6, Time: 12}, {Depth: 3, Time: 31}}},
	}},
	{depth: 54, ndl: 6, schedules: []schedule{
		{6, nil},
		{15, []deco.DecoStop{{Depth: 6, Time: 6}, {Depth: 3, Time: 16}}},
		{25, []deco.DecoStop{{Depth: 9, Time: 6}, {Depth: 6, Time: 14}, {Depth: 3, Time: 37}}},
	}},
	{depth: 57, ndl: 5, schedules: []schedule{
		{5, nil},
		{10, []deco.DecoStop{{Depth: 6, Time: 3}, {Depth: 3, Time: 9}}},
		{20, []deco.DecoStop{{Depth: 9, Time: 4}, {Depth: 6, Time: 11}, {Depth: 3, Time: 28}}},
	}},
	{depth: 60, ndl: 5, schedules: []schedule{
		{5, nil},
		{10, []deco.DecoStop{{Depth: 6, Time: 4}, {Depth: 3, Time: 11}}},
		{20, []deco.DecoStop{{Depth: 9, Time: 6}, {Depth: 6, Time: 13}, {Depth: 3, Time: 34}}},
		{30, []deco.DecoStop{{Depth: 12, Time: 4}, {Depth: 9, Time: 12}, {Depth: 6, Time: 20}, {Depth: 3, Time: 52}}},
	}},
}

var usnavyHalfTimes = []float64{5, 10, 20, 40, 80, 120}

// USNavy is the Rev 7 air table.
type USNavy struct{}

// NewUSNavy returns the model.
func NewUSNavy() *USNavy {
	return &USNavy{}
}

// ID implements deco.Model.
func (m *USNavy) ID() string {
	return "usnavy"
}

// Run implements deco.Model.
func (m *USNavy) Run(phases []deco.Phase, opts deco.Options) *deco.Result {
	opts = opts.Normalize()
	r, s, stops := lookup(usnavyRows, deco.MaxPhaseDepth(phases), deco.TotalPhaseMinutes(phases))
	return tableResult(phases, opts, usnavyHalfTimes, r, s, stops, r.ndl)
}
