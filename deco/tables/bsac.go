package tables

import "github.com/deco-compare/deco-compare/deco"

// BSAC '88 Table A subset. BSAC schedules stop at 9 m and 6 m; the 6 m stop
// doubles as the last stop.
var bsacRows = []row{
	{depth: 9, ndl: 180, schedules: []schedule{
		{180, nil},
		{240, []deco.DecoStop{{Depth: 6, Time: 1}}},
	}},
	{depth: 12, ndl: 122, schedules: []schedule{
		{122, nil},
		{150, []deco.DecoStop{{Depth: 6, Time: 3}}},
		{180, []deco.DecoStop{{Depth: 6, Time: 8}}},
	}},
	{depth: 15, ndl: 74, schedules: []schedule{
		{74, nil},
		{100, []deco.DecoStop{{Depth: 6, Time: 6}}},
		{130, []deco.DecoStop{{Depth: 6, Time: 14}}},
	}},
	{depth: 18, ndl: 51, schedules: []schedule{
		{51, nil},
		{70, []deco.DecoStop{{Depth: 6, Time: 7}}},
		{90, []deco.DecoStop{{Depth: 6, Time: 16}}},
	}},
	{depth: 21, ndl: 37, schedules: []schedule{
		{37, nil},
		{50, []deco.DecoStop{{Depth: 6, Time: 7}}},
		{70, []deco.DecoStop{{Depth: 6, Time: 17}}},
	}},
	{depth: 24, ndl: 30, schedules: []schedule{
		{30, nil},
		{40, []deco.DecoStop{{Depth: 6, Time: 6}}},
		{60, []deco.DecoStop{{Depth: 6, Time: 18}}},
	}},
	{depth: 27, ndl: 24, schedules: []schedule{
		{24, nil},
		{35, []deco.DecoStop{{Depth: 6, Time: 8}}},
		{50, []deco.DecoStop{{Depth: 6, Time: 17}}},
	}},
	{depth: 30, ndl: 20, schedules: []schedule{
		{20, nil},
		{30, []deco.DecoStop{{Depth: 6, Time: 7}}},
		{45, []deco.DecoStop{{Depth: 9, Time: 3}, {Depth: 6, Time: 17}}},
	}},
	{depth: 33, ndl: 17, schedules: []schedule{
		{17, nil},
		{25, []deco.DecoStop{{Depth: 6, Time: 6}}},
		{40, []deco.DecoStop{{Depth: 9, Time: 4}, {Depth: 6, Time: 17}}},
	}},
	{depth: 36, ndl: 14, schedules: []schedule{
		{14, nil},
		{20, []deco.DecoStop{{Depth: 6, Time: 5}}},
		{35, []deco.DecoStop{{Depth: 9, Time: 5}, {Depth: 6, Time: 18}}},
	}},
	{depth: 39, ndl: 12, schedules: []schedule{
		{12, nil},
		{20, []deco.DecoStop{{Depth: 6, Time: 8}}},
		{30, []deco.DecoStop{{Depth: 9, Time: 5}, {Depth: 6, Time: 16}}},
	}},
	{depth: 42, ndl: 11, schedules: []schedule{
		{11, nil},
		{18, []deco.DecoStop{{Depth: 6, Time: 8}}},
		{28, []deco.DecoStop{{Depth: 9, Time: 6}, {Depth: 6, Time: 17}}},
	}},
	{depth: 45, ndl: 10, schedules: []schedule{
		{10, nil},
		{15, []deco.DecoStop{{Depth: 6, Time: 7}}},
		{25, []deco.DecoStop{{Depth: 9, Time: 6}, {Depth: 6, Time: 16}}},
	}},
}

var bsacHalfTimes = []float64{5, 15, 40, 100}

// BSAC is the BSAC '88 table.
type BSAC struct{}

// NewBSAC returns the model.
func NewBSAC() *BSAC {
	return &BSAC{}
}

// ID implements deco.Model.
func (m *BSAC) ID() string {
	return "bsac"
}

// Run implements deco.Model.
func (m *BSAC) Run(phases []deco.Phase, opts deco.Options) *deco.Result {
	opts = opts.Normalize()
	r, s, stops := lookup(bsacRows, deco.MaxPhaseDepth(phases), deco.TotalPhaseMinutes(phases))
	return tableResult(phases, opts, bsacHalfTimes, r, s, stops, r.ndl)
}
