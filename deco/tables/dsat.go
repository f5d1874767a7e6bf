package tables

import (
	"math"

	"github.com/deco-compare/deco-compare/deco"
)

// DSAT RDP no-decompression limits, minutes by depth. The RDP is a no-stop
// table: exceeding the NDL is handled as emergency decompression at the
// shallow stop rather than a published stop schedule.
var dsatNDL = []struct {
	depth float64
	ndl   int
}{
	{10, 219},
	{12, 147},
	{14, 98},
	{16, 72},
	{18, 56},
	{20, 45},
	{22, 37},
	{25, 29},
	{30, 20},
	{35, 14},
	{38, 11},
	{42, 8},
}

var dsatHalfTimes = []float64{5, 10, 20, 30, 40, 60, 80, 100, 120, 160, 200, 240, 360, 480}

const (
	dsatEmergencyStopDepth   = 6.0
	dsatEmergencyStopMinutes = 8
)

// DSAT is the recreational dive planner table.
type DSAT struct{}

// NewDSAT returns the model.
func NewDSAT() *DSAT {
	return &DSAT{}
}

// ID implements deco.Model.
func (m *DSAT) ID() string {
	return "dsat"
}

// NDLAt linearly interpolates the published NDL between table depths.
// Depths off either end clamp to the nearest row.
func NDLAt(depth float64) int {
	if depth <= dsatNDL[0].depth {
		return dsatNDL[0].ndl
	}
	last := dsatNDL[len(dsatNDL)-1]
	if depth >= last.depth {
		return last.ndl
	}
	for i := 1; i < len(dsatNDL); i++ {
		if depth <= dsatNDL[i].depth {
			lo, hi := dsatNDL[i-1], dsatNDL[i]
			frac := (depth - lo.depth) / (hi.depth - lo.depth)
			return int(math.Round(float64(lo.ndl) + frac*float64(hi.ndl-lo.ndl)))
		}
	}
	return last.ndl
}

// Run implements deco.Model.
func (m *DSAT) Run(phases []deco.Phase, opts deco.Options) *deco.Result {
	opts = opts.Normalize()
	maxDepth := deco.MaxPhaseDepth(phases)
	bottomTime := deco.TotalPhaseMinutes(phases)
	ndl := NDLAt(maxDepth)

	tableDepth := dsatNDL[len(dsatNDL)-1].depth
	for _, e := range dsatNDL {
		if e.depth >= maxDepth {
			tableDepth = e.depth
			break
		}
	}

	var stops []deco.DecoStop
	if bottomTime > ndl {
		stops = []deco.DecoStop{{
			Depth: dsatEmergencyStopDepth,
			Time:  dsatEmergencyStopMinutes + (bottomTime - ndl),
		}}
	}
	r := row{depth: tableDepth, ndl: ndl}
	s := schedule{maxMinutes: bottomTime}
	return tableResult(phases, opts, dsatHalfTimes, r, s, stops, ndl)
}
