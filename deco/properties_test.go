package deco_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deco-compare/deco-compare/deco"
)

// allModelIDs is the full registered family exercised by the shared
// property tests.
var allModelIDs = []string{
	"zhl16a", "zhl16b", "zhl16c", "zhl12", "zhl8adt", "zhl6",
	"vpm", "rgbm", "haldane", "workman", "thalmann", "dciem",
	"dsat", "usnavy", "bsac",
}

func runSingleStop(t *testing.T, id string, depth float64, minutes int, opts deco.Options) *deco.Result {
	t.Helper()
	m, ok := deco.NewModel(id)
	require.True(t, ok, "model %s not registered", id)
	profile := deco.BuildProfile([]deco.Stop{{Depth: depth, Time: minutes}}, 18, 9)
	return m.Run(profile.Phases, opts)
}

func TestAllModels_ResultShape(t *testing.T) {
	for _, id := range allModelIDs {
		res := runSingleStop(t, id, 30, 20, deco.DefaultOptions())
		assert.Greater(t, res.Compartments, 0, "%s", id)
		assert.Len(t, res.TissueLoading, res.Compartments, "%s", id)
		assert.Len(t, res.HalfTimes, res.Compartments, "%s", id)
		assert.Len(t, res.MValues, res.Compartments, "%s", id)
		for i, p := range res.TissueLoading {
			assert.False(t, math.IsNaN(p) || math.IsInf(p, 0), "%s compartment %d", id, i)
			assert.GreaterOrEqual(t, p, 0.0, "%s compartment %d", id, i)
		}
	}
}

func TestAllModels_ShallowDive_NoDeco(t *testing.T) {
	for _, id := range allModelIDs {
		res := runSingleStop(t, id, 5, 30, deco.DefaultOptions())
		assert.True(t, res.NoDecoLimit, "%s must clear 5m/30min", id)
		assert.Empty(t, res.DecoStops, "%s", id)
	}
}

func TestAllModels_DeepDive_RequiresDeco(t *testing.T) {
	for _, id := range allModelIDs {
		res := runSingleStop(t, id, 60, 20, deco.DefaultOptions())
		assert.False(t, res.NoDecoLimit, "%s must not clear 60m/20min", id)
		assert.NotEmpty(t, res.DecoStops, "%s", id)
	}
}

func TestAllModels_StopsBoundedAndDescending(t *testing.T) {
	for _, id := range allModelIDs {
		res := runSingleStop(t, id, 60, 20, deco.DefaultOptions())
		prevDepth := math.Inf(1)
		for _, s := range res.RealStops() {
			assert.GreaterOrEqual(t, s.Depth, 0.0, "%s", id)
			assert.LessOrEqual(t, s.Depth, 60.0, "%s", id)
			assert.GreaterOrEqual(t, s.Time, 1, "%s", id)
			assert.Less(t, s.Time, deco.MaxStopMinutes, "%s stop must stay under the cap", id)
			assert.Less(t, s.Depth, prevDepth, "%s stops must strictly descend", id)
			assert.InDelta(t, 0.0, math.Mod(s.Depth, deco.StopInterval), 1e-9, "%s stop depths quantised", id)
			prevDepth = s.Depth
		}
	}
}

func TestAllModels_DepthMonotonicity(t *testing.T) {
	for _, id := range allModelIDs {
		shallow := runSingleStop(t, id, 20, 20, deco.DefaultOptions())
		deep := runSingleStop(t, id, 60, 20, deco.DefaultOptions())
		assert.Greater(t, deep.TotalDecoTime(), shallow.TotalDecoTime(),
			"%s: 60m/20min must out-deco 20m/20min", id)
	}
}

func TestAllModels_TimeMonotonicity(t *testing.T) {
	for _, id := range allModelIDs {
		short := runSingleStop(t, id, 45, 12, deco.DefaultOptions())
		long := runSingleStop(t, id, 45, 25, deco.DefaultOptions())
		assert.GreaterOrEqual(t, long.TotalDecoTime(), short.TotalDecoTime(), "%s", id)
	}
}

func TestBuhlmann_RicherGasShortensDeco(t *testing.T) {
	air := deco.DefaultOptions()
	ean32 := deco.DefaultOptions()
	ean32.Gas = deco.Nitrox(0.32)

	onAir := runSingleStop(t, "zhl16c", 40, 20, air)
	onEAN := runSingleStop(t, "zhl16c", 40, 20, ean32)
	assert.Less(t, onEAN.TotalDecoTime(), onAir.TotalDecoTime())
}

func TestGFModels_ConservatismOrdering(t *testing.T) {
	withGF := func(low, high float64) deco.Options {
		o := deco.DefaultOptions()
		o.GFLow, o.GFHigh = low, high
		return o
	}
	for _, id := range []string{"zhl16c", "vpm", "rgbm"} {
		conservative := runSingleStop(t, id, 50, 20, withGF(30, 70))
		moderate := runSingleStop(t, id, 50, 20, withGF(50, 70))
		liberal := runSingleStop(t, id, 50, 20, withGF(80, 100))

		assert.Greater(t, conservative.TotalDecoTime(), moderate.TotalDecoTime(), "%s 30/70 vs 50/70", id)
		assert.Greater(t, moderate.TotalDecoTime(), liberal.TotalDecoTime(), "%s 50/70 vs 80/100", id)
		assert.GreaterOrEqual(t, conservative.FirstStopDepth, liberal.FirstStopDepth,
			"%s lower gfLow must not raise the first stop", id)
	}
}

func TestVPM_FirstStopAtLeastBuhlmann(t *testing.T) {
	vpm := runSingleStop(t, "vpm", 60, 20, deco.DefaultOptions())
	zhl := runSingleStop(t, "zhl16c", 60, 20, deco.DefaultOptions())
	assert.GreaterOrEqual(t, vpm.FirstStopDepth, zhl.FirstStopDepth)
}

func TestBuhlmann_ThirtyTwenty_Shape(t *testing.T) {
	opts := deco.DefaultOptions()
	opts.GFLow, opts.GFHigh = 50, 70
	res := runSingleStop(t, "zhl16c", 30, 20, opts)

	assert.Equal(t, 16, res.Compartments)
	prev := math.Inf(1)
	for _, s := range res.RealStops() {
		assert.LessOrEqual(t, s.Depth, 30.0)
		assert.Less(t, s.Depth, prev)
		prev = s.Depth
	}
}

func TestBuhlmann_DecoGasSwitchShortensDeco(t *testing.T) {
	plain := deco.DefaultOptions()
	plain.Gas = deco.Nitrox(0.32)

	switched := plain
	switched.GasSwitches = []deco.GasSwitch{{Depth: 22, Mix: deco.Nitrox(0.50)}}

	without := runSingleStop(t, "zhl16c", 40, 25, plain)
	with := runSingleStop(t, "zhl16c", 40, 25, switched)

	require.NotEmpty(t, without.DecoStops)
	assert.Less(t, with.TotalDecoTime(), without.TotalDecoTime())
}

func TestTableModels_PublishFields(t *testing.T) {
	for _, id := range []string{"dsat", "usnavy", "bsac"} {
		res := runSingleStop(t, id, 33, 25, deco.DefaultOptions())
		assert.Greater(t, res.NDL, 0, "%s", id)
		assert.Greater(t, res.TableDepth, 0.0, "%s", id)
	}
}
