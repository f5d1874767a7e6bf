package zhl

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deco-compare/deco-compare/deco"
)

func TestVariantParams_CompartmentCounts(t *testing.T) {
	cases := map[string]int{
		"zhl16a": 16, "zhl16b": 16, "zhl16c": 16,
		"zhl12": 12, "zhl8adt": 8, "zhl6": 6,
	}
	for variant, want := range cases {
		p, ok := VariantParams(variant)
		require.True(t, ok, variant)
		assert.Len(t, p.HalfN2, want, variant)
		assert.Len(t, p.A, want, variant)
		assert.Len(t, p.B, want, variant)
		assert.Len(t, p.HalfHe, want, variant)
	}
}

func TestVariantParams_16CFastestCompartmentMoreConservative(t *testing.T) {
	a, _ := VariantParams("zhl16a")
	c, _ := VariantParams("zhl16c")
	assert.Less(t, c.A[0], a.A[0])
}

func TestVariantParams_HeliumHalfTimesScaled(t *testing.T) {
	p, _ := VariantParams("zhl12")
	for i := range p.HalfN2 {
		assert.InDelta(t, p.HalfN2[i]/HeDiffusionRatio, p.HalfHe[i], 1e-9)
	}
}

func TestDeriveParams_Formulas(t *testing.T) {
	p := deriveParams("test", []float64{8.0})
	assert.InDelta(t, 2.0*math.Pow(8.0, -1.0/3.0), p.A[0], 1e-12)
	assert.InDelta(t, 1.005-math.Pow(8.0, -0.5), p.B[0], 1e-12)
}

func TestCombinedAB_PureNitrogenFallback(t *testing.T) {
	m := New("zhl16c")
	a, b := m.combinedAB(0, 0, 0)
	assert.Equal(t, m.p.A[0], a)
	assert.Equal(t, m.p.B[0], b)
}

func TestCombinedAB_WeightsByPartialPressure(t *testing.T) {
	m := New("zhl16c")
	// Equal partial pressures average the coefficient pairs.
	a, b := m.combinedAB(0, 1.0, 1.0)
	assert.InDelta(t, (m.p.A[0]+m.p.AHe[0])/2.0, a, 1e-12)
	assert.InDelta(t, (m.p.B[0]+m.p.BHe[0])/2.0, b, 1e-12)
}

func TestCeilingPressure_FullGradientMatchesClassicForm(t *testing.T) {
	// At gf=1 the closed form reduces to (p - a) * b.
	a, b, p := 1.1696, 0.5240, 3.5
	assert.InDelta(t, (p-a)*b, ceilingPressure(p, a, b, 1.0), 1e-12)
}

func TestCeiling_SurfaceEquilibrium_Zero(t *testing.T) {
	m := New("zhl16c")
	ts := deco.NewTissueState(16)
	assert.Equal(t, 0.0, m.Ceiling(ts, 0.3))
}

func TestRun_UnknownVariantFallsBackTo16C(t *testing.T) {
	m := New("zhl99")
	assert.Equal(t, "zhl16c", m.ID())
}

func TestRun_NoDecoDive(t *testing.T) {
	m := New("zhl16c")
	profile := deco.BuildProfile([]deco.Stop{{Depth: 10, Time: 20}}, 18, 9)
	res := m.Run(profile.Phases, deco.DefaultOptions())

	assert.True(t, res.NoDecoLimit)
	assert.Empty(t, res.DecoStops)
	assert.Equal(t, 16, res.Compartments)
	assert.Len(t, res.HeLoading, 16)
}

func TestRun_TrimixTracksHelium(t *testing.T) {
	m := New("zhl16c")
	opts := deco.DefaultOptions()
	opts.Gas = deco.Trimix(0.18, 0.45)
	profile := deco.BuildProfile([]deco.Stop{{Depth: 60, Time: 20}}, 18, 9)

	res := m.Run(profile.Phases, opts)

	require.Len(t, res.HeLoading, 16)
	assert.Greater(t, res.HeLoading[0], 0.5, "fast compartment must load helium")
	assert.False(t, res.NoDecoLimit)
}

func TestRun_GFInterpolation_LimiterTightensTowardsFirstStop(t *testing.T) {
	// gfLow applies at the first stop, gfHigh at the surface.
	assert.InDelta(t, 30, deco.GFAt(24, 24, 30, 70), 1e-9)
	assert.InDelta(t, 70, deco.GFAt(0, 24, 30, 70), 1e-9)
	assert.InDelta(t, 50, deco.GFAt(12, 24, 30, 70), 1e-9)
}

func TestRun_LastStopSixHonoured(t *testing.T) {
	m := New("zhl16c")
	opts := deco.DefaultOptions()
	opts.LastStopDepth = 6
	profile := deco.BuildProfile([]deco.Stop{{Depth: 45, Time: 25}}, 18, 9)

	res := m.Run(profile.Phases, opts)

	require.NotEmpty(t, res.DecoStops)
	last := res.DecoStops[len(res.DecoStops)-1]
	assert.Equal(t, 6.0, last.Depth)
}
