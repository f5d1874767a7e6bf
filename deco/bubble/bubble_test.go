package bubble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deco-compare/deco-compare/deco"
)

func divePhases(depth float64, minutes int) []deco.Phase {
	return deco.BuildProfile([]deco.Stop{{Depth: depth, Time: minutes}}, 18, 9).Phases
}

func TestVPM_RadiiShrinkAcrossCompartments(t *testing.T) {
	m := NewVPM()
	for i := 1; i < 16; i++ {
		assert.Less(t, m.initialRadius(i), m.initialRadius(i-1), "compartment %d", i)
	}
}

func TestVPM_AllowedGradient_LaplaceForm(t *testing.T) {
	// 2*(gamma+gamma_c)/r for r=1 micron, converted to bar.
	got := allowedGradient(1.0)
	assert.InDelta(t, 2.0*(deco.SurfaceTension+deco.SkinCompression)/1e-6/1e5, got, 1e-12)
}

func TestVPM_CrushShrinksRadiiOnDeepExposure(t *testing.T) {
	m := NewVPM()
	shallow := m.crushedRadius(0, deco.DepthToPressure(10))
	deep := m.crushedRadius(0, deco.DepthToPressure(80))
	assert.Less(t, deep, shallow)
}

func TestBoyleFactor_ReducesShallow(t *testing.T) {
	pFirst := deco.DepthToPressure(42)
	assert.Equal(t, 1.0, boyleFactor(pFirst, pFirst))
	shallow := boyleFactor(pFirst, deco.DepthToPressure(3))
	assert.Less(t, shallow, 1.0)
	assert.GreaterOrEqual(t, shallow, boyleFloor)
}

func TestVPM_DeepDive_FirstStopDeeperThanDissolvedModels(t *testing.T) {
	res := NewVPM().Run(divePhases(60, 20), deco.DefaultOptions())
	require.False(t, res.NoDecoLimit)
	assert.GreaterOrEqual(t, res.FirstStopDepth, 30.0, "VPM must call deep stops")
}

func TestVPM_ShallowDive_NoDeco(t *testing.T) {
	res := NewVPM().Run(divePhases(5, 30), deco.DefaultOptions())
	assert.True(t, res.NoDecoLimit)
}

func TestRGBM_SeedsGrowOnlyAboveThreshold(t *testing.T) {
	m := NewRGBM()
	upd := &rgbmUpdater{m: m, inner: &deco.SchreinerUpdater{HalfTimesN2: m.p.HalfN2}, seeds: make([]float64, 16)}
	ts := deco.NewTissueState(16)

	// Loading at depth keeps tissues below ambient: no seeds.
	upd.Update(ts, 40, deco.Air(), 20)
	for i, s := range upd.seeds {
		assert.Equal(t, 0.0, s, "compartment %d must not seed while on-gassing", i)
	}

	// A fast drop to the surface leaves fast tissues far above ambient.
	upd.Update(ts, 0, deco.Air(), 1)
	assert.Greater(t, upd.seeds[0], 0.0, "fast compartment must seed after blow-up ascent")
}

func TestRGBM_ReductionFactor_Bands(t *testing.T) {
	m := NewRGBM()
	seeds := make([]float64, 16)
	slow := m.reductionFactor(0, 9, 30, 20, seeds)
	fast := m.reductionFactor(0, 20, 30, 20, seeds)
	assert.Less(t, fast, slow, "fast ascent must reduce harder")

	shallowBand := m.reductionFactor(0, 9, 10, 20, seeds)
	deepBand := m.reductionFactor(0, 9, 50, 20, seeds)
	assert.Less(t, deepBand, shallowBand)

	early := m.reductionFactor(0, 9, 30, 20, seeds)
	late := m.reductionFactor(0, 9, 30, 600, seeds)
	assert.Less(t, late, early, "long dives diminish the factor")

	first := m.reductionFactor(0, 9, 30, 20, seeds)
	last := m.reductionFactor(15, 9, 30, 20, seeds)
	assert.Less(t, last, first, "reduction is linear in compartment")
}

func TestRGBM_DeepDive_RequiresDeco(t *testing.T) {
	res := NewRGBM().Run(divePhases(60, 20), deco.DefaultOptions())
	assert.False(t, res.NoDecoLimit)
	assert.NotEmpty(t, res.DecoStops)
}

func TestRGBM_AllowedNeverBelowAmbientGuard(t *testing.T) {
	// With a tiny gradient factor the guard dominates; the ceiling must
	// still be finite and the schedule must terminate.
	opts := deco.DefaultOptions()
	opts.GFLow, opts.GFHigh = 5, 10
	res := NewRGBM().Run(divePhases(45, 20), opts)
	for _, s := range res.RealStops() {
		assert.Less(t, s.Time, deco.MaxStopMinutes)
	}
}
