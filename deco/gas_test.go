package deco

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGasMix_FN2(t *testing.T) {
	assert.InDelta(t, 0.79, Air().FN2(), 1e-12)
	assert.InDelta(t, 0.35, Trimix(0.18, 0.47).FN2(), 1e-12)
}

func TestGasMix_Label(t *testing.T) {
	assert.Equal(t, "21/0", Air().Label())
	assert.Equal(t, "50/0", Nitrox(0.50).Label())
	assert.Equal(t, "18/45", Trimix(0.18, 0.45).Label())
}

func TestParseGasLabel(t *testing.T) {
	g, ok := ParseGasLabel("50/0")
	require.True(t, ok)
	assert.InDelta(t, 0.50, g.FO2, 1e-12)
	assert.Equal(t, 0.0, g.FHe)

	_, ok = ParseGasLabel("fifty")
	assert.False(t, ok)
	_, ok = ParseGasLabel("80/30")
	assert.False(t, ok, "fractions above 100% rejected")
}

func TestGasMix_EAD(t *testing.T) {
	// EAN32 at 30m breathes like air at ~24.4m.
	ead := Nitrox(0.32).EAD(30)
	assert.InDelta(t, 24.43, ead, 0.01)
}

func TestBestNitroxMix(t *testing.T) {
	g := BestNitroxMix(30, 1.4)
	assert.InDelta(t, 0.34, g.FO2, 1e-9)
}

func TestGasPlan_ActiveAt(t *testing.T) {
	// GIVEN EAN50 switching at 22m and O2 at 6m
	plan := NewGasPlan(Air(), []GasSwitch{
		{Depth: 6, Mix: Nitrox(1.0)},
		{Depth: 22, Mix: Nitrox(0.50)},
	})

	// THEN the first reached-coming-up switch wins, bottom gas otherwise
	assert.Equal(t, Air(), plan.ActiveAt(40))
	assert.Equal(t, Nitrox(0.50), plan.ActiveAt(22))
	assert.Equal(t, Nitrox(0.50), plan.ActiveAt(15))
	assert.Equal(t, Nitrox(1.0), plan.ActiveAt(6))
	assert.Equal(t, Nitrox(1.0), plan.ActiveAt(3))
}

func TestGasPlan_NoSwitches_AlwaysBottom(t *testing.T) {
	plan := NewGasPlan(Nitrox(0.32), nil)
	assert.Equal(t, Nitrox(0.32), plan.ActiveAt(0))
	assert.Equal(t, Nitrox(0.32), plan.ActiveAt(40))
}
