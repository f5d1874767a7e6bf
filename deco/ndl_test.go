package deco_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deco-compare/deco-compare/deco"
)

func TestSolveNDL_DecreasesWithDepth(t *testing.T) {
	m, ok := deco.NewModel("zhl16c")
	require.True(t, ok)
	opts := deco.DefaultOptions()

	prev := deco.SolveNDL(m, 18, 18, 9, opts)
	for _, depth := range []float64{24, 30, 36, 42} {
		ndl := deco.SolveNDL(m, depth, 18, 9, opts)
		assert.LessOrEqual(t, ndl, prev, "NDL at %vm", depth)
		prev = ndl
	}
}

func TestSolveNDL_Bounds(t *testing.T) {
	m, _ := deco.NewModel("zhl16c")
	opts := deco.DefaultOptions()

	deepNDL := deco.SolveNDL(m, 60, 18, 9, opts)
	assert.GreaterOrEqual(t, deepNDL, 0)
	assert.Less(t, deepNDL, 15)

	shallowNDL := deco.SolveNDL(m, 9, 18, 9, opts)
	assert.Greater(t, shallowNDL, 100)
	assert.LessOrEqual(t, shallowNDL, 300)
}

func TestSolveNDL_IsTheLastNoDecoMinute(t *testing.T) {
	m, _ := deco.NewModel("zhl16c")
	opts := deco.DefaultOptions()
	ndl := deco.SolveNDL(m, 30, 18, 9, opts)
	require.Greater(t, ndl, 0)
	require.Less(t, ndl, 300)

	atLimit := deco.BuildProfile([]deco.Stop{{Depth: 30, Time: ndl}}, 18, 9)
	res := m.Run(atLimit.Phases, opts)
	assert.Empty(t, res.DecoStops)

	past := deco.BuildProfile([]deco.Stop{{Depth: 30, Time: ndl + 1}}, 18, 9)
	res = m.Run(past.Phases, opts)
	assert.NotEmpty(t, res.DecoStops)
}

func TestSolveNDL_RicherGasExtends(t *testing.T) {
	m, _ := deco.NewModel("zhl16c")
	air := deco.DefaultOptions()
	ean := deco.DefaultOptions()
	ean.Gas = deco.Nitrox(0.32)

	assert.Greater(t, deco.SolveNDL(m, 30, 18, 9, ean), deco.SolveNDL(m, 30, 18, 9, air))
}

func TestProfileNDL_DecoDiveIsZero(t *testing.T) {
	m, _ := deco.NewModel("zhl16c")
	got := deco.ProfileNDL(m, []deco.Stop{{Depth: 60, Time: 20}}, 18, 9, deco.DefaultOptions())
	assert.Equal(t, 0, got)
}

func TestProfileNDL_ExtendsLastStop(t *testing.T) {
	m, _ := deco.NewModel("zhl16c")
	stops := []deco.Stop{{Depth: 12, Time: 10}, {Depth: 9, Time: 5}}
	got := deco.ProfileNDL(m, stops, 18, 9, deco.DefaultOptions())
	assert.Greater(t, got, 0)
}
