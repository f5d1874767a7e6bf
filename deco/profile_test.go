package deco

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildProfile_SingleStop_FoldsTransit(t *testing.T) {
	// GIVEN a single 25m:10min stop at 18/9 m/min rates
	p := BuildProfile([]Stop{{Depth: 25, Time: 10}}, 18, 9)

	// THEN the descent is consumed from the planned time
	require.Len(t, p.Phases, 2)
	assert.Equal(t, Phase{Depth: 25, Duration: 2, RunTime: 0, Action: ActionDescend}, p.Phases[0])
	assert.Equal(t, Phase{Depth: 25, Duration: 8, RunTime: 2, Action: ActionStay}, p.Phases[1])
	assert.Equal(t, 10, p.LastStopEnd)
	assert.Equal(t, 25.0, p.LastDepth)
	assert.Equal(t, 25.0, p.MaxDepth)
}

func TestBuildProfile_TwoStops(t *testing.T) {
	p := BuildProfile([]Stop{{Depth: 25, Time: 10}, {Depth: 20, Time: 5}}, 18, 9)

	require.Len(t, p.Phases, 4)
	durations := []int{2, 8, 1, 4}
	for i, want := range durations {
		assert.Equal(t, want, p.Phases[i].Duration, "phase %d", i)
	}
	assert.Equal(t, ActionAscend, p.Phases[2].Action)
	assert.Equal(t, 15, p.LastStopEnd)
}

func TestBuildProfile_RunTimesChain(t *testing.T) {
	p := BuildProfile([]Stop{{Depth: 30, Time: 12}, {Depth: 18, Time: 6}, {Depth: 9, Time: 4}}, 18, 9)
	for i := 1; i < len(p.Phases); i++ {
		prev := p.Phases[i-1]
		assert.Equal(t, prev.RunTime+prev.Duration, p.Phases[i].RunTime, "phase %d", i)
	}
}

func TestBuildProfile_TransitLongerThanPlannedTime(t *testing.T) {
	// 40m at 18 m/min needs 3 minutes; a 2-minute plan leaves no stay.
	p := BuildProfile([]Stop{{Depth: 40, Time: 2}}, 18, 9)
	require.Len(t, p.Phases, 1)
	assert.Equal(t, ActionDescend, p.Phases[0].Action)
	assert.Equal(t, 3, p.Phases[0].Duration)
}

func TestBuildProfile_InvalidStopsDropped(t *testing.T) {
	p := BuildProfile([]Stop{{Depth: -5, Time: 10}, {Depth: 20, Time: -1}, {Depth: 20, Time: 10}}, 18, 9)
	require.Len(t, p.Phases, 2)
	assert.Equal(t, 20.0, p.MaxDepth)
}

func TestBuildProfile_Empty(t *testing.T) {
	p := BuildProfile(nil, 18, 9)
	assert.Empty(t, p.Phases)
	assert.Equal(t, 0, p.LastStopEnd)
	require.Len(t, p.Points, 1)
}

func TestDepthAt_Interpolates(t *testing.T) {
	points := []ProfilePoint{{Time: 0, Depth: 0}, {Time: 2, Depth: 30}, {Time: 10, Depth: 30}}
	assert.Equal(t, 0.0, DepthAt(points, 0))
	assert.InDelta(t, 15.0, DepthAt(points, 1), 1e-12)
	assert.Equal(t, 30.0, DepthAt(points, 5))
	assert.Equal(t, 30.0, DepthAt(points, 99))
}

func TestTransitMinutes_RoundsUp(t *testing.T) {
	assert.Equal(t, 2, TransitMinutes(0, 25, 18))
	assert.Equal(t, 0, TransitMinutes(10, 10, 18))
	assert.Equal(t, 3, TransitMinutes(25, 0, 9))
}
