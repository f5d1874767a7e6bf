package deco

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhaseLiters_StayAtDepth(t *testing.T) {
	// 20 l/min at 30m ambient factor 4.0 for 10 min.
	ph := Phase{Depth: 30, Duration: 10, Action: ActionStay}
	assert.InDelta(t, 800, PhaseLiters(ph, 20), 1e-9)
}

func TestPhaseLiters_TransitUsesHalfDepth(t *testing.T) {
	ph := Phase{Depth: 30, Duration: 2, Action: ActionDescend}
	assert.InDelta(t, 20*2.5*2, PhaseLiters(ph, 20), 1e-9)
}

func TestConsumption_RunningTotalMonotone(t *testing.T) {
	phases := []Phase{
		{Depth: 30, Duration: 2, Action: ActionDescend},
		{Depth: 30, Duration: 18, Action: ActionStay},
		{Depth: 6, Duration: 3, Action: ActionAscend},
		{Depth: 6, Duration: 3, Action: ActionSafetyStop},
	}
	total, running := Consumption(phases, 18)
	assert.Len(t, running, len(phases))
	for i := 1; i < len(running); i++ {
		assert.GreaterOrEqual(t, running[i], running[i-1])
	}
	assert.InDelta(t, running[len(running)-1], total, 1e-9)
}

func TestRockBottom_GrowsWithDepth(t *testing.T) {
	tank := DefaultTank()
	shallow := RockBottom(18, 9, 20, tank)
	deep := RockBottom(45, 9, 20, tank)
	assert.Greater(t, deep, shallow)
	assert.GreaterOrEqual(t, shallow, tank.ReserveBar)
}

func TestRuleOfThirds(t *testing.T) {
	tank := TankConfig{SizeLiters: 12, StartBar: 200, ReserveBar: 50}
	plan := RuleOfThirds(tank, 1200)

	assert.Equal(t, 150.0, plan.UsableBar)
	assert.Equal(t, 50.0, plan.ThirdBar)
	assert.Equal(t, 150.0, plan.TurnBar)
	assert.InDelta(t, 100.0, plan.PlannedBar, 1e-9)
	assert.True(t, plan.Sufficient)
}

func TestRuleOfThirds_Insufficient(t *testing.T) {
	tank := TankConfig{SizeLiters: 12, StartBar: 200, ReserveBar: 50}
	plan := RuleOfThirds(tank, 12*160)
	assert.False(t, plan.Sufficient)
}
