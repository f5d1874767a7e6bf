package deco

import "math"

// DefaultSACRate is the assumed surface air consumption in litres/minute.
const DefaultSACRate = 20.0

// TankConfig describes the cylinder for pressure conversions.
type TankConfig struct {
	SizeLiters float64
	StartBar   float64
	ReserveBar float64
}

// DefaultTank is a 12 l cylinder at 200 bar with a 50 bar reserve.
func DefaultTank() TankConfig {
	return TankConfig{SizeLiters: 12, StartBar: 200, ReserveBar: 50}
}

// ambientFactor is the breathing-gas density multiplier at depth.
func ambientFactor(depth float64) float64 {
	return depth/10.0 + 1.0
}

// PhaseLiters returns the gas consumed by one phase at the given SAC rate.
// Transit phases are charged at half the end depth.
func PhaseLiters(ph Phase, sacRate float64) float64 {
	return sacRate * ambientFactor(phaseAvgDepth(ph)) * float64(ph.Duration)
}

// Consumption sums per-phase litres across the dive. The running totals are
// monotone non-decreasing by construction.
func Consumption(phases []Phase, sacRate float64) (float64, []float64) {
	if sacRate <= 0 {
		sacRate = DefaultSACRate
	}
	total := 0.0
	running := make([]float64, 0, len(phases))
	for _, ph := range phases {
		total += PhaseLiters(ph, sacRate)
		running = append(running, total)
	}
	return total, running
}

// RockBottom returns the minimum gas in bar needed for an emergency ascent
// from the deepest point: a stressed diver (double SAC) ascending at half
// the maximum depth, plus three minutes at the safety-stop depth, plus the
// reserve.
func RockBottom(maxDepth, ascentRate, sacRate float64, tank TankConfig) float64 {
	if ascentRate <= 0 {
		ascentRate = 9
	}
	if sacRate <= 0 {
		sacRate = DefaultSACRate
	}
	stressSAC := 2.0 * sacRate
	ascentMinutes := math.Ceil(maxDepth / ascentRate)
	liters := stressSAC*ambientFactor(maxDepth/2.0)*ascentMinutes +
		stressSAC*ambientFactor(SafetyStopDepth)*SafetyStopMinutes
	if tank.SizeLiters <= 0 {
		return tank.ReserveBar
	}
	return liters/tank.SizeLiters + tank.ReserveBar
}

// ThirdsPlan is the rule-of-thirds turn-pressure plan.
type ThirdsPlan struct {
	UsableBar  float64
	ThirdBar   float64
	TurnBar    float64
	PlannedBar float64
	Sufficient bool
}

// RuleOfThirds computes the turn pressure (start minus one third of the
// usable gas) and whether the planned consumption plus reserve fits in the
// cylinder.
func RuleOfThirds(tank TankConfig, plannedLiters float64) ThirdsPlan {
	usable := tank.StartBar - tank.ReserveBar
	if usable < 0 {
		usable = 0
	}
	third := math.Floor(usable / 3.0)
	planned := 0.0
	if tank.SizeLiters > 0 {
		planned = plannedLiters / tank.SizeLiters
	}
	return ThirdsPlan{
		UsableBar:  usable,
		ThirdBar:   third,
		TurnBar:    tank.StartBar - third,
		PlannedBar: planned,
		Sufficient: planned+tank.ReserveBar <= tank.StartBar,
	}
}
