package deco

import (
	"math"

	"github.com/sirupsen/logrus"
)

// StopContext gives the CanAscend predicate the ascent geometry it needs for
// gradient-factor interpolation.
type StopContext struct {
	FirstStopDepth float64
	LastStopDepth  float64
	CurrentDepth   float64
	NextDepth      float64
}

// AscentLimiter decides whether the tissue state allows ascending to the
// next stop level. Implementations carry the algorithm-specific math; the
// scheduler stays generic.
type AscentLimiter interface {
	CanAscend(ts *TissueState, ctx StopContext) bool
}

// ScheduleConfig parameterises RunSchedule.
type ScheduleConfig struct {
	FirstStopDepth float64
	LastStopDepth  float64
	DeepestDepth   float64
	DecoAscentRate float64
	Gas            GasMix
	// GasAt, when non-nil, enables multi-gas ascent: stops are tagged with
	// the active gas label and zero-duration gas-switch markers are emitted
	// when the active gas changes between levels.
	GasAt         func(depth float64) GasMix
	GasSwitchTime bool
}

// RunSchedule drives the ascent at stop-interval levels from the first stop
// down to the last stop, asking the limiter at each level whether the next
// level is tolerable and allocating whole minutes of stop time until it is.
// The working tissue state is advanced through every transit and stop.
// Returns the ordered (deepest to shallowest) stop list and whether any stop
// hit the iteration cap.
func RunSchedule(working *TissueState, cfg ScheduleConfig, lim AscentLimiter, upd TissueUpdater) ([]DecoStop, bool) {
	if cfg.FirstStopDepth <= 0 {
		return nil, false
	}
	rate := cfg.DecoAscentRate
	if rate <= 0 {
		rate = 9
	}
	last := cfg.LastStopDepth
	if last <= 0 {
		last = StopInterval
	}
	gasAt := cfg.GasAt
	tagged := gasAt != nil
	if gasAt == nil {
		gasAt = func(float64) GasMix { return cfg.Gas }
	}

	var stops []DecoStop
	capped := false
	prev := cfg.DeepestDepth
	prevGas := gasAt(prev)

	for current := cfg.FirstStopDepth; current >= last; current -= StopInterval {
		gas := gasAt(current)
		transit := int(math.Ceil((prev - current) / rate))
		if transit < 0 {
			transit = 0
		}
		upd.Update(working, current, gas, transit)

		next := current - StopInterval
		ctx := StopContext{
			FirstStopDepth: cfg.FirstStopDepth,
			LastStopDepth:  last,
			CurrentDepth:   current,
			NextDepth:      next,
		}

		stopTime := 0
		sim := working.Clone()
		for minute := 1; minute <= MaxStopMinutes; minute++ {
			if lim.CanAscend(sim, ctx) {
				stopTime = minute
				break
			}
			upd.Update(sim, current, gas, 1)
			stopTime = minute + 1
		}
		if stopTime > MaxStopMinutes {
			stopTime = MaxStopMinutes
			capped = true
			logrus.Warnf("deco: stop at %.0fm hit the %d-minute cap", current, MaxStopMinutes)
		}
		if stopTime < 1 {
			stopTime = 1
		}

		if tagged && gas != prevGas {
			marker := DecoStop{Depth: current, Gas: gas.Label(), GasSwitch: true}
			if cfg.GasSwitchTime {
				marker.Time = 1
			}
			stops = append(stops, marker)
		}
		stop := DecoStop{Depth: current, Time: stopTime}
		if tagged {
			stop.Gas = gas.Label()
		}
		stops = append(stops, stop)

		upd.Update(working, current, gas, stopTime)
		prev = current
		prevGas = gas
	}
	return stops, capped
}
