package deco

import "math"

// PhaseAction identifies what the diver is doing during a phase.
type PhaseAction string

const (
	ActionDescend    PhaseAction = "descend"
	ActionAscend     PhaseAction = "ascend"
	ActionStay       PhaseAction = "stay"
	ActionDecoStop   PhaseAction = "deco-stop"
	ActionGasSwitch  PhaseAction = "gas-switch"
	ActionSafetyStop PhaseAction = "safety-stop"
)

// Stop is one user-planned waypoint. The planned time is measured from
// leaving the previous depth: the transit to the stop is consumed from it,
// not added on top.
type Stop struct {
	Depth float64
	Time  int
}

// Phase is one segment of the simulated dive at a constant depth.
// RunTime is the minutes elapsed since the start of the dive, exclusive of
// this phase; RunTime+Duration of phase k equals RunTime of phase k+1.
type Phase struct {
	Depth     float64
	Duration  int
	RunTime   int
	Action    PhaseAction
	Gas       string // "O2/He" label; empty means the bottom gas
	GasSwitch bool
}

// ProfilePoint is a (time, depth) sample used for plotting and for
// interpolating depth at any minute.
type ProfilePoint struct {
	Time  int
	Depth float64
}

// Profile is the built bottom portion of the dive, before deco stops are
// spliced in.
type Profile struct {
	Points      []ProfilePoint
	Phases      []Phase
	LastStopEnd int
	LastDepth   float64
	MaxDepth    float64
}

// TransitMinutes returns the whole minutes needed to move between two depths
// at the given rate, rounded up for conservatism.
func TransitMinutes(from, to, rate float64) int {
	delta := math.Abs(to - from)
	if delta == 0 || rate <= 0 {
		return 0
	}
	return int(math.Ceil(delta / rate))
}

// BuildProfile turns the user stop list into the simulation phase stream and
// the plotting point series. Transit time to each stop is folded into the
// planned stop time: "25m : 10min" means ten minutes from leaving the
// previous depth until leaving 25 m.
func BuildProfile(stops []Stop, descentRate, ascentRate float64) *Profile {
	if descentRate <= 0 {
		descentRate = 18
	}
	if ascentRate <= 0 {
		ascentRate = 9
	}

	p := &Profile{Points: []ProfilePoint{{Time: 0, Depth: 0}}}
	tCum := 0
	dCur := 0.0

	for _, s := range stops {
		if s.Depth < 0 || s.Time < 0 {
			continue
		}
		action := ActionStay
		rate := descentRate
		if s.Depth > dCur {
			action = ActionDescend
		} else if s.Depth < dCur {
			action = ActionAscend
			rate = ascentRate
		}
		transit := TransitMinutes(dCur, s.Depth, rate)
		stay := s.Time - transit
		if stay < 0 {
			stay = 0
		}

		if transit > 0 {
			p.Phases = append(p.Phases, Phase{
				Depth:    s.Depth,
				Duration: transit,
				RunTime:  tCum,
				Action:   action,
			})
			tCum += transit
			p.Points = append(p.Points, ProfilePoint{Time: tCum, Depth: s.Depth})
		}
		if stay > 0 {
			p.Phases = append(p.Phases, Phase{
				Depth:    s.Depth,
				Duration: stay,
				RunTime:  tCum,
				Action:   ActionStay,
			})
			tCum += stay
			p.Points = append(p.Points, ProfilePoint{Time: tCum, Depth: s.Depth})
		}

		dCur = s.Depth
		if s.Depth > p.MaxDepth {
			p.MaxDepth = s.Depth
		}
	}

	p.LastStopEnd = tCum
	p.LastDepth = dCur
	return p
}

// DepthAt linearly interpolates the depth at a given minute from the point
// series. Minutes beyond the last point return the last depth.
func DepthAt(points []ProfilePoint, minute int) float64 {
	if len(points) == 0 {
		return 0
	}
	if minute <= points[0].Time {
		return points[0].Depth
	}
	for i := 1; i < len(points); i++ {
		if minute <= points[i].Time {
			prev, next := points[i-1], points[i]
			span := next.Time - prev.Time
			if span <= 0 {
				return next.Depth
			}
			frac := float64(minute-prev.Time) / float64(span)
			return prev.Depth + (next.Depth-prev.Depth)*frac
		}
	}
	return points[len(points)-1].Depth
}
