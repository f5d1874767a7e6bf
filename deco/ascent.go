package deco

// SafetyStopDepth and SafetyStopMinutes describe the discretionary stop
// added on the no-algorithm path when the dive went below the stop depth.
const (
	SafetyStopDepth   = 6.0
	SafetyStopMinutes = 3
)

// AssembleAscent splices the deco stops into a built profile, appending
// ascend phases at the deco ascent rate, the stop phases themselves and a
// final ascent to the surface. Gas-switch marker stops become zero-duration
// GasSwitch phases carrying the new gas label. With an empty stop list this
// is the simple-ascent routine; withSafety additionally inserts a safety
// stop when the dive went deeper than the safety-stop depth.
// The profile's phases, points and totals are extended in place.
func AssembleAscent(p *Profile, stops []DecoStop, decoAscentRate float64, withSafety bool) {
	if decoAscentRate <= 0 {
		decoAscentRate = 9
	}
	cur := p.LastDepth
	t := p.LastStopEnd

	appendTransit := func(target float64) {
		if target >= cur {
			return
		}
		transit := TransitMinutes(cur, target, decoAscentRate)
		if transit > 0 {
			p.Phases = append(p.Phases, Phase{
				Depth:    target,
				Duration: transit,
				RunTime:  t,
				Action:   ActionAscend,
			})
			t += transit
			p.Points = append(p.Points, ProfilePoint{Time: t, Depth: target})
		}
		cur = target
	}

	for _, s := range stops {
		appendTransit(s.Depth)
		if s.GasSwitch {
			p.Phases = append(p.Phases, Phase{
				Depth:     s.Depth,
				Duration:  s.Time,
				RunTime:   t,
				Action:    ActionGasSwitch,
				Gas:       s.Gas,
				GasSwitch: true,
			})
			t += s.Time
			continue
		}
		p.Phases = append(p.Phases, Phase{
			Depth:    s.Depth,
			Duration: s.Time,
			RunTime:  t,
			Action:   ActionDecoStop,
			Gas:      s.Gas,
		})
		t += s.Time
		p.Points = append(p.Points, ProfilePoint{Time: t, Depth: s.Depth})
	}

	if withSafety && len(stops) == 0 && p.MaxDepth > SafetyStopDepth && cur > 0 {
		appendTransit(SafetyStopDepth)
		p.Phases = append(p.Phases, Phase{
			Depth:    SafetyStopDepth,
			Duration: SafetyStopMinutes,
			RunTime:  t,
			Action:   ActionSafetyStop,
		})
		t += SafetyStopMinutes
		p.Points = append(p.Points, ProfilePoint{Time: t, Depth: SafetyStopDepth})
	}

	// Final ascent to the surface.
	if cur > 0 {
		appendTransit(0)
	}

	p.LastStopEnd = t
	p.LastDepth = cur
}
