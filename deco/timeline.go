package deco

// gasAtMinute resolves the gas breathed at a minute of the dive from the
// phase gas tags, falling back to the bottom gas.
func gasAtMinute(phases []Phase, minute int, bottom GasMix) GasMix {
	for _, ph := range phases {
		if minute >= ph.RunTime && minute < ph.RunTime+ph.Duration {
			if ph.Gas != "" {
				if g, ok := ParseGasLabel(ph.Gas); ok {
					return g
				}
			}
			return bottom
		}
	}
	return bottom
}

// CeilingTimeline replays the whole dive (bottom plus deco) one minute at a
// time and emits the instantaneous gradient-factor ceiling in metres for
// every minute. Depth is interpolated linearly between profile points; the
// gas is the active one for that minute. The ceiling math is the reference
// Bühlmann gfLow ceiling registered by deco/zhl.
func CeilingTimeline(points []ProfilePoint, phases []Phase, bottom GasMix, gfLow float64) []float64 {
	if len(points) == 0 {
		return nil
	}
	n, upd, ceiling := MustNewGFCeiling(gfLow)
	ts := NewTissueState(n)

	total := points[len(points)-1].Time
	out := make([]float64, 0, total)
	for minute := 0; minute < total; minute++ {
		depth := DepthAt(points, minute+1)
		gas := gasAtMinute(phases, minute, bottom)
		upd.Update(ts, depth, gas, 1)
		out = append(out, ceiling(ts))
	}
	return out
}
