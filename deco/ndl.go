package deco

// noDecoAt reports whether a single-stop dive to depth for bottomTime
// minutes stays within no-deco limits under the model.
func noDecoAt(m Model, depth float64, bottomTime int, descentRate, ascentRate float64, opts Options) bool {
	profile := BuildProfile([]Stop{{Depth: depth, Time: bottomTime}}, descentRate, ascentRate)
	r := m.Run(profile.Phases, opts)
	return r.NoDecoLimit || len(r.DecoStops) == 0
}

// SolveNDL binary-searches bottom time in [1, 300] minutes for the longest
// single-stop dive to depth that requires no mandatory stops. Returns 0 when
// even one minute requires deco, 300 when the cap never does.
func SolveNDL(m Model, depth, descentRate, ascentRate float64, opts Options) int {
	const maxBottom = 300
	if !noDecoAt(m, depth, 1, descentRate, ascentRate, opts) {
		return 0
	}
	if noDecoAt(m, depth, maxBottom, descentRate, ascentRate, opts) {
		return maxBottom
	}
	lo, hi := 1, maxBottom // lo is no-deco, hi requires deco
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if noDecoAt(m, depth, mid, descentRate, ascentRate, opts) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// ProfileNDL finds how much longer the last planned stop could be extended
// before the profile requires mandatory stops. Returns 0 when the profile is
// already a deco dive, 300 when the cap never is.
func ProfileNDL(m Model, stops []Stop, descentRate, ascentRate float64, opts Options) int {
	if len(stops) == 0 {
		return 300
	}
	extended := func(extra int) bool {
		probe := make([]Stop, len(stops))
		copy(probe, stops)
		probe[len(probe)-1].Time += extra
		profile := BuildProfile(probe, descentRate, ascentRate)
		r := m.Run(profile.Phases, opts)
		return r.NoDecoLimit || len(r.DecoStops) == 0
	}
	const maxExtra = 300
	if !extended(0) {
		return 0
	}
	if extended(maxExtra) {
		return maxExtra
	}
	lo, hi := 0, maxExtra
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if extended(mid) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}
