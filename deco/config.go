package deco

// Options groups the per-run algorithm options. Each algorithm ignores what
// does not apply to it (Haldane ignores gradient factors, single-gas models
// ignore the switch list).
type Options struct {
	Gas            GasMix      // bottom gas
	GFLow          float64     // percent, deep-stop conservatism
	GFHigh         float64     // percent, surfacing conservatism
	AscentRate     float64     // m/min during the bottom portion
	DecoAscentRate float64     // m/min between deco stops
	GasSwitches    []GasSwitch // deco gases, honoured by multi-gas models
	LastStopDepth  float64     // 3 or 6 metres
	GasSwitchTime  bool        // give gas-switch marker stops one minute
}

// DefaultOptions returns the engine defaults: air, GF 30/70, 9 m/min ascent,
// last stop at 3 m.
func DefaultOptions() Options {
	return Options{
		Gas:            Air(),
		GFLow:          30,
		GFHigh:         70,
		AscentRate:     9,
		DecoAscentRate: 9,
		LastStopDepth:  3,
	}
}

// Normalize clamps out-of-band option values into their domains.
func (o Options) Normalize() Options {
	if o.Gas.FO2 <= 0 || o.Gas.FO2 > 1 {
		o.Gas = Air()
	}
	if o.Gas.FHe < 0 || o.Gas.FO2+o.Gas.FHe > 1 {
		o.Gas.FHe = 0
	}
	if o.GFLow <= 0 || o.GFLow > 100 {
		o.GFLow = 30
	}
	if o.GFHigh <= 0 || o.GFHigh > 100 {
		o.GFHigh = 70
	}
	if o.GFLow > o.GFHigh {
		o.GFLow = o.GFHigh
	}
	if o.AscentRate <= 0 {
		o.AscentRate = 9
	}
	if o.DecoAscentRate <= 0 {
		o.DecoAscentRate = o.AscentRate
	}
	if o.LastStopDepth != 6 {
		o.LastStopDepth = 3
	}
	return o
}

// GFAt interpolates the gradient factor (percent) for an ascent target
// depth: gfLow at the first stop rising linearly to gfHigh at the surface.
func GFAt(nextDepth, firstStopDepth, gfLow, gfHigh float64) float64 {
	if firstStopDepth <= 0 {
		return gfHigh
	}
	d := nextDepth
	if d < 0 {
		d = 0
	}
	gf := gfHigh + (gfLow-gfHigh)*d/firstStopDepth
	if gf > gfHigh && gfLow <= gfHigh {
		gf = gfHigh
	}
	return gf
}
