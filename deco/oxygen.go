package deco

import "math"

// cnsRow maps a ppO2 threshold to the NOAA maximum single-exposure minutes.
type cnsRow struct {
	ppO2       float64
	maxMinutes float64
}

// NOAA CNS exposure limits, highest threshold first.
var cnsTable = []cnsRow{
	{1.6, 45},
	{1.5, 120},
	{1.4, 150},
	{1.3, 180},
	{1.2, 210},
	{1.1, 240},
	{1.0, 300},
	{0.9, 360},
	{0.8, 450},
	{0.7, 570},
	{0.6, 720},
}

// cnsMaxMinutes returns the limit for the highest table threshold at or
// below the ppO2. Exposures below 0.5 bar do not tick the clock.
func cnsMaxMinutes(ppO2 float64) float64 {
	if ppO2 < 0.5 {
		return 0
	}
	for _, row := range cnsTable {
		if ppO2 >= row.ppO2 {
			return row.maxMinutes
		}
	}
	return cnsTable[len(cnsTable)-1].maxMinutes
}

// phaseAvgDepth is the depth a phase is charged at: transit phases use half
// the end depth, everything else the phase depth.
func phaseAvgDepth(ph Phase) float64 {
	if ph.Action == ActionAscend || ph.Action == ActionDescend {
		return ph.Depth / 2.0
	}
	return ph.Depth
}

// phaseFO2 resolves the oxygen fraction for a phase: its gas tag when
// present, otherwise the bottom gas.
func phaseFO2(ph Phase, bottom GasMix) float64 {
	if ph.Gas != "" {
		if g, ok := ParseGasLabel(ph.Gas); ok {
			return g.FO2
		}
	}
	return bottom.FO2
}

// CNSPercent accumulates the NOAA CNS oxygen-toxicity clock across a phase
// stream. Returns the saturating total (capped at 999) and the running total
// after each phase.
func CNSPercent(phases []Phase, bottom GasMix) (float64, []float64) {
	const saturation = 999.0
	total := 0.0
	running := make([]float64, 0, len(phases))
	for _, ph := range phases {
		ppO2 := DepthToPressure(phaseAvgDepth(ph)) * phaseFO2(ph, bottom)
		if limit := cnsMaxMinutes(ppO2); limit > 0 {
			total += float64(ph.Duration) / limit * 100.0
		}
		if total > saturation {
			total = saturation
		}
		running = append(running, total)
	}
	return total, running
}

// OTU accumulates Lambertsen oxygen tolerance units across a phase stream:
// duration * ((ppO2-0.5)/0.5)^0.83 for every phase above 0.5 bar.
func OTU(phases []Phase, bottom GasMix) float64 {
	total := 0.0
	for _, ph := range phases {
		ppO2 := DepthToPressure(phaseAvgDepth(ph)) * phaseFO2(ph, bottom)
		if ppO2 > 0.5 {
			total += float64(ph.Duration) * math.Pow((ppO2-0.5)/0.5, 0.83)
		}
	}
	return total
}
