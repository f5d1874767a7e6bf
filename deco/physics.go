package deco

import "math"

// Physical constants shared by every algorithm. Pressures are in bar,
// depths in metres of seawater (10 msw = 1 bar hydrostatic).
const (
	// PSurface is atmospheric pressure at sea level.
	PSurface = 1.01325
	// PWaterVapor is the water-vapour pressure in the lungs, constant
	// regardless of ambient pressure (47 mmHg).
	PWaterVapor = 0.0627
	// SurfaceTension and SkinCompression are the VPM bubble-mechanics
	// constants gamma and gamma_c, in N/m.
	SurfaceTension  = 0.0179
	SkinCompression = 0.0257
	// CriticalVolumeLambda is the VPM critical-volume parameter (fsw·min).
	CriticalVolumeLambda = 7500
	// MetersToFeet converts msw depths to feet for Workman-style M-values.
	MetersToFeet = 3.28084
	// FswToBar converts an absolute pressure in feet of seawater to bar.
	FswToBar = 0.030643
	// StopInterval is the deco-stop spacing in metres.
	StopInterval = 3.0
	// MaxStopMinutes caps the per-stop scheduler iteration.
	MaxStopMinutes = 999
)

// DepthToPressure returns the absolute ambient pressure at a depth in metres.
func DepthToPressure(depth float64) float64 {
	return PSurface + depth/10.0
}

// PressureToDepth is the inverse of DepthToPressure. Pressures below the
// surface pressure map to depth 0.
func PressureToDepth(p float64) float64 {
	if p <= PSurface {
		return 0
	}
	return (p - PSurface) * 10.0
}

// InspiredPressure returns the alveolar partial pressure of a gas fraction at
// depth, after subtracting lung water-vapour pressure.
func InspiredPressure(depth, fraction float64) float64 {
	return (DepthToPressure(depth) - PWaterVapor) * fraction
}

// Schreiner advances a compartment pressure toward the inspired pressure pi
// over an integer number of minutes with the given half-time. The same
// exponential is used for on-gassing and off-gassing. t <= 0 returns p0
// unchanged.
func Schreiner(p0, pi float64, minutes int, halfTime float64) float64 {
	if minutes <= 0 || halfTime <= 0 {
		return p0
	}
	return p0 + (pi-p0)*(1.0-math.Pow(2.0, -float64(minutes)/halfTime))
}

// CalcMOD returns the maximum operating depth in whole metres for a gas with
// the given oxygen fraction at the chosen ppO2 cap. A zero oxygen fraction
// yields 0.
func CalcMOD(fO2, ppO2 float64) float64 {
	if fO2 <= 0 {
		return 0
	}
	return math.Floor(10.0 * (ppO2/fO2 - 1.0))
}

// RoundUpToStop quantises a ceiling depth up to the next stop interval.
func RoundUpToStop(depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return math.Ceil(depth/StopInterval) * StopInterval
}

// FirstStopFromCeiling converts a raw ceiling into a first-stop depth,
// quantised to the stop interval and never deeper than the deepest planned
// depth.
func FirstStopFromCeiling(ceiling, deepest float64) float64 {
	first := RoundUpToStop(ceiling)
	if first > deepest {
		first = math.Floor(deepest/StopInterval) * StopInterval
	}
	return first
}
