package zhl

import "math"

// Params is one ZH-L parameter set: per-compartment half-times and a/b
// coefficients for nitrogen and helium. Helium half-times are the nitrogen
// half-times divided by the He/N2 diffusion-coefficient ratio.
type Params struct {
	Variant string
	HalfN2  []float64
	A       []float64
	B       []float64
	HalfHe  []float64
	AHe     []float64
	BHe     []float64
}

// HeDiffusionRatio is the He/N2 diffusion-coefficient ratio.
const HeDiffusionRatio = 2.65

// The 16-compartment variants share one nitrogen half-time set. The a vectors
// differ per variant (16C trims the fastest compartment); 16B and 16C share
// their b vector and helium coefficients, while 16A has its own.
var halfN2Set16 = []float64{4.0, 8.0, 12.5, 18.5, 27.0, 38.3, 54.3, 77.0, 109.0, 146.0, 187.0, 239.0, 305.0, 390.0, 498.0, 635.0}

var halfHeSet16 = []float64{1.51, 3.02, 4.72, 6.99, 10.21, 14.48, 20.53, 29.11, 41.20, 55.19, 70.69, 90.34, 115.29, 147.42, 188.24, 240.03}

var aSet16A = []float64{1.2599, 1.0000, 0.8618, 0.7562, 0.6667, 0.5933, 0.5282, 0.4701, 0.4187, 0.3798, 0.3497, 0.3223, 0.2971, 0.2737, 0.2523, 0.2327}
var bSet16A = []float64{0.5050, 0.6514, 0.7222, 0.7725, 0.8125, 0.8434, 0.8693, 0.8910, 0.9092, 0.9222, 0.9319, 0.9403, 0.9477, 0.9544, 0.9602, 0.9653}

var aSet16B = []float64{1.2599, 1.0000, 0.8618, 0.7562, 0.6667, 0.5505, 0.4858, 0.4443, 0.4187, 0.3798, 0.3497, 0.3223, 0.2828, 0.2737, 0.2523, 0.2327}
var aSet16C = []float64{1.1696, 1.0000, 0.8618, 0.7562, 0.6667, 0.5600, 0.4947, 0.4500, 0.4187, 0.3798, 0.3497, 0.3223, 0.2850, 0.2737, 0.2523, 0.2327}
var bSet16BC = []float64{0.5240, 0.6514, 0.7222, 0.7825, 0.8126, 0.8434, 0.8693, 0.8910, 0.9092, 0.9222, 0.9319, 0.9403, 0.9477, 0.9544, 0.9602, 0.9653}

var heASet16A = []float64{1.7435, 1.3838, 1.1925, 1.0465, 0.9226, 0.8211, 0.7309, 0.6506, 0.5794, 0.5256, 0.4840, 0.4460, 0.4112, 0.3788, 0.3492, 0.3220}
var heBSet16A = []float64{0.1911, 0.4295, 0.5446, 0.6265, 0.6917, 0.7420, 0.7841, 0.8195, 0.8491, 0.8703, 0.8860, 0.8997, 0.9118, 0.9226, 0.9321, 0.9404}

var heASet16BC = []float64{1.6189, 1.3830, 1.1919, 1.0458, 0.9220, 0.8205, 0.7305, 0.6502, 0.5950, 0.5545, 0.5333, 0.5189, 0.5181, 0.5176, 0.5172, 0.5119}
var heBSet16BC = []float64{0.4245, 0.5747, 0.6527, 0.7223, 0.7582, 0.7957, 0.8279, 0.8553, 0.8757, 0.8903, 0.8997, 0.9073, 0.9122, 0.9171, 0.9217, 0.9267}

// Half-time sets for the reduced-compartment variants; a/b are derived from
// the half-times rather than tabulated.
var halfN2Set12 = []float64{4.0, 8.0, 12.5, 18.5, 27.0, 38.3, 54.3, 77.0, 109.0, 146.0, 187.0, 239.0}
var halfN2Set8 = []float64{5.0, 10.0, 18.5, 38.3, 77.0, 146.0, 305.0, 635.0}
var halfN2Set6 = []float64{5.0, 12.5, 27.0, 54.3, 109.0, 239.0}

// deriveParams computes a and b directly from half-times:
// a = 2*tau^(-1/3), b = 1.005 - tau^(-1/2), for both gases.
func deriveParams(variant string, halfN2 []float64) Params {
	n := len(halfN2)
	p := Params{
		Variant: variant,
		HalfN2:  halfN2,
		A:       make([]float64, n),
		B:       make([]float64, n),
		HalfHe:  make([]float64, n),
		AHe:     make([]float64, n),
		BHe:     make([]float64, n),
	}
	for i, tau := range halfN2 {
		p.A[i] = 2.0 * math.Pow(tau, -1.0/3.0)
		p.B[i] = 1.005 - math.Pow(tau, -1.0/2.0)
		tauHe := tau / HeDiffusionRatio
		p.HalfHe[i] = tauHe
		p.AHe[i] = 2.0 * math.Pow(tauHe, -1.0/3.0)
		p.BHe[i] = 1.005 - math.Pow(tauHe, -1.0/2.0)
	}
	return p
}

func tabulated(variant string, a, b, heA, heB []float64) Params {
	return Params{
		Variant: variant,
		HalfN2:  halfN2Set16,
		A:       a,
		B:       b,
		HalfHe:  halfHeSet16,
		AHe:     heA,
		BHe:     heB,
	}
}

var variants = map[string]Params{
	"zhl16a":  tabulated("zhl16a", aSet16A, bSet16A, heASet16A, heBSet16A),
	"zhl16b":  tabulated("zhl16b", aSet16B, bSet16BC, heASet16BC, heBSet16BC),
	"zhl16c":  tabulated("zhl16c", aSet16C, bSet16BC, heASet16BC, heBSet16BC),
	"zhl12":   deriveParams("zhl12", halfN2Set12),
	"zhl8adt": deriveParams("zhl8adt", halfN2Set8),
	"zhl6":    deriveParams("zhl6", halfN2Set6),
}

// VariantParams returns the parameter set for a variant identifier.
func VariantParams(variant string) (Params, bool) {
	p, ok := variants[variant]
	return p, ok
}
