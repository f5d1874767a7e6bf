package deco

import "github.com/sirupsen/logrus"

// PlanInput is the full driver input: the user plan plus settings.
type PlanInput struct {
	Stops          []Stop
	Algorithm      string
	FO2            float64
	FHe            float64
	GFLow          float64
	GFHigh         float64
	DescentRate    float64
	AscentRate     float64
	DecoAscentRate float64
	PPO2Max        float64
	PPO2Deco       float64
	DecoGas1       *GasMix
	DecoGas2       *GasMix
	GasSwitchTime  bool
	LastStopDepth  float64
	SACRate        float64
	Tank           TankConfig
}

// DefaultPlanInput returns the driver defaults: air on ZH-L16C at GF 30/70,
// 18/9 m/min rates, ppO2 caps 1.4/1.6, last stop at 3 m.
func DefaultPlanInput() PlanInput {
	return PlanInput{
		Algorithm:      "zhl16c",
		FO2:            0.21,
		GFLow:          30,
		GFHigh:         70,
		DescentRate:    18,
		AscentRate:     9,
		DecoAscentRate: 9,
		PPO2Max:        1.4,
		PPO2Deco:       1.6,
		LastStopDepth:  3,
		SACRate:        DefaultSACRate,
		Tank:           DefaultTank(),
	}
}

// PlanResult is the driver output: the final phase/point sequence with deco
// spliced in, plus the derived scalar metrics.
type PlanResult struct {
	Points     []ProfilePoint
	Phases     []Phase
	TotalTime  int
	Deco       *Result
	CNS        float64
	OTU        float64
	GasLiters  float64
	RockBottom float64
	Thirds     ThirdsPlan
}

// synthesizeSwitches turns the optional deco gases into gas switches, each
// activated at its MOD against the deco ppO2 cap.
func synthesizeSwitches(in PlanInput) []GasSwitch {
	ppO2 := in.PPO2Deco
	if ppO2 <= 0 {
		ppO2 = 1.6
	}
	var switches []GasSwitch
	for _, g := range []*GasMix{in.DecoGas1, in.DecoGas2} {
		if g == nil || g.FO2 <= 0 {
			continue
		}
		switches = append(switches, GasSwitch{Depth: CalcMOD(g.FO2, ppO2), Mix: *g})
	}
	return switches
}

// RunPlan executes the whole pipeline: build the profile, run the selected
// algorithm, splice the ascent, and collect the metrics. It is total on its
// input domain: malformed elements are dropped or clamped, an unknown
// algorithm falls back to a simple ascent, and an empty plan yields an empty
// result with NoDecoLimit set.
func RunPlan(in PlanInput) *PlanResult {
	profile := BuildProfile(in.Stops, in.DescentRate, in.AscentRate)
	if len(profile.Phases) == 0 {
		return &PlanResult{
			Points: profile.Points,
			Deco:   &Result{NoDecoLimit: true},
			Thirds: RuleOfThirds(in.Tank, 0),
		}
	}

	opts := Options{
		Gas:            GasMix{FO2: in.FO2, FHe: in.FHe},
		GFLow:          in.GFLow,
		GFHigh:         in.GFHigh,
		AscentRate:     in.AscentRate,
		DecoAscentRate: in.DecoAscentRate,
		GasSwitches:    synthesizeSwitches(in),
		LastStopDepth:  in.LastStopDepth,
		GasSwitchTime:  in.GasSwitchTime,
	}.Normalize()

	var deco *Result
	if model, ok := NewModel(in.Algorithm); ok {
		deco = model.Run(profile.Phases, opts)
	} else if in.Algorithm != "none" && in.Algorithm != "" {
		logrus.Debugf("deco: unknown algorithm %q, falling back to simple ascent", in.Algorithm)
	}

	withSafety := deco == nil
	AssembleAscent(profile, deco.Stops(), opts.DecoAscentRate, withSafety)

	cns, _ := CNSPercent(profile.Phases, opts.Gas)
	otu := OTU(profile.Phases, opts.Gas)
	liters, _ := Consumption(profile.Phases, in.SACRate)

	return &PlanResult{
		Points:     profile.Points,
		Phases:     profile.Phases,
		TotalTime:  profile.LastStopEnd,
		Deco:       deco,
		CNS:        cns,
		OTU:        otu,
		GasLiters:  liters,
		RockBottom: RockBottom(profile.MaxDepth, opts.AscentRate, in.SACRate, in.Tank),
		Thirds:     RuleOfThirds(in.Tank, liters),
	}
}

// ComparePlans runs the same plan against two algorithms.
func ComparePlans(in PlanInput, algoA, algoB string) (*PlanResult, *PlanResult) {
	a, b := in, in
	a.Algorithm = algoA
	b.Algorithm = algoB
	return RunPlan(a), RunPlan(b)
}
