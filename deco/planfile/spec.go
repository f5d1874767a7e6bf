// Package planfile loads dive-plan specifications from YAML files for the
// CLI. A spec mirrors the driver input: the plan dialect string plus
// settings, with engine defaults applied to zero-valued fields.
package planfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/deco-compare/deco-compare/deco"
)

// TankSpec describes the cylinder.
type TankSpec struct {
	SizeLiters float64 `yaml:"size_liters"`
	StartBar   float64 `yaml:"start_bar"`
	ReserveBar float64 `yaml:"reserve_bar"`
}

// Spec is the top-level plan configuration.
type Spec struct {
	Name           string   `yaml:"name"`
	Plan           string   `yaml:"plan"` // "D:T,D:T,…"
	Algorithm      string   `yaml:"algorithm"`
	O2             int      `yaml:"o2"` // whole percent
	He             int      `yaml:"he"`
	GFLow          int      `yaml:"gf_low"`
	GFHigh         int      `yaml:"gf_high"`
	DescentRate    float64  `yaml:"descent_rate"`
	AscentRate     float64  `yaml:"ascent_rate"`
	DecoAscentRate float64  `yaml:"deco_ascent_rate"`
	PPO2Max        float64  `yaml:"ppo2_max"`
	PPO2Deco       float64  `yaml:"ppo2_deco"`
	DecoGas1       string   `yaml:"deco_gas_1,omitempty"` // "O2/He" label
	DecoGas2       string   `yaml:"deco_gas_2,omitempty"`
	GasSwitchTime  bool     `yaml:"gas_switch_time"`
	LastStop       int      `yaml:"last_stop"`
	SAC            float64  `yaml:"sac"`
	Tank           TankSpec `yaml:"tank"`
}

// applyDefaults fills zero-valued fields with the engine defaults.
func (s *Spec) applyDefaults() {
	def := deco.DefaultPlanInput()
	if s.Algorithm == "" {
		s.Algorithm = def.Algorithm
	}
	if s.O2 <= 0 {
		s.O2 = 21
	}
	if s.GFLow <= 0 {
		s.GFLow = int(def.GFLow)
	}
	if s.GFHigh <= 0 {
		s.GFHigh = int(def.GFHigh)
	}
	if s.DescentRate <= 0 {
		s.DescentRate = def.DescentRate
	}
	if s.AscentRate <= 0 {
		s.AscentRate = def.AscentRate
	}
	if s.DecoAscentRate <= 0 {
		s.DecoAscentRate = def.DecoAscentRate
	}
	if s.PPO2Max <= 0 {
		s.PPO2Max = def.PPO2Max
	}
	if s.PPO2Deco <= 0 {
		s.PPO2Deco = def.PPO2Deco
	}
	if s.LastStop != 6 {
		s.LastStop = 3
	}
	if s.SAC <= 0 {
		s.SAC = def.SACRate
	}
	if s.Tank.SizeLiters <= 0 {
		s.Tank = TankSpec{SizeLiters: def.Tank.SizeLiters, StartBar: def.Tank.StartBar, ReserveBar: def.Tank.ReserveBar}
	}
}

// Load reads a plan spec from a YAML file and applies the engine defaults.
// Beyond YAML parsing, field values are not checked.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("planfile: read %s: %w", path, err)
	}
	var s Spec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("planfile: parse %s: %w", path, err)
	}
	s.applyDefaults()
	return &s, nil
}

// ToPlanInput converts a spec into the driver input.
func (s *Spec) ToPlanInput() deco.PlanInput {
	in := deco.DefaultPlanInput()
	in.Stops = deco.ParsePlan(s.Plan)
	in.Algorithm = s.Algorithm
	in.FO2 = float64(s.O2) / 100.0
	in.FHe = float64(s.He) / 100.0
	in.GFLow = float64(s.GFLow)
	in.GFHigh = float64(s.GFHigh)
	in.DescentRate = s.DescentRate
	in.AscentRate = s.AscentRate
	in.DecoAscentRate = s.DecoAscentRate
	in.PPO2Max = s.PPO2Max
	in.PPO2Deco = s.PPO2Deco
	in.GasSwitchTime = s.GasSwitchTime
	in.LastStopDepth = float64(s.LastStop)
	in.SACRate = s.SAC
	in.Tank = deco.TankConfig{SizeLiters: s.Tank.SizeLiters, StartBar: s.Tank.StartBar, ReserveBar: s.Tank.ReserveBar}
	if g, ok := deco.ParseGasLabel(s.DecoGas1); ok {
		in.DecoGas1 = &g
	}
	if g, ok := deco.ParseGasLabel(s.DecoGas2); ok {
		in.DecoGas2 = &g
	}
	return in
}
