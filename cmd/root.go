// cmd/root.go
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/deco-compare/deco-compare/deco"
	_ "github.com/deco-compare/deco-compare/deco/bubble"
	_ "github.com/deco-compare/deco-compare/deco/classic"
	"github.com/deco-compare/deco-compare/deco/planfile"
	_ "github.com/deco-compare/deco-compare/deco/tables"
	_ "github.com/deco-compare/deco-compare/deco/zhl"
)

var (
	planString     string
	configPath     string
	algorithm      string
	o2Percent      int
	hePercent      int
	gfLow          int
	gfHigh         int
	descentRate    float64
	ascentRate     float64
	decoAscentRate float64
	ppO2Max        float64
	ppO2Deco       float64
	decoGas1       string
	decoGas2       string
	lastStop       int
	sacRate        float64
	chart          bool
	logLevel       string
	compareWith    string
	ndlDepth       float64
)

var rootCmd = &cobra.Command{
	Use:   "deco-compare",
	Short: "Decompression-schedule engine with comparable algorithms",
}

// buildInput assembles the driver input from the config file (if given) and
// the command-line flags.
func buildInput() (deco.PlanInput, error) {
	in := deco.DefaultPlanInput()
	if configPath != "" {
		spec, err := planfile.Load(configPath)
		if err != nil {
			return in, err
		}
		in = spec.ToPlanInput()
	}
	if planString != "" {
		in.Stops = deco.ParsePlan(planString)
	}
	if algorithm != "" {
		in.Algorithm = algorithm
	}
	if o2Percent > 0 {
		in.FO2 = float64(o2Percent) / 100.0
	}
	if hePercent > 0 {
		in.FHe = float64(hePercent) / 100.0
	}
	if gfLow > 0 {
		in.GFLow = float64(gfLow)
	}
	if gfHigh > 0 {
		in.GFHigh = float64(gfHigh)
	}
	if descentRate > 0 {
		in.DescentRate = descentRate
	}
	if ascentRate > 0 {
		in.AscentRate = ascentRate
	}
	if decoAscentRate > 0 {
		in.DecoAscentRate = decoAscentRate
	}
	if ppO2Max > 0 {
		in.PPO2Max = ppO2Max
	}
	if ppO2Deco > 0 {
		in.PPO2Deco = ppO2Deco
	}
	if g, ok := deco.ParseGasLabel(decoGas1); ok {
		in.DecoGas1 = &g
	}
	if g, ok := deco.ParseGasLabel(decoGas2); ok {
		in.DecoGas2 = &g
	}
	if lastStop == 6 {
		in.LastStopDepth = 6
	}
	if sacRate > 0 {
		in.SACRate = sacRate
	}
	return in, nil
}

// printSchedule renders the phase table and metrics for one run.
func printSchedule(in deco.PlanInput, res *deco.PlanResult) {
	fmt.Printf("algorithm: %s  gas: %s  GF %d/%d\n",
		in.Algorithm, deco.GasMix{FO2: in.FO2, FHe: in.FHe}.Label(), int(in.GFLow), int(in.GFHigh))
	fmt.Println("depth  dur  run  action")
	for _, ph := range res.Phases {
		gas := ""
		if ph.Gas != "" {
			gas = "  gas " + ph.Gas
		}
		fmt.Printf("%4.0fm %4d %4d  %s%s\n", ph.Depth, ph.Duration, ph.RunTime+ph.Duration, ph.Action, gas)
	}
	fmt.Printf("total time: %d min\n", res.TotalTime)
	if res.Deco != nil {
		fmt.Printf("first stop: %.0fm  ceiling: %.1fm  deco: %d min  compartments: %d\n",
			res.Deco.FirstStopDepth, res.Deco.Ceiling, res.Deco.TotalDecoTime(), res.Deco.Compartments)
		if res.Deco.CapWarning {
			logrus.Warn("a deco stop hit the iteration cap; schedule is clamped")
		}
	}
	fmt.Printf("CNS: %.1f%%  OTU: %.1f  gas: %.0f l  rock bottom: %.0f bar  turn: %.0f bar\n",
		res.CNS, res.OTU, res.GasLiters, res.RockBottom, res.Thirds.TurnBar)

	mix := deco.GasMix{FO2: in.FO2, FHe: in.FHe}
	maxDepth := 0.0
	for _, s := range in.Stops {
		if s.Depth > maxDepth {
			maxDepth = s.Depth
		}
	}
	if mod := mix.MOD(in.PPO2Max); maxDepth > mod {
		logrus.Warnf("planned depth %.0fm exceeds the bottom gas MOD of %.0fm at ppO2 %.1f", maxDepth, mod, in.PPO2Max)
	}
	if res.CNS > 80 {
		logrus.Warnf("CNS clock at %.0f%% exceeds the 80%% planning limit", res.CNS)
	}

	if chart {
		depths := make([]float64, 0, len(res.Points))
		for _, p := range res.Points {
			depths = append(depths, -p.Depth)
		}
		fmt.Println(asciigraph.Plot(depths, asciigraph.Height(12), asciigraph.Caption("depth profile (m, inverted)")))
	}
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute the full ascent schedule and metrics for a dive plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := buildInput()
		if err != nil {
			return err
		}
		logrus.Infof("planning %q on %s", deco.FormatPlan(in.Stops), in.Algorithm)
		res := deco.RunPlan(in)
		printSchedule(in, res)
		return nil
	},
}

var ndlCmd = &cobra.Command{
	Use:   "ndl",
	Short: "Find the no-decompression limit for a depth and gas",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := buildInput()
		if err != nil {
			return err
		}
		model, ok := deco.NewModel(in.Algorithm)
		if !ok {
			return fmt.Errorf("unknown algorithm %q (known: %s)", in.Algorithm, strings.Join(deco.ModelIDs(), ", "))
		}
		opts := deco.Options{
			Gas:            deco.GasMix{FO2: in.FO2, FHe: in.FHe},
			GFLow:          in.GFLow,
			GFHigh:         in.GFHigh,
			AscentRate:     in.AscentRate,
			DecoAscentRate: in.DecoAscentRate,
			LastStopDepth:  in.LastStopDepth,
		}
		ndl := deco.SolveNDL(model, ndlDepth, in.DescentRate, in.AscentRate, opts)
		fmt.Printf("NDL at %.0fm on %s (%s): %d min\n", ndlDepth, opts.Gas.Label(), in.Algorithm, ndl)
		return nil
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run the same plan against two algorithms side by side",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := buildInput()
		if err != nil {
			return err
		}
		if compareWith == "" {
			return fmt.Errorf("--with is required (known: %s)", strings.Join(deco.ModelIDs(), ", "))
		}
		resA, resB := deco.ComparePlans(in, in.Algorithm, compareWith)
		for _, entry := range []struct {
			id  string
			res *deco.PlanResult
		}{{in.Algorithm, resA}, {compareWith, resB}} {
			fmt.Printf("--- %s ---\n", entry.id)
			if entry.res.Deco == nil {
				fmt.Println("no schedule (unknown algorithm or simple ascent)")
				continue
			}
			for _, s := range entry.res.Deco.RealStops() {
				fmt.Printf("  %2.0fm %3d min\n", s.Depth, s.Time)
			}
			fmt.Printf("  first stop %.0fm, deco %d min, total %d min\n",
				entry.res.Deco.FirstStopDepth, entry.res.Deco.TotalDecoTime(), entry.res.TotalTime)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func initLogging(cmd *cobra.Command, args []string) {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentPreRun = initLogging

	for _, c := range []*cobra.Command{planCmd, ndlCmd, compareCmd} {
		c.Flags().StringVar(&planString, "plan", "", "Dive plan in D:T,D:T form (metres:minutes)")
		c.Flags().StringVar(&configPath, "config", "", "YAML plan file")
		c.Flags().StringVar(&algorithm, "algo", "", "Algorithm identifier (default zhl16c)")
		c.Flags().IntVar(&o2Percent, "o2", 0, "Bottom gas oxygen percent")
		c.Flags().IntVar(&hePercent, "he", 0, "Bottom gas helium percent")
		c.Flags().IntVar(&gfLow, "gf-low", 0, "Gradient factor low (percent)")
		c.Flags().IntVar(&gfHigh, "gf-high", 0, "Gradient factor high (percent)")
		c.Flags().Float64Var(&descentRate, "descent", 0, "Descent rate m/min (default 18)")
		c.Flags().Float64Var(&ascentRate, "ascent", 0, "Ascent rate m/min (default 9)")
		c.Flags().Float64Var(&decoAscentRate, "deco-ascent", 0, "Deco ascent rate m/min")
		c.Flags().Float64Var(&ppO2Max, "ppo2-max", 0, "Bottom ppO2 cap in bar (default 1.4)")
		c.Flags().Float64Var(&ppO2Deco, "ppo2-deco", 0, "Deco ppO2 cap in bar (default 1.6)")
		c.Flags().StringVar(&decoGas1, "deco-gas1", "", "First deco gas as O2/He label, e.g. 50/0")
		c.Flags().StringVar(&decoGas2, "deco-gas2", "", "Second deco gas as O2/He label")
		c.Flags().IntVar(&lastStop, "last-stop", 3, "Last stop depth, 3 or 6 metres")
		c.Flags().Float64Var(&sacRate, "sac", 0, "Surface air consumption l/min (default 20)")
	}
	planCmd.Flags().BoolVar(&chart, "chart", false, "Render the depth profile as an ASCII chart")
	ndlCmd.Flags().Float64Var(&ndlDepth, "depth", 30, "Depth in metres")
	compareCmd.Flags().StringVar(&compareWith, "with", "", "Second algorithm identifier")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(ndlCmd)
	rootCmd.AddCommand(compareCmd)
}
