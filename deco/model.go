package deco

import "sort"

// Capabilities flags what a model honours: helium tracking, deco gas
// switches, and gradient factors. Models are free to ignore inapplicable
// options but always return the full Result shape.
type Capabilities struct {
	Trimix   bool
	MultiGas bool
	GF       bool
}

// Model is the single contract every decompression algorithm implements.
type Model interface {
	// ID returns the stable algorithm identifier (e.g. "zhl16c", "vpm").
	ID() string
	// Run simulates the phase stream and produces the deco schedule plus
	// final tissue state. It never fails: malformed input yields an empty
	// result with NoDecoLimit set.
	Run(phases []Phase, opts Options) *Result
}

// ModelFactory constructs a fresh model instance for one run.
type ModelFactory func() Model

type registration struct {
	factory ModelFactory
	caps    Capabilities
}

// registry maps algorithm identifiers to their factories. Populated by
// sub-package init() functions (deco/zhl, deco/bubble, deco/classic,
// deco/tables), which breaks the import cycle between deco/ (contract owner)
// and the implementation packages.
var registry = map[string]registration{}

// RegisterModel wires an algorithm into the registry. Called from
// implementation sub-package init() functions.
func RegisterModel(id string, caps Capabilities, f ModelFactory) {
	registry[id] = registration{factory: f, caps: caps}
}

// NewModel returns a fresh instance of the identified algorithm, or false
// when the identifier is unknown (including "none").
func NewModel(id string) (Model, bool) {
	reg, ok := registry[id]
	if !ok {
		return nil, false
	}
	return reg.factory(), true
}

// ModelCapabilities reports the capability flags of a registered algorithm.
func ModelCapabilities(id string) (Capabilities, bool) {
	reg, ok := registry[id]
	if !ok {
		return Capabilities{}, false
	}
	return reg.caps, true
}

// ModelIDs returns the registered identifiers, sorted.
func ModelIDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// NewGFCeilingFunc is a factory for the reference gradient-factor ceiling
// used by the per-minute ceiling timeline: it returns the compartment count,
// a tissue updater and an instantaneous-ceiling function for the given gfLow
// (percent). Set by deco/zhl's init().
//
// CeilingTimeline reaches it through MustNewGFCeiling. Production callers
// should import deco/zhl; the deco_test tests get the registration from the
// blank imports in algo_import_test.go, which avoids the import cycle.
var NewGFCeilingFunc func(gfLow float64) (int, TissueUpdater, func(*TissueState) float64)

// MustNewGFCeiling calls NewGFCeilingFunc with a nil guard. Panics with an
// actionable message if deco/zhl has not been imported.
func MustNewGFCeiling(gfLow float64) (int, TissueUpdater, func(*TissueState) float64) {
	if NewGFCeilingFunc == nil {
		panic("NewGFCeilingFunc not registered: import deco/zhl to register it " +
			"(add: import _ \"github.com/deco-compare/deco-compare/deco/zhl\")")
	}
	return NewGFCeilingFunc(gfLow)
}
