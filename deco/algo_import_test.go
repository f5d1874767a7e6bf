package deco_test

// Blank imports trigger the algorithm sub-packages' init() registration.
// This lets the driver and property tests exercise every model without
// package deco importing its own implementation packages (which would create
// an import cycle).
import (
	_ "github.com/deco-compare/deco-compare/deco/bubble"
	_ "github.com/deco-compare/deco-compare/deco/classic"
	_ "github.com/deco-compare/deco-compare/deco/tables"
	_ "github.com/deco-compare/deco-compare/deco/zhl"
)
