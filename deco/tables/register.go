// register.go wires the table models into the deco package's model
// registry; runs when any package imports deco/tables.
package tables

import "github.com/deco-compare/deco-compare/deco"

func init() {
	caps := deco.Capabilities{}
	deco.RegisterModel("dsat", caps, func() deco.Model { return NewDSAT() })
	deco.RegisterModel("usnavy", caps, func() deco.Model { return NewUSNavy() })
	deco.RegisterModel("bsac", caps, func() deco.Model { return NewBSAC() })
}
