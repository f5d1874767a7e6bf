// register.go wires the historical models into the deco package's model
// registry; runs when any package imports deco/classic.
package classic

import "github.com/deco-compare/deco-compare/deco"

func init() {
	caps := deco.Capabilities{}
	deco.RegisterModel("haldane", caps, func() deco.Model { return NewHaldane() })
	deco.RegisterModel("workman", caps, func() deco.Model { return NewWorkman() })
	deco.RegisterModel("thalmann", caps, func() deco.Model { return NewThalmann() })
	deco.RegisterModel("dciem", caps, func() deco.Model { return NewDCIEM() })
}
