// register.go wires the bubble models into the deco package's model
// registry; runs when any package imports deco/bubble.
package bubble

import "github.com/deco-compare/deco-compare/deco"

func init() {
	caps := deco.Capabilities{GF: true}
	deco.RegisterModel("vpm", caps, func() deco.Model { return NewVPM() })
	deco.RegisterModel("rgbm", caps, func() deco.Model { return NewRGBM() })
}
