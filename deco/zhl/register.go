// register.go wires the ZH-L variants into the deco package's model
// registry, and supplies the reference gradient-factor ceiling used by the
// ceiling timeline. This init() runs when any package imports deco/zhl,
// breaking the import cycle between deco/ (contract owner) and deco/zhl/
// (implementation). Production code imports deco/zhl directly; test code in
// package deco uses algo_import_test.go for the blank import.
package zhl

import "github.com/deco-compare/deco-compare/deco"

func init() {
	caps := deco.Capabilities{Trimix: true, MultiGas: true, GF: true}
	for _, variant := range []string{"zhl16a", "zhl16b", "zhl16c", "zhl12", "zhl8adt", "zhl6"} {
		v := variant
		deco.RegisterModel(v, caps, func() deco.Model { return New(v) })
	}

	deco.NewGFCeilingFunc = func(gfLow float64) (int, deco.TissueUpdater, func(*deco.TissueState) float64) {
		m := New("zhl16c")
		upd := &deco.SchreinerUpdater{HalfTimesN2: m.p.HalfN2, HalfTimesHe: m.p.HalfHe}
		gf := gfLow / 100.0
		return len(m.p.HalfN2), upd, func(ts *deco.TissueState) float64 {
			return m.Ceiling(ts, gf)
		}
	}
}
