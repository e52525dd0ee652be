package convect

import "github.com/cpmech/gosl/fun"

// FuncCb adapts a plain (t,x) closure to gosl's fun.Func interface, the same
// interface type used throughout the pack for boundary ramps and spatial
// profiles (ele/diffusion.Diffusion.Sfun fun.Func, evaluated pointwise as
// o.Sfun.F(sol.T, o.Xip)).
type FuncCb func(t float64, x []float64) float64

// F implements fun.Func.
func (f FuncCb) F(t float64, x []float64) float64 { return f(t, x) }

var _ fun.Func = FuncCb(nil)

// SampleProfile evaluates f pointwise at (t,x[j]) for every node, the same
// per-node evaluation shape diffusion.go uses to fill Sfun into a scalar
// source field before handing it to the RHS.
func SampleProfile(f fun.Func, t float64, x []float64) []float64 {
	v := make([]float64, len(x))
	for j := range x {
		v[j] = f.F(t, x[j:j+1])
	}
	return v
}
