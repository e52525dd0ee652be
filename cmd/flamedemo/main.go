// Command flamedemo exercises the outer-driver contract of the convection
// core (spec §6): build a grid, configure a Coordinator, advance it one
// split step, and print the resulting state.
package main

import (
	"flag"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/flameconv/convect"
	"github.com/cpmech/flameconv/grid"
)

// tleftRamp is the kind of time-dependent boundary condition the teacher
// types as fun.Func and evaluates once per step (bc.Fcn.F(sol.T, nil) in
// essenbcs.go); here it drives the left-node inflow temperature.
var tleftRamp = convect.FuncCb(func(t float64, x []float64) float64 {
	return 300.0 + 200.0*t
})

// qdotShape is a heat-release profile evaluated pointwise per node, the same
// way ele/diffusion evaluates its Sfun source field at each integration
// point; it anchors the continuity boundary condition at its peak (BCQdot).
var qdotShape = convect.FuncCb(func(t float64, x []float64) float64 {
	d := x[0] - 0.01
	return 1.0 - d*d/(0.01*0.01)
})

func main() {

	nnodes := flag.Int("n", 21, "number of grid nodes")
	length := flag.Float64("L", 0.02, "domain length [m]")
	tf := flag.Float64("tf", 1e-4, "end time of the convection split step [s]")
	verbose := flag.Bool("v", true, "verbose diagnostics")
	flag.Parse()

	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("flamedemo failed: %v\n", err)
		}
	}()

	x := utl.LinSpace(0, *length, *nnodes)
	g, err := grid.New(x, 0)
	if err != nil {
		chk.Panic("cannot build grid: %v", err)
	}

	const nspec = 2
	co := convect.NewCoordinator(g, 101325.0, 8314.4621, nspec)
	co.Verbose = *verbose

	n := g.N()
	u := make([]float64, n)
	t := make([]float64, n)
	y := make([][]float64, nspec)
	for k := range y {
		y[k] = make([]float64, n)
	}
	for j := 0; j < n; j++ {
		t[j] = 300.0
		co.Utw.Wmx[j] = 0.029
		y[0][j] = 1.0 // fuel mass fraction, uniform initial field
	}

	if err = co.SetState(u, t, y, 0.0); err != nil {
		chk.Panic("SetState failed: %v", err)
	}
	tleft := tleftRamp.F(0.0, nil)
	if err = co.SetLeftBC(tleft, 0.029, []float64{1.0, 0.0}); err != nil {
		chk.Panic("SetLeftBC failed: %v", err)
	}
	co.SetRVzero(0.05)
	qdot := convect.SampleProfile(qdotShape, 0.0, x)
	if err = co.UpdateContinuityBoundaryCondition(qdot, convect.BCQdot); err != nil {
		chk.Panic("UpdateContinuityBoundaryCondition failed: %v", err)
	}
	if err = co.SetDensityDerivative(make([]float64, n)); err != nil {
		chk.Panic("SetDensityDerivative failed: %v", err)
	}
	zero := make([]float64, n)
	if err = co.SetSplitConstants(zero, zero, zero, [][]float64{zero, zero}); err != nil {
		chk.Panic("SetSplitConstants failed: %v", err)
	}

	if err = co.IntegrateToTime(*tf); err != nil {
		chk.Panic("IntegrateToTime failed: %v", err)
	}

	io.Pf("T   = %v\n", co.Utw.T)
	io.Pf("V   = %v\n", co.Utw.V)
	io.Pf("Y0  = %v\n", co.Y[0])
}
