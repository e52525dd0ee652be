package convect

import "testing"

import "github.com/cpmech/gosl/chk"

func Test_contbc01(tst *testing.T) {

	chk.PrintTitle("contbc01: first sign change from the left is preserved")

	rV := []float64{-2, -1, 0.5, 1, -3, -4}
	j, found := findSignChange(rV)
	if !found {
		tst.Fatalf("expected a sign change")
	}
	chk.IntAssert(j, 1) // rV[1]=-1, rV[2]=0.5 is the first crossing
}

func Test_contbc02(tst *testing.T) {

	chk.PrintTitle("contbc02: no sign change reported")

	rV := []float64{1, 2, 3, 4}
	_, found := findSignChange(rV)
	if found {
		tst.Fatalf("expected no sign change")
	}
}

func Test_contbc03(tst *testing.T) {

	chk.PrintTitle("contbc03: argmax picks the qdot peak")

	qdot := []float64{0, 1, 2, 9, 3, 0}
	chk.IntAssert(argmax(qdot), 3)
}

func Test_contbc04(tst *testing.T) {

	chk.PrintTitle("contbc04: checkQdotArgs rejects empty or mis-sized profiles")

	if err := checkQdotArgs(nil, 5); err == nil {
		tst.Fatalf("expected error for empty qdot profile")
	}
	if err := checkQdotArgs([]float64{1, 2, 3}, 5); err == nil {
		tst.Fatalf("expected error for mis-sized qdot profile")
	}
	if err := checkQdotArgs([]float64{1, 2, 3, 4, 5}, 5); err != nil {
		tst.Fatalf("unexpected error for a valid profile: %v", err)
	}
}

func Test_contbc05(tst *testing.T) {

	chk.PrintTitle("contbc05: UpdateContinuityBoundaryCondition rejects empty qdot for BCQdot")

	_, c := newCoordinator(9, 1)
	if err := c.UpdateContinuityBoundaryCondition(nil, BCQdot); err == nil {
		tst.Fatalf("expected error for empty qdot under BCQdot")
	}
}

func Test_contbc06(tst *testing.T) {

	chk.PrintTitle("contbc06: UpdateContinuityBoundaryCondition rejects BCZero with no sign change")

	_, c := newCoordinator(9, 1)
	n := c.Grid.N()
	u := make([]float64, n)
	t := make([]float64, n)
	y := [][]float64{make([]float64, n)}
	for j := 0; j < n; j++ {
		t[j] = 300.0
		c.Utw.Wmx[j] = 0.029
	}
	if err := c.SetState(u, t, y, 0.0); err != nil {
		tst.Fatalf("SetState failed: %v", err)
	}
	if err := c.SetLeftBC(300.0, 0.029, []float64{0.0}); err != nil {
		tst.Fatalf("SetLeftBC failed: %v", err)
	}
	// rVzero > 0 and every U/drhodt is zero: rV stays constant and positive,
	// so no sign change exists anywhere on the grid.
	c.SetRVzero(1.0)
	zero := make([]float64, n)
	if err := c.SetDensityDerivative(zero); err != nil {
		tst.Fatalf("SetDensityDerivative failed: %v", err)
	}
	if err := c.Utw.Evaluate(0.0); err != nil {
		tst.Fatalf("Evaluate failed: %v", err)
	}
	if err := c.UpdateContinuityBoundaryCondition(nil, BCZero); err == nil {
		tst.Fatalf("expected error for BCZero with no sign change")
	}
}
