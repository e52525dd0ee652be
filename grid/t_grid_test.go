package grid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

func Test_grid01(tst *testing.T) {

	chk.PrintTitle("grid01: planar uniform grid")

	x := utl.LinSpace(0, 0.01, 11)
	g, err := New(x, 0)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	chk.IntAssert(g.N(), 11)
	for j := 0; j < 11; j++ {
		chk.Scalar(tst, "r", 1e-15, g.R[j], 1.0)
	}
	for j := 0; j < 10; j++ {
		chk.Scalar(tst, "hh", 1e-12, g.Hh[j], 0.001)
	}
}

func Test_grid02(tst *testing.T) {

	chk.PrintTitle("grid02: cylindrical metric")

	x := utl.LinSpace(1.0, 2.0, 6)
	g, err := New(x, 1)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	for j := 0; j < 6; j++ {
		chk.Scalar(tst, "r==x", 1e-15, g.R[j], x[j])
	}
	for j := 0; j < 5; j++ {
		chk.Scalar(tst, "rphalf", 1e-15, g.Rphalf[j], 0.5*(x[j]+x[j+1]))
	}
}

func Test_grid03(tst *testing.T) {

	chk.PrintTitle("grid03: reject non-monotone grid")

	_, err := New([]float64{0, 0.1, 0.05, 0.2}, 0)
	if err == nil {
		tst.Fatalf("expected error for non-monotone grid")
	}
}

func Test_grid04(tst *testing.T) {

	chk.PrintTitle("grid04: centered derivative recovers linear field")

	x := utl.LinSpace(0, 1, 7)
	g, _ := New(x, 0)
	f := make([]float64, 7)
	for j, xj := range x {
		f[j] = 3.0*xj + 2.0
	}
	for j := 1; j < 6; j++ {
		d := g.Cfm[j]*f[j-1] + g.Cf[j]*f[j] + g.Cfp[j]*f[j+1]
		chk.Scalar(tst, "df/dx", 1e-10, d, 3.0)
	}
}

func Test_grid05(tst *testing.T) {

	chk.PrintTitle("grid05: resize rebuilds coefficients")

	x := utl.LinSpace(0, 1, 5)
	g, _ := New(x, 0)
	x2 := utl.LinSpace(0, 2, 9)
	err := g.Resize(x2)
	if err != nil {
		tst.Fatalf("Resize failed: %v", err)
	}
	chk.IntAssert(g.N(), 9)
	chk.Scalar(tst, "hh", 1e-12, g.Hh[0], 0.25)
}
