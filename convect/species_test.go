package convect

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

func Test_species01(tst *testing.T) {

	chk.PrintTitle("species01: inert when active range shorter than 2 cells")

	n := 5
	hh := make([]float64, n-1)
	for j := range hh {
		hh[j] = 1
	}
	hist := NewVelocityHistory()
	hist.Insert(0, make([]float64, n))
	s, err := NewSpecies(0, n, 2, 3, hh, hist)
	if err != nil {
		tst.Fatalf("NewSpecies failed: %v", err)
	}
	chk.IntAssert(s.StateSize(), 0)
	ydot := make([]float64, 0)
	if err := s.Rhs(0, nil, ydot, utl.LinSpace(0, 4, n)); err != nil {
		tst.Fatalf("Rhs failed: %v", err)
	}
}

func Test_species02(tst *testing.T) {

	chk.PrintTitle("species02: split-constant passthrough with zero velocity")

	n := 7
	x := utl.LinSpace(0, 0.006, n)
	hh := make([]float64, n-1)
	for j := range hh {
		hh[j] = x[j+1] - x[j]
	}
	hist := NewVelocityHistory()
	hist.Insert(0, make([]float64, n))
	s, err := NewSpecies(0, n, 0, n-1, hh, hist)
	if err != nil {
		tst.Fatalf("NewSpecies failed: %v", err)
	}
	for j := range s.SplitConst {
		s.SplitConst[j] = 2.0
	}
	y := make([]float64, s.StateSize())
	ydot := make([]float64, s.StateSize())
	if err := s.Rhs(0, y, ydot, x); err != nil {
		tst.Fatalf("Rhs failed: %v", err)
	}
	for _, d := range ydot {
		chk.Scalar(tst, "dYdt", 1e-12, d, 2.0)
	}
}

func Test_species03(tst *testing.T) {

	chk.PrintTitle("species03: quasi-2D matches 1D when vr=0")

	n := 11
	x := utl.LinSpace(0, 0.01, n)
	hh := make([]float64, n-1)
	for j := range hh {
		hh[j] = x[j+1] - x[j]
	}

	y0 := make([]float64, n)
	for j := 0; j < 5; j++ {
		y0[j] = 1
	}

	// 1D reference: constant V=1
	hist := NewVelocityHistory()
	vprof := make([]float64, n)
	for j := range vprof {
		vprof[j] = 1.0
	}
	hist.Insert(0, vprof)
	s1, _ := NewSpecies(0, n, 0, n-1, hh, hist)
	y1 := append([]float64(nil), y0...)
	ydot1 := make([]float64, n)
	if err := s1.Rhs(0, y1, ydot1, x); err != nil {
		tst.Fatalf("Rhs (1D) failed: %v", err)
	}

	// quasi-2D: vz=1, vr=0
	vz, _ := NewBilinear([]float64{0, 1}, []float64{0, 1}, [][]float64{{1, 1}, {1, 1}})
	vr, _ := NewBilinear([]float64{0, 1}, []float64{0, 1}, [][]float64{{0, 0}, {0, 0}})
	s2, _ := NewSpecies(1, n, 0, n-1, hh, hist)
	s2.SetupQuasi2D(vz, vr)
	y2 := append([]float64(nil), y0...)
	ydot2 := make([]float64, n)
	if err := s2.Rhs(0, y2, ydot2, x); err != nil {
		tst.Fatalf("Rhs (quasi2D) failed: %v", err)
	}

	chk.Array(tst, "ydot", 1e-10, ydot1, ydot2)
}

func Test_species04(tst *testing.T) {

	chk.PrintTitle("species04: sub-domain isolation")

	n := 9
	x := utl.LinSpace(0, 0.008, n)
	hh := make([]float64, n-1)
	for j := range hh {
		hh[j] = x[j+1] - x[j]
	}
	hist := NewVelocityHistory()
	vprof := make([]float64, n)
	hist.Insert(0, vprof) // zero velocity: derivative driven by split const only
	s, err := NewSpecies(0, n, 3, 6, hh, hist)
	if err != nil {
		tst.Fatalf("NewSpecies failed: %v", err)
	}
	for j := 3; j <= 6; j++ {
		s.SplitConst[j] = 1.0
	}
	y := []float64{0.1, 0.2, 0.3, 0.4}
	ydot := make([]float64, 4)
	if err := s.Rhs(0, y, ydot, x); err != nil {
		tst.Fatalf("Rhs failed: %v", err)
	}
	for _, d := range ydot {
		chk.Scalar(tst, "dYdt on active range", 1e-12, d, 1.0)
	}
}
