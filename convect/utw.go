package convect

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/flameconv/grid"
)

// Utw is the coupled tangential-velocity/temperature/mixture-molecular-
// weight convection sub-system (spec §4.1, component C4). It owns the
// continuity integration that produces the mass flux V and exposes the RHS
// needed to advance (U,T,Wmx) under convection plus additive split
// constants.
type Utw struct {
	Grid *grid.Grid // borrowed, read-only

	P float64 // thermodynamic pressure (immutable for the coordinator's life)
	R float64 // universal gas constant

	// state, set via SetState/SetLeftBC/RHS
	U, T, Wmx []float64
	Tleft     float64
	Wleft     float64
	RVzero    float64 // left mass-flux boundary value for BCLeft

	// split constants, one additive forcing per node and per variable
	SplitConstU []float64
	SplitConstT []float64
	SplitConstW []float64

	// density-derivative feedback from the other split operators (spec §4.3)
	Drhodt []float64

	// continuity boundary condition (spec §4.4)
	continuityBC ContinuityBC
	jContBC      int
	xVzero       float64

	// derived arrays, refreshed by Rhs/Evaluate
	Rho        []float64
	V          []float64
	RV         []float64
	DUdx       []float64
	DTdx       []float64
	DWdx       []float64
	Dudt       []float64
	Dtdt       []float64
	Dwdt       []float64
}

// NewUtw allocates a Utw sub-system on g, with pressure p and gas constant r.
func NewUtw(g *grid.Grid, p, r float64) *Utw {
	o := &Utw{Grid: g, P: p, R: r, continuityBC: BCLeft}
	o.Resize(g.N())
	return o
}

// Resize allocates every state and derived array for a grid of n nodes
// (spec §4.1 "resize(n) allocates").
func (o *Utw) Resize(n int) {
	o.U = make([]float64, n)
	o.T = make([]float64, n)
	o.Wmx = make([]float64, n)
	o.SplitConstU = make([]float64, n)
	o.SplitConstT = make([]float64, n)
	o.SplitConstW = make([]float64, n)
	o.Drhodt = make([]float64, n)
	o.Rho = make([]float64, n)
	o.V = make([]float64, n)
	o.RV = make([]float64, n)
	o.DUdx = make([]float64, n)
	o.DTdx = make([]float64, n)
	o.DWdx = make([]float64, n)
	o.Dudt = make([]float64, n)
	o.Dtdt = make([]float64, n)
	o.Dwdt = make([]float64, n)
	o.jContBC = n / 2
}

// StateSize implements Sdode: the packed state is (U,T,Wmx), 3*n long.
func (o *Utw) StateSize() int { return 3 * o.Grid.N() }

// UnrollY unpacks the packed state y into o.U, o.T, o.Wmx.
func (o *Utw) UnrollY(y []float64) {
	n := o.Grid.N()
	copy(o.U, y[0:n])
	copy(o.T, y[n:2*n])
	copy(o.Wmx, y[2*n:3*n])
}

// RollY packs o.U, o.T, o.Wmx into y, which must have length StateSize().
func (o *Utw) RollY(y []float64) {
	n := o.Grid.N()
	copy(y[0:n], o.U)
	copy(y[n:2*n], o.T)
	copy(y[2*n:3*n], o.Wmx)
}

// RollYdot packs o.Dudt, o.Dtdt, o.Dwdt into ydot, which must have length
// StateSize().
func (o *Utw) RollYdot(ydot []float64) {
	n := o.Grid.N()
	copy(ydot[0:n], o.Dudt)
	copy(ydot[n:2*n], o.Dtdt)
	copy(ydot[2*n:3*n], o.Dwdt)
}

// SetState installs (U,T,Wmx) directly, bypassing the packed representation.
func (o *Utw) SetState(u, t, wmx []float64) (err error) {
	n := o.Grid.N()
	if len(u) != n || len(t) != n || len(wmx) != n {
		return chk.Err("utw: SetState sizes inconsistent with grid: len(U)=%d len(T)=%d len(Wmx)=%d grid n=%d", len(u), len(t), len(wmx), n)
	}
	copy(o.U, u)
	copy(o.T, t)
	copy(o.Wmx, wmx)
	return nil
}

// SetLeftBC sets the left Dirichlet prescriptions for T and Wmx.
func (o *Utw) SetLeftBC(tleft, wleft float64) {
	o.Tleft = tleft
	o.Wleft = wleft
}

// SetRVzero sets the left mass-flux boundary value used by BCLeft.
func (o *Utw) SetRVzero(rVzero float64) {
	o.RVzero = rVzero
}

// ResetSplitConstants zeroes the three split-constant arrays (spec §4.1).
func (o *Utw) ResetSplitConstants() {
	la.VecFill(o.SplitConstU, 0)
	la.VecFill(o.SplitConstT, 0)
	la.VecFill(o.SplitConstW, 0)
}

// SetSplitConstants installs per-node additive forcings.
func (o *Utw) SetSplitConstants(splitU, splitT, splitW []float64) (err error) {
	n := o.Grid.N()
	if len(splitU) != n || len(splitT) != n || len(splitW) != n {
		return chk.Err("utw: SetSplitConstants sizes inconsistent with grid n=%d", n)
	}
	copy(o.SplitConstU, splitU)
	copy(o.SplitConstT, splitT)
	copy(o.SplitConstW, splitW)
	return nil
}

// SetDensityDerivative installs ∂ρ/∂t as fed back from the source and
// diffusion splits (spec §4.3).
func (o *Utw) SetDensityDerivative(drhodt []float64) (err error) {
	if len(drhodt) != o.Grid.N() {
		return chk.Err("utw: SetDensityDerivative size %d inconsistent with grid n=%d", len(drhodt), o.Grid.N())
	}
	copy(o.Drhodt, drhodt)
	return nil
}

// ContinuityBC returns the current continuity boundary condition tag.
func (o *Utw) ContinuityBC() ContinuityBC { return o.continuityBC }

// JContBC returns the current continuity anchor node index.
func (o *Utw) JContBC() int { return o.jContBC }

// XVzero returns the current floating stagnation-point location (only
// meaningful when ContinuityBC() == BCZero).
func (o *Utw) XVzero() float64 { return o.xVzero }

// UpdateContinuityBoundaryCondition updates the continuity BC and, for
// BCZero/BCQdot, recomputes jContBC (and xVzero for BCZero) from the current
// state/qdot. It must only be called between integration steps (spec §4.4).
func (o *Utw) UpdateContinuityBoundaryCondition(qdot []float64, tag ContinuityBC) (err error) {
	switch tag {
	case BCLeft:
		o.continuityBC = BCLeft
		return nil
	case BCQdot:
		if err = checkQdotArgs(qdot, o.Grid.N()); err != nil {
			return err
		}
		o.jContBC = argmax(qdot)
		o.continuityBC = BCQdot
		return nil
	case BCZero:
		rV := o.integrateContinuityFromLeft()
		j, found := findSignChange(rV)
		if !found {
			return chk.Err("continuity BC: Zero requested but rV has no sign change")
		}
		o.jContBC = j
		x := o.Grid.X
		o.xVzero = x[j] + (x[j+1]-x[j])*fracZero(rV[j], rV[j+1])
		o.continuityBC = BCZero
		return nil
	}
	return chk.Err("continuity BC: unknown tag %v", tag)
}

func fracZero(v0, v1 float64) float64 {
	if v0 == v1 {
		return 0.5
	}
	return v0 / (v0 - v1)
}

// Evaluate recomputes ρ, V and every time derivative at the current state
// without advancing time (spec §4.3 "evaluate()").
func (o *Utw) Evaluate(t float64) (err error) {
	ydot := make([]float64, o.StateSize())
	y := make([]float64, o.StateSize())
	o.RollY(y)
	return o.Rhs(t, y, ydot)
}

// Rhs implements Sdode and spec §4.1's RHS algorithm.
func (o *Utw) Rhs(t float64, y, ydot []float64) (err error) {
	n := o.Grid.N()
	o.UnrollY(y)

	// 1. left Dirichlet
	o.T[0] = o.Tleft
	o.Wmx[0] = o.Wleft

	// 2. density
	for j := 0; j < n; j++ {
		if o.T[j] <= 0 {
			return chk.Err("utw: non-positive temperature T[%d]=%g", j, o.T[j])
		}
		o.Rho[j] = o.P * o.Wmx[j] / (o.R * o.T[j])
		if math.IsNaN(o.Rho[j]) || math.IsInf(o.Rho[j], 0) {
			return chk.Err("utw: non-finite density at node %d", j)
		}
	}

	// 3. continuity -> rV
	if err = o.integrateContinuity(); err != nil {
		return err
	}

	// 4. V = rV / r^alpha
	g := o.Grid
	for j := 0; j < n; j++ {
		if g.R[j] == 0 {
			// axis of symmetry: take the nearest defined value as the
			// symmetric limit instead of dividing by zero.
			if j+1 < n && g.R[j+1] != 0 {
				o.V[j] = o.RV[j+1] / math.Pow(g.R[j+1], float64(g.Alpha))
			} else {
				o.V[j] = 0
			}
			continue
		}
		o.V[j] = o.RV[j] / math.Pow(g.R[j], float64(g.Alpha))
	}

	// 5. upwinded derivatives
	for j := 0; j < n; j++ {
		o.DUdx[j] = upwindDeriv(j, n, o.U, g.Hh, o.V[j], 0, false)
		o.DTdx[j] = upwindDeriv(j, n, o.T, g.Hh, o.V[j], o.Tleft, true)
		o.DWdx[j] = upwindDeriv(j, n, o.Wmx, g.Hh, o.V[j], o.Wleft, true)
	}

	// 6. time derivatives
	for j := 0; j < n; j++ {
		o.Dudt[j] = -o.V[j]*o.DUdx[j] + o.SplitConstU[j]
		o.Dtdt[j] = -o.V[j]*o.DTdx[j] + o.SplitConstT[j]
		o.Dwdt[j] = -o.V[j]*o.DWdx[j] + o.SplitConstW[j]
	}
	o.Dtdt[0] = 0
	o.Dwdt[0] = 0
	o.Dudt[0] = o.SplitConstU[0]

	o.RollYdot(ydot)
	if err = checkFinite("utw rhs", ydot); err != nil {
		return err
	}
	return nil
}

// integrateContinuity dispatches to the anchor appropriate for the current
// continuity BC (spec §4.1 step 3).
func (o *Utw) integrateContinuity() (err error) {
	switch o.continuityBC {
	case BCLeft:
		o.RV = o.integrateContinuityFromLeft()
		return nil
	case BCZero:
		return o.integrateContinuityFromAnchor(o.jContBC, o.xVzero)
	case BCQdot:
		return o.integrateContinuityFromAnchor(o.jContBC, o.Grid.X[o.jContBC])
	}
	return chk.Err("utw: unknown continuity BC %v", o.continuityBC)
}

// integrateContinuityFromLeft integrates continuity rightward from
// rV[0]=RVzero (used directly by BCLeft, and to locate the sign change for
// BCZero).
func (o *Utw) integrateContinuityFromLeft() []float64 {
	n := o.Grid.N()
	g := o.Grid
	rV := make([]float64, n)
	rV[0] = o.RVzero
	for j := 1; j < n; j++ {
		ralpha := math.Pow(g.R[j-1], float64(g.Alpha))
		src := o.Drhodt[j-1] + float64(g.Alpha)*o.Rho[j-1]*0.5*(o.U[j-1]+o.U[j])
		rV[j] = rV[j-1] - g.Hh[j-1]*ralpha*src
	}
	return rV
}

// integrateContinuityFromAnchor integrates continuity outward in both
// directions from rV(xAnchor)=0 pinned between nodes jAnchor and jAnchor+1
// (BCZero), or exactly at node jAnchor (BCQdot, xAnchor==Grid.X[jAnchor]).
func (o *Utw) integrateContinuityFromAnchor(jAnchor int, xAnchor float64) (err error) {
	n := o.Grid.N()
	if jAnchor < 0 || jAnchor >= n {
		return chk.Err("utw: continuity anchor node %d out of range [0,%d)", jAnchor, n)
	}
	g := o.Grid
	rV := make([]float64, n)

	atNode := xAnchor == g.X[jAnchor]

	if atNode {
		rV[jAnchor] = 0
	} else {
		// BCZero: anchor lies strictly between jAnchor and jAnchor+1; march
		// the partial sub-cell contribution on each side from zero.
		if jAnchor+1 >= n {
			return chk.Err("utw: continuity anchor requires jAnchor+1 < n, got jAnchor=%d n=%d", jAnchor, n)
		}
		hL := xAnchor - g.X[jAnchor]
		hR := g.X[jAnchor+1] - xAnchor
		ralpha := math.Pow(g.R[jAnchor], float64(g.Alpha))
		srcL := o.Drhodt[jAnchor] + float64(g.Alpha)*o.Rho[jAnchor]*o.U[jAnchor]
		rV[jAnchor] = hL * ralpha * srcL
		rV[jAnchor+1] = -hR * ralpha * srcL
	}

	// march left from jAnchor down to 0
	for j := jAnchor - 1; j >= 0; j-- {
		ralpha := math.Pow(g.R[j], float64(g.Alpha))
		src := o.Drhodt[j] + float64(g.Alpha)*o.Rho[j]*0.5*(o.U[j]+o.U[j+1])
		rV[j] = rV[j+1] + g.Hh[j]*ralpha*src
	}
	// march right from jAnchor(+1) to n-1
	start := jAnchor + 1
	if atNode {
		start = jAnchor + 1
	} else {
		start = jAnchor + 2
	}
	for j := start; j < n; j++ {
		ralpha := math.Pow(g.R[j-1], float64(g.Alpha))
		src := o.Drhodt[j-1] + float64(g.Alpha)*o.Rho[j-1]*0.5*(o.U[j-1]+o.U[j])
		rV[j] = rV[j-1] - g.Hh[j-1]*ralpha*src
	}

	o.RV = rV
	return nil
}
