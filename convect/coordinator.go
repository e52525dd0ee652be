package convect

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/flameconv/grid"
)

// Coordinator is the split-convection coordinator of spec §4.3 (component
// C6): it owns one Utw sub-system and one Species sub-system per species,
// drives them to a common end time, and wires the velocity history that
// couples them.
type Coordinator struct {
	Grid *grid.Grid
	Utw  *Utw

	species []*Species
	vHist   *VelocityHistory

	Y [][]float64 // [nspec][n] species mass fractions

	tInitial float64

	Reltol  float64
	AbstolU float64
	AbstolT float64
	AbstolW float64
	AbstolY float64

	Verbose bool
}

// NewCoordinator builds a coordinator for nspec species on grid g, with
// thermodynamic pressure p and gas constant r.
func NewCoordinator(g *grid.Grid, p, r float64, nspec int) *Coordinator {
	n := g.N()
	o := &Coordinator{
		Grid:    g,
		Utw:     NewUtw(g, p, r),
		vHist:   NewVelocityHistory(),
		Y:       la.MatAlloc(nspec, n),
		Reltol:  1e-8,
		AbstolU: 1e-9,
		AbstolT: 1e-9,
		AbstolW: 1e-9,
		AbstolY: 1e-9,
	}
	o.species = make([]*Species, nspec)
	for k := 0; k < nspec; k++ {
		s, err := NewSpecies(k, n, 0, n-1, g.Hh, o.vHist)
		if err != nil {
			chk.Panic("coordinator: cannot build species %d: %v", k, err)
		}
		o.species[k] = s
	}
	return o
}

// Resize rebuilds the grid, the UTW sub-system and every species sub-system
// for new node coordinates x, as required before the next IntegrateToTime
// call whenever the outer driver regrids (spec §3 "a coordinator-level
// resize rebuilds every cached coefficient"; spec §6 "On regrid, the core's
// resize and setState must be called before the next step"). Every species'
// active range collapses to the full new grid; call SetSpeciesDomains again
// afterwards to restore any sub-range. The caller must also call SetState
// again before integrating, since the previous (U,T,Y) no longer correspond
// to the new node count.
func (o *Coordinator) Resize(x []float64) (err error) {
	if err = o.Grid.Resize(x); err != nil {
		return chk.Err("coordinator: Resize: %v", err)
	}
	n := o.Grid.N()
	o.Utw.Resize(n)
	o.Y = la.MatAlloc(len(o.species), n)
	for _, s := range o.species {
		if err = s.Resize(n, o.Grid.Hh); err != nil {
			return chk.Err("coordinator: Resize: %v", err)
		}
	}
	o.vHist.Clear()
	return nil
}

// NSpecies returns the number of species sub-systems owned by the coordinator.
func (o *Coordinator) NSpecies() int { return len(o.species) }

// Species returns the k-th species sub-system, for callers that need direct
// access (e.g. SetupQuasi2D).
func (o *Coordinator) Species(k int) *Species { return o.species[k] }

// SetState installs (U,T,Y) and the initial time, per spec §6 step 1. Wmx is
// left untouched: it is owned and continuously integrated by the UTW
// sub-system across split steps, unlike U, T and Y which the outer driver
// refreshes from the other operators' results each step.
func (o *Coordinator) SetState(u, t []float64, y [][]float64, tInitial float64) (err error) {
	n := o.Grid.N()
	if len(u) != n || len(t) != n {
		return chk.Err("coordinator: SetState sizes inconsistent with grid n=%d", n)
	}
	if len(y) != len(o.species) {
		return chk.Err("coordinator: SetState got %d species rows, want %d", len(y), len(o.species))
	}
	copy(o.Utw.U, u)
	copy(o.Utw.T, t)
	for k, row := range y {
		if len(row) != n {
			return chk.Err("coordinator: SetState species %d row has %d entries, want %d", k, len(row), n)
		}
		copy(o.Y[k], row)
	}
	o.tInitial = tInitial
	return nil
}

// SetRVzero sets the left mass-flux boundary value.
func (o *Coordinator) SetRVzero(rVzero float64) { o.Utw.SetRVzero(rVzero) }

// SetLeftBC sets the UTW left Dirichlet values and every species' left
// boundary value (the upwind ghost value at node 0, only meaningful for
// species whose active range starts at node 0).
func (o *Coordinator) SetLeftBC(tleft, wleft float64, yleft []float64) (err error) {
	if len(yleft) != len(o.species) {
		return chk.Err("coordinator: SetLeftBC got %d Yleft values, want %d", len(yleft), len(o.species))
	}
	o.Utw.SetLeftBC(tleft, wleft)
	for k, s := range o.species {
		s.SetLeftBC(yleft[k])
	}
	return nil
}

// SetSpeciesDomains reconfigures every species' active sub-range.
func (o *Coordinator) SetSpeciesDomains(start, stop []int) (err error) {
	if len(start) != len(o.species) || len(stop) != len(o.species) {
		return chk.Err("coordinator: SetSpeciesDomains sizes inconsistent with %d species", len(o.species))
	}
	for k, s := range o.species {
		if err = s.SetActiveRange(start[k], stop[k], o.Grid.N()); err != nil {
			return err
		}
	}
	return nil
}

// SetDensityDerivative installs the ∂ρ/∂t feedback from the other split
// operators (spec §4.3).
func (o *Coordinator) SetDensityDerivative(drhodt []float64) (err error) {
	return o.Utw.SetDensityDerivative(drhodt)
}

// SetSplitConstants installs per-node additive forcings on the UTW system
// and, per species, on every species system (spec §4.3).
func (o *Coordinator) SetSplitConstants(splitU, splitT, splitW []float64, splitY [][]float64) (err error) {
	if err = o.Utw.SetSplitConstants(splitU, splitT, splitW); err != nil {
		return err
	}
	if len(splitY) != len(o.species) {
		return chk.Err("coordinator: SetSplitConstants got %d species rows, want %d", len(splitY), len(o.species))
	}
	for k, s := range o.species {
		if err = s.SetSplitConstants(splitY[k]); err != nil {
			return err
		}
	}
	return nil
}

// UpdateContinuityBoundaryCondition updates the UTW continuity BC.
func (o *Coordinator) UpdateContinuityBoundaryCondition(qdot []float64, tag ContinuityBC) error {
	return o.Utw.UpdateContinuityBoundaryCondition(qdot, tag)
}

// SetupQuasi2D installs externally supplied bilinear velocity fields and
// enables the quasi-2D path on every species sub-system (spec §6).
func (o *Coordinator) SetupQuasi2D(vz, vr *Bilinear) {
	for _, s := range o.species {
		s.SetupQuasi2D(vz, vr)
	}
}

// IntegrateToTime advances every owned sub-system from the coordinator's
// current time to tf (spec §4.3's primary operation).
func (o *Coordinator) IntegrateToTime(tf float64) (err error) {

	// 1. clear and seed the velocity history with the current V.
	o.vHist.Clear()
	if err = o.Utw.Evaluate(o.tInitial); err != nil {
		return chk.Err("coordinator: initial evaluate failed: %v", err)
	}
	o.vHist.Insert(o.tInitial, o.Utw.V)

	// 2. step the UTW solver to tf, sampling V after every accepted step.
	yUtw := make([]float64, o.Utw.StateSize())
	o.Utw.RollY(yUtw)
	sampler := func(istep int, h, t float64, y []float64) error {
		o.Utw.UnrollY(y)
		if err := o.Utw.Evaluate(t); err != nil {
			return err
		}
		o.vHist.Insert(t, o.Utw.V)
		return nil
	}
	abstolUTW := make([]float64, o.Utw.StateSize())
	n := o.Grid.N()
	for j := 0; j < n; j++ {
		abstolUTW[j] = o.AbstolU
		abstolUTW[n+j] = o.AbstolT
		abstolUTW[2*n+j] = o.AbstolW
	}
	solver, err := newSolver(o.Utw, o.Reltol, abstolUTW, sampler)
	if err != nil || solver == nil {
		return chk.Err("coordinator: cannot build UTW solver: %v", err)
	}
	if err = solver.Solve(yUtw, o.tInitial, tf, tf-o.tInitial, false); err != nil {
		return chk.Err("coordinator: UTW integration failed: %v", err)
	}
	o.Utw.UnrollY(yUtw)
	if err = o.Utw.Evaluate(tf); err != nil {
		return chk.Err("coordinator: final UTW evaluate failed: %v", err)
	}
	o.vHist.Insert(tf, o.Utw.V)

	// 3. step each species solver independently; each only reads the
	// (now fully populated) velocity history and writes its own row of Y,
	// so this loop is safe to parallelize per spec §5.
	for k, s := range o.species {
		size := s.StateSize()
		if size == 0 {
			continue // inert on this step (spec §4.2 edge case)
		}
		y := make([]float64, size)
		for j := s.StartIndex; j <= s.StopIndex; j++ {
			y[j-s.StartIndex] = o.Y[k][j]
		}
		abstolY := make([]float64, size)
		for i := range abstolY {
			abstolY[i] = o.AbstolY
		}
		rhsAdapter := speciesSdode{s: s, x: o.Grid.X}
		solver, err := newSolver(rhsAdapter, o.Reltol, abstolY, nil)
		if err != nil || solver == nil {
			return chk.Err("coordinator: cannot build species %d solver: %v", k, err)
		}
		if err = solver.Solve(y, o.tInitial, tf, tf-o.tInitial, false); err != nil {
			return chk.Err("coordinator: species %d integration failed: %v", k, err)
		}
		for j := s.StartIndex; j <= s.StopIndex; j++ {
			o.Y[k][j] = y[j-s.StartIndex]
		}
	}

	// 4. write back derivatives at tf from a consistent final evaluation.
	if err = o.Evaluate(tf); err != nil {
		return err
	}
	if o.Verbose {
		io.Pf("flameconv: integrated to t=%g (%d species)\n", tf, len(o.species))
	}
	o.tInitial = tf
	return nil
}

// speciesSdode adapts a Species (whose Rhs needs the grid's x array) to the
// grid-agnostic Sdode capability expected by newSolver.
type speciesSdode struct {
	s *Species
	x []float64
}

func (a speciesSdode) StateSize() int { return a.s.StateSize() }
func (a speciesSdode) Rhs(t float64, y, ydot []float64) error {
	return a.s.Rhs(t, y, ydot, a.x)
}

// Evaluate computes V, ρ, and every time derivative at the current state
// without advancing time (spec §4.3), writing results into every species'
// V/DYdx/Dydt scratch arrays and into the Utw derived arrays.
func (o *Coordinator) Evaluate(t float64) (err error) {
	if err = o.Utw.Evaluate(t); err != nil {
		return err
	}
	o.vHist.Clear()
	o.vHist.Insert(t, o.Utw.V)
	for k, s := range o.species {
		if s.StateSize() == 0 {
			continue
		}
		y := make([]float64, s.StateSize())
		ydot := make([]float64, s.StateSize())
		for j := s.StartIndex; j <= s.StopIndex; j++ {
			y[j-s.StartIndex] = o.Y[k][j]
		}
		if err = s.Rhs(t, y, ydot, o.Grid.X); err != nil {
			return chk.Err("coordinator: evaluate species %d failed: %v", k, err)
		}
	}
	return nil
}
