package convect

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Species is the single-species scalar transport sub-system of spec §4.2
// (component C5): one ODE per active node for Y_k, sharing the velocity
// field produced by the Utw sub-system (via a VelocityHistory) or, in
// quasi-2D mode, a pair of Bilinear fields.
type Species struct {
	Index int // species index, identification only

	StartIndex int // first active node (inclusive)
	StopIndex  int // last active node (inclusive)

	Yleft float64 // left Dirichlet value, used only when StartIndex==0

	Hh []float64 // copy of the grid's Hh, taken by NewSpecies and Resize

	SplitConst []float64 // [n] additive forcing, full-grid indexed

	// velocity source: exactly one of the two modes below is active
	Quasi2D bool
	VInterp *VelocityHistory
	VzInterp *Bilinear
	VrInterp *Bilinear

	// scratch, full-grid indexed
	V    []float64
	DYdx []float64
	Dydt []float64
}

// NewSpecies builds a species sub-system of n grid nodes, index k, active on
// [start,stop], reading velocities from hist.
func NewSpecies(k, n, start, stop int, hh []float64, hist *VelocityHistory) (s *Species, err error) {
	if err = checkRange(start, stop, n); err != nil {
		return nil, err
	}
	return &Species{
		Index: k, StartIndex: start, StopIndex: stop,
		Hh: la.VecClone(hh), SplitConst: make([]float64, n),
		VInterp: hist,
		V:       make([]float64, n),
		DYdx:    make([]float64, n),
		Dydt:    make([]float64, n),
	}, nil
}

// Resize rebuilds hh and every scratch array for a grid of n nodes, as
// required after the outer driver regrids (spec §3, §6). The active range
// collapses to the full grid; call SetActiveRange again afterwards if a
// sub-range is wanted.
func (o *Species) Resize(n int, hh []float64) (err error) {
	if len(hh) != n-1 {
		return chk.Err("species %d: Resize got %d cell widths for %d nodes", o.Index, len(hh), n)
	}
	o.Hh = la.VecClone(hh)
	o.StartIndex = 0
	o.StopIndex = n - 1
	o.SplitConst = make([]float64, n)
	o.V = make([]float64, n)
	o.DYdx = make([]float64, n)
	o.Dydt = make([]float64, n)
	return nil
}

func checkRange(start, stop, n int) error {
	if start < 0 || stop >= n || start > stop {
		return chk.Err("species: invalid active range [%d,%d] for grid of %d nodes", start, stop, n)
	}
	return nil
}

// SetupQuasi2D installs externally supplied bilinear velocity fields and
// switches this species sub-system to the quasi-2D path (spec §6).
func (o *Species) SetupQuasi2D(vz, vr *Bilinear) {
	o.VzInterp = vz
	o.VrInterp = vr
	o.Quasi2D = true
}

// SetActiveRange reconfigures the active node range, as done by the
// coordinator's SetSpeciesDomains (spec §6).
func (o *Species) SetActiveRange(start, stop, n int) (err error) {
	if err = checkRange(start, stop, n); err != nil {
		return err
	}
	o.StartIndex = start
	o.StopIndex = stop
	return nil
}

// SetLeftBC sets the left ghost value used for upwinding at node 0 when
// StartIndex==0.
func (o *Species) SetLeftBC(yleft float64) { o.Yleft = yleft }

// SetSplitConstants installs the full-grid additive forcing array.
func (o *Species) SetSplitConstants(splitConst []float64) (err error) {
	if len(splitConst) != len(o.SplitConst) {
		return chk.Err("species %d: SetSplitConstants size %d inconsistent with grid n=%d", o.Index, len(splitConst), len(o.SplitConst))
	}
	copy(o.SplitConst, splitConst)
	return nil
}

// StateSize implements Sdode: the packed state is the active sub-range only.
func (o *Species) StateSize() int {
	if o.StopIndex-o.StartIndex < 2 {
		return 0
	}
	return o.StopIndex - o.StartIndex + 1
}

// updateV fills o.V on the active range at time t, from whichever velocity
// source is configured (spec §4.2 step 1).
func (o *Species) updateV(t float64, x []float64) (err error) {
	for j := o.StartIndex; j <= o.StopIndex; j++ {
		if o.Quasi2D {
			o.V[j] = o.VzInterp.Eval(x[j], t) + o.VrInterp.Eval(x[j], t)
			continue
		}
		prof, err := o.VInterp.At(t)
		if err != nil {
			return chk.Err("species %d: %v", o.Index, err)
		}
		o.V[j] = prof[j]
	}
	return nil
}

// Rhs implements Sdode. y/ydot are packed over [StartIndex,StopIndex]; Y on
// the rest of the grid is inherited from the coordinator's last known state
// and not touched here (spec §4.2).
func (o *Species) Rhs(t float64, y, ydot []float64, x []float64) (err error) {
	if o.StopIndex-o.StartIndex < 2 {
		for i := range ydot {
			ydot[i] = 0
		}
		return nil
	}
	if err = o.updateV(t, x); err != nil {
		return err
	}

	n := len(x)
	yFull := make([]float64, n)
	for j := o.StartIndex; j <= o.StopIndex; j++ {
		yFull[j] = y[j-o.StartIndex]
	}
	hasLeft := o.StartIndex == 0

	for j := o.StartIndex; j <= o.StopIndex; j++ {
		var dydx float64
		switch {
		case j == o.StartIndex && !hasLeft:
			// interior left boundary of the sub-domain: no Dirichlet,
			// upwinding always falls back to forward differencing.
			if j+1 <= o.StopIndex {
				dydx = (yFull[j+1] - yFull[j]) / o.Hh[j]
			}
		case j == 0:
			dydx = upwindDeriv(j, n, yFull, o.Hh, o.V[j], o.Yleft, true)
		case j == o.StopIndex:
			// right edge of the active sub-domain: no right ghost, so an
			// outflow-from-the-right request (v<0) falls back to zero
			// gradient, same as the whole-grid right boundary.
			if o.V[j] >= 0 {
				dydx = (yFull[j] - yFull[j-1]) / o.Hh[j-1]
			}
		default:
			dydx = upwindDeriv(j, n, yFull, o.Hh, o.V[j], 0, false)
		}
		o.DYdx[j] = dydx
		o.Dydt[j] = -o.V[j]*dydx + o.SplitConst[j]
		ydot[j-o.StartIndex] = o.Dydt[j]
	}
	return nil
}
