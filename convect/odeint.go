package convect

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/ode"
)

// explicitMethod is the integration scheme used for every sub-system owned
// by the Coordinator: an explicit, adaptive-step method (spec §4.3/§9:
// "explicit CVODE-class integrator"), grounded on github.com/cpmech/gosl/ode
// the same way mreten's reference-model fits its rate ODE (ode.ODE.Init,
// SetTol, Solve).
const explicitMethod = "Dopri5"

// stepSampler is called after every internally accepted step of the UTW
// integration, so the coordinator can publish V into the velocity history
// (spec §4.3 step 2).
type stepSampler func(istep int, h, t float64, y []float64) error

// newSolver wraps sys behind a gosl/ode.ODE using the explicit method, with
// absolute tolerances per packed-state entry and a shared relative
// tolerance. fcn matches the ode.Func signature observed in the reference
// models (mreten's rate-model ODE usage).
func newSolver(sys Sdode, reltol float64, abstol []float64, out stepSampler) (*ode.ODE, error) {
	ndim := sys.StateSize()
	if ndim == 0 {
		return nil, nil
	}
	fcn := func(f []float64, t float64, y []float64, args ...interface{}) error {
		return sys.Rhs(t, y, f)
	}
	var outFn func(istep int, h, t float64, y []float64) error
	if out != nil {
		outFn = func(istep int, h, t float64, y []float64) error {
			return out(istep, h, t, y)
		}
	}

	var solver ode.ODE
	// jac is nil: Dopri5 is explicit and needs no analytic Jacobian, the
	// same way geost.GeoLayer.Start passes nil to fall back to a numerical
	// Jacobian for its own ode.ODE.Init call.
	solver.Init(explicitMethod, ndim, fcn, nil, outFn, nil, true)

	// a single shared relative tolerance and a representative absolute
	// tolerance (gosl's SetTol takes scalars; per-variable absolute
	// tolerances — spec §4.3's AbstolU/T/W — are approximated by their
	// maximum, matching the coarsest requirement across the packed state;
	// see DESIGN.md for the resulting tolerance-loosening tradeoff).
	atol := reltol
	if len(abstol) > 0 {
		atol = abstol[0]
		for _, a := range abstol {
			if a > atol {
				atol = a
			}
		}
	}
	solver.SetTol(atol, reltol)

	return &solver, nil
}

func checkFinite(label string, y []float64) error {
	for i, v := range y {
		if v != v || v > 1e300 || v < -1e300 {
			return chk.Err("%s: non-finite value at index %d: %g", label, i, v)
		}
	}
	return nil
}
