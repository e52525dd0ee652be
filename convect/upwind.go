package convect

// upwindDeriv computes the upwinded first derivative of f at node j (spec
// §4.1 step 5, §4.2 step 2): backward difference when v >= 0, forward when
// v < 0.
//
// leftGhost/hasLeftGhost supply the ghost value used when a backward
// difference is requested at j==0 (Tleft/Wleft for the UTW system, Yleft for
// a species sub-system whose active range starts at node 0). Utw.Rhs pins
// T[0]/Wmx[0] to Tleft/Wleft before calling this, so for the UTW system the
// backward difference there is zero. Species.Rhs does not pin Y[0], so for a
// species the difference is taken between the current Y[0] and Yleft.
//
// When no left Dirichlet applies (U, or a species sub-domain whose active
// range starts at an interior node), upwinding at the left edge always falls
// back to a forward difference, per spec §4.2's "no Dirichlet" rule.
//
// At the right edge, a forward-difference request (v < 0, outflow-from-the-
// right with no right ghost available) falls back to zero gradient.
func upwindDeriv(j, n int, f, hh []float64, v, leftGhost float64, hasLeftGhost bool) float64 {
	switch {
	case j == 0:
		if hasLeftGhost && v >= 0 {
			return (f[0] - leftGhost) / hh[0]
		}
		if n > 1 {
			return (f[1] - f[0]) / hh[0]
		}
		return 0
	case j == n-1:
		if v >= 0 {
			return (f[j] - f[j-1]) / hh[j-1]
		}
		return 0
	default:
		if v >= 0 {
			return (f[j] - f[j-1]) / hh[j-1]
		}
		return (f[j+1] - f[j]) / hh[j]
	}
}
