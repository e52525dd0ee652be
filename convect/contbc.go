package convect

import "github.com/cpmech/gosl/chk"

// ContinuityBC is the tagged continuity-boundary-condition state of spec
// §3/§4.4: the identity and the anchor data are constant within one solver
// step and change only between steps, through
// Utw.UpdateContinuityBoundaryCondition.
type ContinuityBC int

const (
	// BCLeft integrates continuity rightward from rV[0] = rVzero.
	BCLeft ContinuityBC = iota
	// BCZero enforces rV(xVzero) = 0 at a floating stagnation point located
	// between nodes JContBC and JContBC+1, integrating outward both ways.
	BCZero
	// BCQdot fixes rV[JContBC] = 0 at the node maximizing an externally
	// supplied heat-release profile, integrating outward both ways.
	BCQdot
)

func (bc ContinuityBC) String() string {
	switch bc {
	case BCLeft:
		return "Left"
	case BCZero:
		return "Zero"
	case BCQdot:
		return "Qdot"
	}
	return "invalid"
}

// findSignChange returns the index j of the leftmost sign change in rV, i.e.
// the smallest j such that rV[j] and rV[j+1] have opposite signs (or either
// is exactly zero). Spec §9 open question (a): the first sign change from
// the left is preserved, matching the source behaviour.
func findSignChange(rV []float64) (j int, found bool) {
	for j = 0; j < len(rV)-1; j++ {
		if rV[j] == 0 || rV[j+1] == 0 {
			return j, true
		}
		if (rV[j] > 0) != (rV[j+1] > 0) {
			return j, true
		}
	}
	return 0, false
}

// argmax returns the index of the largest entry of v.
func argmax(v []float64) int {
	best := 0
	for i := 1; i < len(v); i++ {
		if v[i] > v[best] {
			best = i
		}
	}
	return best
}

func checkQdotArgs(qdot []float64, n int) error {
	if len(qdot) == 0 {
		return chk.Err("continuity BC: Qdot requires a non-empty qdot profile")
	}
	if len(qdot) != n {
		return chk.Err("continuity BC: qdot has %d entries, want %d (grid size)", len(qdot), n)
	}
	return nil
}
