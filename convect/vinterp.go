package convect

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// VelocityHistory is a time-keyed mapping from an integrator's accepted
// output times to the spatial mass-flux profile V at that time, sampled by
// the UTW sub-system as it steps and consumed read-only, by linear
// interpolation in t, by every species sub-system (spec §3 "Velocity
// carrier", §4.2, §9 "published by the UTW phase and consumed read-only by
// species phases").
type VelocityHistory struct {
	times []float64
	profs [][]float64
}

// NewVelocityHistory returns an empty history.
func NewVelocityHistory() *VelocityHistory {
	return &VelocityHistory{}
}

// Clear discards every sample, as done at the start of each
// Coordinator.IntegrateToTime call (spec §4.3 step 1).
func (h *VelocityHistory) Clear() {
	h.times = h.times[:0]
	h.profs = h.profs[:0]
}

// Insert records the velocity profile v at time t. Samples must be inserted
// in non-decreasing t; inserting at a time already present overwrites it (the
// UTW phase re-samples the same initial time once before stepping).
func (h *VelocityHistory) Insert(t float64, v []float64) {
	if n := len(h.times); n > 0 && t == h.times[n-1] {
		h.profs[n-1] = append([]float64(nil), v...)
		return
	}
	if n := len(h.times); n > 0 && t < h.times[n-1] {
		chk.Panic("vinterp: samples must be inserted in non-decreasing time, got t=%g after t=%g", t, h.times[n-1])
	}
	h.times = append(h.times, t)
	h.profs = append(h.profs, append([]float64(nil), v...))
}

// Len returns the number of recorded samples.
func (h *VelocityHistory) Len() int { return len(h.times) }

// At returns the velocity profile linearly interpolated in time at t. With a
// single recorded sample, that sample is returned regardless of t. t outside
// the recorded bracket clamps to the nearest end sample.
func (h *VelocityHistory) At(t float64) (v []float64, err error) {
	n := len(h.times)
	if n == 0 {
		return nil, chk.Err("vinterp: no samples recorded")
	}
	if n == 1 || t <= h.times[0] {
		return h.profs[0], nil
	}
	if t >= h.times[n-1] {
		return h.profs[n-1], nil
	}
	// first index i such that times[i] >= t
	i := sort.Search(n, func(i int) bool { return h.times[i] >= t })
	t0, t1 := h.times[i-1], h.times[i]
	p0, p1 := h.profs[i-1], h.profs[i]
	s := (t - t0) / (t1 - t0)
	out := make([]float64, len(p0))
	for j := range out {
		out[j] = p0[j] + s*(p1[j]-p0[j])
	}
	return out, nil
}
