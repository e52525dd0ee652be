package convect

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Bilinear is the quasi-2D velocity field of spec §2/C3: an externally
// supplied v(x,t) sampled on a rectangular (x,t) grid and evaluated by
// bilinear interpolation. Two independent Bilinear fields (v_z, v_r) make up
// a quasi-2D velocity source for the species sub-system (§4.2).
type Bilinear struct {
	xs   []float64   // [nx] strictly increasing
	ts   []float64   // [nt] strictly increasing
	vals [][]float64 // [nx][nt]
}

// NewBilinear builds a Bilinear field from axis samples and a value table
// vals[i][j] = v(xs[i], ts[j]).
func NewBilinear(xs, ts []float64, vals [][]float64) (b *Bilinear, err error) {
	if len(xs) < 2 || len(ts) < 2 {
		return nil, chk.Err("quasi2d: need at least 2 samples on each axis, got nx=%d nt=%d", len(xs), len(ts))
	}
	if len(vals) != len(xs) {
		return nil, chk.Err("quasi2d: vals has %d rows, want %d (len(xs))", len(vals), len(xs))
	}
	for i, row := range vals {
		if len(row) != len(ts) {
			return nil, chk.Err("quasi2d: vals[%d] has %d entries, want %d (len(ts))", i, len(row), len(ts))
		}
	}
	return &Bilinear{xs: xs, ts: ts, vals: vals}, nil
}

// Eval returns v(x,t), clamping (x,t) to the sampled rectangle when outside it.
func (b *Bilinear) Eval(x, t float64) float64 {
	i0, i1, fx := bracket(b.xs, x)
	j0, j1, ft := bracket(b.ts, t)
	v00 := b.vals[i0][j0]
	v01 := b.vals[i0][j1]
	v10 := b.vals[i1][j0]
	v11 := b.vals[i1][j1]
	v0 := v00 + fx*(v10-v00)
	v1 := v01 + fx*(v11-v01)
	return v0 + ft*(v1-v0)
}

// bracket locates the interval of xs containing x, returning the bracketing
// indices and the fractional position within the interval. x outside the
// range clamps to the nearest end interval with fraction 0 or 1.
func bracket(xs []float64, x float64) (i0, i1 int, frac float64) {
	n := len(xs)
	if x <= xs[0] {
		return 0, 1, 0
	}
	if x >= xs[n-1] {
		return n - 2, n - 1, 1
	}
	i1 = sort.Search(n, func(i int) bool { return xs[i] >= x })
	i0 = i1 - 1
	frac = (x - xs[i0]) / (xs[i1] - xs[i0])
	return
}
