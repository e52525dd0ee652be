// package grid implements the read-only geometric view shared by every
// convection sub-system operating on one 1D flame-normal coordinate.
package grid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Grid holds node positions and the derived coefficients used by centered
// and upwinded finite-difference operators. A Grid is built once by the
// outer driver and borrowed by reference by every sub-system of one split
// step (spec §3, §9 "never copy coefficient arrays into sub-systems"):
//
//  (df/dx)[j] = cfm[j]*f[j-1] + cf[j]*f[j] + cfp[j]*f[j+1]   (interior j)
//
type Grid struct {
	Alpha int // geometry flag: 0 planar, 1 cylindrical

	X       []float64 // [n] node coordinates, strictly increasing
	Hh      []float64 // [n-1] cell half-widths: Hh[j] = X[j+1]-X[j]
	R       []float64 // [n] radial metric: X[j] cylindrical, 1 planar
	Rphalf  []float64 // [n-1] midpoint radial metric: ½(R[j]+R[j+1])
	Cfm     []float64 // [n] centered-derivative weight on f[j-1]
	Cf      []float64 // [n] centered-derivative weight on f[j]
	Cfp     []float64 // [n] centered-derivative weight on f[j+1]
}

// New builds a Grid from node coordinates x and a geometry flag alpha.
// x must be strictly increasing and hold at least 2 points.
func New(x []float64, alpha int) (g *Grid, err error) {
	n := len(x)
	if n < 2 {
		return nil, chk.Err("grid: need at least 2 nodes, got %d", n)
	}
	for j := 0; j < n-1; j++ {
		if x[j+1] <= x[j] {
			return nil, chk.Err("grid: nodes must be strictly increasing: x[%d]=%g >= x[%d]=%g", j, x[j], j+1, x[j+1])
		}
	}
	if alpha != 0 && alpha != 1 {
		return nil, chk.Err("grid: alpha must be 0 (planar) or 1 (cylindrical), got %d", alpha)
	}

	g = &Grid{Alpha: alpha}
	g.resize(x)
	return g, nil
}

// Resize rebuilds every cached coefficient from new node coordinates,
// as required whenever the outer driver regrids (spec §3, §6).
func (g *Grid) Resize(x []float64) (err error) {
	n := len(x)
	if n < 2 {
		return chk.Err("grid: need at least 2 nodes, got %d", n)
	}
	for j := 0; j < n-1; j++ {
		if x[j+1] <= x[j] {
			return chk.Err("grid: nodes must be strictly increasing: x[%d]=%g >= x[%d]=%g", j, x[j], j+1, x[j+1])
		}
	}
	g.resize(x)
	return nil
}

// N returns the number of nodes.
func (g *Grid) N() int { return len(g.X) }

func (g *Grid) resize(x []float64) {
	n := len(x)
	g.X = la.VecClone(x)
	g.Hh = make([]float64, n-1)
	for j := 0; j < n-1; j++ {
		g.Hh[j] = g.X[j+1] - g.X[j]
	}

	g.R = make([]float64, n)
	for j := 0; j < n; j++ {
		if g.Alpha == 1 {
			g.R[j] = g.X[j]
		} else {
			g.R[j] = 1.0
		}
	}

	g.Rphalf = make([]float64, n-1)
	for j := 0; j < n-1; j++ {
		g.Rphalf[j] = 0.5 * (g.R[j] + g.R[j+1])
	}

	// centered second-order finite-difference weights on a (possibly
	// non-uniform) three-point stencil, using the standard divided
	// difference construction; one-sided at the boundaries.
	g.Cfm = make([]float64, n)
	g.Cf = make([]float64, n)
	g.Cfp = make([]float64, n)
	for j := 0; j < n; j++ {
		switch {
		case j == 0:
			hp := g.Hh[0]
			g.Cfm[j] = 0
			g.Cf[j] = -1 / hp
			g.Cfp[j] = 1 / hp
		case j == n-1:
			hm := g.Hh[n-2]
			g.Cfm[j] = -1 / hm
			g.Cf[j] = 1 / hm
			g.Cfp[j] = 0
		default:
			hm := g.Hh[j-1]
			hp := g.Hh[j]
			g.Cfm[j] = -hp / (hm * (hm + hp))
			g.Cf[j] = (hp - hm) / (hm * hp)
			g.Cfp[j] = hm / (hp * (hm + hp))
		}
	}
}
