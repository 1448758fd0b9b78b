// Package assignment - Hungarian method (shortest augmenting path with potentials).
//
// Solve computes a minimum-cost perfect assignment of rows to columns on a
// square cost matrix.
//
// Rationale (succinct):
//  1. Prefetch the matrix into its flat row-major buffer once; all hot loops
//     index w[i*n+j] directly.
//  2. Maintain dual potentials u (rows) and v (cols). Each row is inserted
//     by a Dijkstra-like scan over reduced costs w[i][j]-u[i]-v[j] ≥ 0.
//  3. Deterministic tie-breaking: the scan picks the lowest column index
//     among equal reduced costs, so equal inputs give equal assignments.
//
// Complexity:
//   - Time O(n³), Space O(n).
package assignment

import (
	"math"

	"github.com/pkg/errors"

	"github.com/katalvlaran/graphedit/matrix"
)

var (
	// ErrNilCost is returned when the cost matrix is nil.
	ErrNilCost = errors.New("assignment: nil cost matrix")

	// ErrNonSquare is returned when the cost matrix is not square.
	ErrNonSquare = errors.New("assignment: cost matrix is not square")
)

// hungarian holds the working state of one Solve call.
type hungarian struct {
	n int
	w []float64 // w[i*n+j], prefetched

	u, v []float64 // potentials, 1-based; index 0 is the virtual row/col
	p    []int     // p[j] = row matched to column j (1-based, 0 = free)
	way  []int     // predecessor column on the augmenting path
	minv []float64
	used []bool
}

// Solve returns assign[i] = column matched to row i and the total cost.
//
// Errors:
//   - ErrNilCost, ErrNonSquare.
//
// A 0×0 matrix yields an empty assignment with cost 0.
func Solve(cost *matrix.Dense) ([]int, float64, error) {
	if cost == nil {
		return nil, 0, ErrNilCost
	}
	if !cost.IsSquare() {
		return nil, 0, errors.Wrapf(ErrNonSquare, "shape %dx%d", cost.Rows(), cost.Cols())
	}
	n := cost.Rows()
	if n == 0 {
		return []int{}, 0, nil
	}

	h := &hungarian{
		n:    n,
		w:    cost.RawData(),
		u:    make([]float64, n+1),
		v:    make([]float64, n+1),
		p:    make([]int, n+1),
		way:  make([]int, n+1),
		minv: make([]float64, n+1),
		used: make([]bool, n+1),
	}
	for i := 1; i <= n; i++ {
		h.insertRow(i)
	}

	assign := make([]int, n)
	var total float64
	for j := 1; j <= n; j++ {
		i := h.p[j] - 1
		assign[i] = j - 1
		total += h.w[i*n+j-1]
	}

	return assign, total, nil
}

// insertRow augments the current matching with row i (1-based).
func (h *hungarian) insertRow(i int) {
	n := h.n
	h.p[0] = i
	j0 := 0
	var j int
	for j = 0; j <= n; j++ {
		h.minv[j] = math.Inf(1)
		h.used[j] = false
	}

	for {
		h.used[j0] = true
		i0 := h.p[j0]
		delta := math.Inf(1)
		j1 := 0
		row := (i0 - 1) * n
		for j = 1; j <= n; j++ {
			if h.used[j] {
				continue
			}
			cur := h.w[row+j-1] - h.u[i0] - h.v[j]
			if cur < h.minv[j] {
				h.minv[j] = cur
				h.way[j] = j0
			}
			if h.minv[j] < delta {
				delta = h.minv[j]
				j1 = j
			}
		}
		for j = 0; j <= n; j++ {
			if h.used[j] {
				h.u[h.p[j]] += delta
				h.v[j] -= delta
			} else {
				h.minv[j] -= delta
			}
		}
		j0 = j1
		if h.p[j0] == 0 {
			break
		}
	}

	// unwind the augmenting path
	for j0 != 0 {
		j1 := h.way[j0]
		h.p[j0] = h.p[j1]
		j0 = j1
	}
}
