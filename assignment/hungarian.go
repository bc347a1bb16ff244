// SPDX-License-Identifier: MIT
// Package: lvtopo/assignment
//
// hungarian.go — potentials-based Hungarian method.

package assignment

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Result is an optimal assignment.
type Result struct {
	// RowToCol[i] is the column assigned to row i.
	RowToCol []int
	// Cost is Σ C[i][RowToCol[i]] in the original costs (+Inf if infeasible).
	Cost float64
}

// Costs returns the matched cell costs in row order.
func (r Result) Costs(cost mat.Matrix) []float64 {
	out := make([]float64, len(r.RowToCol))
	for i, j := range r.RowToCol {
		out[i] = cost.At(i, j)
	}
	return out
}

// FromRows copies a row-major slice into a Dense. Empty input yields (nil, nil).
//
// Errors:
//   - ErrMalformed when rows are ragged or empty.
func FromRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	c := len(rows[0])
	if c == 0 {
		return nil, fmt.Errorf("FromRows: empty row: %w", ErrMalformed)
	}
	data := make([]float64, 0, len(rows)*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d columns, want %d: %w", i, len(row), c, ErrMalformed)
		}
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), c, data), nil
}

// Solve returns a minimum-cost perfect matching of the square matrix cost.
//
// Stages:
//  1. Validate: shape and cell values; collect the finite magnitude sum.
//  2. Prepare: dense 1-indexed working copy with +Inf replaced by a penalty.
//  3. Execute: one augmenting-path phase per row, updating potentials.
//  4. Finalize: read the assignment back and re-price it on the original costs.
//
// Complexity: O(n³) time, O(n²) memory for the working copy.
func Solve(cost mat.Matrix) (Result, error) {
	n, penalty, err := validate(cost)
	if err != nil {
		return Result{}, err
	}
	if n == 0 {
		return Result{RowToCol: []int{}}, nil
	}

	// Prepare: a[i][j] for 1 ≤ i,j ≤ n.
	a := make([][]float64, n+1)
	for i := 1; i <= n; i++ {
		a[i] = make([]float64, n+1)
		for j := 1; j <= n; j++ {
			v := cost.At(i-1, j-1)
			if math.IsInf(v, 1) {
				v = penalty
			}
			a[i][j] = v
		}
	}

	// Execute.
	var (
		u    = make([]float64, n+1)
		v    = make([]float64, n+1)
		p    = make([]int, n+1) // p[j]: row matched to column j (0 = free)
		way  = make([]int, n+1)
		minv = make([]float64, n+1)
		used = make([]bool, n+1)
	)
	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		for j := range minv {
			minv[j] = math.Inf(1)
			used[j] = false
		}
		for {
			used[j0] = true
			i0, delta, j1 := p[j0], math.Inf(1), 0
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				if cur := a[i0][j] - u[i0] - v[j]; cur < minv[j] {
					minv[j], way[j] = cur, j0
				}
				if minv[j] < delta {
					delta, j1 = minv[j], j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	// Finalize.
	res := Result{RowToCol: make([]int, n)}
	infeasible := false
	for j := 1; j <= n; j++ {
		i := p[j] - 1
		res.RowToCol[i] = j - 1
		c := cost.At(i, j-1)
		if math.IsInf(c, 1) {
			infeasible = true
		}
		res.Cost += c
	}
	if infeasible {
		return res, fmt.Errorf("Solve: %d×%d: %w", n, n, ErrInfeasible)
	}

	return res, nil
}

// validate checks shape and values and returns the order n and the penalty
// that stands in for +Inf. The penalty exceeds any sum of n finite cells.
func validate(cost mat.Matrix) (int, float64, error) {
	if cost == nil {
		return 0, 0, fmt.Errorf("Solve: nil matrix: %w", ErrMalformed)
	}
	r, c := cost.Dims()
	if r != c {
		return 0, 0, fmt.Errorf("Solve: %d×%d: %w", r, c, ErrNonSquare)
	}

	var sum float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := cost.At(i, j)
			switch {
			case math.IsNaN(v), math.IsInf(v, -1):
				return 0, 0, fmt.Errorf("Solve: cell (%d,%d)=%v: %w", i, j, v, ErrInvalidCost)
			case math.IsInf(v, 1):
				// forbidden
			default:
				sum += math.Abs(v)
			}
		}
	}
	penalty := 2*sum + 1
	if math.IsInf(penalty, 1) {
		penalty = math.MaxFloat64 / float64(r+1)
	}

	return r, penalty, nil
}
