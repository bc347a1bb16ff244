// Package assignment solves the square linear assignment problem: given an
// n×n cost matrix C, find a permutation σ minimising Σ C[i][σ(i)].
//
// Solve uses the shortest-augmenting-path form of the Hungarian method with
// row/column potentials, O(n³) time and O(n) extra memory beyond the matrix.
//
// Cost conventions:
//   - +Inf marks a forbidden cell. It is replaced by a large finite penalty
//     during the search; if the optimum still needs a forbidden cell the
//     problem is infeasible and Solve returns ErrInfeasible together with
//     the best assignment found.
//   - NaN and −Inf are rejected with ErrInvalidCost.
//   - A non-square or nil matrix is a hard input error (ErrNonSquare,
//     ErrMalformed). A 0×0 problem has the empty assignment.
package assignment
