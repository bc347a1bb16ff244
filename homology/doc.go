// Package homology estimates homology ranks of simplicial complexes and
// their perversity-filtered (intersection homology) variants.
//
// ⚠️ The rank estimator is a documented heuristic, not exact homology:
//
//  1. A BoundaryRecord for dimension d lists, for every d-simplex, its d+1
//     faces (chains).
//  2. All faces are stacked into a numeric matrix: one row per face, one
//     column per vertex slot, entries are the vertex indices.
//  3. The matrix is factorised by SVD; singular values ≤ Tolerance (1e-10)
//     mark the kernel basis.
//  4. The image rank is approximated by the row count, and the estimate is
//     max(0, |kernel| − rows).
//
// Downstream experiments depend on this exact output, so the estimator sits
// behind the RankEstimator interface and an exact method can be plugged in
// without touching callers.
//
// Intersection homology filters each record to the chains that are
// "allowable": a chain is allowable when at most p of its faces touch the
// singular Strata. The allowable count never decreases as p grows.
//
// Failure policy:
//   - empty complex / record → rank 0, logged at Warn.
//   - SVD failure or malformed record → rank 0, logged at Error; the typed
//     failure (ErrNumericalFailure) is carried in the estimator's error.
//   - negative degree or perversity → configuration error returned.
package homology
