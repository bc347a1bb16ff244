// Package simplex provides canonical simplices, deduplicated simplicial
// complexes, and a bounded-degree Vietoris–Rips builder.
//
// A Simplex is a sorted sequence of distinct vertex indices; sorting makes
// equality and membership well defined, so {2,0,1} and {0,1,2} are the same
// 2-simplex. A Complex is an insertion-ordered set of simplices. Closure is
// NOT enforced: a triangle's edges are present only if they were emitted.
//
// VietorisRips emits, for a point cloud and a radius r:
//   - one 0-simplex per point,
//   - {i,j} whenever d(i,j) ≤ r,
//   - {i,j,k} whenever all three pairwise distances are ≤ r.
//
// Nothing above dimension 2 is ever produced. For r1 ≤ r2 the complex at r1
// is a subset of the complex at r2.
//
// Complexity: O(N²·D) for distances plus O(N·E) for triangle enumeration,
// where E is the number of emitted edges.
package simplex
