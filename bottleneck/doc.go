// Package bottleneck compares two weighted persistence diagrams.
//
// For diagrams A (n pairs) and B (m pairs) with one non-negative weight per
// pair, a square (n+m)×(n+m) cost matrix is laid out as
//
//	            cols 0..m-1          cols m..m+n-1
//	rows 0..n-1 A_i ↔ B_j            A_i ↔ diagonal  (cell [i, m+i])
//	rows n..    B_j ↔ diagonal       diagonal ↔ diagonal (all 0)
//	            (cell [n+j, j])
//
// where A_i ↔ B_j costs max(|bᵢ−bⱼ|, |dᵢ−dⱼ|)·(wᵢ+wⱼ) and a pair sent to the
// diagonal costs |d−b|·w. The minimum-sum perfect matching is found with the
// Hungarian method and the distance is the largest matched cell cost.
//
// The remaining padding cells follow the Padding policy:
//
//	PaddingZeroFill — 0 (default). A pair can then reach the diagonal through
//	                  another pair's slot at no cost, so diagrams with two or
//	                  more pairs on each side collapse to distance 0.
//	PaddingStrict   — forbidden. Each pair can only use its own diagonal slot,
//	                  which is the textbook layout.
//
// Essential pairs (death = +Inf) cost +Inf against finite pairs and the
// diagonal; two essential pairs compare by birth alone. When every perfect
// matching needs an infinite cell the distance is +Inf.
package bottleneck
