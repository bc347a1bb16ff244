// Package hybrid composes one filtration out of three differently treated
// regions of a space:
//
//	smooth     — a point cloud, turned into a Vietoris–Rips complex at an
//	             adaptively selected radius;
//	non-smooth — a complex tagged by a critical-value classifier (Morse);
//	singular   — a complex weighted by a scalar field (curvature).
//
// Entries shared across regions are glued by re-adding them as transition
// entries. The result is therefore a multiset: a simplex present in k ≥ 2
// regions appears k times as a region entry and k more times as a
// transition, once per region occurrence. Nothing is deduplicated.
//
// The composer imposes no order beyond region order. Callers needing a
// monotone filtration sort with Filtration.Ordered.
package hybrid
