// Package pipeline runs independent analysis units on a bounded worker pool.
//
// A unit is one point cloud with its strata, and optionally a hybrid region
// split. Each unit is analysed in isolation:
//
//  1. adaptive radius and Vietoris–Rips complex,
//  2. homology and intersection-homology rank estimates,
//  3. persistence diagrams from the configured Engine, filtered by lifespan,
//     summarised, and scanned for transitions,
//  4. the hybrid filtration, when the unit carries one.
//
// Configuration errors abort Run before any unit starts. Failures inside a
// unit (deadline, engine error, classifier input error) are recorded on that
// unit's Report and never stop the batch. Reports come back in input order.
//
// PairwiseBottleneck compares the diagrams of finished units.
package pipeline
