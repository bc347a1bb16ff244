// Package persistence defines the boundary to persistent-homology engines and
// ships a built-in engine for dimension 0.
//
// An Engine turns a point cloud into one persistence diagram per homological
// dimension. The core never computes higher-dimensional persistence itself;
// external engines (ripser bindings, services) plug in through Engine or the
// EngineFunc adapter.
//
// ZeroDim computes the H0 diagram of the Vietoris–Rips filtration exactly:
// every point is born at 0, and each edge of a minimum spanning tree, taken
// in ascending length, kills one component at that length (Kruskal with a
// union-find forest). One class never dies. Zero-length intervals, produced
// by coincident points, are omitted.
package persistence
