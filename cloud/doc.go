// Package cloud holds the point-cloud data model shared by every stage of
// the topology pipeline.
//
// 🚀 What is a PointCloud?
//
//	An ordered, immutable sequence of N points in ℝᴰ. The index of a point
//	(0..N-1) is its vertex identifier everywhere downstream: simplices,
//	strata and scalar fields all speak in these indices.
//
// ✨ Key features:
//   - gonum-backed row-major storage (one row per point)
//   - Euclidean pairwise distances, single or as a full symmetric matrix
//   - time-delay embedding of scalar series into point clouds
//   - per-column min-max normalisation into [0,1]
//   - per-vertex scalar fields (column projections, norms, raw series)
//
// ⚙️ Usage:
//
//	pc, err := cloud.New([][]float64{{0, 0}, {1, 0}, {0, 1}})
//	if err != nil {
//	  // ErrRaggedPoints / ErrNaNInf / ErrZeroDimension
//	}
//	d := pc.DistanceMatrix() // *mat.SymDense, nil for an empty cloud
//
// A nil *PointCloud behaves like an empty one for every read accessor.
package cloud
