// Package radius picks a neighbourhood scale for Vietoris–Rips construction
// from the geometry of a point cloud.
//
// Methods:
//
//	knn     — mean over all points of the distance to the k-th nearest
//	          neighbour (the point itself counts as its own first neighbour,
//	          so k=5 reads the 4th-nearest other point), times ScaleFactor.
//	density — mean of the full N×N pairwise distance matrix (zero diagonal
//	          included), times ScaleFactor.
//
// An unknown method is a configuration error (ErrUnknownMethod); there is no
// silent fallback. Selection is a pure function of the cloud and Options.
package radius
