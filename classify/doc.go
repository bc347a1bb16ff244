// Package classify tags the simplices of a complex with a scalar value.
//
// Two classifiers are provided behind the Classifier interface:
//
//	Morse     — every simplex is critical at a value equal to its dimension.
//	            This is an identity tag, not a gradient-vector-field
//	            reduction; a true discrete Morse pairing can be slotted in
//	            without touching callers.
//	Curvature — each simplex is weighted by |f(first) − f(last)| where f is
//	            a per-vertex scalar field and first/last are the lowest and
//	            highest vertex of the canonical (sorted) simplex. Vertices
//	            therefore always weigh 0.
//
// Output preserves the complex's insertion order. An empty complex yields an
// empty (nil) result and a Warn log, never an error.
package classify
