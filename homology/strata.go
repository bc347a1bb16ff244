// SPDX-License-Identifier: MIT
// Package: lvtopo/homology
//
// strata.go — singular strata and the perversity condition.

package homology

// Strata is the set of vertex indices marking the singular part of a space.
type Strata map[int]struct{}

// NewStrata builds a Strata set from vertex indices.
func NewStrata(vertices ...int) Strata {
	s := make(Strata, len(vertices))
	for _, v := range vertices {
		s[v] = struct{}{}
	}
	return s
}

// Contains reports whether v is singular.
func (s Strata) Contains(v int) bool {
	_, ok := s[v]
	return ok
}

// SingularIntersections counts the faces of ch that contain at least one
// singular vertex.
func SingularIntersections(ch Chain, strata Strata) int {
	n := 0
	for _, face := range ch {
		for _, v := range face {
			if strata.Contains(v) {
				n++
				break
			}
		}
	}
	return n
}

// Allowable reports whether ch meets the perversity bound p.
func Allowable(ch Chain, strata Strata, p int) bool {
	return SingularIntersections(ch, strata) <= p
}

// AllowableChains keeps the chains of rec that meet perversity p, in order.
// Raising p never shrinks the result.
//
// Errors:
//   - ErrNegativePerversity when p < 0.
func AllowableChains(rec BoundaryRecord, strata Strata, p int) (BoundaryRecord, error) {
	if p < 0 {
		return BoundaryRecord{}, homologyErrorf("AllowableChains", ErrNegativePerversity)
	}
	out := BoundaryRecord{Dim: rec.Dim}
	for _, ch := range rec.Chains {
		if Allowable(ch, strata, p) {
			out.Chains = append(out.Chains, ch)
		}
	}
	return out, nil
}
