// SPDX-License-Identifier: MIT
// Package: lvtopo/simplex
//
// simplex.go — canonical (sorted) simplices.

package simplex

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Simplex is a sorted sequence of distinct vertex indices.
// Its dimension is len-1. Values returned by this package are canonical and
// must be treated as read-only.
type Simplex []int

// New builds a canonical simplex from vertices in any order.
//
// Errors:
//   - ErrEmptySimplex    when no vertices are given.
//   - ErrNegativeVertex  when any index is < 0.
//   - ErrDuplicateVertex when an index repeats.
func New(vertices ...int) (Simplex, error) {
	if len(vertices) == 0 {
		return nil, ErrEmptySimplex
	}
	s := slices.Clone(vertices)
	slices.Sort(s)
	if s[0] < 0 {
		return nil, fmt.Errorf("New(%v): %w", vertices, ErrNegativeVertex)
	}
	for i := 1; i < len(s); i++ {
		if s[i] == s[i-1] {
			return nil, fmt.Errorf("New(%v): %w", vertices, ErrDuplicateVertex)
		}
	}

	return Simplex(s), nil
}

// Dim returns the simplex dimension (|vertices|-1); -1 for the empty face.
func (s Simplex) Dim() int { return len(s) - 1 }

// Contains reports whether v is a vertex of s.
func (s Simplex) Contains(v int) bool {
	_, found := slices.BinarySearch(s, v)
	return found
}

// Equal reports whether s and o have the same vertices.
func (s Simplex) Equal(o Simplex) bool { return slices.Equal(s, o) }

// Key is a stable string identity used for set membership.
func (s Simplex) Key() string {
	var b strings.Builder
	for i, v := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// String renders s as {v0,v1,...}.
func (s Simplex) String() string { return "{" + s.Key() + "}" }

// Faces returns the len(s) codimension-1 faces of s, face i omitting
// vertex i. A 0-simplex has a single empty face.
// Complexity: O(len(s)²).
func (s Simplex) Faces() []Simplex {
	faces := make([]Simplex, len(s))
	for i := range s {
		f := make(Simplex, 0, len(s)-1)
		f = append(f, s[:i]...)
		f = append(f, s[i+1:]...)
		faces[i] = f
	}
	return faces
}
