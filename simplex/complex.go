// SPDX-License-Identifier: MIT
// Package: lvtopo/simplex
//
// complex.go — insertion-ordered, deduplicated simplicial complex.

package simplex

// Complex is a set of simplices kept in emission order.
// Equal simplices are stored once; closure under faces is not enforced.
// A nil *Complex reads as empty.
type Complex struct {
	simplices []Simplex
	index     map[string]struct{}
}

// NewComplex canonicalises each vertex set and collects them into a complex.
// Repeated simplices are kept once, at their first position.
func NewComplex(sets ...[]int) (*Complex, error) {
	c := newComplex(len(sets))
	for _, vs := range sets {
		s, err := New(vs...)
		if err != nil {
			return nil, err
		}
		c.add(s)
	}
	return c, nil
}

func newComplex(capacity int) *Complex {
	return &Complex{
		simplices: make([]Simplex, 0, capacity),
		index:     make(map[string]struct{}, capacity),
	}
}

// add inserts a canonical simplex; false when it was already present.
func (c *Complex) add(s Simplex) bool {
	k := s.Key()
	if _, ok := c.index[k]; ok {
		return false
	}
	c.index[k] = struct{}{}
	c.simplices = append(c.simplices, s)
	return true
}

// Len returns the number of distinct simplices.
func (c *Complex) Len() int {
	if c == nil {
		return 0
	}
	return len(c.simplices)
}

// Empty reports whether the complex holds no simplices.
func (c *Complex) Empty() bool { return c.Len() == 0 }

// Contains reports whether s (in canonical form) belongs to the complex.
func (c *Complex) Contains(s Simplex) bool {
	if c == nil {
		return false
	}
	_, ok := c.index[s.Key()]
	return ok
}

// Simplices returns the simplices in emission order. The slice is a copy;
// the simplices themselves are shared and read-only.
func (c *Complex) Simplices() []Simplex {
	if c == nil {
		return nil
	}
	out := make([]Simplex, len(c.simplices))
	copy(out, c.simplices)
	return out
}

// OfDim returns the simplices of dimension d in emission order.
func (c *Complex) OfDim(d int) []Simplex {
	var out []Simplex
	for _, s := range c.Simplices() {
		if s.Dim() == d {
			out = append(out, s)
		}
	}
	return out
}

// CountDim returns the number of simplices of dimension d.
func (c *Complex) CountDim(d int) int {
	n := 0
	if c == nil {
		return 0
	}
	for _, s := range c.simplices {
		if s.Dim() == d {
			n++
		}
	}
	return n
}

// MaxDim returns the largest simplex dimension, or -1 when empty.
func (c *Complex) MaxDim() int {
	m := -1
	if c == nil {
		return m
	}
	for _, s := range c.simplices {
		if s.Dim() > m {
			m = s.Dim()
		}
	}
	return m
}

// SubsetOf reports whether every simplex of c is also in o.
func (c *Complex) SubsetOf(o *Complex) bool {
	if c == nil {
		return true
	}
	for _, s := range c.simplices {
		if !o.Contains(s) {
			return false
		}
	}
	return true
}
