// Package coord maps puzzle permutations onto small integer coordinates.
//
// A coordinate identifies the coset of permutations sharing some feature
// (an orientation pattern, a set of piece positions). Coordinates are
// orthogonal: applying a move sends every member of a coset to the same new
// coset, which is what makes precomputed move tables possible — table sizes
// are proportional to the sum of the coordinate counts rather than their
// product.
package coord

import (
	"github.com/ehrlich-b/twisted/internal/puzzle"
)

// System defines an integer coordinate over permutation type P.
//
// Values range over [0, Count()). FromPerm is the canonical projection;
// ToPerm picks a representative permutation for the coset. The round-trip
// law FromPerm(ToPerm(c)) == c must hold for every c; the other direction
// is generally not the identity.
type System[P puzzle.Perm[P]] interface {
	Count() int64
	FromPerm(p P) int64
	ToPerm(c int64) P
}

// Composite packs two sub-coordinates into one integer as
// a*B.Count() + b. The merge function combines the two representative
// permutations into one (e.g. orientations from a applied onto positions
// from b).
type Composite[P puzzle.Perm[P]] struct {
	a, b  System[P]
	merge func(a, b P) P
}

// NewComposite builds a composite coordinate system from two sub-systems.
func NewComposite[P puzzle.Perm[P]](a, b System[P], merge func(a, b P) P) *Composite[P] {
	return &Composite[P]{a: a, b: b, merge: merge}
}

func (s *Composite[P]) Count() int64 {
	return s.a.Count() * s.b.Count()
}

func (s *Composite[P]) FromPerm(p P) int64 {
	return s.Compose(s.a.FromPerm(p), s.b.FromPerm(p))
}

func (s *Composite[P]) ToPerm(c int64) P {
	ca, cb := s.Decompose(c)
	return s.merge(s.a.ToPerm(ca), s.b.ToPerm(cb))
}

// Compose packs a pair of sub-coordinate values into one value.
func (s *Composite[P]) Compose(ca, cb int64) int64 {
	return ca*s.b.Count() + cb
}

// Decompose splits a composite value back into its sub-coordinate values.
func (s *Composite[P]) Decompose(c int64) (ca, cb int64) {
	return c / s.b.Count(), c % s.b.Count()
}

// A returns the first sub-system.
func (s *Composite[P]) A() System[P] { return s.a }

// B returns the second sub-system.
func (s *Composite[P]) B() System[P] { return s.b }

type lifted[P puzzle.Perm[P], Q puzzle.Perm[Q]] struct {
	sys     System[Q]
	project func(P) Q
	embed   func(Q) P
}

func (l lifted[P, Q]) Count() int64       { return l.sys.Count() }
func (l lifted[P, Q]) FromPerm(p P) int64 { return l.sys.FromPerm(l.project(p)) }
func (l lifted[P, Q]) ToPerm(c int64) P   { return l.embed(l.sys.ToPerm(c)) }

// Lift embeds a coordinate system over a sub-puzzle Q into the larger
// puzzle P. project extracts the Q layer of a P permutation; embed wraps a
// Q representative back into a P permutation (identity elsewhere).
func Lift[P puzzle.Perm[P], Q puzzle.Perm[Q]](sys System[Q], project func(P) Q, embed func(Q) P) System[P] {
	return lifted[P, Q]{sys: sys, project: project, embed: embed}
}
