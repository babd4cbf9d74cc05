// Package cube holds the cubie-level algebra shared by the 2x2x2 and
// 3x3x3 puzzles: corner and edge permutations with their group laws, the
// primitive face turns, and the coordinate systems defined directly on
// them.
package cube

// CornerPos is one of the eight corner positions. The order matters: the
// enumeration index is used as a table key, and DBL is last so the 2x2x2
// coordinates can fix it by truncation.
type CornerPos uint8

const (
	ULB CornerPos = iota
	UBR
	URF
	UFL
	DLF
	DFR
	DRB
	DBL
)

// CornerCount is the number of corner positions.
const CornerCount = 8

func (p CornerPos) String() string {
	return [...]string{"ULB", "UBR", "URF", "UFL", "DLF", "DFR", "DRB", "DBL"}[p]
}

// CornerOrient is a corner twist in Z/3.
type CornerOrient uint8

const (
	Oriented CornerOrient = iota
	Clockwise
	AntiClockwise
)

// Add adds two twists modulo 3.
func (o CornerOrient) Add(other CornerOrient) CornerOrient {
	return CornerOrient((uint8(o) + uint8(other)) % 3)
}

// Sub subtracts a twist modulo 3.
func (o CornerOrient) Sub(other CornerOrient) CornerOrient {
	return CornerOrient((3 + uint8(o) - uint8(other)) % 3)
}

// Neg returns the inverse twist.
func (o CornerOrient) Neg() CornerOrient {
	return CornerOrient((3 - uint8(o)) % 3)
}

// Corner is a corner cubie: which corner it is and how it is twisted.
type Corner struct {
	Pos    CornerPos
	Orient CornerOrient
}

// CornerFaces lists the faces a corner position shows, by local twist.
type CornerFaces struct {
	Oriented      Face
	Clockwise     Face
	AntiClockwise Face
}

// Face returns the face shown at the given local twist.
func (f CornerFaces) Face(o CornerOrient) Face {
	switch o {
	case Clockwise:
		return f.Clockwise
	case AntiClockwise:
		return f.AntiClockwise
	default:
		return f.Oriented
	}
}

var cornerFaces = [CornerCount]CornerFaces{
	ULB: {Up, Left, Back},
	UBR: {Up, Back, Right},
	URF: {Up, Right, Front},
	UFL: {Up, Front, Left},
	DLF: {Down, Left, Front},
	DFR: {Down, Front, Right},
	DRB: {Down, Right, Back},
	DBL: {Down, Back, Left},
}

// Faces returns the faces shown by a cubie sitting solved at position p.
func (p CornerPos) Faces() CornerFaces {
	return cornerFaces[p]
}

// CornerPerm is a permutation of the corners. perm[pos] is the cubie
// currently at pos after applying the permutation to the solved cube, so
// indexing gives the cubie which replaces a position, not the position a
// cubie goes to.
type CornerPerm [CornerCount]Corner

var cornerIdentity = func() CornerPerm {
	var p CornerPerm
	for i := range p {
		p[i] = Corner{Pos: CornerPos(i)}
	}
	return p
}()

// CornerIdentity returns the identity corner permutation.
func CornerIdentity() CornerPerm {
	return cornerIdentity
}

// Identity implements puzzle.Perm.
func (CornerPerm) Identity() CornerPerm {
	return cornerIdentity
}

// Sequence applies the receiver first, then other.
func (p CornerPerm) Sequence(other CornerPerm) CornerPerm {
	var res CornerPerm
	for pos := range res {
		mid := other[pos]
		src := p[mid.Pos]
		res[pos] = Corner{Pos: src.Pos, Orient: mid.Orient.Add(src.Orient)}
	}
	return res
}

// Invert returns the permutation undoing the receiver.
func (p CornerPerm) Invert() CornerPerm {
	var res CornerPerm
	for pos := range p {
		dst := p[pos]
		res[dst.Pos] = Corner{Pos: CornerPos(pos), Orient: dst.Orient.Neg()}
	}
	return res
}

// IsIdentity reports whether the permutation is the identity.
func (p CornerPerm) IsIdentity() bool {
	return p == cornerIdentity
}

// Face returns the face shown at a corner facelet, identified by its
// position and local twist. Used by renderers.
func (p CornerPerm) Face(facelet Corner) Face {
	c := p[facelet.Pos]
	return c.Pos.Faces().Face(facelet.Orient.Sub(c.Orient))
}
