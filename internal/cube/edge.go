package cube

// EdgePos is one of the twelve edge positions. Indices 0-7 are the U/D
// layer edges; 8-11 are the E slice, so slice membership tests reduce to a
// comparison and the phase-2 coordinates can split the two groups by
// truncation.
type EdgePos uint8

const (
	UF EdgePos = iota
	UL
	UB
	UR
	DF
	DR
	DB
	DL
	FR
	FL
	BL
	BR
)

// EdgeCount is the number of edge positions.
const EdgeCount = 12

// UDEdgeCount is the number of U/D layer edge positions.
const UDEdgeCount = 8

func (p EdgePos) String() string {
	return [...]string{"UF", "UL", "UB", "UR", "DF", "DR", "DB", "DL", "FR", "FL", "BL", "BR"}[p]
}

// InESlice reports whether the position is in the E slice.
func (p EdgePos) InESlice() bool {
	// E slice edges are last, DL is the last U/D edge
	return p > DL
}

// EdgeOrient is an edge flip in Z/2.
type EdgeOrient uint8

const (
	EdgeOriented EdgeOrient = iota
	EdgeFlipped
)

// Add combines two flips; the group operation is xor.
func (o EdgeOrient) Add(other EdgeOrient) EdgeOrient {
	return o ^ other
}

// Edge is an edge cubie: which edge it is and whether it is flipped.
type Edge struct {
	Pos    EdgePos
	Orient EdgeOrient
}

// EdgeFaces lists the two faces an edge position shows.
type EdgeFaces struct {
	Oriented Face
	Flipped  Face
}

// Face returns the face shown at the given local flip.
func (f EdgeFaces) Face(o EdgeOrient) Face {
	if o == EdgeFlipped {
		return f.Flipped
	}
	return f.Oriented
}

var edgeFaces = [EdgeCount]EdgeFaces{
	UF: {Up, Front},
	UL: {Up, Left},
	UB: {Up, Back},
	UR: {Up, Right},
	DF: {Down, Front},
	DR: {Down, Right},
	DB: {Down, Back},
	DL: {Down, Left},
	FR: {Front, Right},
	FL: {Front, Left},
	BL: {Back, Left},
	BR: {Back, Right},
}

// Faces returns the faces shown by a cubie sitting solved at position p.
func (p EdgePos) Faces() EdgeFaces {
	return edgeFaces[p]
}

// EdgePerm is a permutation of the edges, indexed the same way as
// CornerPerm: perm[pos] is the cubie currently at pos.
type EdgePerm [EdgeCount]Edge

var edgeIdentity = func() EdgePerm {
	var p EdgePerm
	for i := range p {
		p[i] = Edge{Pos: EdgePos(i)}
	}
	return p
}()

// EdgeIdentity returns the identity edge permutation.
func EdgeIdentity() EdgePerm {
	return edgeIdentity
}

// Identity implements puzzle.Perm.
func (EdgePerm) Identity() EdgePerm {
	return edgeIdentity
}

// Sequence applies the receiver first, then other.
func (p EdgePerm) Sequence(other EdgePerm) EdgePerm {
	var res EdgePerm
	for pos := range res {
		mid := other[pos]
		src := p[mid.Pos]
		res[pos] = Edge{Pos: src.Pos, Orient: mid.Orient.Add(src.Orient)}
	}
	return res
}

// Invert returns the permutation undoing the receiver. Edge flips are
// their own inverse.
func (p EdgePerm) Invert() EdgePerm {
	var res EdgePerm
	for pos := range p {
		dst := p[pos]
		res[dst.Pos] = Edge{Pos: EdgePos(pos), Orient: dst.Orient}
	}
	return res
}

// IsIdentity reports whether the permutation is the identity.
func (p EdgePerm) IsIdentity() bool {
	return p == edgeIdentity
}
