// Package cube3 solves the 3x3x3 cube with Kociemba's two-phase method:
// phase 1 reduces the cube to the G1 subgroup (corners and edges oriented,
// E slice populated), phase 2 solves within it.
package cube3

import (
	"github.com/ehrlich-b/twisted/internal/cube"
)

// Cube3Perm is a full 3x3x3 permutation: the pair of its corner and edge
// permutations.
type Cube3Perm struct {
	Corners cube.CornerPerm
	Edges   cube.EdgePerm
}

var cube3Identity = Cube3Perm{
	Corners: cube.CornerIdentity(),
	Edges:   cube.EdgeIdentity(),
}

// Identity3 returns the identity permutation.
func Identity3() Cube3Perm {
	return cube3Identity
}

// Identity implements puzzle.Perm.
func (Cube3Perm) Identity() Cube3Perm {
	return cube3Identity
}

// Sequence applies the receiver first, then other.
func (p Cube3Perm) Sequence(other Cube3Perm) Cube3Perm {
	return Cube3Perm{
		Corners: p.Corners.Sequence(other.Corners),
		Edges:   p.Edges.Sequence(other.Edges),
	}
}

// Invert returns the permutation undoing the receiver.
func (p Cube3Perm) Invert() Cube3Perm {
	return Cube3Perm{
		Corners: p.Corners.Invert(),
		Edges:   p.Edges.Invert(),
	}
}

// IsIdentity reports whether the permutation is the identity.
func (p Cube3Perm) IsIdentity() bool {
	return p == cube3Identity
}

// CubeTurn is a generator of the full 3x3x3 move set: quarter, half and
// inverse quarter turns of all six faces. The declaration order is the
// move-table column order.
type CubeTurn uint8

const (
	Turn3U CubeTurn = iota
	Turn3U2
	Turn3UP
	Turn3R
	Turn3R2
	Turn3RP
	Turn3F
	Turn3F2
	Turn3FP
	Turn3D
	Turn3D2
	Turn3DP
	Turn3L
	Turn3L2
	Turn3LP
	Turn3B
	Turn3B2
	Turn3BP
)

// TurnCount is the number of full move set generators.
const TurnCount = 18

// Turns returns all generators in enumeration order.
func Turns() []CubeTurn {
	turns := make([]CubeTurn, TurnCount)
	for i := range turns {
		turns[i] = CubeTurn(i)
	}
	return turns
}

// Perm returns the permutation this turn applies.
func (t CubeTurn) Perm() Cube3Perm {
	return turnPerms[t]
}

// Index returns the position of the turn in enumeration order.
func (t CubeTurn) Index() int {
	return int(t)
}

// CombinesWith reports whether two turns act on the same face. Reflexive.
func (t CubeTurn) CombinesWith(other CubeTurn) bool {
	return t/3 == other/3
}

func (t CubeTurn) String() string {
	return [...]string{
		"U", "U2", "U'", "R", "R2", "R'", "F", "F2", "F'",
		"D", "D2", "D'", "L", "L2", "L'", "B", "B2", "B'",
	}[t]
}

// G1CubeTurn is a generator of the G1 subgroup used in phase 2: all turns
// of U and D, half turns only elsewhere.
type G1CubeTurn uint8

const (
	G1U G1CubeTurn = iota
	G1U2
	G1UP
	G1D
	G1D2
	G1DP
	G1R2
	G1F2
	G1L2
	G1B2
)

// G1TurnCount is the number of G1 generators.
const G1TurnCount = 10

// G1Turns returns all G1 generators in enumeration order.
func G1Turns() []G1CubeTurn {
	turns := make([]G1CubeTurn, G1TurnCount)
	for i := range turns {
		turns[i] = G1CubeTurn(i)
	}
	return turns
}

// Perm returns the permutation this turn applies.
func (t G1CubeTurn) Perm() Cube3Perm {
	return g1TurnPerms[t]
}

// Index returns the position of the turn in enumeration order.
func (t G1CubeTurn) Index() int {
	return int(t)
}

// CombinesWith reports whether two turns act on the same face. Reflexive.
func (t G1CubeTurn) CombinesWith(other G1CubeTurn) bool {
	return t.face() == other.face()
}

func (t G1CubeTurn) face() uint8 {
	if t < G1R2 {
		return uint8(t) / 3
	}
	return uint8(t) - uint8(G1R2) + 2
}

func (t G1CubeTurn) String() string {
	return [...]string{"U", "U2", "U'", "D", "D2", "D'", "R2", "F2", "L2", "B2"}[t]
}
