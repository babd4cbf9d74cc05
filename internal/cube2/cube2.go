// Package cube2 solves the 2x2x2 cube. The whole state is a corner
// permutation; the solver works on a 7-corner coordinate after a whole-cube
// rotation parks the DBL cubie in place.
package cube2

import (
	"github.com/ehrlich-b/twisted/internal/cube"
	"github.com/ehrlich-b/twisted/internal/puzzle"
)

// UrfTurn is a generator of the 2x2x2 move set: turns of the U, R and F
// faces only, since D, L and B are their whole-cube-rotation mirrors once
// DBL is fixed. The declaration order is the move-table column order.
type UrfTurn uint8

const (
	TurnU UrfTurn = iota
	TurnU2
	TurnUP
	TurnR
	TurnR2
	TurnRP
	TurnF
	TurnF2
	TurnFP
)

// TurnCount is the number of generators.
const TurnCount = 9

// Turns returns all generators in enumeration order.
func Turns() []UrfTurn {
	return []UrfTurn{TurnU, TurnU2, TurnUP, TurnR, TurnR2, TurnRP, TurnF, TurnF2, TurnFP}
}

var turnPerms = func() [TurnCount]cube.CornerPerm {
	var perms [TurnCount]cube.CornerPerm
	for f, face := range []cube.Face{cube.Up, cube.Right, cube.Front} {
		quarter := cube.CornerMove(face)
		perms[3*f] = quarter
		perms[3*f+1] = puzzle.NTimes(quarter, 2)
		perms[3*f+2] = quarter.Invert()
	}
	return perms
}()

// Perm returns the corner permutation this turn applies.
func (t UrfTurn) Perm() cube.CornerPerm {
	return turnPerms[t]
}

// Index returns the position of the turn in enumeration order.
func (t UrfTurn) Index() int {
	return int(t)
}

// CombinesWith reports whether two turns act on the same face. Reflexive.
func (t UrfTurn) CombinesWith(other UrfTurn) bool {
	return t/3 == other/3
}

func (t UrfTurn) String() string {
	return [...]string{"U", "U2", "U'", "R", "R2", "R'", "F", "F2", "F'"}[t]
}
