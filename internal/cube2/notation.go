package cube2

import (
	"github.com/ehrlich-b/twisted/internal/cube"
	"github.com/ehrlich-b/twisted/internal/notation"
)

// Prim is a primitive notation move of the 2x2x2: a clockwise quarter
// turn of one of the six faces.
type Prim uint8

const (
	PrimU Prim = iota
	PrimR
	PrimF
	PrimD
	PrimL
	PrimB
)

var primFaces = [...]cube.Face{cube.Up, cube.Right, cube.Front, cube.Down, cube.Left, cube.Back}

// Prims returns all primitive notation moves.
func Prims() []Prim {
	return []Prim{PrimU, PrimR, PrimF, PrimD, PrimL, PrimB}
}

// Perm returns the corner permutation of the primitive.
func (p Prim) Perm() cube.CornerPerm {
	return cube.CornerMove(primFaces[p])
}

func (p Prim) String() string {
	return primFaces[p].String()
}

// Notation is a parsed 2x2x2 move sequence.
type Notation = notation.Sequence[cube.CornerPerm, Prim]

// ParseNotation parses a scramble in face-turn notation.
func ParseNotation(s string) (Notation, error) {
	return notation.ParseSequence[cube.CornerPerm](s, Prims())
}

var turnNotation = [TurnCount]notation.Move[cube.CornerPerm, Prim]{
	TurnU:  notation.Basic[cube.CornerPerm](PrimU),
	TurnU2: notation.NTimes[cube.CornerPerm](PrimU, 2),
	TurnUP: notation.Inverse[cube.CornerPerm](PrimU),
	TurnR:  notation.Basic[cube.CornerPerm](PrimR),
	TurnR2: notation.NTimes[cube.CornerPerm](PrimR, 2),
	TurnRP: notation.Inverse[cube.CornerPerm](PrimR),
	TurnF:  notation.Basic[cube.CornerPerm](PrimF),
	TurnF2: notation.NTimes[cube.CornerPerm](PrimF, 2),
	TurnFP: notation.Inverse[cube.CornerPerm](PrimF),
}

// Notation converts a solver turn into its notation move.
func (t UrfTurn) Notation() notation.Move[cube.CornerPerm, Prim] {
	return turnNotation[t]
}

// NotationOf converts a solver move sequence into notation.
func NotationOf(turns []UrfTurn) Notation {
	seq := make(Notation, len(turns))
	for i, t := range turns {
		seq[i] = t.Notation()
	}
	return seq
}
