package cube3

import (
	"github.com/ehrlich-b/twisted/internal/cube"
	"github.com/ehrlich-b/twisted/internal/notation"
)

// Prim is a primitive notation move of the 3x3x3: a clockwise quarter
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

// Perm returns the permutation of the primitive.
func (p Prim) Perm() Cube3Perm {
	return Move(primFaces[p])
}

func (p Prim) String() string {
	return primFaces[p].String()
}

// Notation is a parsed 3x3x3 move sequence.
type Notation = notation.Sequence[Cube3Perm, Prim]

// ParseNotation parses a scramble in face-turn notation.
func ParseNotation(s string) (Notation, error) {
	return notation.ParseSequence[Cube3Perm](s, Prims())
}

var turnNotation = [TurnCount]notation.Move[Cube3Perm, Prim]{
	Turn3U:  notation.Basic[Cube3Perm](PrimU),
	Turn3U2: notation.NTimes[Cube3Perm](PrimU, 2),
	Turn3UP: notation.Inverse[Cube3Perm](PrimU),
	Turn3R:  notation.Basic[Cube3Perm](PrimR),
	Turn3R2: notation.NTimes[Cube3Perm](PrimR, 2),
	Turn3RP: notation.Inverse[Cube3Perm](PrimR),
	Turn3F:  notation.Basic[Cube3Perm](PrimF),
	Turn3F2: notation.NTimes[Cube3Perm](PrimF, 2),
	Turn3FP: notation.Inverse[Cube3Perm](PrimF),
	Turn3D:  notation.Basic[Cube3Perm](PrimD),
	Turn3D2: notation.NTimes[Cube3Perm](PrimD, 2),
	Turn3DP: notation.Inverse[Cube3Perm](PrimD),
	Turn3L:  notation.Basic[Cube3Perm](PrimL),
	Turn3L2: notation.NTimes[Cube3Perm](PrimL, 2),
	Turn3LP: notation.Inverse[Cube3Perm](PrimL),
	Turn3B:  notation.Basic[Cube3Perm](PrimB),
	Turn3B2: notation.NTimes[Cube3Perm](PrimB, 2),
	Turn3BP: notation.Inverse[Cube3Perm](PrimB),
}

// Notation converts a solver turn into its notation move.
func (t CubeTurn) Notation() notation.Move[Cube3Perm, Prim] {
	return turnNotation[t]
}

var g1TurnNotation = [G1TurnCount]notation.Move[Cube3Perm, Prim]{
	G1U:  notation.Basic[Cube3Perm](PrimU),
	G1U2: notation.NTimes[Cube3Perm](PrimU, 2),
	G1UP: notation.Inverse[Cube3Perm](PrimU),
	G1D:  notation.Basic[Cube3Perm](PrimD),
	G1D2: notation.NTimes[Cube3Perm](PrimD, 2),
	G1DP: notation.Inverse[Cube3Perm](PrimD),
	G1R2: notation.NTimes[Cube3Perm](PrimR, 2),
	G1F2: notation.NTimes[Cube3Perm](PrimF, 2),
	G1L2: notation.NTimes[Cube3Perm](PrimL, 2),
	G1B2: notation.NTimes[Cube3Perm](PrimB, 2),
}

// Notation converts a G1 solver turn into its notation move.
func (t G1CubeTurn) Notation() notation.Move[Cube3Perm, Prim] {
	return g1TurnNotation[t]
}

// NotationOf converts a phase-1 move sequence into notation.
func NotationOf(turns []CubeTurn) Notation {
	seq := make(Notation, len(turns))
	for i, t := range turns {
		seq[i] = t.Notation()
	}
	return seq
}

// G1NotationOf converts a phase-2 move sequence into notation.
func G1NotationOf(turns []G1CubeTurn) Notation {
	seq := make(Notation, len(turns))
	for i, t := range turns {
		seq[i] = t.Notation()
	}
	return seq
}
