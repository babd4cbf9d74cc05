package cube3

import (
	"github.com/ehrlich-b/twisted/internal/cube"
	"github.com/ehrlich-b/twisted/internal/puzzle"
)

// Primitive edge permutations of the six quarter turns, indexed by
// destination position like the corner tables. F and B are the flipping
// turns.

func e(p cube.EdgePos) cube.Edge {
	return cube.Edge{Pos: p}
}

func ef(p cube.EdgePos) cube.Edge {
	return cube.Edge{Pos: p, Orient: cube.EdgeFlipped}
}

var edgeMoveU = cube.EdgePerm{
	e(cube.UR), e(cube.UF), e(cube.UL), e(cube.UB),
	e(cube.DF), e(cube.DR), e(cube.DB), e(cube.DL),
	e(cube.FR), e(cube.FL), e(cube.BL), e(cube.BR),
}

var edgeMoveR = cube.EdgePerm{
	e(cube.UF), e(cube.UL), e(cube.UB), e(cube.FR),
	e(cube.DF), e(cube.BR), e(cube.DB), e(cube.DL),
	e(cube.DR), e(cube.FL), e(cube.BL), e(cube.UR),
}

var edgeMoveF = cube.EdgePerm{
	ef(cube.FL), e(cube.UL), e(cube.UB), e(cube.UR),
	ef(cube.FR), e(cube.DR), e(cube.DB), e(cube.DL),
	ef(cube.UF), ef(cube.DF), e(cube.BL), e(cube.BR),
}

var edgeMoveD = cube.EdgePerm{
	e(cube.UF), e(cube.UL), e(cube.UB), e(cube.UR),
	e(cube.DL), e(cube.DF), e(cube.DR), e(cube.DB),
	e(cube.FR), e(cube.FL), e(cube.BL), e(cube.BR),
}

var edgeMoveL = cube.EdgePerm{
	e(cube.UF), e(cube.BL), e(cube.UB), e(cube.UR),
	e(cube.DF), e(cube.DR), e(cube.DB), e(cube.FL),
	e(cube.FR), e(cube.UL), e(cube.DL), e(cube.BR),
}

var edgeMoveB = cube.EdgePerm{
	e(cube.UF), e(cube.UL), ef(cube.BR), e(cube.UR),
	e(cube.DF), e(cube.DR), ef(cube.BL), e(cube.DL),
	e(cube.FR), e(cube.FL), ef(cube.UB), ef(cube.DB),
}

var edgeMoves = [6]cube.EdgePerm{
	cube.Up:    edgeMoveU,
	cube.Right: edgeMoveR,
	cube.Front: edgeMoveF,
	cube.Down:  edgeMoveD,
	cube.Left:  edgeMoveL,
	cube.Back:  edgeMoveB,
}

// Move returns the full 3x3x3 permutation of a clockwise quarter turn of
// face f.
func Move(f cube.Face) Cube3Perm {
	return Cube3Perm{Corners: cube.CornerMove(f), Edges: edgeMoves[f]}
}

var turnPerms = func() [TurnCount]Cube3Perm {
	var perms [TurnCount]Cube3Perm
	faces := []cube.Face{cube.Up, cube.Right, cube.Front, cube.Down, cube.Left, cube.Back}
	for f, face := range faces {
		quarter := Move(face)
		perms[3*f] = quarter
		perms[3*f+1] = puzzle.NTimes(quarter, 2)
		perms[3*f+2] = quarter.Invert()
	}
	return perms
}()

var g1TurnPerms = [G1TurnCount]Cube3Perm{
	G1U:  turnPerms[Turn3U],
	G1U2: turnPerms[Turn3U2],
	G1UP: turnPerms[Turn3UP],
	G1D:  turnPerms[Turn3D],
	G1D2: turnPerms[Turn3D2],
	G1DP: turnPerms[Turn3DP],
	G1R2: turnPerms[Turn3R2],
	G1F2: turnPerms[Turn3F2],
	G1L2: turnPerms[Turn3L2],
	G1B2: turnPerms[Turn3B2],
}
