package cube

// Primitive corner permutations of the six quarter turns. Each array is
// indexed by destination position: entry i is the cubie sent to position i
// when the turn is applied to the solved cube.

var cornerMoveU = CornerPerm{
	{UFL, Oriented},
	{ULB, Oriented},
	{UBR, Oriented},
	{URF, Oriented},
	{DLF, Oriented},
	{DFR, Oriented},
	{DRB, Oriented},
	{DBL, Oriented},
}

var cornerMoveR = CornerPerm{
	{ULB, Oriented},
	{URF, Clockwise},
	{DFR, AntiClockwise},
	{UFL, Oriented},
	{DLF, Oriented},
	{DRB, Clockwise},
	{UBR, AntiClockwise},
	{DBL, Oriented},
}

var cornerMoveF = CornerPerm{
	{ULB, Oriented},
	{UBR, Oriented},
	{UFL, Clockwise},
	{DLF, AntiClockwise},
	{DFR, Clockwise},
	{URF, AntiClockwise},
	{DRB, Oriented},
	{DBL, Oriented},
}

var cornerMoveD = CornerPerm{
	{ULB, Oriented},
	{UBR, Oriented},
	{URF, Oriented},
	{UFL, Oriented},
	{DBL, Oriented},
	{DLF, Oriented},
	{DFR, Oriented},
	{DRB, Oriented},
}

var cornerMoveL = CornerPerm{
	{DBL, AntiClockwise},
	{UBR, Oriented},
	{URF, Oriented},
	{ULB, Clockwise},
	{UFL, AntiClockwise},
	{DFR, Oriented},
	{DRB, Oriented},
	{DLF, Clockwise},
}

var cornerMoveB = CornerPerm{
	{UBR, Clockwise},
	{DRB, AntiClockwise},
	{URF, Oriented},
	{UFL, Oriented},
	{DLF, Oriented},
	{DFR, Oriented},
	{DBL, Clockwise},
	{ULB, AntiClockwise},
}

var cornerMoves = [6]CornerPerm{
	Up:    cornerMoveU,
	Right: cornerMoveR,
	Front: cornerMoveF,
	Down:  cornerMoveD,
	Left:  cornerMoveL,
	Back:  cornerMoveB,
}

// CornerMove returns the corner permutation of a clockwise quarter turn of
// face f.
func CornerMove(f Face) CornerPerm {
	return cornerMoves[f]
}
