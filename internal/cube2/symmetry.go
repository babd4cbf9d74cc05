package cube2

import (
	"github.com/ehrlich-b/twisted/internal/cube"
	"github.com/ehrlich-b/twisted/internal/puzzle"
)

// Symmetry is a whole-cube rotation, excluding reflections. It is built
// from three components, applied in order:
//
//   - urfRot: 120 degree clockwise rotation about the URF-DBL axis (0..2)
//   - yRot:   90 degree clockwise rotation about the U-D axis (0..3)
//   - x2Rot:  180 degree rotation about the F-B axis (0..1)
//
// giving 3*4*2 = 24 rotations in all.
type Symmetry uint8

// SymmetryCount is the number of whole-cube rotations.
const SymmetryCount = 24

// NewSymmetry builds a symmetry from its rotation components.
func NewSymmetry(urfRot, yRot, x2Rot uint8) Symmetry {
	if urfRot >= 3 || yRot >= 4 || x2Rot >= 2 {
		panic("cube2: symmetry component out of range")
	}
	return Symmetry(urfRot*8 + yRot*2 + x2Rot)
}

// Symmetries returns all rotations in index order.
func Symmetries() []Symmetry {
	syms := make([]Symmetry, SymmetryCount)
	for i := range syms {
		syms[i] = Symmetry(i)
	}
	return syms
}

var urfRotPerm = cube.CornerPerm{
	{Pos: cube.DLF, Orient: cube.Clockwise},
	{Pos: cube.UFL, Orient: cube.AntiClockwise},
	{Pos: cube.URF, Orient: cube.Clockwise},
	{Pos: cube.DFR, Orient: cube.AntiClockwise},
	{Pos: cube.DRB, Orient: cube.Clockwise},
	{Pos: cube.UBR, Orient: cube.AntiClockwise},
	{Pos: cube.ULB, Orient: cube.Clockwise},
	{Pos: cube.DBL, Orient: cube.AntiClockwise},
}

var yRotPerm = cube.CornerPerm{
	{Pos: cube.UFL, Orient: cube.Oriented},
	{Pos: cube.ULB, Orient: cube.Oriented},
	{Pos: cube.UBR, Orient: cube.Oriented},
	{Pos: cube.URF, Orient: cube.Oriented},
	{Pos: cube.DFR, Orient: cube.Oriented},
	{Pos: cube.DRB, Orient: cube.Oriented},
	{Pos: cube.DBL, Orient: cube.Oriented},
	{Pos: cube.DLF, Orient: cube.Oriented},
}

var x2RotPerm = cube.CornerPerm{
	{Pos: cube.DRB, Orient: cube.Oriented},
	{Pos: cube.DBL, Orient: cube.Oriented},
	{Pos: cube.DLF, Orient: cube.Oriented},
	{Pos: cube.DFR, Orient: cube.Oriented},
	{Pos: cube.URF, Orient: cube.Oriented},
	{Pos: cube.UFL, Orient: cube.Oriented},
	{Pos: cube.ULB, Orient: cube.Oriented},
	{Pos: cube.UBR, Orient: cube.Oriented},
}

var symmetryPerms = func() [SymmetryCount]cube.CornerPerm {
	var perms [SymmetryCount]cube.CornerPerm
	for i := range perms {
		urf := i / 8
		y := (i / 2) % 4
		x2 := i % 2
		perms[i] = puzzle.NTimes(urfRotPerm, urf).
			Sequence(puzzle.NTimes(yRotPerm, y)).
			Sequence(puzzle.NTimes(x2RotPerm, x2))
	}
	return perms
}()

var symmetryInverses = func() [SymmetryCount]Symmetry {
	var inverses [SymmetryCount]Symmetry
	for _, s := range Symmetries() {
		found := false
		for _, inv := range Symmetries() {
			if s.Perm().Sequence(inv.Perm()).IsIdentity() {
				inverses[s] = inv
				found = true
				break
			}
		}
		if !found {
			panic("cube2: symmetry has no inverse")
		}
	}
	return inverses
}()

// Perm returns the corner permutation of the rotation.
func (s Symmetry) Perm() cube.CornerPerm {
	return symmetryPerms[s]
}

// Inverse returns the rotation undoing the receiver.
func (s Symmetry) Inverse() Symmetry {
	return symmetryInverses[s]
}

// IsIdentity reports whether the rotation is the identity.
func (s Symmetry) IsIdentity() bool {
	return s == 0
}

// FixDBLCorner finds a whole-cube rotation placing the DBL cubie solved,
// and returns it along with the rotated permutation. Every corner
// permutation admits one, so failure is a programmer error.
func FixDBLCorner(p cube.CornerPerm) (Symmetry, cube.CornerPerm) {
	solved := cube.Corner{Pos: cube.DBL, Orient: cube.Oriented}
	for _, s := range Symmetries() {
		transformed := s.Perm().Sequence(p)
		if transformed[cube.DBL] == solved {
			return s, transformed
		}
	}
	panic("cube2: no rotation fixes the DBL corner")
}
