package cube

import "github.com/ehrlich-b/twisted/internal/coord"

// Coordinate systems defined directly on corner and edge permutations.
// Variants tied to one puzzle's solving method live in that puzzle's
// package.

var cornerOrder = func() []CornerPos {
	order := make([]CornerPos, CornerCount)
	for i := range order {
		order[i] = CornerPos(i)
	}
	return order
}()

type cornerOrientSys struct{}

// CornerOrientSys encodes the orientation of all corners in base 3. The last
// corner is excluded: total twist parity is always 0, so its orientation
// follows from the others. Count is 3^7 = 2187.
var CornerOrientSys coord.System[CornerPerm] = cornerOrientSys{}

func (cornerOrientSys) Count() int64 { return 2187 }

func (cornerOrientSys) FromPerm(p CornerPerm) int64 {
	vals := make([]int, CornerCount)
	for i := range p {
		vals[i] = int(p[i].Orient)
	}
	return coord.CalcParityCoord(vals, 3)
}

func (cornerOrientSys) ToPerm(c int64) CornerPerm {
	res := CornerIdentity()
	for i, v := range coord.ExtractParityCoord(c, 3, CornerCount, 0) {
		res[i].Orient = CornerOrient(v)
	}
	return res
}

type cornerPosSys struct{}

// CornerPosSys encodes the positions of all corners with a Lehmer code.
// Count is 8! = 40320.
var CornerPosSys coord.System[CornerPerm] = cornerPosSys{}

func (cornerPosSys) Count() int64 { return 40320 }

func (cornerPosSys) FromPerm(p CornerPerm) int64 {
	items := make([]CornerPos, CornerCount)
	for i := range p {
		items[i] = p[i].Pos
	}
	return coord.RankPerm(cornerOrder, items)
}

func (cornerPosSys) ToPerm(c int64) CornerPerm {
	res := CornerIdentity()
	coord.UnrankPerm(c, res[:])
	return res
}

type edgeOrientSys struct{}

// EdgeOrientSys encodes the orientation of all edges in base 2, excluding
// the last edge by the same parity argument. Count is 2^11 = 2048.
var EdgeOrientSys coord.System[EdgePerm] = edgeOrientSys{}

func (edgeOrientSys) Count() int64 { return 2048 }

func (edgeOrientSys) FromPerm(p EdgePerm) int64 {
	vals := make([]int, EdgeCount)
	for i := range p {
		vals[i] = int(p[i].Orient)
	}
	return coord.CalcParityCoord(vals, 2)
}

func (edgeOrientSys) ToPerm(c int64) EdgePerm {
	res := EdgeIdentity()
	for i, v := range coord.ExtractParityCoord(c, 2, EdgeCount, 0) {
		res[i].Orient = EdgeOrient(v)
	}
	return res
}
