package cube2

import (
	"github.com/ehrlich-b/twisted/internal/coord"
	"github.com/ehrlich-b/twisted/internal/cube"
)

// Coordinates over the first seven corners. DBL is assumed solved — the
// driver rotates the whole cube to make it so — which shrinks the state
// space from 8!*3^7 to 7!*3^6.

var corner7Order = func() []cube.CornerPos {
	order := make([]cube.CornerPos, 7)
	for i := range order {
		order[i] = cube.CornerPos(i)
	}
	return order
}()

type cornerOrient7Sys struct{}

// CornerOrient7Sys encodes the orientation of the first seven corners in
// base 3, excluding the last of them by the parity argument. Count is
// 3^6 = 729; 0 means all oriented.
var CornerOrient7Sys coord.System[cube.CornerPerm] = cornerOrient7Sys{}

func (cornerOrient7Sys) Count() int64 { return 729 }

func (cornerOrient7Sys) FromPerm(p cube.CornerPerm) int64 {
	vals := make([]int, 7)
	for i := range vals {
		vals[i] = int(p[i].Orient)
	}
	return coord.CalcParityCoord(vals, 3)
}

func (cornerOrient7Sys) ToPerm(c int64) cube.CornerPerm {
	res := cube.CornerIdentity()
	for i, v := range coord.ExtractParityCoord(c, 3, 7, 0) {
		res[i].Orient = cube.CornerOrient(v)
	}
	return res
}

type cornerPos7Sys struct{}

// CornerPos7Sys encodes the positions of the first seven corners with a
// Lehmer code. Count is 7! = 5040; 0 means all in order.
var CornerPos7Sys coord.System[cube.CornerPerm] = cornerPos7Sys{}

func (cornerPos7Sys) Count() int64 { return 5040 }

func (cornerPos7Sys) FromPerm(p cube.CornerPerm) int64 {
	items := make([]cube.CornerPos, 7)
	for i := range items {
		items[i] = p[i].Pos
	}
	return coord.RankPerm(corner7Order, items)
}

func (cornerPos7Sys) ToPerm(c int64) cube.CornerPerm {
	res := cube.CornerIdentity()
	coord.UnrankPerm(c, res[:7])
	return res
}

// Corner7Sys is the composite coordinate of the 2x2x2 core: orientation
// and position of the seven free corners. Count is 729*5040.
var Corner7Sys = coord.NewComposite(CornerOrient7Sys, CornerPos7Sys,
	func(orient, pos cube.CornerPerm) cube.CornerPerm {
		for i := range pos {
			pos[i].Orient = orient[i].Orient
		}
		return pos
	})
