package cube3

import (
	"fmt"

	"github.com/ehrlich-b/twisted/internal/coord"
	"github.com/ehrlich-b/twisted/internal/cube"
)

// Coordinates of the two-phase method. Phase 1 tracks orientations and E
// slice membership; phase 2 tracks positions within the G1 subgroup.

func liftCorner(sys coord.System[cube.CornerPerm]) coord.System[Cube3Perm] {
	return coord.Lift(sys,
		func(p Cube3Perm) cube.CornerPerm { return p.Corners },
		func(c cube.CornerPerm) Cube3Perm { return Cube3Perm{Corners: c, Edges: cube.EdgeIdentity()} })
}

func liftEdge(sys coord.System[cube.EdgePerm]) coord.System[Cube3Perm] {
	return coord.Lift(sys,
		func(p Cube3Perm) cube.EdgePerm { return p.Edges },
		func(e cube.EdgePerm) Cube3Perm { return Cube3Perm{Corners: cube.CornerIdentity(), Edges: e} })
}

// CornerOrientSys and EdgeOrientSys are the shared orientation coordinates
// lifted to the full puzzle.
var (
	CornerOrientSys = liftCorner(cube.CornerOrientSys)
	EdgeOrientSys   = liftEdge(cube.EdgeOrientSys)
	CornerPosSys    = liftCorner(cube.CornerPosSys)
)

var udEdgeOrder = func() []cube.EdgePos {
	order := make([]cube.EdgePos, cube.UDEdgeCount)
	for i := range order {
		order[i] = cube.EdgePos(i)
	}
	return order
}()

var eSliceOrder = []cube.EdgePos{cube.FR, cube.FL, cube.BL, cube.BR}

type eEdgePosSys struct{}

// EEdgePosSys encodes which four slots hold the E slice edges, without
// regard to their order. Count is C(12, 4) = 495; 0 means all E edges are
// in the E slice.
var EEdgePosSys coord.System[cube.EdgePerm] = eEdgePosSys{}

func (eEdgePosSys) Count() int64 { return 495 }

func (eEdgePosSys) FromPerm(p cube.EdgePerm) int64 {
	var c int64
	// E slice edges seen so far
	k := 0
	for n := 0; n < cube.EdgeCount; n++ {
		if p[n].Pos.InESlice() {
			k++
		} else if k > 0 {
			c += coord.Binomial(n, k-1)
		}
	}
	return c
}

func (eEdgePosSys) ToPerm(c int64) cube.EdgePerm {
	// Each highest coefficient exceeds the sum of all lower ones, so the
	// occupied slots can be recovered greedily from the top.
	res := cube.EdgeIdentity()
	k := 3
	for i := cube.EdgeCount - 1; i >= 0; i-- {
		b := coord.Binomial(i, k)
		if c < b {
			// Slot i holds an E slice edge
			if k == 0 {
				break
			}
			k--
		} else {
			c -= b
			// Shift a U/D edge into slot i
			coord.RotateLeft(res[:i+1])
		}
	}
	return res
}

type eSliceEdgePosSys struct{}

// ESliceEdgePosSys encodes the order of the E slice edges among
// themselves. Only valid when all four are in the E slice. Count is
// 4! = 24.
var ESliceEdgePosSys coord.System[cube.EdgePerm] = eSliceEdgePosSys{}

func (eSliceEdgePosSys) Count() int64 { return 24 }

func (eSliceEdgePosSys) FromPerm(p cube.EdgePerm) int64 {
	items := make([]cube.EdgePos, len(eSliceOrder))
	for i, pos := range eSliceOrder {
		item := p[pos].Pos
		if !item.InESlice() {
			panic(fmt.Sprintf("cube3: edge %v outside the E slice", item))
		}
		items[i] = item
	}
	return coord.RankPerm(eSliceOrder, items)
}

func (eSliceEdgePosSys) ToPerm(c int64) cube.EdgePerm {
	res := cube.EdgeIdentity()
	coord.UnrankPerm(c, res[cube.UDEdgeCount:])
	return res
}

type udEdgePosSys struct{}

// UdEdgePosSys encodes the order of the U and D layer edges with a Lehmer
// code. Only valid when they all sit in the U and D layers. Count is
// 8! = 40320.
var UdEdgePosSys coord.System[cube.EdgePerm] = udEdgePosSys{}

func (udEdgePosSys) Count() int64 { return 40320 }

func (udEdgePosSys) FromPerm(p cube.EdgePerm) int64 {
	items := make([]cube.EdgePos, cube.UDEdgeCount)
	for i := range items {
		items[i] = p[i].Pos
	}
	return coord.RankPerm(udEdgeOrder, items)
}

func (udEdgePosSys) ToPerm(c int64) cube.EdgePerm {
	res := cube.EdgeIdentity()
	coord.UnrankPerm(c, res[:cube.UDEdgeCount])
	return res
}

// ESliceAndEOSys is the phase-1 edge composite: E slice membership and
// edge orientation. Count is 495*2048.
var ESliceAndEOSys = coord.NewComposite(liftEdge(EEdgePosSys), liftEdge(cube.EdgeOrientSys),
	func(eSlice, eo Cube3Perm) Cube3Perm {
		edges := eSlice.Edges
		for i := range edges {
			edges[i].Orient = eo.Edges[i].Orient
		}
		return Cube3Perm{Corners: cube.CornerIdentity(), Edges: edges}
	})

// Phase1Sys is the full phase-1 coordinate: corner orientation, edge
// orientation and E slice membership. Count is 2187*495*2048.
var Phase1Sys = coord.NewComposite[Cube3Perm](CornerOrientSys, ESliceAndEOSys,
	func(corners, edges Cube3Perm) Cube3Perm {
		return Cube3Perm{Corners: corners.Corners, Edges: edges.Edges}
	})

// Phase2MinusESys is the phase-2 coordinate without the E slice order:
// corner positions and U/D edge positions. Count is 40320*40320.
var Phase2MinusESys = coord.NewComposite[Cube3Perm](CornerPosSys, liftEdge(UdEdgePosSys),
	func(corners, edges Cube3Perm) Cube3Perm {
		return Cube3Perm{Corners: corners.Corners, Edges: edges.Edges}
	})

// Phase2Sys is the full phase-2 coordinate. Count is 40320*40320*24, so
// values need 64 bits; its tables stay composite rather than dense.
var Phase2Sys = coord.NewComposite[Cube3Perm](Phase2MinusESys, liftEdge(ESliceEdgePosSys),
	func(rest, eSlice Cube3Perm) Cube3Perm {
		edges := rest.Edges
		for i := cube.UDEdgeCount; i < cube.EdgeCount; i++ {
			edges[i] = eSlice.Edges[i]
		}
		return Cube3Perm{Corners: rest.Corners, Edges: edges}
	})
