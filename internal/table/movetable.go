// Package table builds the large lookup tables driving the solver: move
// tables mapping (coordinate, generator) to the image coordinate, and
// pruning tables holding admissible lower bounds on the distance to a
// target coordinate.
//
// Tables are built once, single-writer, and are safe for any number of
// concurrent readers afterwards: every access is a pure index lookup into
// a read-only array.
package table

import (
	"fmt"
	"math"

	"github.com/ehrlich-b/twisted/internal/coord"
	"github.com/ehrlich-b/twisted/internal/puzzle"
)

// Indexed is the part of the move contract tables need: a stable position
// in the move set's enumeration order.
type Indexed interface {
	Index() int
}

// MoveTable looks up the coordinate reached by applying a move to a
// coordinate. Implementations are total and O(1).
type MoveTable[M Indexed] interface {
	GetMove(c int64, m M) int64
}

// BasicMoveTable is a dense move table: a row-major array of
// count*len(moves) image coordinates.
type BasicMoveTable[M Indexed] struct {
	table     []uint32
	moveCount int
	count     int64
}

// NewBasicMoveTable builds a dense move table for the coordinate system
// and move set. The outer loop runs over coordinates in index order, the
// inner loop over moves in enumeration order, so the layout is stable
// across builds.
func NewBasicMoveTable[P puzzle.Perm[P], M puzzle.Move[P, M]](sys coord.System[P], moves []M) *BasicMoveTable[M] {
	count := sys.Count()
	checkTableWidth(count)

	t := &BasicMoveTable[M]{
		table:     make([]uint32, count*int64(len(moves))),
		moveCount: len(moves),
		count:     count,
	}
	for c := int64(0); c < count; c++ {
		p := sys.ToPerm(c)
		for _, m := range moves {
			img := sys.FromPerm(p.Sequence(m.Perm()))
			t.table[c*int64(len(moves))+int64(m.Index())] = uint32(img)
		}
	}
	return t
}

// GetMove implements MoveTable.
func (t *BasicMoveTable[M]) GetMove(c int64, m M) int64 {
	return int64(t.table[c*int64(t.moveCount)+int64(m.Index())])
}

// Count returns the number of coordinate values the table covers.
func (t *BasicMoveTable[M]) Count() int64 {
	return t.count
}

// CompositeMoveTable serves a composite coordinate by delegating to the
// move tables of its two sub-coordinates. It holds non-owning references;
// the sub-tables must outlive it.
type CompositeMoveTable[M Indexed] struct {
	a, b           MoveTable[M]
	countA, countB int64
}

// NewCompositeMoveTable combines the sub-tables of a composite coordinate
// with sub-counts countA and countB.
func NewCompositeMoveTable[M Indexed](a, b MoveTable[M], countA, countB int64) *CompositeMoveTable[M] {
	return &CompositeMoveTable[M]{a: a, b: b, countA: countA, countB: countB}
}

// GetMove implements MoveTable: the image is the componentwise image of
// the two sub-coordinates.
func (t *CompositeMoveTable[M]) GetMove(c int64, m M) int64 {
	ca, cb := c/t.countB, c%t.countB
	return t.a.GetMove(ca, m)*t.countB + t.b.GetMove(cb, m)
}

// Count returns the number of coordinate values the table covers.
func (t *CompositeMoveTable[M]) Count() int64 {
	return t.countA * t.countB
}

// ToBasic flattens the composite table into a dense one, trading memory
// for lookups without the double indirection. Useful when the flattened
// table feeds further composites or a pruning-table fill that will scan it
// many times.
func (t *CompositeMoveTable[M]) ToBasic(moves []M) *BasicMoveTable[M] {
	count := t.Count()
	checkTableWidth(count)

	basic := &BasicMoveTable[M]{
		table:     make([]uint32, count*int64(len(moves))),
		moveCount: len(moves),
		count:     count,
	}
	for c := int64(0); c < count; c++ {
		for _, m := range moves {
			basic.table[c*int64(len(moves))+int64(m.Index())] = uint32(t.GetMove(c, m))
		}
	}
	return basic
}

func checkTableWidth(count int64) {
	if count > math.MaxUint32 {
		panic(fmt.Sprintf("table: coordinate count %d does not fit dense storage", count))
	}
}
