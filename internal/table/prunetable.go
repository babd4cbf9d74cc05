package table

import (
	"math"

	"github.com/ehrlich-b/twisted/internal/logger"
)

// PruneTable returns, for a coordinate, an admissible lower bound on the
// number of generator applications needed to reach the table's target.
type PruneTable interface {
	MinMoves(c int64) uint32
}

// ZeroPruneTable always returns 0. Used when a sub-coordinate contributes
// no heuristic under a generator set.
type ZeroPruneTable struct{}

// MinMoves implements PruneTable.
func (ZeroPruneTable) MinMoves(int64) uint32 { return 0 }

// FullPruneTable stores the exact BFS distance from every coordinate to
// the target, one byte per entry. The puzzles in scope have diameters far
// below 255.
type FullPruneTable struct {
	table []uint8
}

const unfilled = math.MaxUint8

// NewFullPruneTable computes distances to target for every coordinate in
// [0, count) under the move set, using a bidirectional breadth-first fill:
//
// Forward passes scan entries at distance n and stamp their unfilled move
// images with n+1. Reverse passes scan unfilled entries and stamp an entry
// with n+1 when any of its move images sits at distance n. The critical
// cost in both is applying every move to a coordinate, so forward wins
// while most of the table is empty and reverse wins once fewer entries
// remain than were just filled. The switch is purely a performance choice;
// either way each entry ends up with the true BFS distance.
func NewFullPruneTable[M Indexed](mt MoveTable[M], moves []M, count, target int64) *FullPruneTable {
	log := logger.Logger()
	log.Info().Int64("entries", count).Msg("building pruning table")

	table := make([]uint8, count)
	for i := range table {
		table[i] = unfilled
	}
	table[target] = 0

	remaining := count - 1
	var n uint8

	// Forward search
	for {
		var filled int64
		for c := int64(0); c < count; c++ {
			if table[c] != n {
				continue
			}
			for _, m := range moves {
				img := mt.GetMove(c, m)
				if table[img] == unfilled {
					table[img] = n + 1
					filled++
				}
			}
		}

		n++
		remaining -= filled
		log.Debug().Uint8("distance", n).Int64("filled", filled).Msg("forward fill")

		// Once fewer entries remain than were just filled, scanning the
		// unfilled ones directly is cheaper. Also exits when remaining == 0.
		if remaining <= filled {
			break
		}
	}

	// Reverse search
	for remaining > 0 {
		var filled int64
		for c := int64(0); c < count; c++ {
			if table[c] != unfilled {
				continue
			}
			for _, m := range moves {
				if table[mt.GetMove(c, m)] == n {
					table[c] = n + 1
					filled++
					break
				}
			}
		}

		n++
		remaining -= filled
		log.Debug().Uint8("distance", n).Int64("filled", filled).Msg("reverse fill")
	}

	log.Info().Uint8("depth", n).Msg("pruning table complete")
	return &FullPruneTable{table: table}
}

// MinMoves implements PruneTable; the bound is exact for this coordinate.
func (t *FullPruneTable) MinMoves(c int64) uint32 {
	return uint32(t.table[c])
}

// Len returns the number of entries.
func (t *FullPruneTable) Len() int {
	return len(t.table)
}

// CompositePruneTable bounds a composite coordinate by the maximum of its
// sub-coordinate bounds; the max of two admissible bounds is admissible.
// One side can be a ZeroPruneTable to ignore that sub-coordinate.
type CompositePruneTable struct {
	a, b   PruneTable
	countB int64
}

// NewCompositePruneTable combines two sub-coordinate pruning tables for a
// composite coordinate with second sub-count countB.
func NewCompositePruneTable(a, b PruneTable, countB int64) *CompositePruneTable {
	return &CompositePruneTable{a: a, b: b, countB: countB}
}

// MinMoves implements PruneTable.
func (t *CompositePruneTable) MinMoves(c int64) uint32 {
	return max(t.a.MinMoves(c/t.countB), t.b.MinMoves(c%t.countB))
}
