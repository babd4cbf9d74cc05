package cube2

import (
	"sync"

	"github.com/ehrlich-b/twisted/internal/cube"
	"github.com/ehrlich-b/twisted/internal/logger"
	"github.com/ehrlich-b/twisted/internal/solver"
	"github.com/ehrlich-b/twisted/internal/table"
)

// Tables holds the process-lifetime move and pruning tables of the 2x2x2
// solver. Construction is single-writer; afterwards the tables are
// read-only and safe for concurrent solves.
type Tables struct {
	OrientMove *table.BasicMoveTable[UrfTurn]
	PosMove    *table.BasicMoveTable[UrfTurn]
	Move       *table.CompositeMoveTable[UrfTurn]
	Prune      *table.FullPruneTable
}

var (
	tablesOnce sync.Once
	tables     *Tables
)

// SolverTables builds the 2x2x2 tables on first use and memoizes them for
// the life of the process.
func SolverTables() *Tables {
	tablesOnce.Do(func() {
		tables = NewTables()
	})
	return tables
}

// NewTables builds a fresh table set.
func NewTables() *Tables {
	log := logger.Logger()
	turns := Turns()

	log.Info().Msg("building corner orientation move table")
	orient := table.NewBasicMoveTable(CornerOrient7Sys, turns)

	log.Info().Msg("building corner position move table")
	pos := table.NewBasicMoveTable(CornerPos7Sys, turns)

	move := table.NewCompositeMoveTable[UrfTurn](orient, pos, CornerOrient7Sys.Count(), CornerPos7Sys.Count())

	prune := table.NewFullPruneTable(move, turns, Corner7Sys.Count(), 0)

	return &Tables{OrientMove: orient, PosMove: pos, Move: move, Prune: prune}
}

// Solve finds a shortest move sequence solving the permutation. The DBL
// cubie must already be in place; use FixDBLCorner first. The empty
// sequence is returned exactly when the cube is already solved.
func (t *Tables) Solve(p cube.CornerPerm) []UrfTurn {
	start := Corner7Sys.FromPerm(p)
	return solver.Solve[UrfTurn](t.Move, t.Prune, Turns(), start, 0)
}
