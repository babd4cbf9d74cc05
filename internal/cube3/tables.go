package cube3

import (
	"github.com/ehrlich-b/twisted/internal/logger"
	"github.com/ehrlich-b/twisted/internal/table"
)

// Tables holds the move and pruning tables of both phases. Construction
// is the expensive part of process startup; a Tables value is immutable
// afterwards and safe for concurrent solves.
//
// The composite tables hold references into the basic ones, so the whole
// set is owned together.
type Tables struct {
	// Phase 1
	CornerOrientMove *table.BasicMoveTable[CubeTurn]
	EdgeOrientMove   *table.BasicMoveTable[CubeTurn]
	EEdgeMove        *table.BasicMoveTable[CubeTurn]
	Phase1EdgeMove   *table.BasicMoveTable[CubeTurn]
	Phase1Move       *table.CompositeMoveTable[CubeTurn]
	Phase1Prune      table.PruneTable

	// Phase 2
	CornerPosMove    *table.BasicMoveTable[G1CubeTurn]
	UdEdgeMove       *table.BasicMoveTable[G1CubeTurn]
	ESliceMove       *table.BasicMoveTable[G1CubeTurn]
	Phase2MinusEMove *table.CompositeMoveTable[G1CubeTurn]
	Phase2Move       *table.CompositeMoveTable[G1CubeTurn]
	Phase2Prune      table.PruneTable
}

// NewTables builds the full table set.
//
// The phase-1 edge composite is flattened into a dense table before the
// pruning fill: the fill scans the table many times, and the flattened
// form drops the double indirection. The phase-1 pruning table is the
// composite max of the corner orientation and edge distances — the full
// phase-1 coordinate has ~2.2e9 values, far too many to materialize.
// Phase 2 likewise prunes on the max over corner positions, U/D edge
// positions and E slice order instead of its 39e9-value coordinate.
func NewTables() *Tables {
	log := logger.Logger()
	t := &Tables{}

	turns := Turns()

	log.Info().Msg("building corner orientation move table")
	t.CornerOrientMove = table.NewBasicMoveTable(CornerOrientSys, turns)

	log.Info().Msg("building edge orientation move table")
	t.EdgeOrientMove = table.NewBasicMoveTable(EdgeOrientSys, turns)

	log.Info().Msg("building E edge location move table")
	t.EEdgeMove = table.NewBasicMoveTable(ESliceAndEOSys.A(), turns)

	log.Info().Msg("flattening phase 1 edge move table")
	phase1Edge := table.NewCompositeMoveTable[CubeTurn](t.EEdgeMove, t.EdgeOrientMove,
		ESliceAndEOSys.A().Count(), ESliceAndEOSys.B().Count())
	t.Phase1EdgeMove = phase1Edge.ToBasic(turns)

	t.Phase1Move = table.NewCompositeMoveTable[CubeTurn](t.CornerOrientMove, t.Phase1EdgeMove,
		Phase1Sys.A().Count(), Phase1Sys.B().Count())

	coPrune := table.NewFullPruneTable(t.CornerOrientMove, turns, CornerOrientSys.Count(), 0)
	edgePrune := table.NewFullPruneTable(t.Phase1EdgeMove, turns, ESliceAndEOSys.Count(), 0)
	t.Phase1Prune = table.NewCompositePruneTable(coPrune, edgePrune, ESliceAndEOSys.Count())

	g1Turns := G1Turns()

	log.Info().Msg("building corner position move table")
	t.CornerPosMove = table.NewBasicMoveTable(CornerPosSys, g1Turns)

	log.Info().Msg("building UD edge position move table")
	t.UdEdgeMove = table.NewBasicMoveTable(Phase2MinusESys.B(), g1Turns)

	log.Info().Msg("building E slice position move table")
	t.ESliceMove = table.NewBasicMoveTable(Phase2Sys.B(), g1Turns)

	t.Phase2MinusEMove = table.NewCompositeMoveTable[G1CubeTurn](t.CornerPosMove, t.UdEdgeMove,
		Phase2MinusESys.A().Count(), Phase2MinusESys.B().Count())
	t.Phase2Move = table.NewCompositeMoveTable[G1CubeTurn](t.Phase2MinusEMove, t.ESliceMove,
		Phase2MinusESys.Count(), Phase2Sys.B().Count())

	cpPrune := table.NewFullPruneTable(t.CornerPosMove, g1Turns, CornerPosSys.Count(), 0)
	udPrune := table.NewFullPruneTable(t.UdEdgeMove, g1Turns, Phase2MinusESys.B().Count(), 0)
	minusEPrune := table.NewCompositePruneTable(cpPrune, udPrune, Phase2MinusESys.B().Count())
	eSlicePrune := table.NewFullPruneTable(t.ESliceMove, g1Turns, Phase2Sys.B().Count(), 0)
	t.Phase2Prune = table.NewCompositePruneTable(minusEPrune, eSlicePrune, Phase2Sys.B().Count())

	log.Info().Msg("tables complete")
	return t
}
