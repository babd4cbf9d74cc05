package cube3

import (
	"sync"
	"testing"
)

// The table build is the expensive part of these tests, so all of them
// share one set.
var (
	testTablesOnce sync.Once
	testTables     *Tables
)

func solverTables(t *testing.T) *Tables {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping table build in short mode")
	}
	testTablesOnce.Do(func() {
		testTables = NewTables()
	})
	return testTables
}

func applySolution(p Cube3Perm, sol Solution) Cube3Perm {
	return p.Sequence(sol.Perm())
}

func TestSolveSolvedCube(t *testing.T) {
	tables := solverTables(t)
	sol := tables.SolveFirst(Identity3())
	if sol.Len() != 0 {
		t.Errorf("solution of identity = %v, want empty", sol.Notation())
	}
}

func TestPhase1ReachesG1(t *testing.T) {
	tables := solverTables(t)
	scrambles := []string{
		"R",
		"R U F",
		"F2 L' B D R U2",
		"U R2 F B R B2 R U2 L",
	}

	for _, s := range scrambles {
		t.Run(s, func(t *testing.T) {
			seq, err := ParseNotation(s)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			scramble := seq.Perm()

			sol := tables.Solutions(scramble, 1)[0]
			reduced := scramble
			for _, m := range sol.Phase1 {
				reduced = reduced.Sequence(m.Perm())
			}

			if got := CornerOrientSys.FromPerm(reduced); got != 0 {
				t.Errorf("corner orientation %d after phase 1", got)
			}
			if got := ESliceAndEOSys.FromPerm(reduced); got != 0 {
				t.Errorf("edge coordinate %d after phase 1", got)
			}
		})
	}
}

func TestFullSolveRestoresIdentity(t *testing.T) {
	tables := solverTables(t)
	scrambles := []string{
		"U",
		"R U R' U'",
		"F2 L' B D R U2",
		"D L2 F' B U R2 D' F U2",
	}

	for _, s := range scrambles {
		t.Run(s, func(t *testing.T) {
			seq, err := ParseNotation(s)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			scramble := seq.Perm()

			sol := tables.SolveFirst(scramble)
			if got := applySolution(scramble, sol); !got.IsIdentity() {
				t.Errorf("solution %v leaves %v", sol.Notation(), got)
			}
		})
	}
}

func TestSolutionsPhase1LengthsNonDecreasing(t *testing.T) {
	tables := solverTables(t)
	seq, err := ParseNotation("R U F' D2 L")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	scramble := seq.Perm()

	solutions := tables.Solutions(scramble, 3)
	prev := 0
	for i, sol := range solutions {
		if len(sol.Phase1) < prev {
			t.Fatalf("attempt %d: phase 1 length %d after %d", i, len(sol.Phase1), prev)
		}
		prev = len(sol.Phase1)

		if got := applySolution(scramble, sol); !got.IsIdentity() {
			t.Errorf("attempt %d does not solve the cube", i)
		}
	}
}

func TestMoveTablesMatchPermutations(t *testing.T) {
	tables := solverTables(t)

	perm := Identity3()
	c := Phase1Sys.FromPerm(perm)
	for _, m := range Turns() {
		c = tables.Phase1Move.GetMove(c, m)
		perm = perm.Sequence(m.Perm())
		if want := Phase1Sys.FromPerm(perm); c != want {
			t.Fatalf("after %v: table coordinate %d, permutation coordinate %d", m, c, want)
		}
	}

	perm = Identity3()
	c2 := Phase2Sys.FromPerm(perm)
	for _, m := range G1Turns() {
		c2 = tables.Phase2Move.GetMove(c2, m)
		perm = perm.Sequence(m.Perm())
		if want := Phase2Sys.FromPerm(perm); c2 != want {
			t.Fatalf("after %v: table coordinate %d, permutation coordinate %d", m, c2, want)
		}
	}
}

func TestPhase2PruneTarget(t *testing.T) {
	tables := solverTables(t)
	if got := tables.Phase2Prune.MinMoves(0); got != 0 {
		t.Errorf("phase 2 prune at target = %d, want 0", got)
	}
	if got := tables.Phase1Prune.MinMoves(0); got != 0 {
		t.Errorf("phase 1 prune at target = %d, want 0", got)
	}
}
