package cube2

import (
	"testing"

	"github.com/ehrlich-b/twisted/internal/cube"
)

func TestMoveTableMatchesPermutations(t *testing.T) {
	tables := SolverTables()

	// Walk a series of moves and check the table tracks the real
	// coordinate at every step.
	perm := cube.CornerIdentity()
	c := Corner7Sys.FromPerm(perm)
	for _, m := range Turns() {
		c = tables.Move.GetMove(c, m)
		perm = perm.Sequence(m.Perm())
		if want := Corner7Sys.FromPerm(perm); c != want {
			t.Fatalf("after %v: table coordinate %d, permutation coordinate %d", m, c, want)
		}
	}
}

func TestMoveTableSpotChecks(t *testing.T) {
	tables := SolverTables()

	// Dense spot check against direct computation across the range
	for c := int64(0); c < Corner7Sys.Count(); c += 997 {
		perm := Corner7Sys.ToPerm(c)
		for _, m := range Turns() {
			want := Corner7Sys.FromPerm(perm.Sequence(m.Perm()))
			if got := tables.Move.GetMove(c, m); got != want {
				t.Fatalf("GetMove(%d, %v) = %d, want %d", c, m, got, want)
			}
		}
	}
}

func TestPruneTableTarget(t *testing.T) {
	tables := SolverTables()
	if got := tables.Prune.MinMoves(0); got != 0 {
		t.Errorf("prune[target] = %d, want 0", got)
	}
}

func TestPruneTableSingleMoves(t *testing.T) {
	tables := SolverTables()
	for _, m := range Turns() {
		c := Corner7Sys.FromPerm(m.Perm().Invert())
		if got := tables.Prune.MinMoves(c); got != 1 {
			t.Errorf("prune of %v' = %d, want 1", m, got)
		}
	}
}

func TestPruneTableAdmissible(t *testing.T) {
	tables := SolverTables()

	// Distances can grow by at most 1 per move, in either direction;
	// otherwise some entry is not the true BFS distance.
	for c := int64(0); c < Corner7Sys.Count(); c += 487 {
		d := tables.Prune.MinMoves(c)
		for _, m := range Turns() {
			nd := tables.Prune.MinMoves(tables.Move.GetMove(c, m))
			diff := int(nd) - int(d)
			if diff < -1 || diff > 1 {
				t.Fatalf("prune jumps from %d to %d across one move at %d", d, nd, c)
			}
		}
	}
}

func TestSolveAfterDBLFix(t *testing.T) {
	tables := SolverTables()

	// Scrambles that move the DBL cubie, so the rotation matters
	scrambles := []string{"D", "B L", "D' B2 L", "L2 D B' L B2"}

	for _, s := range scrambles {
		t.Run(s, func(t *testing.T) {
			seq, err := ParseNotation(s)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			scramble := seq.Perm()

			sym, fixed := FixDBLCorner(scramble)
			solution := tables.Solve(fixed)

			// The solution must solve the rotated scramble outright
			solved := fixed
			for _, m := range solution {
				solved = solved.Sequence(m.Perm())
			}
			if !solved.IsIdentity() {
				t.Errorf("solution %v leaves %v", solution, solved)
			}

			// In the original frame the same moves solve the cube up to
			// the whole-cube rotation that was applied.
			original := scramble
			for _, m := range solution {
				original = original.Sequence(m.Perm())
			}
			if want := sym.Inverse().Perm(); original != want {
				t.Errorf("original frame result = %v, want inverse rotation", original)
			}
		})
	}
}
