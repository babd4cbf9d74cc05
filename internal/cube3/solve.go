package cube3

import (
	"github.com/ehrlich-b/twisted/internal/solver"
)

// Solution is one two-phase solve: the phase-1 sequence reducing the cube
// to G1 followed by the phase-2 sequence solving within it.
type Solution struct {
	Phase1 []CubeTurn
	Phase2 []G1CubeTurn
}

// Len returns the total move count.
func (s Solution) Len() int {
	return len(s.Phase1) + len(s.Phase2)
}

// Notation renders the full solution as one move sequence.
func (s Solution) Notation() Notation {
	return append(NotationOf(s.Phase1), G1NotationOf(s.Phase2)...)
}

// Perm returns the permutation the solution applies.
func (s Solution) Perm() Cube3Perm {
	p := Identity3()
	for _, m := range s.Phase1 {
		p = p.Sequence(m.Perm())
	}
	for _, m := range s.Phase2 {
		p = p.Sequence(m.Perm())
	}
	return p
}

// solvePhase2 completes a phase-1-reduced permutation.
func (t *Tables) solvePhase2(reduced Cube3Perm) []G1CubeTurn {
	start := Phase2Sys.FromPerm(reduced)
	return solver.Solve[G1CubeTurn](t.Phase2Move, t.Phase2Prune, G1Turns(), start, 0)
}

// SolveFirst solves the permutation using the first phase-1 solution
// found.
func (t *Tables) SolveFirst(p Cube3Perm) Solution {
	return t.Solutions(p, 1)[0]
}

// Solutions iterates the first attempts phase-1 solutions, in
// non-decreasing phase-1 length, and completes each with a phase-2
// solution. Phase-1 length ordering says nothing about the totals;
// picking among the results is the caller's concern.
func (t *Tables) Solutions(p Cube3Perm, attempts int) []Solution {
	iter := solver.NewSolutionIter[CubeTurn](t.Phase1Move, t.Phase1Prune, Turns(),
		Phase1Sys.FromPerm(p), 0)

	solutions := make([]Solution, 0, attempts)
	for i := 0; i < attempts; i++ {
		phase1 := iter.Next()

		reduced := p
		for _, m := range phase1 {
			reduced = reduced.Sequence(m.Perm())
		}
		if Phase1Sys.FromPerm(reduced) != 0 {
			panic("cube3: phase 1 solution does not reach G1")
		}

		solutions = append(solutions, Solution{
			Phase1: phase1,
			Phase2: t.solvePhase2(reduced),
		})
	}
	return solutions
}
