package cube

import (
	"testing"

	"github.com/ehrlich-b/twisted/internal/puzzle"
)

func TestCornerIdentityIsOwnInverse(t *testing.T) {
	if got := CornerIdentity().Invert(); got != CornerIdentity() {
		t.Errorf("identity inverse = %v", got)
	}
}

func TestCornerIdentityLaws(t *testing.T) {
	x := CornerMove(Right).Sequence(CornerMove(Up))

	if got := CornerIdentity().Sequence(x); got != x {
		t.Error("identity.Sequence(x) != x")
	}
	if got := x.Sequence(CornerIdentity()); got != x {
		t.Error("x.Sequence(identity) != x")
	}
}

func TestCornerInverseLaws(t *testing.T) {
	x := CornerMove(Front).Sequence(CornerMove(Left)).Sequence(CornerMove(Back))

	if !x.Sequence(x.Invert()).IsIdentity() {
		t.Error("x.Sequence(x.Invert()) is not identity")
	}
	if !x.Invert().Sequence(x).IsIdentity() {
		t.Error("x.Invert().Sequence(x) is not identity")
	}
}

func TestCornerNTimes(t *testing.T) {
	x := CornerMove(Right).Sequence(CornerMove(Up))

	if !puzzle.NTimes(x, 0).IsIdentity() {
		t.Error("x.NTimes(0) is not identity")
	}
	if got := puzzle.NTimes(x, 1); got != x {
		t.Error("x.NTimes(1) != x")
	}
	if got, want := puzzle.NTimes(x, -3), puzzle.NTimes(x.Invert(), 3); got != want {
		t.Error("x.NTimes(-3) != x.Invert().NTimes(3)")
	}
}

// hasOrder checks that a permutation's order is exactly the one given.
func hasOrder(t *testing.T, perm CornerPerm, order int) {
	t.Helper()
	p := perm
	for o := 1; o < order; o++ {
		if p.IsIdentity() {
			t.Fatalf("order %d is less than expected %d", o, order)
		}
		p = p.Sequence(perm)
	}
	if !p.IsIdentity() {
		t.Fatalf("order is greater than expected %d", order)
	}
}

func TestQuarterTurnsHaveOrder4(t *testing.T) {
	for _, f := range []Face{Up, Right, Front, Down, Left, Back} {
		t.Run(f.String(), func(t *testing.T) {
			hasOrder(t, CornerMove(f), 4)
		})
	}
}

// commutator returns a b a' b'.
func commutator(a, b CornerPerm) CornerPerm {
	return a.Sequence(b).Sequence(a.Invert()).Sequence(b.Invert())
}

func TestQuarterTurnPairsHaveOrder6(t *testing.T) {
	tests := []struct {
		name string
		a, b Face
	}{
		{"sexy move", Right, Up},
		{"front sledgehammer", Right, Front},
		{"back sexy move", Left, Down},
		{"back sledgehammer", Left, Front},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasOrder(t, commutator(CornerMove(tt.a), CornerMove(tt.b)), 6)
		})
	}
}

func TestOppositeTurnsCommute(t *testing.T) {
	tests := []struct{ a, b Face }{
		{Up, Down},
		{Right, Left},
		{Front, Back},
	}

	for _, tt := range tests {
		t.Run(tt.a.String()+tt.b.String(), func(t *testing.T) {
			a, b := CornerMove(tt.a), CornerMove(tt.b)
			if a.Sequence(b) != b.Sequence(a) {
				t.Errorf("%v and %v do not commute", tt.a, tt.b)
			}
		})
	}
}

func TestCornerPermIsBijection(t *testing.T) {
	for _, f := range []Face{Up, Right, Front, Down, Left, Back} {
		perm := CornerMove(f)
		var seen [CornerCount]bool
		twist := 0
		for _, c := range perm {
			if seen[c.Pos] {
				t.Fatalf("%v: duplicate destination %v", f, c.Pos)
			}
			seen[c.Pos] = true
			twist += int(c.Orient)
		}
		if twist%3 != 0 {
			t.Errorf("%v: twist parity %d, want 0", f, twist%3)
		}
	}
}
