package cube

import (
	"testing"

	"github.com/ehrlich-b/twisted/internal/coord"
	"github.com/ehrlich-b/twisted/internal/puzzle"
)

// roundTrip checks that coord -> perm -> coord is the identity for every
// coordinate value.
func roundTrip[P puzzle.Perm[P]](t *testing.T, sys coord.System[P]) {
	t.Helper()
	for c := int64(0); c < sys.Count(); c++ {
		if got := sys.FromPerm(sys.ToPerm(c)); got != c {
			t.Fatalf("round trip of %d = %d", c, got)
		}
	}
}

func TestCornerOrientSysRoundTrip(t *testing.T) {
	roundTrip(t, CornerOrientSys)
}

func TestCornerPosSysRoundTrip(t *testing.T) {
	roundTrip(t, CornerPosSys)
}

func TestEdgeOrientSysRoundTrip(t *testing.T) {
	roundTrip(t, EdgeOrientSys)
}

func TestCornerOrientSysParity(t *testing.T) {
	// Every representative must have total twist 0 mod 3
	for c := int64(0); c < CornerOrientSys.Count(); c++ {
		p := CornerOrientSys.ToPerm(c)
		twist := 0
		for _, cubie := range p {
			twist += int(cubie.Orient)
		}
		if twist%3 != 0 {
			t.Fatalf("coord %d: twist parity %d", c, twist%3)
		}
	}
}

func TestEdgeOrientSysParity(t *testing.T) {
	for c := int64(0); c < EdgeOrientSys.Count(); c++ {
		p := EdgeOrientSys.ToPerm(c)
		flips := 0
		for _, cubie := range p {
			flips += int(cubie.Orient)
		}
		if flips%2 != 0 {
			t.Fatalf("coord %d: flip parity %d", c, flips%2)
		}
	}
}

func TestCoordsOfIdentityAreZero(t *testing.T) {
	if got := CornerOrientSys.FromPerm(CornerIdentity()); got != 0 {
		t.Errorf("CornerOrientSys of identity = %d", got)
	}
	if got := CornerPosSys.FromPerm(CornerIdentity()); got != 0 {
		t.Errorf("CornerPosSys of identity = %d", got)
	}
	if got := EdgeOrientSys.FromPerm(EdgeIdentity()); got != 0 {
		t.Errorf("EdgeOrientSys of identity = %d", got)
	}
}

func TestCornerOrientIsCosetInvariant(t *testing.T) {
	// Two permutations with equal coordinates keep equal coordinates
	// after any common move is applied.
	a := CornerMove(Up)
	b := CornerMove(Up).Sequence(CornerMove(Down)) // same orientations, different positions

	if CornerOrientSys.FromPerm(a) != CornerOrientSys.FromPerm(b) {
		t.Fatal("test permutations should share an orientation coordinate")
	}
	for _, f := range []Face{Up, Right, Front, Down, Left, Back} {
		m := CornerMove(f)
		ca := CornerOrientSys.FromPerm(a.Sequence(m))
		cb := CornerOrientSys.FromPerm(b.Sequence(m))
		if ca != cb {
			t.Errorf("%v: coordinates diverged (%d vs %d)", f, ca, cb)
		}
	}
}
