package notation_test

import (
	"testing"

	"github.com/ehrlich-b/twisted/internal/cube"
	"github.com/ehrlich-b/twisted/internal/cube2"
	"github.com/ehrlich-b/twisted/internal/notation"
	"github.com/ehrlich-b/twisted/internal/puzzle"
)

func parse(t *testing.T, s string) cube2.Notation {
	t.Helper()
	seq, err := cube2.ParseNotation(s)
	if err != nil {
		t.Fatalf("ParseNotation(%q): %v", s, err)
	}
	return seq
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		input   string
		want    notation.Move[cube.CornerPerm, cube2.Prim]
		wantErr bool
	}{
		{"U", notation.Basic[cube.CornerPerm](cube2.PrimU), false},
		{"U'", notation.Inverse[cube.CornerPerm](cube2.PrimU), false},
		{"R2", notation.NTimes[cube.CornerPerm](cube2.PrimR, 2), false},
		{"F2'", notation.NTimes[cube.CornerPerm](cube2.PrimF, -2), false},
		{"B12", notation.NTimes[cube.CornerPerm](cube2.PrimB, 12), false},
		{"D", notation.Basic[cube.CornerPerm](cube2.PrimD), false},
		{"L'", notation.Inverse[cube.CornerPerm](cube2.PrimL), false},
		{"", notation.Move[cube.CornerPerm, cube2.Prim]{}, true},   // empty
		{"X", notation.Move[cube.CornerPerm, cube2.Prim]{}, true},  // unknown face
		{"R0", notation.Move[cube.CornerPerm, cube2.Prim]{}, true}, // zero count
		{"U2x", notation.Move[cube.CornerPerm, cube2.Prim]{}, true}, // trailing garbage
		{"U''", notation.Move[cube.CornerPerm, cube2.Prim]{}, true}, // double prime
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := notation.ParseMove[cube.CornerPerm](tt.input, cube2.Prims())
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMove(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseMove(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSequence(t *testing.T) {
	tests := []struct {
		input   string
		wantLen int
		wantErr bool
	}{
		{"", 0, false},
		{"   ", 0, false},
		{"U", 1, false},
		{"U R' F2", 3, false},
		{"  U   R'  ", 2, false},
		{"U X", 0, true}, // one bad move fails the whole parse
		{"U R0", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := cube2.ParseNotation(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && len(got) != tt.wantLen {
				t.Errorf("length = %d, want %d", len(got), tt.wantLen)
			}
		})
	}
}

func TestPrintMove(t *testing.T) {
	tests := []struct {
		move notation.Move[cube.CornerPerm, cube2.Prim]
		want string
	}{
		{notation.Basic[cube.CornerPerm](cube2.PrimU), "U"},
		{notation.Inverse[cube.CornerPerm](cube2.PrimR), "R'"},
		{notation.NTimes[cube.CornerPerm](cube2.PrimF, 2), "F2"},
		{notation.NTimes[cube.CornerPerm](cube2.PrimB, -2), "B2'"},
		{notation.NTimes[cube.CornerPerm](cube2.PrimD, 12), "D12"},
	}

	for _, tt := range tests {
		if got := tt.move.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestPrintParseRoundTrip(t *testing.T) {
	inputs := []string{"U R' F2", "B2' L D12", "U U' U2"}
	for _, s := range inputs {
		seq := parse(t, s)
		if got := seq.String(); got != s {
			t.Errorf("round trip of %q = %q", s, got)
		}
	}
}

func TestSequencePerm(t *testing.T) {
	// U U' cancels; U4 is identity; U2 U2 is identity
	for _, s := range []string{"U U'", "U4", "U2 U2", "R R R R"} {
		seq := parse(t, s)
		if !seq.Perm().IsIdentity() {
			t.Errorf("%q should fold to the identity", s)
		}
	}

	if got, want := parse(t, "U2").Perm(), puzzle.NTimes(cube.CornerMove(cube.Up), 2); got != want {
		t.Error("U2 does not match U twice")
	}
	if got, want := parse(t, "F'").Perm(), cube.CornerMove(cube.Front).Invert(); got != want {
		t.Error("F' does not match the inverse of F")
	}
}

func TestEmptySequence(t *testing.T) {
	seq := parse(t, "")
	if !seq.Perm().IsIdentity() {
		t.Error("empty sequence should fold to the identity")
	}
	if seq.String() != "" {
		t.Errorf("empty sequence prints %q", seq.String())
	}
}
