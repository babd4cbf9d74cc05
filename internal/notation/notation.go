// Package notation parses and prints move sequences in face-turn notation.
//
// A move is Face [Count] ['], where Count is a positive decimal integer
// (default 1) and the apostrophe inverts. Moves are separated by
// whitespace. Printing omits the count when |count| == 1 and appends the
// apostrophe for negative counts.
package notation

import (
	"strconv"
	"strings"

	"github.com/ehrlich-b/twisted/internal/puzzle"
)

// Prim is a primitive face move of some puzzle's notation.
type Prim[P puzzle.Perm[P]] interface {
	comparable
	Perm() P
	String() string
}

// Move is a primitive with a signed repetition count: count 2 is a half
// turn, count -1 an inverse quarter turn.
type Move[P puzzle.Perm[P], M Prim[P]] struct {
	Prim  M
	Count int
}

// Basic returns prim applied once.
func Basic[P puzzle.Perm[P], M Prim[P]](prim M) Move[P, M] {
	return Move[P, M]{Prim: prim, Count: 1}
}

// NTimes returns prim applied n times.
func NTimes[P puzzle.Perm[P], M Prim[P]](prim M, n int) Move[P, M] {
	return Move[P, M]{Prim: prim, Count: n}
}

// Inverse returns the inverse of prim.
func Inverse[P puzzle.Perm[P], M Prim[P]](prim M) Move[P, M] {
	return Move[P, M]{Prim: prim, Count: -1}
}

// Perm returns the permutation this move applies.
func (m Move[P, M]) Perm() P {
	return puzzle.NTimes(m.Prim.Perm(), m.Count)
}

func (m Move[P, M]) String() string {
	var sb strings.Builder
	sb.WriteString(m.Prim.String())

	abs := m.Count
	if abs < 0 {
		abs = -abs
	}
	if abs != 1 {
		sb.WriteString(strconv.Itoa(abs))
	}
	if m.Count < 0 {
		sb.WriteByte('\'')
	}
	return sb.String()
}

// Sequence is an ordered list of notation moves.
type Sequence[P puzzle.Perm[P], M Prim[P]] []Move[P, M]

// Perm folds the sequence into a single permutation, applying moves in
// order.
func (s Sequence[P, M]) Perm() P {
	var zero P
	perm := zero.Identity()
	for _, m := range s {
		perm = perm.Sequence(m.Perm())
	}
	return perm
}

func (s Sequence[P, M]) String() string {
	var sb strings.Builder
	for i, m := range s {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(m.String())
	}
	return sb.String()
}
