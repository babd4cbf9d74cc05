package notation

import (
	"fmt"
	"strings"

	"github.com/ehrlich-b/twisted/internal/puzzle"
)

// ParseSequence parses whitespace-separated moves. prims lists the
// puzzle's primitive moves; identifiers are matched against their String
// forms. Any ill-formed move fails the whole parse.
func ParseSequence[P puzzle.Perm[P], M Prim[P]](s string, prims []M) (Sequence[P, M], error) {
	fields := strings.Fields(s)
	seq := make(Sequence[P, M], 0, len(fields))
	for _, f := range fields {
		m, err := ParseMove[P](f, prims)
		if err != nil {
			return nil, err
		}
		seq = append(seq, m)
	}
	return seq, nil
}

// ParseMove parses a single move with no surrounding whitespace.
func ParseMove[P puzzle.Perm[P], M Prim[P]](s string, prims []M) (Move[P, M], error) {
	var zero Move[P, M]

	prim, rest, err := parsePrim(s, prims)
	if err != nil {
		return zero, err
	}

	count, rest, err := parseCount(rest)
	if err != nil {
		return zero, fmt.Errorf("move %q: %w", s, err)
	}
	if rest != "" {
		return zero, fmt.Errorf("move %q: trailing input %q", s, rest)
	}

	return NTimes[P](prim, count), nil
}

func parsePrim[P puzzle.Perm[P], M Prim[P]](s string, prims []M) (M, string, error) {
	alpha := len(s)
	for i := 0; i < len(s); i++ {
		if !isAlpha(s[i]) {
			alpha = i
			break
		}
	}
	ident, rest := s[:alpha], s[alpha:]

	for _, p := range prims {
		if p.String() == ident {
			return p, rest, nil
		}
	}
	var zero M
	return zero, "", fmt.Errorf("unknown move %q", s)
}

// parseCount reads an optional positive decimal count followed by an
// optional inverting apostrophe. A count of zero is an error.
func parseCount(s string) (int, string, error) {
	n, digits := 0, 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		n = n*10 + int(s[digits]-'0')
		digits++
	}
	if digits == 0 {
		n = 1
	} else if n == 0 {
		return 0, "", fmt.Errorf("count must be positive")
	}
	s = s[digits:]

	if strings.HasPrefix(s, "'") {
		return -n, s[1:], nil
	}
	return n, s, nil
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
