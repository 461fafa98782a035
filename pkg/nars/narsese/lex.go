package narsese

import (
	"fmt"
	"strings"

	"github.com/cognicore/narscore/pkg/nars/narserr"
)

func isDelimiter(r byte) bool {
	switch r {
	case ' ', '<', '>', '(', ')', '{', '}', '[', ']', ',', '.', '?', '!', ':':
		return true
	}
	return false
}

func matchingBracket(s string, start int, open, close byte) (int, error) {
	if s[start] != open {
		return 0, fmt.Errorf("%w: expected %q at position %d in %q", narserr.ErrParseFailure, open, start, s)
	}
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: unbalanced %q in %q", narserr.ErrParseFailure, open, s)
}

// tokenizeTopLevel splits on runs of spaces outside any <>/()/{}/[] nesting.
func tokenizeTopLevel(s string) []string {
	var toks []string
	depth := 0
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			toks = append(toks, cur.String())
			cur.Reset()
		}
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '<', '(', '{', '[':
			depth++
			cur.WriteByte(c)
		case '>', ')', '}', ']':
			depth--
			cur.WriteByte(c)
		case ' ':
			if depth == 0 {
				flush()
			} else {
				cur.WriteByte(c)
			}
		default:
			cur.WriteByte(c)
		}
	}
	flush()
	return toks
}

// splitTopLevel splits s on sep, ignoring occurrences nested inside
// <>/()/{}/[] .
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<', '(', '{', '[':
			depth++
		case '>', ')', '}', ']':
			depth--
		default:
			if s[i] == sep && depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}
