package narsese

import (
	"fmt"
	"strings"

	"github.com/cognicore/narscore/pkg/nars/narserr"
	"github.com/cognicore/narscore/pkg/nars/term"
)

// parseTermTok parses one term expression from the front of s, returning
// the parsed Term and whatever trailing input follows it.
func parseTermTok(s string) (term.Term, string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return term.Term{}, "", fmt.Errorf("%w: empty term", narserr.ErrParseFailure)
	}
	switch s[0] {
	case '<':
		return parseStatement(s)
	case '(':
		return parseParenCompound(s)
	case '{':
		return parseBracketedSet(s, '{', '}', term.ConnExtensionalSet)
	case '[':
		return parseBracketedSet(s, '[', ']', term.ConnIntensionalSet)
	case '$':
		return parseVariable(s, term.VarIndependent)
	case '#':
		return parseVariable(s, term.VarDependent)
	case '?':
		return parseVariable(s, term.VarQuery)
	default:
		return parseAtom(s)
	}
}

func parseAtom(s string) (term.Term, string, error) {
	i := 0
	for i < len(s) && !isDelimiter(s[i]) {
		i++
	}
	if i == 0 {
		return term.Term{}, "", fmt.Errorf("%w: expected atom in %q", narserr.ErrParseFailure, s)
	}
	return term.Atom(s[:i]), s[i:], nil
}

func parseVariable(s string, vk term.VarKind) (term.Term, string, error) {
	i := 1
	for i < len(s) && !isDelimiter(s[i]) {
		i++
	}
	if i == 1 {
		return term.Term{}, "", fmt.Errorf("%w: expected variable name in %q", narserr.ErrParseFailure, s)
	}
	return term.Variable(vk, s[1:i]), s[i:], nil
}

func parseStatement(s string) (term.Term, string, error) {
	end, err := matchingBracket(s, 0, '<', '>')
	if err != nil {
		return term.Term{}, "", err
	}
	inner := s[1:end]
	rest := s[end+1:]

	toks := tokenizeTopLevel(inner)
	if len(toks) != 3 {
		return term.Term{}, "", fmt.Errorf("%w: expected subject copula predicate, got %q", narserr.ErrParseFailure, inner)
	}
	subj, err := parseWholeTerm(toks[0])
	if err != nil {
		return term.Term{}, "", err
	}
	cop, ok := term.CopulaFromSymbol(toks[1])
	if !ok {
		return term.Term{}, "", fmt.Errorf("%w: unknown copula %q", narserr.ErrParseFailure, toks[1])
	}
	pred, err := parseWholeTerm(toks[2])
	if err != nil {
		return term.Term{}, "", err
	}
	return term.Statement(subj, cop, pred), rest, nil
}

func parseParenCompound(s string) (term.Term, string, error) {
	end, err := matchingBracket(s, 0, '(', ')')
	if err != nil {
		return term.Term{}, "", err
	}
	inner := s[1:end]
	rest := s[end+1:]

	if strings.HasPrefix(inner, "--,") {
		child, err := parseWholeTerm(inner[3:])
		if err != nil {
			return term.Term{}, "", err
		}
		return term.Compound(term.ConnNegation, child), rest, nil
	}

	parts := splitTopLevel(inner, ',')
	if len(parts) < 2 {
		return term.Term{}, "", fmt.Errorf("%w: expected connector and operands in %q", narserr.ErrParseFailure, inner)
	}
	connSym := strings.TrimSpace(parts[0])
	conn, ok := term.ConnectorFromSymbol(connSym)
	if !ok {
		return term.Term{}, "", fmt.Errorf("%w: unknown connector %q", narserr.ErrParseFailure, connSym)
	}

	var children []term.Term
	for _, p := range parts[1:] {
		child, err := parseWholeTerm(p)
		if err != nil {
			return term.Term{}, "", err
		}
		children = append(children, child)
	}
	if !conn.ValidArity(len(children)) {
		return term.Term{}, "", fmt.Errorf("%w: connector %q got %d operands", narserr.ErrParseFailure, connSym, len(children))
	}
	return term.Compound(conn, children...), rest, nil
}

func parseBracketedSet(s string, open, close byte, conn term.Connector) (term.Term, string, error) {
	end, err := matchingBracket(s, 0, open, close)
	if err != nil {
		return term.Term{}, "", err
	}
	inner := s[1:end]
	rest := s[end+1:]

	var children []term.Term
	for _, p := range splitTopLevel(inner, ',') {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		child, err := parseWholeTerm(p)
		if err != nil {
			return term.Term{}, "", err
		}
		children = append(children, child)
	}
	if len(children) == 0 {
		return term.Term{}, "", fmt.Errorf("%w: empty set %q", narserr.ErrParseFailure, s)
	}
	return term.Compound(conn, children...), rest, nil
}

// parseWholeTerm parses s expecting it to be fully consumed by a single
// term expression (used whenever a sub-position has already been isolated
// by tokenizeTopLevel/splitTopLevel).
func parseWholeTerm(s string) (term.Term, error) {
	s = strings.TrimSpace(s)
	t, rest, err := parseTermTok(s)
	if err != nil {
		return term.Term{}, err
	}
	if strings.TrimSpace(rest) != "" {
		return term.Term{}, fmt.Errorf("%w: trailing input %q", narserr.ErrParseFailure, rest)
	}
	return t, nil
}
