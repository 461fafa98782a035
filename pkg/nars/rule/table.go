package rule

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/narscore/pkg/nars/narserr"
	"github.com/cognicore/narscore/pkg/nars/term"
)

// Rule is one entry of a loaded rule table: one or two premise patterns, a
// conclusion pattern, and the rule's name. A primed name (trailing ')
// marks the inverse variant of the base rule; the base name doubles as the
// key into the TruthFuncs registry.
type Rule struct {
	Name       string
	Inverse    bool
	Premises   []Pattern
	Conclusion Pattern
	TruthFn    string
}

// FiredName is the name a derivation reports: the base name, primed for an
// inverse variant.
func (r Rule) FiredName() string {
	if r.Inverse {
		return r.Name + "'"
	}
	return r.Name
}

var errSkipLine = errors.New("rule table: blank or comment line")

// LoadResource parses a rule-table resource: a YAML document whose dotted
// path keys ("rules.immediate", "rules.nal1") address text blocks of one
// rule per line. Loading is atomic per block: a malformed line fails the
// whole call, never a partial table.
func LoadResource(doc []byte, keys ...string) ([]Rule, error) {
	var root map[string]any
	if err := yaml.Unmarshal(doc, &root); err != nil {
		return nil, fmt.Errorf("rule table: %w", err)
	}

	var rules []Rule
	for _, key := range keys {
		block, err := lookupBlock(root, key)
		if err != nil {
			return nil, err
		}
		parsed, err := LoadTable(block)
		if err != nil {
			return nil, fmt.Errorf("rule table block %q: %w", key, err)
		}
		rules = append(rules, parsed...)
	}
	return rules, nil
}

func lookupBlock(root map[string]any, key string) (string, error) {
	var node any = root
	for _, seg := range strings.Split(key, ".") {
		m, ok := node.(map[string]any)
		if !ok {
			return "", fmt.Errorf("%w: path %q does not address a block", narserr.ErrMalformedRule, key)
		}
		node, ok = m[seg]
		if !ok {
			return "", fmt.Errorf("%w: unknown rule-table key %q", narserr.ErrMalformedRule, key)
		}
	}
	block, ok := node.(string)
	if !ok {
		return "", fmt.Errorf("%w: key %q addresses a non-text node", narserr.ErrMalformedRule, key)
	}
	return block, nil
}

// LoadTable parses one addressed block of rule lines. Lines starting with
// '#' or ' are comments. Two-premise form:
//
//	{P1. P2} |- C .name[']
//
// One-premise form:
//
//	P |- C .name[']
func LoadTable(text string) ([]Rule, error) {
	var rules []Rule
	for lineNo, line := range strings.Split(text, "\n") {
		r, err := parseRuleLine(line)
		if err != nil {
			if errors.Is(err, errSkipLine) {
				continue
			}
			return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
		}
		rules = append(rules, r)
	}
	return rules, nil
}

func parseRuleLine(line string) (Rule, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "'") {
		return Rule{}, errSkipLine
	}

	arrowIdx := strings.Index(line, "|-")
	if arrowIdx < 0 {
		return Rule{}, fmt.Errorf("%w: missing |- in %q", narserr.ErrMalformedRule, line)
	}
	lhs := strings.TrimSpace(line[:arrowIdx])
	rhs := strings.TrimSpace(line[arrowIdx+2:])

	premises, err := parsePremises(lhs)
	if err != nil {
		return Rule{}, err
	}

	conclusionStr, name, inverse, err := splitConclusionName(rhs)
	if err != nil {
		return Rule{}, err
	}
	concl, err := parsePattern(conclusionStr)
	if err != nil {
		return Rule{}, err
	}

	return Rule{
		Name:       name,
		Inverse:    inverse,
		Premises:   premises,
		Conclusion: concl,
		TruthFn:    name,
	}, nil
}

func parsePremises(lhs string) ([]Pattern, error) {
	var parts []string
	if strings.HasPrefix(lhs, "{") {
		end, err := matchingBrace(lhs)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(lhs[end+1:]) != "" {
			return nil, fmt.Errorf("%w: trailing input after premise set in %q", narserr.ErrMalformedRule, lhs)
		}
		for _, p := range splitTopLevel(lhs[1:end], '.') {
			if strings.TrimSpace(p) != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: premise set must hold two premises, got %d in %q", narserr.ErrMalformedRule, len(parts), lhs)
		}
	} else {
		parts = []string{lhs}
	}

	premises := make([]Pattern, 0, len(parts))
	for _, p := range parts {
		pat, err := parsePattern(p)
		if err != nil {
			return nil, err
		}
		premises = append(premises, pat)
	}
	return premises, nil
}

// splitConclusionName separates "C .name[']" into the conclusion text and
// the rule name, detecting the inverse-variant prime.
func splitConclusionName(rhs string) (conclusion, name string, inverse bool, err error) {
	dotIdx := lastTopLevelDot(rhs)
	if dotIdx < 0 {
		return "", "", false, fmt.Errorf("%w: missing .name in %q", narserr.ErrMalformedRule, rhs)
	}
	conclusion = strings.TrimSpace(rhs[:dotIdx])
	name = strings.TrimSpace(rhs[dotIdx+1:])
	if strings.HasSuffix(name, "'") {
		inverse = true
		name = strings.TrimSuffix(name, "'")
	}
	if name == "" || conclusion == "" {
		return "", "", false, fmt.Errorf("%w: empty conclusion or name in %q", narserr.ErrMalformedRule, rhs)
	}
	return conclusion, name, inverse, nil
}

func lastTopLevelDot(s string) int {
	depth := 0
	last := -1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<', '(':
			depth++
		case '>', ')':
			depth--
		case '.':
			if depth == 0 {
				last = i
			}
		}
	}
	return last
}

func matchingBrace(s string) (int, error) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: unbalanced braces in %q", narserr.ErrMalformedRule, s)
}

func parsePattern(s string) (Pattern, error) {
	p, rest, err := parsePatternTok(s)
	if err != nil {
		return Pattern{}, err
	}
	if strings.TrimSpace(rest) != "" {
		return Pattern{}, fmt.Errorf("%w: trailing input %q after pattern", narserr.ErrMalformedRule, rest)
	}
	return p, nil
}

func parsePatternTok(s string) (Pattern, string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Pattern{}, "", fmt.Errorf("%w: empty pattern", narserr.ErrMalformedRule)
	}
	switch {
	case s[0] == '<':
		return parseStatementPattern(s)
	case strings.HasPrefix(s, "(--,"):
		return parseNegationPattern(s)
	default:
		return parseLeafPattern(s)
	}
}

// parseLeafPattern classifies a bare token: an identifier whose first
// character after an optional '?' or '$' prefix is uppercase is a pattern
// variable; anything else is a literal atom.
func parseLeafPattern(s string) (Pattern, string, error) {
	i := 0
	for i < len(s) && !isPatternDelimiter(s[i]) {
		i++
	}
	rest := s[i:]
	name := s[:i]
	if name == "" {
		return Pattern{}, "", fmt.Errorf("%w: expected term in %q", narserr.ErrMalformedRule, s)
	}
	if isVariableToken(name) {
		return Variable(name), rest, nil
	}
	return Atom(name), rest, nil
}

func isVariableToken(tok string) bool {
	rest := tok
	if rest[0] == '?' || rest[0] == '$' {
		rest = rest[1:]
	}
	if rest == "" || rest[0] < 'A' || rest[0] > 'Z' {
		return false
	}
	for i := 1; i < len(rest); i++ {
		c := rest[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '_':
		default:
			return false
		}
	}
	return true
}

func isPatternDelimiter(c byte) bool {
	switch c {
	case ' ', '<', '>', '(', ')', ',', '.':
		return true
	}
	return false
}

func parseStatementPattern(s string) (Pattern, string, error) {
	end, err := matchingBracket(s, 0, '<', '>')
	if err != nil {
		return Pattern{}, "", err
	}
	inner := s[1:end]
	rest := s[end+1:]

	toks := tokenizeTopLevel(inner)
	if len(toks) != 3 {
		return Pattern{}, "", fmt.Errorf("%w: expected subject copula predicate, got %q", narserr.ErrMalformedRule, inner)
	}
	subj, _, err := parsePatternTok(toks[0])
	if err != nil {
		return Pattern{}, "", err
	}
	cop, ok := term.CopulaFromSymbol(toks[1])
	if !ok {
		return Pattern{}, "", fmt.Errorf("%w: unknown copula %q", narserr.ErrMalformedRule, toks[1])
	}
	pred, _, err := parsePatternTok(toks[2])
	if err != nil {
		return Pattern{}, "", err
	}
	return Statement(subj, cop, pred), rest, nil
}

func parseNegationPattern(s string) (Pattern, string, error) {
	end, err := matchingBracket(s, 0, '(', ')')
	if err != nil {
		return Pattern{}, "", err
	}
	inner := s[4:end]
	rest := s[end+1:]
	p, _, err := parsePatternTok(inner)
	if err != nil {
		return Pattern{}, "", err
	}
	return Negation(p), rest, nil
}

func matchingBracket(s string, start int, open, close byte) (int, error) {
	if s[start] != open {
		return 0, fmt.Errorf("%w: expected %q at position %d in %q", narserr.ErrMalformedRule, open, start, s)
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
	return 0, fmt.Errorf("%w: unbalanced %q in %q", narserr.ErrMalformedRule, open, s)
}

// tokenizeTopLevel splits on runs of spaces outside <...> and (...) nesting.
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
		case '<', '(':
			depth++
			cur.WriteByte(c)
		case '>', ')':
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

// splitTopLevel splits s on sep, ignoring occurrences nested inside <...>
// or (...).
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<', '(':
			depth++
		case '>', ')':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}
