// Package rule implements the rule engine's restricted pattern language
// (spec.md §4.8): patterns over {Atom, Variable, Statement, Negation} only,
// deliberately excluding the full compound-connector vocabulary of
// pkg/nars/term, since the rule table's job is syllogistic term
// substitution, not general compound construction. Grounded on the
// teacher's pkg/korel/autotune/rules package, whose proposal/guard/
// confidence pipeline (candidate rule -> structural guard -> accept/reject)
// is the same three-stage shape Match/passesGuards/Derive implement here.
package rule

import "github.com/cognicore/narscore/pkg/nars/term"

// Kind tags a Pattern's variant.
type Kind int

const (
	KindAtom Kind = iota
	KindVariable
	KindStatement
	KindNegation
)

// Pattern is a rule-table term restricted to the four shapes a syllogistic
// rule needs: a literal atom, a pattern variable bound during matching, a
// statement of subject/copula/predicate sub-patterns, or the negation of a
// sub-pattern.
type Pattern struct {
	kind      Kind
	name      string
	subject   *Pattern
	copula    term.Copula
	predicate *Pattern
	inner     *Pattern
}

// Atom constructs a literal-atom pattern, matching only an atom of the
// same name.
func Atom(name string) Pattern { return Pattern{kind: KindAtom, name: name} }

// Variable constructs a pattern variable, matching any term and binding it.
func Variable(name string) Pattern { return Pattern{kind: KindVariable, name: name} }

// Statement constructs a statement pattern.
func Statement(subject Pattern, cop term.Copula, predicate Pattern) Pattern {
	return Pattern{kind: KindStatement, subject: &subject, copula: cop, predicate: &predicate}
}

// Negation constructs the negation of a sub-pattern.
func Negation(inner Pattern) Pattern {
	return Pattern{kind: KindNegation, inner: &inner}
}

func (p Pattern) Kind() Kind          { return p.kind }
func (p Pattern) Name() string        { return p.name }
func (p Pattern) Subject() Pattern    { return *p.subject }
func (p Pattern) Predicate() Pattern  { return *p.predicate }
func (p Pattern) Copula() term.Copula { return p.copula }
func (p Pattern) Inner() Pattern      { return *p.inner }

// String renders the pattern back to its rule-table surface syntax.
func (p Pattern) String() string {
	switch p.kind {
	case KindAtom:
		return p.name
	case KindVariable:
		return p.name
	case KindStatement:
		return "<" + p.subject.String() + " " + p.copula.String() + " " + p.predicate.String() + ">"
	case KindNegation:
		return "(--," + p.inner.String() + ")"
	default:
		return ""
	}
}
