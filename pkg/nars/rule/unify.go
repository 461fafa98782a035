package rule

import "github.com/cognicore/narscore/pkg/nars/term"

// Bindings maps a pattern variable's name to the ground Term it has been
// matched against within one derivation attempt.
type Bindings map[string]term.Term

// Match attempts to unify pattern against the ground term t under the
// given bindings, returning an extended binding set on success. A variable
// already bound is checked for consistency (t is ground, so no occurs-check
// arises): the new candidate must be
// structurally identical (by canonical name) to what it was already bound
// to, otherwise the match fails rather than silently rebinding — this is
// what keeps a shared variable across a rule's two premises consistent.
func Match(p Pattern, t term.Term, b Bindings) (Bindings, bool) {
	switch p.kind {
	case KindAtom:
		if t.Kind() == term.KindAtom && t.Name() == p.name {
			return b, true
		}
		return nil, false

	case KindVariable:
		if existing, ok := b[p.name]; ok {
			if existing.Equal(t) {
				return b, true
			}
			return nil, false
		}
		nb := cloneBindings(b)
		nb[p.name] = t
		return nb, true

	case KindStatement:
		if t.Kind() != term.KindStatement || t.Copula() != p.copula {
			return nil, false
		}
		nb, ok := Match(*p.subject, t.Subject(), b)
		if !ok {
			return nil, false
		}
		return Match(*p.predicate, t.Predicate(), nb)

	case KindNegation:
		if t.Kind() != term.KindCompound || t.Connector() != term.ConnNegation || len(t.Components()) != 1 {
			return nil, false
		}
		return Match(*p.inner, t.Components()[0], b)

	default:
		return nil, false
	}
}

func cloneBindings(b Bindings) Bindings {
	nb := make(Bindings, len(b)+1)
	for k, v := range b {
		nb[k] = v
	}
	return nb
}

// Instantiate substitutes bound variables into pattern, building a concrete
// Term. It fails if pattern references a variable absent from bindings.
func Instantiate(p Pattern, b Bindings) (term.Term, bool) {
	switch p.kind {
	case KindAtom:
		return term.Atom(p.name), true

	case KindVariable:
		t, ok := b[p.name]
		return t, ok

	case KindStatement:
		s, ok := Instantiate(*p.subject, b)
		if !ok {
			return term.Term{}, false
		}
		pr, ok := Instantiate(*p.predicate, b)
		if !ok {
			return term.Term{}, false
		}
		return term.Statement(s, p.copula, pr), true

	case KindNegation:
		in, ok := Instantiate(*p.inner, b)
		if !ok {
			return term.Term{}, false
		}
		return term.Compound(term.ConnNegation, in), true

	default:
		return term.Term{}, false
	}
}
