package rule

import (
	"strings"

	"github.com/cognicore/narscore/pkg/nars/term"
	"github.com/cognicore/narscore/pkg/nars/truth"
)

// MaxNegationDepth caps how many nested negations a derived conclusion may
// carry (spec.md §4.8 guard: reject conclusions whose negation depth
// exceeds 1).
const MaxNegationDepth = 1

// Conclusion is one surviving result of a single-shot derivation attempt:
// the explanation record of which rule fired on which premises under which
// substitution, plus the rule-computed truth of the conclusion.
type Conclusion struct {
	Rule     string
	Term     term.Term
	Truth    truth.Truth
	Premises []string
	Bindings Bindings
}

// Derive attempts every rule in table against premiseTerms (in rule-premise
// order) under a fresh binding set, applies the rule's named truth
// function to premiseTruths on a structural match, and returns every
// conclusion surviving the guards (spec.md §4.8): reflexive inheritance is
// rejected, negation nesting is capped at MaxNegationDepth, and the
// "negative" rule refuses premises that are already negations. Each
// (rule, premises) signature fires at most once per call. This is
// single-shot: table is matched once against the given premise snapshot,
// not iterated to a fixpoint.
func Derive(table []Rule, premiseTerms []term.Term, premiseTruths []truth.Truth) []Conclusion {
	fired := make(map[string]struct{})
	var out []Conclusion
	for _, r := range table {
		if len(r.Premises) != len(premiseTerms) {
			continue
		}
		if isNegativeRule(r.Name) && premisesContainNegation(premiseTerms) {
			continue
		}

		b := Bindings{}
		matched := true
		for i, p := range r.Premises {
			nb, ok := Match(p, premiseTerms[i], b)
			if !ok {
				matched = false
				break
			}
			b = nb
		}
		if !matched {
			continue
		}

		sig := signature(r, premiseTerms)
		if _, dup := fired[sig]; dup {
			continue
		}

		concl, ok := Instantiate(r.Conclusion, b)
		if !ok {
			continue
		}
		if !passesGuards(concl) {
			continue
		}
		fired[sig] = struct{}{}

		premises := make([]string, len(premiseTerms))
		for i, pt := range premiseTerms {
			premises[i] = pt.Name()
		}
		out = append(out, Conclusion{
			Rule:     r.FiredName(),
			Term:     concl,
			Truth:    applyTruthFn(r, premiseTruths),
			Premises: premises,
			Bindings: b,
		})
	}
	return out
}

// signature keys the dedup set: the fired rule name plus the premises in
// order. The primed flag is the only forward/reverse distinction made.
func signature(r Rule, premises []term.Term) string {
	var sb strings.Builder
	sb.WriteString(r.FiredName())
	for _, p := range premises {
		sb.WriteByte('|')
		sb.WriteString(p.Name())
	}
	return sb.String()
}

// applyTruthFn looks the rule's truth function up in the registry; a rule
// whose name has no registered function passes the first premise's truth
// through unchanged, so free-form rule extensions still derive evidenced
// judgments.
func applyTruthFn(r Rule, premiseTruths []truth.Truth) truth.Truth {
	if fn, ok := TruthFuncs[r.TruthFn]; ok {
		return fn(premiseTruths...)
	}
	return premiseTruths[0]
}

func passesGuards(concl term.Term) bool {
	if concl.Kind() == term.KindStatement {
		switch concl.Copula() {
		case term.CopInheritance, term.CopSimilarity:
			if concl.Subject().Equal(concl.Predicate()) {
				return false
			}
		}
	}
	return negationDepth(concl) <= MaxNegationDepth
}

func isNegativeRule(name string) bool {
	return name == "negative" || strings.HasPrefix(name, "negative'")
}

func premisesContainNegation(premises []term.Term) bool {
	for _, p := range premises {
		if negationDepth(p) > 0 {
			return true
		}
	}
	return false
}

func negationDepth(t term.Term) int {
	depth := 0
	for t.Kind() == term.KindCompound && t.Connector() == term.ConnNegation && len(t.Components()) == 1 {
		depth++
		t = t.Components()[0]
	}
	return depth
}
