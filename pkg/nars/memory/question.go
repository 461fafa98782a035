package memory

import (
	"math"

	"github.com/cognicore/narscore/pkg/nars/concept"
	"github.com/cognicore/narscore/pkg/nars/sentence"
	"github.com/cognicore/narscore/pkg/nars/shortfloat"
	"github.com/cognicore/narscore/pkg/nars/term"
)

// matchesQuery reports whether candidate structurally matches question,
// treating every ?query variable in question as a wildcard that matches
// any term in the corresponding position (spec.md §4.4 Wh-question
// matching). A ground question (no query variable) degenerates to Equal.
func matchesQuery(question, candidate term.Term) bool {
	if question.Kind() == term.KindVariable && question.VarKind() == term.VarQuery {
		return true
	}
	if question.Kind() != candidate.Kind() {
		return false
	}
	switch question.Kind() {
	case term.KindAtom, term.KindVariable:
		return question.Equal(candidate)
	case term.KindStatement:
		return question.Copula() == candidate.Copula() &&
			matchesQuery(question.Subject(), candidate.Subject()) &&
			matchesQuery(question.Predicate(), candidate.Predicate())
	case term.KindCompound:
		if question.Connector() != candidate.Connector() {
			return false
		}
		qc, cc := question.Components(), candidate.Components()
		if len(qc) != len(cc) {
			return false
		}
		for i := range qc {
			if !matchesQuery(qc[i], cc[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// TrySolution checks whether candidate is a better answer to question than
// whatever is already recorded in question.BestSolution (spec.md §4.3
// trySolution). On adoption it updates question in place and damps the
// question's priority toward 1-quality, so an already well-answered
// question stops competing for attention.
func TrySolution(question *sentence.Task, candidate sentence.Sentence) bool {
	newQuality := solutionQuality(question.Sentence, candidate)
	if newQuality == 0 {
		return false
	}
	if question.BestSolution != nil {
		oldQuality := solutionQuality(question.Sentence, *question.BestSolution)
		if oldQuality >= newQuality {
			return false
		}
	}
	c := candidate
	question.BestSolution = &c
	question.Achievement = newQuality
	question.Budget.Priority = shortfloat.Min(question.Budget.Priority, shortfloat.Clamp(1-newQuality))
	return true
}

// TrySolution is also exposed as a Memory method so callers driving the
// working cycle don't need a separate import for the package-level helper.
func (m *Memory) TrySolution(question *sentence.Task, candidate sentence.Sentence) bool {
	return TrySolution(question, candidate)
}

// solutionQuality implements spec.md §4.3 solution-quality: 0 when the
// candidate carries no truth, or mismatches the question's punctuation
// while still holding a query variable. A yes/no question (no query
// variable) rates candidates by confidence alone; a Wh-question rates by
// expectation discounted by the eighth root of the candidate's complexity,
// so a simpler answer of equal evidence wins.
func solutionQuality(question sentence.Sentence, candidate sentence.Sentence) float64 {
	if candidate.Truth == nil {
		return 0
	}
	if question.Punctuation != candidate.Punctuation && candidate.Term.HasQueryVar() {
		return 0
	}
	if !question.Term.HasQueryVar() {
		return candidate.Truth.Confidence.Float64()
	}
	return candidate.Truth.Expectation() / math.Pow(float64(candidate.Term.Complexity()), 1.0/8)
}

// AnswerQuestion attempts to answer question immediately from the concepts
// already on file (spec.md §4.3): a question with no ?query variable is
// answered from home's own best belief; a Wh-question carrying one or more
// ?query variables follows the bounded processWhQuestion traversal — for
// each non-query subterm of the query, locate its concept, walk that
// concept's task-links to their target concepts, and try every belief of
// each target whose term the query matches. The traversal touches only
// concepts reachable through the query's own subterm links, never the
// whole bag. home is the question's own concept, already picked out of
// the concept bag by the caller (ProcessNewTasks) — passed in rather than
// re-looked-up, since it is not addressable in the bag while the caller
// holds it. Returns the adopted solution, if any.
func (m *Memory) AnswerQuestion(home *concept.Concept, question *sentence.Task) (*sentence.Sentence, bool) {
	qTerm := question.Sentence.Term

	if !qTerm.HasQueryVar() {
		best, ok := home.BestBelief()
		if !ok {
			return nil, false
		}
		if m.TrySolution(question, best) {
			return question.BestSolution, true
		}
		return nil, false
	}

	adopted := false
	for _, sub := range qTerm.Subterms() {
		if sub.Equal(qTerm) || sub.HasQueryVar() {
			continue
		}
		sc, ok := m.PeekConcept(sub.Name())
		if !ok {
			continue
		}
		for _, tlKey := range sc.TaskLinks.Keys() {
			tl, ok := sc.TaskLinks.Peek(tlKey)
			if !ok {
				continue
			}
			target, ok := m.PeekConcept(tl.Task.Sentence.Term.Name())
			if !ok {
				continue
			}
			if !matchesQuery(qTerm, target.Term) {
				continue
			}
			for _, belief := range target.Beliefs {
				if m.TrySolution(question, belief) {
					adopted = true
				}
			}
		}
	}
	if adopted {
		return question.BestSolution, true
	}
	return nil, false
}
