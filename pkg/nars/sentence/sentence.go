// Package sentence implements the Judgment/Question sentence wrapper and
// the Task that carries a sentence through the reasoner with a budget and
// (for questions) a best-solution slot (spec.md §3).
package sentence

import (
	"fmt"

	"github.com/cognicore/narscore/pkg/nars/budget"
	"github.com/cognicore/narscore/pkg/nars/stamp"
	"github.com/cognicore/narscore/pkg/nars/term"
	"github.com/cognicore/narscore/pkg/nars/truth"
)

// Punctuation identifies the sentence kind.
type Punctuation int

const (
	Judgment Punctuation = iota
	Question
	Goal
)

func (p Punctuation) String() string {
	switch p {
	case Judgment:
		return "."
	case Question:
		return "?"
	case Goal:
		return "!"
	default:
		return ""
	}
}

// Sentence is a term paired with a punctuation, an optional truth value
// (present for judgments, absent for questions), and a stamp.
type Sentence struct {
	Term        term.Term
	Punctuation Punctuation
	Truth       *truth.Truth
	Stamp       stamp.Stamp
}

// NewJudgment constructs a judgment sentence.
func NewJudgment(t term.Term, tr truth.Truth, st stamp.Stamp) Sentence {
	return Sentence{Term: t, Punctuation: Judgment, Truth: &tr, Stamp: st}
}

// NewQuestion constructs a question sentence.
func NewQuestion(t term.Term, st stamp.Stamp) Sentence {
	return Sentence{Term: t, Punctuation: Question, Stamp: st}
}

// NewGoal constructs a goal sentence.
func NewGoal(t term.Term, tr truth.Truth, st stamp.Stamp) Sentence {
	return Sentence{Term: t, Punctuation: Goal, Truth: &tr, Stamp: st}
}

// String is the printable form used as the owning Task's key.
func (s Sentence) String() string {
	if s.Truth != nil {
		return fmt.Sprintf("%s%s %%%.2f;%.2f%%", s.Term.Name(), s.Punctuation, s.Truth.Frequency.Float64(), s.Truth.Confidence.Float64())
	}
	return s.Term.Name() + s.Punctuation.String()
}

// Revisable reports whether two belief candidates may be combined by
// revision (spec.md §3): the copula is inheritance or equivalence, or the
// term carries no dependent variable.
func (s Sentence) Revisable() bool {
	if s.Punctuation != Judgment {
		return false
	}
	if s.Term.Kind() == term.KindStatement {
		switch s.Term.Copula() {
		case term.CopInheritance, term.CopEquivalence:
			return true
		}
	}
	return !s.Term.HasDependentVar()
}

// TaskType distinguishes externally input tasks from reasoner-derived ones.
type TaskType int

const (
	Input TaskType = iota
	Derived
)

// Task wraps a Sentence with its attention Budget, provenance, and (for
// questions) a best-solution slot populated by Memory.trySolution.
type Task struct {
	Sentence     Sentence
	Budget       budget.Budget
	Type         TaskType
	BestSolution *Sentence
	Achievement  float64
}

// New constructs a Task.
func New(s Sentence, b budget.Budget, tp TaskType) *Task {
	return &Task{Sentence: s, Budget: b, Type: tp}
}

// Key is the Task's identity: the sentence's printable form (spec.md §3).
func (t *Task) Key() string { return t.Sentence.String() }
