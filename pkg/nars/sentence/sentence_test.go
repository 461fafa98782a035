package sentence

import (
	"testing"

	"github.com/cognicore/narscore/pkg/nars/budget"
	"github.com/cognicore/narscore/pkg/nars/shortfloat"
	"github.com/cognicore/narscore/pkg/nars/stamp"
	"github.com/cognicore/narscore/pkg/nars/term"
	"github.com/cognicore/narscore/pkg/nars/truth"
)

func TestRevisableInheritance(t *testing.T) {
	ctx := stamp.NewContextSeeded(1)
	bird := term.Atom("bird")
	fly := term.Atom("fly")
	s := NewJudgment(term.Statement(bird, term.CopInheritance, fly), truth.New(shortfloat.MustNew(0.9), shortfloat.MustNew(0.9)), ctx.New(0, stamp.Eternal, stamp.TenseEternal))
	if !s.Revisable() {
		t.Fatalf("inheritance judgment should be revisable")
	}
}

func TestQuestionNotRevisable(t *testing.T) {
	ctx := stamp.NewContextSeeded(1)
	q := NewQuestion(term.Atom("bird"), ctx.New(0, stamp.Eternal, stamp.TenseEternal))
	if q.Revisable() {
		t.Fatalf("question should never be revisable")
	}
}

func TestTaskKeyStable(t *testing.T) {
	ctx := stamp.NewContextSeeded(1)
	s := NewJudgment(term.Atom("bird"), truth.New(shortfloat.MustNew(0.9), shortfloat.MustNew(0.9)), ctx.New(0, stamp.Eternal, stamp.TenseEternal))
	b := budget.New(shortfloat.MustNew(0.5), shortfloat.MustNew(0.5), shortfloat.MustNew(0.5))
	task := New(s, b, Input)
	if task.Key() != s.String() {
		t.Fatalf("task key should equal sentence printable form")
	}
}

func TestDependentVariableNotRevisable(t *testing.T) {
	ctx := stamp.NewContextSeeded(1)
	x := term.Variable(term.VarDependent, "x")
	compound := term.Compound(term.ConnConjunction, x, term.Atom("a"))
	s := NewJudgment(compound, truth.New(shortfloat.MustNew(0.9), shortfloat.MustNew(0.9)), ctx.New(0, stamp.Eternal, stamp.TenseEternal))
	if s.Revisable() {
		t.Fatalf("compound with dependent variable should not be revisable")
	}
}
