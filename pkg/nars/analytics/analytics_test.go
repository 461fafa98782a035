package analytics

import (
	"testing"

	"github.com/cognicore/narscore/pkg/nars/budget"
	"github.com/cognicore/narscore/pkg/nars/memory"
	"github.com/cognicore/narscore/pkg/nars/sentence"
	"github.com/cognicore/narscore/pkg/nars/shortfloat"
	"github.com/cognicore/narscore/pkg/nars/stamp"
	"github.com/cognicore/narscore/pkg/nars/term"
	"github.com/cognicore/narscore/pkg/nars/truth"
)

func TestReportSummarizesConceptBag(t *testing.T) {
	ctx := stamp.NewContextSeeded(1)
	m := memory.New(memory.DefaultConfig())

	bird := term.Atom("bird")
	animal := term.Atom("animal")
	birdIsAnimal := term.Statement(bird, term.CopInheritance, animal)
	tr := truth.New(shortfloat.MustNew(0.9), shortfloat.MustNew(0.9))
	st := ctx.New(0, stamp.Eternal, stamp.TenseEternal)
	b := budget.New(shortfloat.MustNew(0.8), shortfloat.MustNew(0.8), shortfloat.MustNew(0.8))

	m.InputTask(sentence.New(sentence.NewJudgment(birdIsAnimal, tr, st), b, sentence.Input))
	m.ProcessNewTasks(0)

	snap := Report(m)
	if snap.ConceptCount == 0 {
		t.Fatalf("expected at least one concept in the report")
	}
	if snap.TotalBeliefs == 0 {
		t.Fatalf("expected at least one belief counted")
	}
	if len(snap.TopConceptsByMass) == 0 {
		t.Fatalf("expected a ranked concept list")
	}
}

func TestReportOnEmptyMemory(t *testing.T) {
	m := memory.New(memory.DefaultConfig())
	snap := Report(m)
	if snap.ConceptCount != 0 {
		t.Fatalf("expected an empty report, got %+v", snap)
	}
	if snap.AverageBudget != 0 {
		t.Fatalf("expected zero average budget on an empty memory")
	}
}
