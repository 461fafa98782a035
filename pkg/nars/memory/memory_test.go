package memory

import (
	"testing"

	"github.com/cognicore/narscore/pkg/nars/budget"
	"github.com/cognicore/narscore/pkg/nars/sentence"
	"github.com/cognicore/narscore/pkg/nars/shortfloat"
	"github.com/cognicore/narscore/pkg/nars/stamp"
	"github.com/cognicore/narscore/pkg/nars/term"
	"github.com/cognicore/narscore/pkg/nars/truth"
)

func fullBudget() budget.Budget {
	return budget.New(shortfloat.MustNew(0.8), shortfloat.MustNew(0.8), shortfloat.MustNew(0.8))
}

func judgment(ctx *stamp.Context, t term.Term, f, c float64) sentence.Sentence {
	tr := truth.New(shortfloat.MustNew(f), shortfloat.MustNew(c))
	return sentence.NewJudgment(t, tr, ctx.New(0, stamp.Eternal, stamp.TenseEternal))
}

func TestProcessNewTasksInsertsBeliefAndFansOutLinks(t *testing.T) {
	ctx := stamp.NewContextSeeded(1)
	m := New(DefaultConfig())

	bird := term.Atom("bird")
	animal := term.Atom("animal")
	birdIsAnimal := term.Statement(bird, term.CopInheritance, animal)

	task := sentence.New(judgment(ctx, birdIsAnimal, 0.9, 0.9), fullBudget(), sentence.Input)
	m.InputTask(task)
	m.ProcessNewTasks(0)

	c, ok := m.PeekConcept(birdIsAnimal.Name())
	if !ok {
		t.Fatalf("expected concept for %s", birdIsAnimal)
	}
	best, ok := c.BestBelief()
	if !ok {
		t.Fatalf("expected a belief on file")
	}
	if best.Truth.Frequency.Float64() != 0.9 {
		t.Fatalf("unexpected belief frequency: %v", best.Truth.Frequency.Float64())
	}
	if c.TaskLinks.Size() == 0 {
		t.Fatalf("expected task-links to be created")
	}
}

func TestAnswerQuestionGroundLookup(t *testing.T) {
	ctx := stamp.NewContextSeeded(1)
	m := New(DefaultConfig())

	robin := term.Atom("robin")
	bird := term.Atom("bird")
	robinIsBird := term.Statement(robin, term.CopInheritance, bird)

	m.InputTask(sentence.New(judgment(ctx, robinIsBird, 0.9, 0.9), fullBudget(), sentence.Input))
	m.ProcessNewTasks(0)

	q := sentence.New(sentence.NewQuestion(robinIsBird, ctx.New(1, stamp.Eternal, stamp.TenseEternal)), fullBudget(), sentence.Input)
	m.InputTask(q)
	m.ProcessNewTasks(1)

	if q.BestSolution == nil {
		t.Fatalf("expected the question to be answered")
	}
	if !q.BestSolution.Term.Equal(robinIsBird) {
		t.Fatalf("expected solution term %s, got %s", robinIsBird, q.BestSolution.Term)
	}
}

func TestAnswerQuestionWhQueryTraversal(t *testing.T) {
	ctx := stamp.NewContextSeeded(1)
	m := New(DefaultConfig())

	robin := term.Atom("robin")
	bird := term.Atom("bird")
	robinIsBird := term.Statement(robin, term.CopInheritance, bird)

	m.InputTask(sentence.New(judgment(ctx, robinIsBird, 0.9, 0.9), fullBudget(), sentence.Input))
	m.ProcessNewTasks(0)

	queryVar := term.Variable(term.VarQuery, "what")
	question := term.Statement(robin, term.CopInheritance, queryVar)
	qTask := sentence.New(sentence.NewQuestion(question, ctx.New(1, stamp.Eternal, stamp.TenseEternal)), fullBudget(), sentence.Input)

	home := m.PickOrGenerateConcept(question, fullBudget())
	answered, ok := m.AnswerQuestion(home, qTask)
	m.PutBackConcept(home)
	if !ok {
		t.Fatalf("expected a Wh-question answer")
	}
	if !answered.Term.Equal(robinIsBird) {
		t.Fatalf("expected %s, got %s", robinIsBird, answered.Term)
	}
}

func TestTrySolutionKeepsHigherQuality(t *testing.T) {
	ctx := stamp.NewContextSeeded(1)
	bird := term.Atom("bird")
	animal := term.Atom("animal")
	birdIsAnimal := term.Statement(bird, term.CopInheritance, animal)

	q := sentence.New(sentence.NewQuestion(birdIsAnimal, ctx.New(0, stamp.Eternal, stamp.TenseEternal)), fullBudget(), sentence.Input)

	weak := judgment(ctx, birdIsAnimal, 0.6, 0.5)
	strong := judgment(ctx, birdIsAnimal, 0.95, 0.95)

	if !TrySolution(q, weak) {
		t.Fatalf("expected weak candidate to be adopted as first solution")
	}
	if !TrySolution(q, strong) {
		t.Fatalf("expected stronger candidate to replace weaker one")
	}
	if TrySolution(q, weak) {
		t.Fatalf("weaker candidate should not displace the stronger solution")
	}
	if q.BestSolution.Truth.Frequency.Float64() != 0.95 {
		t.Fatalf("expected the strong solution to remain, got %+v", q.BestSolution.Truth)
	}
}

func TestCycleProducesDerivedTask(t *testing.T) {
	ctx := stamp.NewContextSeeded(1)
	m := New(DefaultConfig())

	robin := term.Atom("robin")
	bird := term.Atom("bird")
	animal := term.Atom("animal")
	robinIsBird := term.Statement(robin, term.CopInheritance, bird)
	birdIsAnimal := term.Statement(bird, term.CopInheritance, animal)

	m.InputTask(sentence.New(judgment(ctx, robinIsBird, 0.9, 0.9), fullBudget(), sentence.Input))
	m.InputTask(sentence.New(judgment(ctx, birdIsAnimal, 0.9, 0.9), fullBudget(), sentence.Input))
	m.ProcessNewTasks(0)

	var derived []*sentence.Task
	for i := 0; i < 50 && len(derived) == 0; i++ {
		derived = m.Cycle(i)
	}
	if len(derived) == 0 {
		t.Fatalf("expected at least one derived task from the working cycle")
	}
}
