package reasoner

import "testing"

func TestInputNarseseDefaultsBudgetByPunctuation(t *testing.T) {
	r := NewSeeded(DefaultConfig(), 1)

	judgment, err := r.InputNarsese("<bird --> animal>. %0.9;0.9%")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if judgment.Budget.Priority.Float64() != DefaultJudgmentPriority {
		t.Fatalf("expected default judgment priority, got %v", judgment.Budget.Priority.Float64())
	}

	question, err := r.InputNarsese("<bird --> animal>?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if question.Budget.Priority.Float64() != DefaultQuestionPriority {
		t.Fatalf("expected default question priority, got %v", question.Budget.Priority.Float64())
	}
}

func TestInputNarseseRejectsMalformedLine(t *testing.T) {
	r := NewSeeded(DefaultConfig(), 1)
	if _, err := r.InputNarsese("not narsese at all"); err == nil {
		t.Fatalf("expected a parse error")
	}
}

func TestStepAnswersGroundQuestionAfterJudgment(t *testing.T) {
	r := NewSeeded(DefaultConfig(), 1)

	if _, err := r.InputNarsese("<robin --> bird>. %0.9;0.9%"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r.Step()

	question, err := r.InputNarsese("<robin --> bird>?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r.Step()

	if question.BestSolution == nil {
		t.Fatalf("expected the question to be answered after Step")
	}
	if !question.BestSolution.Term.Equal(question.Sentence.Term) {
		t.Fatalf("expected solution term %s, got %s", question.Sentence.Term, question.BestSolution.Term)
	}
}

func TestRunDerivesSyllogisticConclusion(t *testing.T) {
	r := NewSeeded(DefaultConfig(), 1)

	if _, err := r.InputNarsese("<robin --> bird>. %0.9;0.9%"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.InputNarsese("<bird --> animal>. %0.9;0.9%"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	derived := r.Run(50)
	if len(derived) == 0 {
		t.Fatalf("expected at least one derived task across the run")
	}
	found := false
	for _, task := range derived {
		if task.Sentence.Term.Name() == "<robin --> animal>" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the deduction <robin --> animal> among derivations")
	}
	if _, ok := r.Memory.ConceptAt("<robin --> robin>"); ok {
		t.Fatalf("reflexive conclusion leaked into memory")
	}
}

func TestInputNarseseNumericRunsCycles(t *testing.T) {
	r := NewSeeded(DefaultConfig(), 1)
	before := r.Clock.Now()
	task, err := r.InputNarsese("5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task != nil {
		t.Fatalf("expected no task for a numeric line")
	}
	if r.Clock.Now() != before+5 {
		t.Fatalf("expected the clock to advance 5 ticks, got %d", r.Clock.Now()-before)
	}
}

func TestInputNarseseBudgetPrefixOverridesDefaults(t *testing.T) {
	r := NewSeeded(DefaultConfig(), 1)
	task, err := r.InputNarsese("$0.3;0.2;0.1$ <bird --> animal>.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Budget.Priority.Float64() != 0.3 {
		t.Fatalf("expected overridden priority, got %v", task.Budget.Priority.Float64())
	}
	if task.Budget.Durability.Float64() != 0.2 || task.Budget.Quality.Float64() != 0.1 {
		t.Fatalf("expected overridden durability/quality, got %+v", task.Budget)
	}
}

func TestInputNarseseAdvancesClockPerInput(t *testing.T) {
	r := NewSeeded(DefaultConfig(), 1)

	first, err := r.InputNarsese("<robin --> bird>. %0.9;0.9%")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := r.InputNarsese("<bird --> animal>. %0.9;0.9%")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.Clock.Now() != 2 {
		t.Fatalf("expected one tick per completed input, clock at %d", r.Clock.Now())
	}
	if first.Sentence.Stamp.CreationTime == second.Sentence.Stamp.CreationTime {
		t.Fatalf("expected distinct creation times, both at %d", first.Sentence.Stamp.CreationTime)
	}

	before := r.Clock.Now()
	if _, err := r.InputNarsese("not narsese at all"); err == nil {
		t.Fatalf("expected a parse error")
	}
	if r.Clock.Now() != before {
		t.Fatalf("rejected input must not consume a tick")
	}
}
