package concept

import (
	"testing"

	"github.com/cognicore/narscore/pkg/nars/budget"
	"github.com/cognicore/narscore/pkg/nars/sentence"
	"github.com/cognicore/narscore/pkg/nars/shortfloat"
	"github.com/cognicore/narscore/pkg/nars/stamp"
	"github.com/cognicore/narscore/pkg/nars/term"
	"github.com/cognicore/narscore/pkg/nars/truth"
)

func newBudget() budget.Budget {
	return budget.New(shortfloat.MustNew(0.5), shortfloat.MustNew(0.5), shortfloat.MustNew(0.5))
}

func TestProcessJudgmentEvictsLowestQuality(t *testing.T) {
	bird := term.Atom("bird")
	c := New(bird, newBudget(), Limits{MaxBeliefs: 2, MaxQuestions: 5, MaxGoals: 5, TaskLinkCapacity: 10, TermLinkCapacity: 10})
	ctx := stamp.NewContextSeeded(1)

	low := sentence.NewJudgment(bird, truth.New(shortfloat.MustNew(0.5), shortfloat.MustNew(0.1)), ctx.New(0, stamp.Eternal, stamp.TenseEternal))
	mid := sentence.NewJudgment(bird, truth.New(shortfloat.MustNew(0.8), shortfloat.MustNew(0.5)), ctx.New(0, stamp.Eternal, stamp.TenseEternal))
	high := sentence.NewJudgment(bird, truth.New(shortfloat.MustNew(0.9), shortfloat.MustNew(0.9)), ctx.New(0, stamp.Eternal, stamp.TenseEternal))

	c.ProcessJudgment(low)
	c.ProcessJudgment(mid)
	c.ProcessJudgment(high)

	if len(c.Beliefs) != 2 {
		t.Fatalf("expected belief table bounded to 2, got %d", len(c.Beliefs))
	}
	for _, b := range c.Beliefs {
		if b.Truth.Confidence == shortfloat.MustNew(0.1) {
			t.Fatalf("expected lowest-quality belief evicted")
		}
	}
}

func TestSelectCandidateSkipsOverlappingStamps(t *testing.T) {
	bird := term.Atom("bird")
	c := New(bird, newBudget(), DefaultLimits())
	ctx := stamp.NewContextSeeded(1)

	s1 := ctx.New(0, stamp.Eternal, stamp.TenseEternal)
	existing := sentence.NewJudgment(bird, truth.New(shortfloat.MustNew(0.8), shortfloat.MustNew(0.8)), s1)
	c.ProcessJudgment(existing)

	// incoming derived from the same evidence via revision shares s1's entry.
	overlapping := sentence.NewJudgment(bird, truth.New(shortfloat.MustNew(0.7), shortfloat.MustNew(0.7)),
		stamp.Revision(s1, ctx.New(0, stamp.Eternal, stamp.TenseEternal), 1, "", false, 0))

	_, ok := c.SelectCandidate(overlapping)
	if ok {
		t.Fatalf("expected no candidate when stamps overlap")
	}
}

func TestSelectCandidateFindsNonOverlapping(t *testing.T) {
	bird := term.Atom("bird")
	c := New(bird, newBudget(), DefaultLimits())
	ctx := stamp.NewContextSeeded(1)

	existing := sentence.NewJudgment(bird, truth.New(shortfloat.MustNew(0.8), shortfloat.MustNew(0.8)), ctx.New(0, stamp.Eternal, stamp.TenseEternal))
	c.ProcessJudgment(existing)

	incoming := sentence.NewJudgment(bird, truth.New(shortfloat.MustNew(0.6), shortfloat.MustNew(0.6)), ctx.New(0, stamp.Eternal, stamp.TenseEternal))
	candidate, ok := c.SelectCandidate(incoming)
	if !ok {
		t.Fatalf("expected a non-overlapping candidate")
	}
	if !candidate.Term.Equal(bird) {
		t.Fatalf("expected candidate term to be bird")
	}
}

func TestLocalRevisionProducesHigherConfidence(t *testing.T) {
	bird := term.Atom("bird")
	c := New(bird, newBudget(), DefaultLimits())
	ctx := stamp.NewContextSeeded(1)

	existing := sentence.NewJudgment(bird, truth.New(shortfloat.MustNew(0.8), shortfloat.MustNew(0.8)), ctx.New(0, stamp.Eternal, stamp.TenseEternal))
	c.ProcessJudgment(existing)

	incoming := sentence.NewJudgment(bird, truth.New(shortfloat.MustNew(0.9), shortfloat.MustNew(0.9)), ctx.New(0, stamp.Eternal, stamp.TenseEternal))
	revised, ok := c.LocalRevision(incoming, 2)
	if !ok {
		t.Fatalf("expected revision to succeed")
	}
	if revised.Truth.Confidence.Float64() <= existing.Truth.Confidence.Float64() {
		t.Fatalf("expected revision to raise confidence, got %v", revised.Truth.Confidence)
	}
}

func TestAddQuestionBoundedFIFO(t *testing.T) {
	bird := term.Atom("bird")
	c := New(bird, newBudget(), Limits{MaxBeliefs: 5, MaxQuestions: 2, MaxGoals: 5, TaskLinkCapacity: 10, TermLinkCapacity: 10})
	ctx := stamp.NewContextSeeded(1)

	for i := 0; i < 3; i++ {
		q := sentence.NewQuestion(bird, ctx.New(0, stamp.Eternal, stamp.TenseEternal))
		c.AddQuestion(sentence.New(q, newBudget(), sentence.Input))
	}
	if len(c.Questions) != 2 {
		t.Fatalf("expected question table bounded to 2, got %d", len(c.Questions))
	}
}

func TestProcessJudgmentDropsDuplicateEvidence(t *testing.T) {
	bird := term.Atom("bird")
	c := New(bird, newBudget(), DefaultLimits())
	ctx := stamp.NewContextSeeded(1)

	st := ctx.New(0, stamp.Eternal, stamp.TenseEternal)
	j := sentence.NewJudgment(bird, truth.New(shortfloat.MustNew(0.8), shortfloat.MustNew(0.8)), st)

	c.ProcessJudgment(j)
	c.ProcessJudgment(j)
	if len(c.Beliefs) != 1 {
		t.Fatalf("expected the duplicate to be dropped, got %d beliefs", len(c.Beliefs))
	}
}

func TestSelectCandidateRespectsOccurrenceWindow(t *testing.T) {
	bird := term.Atom("bird")
	c := New(bird, newBudget(), DefaultLimits())
	ctx := stamp.NewContextSeeded(1)

	old := sentence.NewJudgment(bird, truth.New(shortfloat.MustNew(0.8), shortfloat.MustNew(0.8)),
		ctx.New(0, 0, stamp.TensePresent))
	c.ProcessJudgment(old)

	farAway := sentence.NewJudgment(bird, truth.New(shortfloat.MustNew(0.6), shortfloat.MustNew(0.6)),
		ctx.New(0, RevisionMaxOccurrenceDistance+5, stamp.TensePresent))
	if _, ok := c.SelectCandidate(farAway); ok {
		t.Fatalf("expected no candidate outside the revision occurrence window")
	}

	nearby := sentence.NewJudgment(bird, truth.New(shortfloat.MustNew(0.6), shortfloat.MustNew(0.6)),
		ctx.New(0, RevisionMaxOccurrenceDistance-1, stamp.TensePresent))
	if _, ok := c.SelectCandidate(nearby); !ok {
		t.Fatalf("expected a candidate inside the revision occurrence window")
	}
}
