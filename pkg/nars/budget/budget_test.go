package budget

import (
	"testing"

	"github.com/cognicore/narscore/pkg/nars/shortfloat"
	"github.com/cognicore/narscore/pkg/nars/truth"
)

func TestSummary(t *testing.T) {
	b := New(shortfloat.MustNew(0.8), shortfloat.MustNew(0.5), shortfloat.MustNew(0.9))
	s := b.Summary()
	want := 0.5 * (0.8 + 0.9) / 2
	if shortfloat.Value(want) != s {
		// allow fixed-point rounding
		if absF(s.Float64()-want) > 1e-4 {
			t.Fatalf("expected %v got %v", want, s)
		}
	}
}

func TestAboveThreshold(t *testing.T) {
	low := New(shortfloat.MustNew(0), shortfloat.MustNew(0), shortfloat.MustNew(0))
	if low.AboveThreshold() {
		t.Fatalf("all-zero budget should not be above threshold")
	}
	high := New(shortfloat.MustNew(0.5), shortfloat.MustNew(0.5), shortfloat.MustNew(0.5))
	if !high.AboveThreshold() {
		t.Fatalf("0.5/0.5/0.5 budget should be above threshold")
	}
}

func TestForgetNoOpBelowThreshold(t *testing.T) {
	// quality 0.3 -> q* = 0.09; priority 0.1 gives |diff| = 0.01 < 0.1
	b := New(shortfloat.MustNew(0.1), shortfloat.MustNew(0.5), shortfloat.MustNew(0.3))
	got := Forget(b, 1.0)
	if got != b {
		t.Fatalf("expected no-op forgetting, got %+v", got)
	}
}

func TestForgetDecaysTowardFloor(t *testing.T) {
	b := New(shortfloat.MustNew(0.9), shortfloat.MustNew(0.5), shortfloat.MustNew(0.3))
	got := Forget(b, 5.0)
	if got.Priority >= b.Priority {
		t.Fatalf("expected priority to decay, got %v from %v", got.Priority, b.Priority)
	}
	if got.Priority.Float64() < 0.3*QualityFloor-1e-9 {
		t.Fatalf("priority decayed below floor: %v", got.Priority)
	}
}

func TestMergeTakesMaxDurabilityQuality(t *testing.T) {
	oldB := New(shortfloat.MustNew(0.5), shortfloat.MustNew(0.9), shortfloat.MustNew(0.2))
	newB := New(shortfloat.MustNew(0.8), shortfloat.MustNew(0.3), shortfloat.MustNew(0.6))
	m := Merge(oldB, newB)
	if m.Priority != newB.Priority {
		t.Fatalf("expected new priority")
	}
	if m.Durability != oldB.Durability {
		t.Fatalf("expected max durability (old)")
	}
	if m.Quality != newB.Quality {
		t.Fatalf("expected max quality (new)")
	}
}

func TestReviseReturnsTaskAndDerived(t *testing.T) {
	tt := truth.New(shortfloat.MustNew(0.9), shortfloat.MustNew(0.9))
	tb := truth.New(shortfloat.MustNew(0.8), shortfloat.MustNew(0.8))
	td := truth.Revision(tt, tb)
	b := New(shortfloat.MustNew(0.8), shortfloat.MustNew(0.5), shortfloat.MustNew(0.5))
	derived, updatedTask := Revise(RevisionInput{
		TaskBudget:   b,
		TruthTask:    &tt,
		TruthBelief:  &tb,
		TruthDerived: &td,
	})
	if !updatedTask.AboveThreshold() && updatedTask.Priority != 0 {
		t.Fatalf("unexpected updated task budget: %+v", updatedTask)
	}
	if derived.Quality == 0 {
		t.Fatalf("expected nonzero derived quality")
	}
}

func absF(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
