package stamp

import "testing"

func TestOverlapSymmetric(t *testing.T) {
	ctx := NewContextSeeded(1)
	a := ctx.New(0, Eternal, TenseEternal)
	b := Revision(a, ctx.New(0, Eternal, TenseEternal), 0, "", false, 0)
	if Overlaps(a, b) != Overlaps(b, a) {
		t.Fatalf("overlap should be symmetric")
	}
	if !Overlaps(a, b) {
		t.Fatalf("expected overlap since b was derived by revision from a")
	}
}

func TestNoOverlapIndependentStamps(t *testing.T) {
	ctx := NewContextSeeded(1)
	a := ctx.New(0, Eternal, TenseEternal)
	b := ctx.New(0, Eternal, TenseEternal)
	if Overlaps(a, b) {
		t.Fatalf("independent stamps should not overlap")
	}
}

func TestEvidentialBaseLengthBound(t *testing.T) {
	ctx := NewContextSeeded(1)
	s := ctx.New(0, Eternal, TenseEternal)
	for i := 0; i < 100; i++ {
		s2 := ctx.New(0, Eternal, TenseEternal)
		s = Revision(s, s2, i, "", false, 0)
	}
	if len(s.Evidence) > MaxEvidentialBaseLength {
		t.Fatalf("evidential base exceeded max length: %d", len(s.Evidence))
	}
}

func TestEternalizePreservesEvidence(t *testing.T) {
	ctx := NewContextSeeded(1)
	s := ctx.New(0, 5, TensePresent)
	et := Eternalize(s)
	if !et.IsEternal() {
		t.Fatalf("expected eternalized stamp")
	}
	if len(et.Evidence) != len(s.Evidence) {
		t.Fatalf("expected evidence preserved")
	}
}

func TestRevisionOccurrenceMax(t *testing.T) {
	ctx := NewContextSeeded(1)
	a := ctx.New(0, 5, TensePresent)
	b := ctx.New(0, 10, TensePresent)
	rev := Revision(a, b, 1, "", false, 0)
	if rev.OccurrenceTime != 10 {
		t.Fatalf("expected occurrence time 10, got %d", rev.OccurrenceTime)
	}
}
