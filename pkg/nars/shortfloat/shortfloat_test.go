package shortfloat

import (
	"errors"
	"math"
	"testing"

	"github.com/cognicore/narscore/pkg/nars/narserr"
)

func TestNewRange(t *testing.T) {
	cases := []struct {
		in      float64
		wantErr bool
	}{
		{0.0, false},
		{1.0, false},
		{0.5, false},
		{-0.01, true},
		{1.5, true},
	}
	for _, c := range cases {
		_, err := New(c.in)
		if c.wantErr && !errors.Is(err, narserr.ErrOutOfRange) {
			t.Errorf("New(%v): expected ErrOutOfRange, got %v", c.in, err)
		}
		if !c.wantErr && err != nil {
			t.Errorf("New(%v): unexpected error %v", c.in, err)
		}
	}
}

func TestOrCommutativeMonotone(t *testing.T) {
	a, b := MustNew(0.3), MustNew(0.7)
	ab := Or(a, b)
	ba := Or(b, a)
	if ab != ba {
		t.Fatalf("Or not commutative: %v vs %v", ab, ba)
	}
	if float64(ab) < float64(Max(a, b)) {
		t.Fatalf("Or not monotone: %v < max(%v,%v)", ab, a, b)
	}
}

func TestClampNeverPanics(t *testing.T) {
	if Clamp(-5) != 0 {
		t.Fatalf("expected clamp to 0")
	}
	if Clamp(5) != 1 {
		t.Fatalf("expected clamp to 1")
	}
}

func TestAverage(t *testing.T) {
	if Average() != 0 {
		t.Fatalf("expected 0 average of no values")
	}
	got := Average(MustNew(0.2), MustNew(0.4), MustNew(0.6))
	if math.Abs(float64(got)-0.4) > 1e-9 {
		t.Fatalf("expected ~0.4, got %v", got)
	}
}
