// Package shortfloat implements the fixed-precision [0,1] numeric primitive
// NARS uses for frequency, confidence, and budget components, along with the
// probabilistic combinators (OR/AND) and averages built on top of it.
package shortfloat

import (
	"fmt"
	"math"

	"github.com/cognicore/narscore/pkg/nars/narserr"
)

// Scale is the fixed-point precision: four decimal digits.
const Scale = 10000

// Value is a fixed-precision number in [0,1], stored as a float64. New and
// Clamp round to Scale's precision; Or, And and Average return their
// float64 result without rounding it.
type Value float64

// New constructs a Value, rounding to Scale precision and rejecting anything
// outside [0,1].
func New(v float64) (Value, error) {
	if v < 0 || v > 1 {
		return 0, fmt.Errorf("%w: %v", narserr.ErrOutOfRange, v)
	}
	return Value(math.Round(v*Scale) / Scale), nil
}

// MustNew is New, panicking on an out-of-range value. Intended for literal
// constants in tests and rule tables, never for untrusted input.
func MustNew(v float64) Value {
	sf, err := New(v)
	if err != nil {
		panic(err)
	}
	return sf
}

// Clamp forces v into [0,1] before constructing a Value, for callers that
// cannot reject out-of-range input (spec.md §7: "callers must clamp").
func Clamp(v float64) Value {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	sf, _ := New(v)
	return sf
}

// Float64 returns the underlying float64.
func (v Value) Float64() float64 { return float64(v) }

// Or computes the probabilistic OR of two values: 1 - (1-a)(1-b). It is
// commutative and monotone: Or(a,b) == Or(b,a) >= max(a,b).
func Or(a, b Value) Value {
	return Value(1 - (1-float64(a))*(1-float64(b)))
}

// And computes the probabilistic AND of two values: a*b.
func And(a, b Value) Value {
	return Value(float64(a) * float64(b))
}

// Average returns the arithmetic mean of the given values (0 if none given).
func Average(vs ...Value) Value {
	if len(vs) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vs {
		sum += float64(v)
	}
	return Value(sum / float64(len(vs)))
}

// Max returns the larger of two values.
func Max(a, b Value) Value {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of two values.
func Min(a, b Value) Value {
	if a < b {
		return a
	}
	return b
}
