// Package truth implements NAL truth-value arithmetic: frequency/confidence
// pairs with an evidential horizon, the evidence-weight transform, revision,
// eternalization, projection, and the quality-from-truth conversion
// (spec.md §3, §4.5). Grounded on the teacher's pkg/korel/pmi package, which
// performs the analogous "weighted-evidence to probability" arithmetic for
// PMI scores.
package truth

import "github.com/cognicore/narscore/pkg/nars/shortfloat"

// DefaultHorizon is the evidential horizon k used when none is specified.
const DefaultHorizon = 1

// Truth is a NAL truth value: frequency, confidence, and the evidential
// horizon used to convert to/from evidence weights.
type Truth struct {
	Frequency  shortfloat.Value
	Confidence shortfloat.Value
	Horizon    int
}

// New constructs a Truth with the default horizon.
func New(f, c shortfloat.Value) Truth {
	return Truth{Frequency: f, Confidence: c, Horizon: DefaultHorizon}
}

// NewWithHorizon constructs a Truth with an explicit evidential horizon.
func NewWithHorizon(f, c shortfloat.Value, k int) Truth {
	if k <= 0 {
		k = DefaultHorizon
	}
	return Truth{Frequency: f, Confidence: c, Horizon: k}
}

// Expectation computes E = c*(f-0.5) + 0.5.
func (t Truth) Expectation() float64 {
	f, c := t.Frequency.Float64(), t.Confidence.Float64()
	return c*(f-0.5) + 0.5
}

// WPlus is the positive evidence weight w+ = k*f*c/(1-c).
func (t Truth) WPlus() float64 {
	c := t.Confidence.Float64()
	if c >= 1 {
		return 0
	}
	return float64(t.Horizon) * t.Frequency.Float64() * c / (1 - c)
}

// WMinus is the negative evidence weight w- = k*(1-f)*c/(1-c).
func (t Truth) WMinus() float64 {
	c := t.Confidence.Float64()
	if c >= 1 {
		return 0
	}
	return float64(t.Horizon) * (1 - t.Frequency.Float64()) * c / (1 - c)
}

// W is the total evidence weight w+ + w-.
func (t Truth) W() float64 { return t.WPlus() + t.WMinus() }

// FromWeights constructs a Truth from evidence weights: f = w+/w (0.5 when
// w=0), c = w/(w+k) (0 when w=0). This is the inverse of WPlus/WMinus/W.
func FromWeights(wPlus, wMinus float64, k int) Truth {
	if k <= 0 {
		k = DefaultHorizon
	}
	w := wPlus + wMinus
	var f, c float64
	if w == 0 {
		f = 0.5
		c = 0
	} else {
		f = wPlus / w
		c = w / (w + float64(k))
	}
	return Truth{
		Frequency:  shortfloat.Clamp(f),
		Confidence: shortfloat.Clamp(c),
		Horizon:    k,
	}
}

// Revision combines two independent beliefs with non-overlapping evidence
// into a stronger one: weights add, then convert back (spec.md §4.5).
func Revision(t1, t2 Truth) Truth {
	wPlus := t1.WPlus() + t2.WPlus()
	wMinus := t1.WMinus() + t2.WMinus()
	k := t1.Horizon
	if t2.Horizon > k {
		k = t2.Horizon
	}
	return FromWeights(wPlus, wMinus, k)
}

// Eternalize moves a temporal truth to the atemporal layer: frequency is
// unchanged, confidence becomes c/(c+k) (spec.md §4.5).
func Eternalize(t Truth) Truth {
	c := t.Confidence.Float64()
	k := float64(t.Horizon)
	return Truth{
		Frequency:  t.Frequency,
		Confidence: shortfloat.Clamp(c / (c + k)),
		Horizon:    t.Horizon,
	}
}

// Projection moves a temporal truth from sourceTime to targetTime, given the
// reasoner's currentTime, discounting confidence the farther the projection
// reaches (spec.md §4.5).
func Projection(t Truth, sourceTime, currentTime, targetTime int) Truth {
	v := absInt(sourceTime - targetTime)
	var s float64
	lo, hi := sourceTime, targetTime
	if lo > hi {
		lo, hi = hi, lo
	}
	if currentTime >= lo && currentTime <= hi {
		s = 0.5
	} else {
		d1 := absInt(sourceTime - currentTime)
		d2 := absInt(targetTime - currentTime)
		s = float64(minInt(d1, d2))
	}
	c := t.Confidence.Float64()
	newC := c * (2 * s / (2*s + float64(v)))
	return Truth{
		Frequency:  t.Frequency,
		Confidence: shortfloat.Clamp(newC),
		Horizon:    t.Horizon,
	}
}

// ToQuality converts a Truth to a budget quality value: q = max(E, (1-E)*0.75)
// (spec.md §4.5).
func ToQuality(t Truth) shortfloat.Value {
	e := t.Expectation()
	q := e
	if alt := (1 - e) * 0.75; alt > q {
		q = alt
	}
	return shortfloat.Clamp(q)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
