package rule

import (
	"github.com/cognicore/narscore/pkg/nars/shortfloat"
	"github.com/cognicore/narscore/pkg/nars/truth"
)

// TruthFunc computes a conclusion's truth value from its premises' truth
// values, in premise order.
type TruthFunc func(premises ...truth.Truth) truth.Truth

// TruthFuncs is the registry a Rule's TruthFn name is looked up in. The
// formulas are the classical NAL syllogistic truth functions.
var TruthFuncs = map[string]TruthFunc{
	"deduction":       deduction,
	"abduction":       abduction,
	"induction":       induction,
	"exemplification": exemplification,
	"conversion":      conversion,
	"negative":        negationTruth,
	"contraposition":  contraposition,
}

func deduction(p ...truth.Truth) truth.Truth {
	t1, t2 := p[0], p[1]
	f1, c1 := t1.Frequency.Float64(), t1.Confidence.Float64()
	f2, c2 := t2.Frequency.Float64(), t2.Confidence.Float64()
	f := f1 * f2
	c := f * c1 * c2
	return truth.New(shortfloat.Clamp(f), shortfloat.Clamp(c))
}

func abduction(p ...truth.Truth) truth.Truth {
	t1, t2 := p[0], p[1]
	f1, c1 := t1.Frequency.Float64(), t1.Confidence.Float64()
	f2, c2 := t2.Frequency.Float64(), t2.Confidence.Float64()
	wPlus := f1 * f2 * c1 * c2
	w := f1 * c1 * c2
	return truth.FromWeights(wPlus, w-wPlus, truth.DefaultHorizon)
}

func induction(p ...truth.Truth) truth.Truth {
	t1, t2 := p[0], p[1]
	f1, c1 := t1.Frequency.Float64(), t1.Confidence.Float64()
	f2, c2 := t2.Frequency.Float64(), t2.Confidence.Float64()
	wPlus := f1 * f2 * c1 * c2
	w := f2 * c1 * c2
	return truth.FromWeights(wPlus, w-wPlus, truth.DefaultHorizon)
}

func exemplification(p ...truth.Truth) truth.Truth {
	t1, t2 := p[0], p[1]
	f1, c1 := t1.Frequency.Float64(), t1.Confidence.Float64()
	f2, c2 := t2.Frequency.Float64(), t2.Confidence.Float64()
	wPlus := f1 * f2 * c1 * c2
	return truth.FromWeights(wPlus, 0, truth.DefaultHorizon)
}

func conversion(p ...truth.Truth) truth.Truth {
	t1 := p[0]
	f1, c1 := t1.Frequency.Float64(), t1.Confidence.Float64()
	wPlus := f1 * c1
	return truth.FromWeights(wPlus, 0, truth.DefaultHorizon)
}

func negationTruth(p ...truth.Truth) truth.Truth {
	t1 := p[0]
	return truth.New(shortfloat.Clamp(1-t1.Frequency.Float64()), t1.Confidence)
}

func contraposition(p ...truth.Truth) truth.Truth {
	t1 := p[0]
	f1, c1 := t1.Frequency.Float64(), t1.Confidence.Float64()
	w := (1 - f1) * c1
	return truth.FromWeights(0, w, truth.DefaultHorizon)
}
