// Package budget implements the attention-economy triple (priority,
// durability, quality) and the combinators over it: forgetting, revision,
// and activation (spec.md §3, §4.1, §4.5). Grounded on the teacher's
// pkg/korel/signals/damping.go, whose density-based damping curve is the
// same "decay toward a floor, bounded below" shape the forgetting rule
// uses, and pkg/korel/rank/rank.go, whose weighted-sum scoring grounds the
// derived-budget combination.
package budget

import (
	"math"

	"github.com/cognicore/narscore/pkg/nars/shortfloat"
	"github.com/cognicore/narscore/pkg/nars/truth"
)

// QualityFloor is the Q constant in the forgetting rule (spec.md §4.1).
const QualityFloor = 0.3

// RelativeThreshold is the |p-q*| threshold below which forgetting is a
// no-op (spec.md §4.1).
const RelativeThreshold = 0.1

// Threshold is the minimum mean(p,d,q) for a Budget to be "above threshold"
// (spec.md §3).
const Threshold = 0.001

// BeliefThreshold is the minimum Summary() for a judgment to be admitted
// into a Concept's belief table (spec.md §4.4, BUDGET_THRESHOLD).
const BeliefThreshold = 0.01

// Budget is the (priority, durability, quality) triple governing attention.
type Budget struct {
	Priority   shortfloat.Value
	Durability shortfloat.Value
	Quality    shortfloat.Value
}

// New constructs a Budget.
func New(p, d, q shortfloat.Value) Budget {
	return Budget{Priority: p, Durability: d, Quality: q}
}

// Summary is s = d*(p+q)/2 (spec.md §3).
func (b Budget) Summary() shortfloat.Value {
	return shortfloat.Clamp(b.Durability.Float64() * (b.Priority.Float64() + b.Quality.Float64()) / 2)
}

// AboveThreshold reports whether mean(p,d,q) > Threshold.
func (b Budget) AboveThreshold() bool {
	mean := (b.Priority.Float64() + b.Durability.Float64() + b.Quality.Float64()) / 3
	return mean > Threshold
}

// Merge combines an existing bag item's budget with an incoming one on
// put-in when the key already exists (spec.md §4.1): priority takes the new
// value; durability and quality take the max of old and new.
func Merge(old, incoming Budget) Budget {
	return Budget{
		Priority:   incoming.Priority,
		Durability: shortfloat.Max(old.Durability, incoming.Durability),
		Quality:    shortfloat.Max(old.Quality, incoming.Quality),
	}
}

// Forget applies the forgetting rule on put-back (spec.md §4.1): let
// q* = quality*QualityFloor; if |p-q*| < RelativeThreshold do nothing,
// otherwise decay priority toward q* at rate governed by decayRate (the
// "cycles-to-half" constant C) and the item's own durability.
func Forget(b Budget, decayRate float64) Budget {
	qStar := b.Quality.Float64() * QualityFloor
	diff := b.Priority.Float64() - qStar
	if math.Abs(diff) < RelativeThreshold {
		return b
	}
	exponent := 1 / (decayRate * math.Abs(diff))
	newP := qStar + diff*math.Pow(b.Durability.Float64(), exponent)
	return Budget{
		Priority:   shortfloat.Clamp(newP),
		Durability: b.Durability,
		Quality:    b.Quality,
	}
}

// Activate merges a concept's resting budget with an incoming stimulus
// budget on reference (spec.md §4.5): priority is the probabilistic OR,
// durability is the arithmetic mean, quality is unchanged.
func Activate(resting, incoming Budget) Budget {
	return Budget{
		Priority:   shortfloat.Or(resting.Priority, incoming.Priority),
		Durability: shortfloat.Average(resting.Durability, incoming.Durability),
		Quality:    resting.Quality,
	}
}

// RevisionInput bundles the truths and optional link budgets
// BudgetFunctions.revision (spec.md §4.5) consumes. TaskLinkBudget and
// TermLinkBudget, if non-nil, are updated in place.
type RevisionInput struct {
	TaskBudget     Budget
	TruthTask      *truth.Truth
	TruthBelief    *truth.Truth
	TruthDerived   *truth.Truth
	TaskLinkBudget *Budget
	TermLinkBudget *Budget
}

// Revise implements BudgetFunctions.revision (spec.md §4.5): it updates the
// task budget in place semantics (returned as updatedTask), optionally
// updates the task-link and term-link budgets pointed to by the input, and
// returns the derived conclusion's budget.
func Revise(in RevisionInput) (derived Budget, updatedTask Budget) {
	dTask := 0.0
	if in.TruthTask != nil && in.TruthDerived != nil {
		dTask = math.Abs(in.TruthTask.Expectation() - in.TruthDerived.Expectation())
	}

	origTask := in.TaskBudget
	updatedTask = Budget{
		Priority:   shortfloat.And(origTask.Priority, shortfloat.Clamp(1-dTask)),
		Durability: shortfloat.And(origTask.Durability, shortfloat.Clamp(1-dTask)),
		Quality:    origTask.Quality,
	}

	if in.TaskLinkBudget != nil {
		in.TaskLinkBudget.Priority = shortfloat.And(origTask.Priority, shortfloat.Clamp(dTask))
		in.TaskLinkBudget.Durability = shortfloat.And(origTask.Durability, shortfloat.Clamp(dTask))
	}

	if in.TermLinkBudget != nil && in.TruthBelief != nil && in.TruthDerived != nil {
		dBelief := math.Abs(in.TruthBelief.Expectation() - in.TruthDerived.Expectation())
		in.TermLinkBudget.Priority = shortfloat.And(in.TermLinkBudget.Priority, shortfloat.Clamp(1-dBelief))
		in.TermLinkBudget.Durability = shortfloat.And(in.TermLinkBudget.Durability, shortfloat.Clamp(1-dBelief))
	}

	maxConf := 0.0
	if in.TruthTask != nil {
		maxConf = math.Max(maxConf, in.TruthTask.Confidence.Float64())
	}
	if in.TruthBelief != nil {
		maxConf = math.Max(maxConf, in.TruthBelief.Confidence.Float64())
	}
	confDiff := 0.0
	if in.TruthDerived != nil {
		confDiff = in.TruthDerived.Confidence.Float64() - maxConf
	}
	confDiffClamped := shortfloat.Clamp(confDiff)

	var quality shortfloat.Value
	if in.TruthDerived != nil {
		quality = truth.ToQuality(*in.TruthDerived)
	}

	derived = Budget{
		Priority:   shortfloat.Or(confDiffClamped, updatedTask.Priority),
		Durability: shortfloat.Average(confDiffClamped, updatedTask.Durability),
		Quality:    quality,
	}
	return derived, updatedTask
}
