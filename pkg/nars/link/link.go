// Package link implements TaskLink and TermLink, the fan-out edges a
// Concept uses to pair a processed Task with the term-links of related
// concepts, and the descent-path-based algorithm that classifies their
// structural relationship (spec.md §4.6). Grounded on the teacher's
// pkg/korel/inference package, whose fact-graph edges (subject/relation/
// object triples walked for transitive closure) are the same "typed edge
// between two addressable graph nodes" shape TaskLink/TermLink implement.
package link

import (
	"github.com/cognicore/narscore/pkg/nars/budget"
	"github.com/cognicore/narscore/pkg/nars/sentence"
	"github.com/cognicore/narscore/pkg/nars/shortfloat"
	"github.com/cognicore/narscore/pkg/nars/term"
)

// Type classifies the structural relationship a link records between a
// concept's term and another term reached through it.
type Type int

const (
	Self Type = iota
	Component
	Compound
	ComponentStatement
	CompoundStatement
	ComponentCondition
	CompoundCondition
	Transform
)

func (t Type) String() string {
	switch t {
	case Self:
		return "SELF"
	case Component:
		return "COMPONENT"
	case Compound:
		return "COMPOUND"
	case ComponentStatement:
		return "COMPONENT_STATEMENT"
	case CompoundStatement:
		return "COMPOUND_STATEMENT"
	case ComponentCondition:
		return "COMPONENT_CONDITION"
	case CompoundCondition:
		return "COMPOUND_CONDITION"
	case Transform:
		return "TRANSFORM"
	default:
		return "UNKNOWN"
	}
}

// TypeOf classifies the relationship between root (a concept's term) and
// target (a term reached by descending into root), using the descent path
// between them (spec.md §4.6):
//   - Self when root and target are the same term.
//   - Transform when the path crosses a product or image connector,
//     marking the pair as a candidate for an argument-order transform rule.
//   - *Condition variants when target descends through the conjunction
//     that forms the condition of an implication or equivalence statement:
//     ComponentCondition for the conjunction itself or one of its direct
//     elements, CompoundCondition for terms nested deeper inside it.
//   - *Statement variants when the immediate parent is a Statement.
//   - Component/Compound otherwise, depending on descent depth.
func TypeOf(root, target term.Term) (Type, bool) {
	path, ok := term.DescentPath(root, target)
	if !ok {
		return 0, false
	}
	if len(path) == 1 {
		return Self, true
	}

	depth := len(path) - 1
	parent := path[len(path)-2]

	if crossesTransformConnector(path) {
		return Transform, true
	}
	if isConditionPosition(root, path) {
		if depth <= 2 {
			return ComponentCondition, true
		}
		return CompoundCondition, true
	}
	if parent.Kind() == term.KindStatement {
		if depth == 1 {
			return ComponentStatement, true
		}
		return CompoundStatement, true
	}
	if depth == 1 {
		return Component, true
	}
	return Compound, true
}

func crossesTransformConnector(path []term.Term) bool {
	for _, n := range path[:len(path)-1] {
		if n.Kind() != term.KindCompound {
			continue
		}
		switch n.Connector() {
		case term.ConnProduct, term.ConnExtensionalImage, term.ConnIntensionalImage:
			return true
		}
	}
	return false
}

func isConditionPosition(root term.Term, path []term.Term) bool {
	if root.Kind() != term.KindStatement || len(path) < 2 {
		return false
	}
	switch root.Copula() {
	case term.CopImplication, term.CopEquivalence,
		term.CopPredictiveImplication, term.CopConcurrentImplication, term.CopRetrospectiveImplication,
		term.CopPredictiveEquivalence, term.CopConcurrentEquivalence:
	default:
		return false
	}
	subject := root.Subject()
	return path[1].Equal(subject) && path[1].Connector() == term.ConnConjunction
}

// TaskLink pairs a Task with its attention Budget and the Type classifying
// how the owning concept's term relates to the task's term.
type TaskLink struct {
	Kind   Type
	Task   *sentence.Task
	Budget budget.Budget
}

// Key is the bag identity: type-qualified so the same task reached two
// different structural ways is tracked as two distinct link slots.
func (l *TaskLink) Key() string { return l.Kind.String() + ":" + l.Task.Key() }

// Priority reads the link's own attention priority.
func (l *TaskLink) Priority() shortfloat.Value { return l.Budget.Priority }

// TermLink pairs a target Term (belonging to another concept) with an
// attention Budget and the Type relating it to the owning concept's term.
type TermLink struct {
	Kind   Type
	Target term.Term
	Budget budget.Budget
}

// Key is the bag identity.
func (l *TermLink) Key() string { return l.Kind.String() + ":" + l.Target.Name() }

// Priority reads the link's own attention priority.
func (l *TermLink) Priority() shortfloat.Value { return l.Budget.Priority }
