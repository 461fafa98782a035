// Package analytics computes reasoner-wide introspection statistics: the
// concept count, belief/question/goal and task-link/term-link totals,
// pending and novel task counts, the average concept priority, the
// highest-priority concepts, and a count of derivations fired per rule
// name. It keeps no per-level or histogram breakdown. Grounded on the teacher's pkg/korel/analytics
// package, whose Analyzer aggregates document/token statistics across a
// corpus the same read-only, accumulate-then-report way this module
// aggregates statistics across a reasoner's concept bag.
package analytics

import (
	"sort"

	"github.com/cognicore/narscore/pkg/nars/memory"
)

// Snapshot is a point-in-time report over a Memory's working set.
type Snapshot struct {
	ConceptCount      int
	TotalBeliefs      int
	TotalQuestions    int
	TotalGoals        int
	TotalTaskLinks    int
	TotalTermLinks    int
	AverageBudget     float64
	PendingNewTasks   int
	NovelTasks        int
	RuleFirings       map[string]int
	TopConceptsByMass []ConceptMass
}

// ConceptMass is one entry in a by-priority concept ranking.
type ConceptMass struct {
	TermName string
	Priority float64
}

// topConceptCount bounds how many concepts Report ranks by priority, the
// same "report the head, not the whole table" shape the teacher's
// Analyzer.Report applies to its token-frequency tables.
const topConceptCount = 10

// Report computes a Snapshot over mem without mutating any reasoner state:
// every read goes through Memory's exported inspection methods
// (ConceptBagSnapshot, GlobalTaskBagSnapshot, RuleFirings), none of which
// remove items from their bags.
func Report(mem *memory.Memory) Snapshot {
	records := mem.ConceptBagSnapshot()
	pending, novel := mem.GlobalTaskBagSnapshot()

	snap := Snapshot{
		ConceptCount:    len(records),
		PendingNewTasks: pending,
		NovelTasks:      novel,
		RuleFirings:     mem.RuleFirings(),
	}

	var prioritySum float64
	ranked := make([]ConceptMass, 0, len(records))
	for _, r := range records {
		snap.TotalBeliefs += r.BeliefCount
		snap.TotalQuestions += r.QuestionCount
		snap.TotalGoals += r.GoalCount
		snap.TotalTaskLinks += r.TaskLinkCount
		snap.TotalTermLinks += r.TermLinkCount
		prioritySum += r.Priority
		ranked = append(ranked, ConceptMass{TermName: r.TermName, Priority: r.Priority})
	}
	if len(records) > 0 {
		snap.AverageBudget = prioritySum / float64(len(records))
	}

	sort.Slice(ranked, func(i, j int) bool { return ranked[i].Priority > ranked[j].Priority })
	if len(ranked) > topConceptCount {
		ranked = ranked[:topConceptCount]
	}
	snap.TopConceptsByMass = ranked

	return snap
}
