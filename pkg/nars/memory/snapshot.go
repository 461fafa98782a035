package memory

import "github.com/cognicore/narscore/pkg/nars/concept"

// ConceptRecord is one read-only row of a concept bag snapshot: enough to
// report on without handing out the live *concept.Concept (spec.md §6
// conceptBagSnapshot).
type ConceptRecord struct {
	TermName      string
	Priority      float64
	BeliefCount   int
	QuestionCount int
	GoalCount     int
	TaskLinkCount int
	TermLinkCount int
}

// ConceptAt peeks the concept for a canonical term name without removing it
// from the bag (spec.md §6 conceptAt(name)).
func (m *Memory) ConceptAt(name string) (*concept.Concept, bool) {
	return m.PeekConcept(name)
}

// ConceptBagSnapshot reports every concept currently held, without
// disturbing bag placement (spec.md §6 conceptBagSnapshot()).
func (m *Memory) ConceptBagSnapshot() []ConceptRecord {
	keys := m.Concepts.Keys()
	out := make([]ConceptRecord, 0, len(keys))
	for _, key := range keys {
		c, ok := m.PeekConcept(key)
		if !ok {
			continue
		}
		out = append(out, ConceptRecord{
			TermName:      c.Term.Name(),
			Priority:      c.Budget.Priority.Float64(),
			BeliefCount:   len(c.Beliefs),
			QuestionCount: len(c.Questions),
			GoalCount:     len(c.Goals),
			TaskLinkCount: c.TaskLinks.Size(),
			TermLinkCount: c.TermLinks.Size(),
		})
	}
	return out
}

// GlobalTaskBagSnapshot reports the pending new-task queue and the
// bounded novel-task bag (spec.md §6 globalTaskBagSnapshot()), without
// draining either.
func (m *Memory) GlobalTaskBagSnapshot() (pendingNewTasks int, novelTasks int) {
	return len(m.NewTasks), m.NovelTasks.Size()
}
