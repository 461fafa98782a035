// Package concept implements the per-term Concept: the bounded belief,
// question, and goal tables a term accumulates, plus its task-link and
// term-link sub-bags (spec.md §4.4). Grounded on the teacher's
// pkg/korel/store/memstore package, whose per-key record with a bounded,
// quality-ordered history is the same shape Concept's belief table takes.
package concept

import (
	"sort"

	"github.com/cognicore/narscore/pkg/nars/bag"
	"github.com/cognicore/narscore/pkg/nars/budget"
	"github.com/cognicore/narscore/pkg/nars/link"
	"github.com/cognicore/narscore/pkg/nars/sentence"
	"github.com/cognicore/narscore/pkg/nars/shortfloat"
	"github.com/cognicore/narscore/pkg/nars/stamp"
	"github.com/cognicore/narscore/pkg/nars/term"
	"github.com/cognicore/narscore/pkg/nars/truth"
)

// Limits bounds a Concept's belief/question/goal tables and link sub-bags.
// Overridable from config.yaml (spec.md §6 defaults).
type Limits struct {
	MaxBeliefs       int
	MaxQuestions     int
	MaxGoals         int
	TaskLinkCapacity int
	TermLinkCapacity int
}

// RevisionMaxOccurrenceDistance is the widest gap, in logical cycles,
// between two temporal beliefs' occurrence times for revision to still
// combine them (spec.md §4.4).
const RevisionMaxOccurrenceDistance = 10

// DefaultLimits carries the spec.md §6 defaults: CONCEPT_BELIEFS_MAX,
// CONCEPT_QUESTIONS_MAX, CONCEPT_GOALS_MAX, TASK_LINK_BAG_SIZE,
// TERM_LINK_BAG_SIZE.
func DefaultLimits() Limits {
	return Limits{
		MaxBeliefs:       28,
		MaxQuestions:     5,
		MaxGoals:         7,
		TaskLinkCapacity: 100,
		TermLinkCapacity: 100,
	}
}

// Concept is the reasoner's per-term working set: its attention Budget,
// bounded belief/question/goal tables, and the task-link/term-link bags
// Memory fans derivation out through.
type Concept struct {
	Term      term.Term
	Budget    budget.Budget
	Beliefs   []sentence.Sentence
	Questions []*sentence.Task
	Goals     []sentence.Sentence

	TaskLinks *bag.Bag[*link.TaskLink]
	TermLinks *bag.Bag[*link.TermLink]

	limits Limits
}

// New constructs an empty Concept for t with the given resting budget.
func New(t term.Term, b budget.Budget, limits Limits) *Concept {
	return &Concept{
		Term:   t,
		Budget: b,
		TaskLinks: bag.New[*link.TaskLink](limits.TaskLinkCapacity,
			func(l *link.TaskLink) string { return l.Key() },
			func(l *link.TaskLink) shortfloat.Value { return l.Priority() },
			nil),
		TermLinks: bag.New[*link.TermLink](limits.TermLinkCapacity,
			func(l *link.TermLink) string { return l.Key() },
			func(l *link.TermLink) shortfloat.Value { return l.Priority() },
			nil),
		limits: limits,
	}
}

// SelectCandidate finds the existing belief best suited to revise against
// incoming (spec.md §4.4 selectCandidate, rated by confidence): the
// highest-confidence belief that shares no evidence with incoming, lies
// within the revision occurrence window, and for which both sentences are
// individually revisable. Returns false if none qualifies.
func (c *Concept) SelectCandidate(incoming sentence.Sentence) (sentence.Sentence, bool) {
	if !incoming.Revisable() {
		var zero sentence.Sentence
		return zero, false
	}
	bestIdx := -1
	var bestConfidence float64
	for i, b := range c.Beliefs {
		if !b.Revisable() {
			continue
		}
		if !withinRevisionWindow(b.Stamp, incoming.Stamp) {
			continue
		}
		if stamp.Overlaps(b.Stamp, incoming.Stamp) {
			continue
		}
		conf := b.Truth.Confidence.Float64()
		if bestIdx == -1 || conf > bestConfidence {
			bestIdx = i
			bestConfidence = conf
		}
	}
	if bestIdx == -1 {
		var zero sentence.Sentence
		return zero, false
	}
	return c.Beliefs[bestIdx], true
}

// withinRevisionWindow requires both stamps eternal, or both temporal with
// occurrence times no more than RevisionMaxOccurrenceDistance cycles apart.
func withinRevisionWindow(a, b stamp.Stamp) bool {
	if a.IsEternal() != b.IsEternal() {
		return false
	}
	if a.IsEternal() {
		return true
	}
	d := a.OccurrenceTime - b.OccurrenceTime
	if d < 0 {
		d = -d
	}
	return d <= RevisionMaxOccurrenceDistance
}

// LocalRevision produces the revised sentence resulting from combining
// incoming with its best candidate, if one exists (spec.md §4.4
// localRevision). now is the reasoner's logical clock, used as the
// revised stamp's creation time.
func (c *Concept) LocalRevision(incoming sentence.Sentence, now int) (sentence.Sentence, bool) {
	candidate, ok := c.SelectCandidate(incoming)
	if !ok {
		var zero sentence.Sentence
		return zero, false
	}
	revisedTruth := truth.Revision(*incoming.Truth, *candidate.Truth)
	revisedStamp := stamp.Revision(incoming.Stamp, candidate.Stamp, now, "", false, 0)
	return sentence.NewJudgment(incoming.Term, revisedTruth, revisedStamp), true
}

// ProcessJudgment inserts incoming into the belief table, evicting the
// lowest-quality belief (ranked by truth.ToQuality) if the table is over
// capacity (spec.md §5
// open-question resolution: quality-based eviction, not FIFO). A belief
// whose evidence and occurrence time duplicate one already on file is
// dropped (spec.md §4.4 step 2).
func (c *Concept) ProcessJudgment(incoming sentence.Sentence) {
	for _, b := range c.Beliefs {
		if b.Term.Equal(incoming.Term) && stamp.Same(b.Stamp, incoming.Stamp) {
			return
		}
	}
	c.Beliefs = append(c.Beliefs, incoming)
	sort.Slice(c.Beliefs, func(i, j int) bool {
		return truth.ToQuality(*c.Beliefs[i].Truth).Float64() > truth.ToQuality(*c.Beliefs[j].Truth).Float64()
	})
	if len(c.Beliefs) > c.limits.MaxBeliefs {
		c.Beliefs = c.Beliefs[:c.limits.MaxBeliefs]
	}
}

// AddQuestion admits a question task into the pending-question table,
// bounded to MaxQuestions (oldest evicted first: a question with no
// solution yet has no quality signal to rank by).
func (c *Concept) AddQuestion(q *sentence.Task) {
	c.Questions = append(c.Questions, q)
	if len(c.Questions) > c.limits.MaxQuestions {
		c.Questions = c.Questions[1:]
	}
}

// ProcessGoal inserts incoming into the goal table with the same
// quality-ranked eviction policy as beliefs.
func (c *Concept) ProcessGoal(incoming sentence.Sentence) {
	c.Goals = append(c.Goals, incoming)
	sort.Slice(c.Goals, func(i, j int) bool {
		return truth.ToQuality(*c.Goals[i].Truth).Float64() > truth.ToQuality(*c.Goals[j].Truth).Float64()
	})
	if len(c.Goals) > c.limits.MaxGoals {
		c.Goals = c.Goals[:c.limits.MaxGoals]
	}
}

// BestBelief returns the highest-quality belief on file, if any.
func (c *Concept) BestBelief() (sentence.Sentence, bool) {
	if len(c.Beliefs) == 0 {
		var zero sentence.Sentence
		return zero, false
	}
	return c.Beliefs[0], true
}
