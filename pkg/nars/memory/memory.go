// Package memory implements the Memory façade: the concept bag, the
// global new-task and novel-task queues, task-link/term-link fan-out, and
// the single working-cycle fan-out step the reasoner drives (spec.md §4.3,
// §4.9). Grounded on the teacher's pkg/korel/inference package, whose
// Engine ties together a fact store, a rule set, and a per-query fan-out
// over related facts — the same three-way composition Memory ties
// together here over concepts, the rule table, and link bags.
package memory

import (
	"github.com/cognicore/narscore/pkg/nars/bag"
	"github.com/cognicore/narscore/pkg/nars/budget"
	"github.com/cognicore/narscore/pkg/nars/concept"
	"github.com/cognicore/narscore/pkg/nars/link"
	"github.com/cognicore/narscore/pkg/nars/rule"
	"github.com/cognicore/narscore/pkg/nars/sentence"
	"github.com/cognicore/narscore/pkg/nars/shortfloat"
	"github.com/cognicore/narscore/pkg/nars/stamp"
	"github.com/cognicore/narscore/pkg/nars/term"
	"github.com/cognicore/narscore/pkg/nars/truth"
)

// Config bounds Memory's top-level bags, supplies the rule table, and
// sets the forgetting rates (cycles-to-half decay constants). The concept
// and task-link rates are applied when Cycle puts those items back;
// TermLinkForgetRate is carried but not applied, since Cycle only peeks
// term-links and never puts one back.
type Config struct {
	ConceptCapacity   int
	NovelTaskCapacity int
	ConceptLimits     concept.Limits

	ConceptForgetRate  float64
	TaskLinkForgetRate float64
	TermLinkForgetRate float64

	RuleTable []rule.Rule
}

// DefaultConfig loads the builtin rule table and applies the spec.md §6
// defaults (CONCEPT_BAG_SIZE and the concept table limits), with the
// classic engine's concept/link forgetting rates.
func DefaultConfig() Config {
	return Config{
		ConceptCapacity:    10000,
		NovelTaskCapacity:  100,
		ConceptLimits:      concept.DefaultLimits(),
		ConceptForgetRate:  10,
		TaskLinkForgetRate: 20,
		TermLinkForgetRate: 50,
		RuleTable:          rule.Builtin(),
	}
}

type novelItem struct {
	task *sentence.Task
}

func (n *novelItem) Key() string                { return n.task.Key() }
func (n *novelItem) Priority() shortfloat.Value { return n.task.Budget.Priority }

// Memory is the reasoner's working set: a concept bag addressed by term
// canonical name, the global new-task input queue, a bounded novel-task
// bag for just-derived conclusions awaiting promotion, and the novelty
// tracker gating repeat (task-link, term-link) derivations.
type Memory struct {
	Concepts   *bag.Bag[*concept.Concept]
	NewTasks   []*sentence.Task
	NovelTasks *bag.Bag[*novelItem]
	Novelty    *link.NoveltyTracker
	RuleTable  []rule.Rule

	cfg         Config
	ruleFirings map[string]int
}

// New constructs an empty Memory.
func New(cfg Config) *Memory {
	return &Memory{
		Concepts: bag.New[*concept.Concept](cfg.ConceptCapacity,
			func(c *concept.Concept) string { return c.Term.Name() },
			func(c *concept.Concept) shortfloat.Value { return c.Budget.Priority },
			func(old, incoming *concept.Concept) *concept.Concept { return incoming }),
		NovelTasks: bag.New[*novelItem](cfg.NovelTaskCapacity,
			func(n *novelItem) string { return n.Key() },
			func(n *novelItem) shortfloat.Value { return n.Priority() },
			nil),
		Novelty:     link.NewNoveltyTracker(),
		RuleTable:   cfg.RuleTable,
		cfg:         cfg,
		ruleFirings: make(map[string]int),
	}
}

// RuleFirings returns a copy of the rolling count of derivations fired per
// rule name since this Memory was constructed, for analytics reporting.
func (m *Memory) RuleFirings() map[string]int {
	out := make(map[string]int, len(m.ruleFirings))
	for k, v := range m.ruleFirings {
		out[k] = v
	}
	return out
}

// InputTask admits an externally supplied task directly into the new-task
// queue (spec.md §4.3: input bypasses the novel-task bag).
func (m *Memory) InputTask(t *sentence.Task) {
	m.NewTasks = append(m.NewTasks, t)
}

// AddDerivedTask admits a reasoner-derived task into the bounded novel-task
// bag rather than the new-task queue, so a burst of derivations cannot
// starve freshly input tasks of processing.
func (m *Memory) AddDerivedTask(t *sentence.Task) {
	m.NovelTasks.PutIn(&novelItem{task: t})
}

// PromoteNovelTasks moves up to n of the highest-priority novel tasks into
// the new-task queue.
func (m *Memory) PromoteNovelTasks(n int) {
	for i := 0; i < n; i++ {
		item, ok := m.NovelTasks.TakeOut()
		if !ok {
			break
		}
		m.NewTasks = append(m.NewTasks, item.task)
	}
}

// PickOrGenerateConcept removes and returns the concept for t from the
// concept bag, or creates a fresh one if none exists yet (spec.md §4.3
// pickOrGenerateConcept). An existing concept's budget is re-activated:
// priority and durability each fold the stimulus in by probabilistic OR,
// quality keeps the max. The caller must PutBackConcept it when done.
func (m *Memory) PickOrGenerateConcept(t term.Term, stimulus budget.Budget) *concept.Concept {
	if c, ok := m.Concepts.PickOut(t.Name()); ok {
		c.Budget = budget.Budget{
			Priority:   shortfloat.Or(c.Budget.Priority, stimulus.Priority),
			Durability: shortfloat.Or(c.Budget.Durability, stimulus.Durability),
			Quality:    shortfloat.Max(c.Budget.Quality, stimulus.Quality),
		}
		return c
	}
	return concept.New(t, stimulus, m.cfg.ConceptLimits)
}

// conceptualBudget derives the budget a task confers on its own concept
// (spec.md §4.3 Memory.input): the task's priority and durability, with
// quality set to the term's simplicity 1/complexity.
func conceptualBudget(task *sentence.Task) budget.Budget {
	return budget.Budget{
		Priority:   task.Budget.Priority,
		Durability: task.Budget.Durability,
		Quality:    shortfloat.Clamp(1 / float64(task.Sentence.Term.Complexity())),
	}
}

// PutBackConcept reinserts a concept taken out via PickOrGenerateConcept or
// a working cycle.
func (m *Memory) PutBackConcept(c *concept.Concept) {
	m.Concepts.PutIn(c)
}

// PeekConcept reads a concept without removing it from the bag.
func (m *Memory) PeekConcept(key string) (*concept.Concept, bool) {
	return m.Concepts.Peek(key)
}

// CreateTaskLinks fans task out across every distinct subterm of its own
// term, filing one TaskLink at each subterm's own concept (spec.md §4.3
// createTaskLinks): the root term's Self link lands in c itself, and every
// other subterm gets a COMPONENT/COMPOUND-family link in its own concept,
// so that concept later has a task to reason with during a working cycle.
// c must be the concept for task's own term, already picked out of the
// concept bag by the caller.
func (m *Memory) CreateTaskLinks(c *concept.Concept, task *sentence.Task) {
	root := task.Sentence.Term
	for _, sub := range root.Subterms() {
		ty, ok := link.TypeOf(root, sub)
		if !ok {
			continue
		}
		if sub.Equal(root) {
			c.TaskLinks.PutIn(&link.TaskLink{Kind: ty, Task: task, Budget: task.Budget})
			continue
		}
		sc := m.PickOrGenerateConcept(sub, task.Budget)
		sc.TaskLinks.PutIn(&link.TaskLink{Kind: ty, Task: task, Budget: task.Budget})
		m.PutBackConcept(sc)
	}
}

// CreateTermLinks fans c's own term out across its subterms (spec.md §4.3
// createTermLinks): c files one TermLink to each distinct non-self
// subterm, and reciprocally, each subterm's own concept files a TermLink
// back to c's term, so a working cycle centered on a shared subterm (e.g.
// "bird" inside both "<robin-->bird>" and "<bird-->animal>") can reach the
// other statement's belief.
func (m *Memory) CreateTermLinks(c *concept.Concept) {
	for _, sub := range c.Term.Subterms() {
		if sub.Equal(c.Term) {
			continue
		}
		ty, ok := link.TypeOf(c.Term, sub)
		if !ok {
			continue
		}
		c.TermLinks.PutIn(&link.TermLink{Kind: ty, Target: sub, Budget: c.Budget})

		sc := m.PickOrGenerateConcept(sub, c.Budget)
		sc.TermLinks.PutIn(&link.TermLink{Kind: ty, Target: c.Term, Budget: c.Budget})
		m.PutBackConcept(sc)
	}
}

// ProcessNewTasks drains the new-task queue once: each judgment is locally
// revised against its concept's existing beliefs (any resulting revision
// is returned as a further derived task for the caller to feed back in),
// inserted into the belief table, and fanned out into task-links/
// term-links; each question triggers an immediate answer attempt; each
// goal is inserted into the goal table. now is the reasoner's logical
// clock.
func (m *Memory) ProcessNewTasks(now int) []*sentence.Task {
	pending := m.NewTasks
	m.NewTasks = nil

	var derived []*sentence.Task
	for _, task := range pending {
		c := m.PickOrGenerateConcept(task.Sentence.Term, conceptualBudget(task))

		switch task.Sentence.Punctuation {
		case sentence.Judgment:
			if revisedSentence, ok := c.LocalRevision(task.Sentence, now); ok {
				candidate, _ := c.SelectCandidate(task.Sentence)
				task.Achievement = achievementOf(revisedSentence, candidate)
				revisedBudget, _ := budget.Revise(budget.RevisionInput{
					TaskBudget:   task.Budget,
					TruthTask:    task.Sentence.Truth,
					TruthDerived: revisedSentence.Truth,
				})
				derived = append(derived, sentence.New(revisedSentence, revisedBudget, sentence.Derived))
			}
			if task.Budget.Summary().Float64() > budget.BeliefThreshold {
				c.ProcessJudgment(task.Sentence)
			}
			m.CreateTaskLinks(c, task)
			m.CreateTermLinks(c)
			m.answerPendingQuestions(c)

		case sentence.Question:
			c.AddQuestion(task)
			m.AnswerQuestion(c, task)
			m.CreateTermLinks(c)

		case sentence.Goal:
			c.ProcessGoal(task.Sentence)
			m.CreateTaskLinks(c, task)
			m.CreateTermLinks(c)
		}

		m.PutBackConcept(c)
	}
	return derived
}

// achievementOf measures how much a revision moved the task's belief: the
// expectation shift against the revised-against candidate, or the revised
// expectation itself when no candidate truth exists (spec.md §4.4 step 3).
func achievementOf(revised, candidate sentence.Sentence) float64 {
	if candidate.Truth == nil {
		return revised.Truth.Expectation()
	}
	d := revised.Truth.Expectation() - candidate.Truth.Expectation()
	if d < 0 {
		d = -d
	}
	return d
}

// answerPendingQuestions re-attempts every question on file against a
// concept's newly inserted best belief.
func (m *Memory) answerPendingQuestions(c *concept.Concept) {
	best, ok := c.BestBelief()
	if !ok {
		return
	}
	for _, q := range c.Questions {
		m.TrySolution(q, best)
	}
}

// Cycle performs one working-cycle fan-out step (spec.md §4.9): it selects
// a concept and one of its task-links, then reasons that task against
// every one of the concept's term-links in turn (not just one at random),
// so that a concept whose task-link and term-link bags happen to be the
// same size never falls into a fixed pairing that starves the other
// combinations. For each term-link that passes the novelty gate, it looks
// up the link's target concept's best belief and runs the rule table once
// against the (task, belief) pair. The selected concept and task-link are
// put back before returning; term-links are only peeked, so their budgets
// mutate in place without disturbing bag placement. Conclusions are
// returned for the caller to admit via AddDerivedTask.
func (m *Memory) Cycle(now int) []*sentence.Task {
	c, ok := m.Concepts.TakeOut()
	if !ok {
		return nil
	}
	defer m.Concepts.PutBack(c, func(x *concept.Concept) *concept.Concept {
		x.Budget = budget.Forget(x.Budget, m.cfg.ConceptForgetRate)
		return x
	})

	tl, ok := c.TaskLinks.TakeOut()
	if !ok {
		return nil
	}
	defer c.TaskLinks.PutBack(tl, func(x *link.TaskLink) *link.TaskLink {
		x.Budget = budget.Forget(x.Budget, m.cfg.TaskLinkForgetRate)
		return x
	})

	taskSentence := tl.Task.Sentence
	if taskSentence.Truth == nil {
		return nil
	}

	var derivedTasks []*sentence.Task
	for _, key := range c.TermLinks.Keys() {
		termLink, ok := c.TermLinks.Peek(key)
		if !ok {
			continue
		}
		if termLink.Target.Equal(taskSentence.Term) {
			continue
		}
		if !m.Novelty.IsNovel(tl.Key(), termLink.Key(), now) {
			continue
		}

		beliefConcept, ok := m.PeekConcept(termLink.Target.Name())
		if !ok {
			continue
		}
		belief, ok := beliefConcept.BestBelief()
		if !ok {
			continue
		}

		conclusions := rule.Derive(m.RuleTable,
			[]term.Term{taskSentence.Term, belief.Term},
			[]truth.Truth{*taskSentence.Truth, *belief.Truth})

		for _, concl := range conclusions {
			m.ruleFirings[concl.Rule]++
			derivedStamp := stamp.Revision(taskSentence.Stamp, belief.Stamp, now, "", false, 0)
			derivedTruth := concl.Truth
			// The parent task's punctuation is copied onto the conclusion
			// (spec.md §4.9 step 6); see DESIGN.md on ambiguity (iii).
			var derivedSentence sentence.Sentence
			if taskSentence.Punctuation == sentence.Goal {
				derivedSentence = sentence.NewGoal(concl.Term, derivedTruth, derivedStamp)
			} else {
				derivedSentence = sentence.NewJudgment(concl.Term, derivedTruth, derivedStamp)
			}

			derivedBudget, updatedTaskBudget := budget.Revise(budget.RevisionInput{
				TaskBudget:     tl.Task.Budget,
				TruthTask:      taskSentence.Truth,
				TruthBelief:    belief.Truth,
				TruthDerived:   &derivedTruth,
				TaskLinkBudget: &tl.Budget,
				TermLinkBudget: &termLink.Budget,
			})
			tl.Task.Budget = updatedTaskBudget

			derivedTasks = append(derivedTasks, sentence.New(derivedSentence, derivedBudget, sentence.Derived))
		}
	}
	return derivedTasks
}
