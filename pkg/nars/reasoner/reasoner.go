package reasoner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cognicore/narscore/pkg/nars/budget"
	"github.com/cognicore/narscore/pkg/nars/memory"
	"github.com/cognicore/narscore/pkg/nars/narsese"
	"github.com/cognicore/narscore/pkg/nars/sentence"
	"github.com/cognicore/narscore/pkg/nars/shortfloat"
	"github.com/cognicore/narscore/pkg/nars/stamp"
)

// Default input budgets (spec.md §6 Defaults: DEFAULT_JUDGMENT_PRIORITY,
// DEFAULT_JUDGMENT_DURABILITY, DEFAULT_QUESTION_PRIORITY,
// DEFAULT_QUESTION_DURABILITY). Quality starts at the judgment confidence
// default for judgments/goals, and at the question priority default for
// questions, which carry no truth value of their own to derive one from.
const (
	DefaultJudgmentPriority   = 0.8
	DefaultJudgmentDurability = 0.5
	DefaultJudgmentConfidence = 0.9
	DefaultQuestionPriority   = 0.9
	DefaultQuestionDurability = 0.9
)

// Config bounds how much work Step does per call.
type Config struct {
	// CyclesPerStep is how many concepts Step visits via Memory.Cycle.
	CyclesPerStep int
	// PromotePerStep is how many derived tasks Step promotes out of the
	// novel-task bag and into the new-task queue before cycling.
	PromotePerStep int
	Memory         memory.Config
}

// DefaultConfig mirrors the classic single-threaded small-memory engine:
// one concept visited, up to three derived tasks promoted, per step.
func DefaultConfig() Config {
	return Config{
		CyclesPerStep:  1,
		PromotePerStep: 3,
		Memory:         memory.DefaultConfig(),
	}
}

// Reasoner is the host-facing entry point: a Memory, a logical Clock, and
// the stamp.Context minting every freshly input sentence's evidential
// base. One Reasoner is one NARS instance (spec.md §3: a Stamp's nar-id
// identifies the instance that produced it).
type Reasoner struct {
	Memory *memory.Memory
	Clock  *Clock
	ctx    *stamp.Context
	cfg    Config
}

// New constructs a Reasoner from cfg, minting a fresh randomly seeded
// stamp.Context.
func New(cfg Config) *Reasoner {
	return &Reasoner{
		Memory: memory.New(cfg.Memory),
		Clock:  NewClock(),
		ctx:    stamp.NewContext(),
		cfg:    cfg,
	}
}

// NewSeeded is New but with a caller-chosen nar-id, for deterministic
// tests and examples (stamp.NewContextSeeded).
func NewSeeded(cfg Config, narID int64) *Reasoner {
	return &Reasoner{
		Memory: memory.New(cfg.Memory),
		Clock:  NewClock(),
		ctx:    stamp.NewContextSeeded(narID),
		cfg:    cfg,
	}
}

// InputNarsese handles one line of host input (spec.md §4.9). A purely
// numeric line runs that many reasoner steps and returns a nil task.
// Anything else advances the clock by one tick, is parsed as Narsese
// stamped with that tick, wrapped in a Task with the punctuation-specific
// default budget (spec.md §6 Defaults) overridden by any explicit
// "$p;d;q$" prefix, and admitted into Memory's new-task queue. The
// returned Task is the same pointer Memory holds, so a caller driving a
// REPL can poll its BestSolution field after subsequent Step calls to
// read back an answer to a question.
func (r *Reasoner) InputNarsese(line string) (*sentence.Task, error) {
	if n, err := strconv.Atoi(strings.TrimSpace(line)); err == nil {
		if n < 0 {
			return nil, fmt.Errorf("reasoner: negative cycle count %d", n)
		}
		r.Run(n)
		return nil, nil
	}

	// Stamp with the tick this input will complete on; the clock itself
	// only advances once the line has parsed, so a rejected input never
	// consumes a tick.
	s, bv, err := narsese.Parse(line, r.Clock.Now()+1, r.ctx)
	if err != nil {
		return nil, err
	}
	r.Clock.Tick()
	b := defaultBudget(s)
	if bv != nil {
		if bv.Priority != nil {
			b.Priority = shortfloat.Clamp(*bv.Priority)
		}
		if bv.Durability != nil {
			b.Durability = shortfloat.Clamp(*bv.Durability)
		}
		if bv.Quality != nil {
			b.Quality = shortfloat.Clamp(*bv.Quality)
		}
	}
	task := sentence.New(s, b, sentence.Input)
	r.Memory.InputTask(task)
	return task, nil
}

func defaultBudget(s sentence.Sentence) budget.Budget {
	switch s.Punctuation {
	case sentence.Question:
		return budget.New(
			shortfloat.MustNew(DefaultQuestionPriority),
			shortfloat.MustNew(DefaultQuestionDurability),
			shortfloat.MustNew(DefaultQuestionPriority))
	default:
		quality := shortfloat.MustNew(DefaultJudgmentConfidence)
		if s.Truth != nil {
			quality = s.Truth.Confidence
		}
		return budget.New(
			shortfloat.MustNew(DefaultJudgmentPriority),
			shortfloat.MustNew(DefaultJudgmentDurability),
			quality)
	}
}

// Step advances the reasoner by one logical tick: it drains the new-task
// queue (immediate local revision, belief/goal table insertion, question
// answering, and link fan-out), promotes a bounded number of previously
// derived tasks back into the new-task queue, then runs the working-cycle
// fan-out CyclesPerStep times. Every task derived along the way — by local
// revision or by a working cycle's rule application — is fed back into the
// novel-task bag so it gets its own turn at fan-out on a later step, and
// also returned to the caller for observation (e.g. a REPL printing
// "Derived: ...").
func (r *Reasoner) Step() []*sentence.Task {
	now := r.Clock.Tick()

	var allDerived []*sentence.Task
	allDerived = append(allDerived, r.Memory.ProcessNewTasks(now)...)

	r.Memory.PromoteNovelTasks(r.cfg.PromotePerStep)
	allDerived = append(allDerived, r.Memory.ProcessNewTasks(now)...)

	for i := 0; i < r.cfg.CyclesPerStep; i++ {
		cycleDerived := r.Memory.Cycle(now)
		allDerived = append(allDerived, cycleDerived...)
	}
	for _, t := range allDerived {
		r.Memory.AddDerivedTask(t)
	}
	return allDerived
}

// Run calls Step steps times, collecting every derived task produced
// along the way.
func (r *Reasoner) Run(steps int) []*sentence.Task {
	var all []*sentence.Task
	for i := 0; i < steps; i++ {
		all = append(all, r.Step()...)
	}
	return all
}
