// Package reasoner ties Memory, the narsese parser, and a logical clock
// together into the single entry point a host program drives: feed lines
// of Narsese in, step the working cycle, read back answers (spec.md §4.9,
// §7). Grounded on the teacher's pkg/korel.Korel facade, whose Options/New
// constructor wires a store, an ingest pipeline, and an inference engine
// behind one small public surface — the same shape Reasoner wires Memory,
// the narsese parser, and the stamp context behind here.
package reasoner

// Clock is the reasoner's logical time source: a monotonically increasing
// step counter, not wall-clock time (spec.md §3: "now is the reasoner's
// logical clock"). Every working cycle and every freshly parsed input
// sentence is stamped with the clock's current value.
type Clock struct {
	now int
}

// NewClock starts a Clock at zero.
func NewClock() *Clock { return &Clock{} }

// Now returns the current logical time without advancing it.
func (c *Clock) Now() int { return c.now }

// Tick advances the clock by one step and returns the new value.
func (c *Clock) Tick() int {
	c.now++
	return c.now
}
