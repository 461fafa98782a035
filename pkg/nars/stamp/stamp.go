// Package stamp implements the evidential base and temporal metadata
// attached to every NARS sentence: the Stamp type, overlap detection, and
// the revision/eternalization combinators spec.md §3 and §4.5 describe.
//
// Every new Stamp mixes a process-wide, randomly sampled 64-bit "nar-id"
// with a monotonic input-serial. The nar-id is taken from the entropy bytes
// of a ULID minted through the same github.com/oklog/ulid/v2 monotonic
// entropy source the teacher's pkg/korel/cards package uses to mint card
// IDs; the serial is a plain per-Context counter.
package stamp

import (
	"crypto/rand"
	"fmt"
	"math"
	"sync"

	"github.com/oklog/ulid/v2"
)

// Eternal is the sentinel occurrence time marking an atemporal sentence.
const Eternal = math.MinInt32

// MaxEvidentialBaseLength bounds how many evidence entries a Stamp carries.
const MaxEvidentialBaseLength = 20000

// Duration is the default temporal distance a sequential/implication
// interval adds between two revised occurrence times (spec.md §6).
const Duration = 5

// Tense tags a sentence's temporal standing relative to the reasoner clock.
type Tense int

const (
	TenseNone Tense = iota
	TensePast
	TensePresent
	TenseFuture
	TenseEternal
)

// Entry is one evidential-base record: which NARS instance produced a
// sentence, and that instance's monotonic input serial for it.
type Entry struct {
	NarID  int64
	Serial int64
}

// Key is the string used for overlap comparison (spec.md §3: "string-compared").
func (e Entry) Key() string { return fmt.Sprintf("%d:%d", e.NarID, e.Serial) }

// Stamp is the evidential base plus temporal metadata attached to a sentence.
type Stamp struct {
	Evidence       []Entry
	CreationTime   int
	OccurrenceTime int
	Tense          Tense
}

// IsEternal reports whether the stamp's occurrence time is the sentinel.
func (s Stamp) IsEternal() bool { return s.OccurrenceTime == Eternal }

// Same reports whether two stamps carry the identical evidential base and
// occurrence time, ignoring creation time — the duplicate-evidence test
// Concept.ProcessJudgment applies before admitting a belief (spec.md §4.4
// step 2).
func Same(a, b Stamp) bool {
	if a.OccurrenceTime != b.OccurrenceTime || len(a.Evidence) != len(b.Evidence) {
		return false
	}
	for i := range a.Evidence {
		if a.Evidence[i] != b.Evidence[i] {
			return false
		}
	}
	return true
}

// Overlaps reports whether two stamps share at least one evidence entry.
// Overlap is symmetric by construction (set intersection).
func Overlaps(a, b Stamp) bool {
	seen := make(map[string]struct{}, len(a.Evidence))
	for _, e := range a.Evidence {
		seen[e.Key()] = struct{}{}
	}
	for _, e := range b.Evidence {
		if _, ok := seen[e.Key()]; ok {
			return true
		}
	}
	return false
}

// Context is the process-wide (or test-scoped) source of nar-id and
// monotonic input serials. Construct one per reasoner instance; tests
// should use NewContextSeeded for determinism (spec.md §9: "Tests should
// seed the RNG for determinism").
type Context struct {
	mu      sync.Mutex
	narID   int64
	serial  int64
	entropy *ulid.MonotonicEntropy
}

// NewContext creates a Context with a randomly sampled nar-id.
func NewContext() *Context {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id := ulid.MustNew(ulid.Now(), entropy)
	// Bytes 0-5 of a ULID are its millisecond timestamp; bytes 8-15 are
	// random entropy.
	narID := int64(id[8])<<56 | int64(id[9])<<48 | int64(id[10])<<40 | int64(id[11])<<32 |
		int64(id[12])<<24 | int64(id[13])<<16 | int64(id[14])<<8 | int64(id[15])
	return &Context{narID: narID, entropy: entropy}
}

// NewContextSeeded creates a Context with a caller-chosen nar-id, for
// deterministic tests.
func NewContextSeeded(narID int64) *Context {
	return &Context{narID: narID, entropy: ulid.Monotonic(rand.Reader, 0)}
}

// NarID returns this context's fixed instance identifier.
func (c *Context) NarID() int64 { return c.narID }

// NextSerial returns the next monotonic input serial.
func (c *Context) NextSerial() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.serial++
	return c.serial
}

// New mints a fresh single-entry Stamp for newly input (non-derived)
// sentences.
func (c *Context) New(creationTime, occurrenceTime int, tense Tense) Stamp {
	return Stamp{
		Evidence:       []Entry{{NarID: c.narID, Serial: c.NextSerial()}},
		CreationTime:   creationTime,
		OccurrenceTime: occurrenceTime,
		Tense:          tense,
	}
}

// Revision combines two stamps per spec.md §4.5: evidential bases are
// interleaved (zipped then flattened) and truncated to
// MaxEvidentialBaseLength; creation time is the reasoner's current logical
// clock; occurrence time is the max of the two non-eternal times (or
// Eternal if both are eternal); an interval is added or subtracted
// depending on the copula/connector driving the revision, optionally
// negated by reverseOrder, plus an extra tBias.
func Revision(s1, s2 Stamp, now int, orderMark string, reverseOrder bool, tBias int) Stamp {
	evidence := interleave(s1.Evidence, s2.Evidence)
	if len(evidence) > MaxEvidentialBaseLength {
		evidence = evidence[:MaxEvidentialBaseLength]
	}

	occurrence := maxOccurrence(s1.OccurrenceTime, s2.OccurrenceTime)
	if occurrence != Eternal {
		interval := intervalFor(orderMark)
		if reverseOrder {
			interval = -interval
		}
		occurrence += interval + tBias
	}

	tense := s1.Tense
	if occurrence == Eternal {
		tense = TenseEternal
	}

	return Stamp{
		Evidence:       evidence,
		CreationTime:   now,
		OccurrenceTime: occurrence,
		Tense:          tense,
	}
}

// Eternalize converts a temporal stamp into an atemporal one, preserving
// its evidential base and creation time.
func Eternalize(s Stamp) Stamp {
	return Stamp{
		Evidence:       s.Evidence,
		CreationTime:   s.CreationTime,
		OccurrenceTime: Eternal,
		Tense:          TenseEternal,
	}
}

func intervalFor(orderMark string) int {
	switch orderMark {
	case "&/", "=/>", "</>":
		return Duration
	case "=\\>":
		return -Duration
	default:
		return 0
	}
}

func maxOccurrence(a, b int) int {
	if a == Eternal && b == Eternal {
		return Eternal
	}
	if a == Eternal {
		return b
	}
	if b == Eternal {
		return a
	}
	if a > b {
		return a
	}
	return b
}

func interleave(a, b []Entry) []Entry {
	out := make([]Entry, 0, len(a)+len(b))
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if i < len(a) {
			out = append(out, a[i])
		}
		if i < len(b) {
			out = append(out, b[i])
		}
	}
	return out
}
