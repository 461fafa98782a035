package link

import "container/list"

// TermLinkRecordLength is both the recency window, in logical cycles,
// before a (task-link, term-link) pair may be re-considered, and the bound
// on how many term-link records a single task-link keeps; once full, the
// oldest record is displaced (spec.md §4.7, TERM_LINK_RECORD_LENGTH).
const TermLinkRecordLength = 10

// NoveltyHorizon bounds how many task-links' recency records the tracker
// keeps at all; the least-recently-touched task-link's record is evicted
// first (spec.md §4.7, NOVELTY_HORIZON). A plain bounded map with explicit
// LRU eviction is used here rather than a third-party LRU cache, since the
// eviction policy must interleave with per-key recency-window lookups that
// a generic cache's Get/Add interface doesn't expose.
const NoveltyHorizon = 100000

type record struct {
	taskLinkKey string
	order       []string       // term-link keys, oldest first
	lastUsed    map[string]int // term-link key -> logical time of last use
}

// NoveltyTracker gates rule-engine firing on (task-link, term-link) pairs
// that have not already been combined within the last TermLinkRecordLength
// logical cycles (spec.md §4.7): a reasoner working cycle skips derivation
// for a pair it has just tried, so the same conclusion is not rederived
// every time the pair resurfaces, while still allowing a revisit once the
// recency window has passed.
type NoveltyTracker struct {
	capacity int
	lru      *list.List
	index    map[string]*list.Element
}

// NewNoveltyTracker builds a tracker bounded to NoveltyHorizon task-link
// records.
func NewNoveltyTracker() *NoveltyTracker {
	return &NoveltyTracker{
		capacity: NoveltyHorizon,
		lru:      list.New(),
		index:    make(map[string]*list.Element),
	}
}

// IsNovel reports whether (taskLinkKey, termLinkKey) is outside the
// recency window at logical time now, recording the visit when it is. A
// pair inside the window is not novel and its recorded time is left
// untouched, so the window measures from the last derivation, not the
// last refusal.
func (n *NoveltyTracker) IsNovel(taskLinkKey, termLinkKey string, now int) bool {
	el, ok := n.index[taskLinkKey]
	var rec *record
	if ok {
		rec = el.Value.(*record)
		n.lru.MoveToFront(el)
	} else {
		rec = &record{taskLinkKey: taskLinkKey, lastUsed: make(map[string]int)}
		el = n.lru.PushFront(rec)
		n.index[taskLinkKey] = el
		n.evictOverflow()
	}

	if t0, seen := rec.lastUsed[termLinkKey]; seen {
		if now < t0+TermLinkRecordLength {
			return false
		}
		rec.lastUsed[termLinkKey] = now
		return true
	}

	rec.order = append(rec.order, termLinkKey)
	rec.lastUsed[termLinkKey] = now
	if len(rec.order) > TermLinkRecordLength {
		oldest := rec.order[0]
		rec.order = rec.order[1:]
		delete(rec.lastUsed, oldest)
	}
	return true
}

func (n *NoveltyTracker) evictOverflow() {
	for len(n.index) > n.capacity {
		back := n.lru.Back()
		if back == nil {
			return
		}
		rec := back.Value.(*record)
		delete(n.index, rec.taskLinkKey)
		n.lru.Remove(back)
	}
}
