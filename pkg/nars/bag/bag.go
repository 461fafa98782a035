package bag

import (
	"container/list"

	"github.com/cognicore/narscore/pkg/nars/shortfloat"
)

// TotalLevels is the number of priority strata a Bag quantizes into
// (spec.md §4.1, TOTAL_LEVEL).
const TotalLevels = 100

// Threshold is the level at or below which a take-out visit yields a
// single item before the Distributor is consulted again; above it, a visit
// drains the whole level's current population first (spec.md §4.1,
// THRESHOLD).
const Threshold = 10

// KeyFunc extracts an item's bag identity.
type KeyFunc[T any] func(item T) string

// PriorityFunc extracts an item's current priority.
type PriorityFunc[T any] func(item T) shortfloat.Value

// MergeFunc combines an existing item with an incoming one sharing the same
// key (spec.md §4.1 put-in collision rule). If nil, the incoming item
// replaces the existing one outright.
type MergeFunc[T any] func(old, incoming T) T

type location struct {
	level int
	elem  *list.Element
}

type level[T any] struct {
	items *list.List
	index map[string]*list.Element
}

func newLevel[T any]() *level[T] {
	return &level[T]{items: list.New(), index: make(map[string]*list.Element)}
}

func (lv *level[T]) empty() bool { return lv.items.Len() == 0 }

func (lv *level[T]) pushBack(key string, item T) {
	el := lv.items.PushBack(item)
	lv.index[key] = el
}

func (lv *level[T]) popFront() T {
	el := lv.items.Front()
	lv.items.Remove(el)
	return el.Value.(T)
}

func (lv *level[T]) removeByKey(key string) (T, bool) {
	el, ok := lv.index[key]
	var zero T
	if !ok {
		return zero, false
	}
	lv.items.Remove(el)
	delete(lv.index, key)
	return el.Value.(T), true
}

// Bag is the generic, capacity-bounded, level-stratified priority container
// used for concepts, task-links, term-links, and task queues (spec.md
// §4.1). Items are addressed by a caller-supplied key, not by identity, so
// a duplicate put-in merges with the existing entry.
type Bag[T any] struct {
	capacity   int
	numLevels  int
	dist       *Distributor
	levels     []*level[T]
	index      map[string]location
	keyFn      KeyFunc[T]
	priorityFn PriorityFunc[T]
	mergeFn    MergeFunc[T]

	// take-out cursor state: the level currently being serviced and how
	// many more items this visit may draw from it.
	cursor    int
	curLevel  int
	remaining int

	mass int
	size int
}

// New builds a Bag with the given capacity. mergeFn may be nil, in which
// case a put-in on an existing key replaces the old item.
func New[T any](capacity int, keyFn KeyFunc[T], priorityFn PriorityFunc[T], mergeFn MergeFunc[T]) *Bag[T] {
	b := &Bag[T]{
		capacity:   capacity,
		numLevels:  TotalLevels,
		dist:       NewDistributor(TotalLevels),
		levels:     make([]*level[T], TotalLevels),
		index:      make(map[string]location),
		keyFn:      keyFn,
		priorityFn: priorityFn,
		mergeFn:    mergeFn,
	}
	for i := range b.levels {
		b.levels[i] = newLevel[T]()
	}
	return b
}

func (b *Bag[T]) levelFor(p shortfloat.Value) int {
	lvl := int(p.Float64() * float64(b.numLevels))
	if lvl < 1 {
		lvl = 1
	}
	if lvl > b.numLevels {
		lvl = b.numLevels
	}
	return lvl
}

// Size is the number of items currently held.
func (b *Bag[T]) Size() int { return b.size }

// Mass is the sum of the contained items' levels, maintained for
// average-priority queries (spec.md §4.1 mass tracking).
func (b *Bag[T]) Mass() int { return b.mass }

// AveragePriority is the mean level of the contained items, scaled back to
// [0,1]; 0 for an empty bag.
func (b *Bag[T]) AveragePriority() float64 {
	if b.size == 0 {
		return 0
	}
	return float64(b.mass) / float64(b.size) / float64(b.numLevels)
}

// Keys returns every key currently held, in no particular order. Used by
// callers (e.g. a concept's term-link fan-out, snapshot reporting) that
// need to address every item directly without disturbing the bag's level
// placement.
func (b *Bag[T]) Keys() []string {
	keys := make([]string, 0, len(b.index))
	for k := range b.index {
		keys = append(keys, k)
	}
	return keys
}

// Contains reports whether key is present.
func (b *Bag[T]) Contains(key string) bool {
	_, ok := b.index[key]
	return ok
}

// Peek returns the item for key without removing it.
func (b *Bag[T]) Peek(key string) (T, bool) {
	loc, ok := b.index[key]
	var zero T
	if !ok {
		return zero, false
	}
	return loc.elem.Value.(T), true
}

// PutIn inserts or merges item into its priority-derived level. When the
// bag is full, the lowest non-empty level gives up one item to make room —
// unless that level is higher than the incoming item's own, in which case
// the incoming item is the one rejected and returned as overflow (spec.md
// §4.1 put-in capacity rule).
func (b *Bag[T]) PutIn(item T) (overflow T, overflowed bool) {
	key := b.keyFn(item)
	if loc, ok := b.index[key]; ok {
		old, _ := b.levels[loc.level-1].removeByKey(key)
		delete(b.index, key)
		b.size--
		b.mass -= loc.level
		if b.mergeFn != nil {
			item = b.mergeFn(old, item)
		}
	}

	lvl := b.levelFor(b.priorityFn(item))

	if b.size >= b.capacity {
		if lowest := b.lowestNonEmptyLevel(); lowest > 0 {
			if lowest > lvl {
				return item, true
			}
			overflow = b.removeFrontAt(lowest)
			overflowed = true
		}
	}

	b.levels[lvl-1].pushBack(key, item)
	b.index[key] = location{level: lvl, elem: b.levels[lvl-1].index[key]}
	b.size++
	b.mass += lvl
	return overflow, overflowed
}

// PutBack reinserts an item that was taken out for processing, applying a
// caller-supplied decay transform first (spec.md §4.1 put-back forgetting).
func (b *Bag[T]) PutBack(item T, decay func(T) T) (overflow T, overflowed bool) {
	if decay != nil {
		item = decay(item)
	}
	return b.PutIn(item)
}

// TakeOut removes and returns one item. While the current level's visit
// counter has budget left and the level is non-empty, items keep coming
// from it; otherwise the Distributor picks the next non-empty level, and
// the counter is set to 1 for a low level (<= Threshold) or the level's
// full current population for a high one.
func (b *Bag[T]) TakeOut() (T, bool) {
	var zero T
	if b.size == 0 {
		return zero, false
	}

	if b.curLevel == 0 || b.remaining <= 0 || b.levels[b.curLevel-1].empty() {
		b.curLevel = b.nextNonEmptyLevel()
		if b.curLevel == 0 {
			return zero, false
		}
		if b.curLevel <= Threshold {
			b.remaining = 1
		} else {
			b.remaining = b.levels[b.curLevel-1].items.Len()
		}
	}

	item := b.removeFrontAt(b.curLevel)
	b.remaining--
	return item, true
}

func (b *Bag[T]) removeFrontAt(lvl int) T {
	item := b.levels[lvl-1].popFront()
	key := b.keyFn(item)
	delete(b.levels[lvl-1].index, key)
	delete(b.index, key)
	b.size--
	b.mass -= lvl
	return item
}

func (b *Bag[T]) nextNonEmptyLevel() int {
	for tries := 0; tries < b.dist.Capacity(); tries++ {
		lvl := b.dist.Pick(b.cursor)
		b.cursor++
		if !b.levels[lvl-1].empty() {
			return lvl
		}
	}
	for lvl := b.numLevels; lvl >= 1; lvl-- {
		if !b.levels[lvl-1].empty() {
			return lvl
		}
	}
	return 0
}

func (b *Bag[T]) lowestNonEmptyLevel() int {
	for lvl := 1; lvl <= b.numLevels; lvl++ {
		if !b.levels[lvl-1].empty() {
			return lvl
		}
	}
	return 0
}

// PickOut removes and returns the item for key regardless of its level.
func (b *Bag[T]) PickOut(key string) (T, bool) {
	loc, ok := b.index[key]
	var zero T
	if !ok {
		return zero, false
	}
	item, _ := b.levels[loc.level-1].removeByKey(key)
	delete(b.index, key)
	b.size--
	b.mass -= loc.level
	return item, true
}
