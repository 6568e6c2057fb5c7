package observable

import (
	"github.com/tuannh982/observable-set/utils/collections"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Set is a collection of unique values that notifies listeners whenever its
// membership changes. When a capacity is configured, adding a value to a
// full set first evicts an element according to the replacement policy.
//
// Set is not safe for concurrent use. Listeners run synchronously and may
// call back into the set.
type Set[T comparable] struct {
	config  Config
	store   collections.Set[T]
	recency collections.OrderedSet[T] // nil when unbounded
	log     *log.Entry

	globalListeners [operationCount]*listenerSet[T]
	valueListeners  map[T]*valueBucket[T]
	// once holds the one-shot registrations that are still registered.
	once      map[Handle]struct{}
	locations map[Handle]location[T]
}

// New creates a Set holding values. The initial values are inserted without
// dispatching any events; values beyond the capacity are evicted silently.
func New[T comparable](values []T, opts ...Option) (*Set[T], error) {
	cfg := Config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	s := newSet[T](cfg)
	for _, v := range values {
		s.seed(v)
	}
	s.log.WithFields(log.Fields{
		"capacity": cfg.Capacity,
		"policy":   cfg.ReplacementPolicy,
		"size":     s.Size(),
	}).Debug("created set")
	return s, nil
}

// MustNew is like New, but panics on configuration errors.
func MustNew[T comparable](values []T, opts ...Option) *Set[T] {
	s, err := New(values, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func newSet[T comparable](cfg Config) *Set[T] {
	logger := cfg.Logger
	if logger == nil {
		logger = log.WithField("component", "observable-set")
	}
	s := &Set[T]{
		config:         cfg,
		store:          collections.NewIndexedSet[T](),
		log:            logger,
		valueListeners: make(map[T]*valueBucket[T]),
		once:           make(map[Handle]struct{}),
		locations:      make(map[Handle]location[T]),
	}
	if cfg.Capacity > 0 {
		s.recency = collections.NewLinkedSet[T]()
	}
	return s
}

func (s *Set[T]) bounded() bool {
	return s.config.Capacity > 0
}

func (s *Set[T]) Contains(v T) bool {
	return s.store.Contains(v)
}

func (s *Set[T]) Size() int {
	return s.store.Size()
}

func (s *Set[T]) IsEmpty() bool {
	return s.store.Size() == 0
}

// IsFull reports whether the set is bounded and holds as many elements as
// its capacity. Unbounded sets are never full.
func (s *Set[T]) IsFull() bool {
	return s.bounded() && s.store.Size() >= s.config.Capacity
}

// Capacity returns the configured capacity, zero if unbounded.
func (s *Set[T]) Capacity() int {
	return s.config.Capacity
}

func (s *Set[T]) ReplacementPolicy() ReplacementPolicy {
	return s.config.ReplacementPolicy
}

// Values returns a copy of the current elements. The order is not stable
// across removals.
func (s *Set[T]) Values() []T {
	return s.store.Entries()
}

// HasEvery reports whether all values are members. It is true when no
// values are given.
func (s *Set[T]) HasEvery(values ...T) bool {
	for _, v := range values {
		if !s.store.Contains(v) {
			return false
		}
	}
	return true
}

// HasSome reports whether at least one of values is a member.
func (s *Set[T]) HasSome(values ...T) bool {
	for _, v := range values {
		if s.store.Contains(v) {
			return true
		}
	}
	return false
}

// Xor reports whether exactly one of a and b is a member.
func (s *Set[T]) Xor(a, b T) bool {
	return s.store.Contains(a) != s.store.Contains(b)
}

// Add inserts v and returns whether the set was modified. If the set is at
// capacity, exactly one element is evicted through Remove first, dispatching
// its remove (and possibly empty) events. Adding v then dispatches add,
// followed by full if the set reached its capacity.
//
// Add returns false if listeners of the eviction inserted v themselves. It
// panics with ErrNoEvictionVictim if they filled the freed slot otherwise.
func (s *Set[T]) Add(v T) bool {
	if s.store.Contains(v) {
		return false
	}
	if s.IsFull() {
		s.evict(true)
		if s.store.Contains(v) {
			return false
		}
		if s.IsFull() {
			panic(errors.Wrapf(ErrNoEvictionVictim, "eviction listeners refilled the set before %v was added", v))
		}
	}
	s.insert(v)
	full := s.IsFull()
	s.dispatch(OperationAdd, v)
	if full {
		s.dispatch(OperationFull, v)
	}
	return true
}

// Remove deletes v and returns whether the set was modified. It dispatches
// remove, followed by empty if no elements are left.
func (s *Set[T]) Remove(v T) bool {
	if !s.delete(v) {
		return false
	}
	empty := s.IsEmpty()
	s.dispatch(OperationRemove, v)
	if empty {
		s.dispatch(OperationEmpty, v)
	}
	return true
}

// Clear removes the elements present at the time of the call one by one,
// dispatching the same events as individual calls to Remove would.
func (s *Set[T]) Clear() {
	for _, v := range s.store.Entries() {
		s.Remove(v)
	}
}

// Clone returns a set with the same configuration, elements and listener
// registrations. Elements are copied without dispatching events. Listener
// functions are shared, but the containers holding them are not: Handles
// obtained before the call are valid on both sets and may be removed from
// each independently. Registrations made with ExcludeFromClones and
// one-shot listeners that are already running are not copied.
func (s *Set[T]) Clone() *Set[T] {
	c := newSet[T](s.config)
	c.log = s.log
	values := s.store.Entries()
	if s.recency != nil {
		values = s.recency.Entries()
	}
	for _, v := range values {
		c.insert(v)
	}
	for op, ls := range s.globalListeners {
		if ls != nil {
			c.globalListeners[op] = s.cloneListeners(c, ls)
		}
	}
	for v, b := range s.valueListeners {
		cb := &valueBucket[T]{}
		for op, ls := range b {
			if ls == nil {
				continue
			}
			cls := s.cloneListeners(c, ls)
			if cls.size() == 0 && s.config.FreeUnusedResources {
				continue
			}
			cb[op] = cls
		}
		if !cb.unused() || !s.config.FreeUnusedResources {
			c.valueListeners[v] = cb
		}
	}
	return c
}

// cloneListeners copies the registrations of ls that c inherits, recording
// their locations on c.
func (s *Set[T]) cloneListeners(c *Set[T], ls *listenerSet[T]) *listenerSet[T] {
	cls := newListenerSet[T]()
	for _, r := range ls.snapshot() {
		if r.local || r.spent {
			continue
		}
		cr := *r
		cls.add(&cr)
		c.locations[r.handle] = s.locations[r.handle]
		if r.once {
			c.once[r.handle] = struct{}{}
		}
	}
	return cls
}

func (s *Set[T]) insert(v T) bool {
	if !s.store.Add(v) {
		return false
	}
	if s.recency != nil {
		s.recency.Add(v)
	}
	return true
}

func (s *Set[T]) delete(v T) bool {
	if !s.store.Remove(v) {
		return false
	}
	if s.recency != nil {
		s.recency.Remove(v)
	}
	return true
}

func (s *Set[T]) seed(v T) {
	if s.store.Contains(v) {
		return
	}
	if s.IsFull() {
		s.evict(false)
	}
	s.insert(v)
}

// evict frees one slot. Victims are removed through Remove when notify is
// set, so that their events are dispatched.
func (s *Set[T]) evict(notify bool) {
	victim, err := s.victim()
	if err != nil {
		panic(errors.Wrapf(ErrNoEvictionVictim, "set reports %d of %d elements: %s", s.Size(), s.config.Capacity, err))
	}
	s.log.WithFields(log.Fields{
		"policy": s.config.ReplacementPolicy,
		"victim": victim,
	}).Debug("evicting value")
	var removed bool
	if notify {
		removed = s.Remove(victim)
	} else {
		removed = s.delete(victim)
	}
	if !removed {
		panic(errors.Wrapf(ErrNoEvictionVictim, "victim %v is not a member", victim))
	}
}

func (s *Set[T]) victim() (T, error) {
	switch s.config.ReplacementPolicy {
	case FIFO:
		return s.recency.Front()
	case LIFO:
		return s.recency.Back()
	default:
		panic(s.config.ReplacementPolicy.validate())
	}
}
