package observable

import (
	"github.com/tuannh982/observable-set/utils/collections"
)

// Listener is invoked with the value an event is about, the operation that
// produced it and the set it happened on.
type Listener[T comparable] func(value T, op Operation, set *Set[T])

// Handle identifies a listener registration. Handles are returned by the On
// family of methods and are the only way to remove a registration, as
// functions cannot be compared in Go. The zero Handle matches nothing.
type Handle struct {
	v *byte
}

func newHandle() Handle {
	return Handle{v: new(byte)}
}

// ListenOption customizes a listener registration.
type ListenOption func(*listenOptions)

type listenOptions struct {
	once  bool
	local bool
}

// ListenOnce removes the listener after its first invocation.
func ListenOnce() ListenOption {
	return func(o *listenOptions) { o.once = true }
}

// ExcludeFromClones keeps the registration on the set it was made on. Sets
// returned by Clone do not inherit it.
func ExcludeFromClones() ListenOption {
	return func(o *listenOptions) { o.local = true }
}

type registration[T comparable] struct {
	handle Handle
	fn     Listener[T]
	once   bool
	local  bool
	// spent is set right before a one-shot listener runs. Dispatch passes
	// that still hold the registration skip it, even once it is removed.
	spent bool
}

// listenerSet holds registrations in the order they were made.
type listenerSet[T comparable] struct {
	order collections.OrderedSet[Handle]
	regs  map[Handle]*registration[T]
}

func newListenerSet[T comparable]() *listenerSet[T] {
	return &listenerSet[T]{
		order: collections.NewLinkedSet[Handle](),
		regs:  make(map[Handle]*registration[T]),
	}
}

func (ls *listenerSet[T]) add(r *registration[T]) {
	ls.order.Add(r.handle)
	ls.regs[r.handle] = r
}

func (ls *listenerSet[T]) remove(h Handle) bool {
	if !ls.order.Remove(h) {
		return false
	}
	delete(ls.regs, h)
	return true
}

func (ls *listenerSet[T]) size() int {
	if ls == nil {
		return 0
	}
	return ls.order.Size()
}

// snapshot captures the current membership. It returns nil without
// allocating when ls holds nothing.
func (ls *listenerSet[T]) snapshot() []*registration[T] {
	if ls.size() == 0 {
		return nil
	}
	handles := ls.order.Entries()
	regs := make([]*registration[T], 0, len(handles))
	for _, h := range handles {
		regs = append(regs, ls.regs[h])
	}
	return regs
}

// valueBucket holds the listeners of a single value, per operation. A nil
// entry means no set has been allocated for that operation.
type valueBucket[T comparable] [operationCount]*listenerSet[T]

func (b *valueBucket[T]) unused() bool {
	for _, ls := range b {
		if ls != nil {
			return false
		}
	}
	return true
}

// location records where a registration is stored.
type location[T comparable] struct {
	op     Operation
	value  T
	scoped bool
}
