package collections

// Set is a collection of unique values. Add and Remove report whether the
// collection was modified; adding a present value or removing an absent one
// is a no-op.
type Set[V any] interface {
	Contains(v V) bool
	Add(v V) bool
	Remove(v V) bool
	Size() int
	Entries() []V
}

// OrderedSet is a Set that remembers the order in which values were added.
// Entries lists values from oldest to newest.
type OrderedSet[V any] interface {
	Set[V]
	// Front returns the oldest value.
	Front() (V, error)
	// Back returns the newest value.
	Back() (V, error)
}
