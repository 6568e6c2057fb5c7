package collections

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// indexedSet keeps its values in a dense slice and maps every value to its
// slot, so that Contains, Add and Remove all run in constant time.
//
// Remove moves the last value into the freed slot. The order returned by
// Entries is therefore not stable across removals.
type indexedSet[V comparable] struct {
	slots []V
	index map[V]int
}

// NewIndexedSet creates a Set seeded with values, in which Contains, Add
// and Remove run in constant time. Duplicates are collapsed onto their first
// occurrence. Entries is not stable across removals.
func NewIndexedSet[V comparable](values ...V) Set[V] {
	s := &indexedSet[V]{
		slots: make([]V, 0, len(values)),
		index: make(map[V]int, len(values)),
	}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

func (s *indexedSet[V]) Contains(v V) bool {
	_, ok := s.index[v]
	return ok
}

func (s *indexedSet[V]) Add(v V) bool {
	if s.Contains(v) {
		return false
	}
	s.index[v] = len(s.slots)
	s.slots = append(s.slots, v)
	return true
}

func (s *indexedSet[V]) Remove(v V) bool {
	i, ok := s.index[v]
	if !ok {
		return false
	}
	last := len(s.slots) - 1
	if i > last || s.slots[i] != v {
		panic(fmt.Sprintf("indexed set out of sync: value recorded at slot %d of %d", i, len(s.slots)))
	}
	moved := s.slots[last]
	s.slots[i] = moved
	s.index[moved] = i
	var zero V
	s.slots[last] = zero
	s.slots = s.slots[:last]
	// When v was the last value, moved == v and the entry written above
	// is dropped here.
	delete(s.index, v)
	return true
}

func (s *indexedSet[V]) Size() int {
	return len(s.slots)
}

// Entries returns a copy of the current slot layout.
func (s *indexedSet[V]) Entries() []V {
	return slices.Clone(s.slots)
}
