package collections

type linkedSet[V comparable] struct {
	// Circular list; head.newer is the oldest element, head.older the
	// newest.
	head     linkedElement[V]
	elements map[V]*linkedElement[V]
}

type linkedElement[V comparable] struct {
	older *linkedElement[V]
	newer *linkedElement[V]
	value V
}

// NewLinkedSet creates an OrderedSet backed by a doubly linked list. Values
// can be removed from any position in constant time.
func NewLinkedSet[V comparable]() OrderedSet[V] {
	s := &linkedSet[V]{
		elements: make(map[V]*linkedElement[V]),
	}
	s.head.older = &s.head
	s.head.newer = &s.head
	return s
}

func (s *linkedSet[V]) Contains(v V) bool {
	_, ok := s.elements[v]
	return ok
}

// Add appends v as the newest element. It returns false if v is already
// present, in which case its position is left untouched.
func (s *linkedSet[V]) Add(v V) bool {
	if s.Contains(v) {
		return false
	}
	e := &linkedElement[V]{value: v}
	e.older = s.head.older
	e.newer = &s.head
	e.older.newer = e
	e.newer.older = e
	s.elements[v] = e
	return true
}

func (s *linkedSet[V]) Remove(v V) bool {
	e, ok := s.elements[v]
	if !ok {
		return false
	}
	e.older.newer = e.newer
	e.newer.older = e.older
	e.older = nil
	e.newer = nil
	delete(s.elements, v)
	return true
}

func (s *linkedSet[V]) Size() int {
	return len(s.elements)
}

func (s *linkedSet[V]) Front() (v V, err error) {
	if s.Size() == 0 {
		return v, ErrCollectionEmpty
	}
	return s.head.newer.value, nil
}

func (s *linkedSet[V]) Back() (v V, err error) {
	if s.Size() == 0 {
		return v, ErrCollectionEmpty
	}
	return s.head.older.value, nil
}

// Entries returns the elements from oldest to newest.
func (s *linkedSet[V]) Entries() []V {
	arr := make([]V, 0, s.Size())
	for e := s.head.newer; e != &s.head; e = e.newer {
		arr = append(arr, e.value)
	}
	return arr
}
