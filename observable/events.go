package observable

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// On registers fn for every event of kind op, whatever the value.
func (s *Set[T]) On(op Operation, fn Listener[T], opts ...ListenOption) Handle {
	ls := s.globalListeners[mustBeValid(op)]
	if ls == nil {
		ls = newListenerSet[T]()
		s.globalListeners[op] = ls
	}
	return s.register(ls, location[T]{op: op}, fn, opts)
}

// OnValue registers fn for events of kind op about v only.
func (s *Set[T]) OnValue(op Operation, v T, fn Listener[T], opts ...ListenOption) Handle {
	mustBeValid(op)
	b, ok := s.valueListeners[v]
	if !ok {
		b = &valueBucket[T]{}
		s.valueListeners[v] = b
	}
	ls := b[op]
	if ls == nil {
		ls = newListenerSet[T]()
		b[op] = ls
	}
	return s.register(ls, location[T]{op: op, value: v, scoped: true}, fn, opts)
}

// Once registers fn for the next event of kind op.
func (s *Set[T]) Once(op Operation, fn Listener[T]) Handle {
	return s.On(op, fn, ListenOnce())
}

// OnceValue registers fn for the next event of kind op about v.
func (s *Set[T]) OnceValue(op Operation, v T, fn Listener[T]) Handle {
	return s.OnValue(op, v, fn, ListenOnce())
}

func (s *Set[T]) register(ls *listenerSet[T], loc location[T], fn Listener[T], opts []ListenOption) Handle {
	var o listenOptions
	for _, opt := range opts {
		opt(&o)
	}
	r := &registration[T]{
		handle: newHandle(),
		fn:     fn,
		once:   o.once,
		local:  o.local,
	}
	ls.add(r)
	s.locations[r.handle] = loc
	if r.once {
		s.once[r.handle] = struct{}{}
	}
	return r.handle
}

// Off removes the registration identified by h. It returns false if h is
// not registered on this set.
func (s *Set[T]) Off(h Handle) bool {
	loc, ok := s.locations[h]
	if !ok {
		return false
	}
	delete(s.locations, h)
	delete(s.once, h)
	if !loc.scoped {
		s.globalListeners[loc.op].remove(h)
		return true
	}
	b := s.valueListeners[loc.value]
	ls := b[loc.op]
	ls.remove(h)
	if s.config.FreeUnusedResources && ls.size() == 0 {
		b[loc.op] = nil
		if b.unused() {
			delete(s.valueListeners, loc.value)
			s.log.WithFields(log.Fields{
				"value":     loc.value,
				"operation": loc.op,
			}).Trace("released listener storage")
		}
	}
	return true
}

// dispatch runs the global listeners of op, followed by the listeners
// registered for op on v. Both groups are captured before any listener
// runs, so registrations made during the dispatch wait for the next one.
func (s *Set[T]) dispatch(op Operation, v T) {
	global := s.globalListeners[op].snapshot()
	var scoped []*registration[T]
	if b, ok := s.valueListeners[v]; ok {
		scoped = b[op].snapshot()
	}
	s.fire(global, op, v)
	s.fire(scoped, op, v)
}

// fire invokes regs in order. A listener that is removed while the pass
// runs is still invoked. One-shot listeners are marked as spent before
// being invoked, so that no other pass runs them again, and removed
// afterwards.
func (s *Set[T]) fire(regs []*registration[T], op Operation, v T) {
	for _, r := range regs {
		if r.once {
			if r.spent {
				continue
			}
			r.spent = true
		}
		r.fn(v, op, s)
		if r.once {
			s.Off(r.handle)
		}
	}
}

func mustBeValid(op Operation) Operation {
	if !op.valid() {
		panic(errors.Wrapf(ErrUnknownOperation, "%d", int(op)))
	}
	return op
}
