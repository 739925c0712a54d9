package store

import (
	"log/slog"
	"sync"

	"github.com/m96-chan/slacko-teams/internal/action"
)

// Reducer computes the state that follows s after a.
type Reducer[S any] func(s S, a action.Action) S

// Store owns one state value. Dispatch calls never overlap, so the reducer
// runs single-threaded even when actions arrive from several goroutines.
type Store[S comparable] struct {
	mu        sync.Mutex
	state     S
	reduce    Reducer[S]
	subs      map[int]func(S)
	observers map[int]func(action.Action)
	nextSub   int

	// pending holds dispatches not yet delivered, oldest first. Only the
	// goroutine that set delivering drains it.
	pending    []dispatched[S]
	delivering bool

	logActions   bool
	historyLimit int
	history      []action.Type
}

type dispatched[S any] struct {
	action  action.Action
	state   S
	changed bool
}

// Option configures a Store.
type Option func(*options)

type options struct {
	logActions   bool
	historyLimit int
}

// WithActionLog logs every dispatched action type at debug level.
func WithActionLog(enabled bool) Option {
	return func(o *options) { o.logActions = enabled }
}

// WithHistory keeps the types of the last n dispatched actions.
func WithHistory(n int) Option {
	return func(o *options) { o.historyLimit = max(n, 0) }
}

// New returns a store starting at initial.
func New[S comparable](initial S, reduce Reducer[S], opts ...Option) *Store[S] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Store[S]{
		state:        initial,
		reduce:       reduce,
		subs:         make(map[int]func(S)),
		observers:    make(map[int]func(action.Action)),
		logActions:   o.logActions,
		historyLimit: o.historyLimit,
	}
}

// State returns the current snapshot.
func (s *Store[S]) State() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch runs the reducer and notifies subscribers when the state changed.
// Notifications are delivered in dispatch order. If another Dispatch is
// already delivering, including one further up the caller's own stack, the
// notification is queued for it and Dispatch returns once the state is
// updated.
func (s *Store[S]) Dispatch(a action.Action) {
	s.mu.Lock()
	prev := s.state
	next := s.reduce(prev, a)
	s.state = next
	s.record(a.Type())
	s.pending = append(s.pending, dispatched[S]{action: a, state: next, changed: next != prev})
	if s.delivering {
		s.mu.Unlock()
		return
	}
	s.delivering = true
	s.mu.Unlock()

	s.deliver()
}

// deliver drains pending, calling subscribers and observers without holding
// the lock.
func (s *Store[S]) deliver() {
	for {
		s.mu.Lock()
		if len(s.pending) == 0 {
			s.delivering = false
			s.mu.Unlock()
			return
		}
		d := s.pending[0]
		s.pending[0] = dispatched[S]{}
		s.pending = s.pending[1:]

		var subs []func(S)
		if d.changed {
			subs = make([]func(S), 0, len(s.subs))
			for _, fn := range s.subs {
				subs = append(subs, fn)
			}
		}
		observers := make([]func(action.Action), 0, len(s.observers))
		for _, fn := range s.observers {
			observers = append(observers, fn)
		}
		s.mu.Unlock()

		if s.logActions {
			slog.Debug("dispatch", "type", d.action.Type(), "changed", d.changed)
		}
		for _, fn := range subs {
			fn(d.state)
		}
		for _, fn := range observers {
			fn(d.action)
		}
	}
}

// Subscribe registers fn to be called with each new state. The returned
// func removes the subscription.
func (s *Store[S]) Subscribe(fn func(S)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Observe registers fn to be called with every dispatched action, after
// state subscribers, whether or not the state changed. It is the hook for
// side effects.
func (s *Store[S]) Observe(fn func(action.Action)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.observers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.observers, id)
	}
}

// History returns the recorded action types, oldest first.
func (s *Store[S]) History() []action.Type {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]action.Type, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Store[S]) record(t action.Type) {
	if s.historyLimit == 0 {
		return
	}
	if len(s.history) == s.historyLimit {
		copy(s.history, s.history[1:])
		s.history = s.history[:len(s.history)-1]
	}
	s.history = append(s.history, t)
}
