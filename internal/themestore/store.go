// ABOUTME: ThemeStore: active theme, two-phase timed transition, durable persistence
// ABOUTME: Idle -> Committing -> Settling -> Idle driven by an injected clock; subscribers see every step

package themestore

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mauromedda/themeswitch-go/internal/clock"
	"github.com/mauromedda/themeswitch-go/internal/eventbus"
	"github.com/mauromedda/themeswitch-go/internal/kv"
	pilog "github.com/mauromedda/themeswitch-go/internal/log"
	"github.com/mauromedda/themeswitch-go/pkg/theme"
)

const (
	// DefaultKey is the slot key holding the selected theme ID.
	DefaultKey = "selectedTheme"
	// DefaultDelay is the length of each transition phase.
	DefaultDelay = 150 * time.Millisecond
)

// Phase is the position of the store in a theme transition.
type Phase int

const (
	Idle Phase = iota
	Committing
	Settling
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Committing:
		return "committing"
	case Settling:
		return "settling"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// State is a snapshot of the store.
type State struct {
	Current       theme.ID
	Transitioning bool
	Phase         Phase
}

// PersistenceError reports a failed read or write of the durable slot. The
// store logs these and keeps running on its in-memory state.
type PersistenceError struct {
	Op  string // "read" or "write"
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("theme store %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Option configures a Store.
type Option func(*Store)

// WithDelay sets the duration of each transition phase.
func WithDelay(d time.Duration) Option {
	return func(s *Store) {
		if d >= 0 {
			s.delay = d
		}
	}
}

// WithKey sets the slot key.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// Store owns the active theme. It is safe for concurrent use.
//
// Subscribers are called synchronously, in order, after each state change.
// A subscriber must not call SwitchTheme or Initialize from inside the
// callback; hand the request to another goroutine instead.
type Store struct {
	slot  kv.Store
	clock clock.Clock
	key   string
	delay time.Duration
	bus   *eventbus.Bus[State]

	// pubMu serializes persistence and publication so subscribers observe
	// changes in the order they were made.
	pubMu sync.Mutex

	mu      sync.Mutex
	state   State
	target  theme.ID
	timer   clock.Timer
	gen     uint64
	closed  bool
	lastErr error
}

// New creates a store in the Default theme. Call Initialize to load the
// persisted selection. A nil slot means in-memory only; a nil clock means
// the wall clock.
func New(slot kv.Store, clk clock.Clock, opts ...Option) *Store {
	if slot == nil {
		slot = kv.NewMemory()
	}
	if clk == nil {
		clk = clock.Real{}
	}
	s := &Store{
		slot:  slot,
		clock: clk,
		key:   DefaultKey,
		delay: DefaultDelay,
		bus:   eventbus.New[State](),
		state: State{Current: theme.Default},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize loads the persisted theme, falling back to theme.Default when
// the slot is empty, unreadable, or holds an unknown value. Any in-flight
// transition is abandoned.
func (s *Store) Initialize() State {
	id := theme.Default
	raw, err := s.slot.Get(s.key)
	switch {
	case errors.Is(err, kv.ErrNotFound):
	case err != nil:
		s.recordErr(&PersistenceError{Op: "read", Key: s.key, Err: err})
	default:
		if parsed, ok := theme.Parse(raw); ok {
			id = parsed
		} else {
			pilog.Debug("theme store: ignoring unknown persisted theme %q", raw)
		}
	}

	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	s.mu.Lock()
	s.stopLocked()
	s.state = State{Current: id}
	snap := s.state
	s.mu.Unlock()

	s.bus.Publish(snap)
	return snap
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Current returns the active theme ID.
func (s *Store) Current() theme.ID {
	return s.State().Current
}

// Config returns the resolved configuration of the active theme.
func (s *Store) Config() theme.Config {
	return theme.Lookup(s.Current())
}

// ConfigFor resolves any theme ID. It never fails.
func (s *Store) ConfigFor(id theme.ID) theme.Config {
	return theme.Lookup(id)
}

// LastError returns the most recent persistence failure, or nil.
func (s *Store) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Subscribe registers fn for every state change and returns an unsubscribe
// function.
func (s *Store) Subscribe(fn func(State)) func() {
	return s.bus.Subscribe(fn)
}

// SwitchTheme starts a transition to target and reports whether it was
// accepted. Requests for an unknown theme, for the active theme, or made while
// another transition is in flight are ignored.
func (s *Store) SwitchTheme(target theme.ID) bool {
	if !target.Valid() {
		pilog.Warn("theme store: ignoring switch to unknown theme %q", target)
		return false
	}

	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	s.mu.Lock()
	if s.closed || target == s.state.Current || s.state.Phase != Idle {
		busy := s.state.Phase != Idle && target != s.state.Current
		s.mu.Unlock()
		if busy {
			pilog.Debug("theme store: switch to %s ignored, transition in flight", target)
		}
		return false
	}
	s.gen++
	gen := s.gen
	s.target = target
	s.state.Phase = Committing
	s.state.Transitioning = true
	s.timer = s.clock.AfterFunc(s.delay, func() { s.commit(gen) })
	snap := s.state
	s.mu.Unlock()

	s.bus.Publish(snap)
	return true
}

// commit applies the pending target, persists it, and schedules settle.
func (s *Store) commit(gen uint64) {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	s.mu.Lock()
	if s.closed || gen != s.gen || s.state.Phase != Committing {
		s.mu.Unlock()
		return
	}
	target := s.target
	s.state.Current = target
	s.state.Phase = Settling
	s.timer = s.clock.AfterFunc(s.delay, func() { s.settle(gen) })
	snap := s.state
	s.mu.Unlock()

	if err := s.slot.Set(s.key, string(target)); err != nil {
		s.recordErr(&PersistenceError{Op: "write", Key: s.key, Err: err})
	} else {
		s.recordErr(nil)
	}

	s.bus.Publish(snap)
}

// settle ends the transition.
func (s *Store) settle(gen uint64) {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	s.mu.Lock()
	if s.closed || gen != s.gen || s.state.Phase != Settling {
		s.mu.Unlock()
		return
	}
	s.state.Phase = Idle
	s.state.Transitioning = false
	s.timer = nil
	snap := s.state
	s.mu.Unlock()

	s.bus.Publish(snap)
}

// Close cancels any pending transition step and drops all subscribers. A
// transition cut short before its commit leaves the previous theme active.
func (s *Store) Close() {
	s.mu.Lock()
	s.closed = true
	s.stopLocked()
	s.mu.Unlock()
	s.bus.Clear()
}

// stopLocked cancels the pending timer and invalidates in-flight callbacks.
// Must hold mu.
func (s *Store) stopLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
	s.state.Phase = Idle
	s.state.Transitioning = false
}

// recordErr sets LastError; nil clears it after a successful write.
func (s *Store) recordErr(err error) {
	if err != nil {
		pilog.Warn("%v; continuing with in-memory theme", err)
	}
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
}
