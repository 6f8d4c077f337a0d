// Package authstate holds the process-wide authentication state of the front
// server and broadcasts the "is logged in" signal to its observers.
package authstate

import (
	"context"
	"sync"

	"yogastudio/web/internal/models"
)

// Observer receives the logged-in flag. It runs synchronously inside the
// publishing call and must not call back into the State that invoked it.
type Observer func(loggedIn bool)

// State is the single source of truth for the current identity. The zero
// value is not usable; construct it with New.
type State struct {
	// publish serializes mutations with their broadcast so observers see
	// changes in the order they happened.
	publish sync.Mutex

	mu        sync.RWMutex
	identity  *models.SessionIdentity
	observers map[uint64]Observer
	nextID    uint64
}

// New returns a logged-out State.
func New() *State {
	return &State{
		observers: make(map[uint64]Observer),
	}
}

// LogIn stores identity and publishes true. Calling it while logged in
// replaces the identity and publishes true again.
func (s *State) LogIn(identity models.SessionIdentity) {
	s.publish.Lock()
	defer s.publish.Unlock()

	s.mu.Lock()
	stored := identity
	s.identity = &stored
	observers := s.snapshotLocked()
	s.mu.Unlock()

	broadcast(observers, true)
}

// LogOut clears the identity and publishes false. It is a no-op when no one
// is logged in.
func (s *State) LogOut() {
	s.publish.Lock()
	defer s.publish.Unlock()

	s.mu.Lock()
	if s.identity == nil {
		s.mu.Unlock()
		return
	}
	s.identity = nil
	observers := s.snapshotLocked()
	s.mu.Unlock()

	broadcast(observers, false)
}

// LogOutToken logs out only while the current identity still carries token,
// so a stale check cannot end a newer login.
func (s *State) LogOutToken(token string) bool {
	s.publish.Lock()
	defer s.publish.Unlock()

	s.mu.Lock()
	if s.identity == nil || s.identity.Token != token {
		s.mu.Unlock()
		return false
	}
	s.identity = nil
	observers := s.snapshotLocked()
	s.mu.Unlock()

	broadcast(observers, false)
	return true
}

func (s *State) Identity() (models.SessionIdentity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.identity == nil {
		return models.SessionIdentity{}, false
	}
	return *s.identity, true
}

func (s *State) IsLogged() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity != nil
}

func (s *State) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity != nil && s.identity.Admin
}

// Token returns the bearer token of the current identity, if any.
func (s *State) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.identity == nil {
		return ""
	}
	return s.identity.Token
}

// Subscribe registers fn and immediately calls it with the current flag.
// The returned func removes the observer; it is safe to call more than once.
func (s *State) Subscribe(fn Observer) (cancel func()) {
	s.publish.Lock()
	defer s.publish.Unlock()

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	current := s.identity != nil
	s.mu.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.observers, id)
			s.mu.Unlock()
		})
	}
}

// Watch returns a channel carrying the current flag followed by every
// change until ctx is done, at which point the channel is closed. The
// channel holds only the latest value: a slow reader skips intermediate
// states instead of stalling the publisher.
func (s *State) Watch(ctx context.Context) <-chan bool {
	ch := make(chan bool, 1)

	var (
		mu     sync.Mutex
		closed bool
	)
	cancel := s.Subscribe(func(loggedIn bool) {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		select {
		case <-ch:
		default:
		}
		ch <- loggedIn
	})

	go func() {
		<-ctx.Done()
		cancel()
		mu.Lock()
		closed = true
		close(ch)
		mu.Unlock()
	}()

	return ch
}

// Observers reports how many observers are registered.
func (s *State) Observers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.observers)
}

func (s *State) snapshotLocked() []Observer {
	out := make([]Observer, 0, len(s.observers))
	for _, fn := range s.observers {
		out = append(out, fn)
	}
	return out
}

func broadcast(observers []Observer, loggedIn bool) {
	for _, fn := range observers {
		fn(loggedIn)
	}
}
