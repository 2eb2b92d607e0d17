// Package session holds the client's authentication state: the Store is the
// single process-wide cache of credential and identity, and the Manager is
// its sole writer, driving the bootstrap/login/logout lifecycle against the
// remote API.
package session

import (
	"context"
	"sync"

	"github.com/Yokesh-4040/volunteer-hub-client/internal/client/credentials"
	"github.com/Yokesh-4040/volunteer-hub-client/internal/client/models"
)

// State is a snapshot of the session. Authenticated holds exactly when both
// the token and the user record are present.
type State struct {
	Token         string
	User          *models.UserRecord
	Authenticated bool
	Loading       bool
}

// Store keeps the current State, mirrors every token change into the durable
// credential slot, and notifies subscribers on each committed change.
//
// Construct one Store per process and inject it; setters are package-private
// so only the Manager writes.
type Store struct {
	slot credentials.Repository

	mu     sync.Mutex
	state  State
	subs   map[int]func(State)
	nextID int
}

func NewStore(slot credentials.Repository) *Store {
	return &Store{slot: slot, subs: make(map[int]func(State))}
}

// State returns a snapshot; the user record is deep-copied so callers cannot
// mutate the store through it.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers fn to run after every committed state change, with the
// new snapshot. The returned function cancels the subscription.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) snapshotLocked() State {
	st := s.state
	st.User = st.User.Clone()
	return st
}

// commit applies mutate under the lock, re-derives Authenticated, and
// notifies subscribers outside the lock.
func (s *Store) commit(mutate func(*State)) {
	s.mu.Lock()
	mutate(&s.state)
	s.state.Authenticated = s.state.Token != "" && s.state.User != nil
	st := s.snapshotLocked()
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(st)
	}
}

func (s *Store) setLoading(v bool) {
	s.commit(func(st *State) { st.Loading = v })
}

// setToken writes through to the credential slot before updating memory;
// a failed write leaves the state untouched.
func (s *Store) setToken(ctx context.Context, token string) error {
	if err := s.slot.Store(ctx, token); err != nil {
		return err
	}
	s.commit(func(st *State) { st.Token = token })
	return nil
}

func (s *Store) setUser(u *models.UserRecord) {
	s.commit(func(st *State) { st.User = u })
}

// reset empties the credential slot and the in-memory state. Memory is reset
// even when the slot delete fails, so the session never keeps using a
// credential the caller asked to drop.
func (s *Store) reset(ctx context.Context) error {
	err := s.slot.Clear(ctx)
	s.commit(func(st *State) {
		st.Token = ""
		st.User = nil
	})
	return err
}

func (s *Store) loadToken(ctx context.Context) (string, error) {
	return s.slot.Load(ctx)
}
