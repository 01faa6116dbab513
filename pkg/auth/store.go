// Copyright 2025 The AdsFusion Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package auth

import (
	"sync"
	"time"

	"github.com/go-kit/kit/log"

	"github.com/adsfusion/adsfusion/pkg/localstore"
)

// Store owns the session user and the registered-email directory.
//
// Mutations are serialized behind mu, held across the simulated
// latency, so two in-flight operations can't clobber each other's
// snapshot write. stateMu guards the fields readers touch and is
// never held while sleeping, so Loading and User stay responsive
// during a mutation.
type Store struct {
	mu sync.Mutex

	stateMu    sync.RWMutex
	current    *User
	registered map[string]bool
	emails     []string // directory in insertion order, as persisted
	loading    bool
	lastErr    error

	db     *localstore.Store
	logger log.Logger
	delay  time.Duration
}

// NewStore loads any persisted session and directory, re-entering the
// authenticated state directly when a session user was stored. Corrupt
// or unreadable snapshots are logged and treated as absent.
func NewStore(db *localstore.Store, logger log.Logger, delay time.Duration) *Store {
	s := &Store{
		db:         db,
		logger:     logger,
		registered: make(map[string]bool),
		delay:      delay,
	}

	var u User
	found, err := db.ReadJSON(localstore.UserKey, &u)
	if err != nil {
		logger.Log("auth", err)
	} else if found {
		s.current = &u
	}

	var emails []string
	if _, err := db.ReadJSON(localstore.RegisteredUsersKey, &emails); err != nil {
		logger.Log("auth", err)
	}
	for i := range emails {
		if !s.registered[emails[i]] {
			s.registered[emails[i]] = true
			s.emails = append(s.emails, emails[i])
		}
	}
	return s
}

// User returns a copy of the session user, or nil when signed out.
func (s *Store) User() *User {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

// IsAuthenticated reports whether a session user exists.
func (s *Store) IsAuthenticated() bool {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.current != nil
}

// Loading reports whether a mutation is in flight.
func (s *Store) Loading() bool {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.loading
}

// LastError returns the error from the most recent failed operation.
// Starting a new operation clears it.
func (s *Store) LastError() error {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.lastErr
}

// IsRegistered checks the directory after the simulated remote-lookup
// delay. It has no error path.
func (s *Store) IsRegistered(email string) bool {
	time.Sleep(s.delay)
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.registered[email]
}

func (s *Store) begin() {
	s.stateMu.Lock()
	s.loading = true
	s.lastErr = nil
	s.stateMu.Unlock()
}

func (s *Store) end() {
	s.stateMu.Lock()
	s.loading = false
	s.stateMu.Unlock()
}

// fail records err as the store's visible error state and bumps the
// failure counter. State the operation would have mutated is untouched.
func (s *Store) fail(method string, err error) error {
	s.stateMu.Lock()
	s.lastErr = err
	s.stateMu.Unlock()
	authFailures.With("method", method).Add(1)
	return err
}

// setSession installs u as the current user and persists it before
// returning. Persistence failures are logged, never surfaced: the
// in-memory session stands either way.
func (s *Store) setSession(u *User) {
	s.stateMu.Lock()
	s.current = u
	s.stateMu.Unlock()

	if err := s.db.WriteJSON(localstore.UserKey, u); err != nil {
		s.logger.Log("auth", err)
	}
}

// persistDirectory writes the whole registered-email list.
func (s *Store) persistDirectory() {
	s.stateMu.RLock()
	emails := make([]string, len(s.emails))
	copy(emails, s.emails)
	s.stateMu.RUnlock()

	if err := s.db.WriteJSON(localstore.RegisteredUsersKey, emails); err != nil {
		s.logger.Log("auth", err)
	}
}
