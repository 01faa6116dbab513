// Copyright 2025 The AdsFusion Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package auth

import (
	"time"
)

// Signup registers email and signs the new user straight in.
//
// Failure leaves the directory and session untouched: an email that
// is already registered returns ErrAlreadyRegistered, and credentials
// failing the shape check return ErrInvalidCredentials. On success
// both the directory and the session are durably written before
// Signup returns.
func (s *Store) Signup(name, email, password string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.begin()
	defer s.end()

	if s.IsRegistered(email) {
		return nil, s.fail("signup", ErrAlreadyRegistered)
	}

	time.Sleep(2 * s.delay)

	if !validShape(email, password) {
		return nil, s.fail("signup", ErrInvalidCredentials)
	}

	s.stateMu.Lock()
	s.registered[email] = true
	s.emails = append(s.emails, email)
	s.stateMu.Unlock()
	s.persistDirectory()

	u := &User{ID: mockUserID, Name: name, Email: email}
	s.setSession(u)

	authSuccesses.With("method", "signup").Add(1)
	return u, nil
}
