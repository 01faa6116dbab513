// Copyright 2025 The AdsFusion Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package auth

import (
	"strings"
	"time"
)

// Login signs in a registered email.
//
// The password is checked for shape only, never against what was used
// at signup: any six-plus character password opens a registered
// account. Intentional demo behavior, pinned by tests.
//
// The session user's name is derived from the email's local part
// since signup never stored the name.
func (s *Store) Login(email, password string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.begin()
	defer s.end()

	if !s.IsRegistered(email) {
		return nil, s.fail("login", ErrNotRegistered)
	}

	time.Sleep(2 * s.delay)

	if !validShape(email, password) {
		return nil, s.fail("login", ErrInvalidCredentials)
	}

	u := &User{
		ID:    mockUserID,
		Name:  strings.Split(email, "@")[0],
		Email: email,
	}
	s.setSession(u)

	authSuccesses.With("method", "login").Add(1)
	return u, nil
}
