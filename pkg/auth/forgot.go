// Copyright 2025 The AdsFusion Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package auth

import (
	"strings"
	"time"
)

// ForgotPassword walks the reset flow for a registered email. No
// reset actually happens and no mail is sent; success is silent and
// the caller decides what to tell the user.
func (s *Store) ForgotPassword(email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.begin()
	defer s.end()

	if !s.IsRegistered(email) {
		return s.fail("forgot_password", ErrNotRegistered)
	}

	time.Sleep(2 * s.delay)

	if !strings.Contains(email, "@") {
		return s.fail("forgot_password", ErrInvalidEmail)
	}

	authSuccesses.With("method", "forgot_password").Add(1)
	return nil
}
