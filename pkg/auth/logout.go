// Copyright 2025 The AdsFusion Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package auth

import (
	"github.com/adsfusion/adsfusion/pkg/localstore"
)

// Logout clears the session. It always succeeds and, unlike the other
// operations, has no simulated latency. A persistence failure is
// logged but the in-memory session is gone regardless.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stateMu.Lock()
	s.current = nil
	s.stateMu.Unlock()

	if err := s.db.Delete(localstore.UserKey); err != nil {
		s.logger.Log("logout", err)
	}
	authInactivations.With("method", "logout").Add(1)
}
