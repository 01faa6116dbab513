// Copyright 2025 The AdsFusion Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

// Package auth holds the site's mock authentication state: the
// registered-email directory and the single session user, both
// persisted through localstore.
//
// Nothing here is real security. Signup records only the email, login
// never compares the password against anything, and the session id is
// a fixed placeholder. That is the contract the frontend was built
// against and changing it silently would break parity tests.
package auth

import (
	"errors"
	"strings"

	kitprom "github.com/go-kit/kit/metrics/prometheus"
	stdprom "github.com/prometheus/client_golang/prometheus"
)

// mockUserID is the placeholder id given to every session user.
const mockUserID = "123"

// User is the current session identity, or absent when signed out.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Error strings are the exact messages the site showed users.
var (
	ErrAlreadyRegistered  = errors.New("Email already registered. Please sign in instead.")
	ErrNotRegistered      = errors.New("Account not found. Please sign up first.")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrInvalidEmail       = errors.New("Invalid email")
)

var (
	authSuccesses = kitprom.NewCounterFrom(stdprom.CounterOpts{
		Name: "auth_successes",
		Help: "Count of successful authorizations",
	}, []string{"method"})
	authFailures = kitprom.NewCounterFrom(stdprom.CounterOpts{
		Name: "auth_failures",
		Help: "Count of failed authorizations",
	}, []string{"method"})
	authInactivations = kitprom.NewCounterFrom(stdprom.CounterOpts{
		Name: "auth_inactivations",
		Help: "Count of sessions invalidated by logout",
	}, []string{"method"})
)

// validShape is the demo credential check: the email merely contains
// an '@' and the password has at least six characters.
func validShape(email, password string) bool {
	return strings.Contains(email, "@") && len(password) >= 6
}
