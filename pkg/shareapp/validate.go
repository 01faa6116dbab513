// Copyright 2025 The AdsFusion Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package shareapp

import (
	"regexp"
	"strings"
)

var (
	emailPattern         = regexp.MustCompile(`\S+@\S+\.\S+`)
	phonePattern         = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
	accountNumberPattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// Validate applies the application form's rules and returns one
// message per offending field, keyed by the field's wire name. An
// empty map means the application is acceptable.
//
// This runs before the store is called, never inside it. Format
// checks only fire when the field is non-empty, so a missing required
// field reports exactly one error.
func Validate(app Application) map[string]string {
	errs := make(map[string]string)

	required := []struct {
		field, value string
	}{
		{"surname", app.Surname},
		{"firstName", app.FirstName},
		{"address", app.Address},
		{"phoneNumber", app.PhoneNumber},
		{"email", app.Email},
		{"bankName", app.BankName},
		{"accountNumber", app.AccountNumber},
	}
	for i := range required {
		if required[i].value == "" {
			errs[required[i].field] = "This field is required"
		}
	}

	if app.Email != "" && !emailPattern.MatchString(app.Email) {
		errs["email"] = "Please enter a valid email address"
	}

	// internal spaces are allowed on input, stripped before matching
	if phone := strings.ReplaceAll(app.PhoneNumber, " ", ""); app.PhoneNumber != "" && !phonePattern.MatchString(phone) {
		errs["phoneNumber"] = "Please enter a valid phone number"
	}

	if app.AccountNumber != "" && !accountNumberPattern.MatchString(app.AccountNumber) {
		errs["accountNumber"] = "Account number must be 10 digits"
	}

	// The form's numeric input enforced this floor; a direct caller
	// has no input widget, so check it here.
	if app.SharesApplied < 1 {
		errs["sharesApplied"] = "Shares applied must be at least 1"
	}

	return errs
}
