// Copyright 2025 The AdsFusion Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package shareapp

import (
	"testing"
)

func validApplication() Application {
	return Application{
		SharesApplied: 1,
		Surname:       "Okafor",
		FirstName:     "Chinedu",
		Address:       "12 Marina Road",
		PhoneNumber:   "+234 801 234 5678",
		Email:         "c.okafor@example.com",
		BankName:      "First Bank",
		AccountNumber: "0123456789",
	}
}

func TestValidate__ok(t *testing.T) {
	if errs := Validate(validApplication()); len(errs) != 0 {
		t.Errorf("got %v", errs)
	}
}

func TestValidate__required(t *testing.T) {
	app := Application{SharesApplied: 1}
	errs := Validate(app)

	fields := []string{"surname", "firstName", "address", "phoneNumber", "email", "bankName", "accountNumber"}
	if len(errs) != len(fields) {
		t.Errorf("got %d errors: %v", len(errs), errs)
	}
	for i := range fields {
		if errs[fields[i]] != "This field is required" {
			t.Errorf("%s: got %q", fields[i], errs[fields[i]])
		}
	}
}

func TestValidate__email(t *testing.T) {
	cases := []struct {
		input string
		valid bool
	}{
		{"c.okafor@example.com", true},
		{"no-at-sign.com", false},
		{"user@nodot", false},
	}
	for i := range cases {
		app := validApplication()
		app.Email = cases[i].input
		_, bad := Validate(app)["email"]
		if bad == cases[i].valid {
			t.Errorf("email=%q: valid=%v", cases[i].input, !bad)
		}
	}
}

func TestValidate__phone(t *testing.T) {
	cases := []struct {
		input string
		valid bool
	}{
		{"+2348012345678", true},
		{"08012345678", true},
		{"+234 801 234 5678", true}, // internal spaces stripped
		{"123456789", false},        // too short
		{"1234567890123456", false}, // too long
		{"0801-234-5678", false},    // non-digits
	}
	for i := range cases {
		app := validApplication()
		app.PhoneNumber = cases[i].input
		_, bad := Validate(app)["phoneNumber"]
		if bad == cases[i].valid {
			t.Errorf("phone=%q: valid=%v", cases[i].input, !bad)
		}
	}
}

func TestValidate__accountNumber(t *testing.T) {
	cases := []struct {
		input string
		valid bool
	}{
		{"0123456789", true},
		{"012345678", false},   // 9 digits
		{"01234567890", false}, // 11 digits
		{"01234abcde", false},
	}
	for i := range cases {
		app := validApplication()
		app.AccountNumber = cases[i].input
		_, bad := Validate(app)["accountNumber"]
		if bad == cases[i].valid {
			t.Errorf("account=%q: valid=%v", cases[i].input, !bad)
		}
	}
}

func TestValidate__sharesApplied(t *testing.T) {
	app := validApplication()
	app.SharesApplied = 0
	if _, bad := Validate(app)["sharesApplied"]; !bad {
		t.Error("expected sharesApplied error")
	}
}
