// Copyright 2025 The AdsFusion Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

// Package shareapp maintains the share-subscription applications
// submitted through the site: a durable insertion-ordered collection
// with create/update/delete, a search filter and CSV export.
package shareapp

import (
	"strings"
	"time"
)

// createdAtFormat matches JavaScript's Date.toISOString(): UTC with
// millisecond precision and a literal Z.
const createdAtFormat = "2006-01-02T15:04:05.000Z"

// Application is one person's request to subscribe to shares. JSON
// tags match the field names the frontend persisted, so an old
// snapshot loads unchanged.
//
// AmountPaid is free text ("10,000.00"), never parsed as a number.
// CreatedAt is stored as the string the create call stamped; update
// takes whatever the caller's object carries, so an input missing it
// loses it. That mirrors how the site behaved.
type Application struct {
	ID              string `json:"id"`
	SharesApplied   int    `json:"sharesApplied"`
	AmountPaid      string `json:"amountPaid"`
	Title           string `json:"title"`
	Surname         string `json:"surname"`
	FirstName       string `json:"firstName"`
	OtherNames      string `json:"otherNames"`
	Address         string `json:"address"`
	City            string `json:"city"`
	State           string `json:"state"`
	Country         string `json:"country"`
	PhoneNumber     string `json:"phoneNumber"`
	DOB             string `json:"dob"`
	Email           string `json:"email"`
	NextOfKin       string `json:"nextOfKin"`
	CHNNumber       string `json:"chnNumber"`
	CSCSNumber      string `json:"cscsNumber"`
	Stockbroker     string `json:"stockbroker"`
	MemberCode      string `json:"memberCode"`
	JointTitle      string `json:"jointTitle"`
	JointSurname    string `json:"jointSurname"`
	JointFirstName  string `json:"jointFirstName"`
	JointOtherNames string `json:"jointOtherNames"`
	BankName        string `json:"bankName"`
	BVN             string `json:"bvn"`
	AccountNumber   string `json:"accountNumber"`
	Branch          string `json:"branch"`
	CityState       string `json:"cityState"`
	CreatedAt       string `json:"createdAt"`
}

// matches reports whether query (already lowercased) is a substring
// of any of the four searched fields.
func (a *Application) matches(query string) bool {
	return strings.Contains(strings.ToLower(a.Surname), query) ||
		strings.Contains(strings.ToLower(a.FirstName), query) ||
		strings.Contains(strings.ToLower(a.Email), query) ||
		strings.Contains(strings.ToLower(a.PhoneNumber), query)
}

// Filter returns the applications whose surname, first name, email or
// phone number contains query, case-insensitively. An empty query
// matches everything.
func Filter(apps []Application, query string) []Application {
	query = strings.ToLower(query)
	var out []Application
	for i := range apps {
		if apps[i].matches(query) {
			out = append(out, apps[i])
		}
	}
	return out
}

func timestamp(t time.Time) string {
	return t.UTC().Format(createdAtFormat)
}
