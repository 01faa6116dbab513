// Copyright 2025 The AdsFusion Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/go-kit/kit/log"

	"github.com/adsfusion/adsfusion/pkg/auth"
	"github.com/adsfusion/adsfusion/pkg/localstore"
	"github.com/adsfusion/adsfusion/pkg/shareapp"
)

func makeStores(t *testing.T) (*auth.Store, *shareapp.Store) {
	t.Helper()

	db, err := localstore.New(filepath.Join(t.TempDir(), "console_test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	logger := log.NewNopLogger()
	return auth.NewStore(db, logger, 0), shareapp.NewStore(db, logger, 0)
}

func TestConsole__splitArgs(t *testing.T) {
	cases := []struct {
		input    string
		expected []string
	}{
		{"list", []string{"list"}},
		{"login a@b.com secret1", []string{"login", "a@b.com", "secret1"}},
		{`apply surname=Okafor address="12 Marina Road"`, []string{"apply", "surname=Okafor", "address=12 Marina Road"}},
		{`update a1 amountPaid="10,000.00"`, []string{"update", "a1", "amountPaid=10,000.00"}},
		{`apply title=""`, []string{"apply", "title="}},
	}
	for i := range cases {
		if got := splitArgs(cases[i].input); !reflect.DeepEqual(got, cases[i].expected) {
			t.Errorf("input=%q: got %q", cases[i].input, got)
		}
	}
}

func TestConsole__setField(t *testing.T) {
	var app shareapp.Application

	if err := setField(&app, "sharesApplied", "250"); err != nil {
		t.Fatal(err)
	}
	if app.SharesApplied != 250 {
		t.Errorf("got %d", app.SharesApplied)
	}

	if err := setField(&app, "sharesApplied", "many"); err == nil {
		t.Error("expected error for non-numeric sharesApplied")
	}
	if err := setField(&app, "id", "custom"); err == nil {
		t.Error("id must not be settable")
	}
	if err := setField(&app, "favoriteColor", "blue"); err == nil {
		t.Error("expected error for unknown field")
	}
}

func TestConsole__session(t *testing.T) {
	authStore, appStore := makeStores(t)

	script := strings.Join([]string{
		"whoami",
		"login jane@example.com secret1", // not registered yet
		"signup Jane jane@example.com secret1",
		"whoami",
		"logout",
		"whoami",
		"exit",
	}, "\n") + "\n"

	var out bytes.Buffer
	if err := runConsole(strings.NewReader(script), &out, authStore, appStore); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	for _, want := range []string{
		"not signed in",
		"Account not found. Please sign up first.",
		"Welcome, Jane",
		"Signed in as Jane <jane@example.com>",
		"signed out",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestConsole__applications(t *testing.T) {
	authStore, appStore := makeStores(t)

	dir := t.TempDir()
	wd, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	script := strings.Join([]string{
		"apply surname=Okafor", // fails validation, several fields missing
		`apply surname=Okafor firstName=Chinedu address="12 Marina Road" phoneNumber=+2348012345678 ` +
			`email=c.okafor@example.com bankName="First Bank" accountNumber=0123456789 ` +
			`sharesApplied=100 amountPaid="10,000.00"`,
		"list okafor",
		"list nomatch",
		"export",
		"exit",
	}, "\n") + "\n"

	var out bytes.Buffer
	if err := runConsole(strings.NewReader(script), &out, authStore, appStore); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	for _, want := range []string{
		"firstName: This field is required", // from the rejected submit
		"application ",
		"1 application(s)",
		"no applications found",
		"wrote share_applications.csv (1 records)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}

	// the rejected submit never reached the store
	if apps := appStore.Applications(); len(apps) != 1 {
		t.Errorf("got %d stored applications", len(apps))
	}

	if _, err := os.Stat(filepath.Join(dir, "share_applications.csv")); err != nil {
		t.Error(err)
	}
}
