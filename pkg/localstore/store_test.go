// Copyright 2025 The AdsFusion Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package localstore

import (
	"path/filepath"
	"testing"
)

func makeStore(t *testing.T) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "store_test.db")
	db, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db, path
}

func TestStore__roundTrip(t *testing.T) {
	db, _ := makeStore(t)

	in := []string{"a@b.com", "c@d.com"}
	if err := db.WriteJSON(RegisteredUsersKey, in); err != nil {
		t.Fatal(err)
	}

	var out []string
	found, err := db.ReadJSON(RegisteredUsersKey, &out)
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Error("expected key to exist")
	}
	if len(out) != 2 || out[0] != "a@b.com" || out[1] != "c@d.com" {
		t.Errorf("got %v", out)
	}
}

func TestStore__missingKey(t *testing.T) {
	db, _ := makeStore(t)

	var out map[string]string
	found, err := db.ReadJSON(UserKey, &out)
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Error("expected missing key")
	}
}

func TestStore__delete(t *testing.T) {
	db, _ := makeStore(t)

	if err := db.WriteJSON(UserKey, map[string]string{"id": "123"}); err != nil {
		t.Fatal(err)
	}
	if err := db.Delete(UserKey); err != nil {
		t.Fatal(err)
	}

	var out map[string]string
	if found, _ := db.ReadJSON(UserKey, &out); found {
		t.Error("expected key to be gone")
	}

	// deleting again is fine
	if err := db.Delete(UserKey); err != nil {
		t.Errorf("second delete: %v", err)
	}
}

func TestStore__reopen(t *testing.T) {
	db, path := makeStore(t)

	if err := db.WriteJSON(UserKey, map[string]string{"email": "a@b.com"}); err != nil {
		t.Fatal(err)
	}
	if err := db.Close(); err != nil {
		t.Fatal(err)
	}

	db2, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	defer db2.Close()

	var out map[string]string
	found, err := db2.ReadJSON(UserKey, &out)
	if err != nil {
		t.Fatal(err)
	}
	if !found || out["email"] != "a@b.com" {
		t.Errorf("found=%v out=%v", found, out)
	}
}
