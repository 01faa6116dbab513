// Copyright 2025 The AdsFusion Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

// Package localstore persists the site's state snapshots in a local
// BuntDB file (https://github.com/tidwall/buntdb), one JSON document
// per key. It plays the role the browser's localStorage played for
// the original adsfusion.io frontend.
package localstore

import (
	"encoding/json"
	"fmt"

	kitprom "github.com/go-kit/kit/metrics/prometheus"
	stdprom "github.com/prometheus/client_golang/prometheus"
	"github.com/tidwall/buntdb"
)

// The three keys the site ever writes. Their values are JSON
// documents: a session user object, an array of email strings and an
// array of share application objects.
const (
	UserKey              = "user"
	RegisteredUsersKey   = "registeredUsers"
	ShareApplicationsKey = "shareApplications"
)

var (
	writeFailures = kitprom.NewCounterFrom(stdprom.CounterOpts{
		Name: "localstore_write_failures",
		Help: "Count of failed local key-value writes",
	}, []string{"key"})
)

// Store wraps a BuntDB file. Values are whole-snapshot JSON
// documents, so every write replaces the previous value of its key.
type Store struct {
	db *buntdb.DB
}

func New(path string) (*Store, error) {
	db, err := buntdb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("problem opening %s: %v", path, err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// ReadJSON loads the JSON document stored under key into v. The
// returned bool reports whether the key existed at all.
func (s *Store) ReadJSON(key string, v interface{}) (bool, error) {
	var raw string
	err := s.db.View(func(tx *buntdb.Tx) error {
		val, err := tx.Get(key)
		if err != nil {
			return err
		}
		raw = val
		return nil
	})
	if err == buntdb.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("problem reading %s: %v", key, err)
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return true, fmt.Errorf("problem decoding %s: %v", key, err)
	}
	return true, nil
}

// WriteJSON replaces the document stored under key with the JSON
// encoding of v.
func (s *Store) WriteJSON(key string, v interface{}) error {
	bs, err := json.Marshal(v)
	if err != nil {
		writeFailures.With("key", key).Add(1)
		return fmt.Errorf("problem encoding %s: %v", key, err)
	}
	err = s.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(key, string(bs), nil)
		return err
	})
	if err != nil {
		writeFailures.With("key", key).Add(1)
		return fmt.Errorf("problem updating %s: %v", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	err := s.db.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Delete(key)
		if err == buntdb.ErrNotFound {
			return nil
		}
		return err
	})
	if err != nil {
		writeFailures.With("key", key).Add(1)
		return fmt.Errorf("problem deleting %s: %v", key, err)
	}
	return nil
}
