// Copyright 2025 The AdsFusion Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package shareapp

import (
	"sync"
	"time"

	"github.com/go-kit/kit/log"
	kitprom "github.com/go-kit/kit/metrics/prometheus"
	"github.com/google/uuid"
	stdprom "github.com/prometheus/client_golang/prometheus"

	"github.com/adsfusion/adsfusion/pkg/localstore"
)

var (
	applicationMutations = kitprom.NewCounterFrom(stdprom.CounterOpts{
		Name: "share_application_mutations",
		Help: "Count of share application create/update/delete operations",
	}, []string{"op"})
)

// Store owns the share-application collection. Every mutation sleeps
// its simulated round-trip, applies in insertion order and persists
// the entire collection as one snapshot.
//
// The store does not validate what it stores. Callers run Validate
// first; a caller that skips it can still write an invalid record,
// exactly as the site could.
type Store struct {
	mu sync.Mutex

	stateMu sync.RWMutex
	apps    []Application
	loading bool

	db     *localstore.Store
	logger log.Logger
	delay  time.Duration
}

// NewStore loads the persisted collection. A corrupt or unreadable
// snapshot is logged and the store starts empty.
func NewStore(db *localstore.Store, logger log.Logger, delay time.Duration) *Store {
	s := &Store{
		db:     db,
		logger: logger,
		delay:  delay,
	}
	if _, err := db.ReadJSON(localstore.ShareApplicationsKey, &s.apps); err != nil {
		logger.Log("shareapp", err)
	}
	return s
}

// Applications returns a copy of the collection in insertion order.
func (s *Store) Applications() []Application {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	out := make([]Application, len(s.apps))
	copy(out, s.apps)
	return out
}

// Loading reports whether a mutation is in flight.
func (s *Store) Loading() bool {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.loading
}

// Create stamps a fresh id and creation time, appends the record and
// persists the collection. The id and timestamp are captured at the
// time of the call, before the simulated latency.
func (s *Store) Create(in Application) Application {
	in.ID = uuid.NewString()
	in.CreatedAt = timestamp(time.Now())

	s.mutate("create", func() {
		s.apps = append(s.apps, in)
	})
	return in
}

// Update replaces every field of the record with the given id, the id
// itself excepted, leaving the record in place. A missing id replaces
// nothing and raises no error.
func (s *Store) Update(id string, in Application) {
	in.ID = id
	s.mutate("update", func() {
		for i := range s.apps {
			if s.apps[i].ID == id {
				s.apps[i] = in
			}
		}
	})
}

// Delete removes the record with the given id. A missing id is a
// silent no-op.
func (s *Store) Delete(id string) {
	s.mutate("delete", func() {
		kept := s.apps[:0]
		for i := range s.apps {
			if s.apps[i].ID != id {
				kept = append(kept, s.apps[i])
			}
		}
		s.apps = kept
	})
}

// mutate runs fn under the writer lock after the simulated latency,
// then persists the whole collection. A persistence failure is
// logged, never surfaced: the in-memory collection keeps the change
// and the durable copy lags until the next successful write.
func (s *Store) mutate(op string, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.setLoading(true)
	defer s.setLoading(false)

	time.Sleep(s.delay)

	s.stateMu.Lock()
	fn()
	snapshot := make([]Application, len(s.apps))
	copy(snapshot, s.apps)
	s.stateMu.Unlock()

	if err := s.db.WriteJSON(localstore.ShareApplicationsKey, snapshot); err != nil {
		s.logger.Log("shareapp", err)
	}
	applicationMutations.With("op", op).Add(1)
}

func (s *Store) setLoading(v bool) {
	s.stateMu.Lock()
	s.loading = v
	s.stateMu.Unlock()
}
