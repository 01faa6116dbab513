// Copyright 2025 The AdsFusion Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package admin

import (
	"context"
	"fmt"
	"net/http"
	"net/http/pprof"
	"os"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupServer(addr string) *Server {
	timeout, _ := time.ParseDuration("45s")
	return &Server{
		svc: &http.Server{
			Addr:         addr,
			Handler:      handler(),
			ReadTimeout:  timeout,
			WriteTimeout: timeout,
			IdleTimeout:  timeout,
		},
	}
}

// Server holds the net/http Server used for admin endpoints
// (i.e. metrics, profiles).
type Server struct {
	svc *http.Server
}

func (s *Server) BindAddress() string {
	return s.svc.Addr
}

// Listen brings up the admin HTTP service. This call blocks.
func (s *Server) Listen() error {
	if s == nil || s.svc == nil {
		return nil
	}
	return s.svc.ListenAndServe()
}

// Shutdown unbinds the HTTP server.
func (s *Server) Shutdown() {
	if s == nil || s.svc == nil {
		return
	}
	s.svc.Shutdown(context.Background())
}

// pprofHandlers holds which pprof handlers are served by default.
//
// These dumps can contain sensitive data (emails, record contents) or
// alter app performance, which is why they only ever bind on the
// admin servlet. Each can be overridden with a PPROF_* environment
// variable.
var pprofHandlers = map[string]bool{
	"allocs":       true,
	"block":        true,
	"cmdline":      true,
	"goroutine":    true,
	"heap":         true,
	"mutex":        true,
	"profile":      true,
	"threadcreate": false,
	"trace":        false,
}

// profileEnabled reads PPROF_$name (uppercased). A value of "yes"
// returns true and "no" returns false; anything else, empty strings
// included, returns zero.
func profileEnabled(name string, zero bool) bool {
	v := os.Getenv(fmt.Sprintf("PPROF_%s", strings.ToUpper(name)))
	switch strings.ToLower(v) {
	case "yes":
		return true
	case "no":
		return false
	}
	return zero
}

func handler() http.Handler {
	r := mux.NewRouter()

	// prometheus metrics
	r.Methods("GET").Path("/metrics").Handler(promhttp.Handler())

	// add all pprof handlers we've configured
	r.HandleFunc("/debug/pprof/", pprof.Index)
	for k, add := range pprofHandlers {
		if profileEnabled(k, add) {
			r.Handle(fmt.Sprintf("/debug/pprof/%s", k), pprof.Handler(k))
		}
	}

	return r
}
