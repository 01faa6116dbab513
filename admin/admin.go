// Copyright 2025 The AdsFusion Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

// Package admin serves operational endpoints (prometheus metrics and
// pprof profiles) on a port separate from anything user facing.
package admin

import (
	"runtime"
)

// Init configures the runtime for the profiles we serve. Call once at
// startup, before SetupServer.
func Init() {
	if profileEnabled("block", true) {
		runtime.SetBlockProfileRate(1)
	}
	if profileEnabled("mutex", true) {
		runtime.SetMutexProfileFraction(1)
	}
}
