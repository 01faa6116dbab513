// Copyright 2025 The AdsFusion Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package main

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config carries the knobs read from the environment. Command-line
// flags in main.go override each one.
type Config struct {
	// DBPath is where the local key-value database lives.
	DBPath string `env:"ADSFUSION_DB_PATH" envDefault:"adsfusion.db"`

	// Latency is the simulated network round-trip applied to store
	// operations. Zero disables the delays entirely.
	Latency time.Duration `env:"ADSFUSION_LATENCY" envDefault:"500ms"`

	// AdminAddr is the bind address for the metrics/pprof sidecar.
	AdminAddr string `env:"ADSFUSION_ADMIN_ADDR" envDefault:":9090"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if strings.Contains(cfg.DBPath, "..") {
		// set default if trying to escape upward
		// don't filepath.Abs to avoid full-fs reads
		cfg.DBPath = "adsfusion.db"
	}
	return cfg, nil
}
