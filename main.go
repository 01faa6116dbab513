// Copyright 2025 The AdsFusion Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/adsfusion/adsfusion/admin"
	"github.com/adsfusion/adsfusion/pkg/auth"
	"github.com/adsfusion/adsfusion/pkg/localstore"
	"github.com/adsfusion/adsfusion/pkg/shareapp"

	"github.com/go-kit/kit/log"
)

var (
	dbPath    = flag.String("db", "", "path to the local database file (overrides ADSFUSION_DB_PATH)")
	latency   = flag.Duration("latency", -1, "simulated network latency (overrides ADSFUSION_LATENCY)")
	adminAddr = flag.String("admin.addr", "", "admin HTTP listen address (overrides ADSFUSION_ADMIN_ADDR)")

	logger log.Logger
)

const Version = "0.1.0-dev"

func main() {
	flag.Parse()

	// Setup logging, default to stderr
	logger = log.NewLogfmtLogger(os.Stderr)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	logger = log.With(logger, "caller", log.DefaultCaller)
	logger.Log("startup", fmt.Sprintf("Starting adsfusion console version %s", Version))

	cfg, err := loadConfig()
	if err != nil {
		logger.Log("config", err)
		os.Exit(1)
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if *latency >= 0 {
		cfg.Latency = *latency
	}
	if *adminAddr != "" {
		cfg.AdminAddr = *adminAddr
	}

	// Listen for application termination.
	errs := make(chan error)
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		errs <- fmt.Errorf("%s", <-c)
	}()

	db, err := localstore.New(cfg.DBPath)
	if err != nil {
		logger.Log("localstore", err)
		os.Exit(1)
	}
	defer db.Close()

	authStore := auth.NewStore(db, logger, cfg.Latency)
	appStore := shareapp.NewStore(db, logger, cfg.Latency)

	admin.Init()
	adminService := admin.SetupServer(cfg.AdminAddr)
	go func() {
		logger.Log("admin", fmt.Sprintf("Starting admin service on %s", adminService.BindAddress()))
		if err := adminService.Listen(); err != nil {
			logger.Log("admin", "shutting down", "error", err)
		}
	}()

	go func() {
		errs <- runConsole(os.Stdin, os.Stdout, authStore, appStore)
	}()

	err = <-errs
	adminService.Shutdown()
	if err != nil {
		logger.Log("exit", err)
	}
}
