// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the PromptLab API server.
// It loads configuration, builds the in-memory store, sets up routing,
// and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"promptlab/internal/config"
	"promptlab/internal/handlers"
	"promptlab/internal/logger"
	"promptlab/internal/router"
	"promptlab/internal/store"
	"promptlab/internal/version"
)

func main() {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "promptlab: %v\n", err)
		os.Exit(1)
	}

	// Structured logger — pretty console output in development, JSON otherwise.
	log := logger.New(cfg.LogLevel, cfg.IsDev())
	defer log.Sync()

	log.Info("configuration loaded",
		logger.String("env", cfg.Env),
		logger.String("addr", cfg.Addr()),
		logger.String("version", version.Version),
	)

	// All state lives in this store for the lifetime of the process.
	st := store.New()

	// Create handler groups with their dependencies.
	promptHandlers := handlers.NewPrompts(st, log)
	collectionHandlers := handlers.NewCollections(st, log)

	// Set up the Chi router with all middleware and routes.
	r := router.New(promptHandlers, collectionHandlers, log)

	// Create the HTTP server with sensible timeouts. Every operation is
	// in-memory, so nothing should come close to these limits.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		log.Info("server starting", logger.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed to start", logger.Error(err))
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutdown signal received", logger.String("signal", sig.String()))

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown", logger.Error(err))
	}

	log.Info("server stopped gracefully")
}
