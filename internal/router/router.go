// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up the HTTP routes and middleware chain for the
// PromptLab API.
package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"promptlab/internal/handlers"
	"promptlab/internal/logger"
	"promptlab/internal/middleware"
	"promptlab/internal/version"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(prompts *handlers.Prompts, collections *handlers.Collections, log logger.Logger) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(chimw.RequestID)
	r.Use(middleware.Recoverer(log))
	r.Use(middleware.Log(log))

	// The reference frontend is served from a different origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	// Health check.
	r.Get("/health", healthHandler)

	r.Route("/prompts", func(r chi.Router) {
		r.Get("/", prompts.List)
		r.Post("/", prompts.Create)
		r.Get("/{id}", prompts.Get)
		r.Put("/{id}", prompts.Update)
		r.Patch("/{id}", prompts.Patch)
		r.Delete("/{id}", prompts.Delete)
	})

	r.Route("/collections", func(r chi.Router) {
		r.Get("/", collections.List)
		r.Post("/", collections.Create)
		r.Get("/{id}", collections.Get)
		r.Delete("/{id}", collections.Delete)
	})

	return r
}

// healthHandler returns a simple JSON health check response with the
// running version.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status":"healthy","version":%q}`, version.Version)
}
