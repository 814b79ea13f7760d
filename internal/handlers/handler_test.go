// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for the JSON API
// tests: an isolated store plus a minimal router wired like production.
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"promptlab/internal/logger"
	"promptlab/internal/models"
	"promptlab/internal/store"
)

// testAPI bundles the store and router for one test's isolated instance.
type testAPI struct {
	store  *store.Store
	router chi.Router
}

// newTestAPI wires the handler groups onto a fresh store. Each test gets
// its own instance so there is no cross-test leakage.
func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	st := store.New()
	log := logger.Nop()
	prompts := NewPrompts(st, log)
	collections := NewCollections(st, log)

	r := chi.NewRouter()
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

	return &testAPI{store: st, router: r}
}

// do executes a request against the test router. A non-nil body is
// JSON-encoded unless it is already a raw string.
func (a *testAPI) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a recorded JSON response into dst.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst))
}

// createPrompt posts a prompt payload and returns the created entity.
func (a *testAPI) createPrompt(t *testing.T, payload map[string]any) models.Prompt {
	t.Helper()

	w := a.do(t, http.MethodPost, "/prompts", payload)
	require.Equal(t, http.StatusCreated, w.Code, "create prompt: %s", w.Body.String())

	var p models.Prompt
	decodeBody(t, w, &p)
	return p
}

// createCollection posts a collection payload and returns the created entity.
func (a *testAPI) createCollection(t *testing.T, payload map[string]any) models.Collection {
	t.Helper()

	w := a.do(t, http.MethodPost, "/collections", payload)
	require.Equal(t, http.StatusCreated, w.Code, "create collection: %s", w.Body.String())

	var c models.Collection
	decodeBody(t, w, &c)
	return c
}
