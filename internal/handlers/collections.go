// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"promptlab/internal/logger"
	"promptlab/internal/models"
	"promptlab/internal/store"
)

// Collections handles the /collections endpoints.
type Collections struct {
	store *store.Store
	log   logger.Logger
}

// NewCollections returns the collection handler group.
func NewCollections(s *store.Store, log logger.Logger) *Collections {
	return &Collections{store: s, log: log}
}

// collectionList is the response body for GET /collections.
type collectionList struct {
	Collections []models.Collection `json:"collections"`
	Total       int                 `json:"total"`
}

// List returns all collections.
func (h *Collections) List(w http.ResponseWriter, r *http.Request) {
	collections := h.store.AllCollections()
	writeJSON(w, http.StatusOK, collectionList{Collections: collections, Total: len(collections)})
}

// Get returns a single collection by id.
func (h *Collections) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	c, ok := h.store.GetCollection(id)
	if !ok {
		writeError(w, http.StatusNotFound, codeCollectionNotFound, "collection not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Create validates the payload and stores a new collection.
func (h *Collections) Create(w http.ResponseWriter, r *http.Request) {
	var input models.CollectionInput
	if err := decodeJSON(r, &input); err != nil {
		writeValidationError(w, err)
		return
	}
	if err := input.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	c := h.store.CreateCollection(models.NewCollection(input))
	h.log.Debug("collection created", logger.String("id", c.ID))
	writeJSON(w, http.StatusCreated, c)
}

// Delete removes a collection together with every prompt referencing it.
// The cascade runs inside the store under one lock hold.
func (h *Collections) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	removed, ok := h.store.DeleteCollectionCascade(id)
	if !ok {
		writeError(w, http.StatusNotFound, codeCollectionNotFound, "collection not found")
		return
	}

	h.log.Info("collection deleted",
		logger.String("id", id),
		logger.Int("prompts_removed", removed),
	)
	w.WriteHeader(http.StatusNoContent)
}
