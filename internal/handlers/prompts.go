// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"promptlab/internal/logger"
	"promptlab/internal/models"
	"promptlab/internal/query"
	"promptlab/internal/store"
)

// Prompts handles the /prompts endpoints.
type Prompts struct {
	store *store.Store
	log   logger.Logger
}

// NewPrompts returns the prompt handler group.
func NewPrompts(s *store.Store, log logger.Logger) *Prompts {
	return &Prompts{store: s, log: log}
}

// promptList is the response body for GET /prompts.
type promptList struct {
	Prompts []models.Prompt `json:"prompts"`
	Total   int             `json:"total"`
}

// List returns all prompts, narrowed by the optional collection_id, search
// and tag query parameters. The filters intersect; an empty parameter is a
// no-op. The result is sorted by creation date, newest first.
func (h *Prompts) List(w http.ResponseWriter, r *http.Request) {
	prompts := h.store.AllPrompts()

	if collectionID := r.URL.Query().Get("collection_id"); collectionID != "" {
		prompts = query.FilterByCollection(prompts, collectionID)
	}
	if q := r.URL.Query().Get("search"); q != "" {
		prompts = query.Search(prompts, q)
	}
	if tag := r.URL.Query().Get("tag"); tag != "" {
		prompts = query.FilterByTag(prompts, tag)
	}

	prompts = query.SortByDate(prompts, true)

	writeJSON(w, http.StatusOK, promptList{Prompts: prompts, Total: len(prompts)})
}

// Get returns a single prompt by id.
func (h *Prompts) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, ok := h.store.GetPrompt(id)
	if !ok {
		writeError(w, http.StatusNotFound, codePromptNotFound, "prompt not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Create validates the payload, resolves the collection reference when one
// is supplied, and stores a new prompt.
func (h *Prompts) Create(w http.ResponseWriter, r *http.Request) {
	var input models.PromptInput
	if err := decodeJSON(r, &input); err != nil {
		writeValidationError(w, err)
		return
	}
	if err := input.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}
	if !h.resolveCollection(w, input.CollectionID) {
		return
	}

	p := h.store.CreatePrompt(models.NewPrompt(input))
	h.log.Debug("prompt created", logger.String("id", p.ID))
	writeJSON(w, http.StatusCreated, p)
}

// Update fully replaces a prompt except for its id and creation timestamp.
func (h *Prompts) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	existing, ok := h.store.GetPrompt(id)
	if !ok {
		writeError(w, http.StatusNotFound, codePromptNotFound, "prompt not found")
		return
	}

	var input models.PromptInput
	if err := decodeJSON(r, &input); err != nil {
		writeValidationError(w, err)
		return
	}
	if err := input.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}
	if !h.resolveCollection(w, input.CollectionID) {
		return
	}

	updated, _ := h.store.UpdatePrompt(id, existing.ApplyUpdate(input))
	writeJSON(w, http.StatusOK, updated)
}

// Patch merges only the fields present in the body onto the stored prompt.
// An explicit empty tags array clears the tags; an absent tags field
// leaves them untouched.
func (h *Prompts) Patch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	existing, ok := h.store.GetPrompt(id)
	if !ok {
		writeError(w, http.StatusNotFound, codePromptNotFound, "prompt not found")
		return
	}

	var patch models.PromptPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeValidationError(w, err)
		return
	}
	if err := patch.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}
	if patch.Has("collection_id") && !h.resolveCollection(w, patch.CollectionID) {
		return
	}

	updated, _ := h.store.UpdatePrompt(id, patch.Apply(existing))
	writeJSON(w, http.StatusOK, updated)
}

// Delete removes a prompt.
func (h *Prompts) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if !h.store.DeletePrompt(id) {
		writeError(w, http.StatusNotFound, codePromptNotFound, "prompt not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// resolveCollection checks that a non-nil collection reference points at an
// existing collection. On failure it writes a 400 and returns false. A nil
// reference always resolves: prompts may live outside any collection.
func (h *Prompts) resolveCollection(w http.ResponseWriter, collectionID *string) bool {
	if collectionID == nil {
		return true
	}
	if _, ok := h.store.GetCollection(*collectionID); !ok {
		writeError(w, http.StatusBadRequest, codeCollectionNotFound, "collection not found")
		return false
	}
	return true
}
