// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the JSON HTTP API. Handlers validate input
// and resolve references before touching the store, and translate the
// store's absent/boolean results into status codes.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"promptlab/internal/models"
)

// errorBody is the JSON envelope for every client-visible failure.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code       string             `json:"code"`
	Message    string             `json:"message"`
	Violations []models.Violation `json:"violations,omitempty"`
}

// Error codes used across the API. Each maps to exactly one failure class:
// schema violations, unresolvable references, and missing targets.
const (
	codeValidationFailed   = "validation_failed"
	codePromptNotFound     = "prompt_not_found"
	codeCollectionNotFound = "collection_not_found"
)

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError sends an error envelope with the given code and message.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: message}})
}

// writeValidationError sends a 422 carrying the violation list. A non
// validation error (e.g. malformed JSON already caught earlier) still gets
// a 422 with a bare message, keeping schema failures in one status class.
func writeValidationError(w http.ResponseWriter, err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: errorDetail{
			Code:       codeValidationFailed,
			Message:    "request body failed validation",
			Violations: verr.Violations,
		}})
		return
	}
	writeError(w, http.StatusUnprocessableEntity, codeValidationFailed, err.Error())
}

// decodeJSON decodes the request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
