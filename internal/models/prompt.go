// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the stored entities, their request payloads and
// the validation rules applied at the API boundary. The storage layer only
// ever sees entities that already passed validation.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Prompt is a stored text template. It may reference a Collection through
// CollectionID; the reference is weak and validated by the handlers, not
// enforced here or in storage.
type Prompt struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Description  *string   `json:"description"`
	CollectionID *string   `json:"collection_id"`
	Tags         []string  `json:"tags"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PromptInput is the payload for creating a prompt or fully replacing one.
type PromptInput struct {
	Title        string   `json:"title" validate:"required,max=200"`
	Content      string   `json:"content" validate:"required"`
	Description  *string  `json:"description" validate:"omitempty,max=500"`
	CollectionID *string  `json:"collection_id"`
	Tags         []string `json:"tags"`
}

// Validate checks the payload against the prompt field constraints and
// returns a *ValidationError listing every violation, or nil.
func (in *PromptInput) Validate() error {
	return validateStruct(in)
}

// NewPrompt builds a Prompt from a validated input, assigning a fresh id
// and setting both timestamps to the same instant.
func NewPrompt(in PromptInput) Prompt {
	now := time.Now().UTC()
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	return Prompt{
		ID:           uuid.NewString(),
		Title:        in.Title,
		Content:      in.Content,
		Description:  in.Description,
		CollectionID: in.CollectionID,
		Tags:         tags,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ApplyUpdate returns the prompt fully replaced by the input, keeping the
// id and creation timestamp and refreshing UpdatedAt.
func (p Prompt) ApplyUpdate(in PromptInput) Prompt {
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	return Prompt{
		ID:           p.ID,
		Title:        in.Title,
		Content:      in.Content,
		Description:  in.Description,
		CollectionID: in.CollectionID,
		Tags:         tags,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    time.Now().UTC(),
	}
}
