// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"time"
	"unicode/utf8"
)

// PromptPatch is a field-wise partial update. Presence is tracked per key
// while decoding: a field that never appeared in the JSON body leaves the
// stored value untouched, while an explicit value (including null or an
// empty tags array) overwrites it. This is what makes `{"tags": []}` and
// `{}` distinguishable.
type PromptPatch struct {
	Title        *string
	Content      *string
	Description  *string
	CollectionID *string
	Tags         []string

	touched map[string]bool
}

// UnmarshalJSON decodes the patch body into a key set plus field values.
func (p *PromptPatch) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.touched = make(map[string]bool, len(raw))
	for field, val := range raw {
		switch field {
		case "title":
			if err := json.Unmarshal(val, &p.Title); err != nil {
				return err
			}
		case "content":
			if err := json.Unmarshal(val, &p.Content); err != nil {
				return err
			}
		case "description":
			if err := json.Unmarshal(val, &p.Description); err != nil {
				return err
			}
		case "collection_id":
			if err := json.Unmarshal(val, &p.CollectionID); err != nil {
				return err
			}
		case "tags":
			if err := json.Unmarshal(val, &p.Tags); err != nil {
				return err
			}
		default:
			// Unknown fields are ignored, matching the create payload.
			continue
		}
		p.touched[field] = true
	}
	return nil
}

// Has reports whether the field appeared in the patch body.
func (p *PromptPatch) Has(field string) bool {
	return p.touched[field]
}

// Validate checks every touched field against the same constraints as the
// full payload. Explicit null on title or content is rejected because the
// stored entity requires them; null on the nullable fields means "clear".
func (p *PromptPatch) Validate() error {
	var violations []Violation

	if p.Has("title") {
		switch {
		case p.Title == nil || *p.Title == "":
			violations = append(violations, Violation{
				Field: "title", Rule: "required", Message: "title must not be empty",
			})
		case utf8.RuneCountInString(*p.Title) > 200:
			violations = append(violations, Violation{
				Field: "title", Rule: "max", Message: "title must be at most 200 characters",
			})
		}
	}

	if p.Has("content") && (p.Content == nil || *p.Content == "") {
		violations = append(violations, Violation{
			Field: "content", Rule: "required", Message: "content must not be empty",
		})
	}

	if p.Has("description") && p.Description != nil && utf8.RuneCountInString(*p.Description) > 500 {
		violations = append(violations, Violation{
			Field: "description", Rule: "max", Message: "description must be at most 500 characters",
		})
	}

	if p.Has("tags") && p.Tags == nil {
		violations = append(violations, Violation{
			Field: "tags", Rule: "array", Message: "tags must be an array of strings",
		})
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

// Apply merges the touched fields onto the existing prompt, carrying over
// id and creation timestamp and refreshing UpdatedAt.
func (p *PromptPatch) Apply(existing Prompt) Prompt {
	out := existing
	if p.Has("title") {
		out.Title = *p.Title
	}
	if p.Has("content") {
		out.Content = *p.Content
	}
	if p.Has("description") {
		out.Description = p.Description
	}
	if p.Has("collection_id") {
		out.CollectionID = p.CollectionID
	}
	if p.Has("tags") {
		out.Tags = p.Tags
	}
	out.UpdatedAt = time.Now().UTC()
	return out
}
