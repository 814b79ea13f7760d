// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewPrompt(t *testing.T) {
	in := PromptInput{
		Title:       "Code Review",
		Content:     "Please review this diff",
		Description: strPtr("asks for a review"),
		Tags:        []string{"code", "review"},
	}

	p := NewPrompt(in)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, in.Title, p.Title)
	assert.Equal(t, in.Content, p.Content)
	assert.Equal(t, in.Description, p.Description)
	assert.Nil(t, p.CollectionID)
	assert.Equal(t, []string{"code", "review"}, p.Tags)
	assert.True(t, p.CreatedAt.Equal(p.UpdatedAt), "created_at and updated_at must match at creation")
}

func TestNewPromptDefaultsTags(t *testing.T) {
	p := NewPrompt(PromptInput{Title: "t", Content: "c"})

	require.NotNil(t, p.Tags, "tags must serialize as [] rather than null")
	assert.Empty(t, p.Tags)
}

func TestNewPromptUniqueIDs(t *testing.T) {
	a := NewPrompt(PromptInput{Title: "t", Content: "c"})
	b := NewPrompt(PromptInput{Title: "t", Content: "c"})

	assert.NotEqual(t, a.ID, b.ID)
}

func TestPromptInputValidate(t *testing.T) {
	tests := []struct {
		name      string
		input     PromptInput
		wantField string
	}{
		{"valid", PromptInput{Title: "t", Content: "c"}, ""},
		{"valid with optionals", PromptInput{Title: "t", Content: "c", Description: strPtr("d"), Tags: []string{"a"}}, ""},
		{"empty title", PromptInput{Title: "", Content: "c"}, "title"},
		{"title too long", PromptInput{Title: strings.Repeat("a", 201), Content: "c"}, "title"},
		{"title at limit", PromptInput{Title: strings.Repeat("a", 200), Content: "c"}, ""},
		{"empty content", PromptInput{Title: "t", Content: ""}, "content"},
		{"description too long", PromptInput{Title: "t", Content: "c", Description: strPtr(strings.Repeat("a", 501))}, "description"},
		{"description at limit", PromptInput{Title: "t", Content: "c", Description: strPtr(strings.Repeat("a", 500))}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.NotEmpty(t, verr.Violations)
			assert.Equal(t, tt.wantField, verr.Violations[0].Field)
			assert.NotEmpty(t, verr.Violations[0].Rule)
			assert.NotEmpty(t, verr.Violations[0].Message)
		})
	}
}

func TestPromptInputValidateCollectsAllViolations(t *testing.T) {
	err := (&PromptInput{Title: "", Content: ""}).Validate()

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Violations, 2)
}

func TestApplyUpdate(t *testing.T) {
	original := NewPrompt(PromptInput{
		Title:   "Old",
		Content: "old content",
		Tags:    []string{"old"},
	})

	updated := original.ApplyUpdate(PromptInput{
		Title:        "New",
		Content:      "new content",
		Description:  strPtr("fresh"),
		CollectionID: strPtr("col-1"),
		Tags:         []string{"new"},
	})

	assert.Equal(t, original.ID, updated.ID)
	assert.True(t, updated.CreatedAt.Equal(original.CreatedAt), "created_at must never change")
	assert.False(t, updated.UpdatedAt.Before(original.UpdatedAt))
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, "new content", updated.Content)
	assert.Equal(t, strPtr("fresh"), updated.Description)
	assert.Equal(t, strPtr("col-1"), updated.CollectionID)
	assert.Equal(t, []string{"new"}, updated.Tags)
}

func TestApplyUpdateClearsOptionalFields(t *testing.T) {
	original := NewPrompt(PromptInput{
		Title:        "Old",
		Content:      "old content",
		Description:  strPtr("desc"),
		CollectionID: strPtr("col-1"),
		Tags:         []string{"a", "b"},
	})

	// A full replace with the optional fields omitted clears them.
	updated := original.ApplyUpdate(PromptInput{Title: "New", Content: "new content"})

	assert.Nil(t, updated.Description)
	assert.Nil(t, updated.CollectionID)
	assert.Empty(t, updated.Tags)
	assert.NotNil(t, updated.Tags)
}
