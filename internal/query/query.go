// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package query provides pure, read-only transformations over prompt
// slices. Nothing here touches storage or mutates its input; an empty
// slice in always yields an empty slice out.
package query

import (
	"slices"
	"strings"

	"promptlab/internal/models"
)

// SortByDate returns the prompts ordered by creation time. The sort is
// stable: prompts with equal timestamps keep their relative input order.
func SortByDate(prompts []models.Prompt, descending bool) []models.Prompt {
	out := slices.Clone(prompts)
	slices.SortStableFunc(out, func(a, b models.Prompt) int {
		if descending {
			return b.CreatedAt.Compare(a.CreatedAt)
		}
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return out
}

// FilterByCollection keeps prompts whose collection reference equals the
// given id. Prompts without a collection never match.
func FilterByCollection(prompts []models.Prompt, collectionID string) []models.Prompt {
	out := make([]models.Prompt, 0, len(prompts))
	for _, p := range prompts {
		if p.CollectionID != nil && *p.CollectionID == collectionID {
			out = append(out, p)
		}
	}
	return out
}

// FilterByTag keeps prompts whose tag list contains the given tag.
// Matching is exact and case-sensitive.
func FilterByTag(prompts []models.Prompt, tag string) []models.Prompt {
	out := make([]models.Prompt, 0, len(prompts))
	for _, p := range prompts {
		if slices.Contains(p.Tags, tag) {
			out = append(out, p)
		}
	}
	return out
}

// Search keeps prompts whose title or description contains the query as a
// substring, case-insensitively. Prompts without a description can only
// match on title.
func Search(prompts []models.Prompt, q string) []models.Prompt {
	q = strings.ToLower(q)
	out := make([]models.Prompt, 0, len(prompts))
	for _, p := range prompts {
		if strings.Contains(strings.ToLower(p.Title), q) {
			out = append(out, p)
			continue
		}
		if p.Description != nil && strings.Contains(strings.ToLower(*p.Description), q) {
			out = append(out, p)
		}
	}
	return out
}
