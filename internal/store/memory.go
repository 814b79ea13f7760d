// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides in-memory keyed storage for prompts and
// collections. It holds no query logic and performs no validation or
// referential checks; handlers are responsible for both. Every operation
// takes the single mutex so read-modify-write sequences never interleave,
// and the collection cascade runs entirely under one lock hold.
package store

import (
	"sync"

	"promptlab/internal/models"
)

// Store owns the two keyed collections. Insertion order is tracked
// explicitly so snapshots are deterministic; Go map iteration is not.
type Store struct {
	mu sync.Mutex

	prompts   map[string]models.Prompt
	promptIDs []string

	collections   map[string]models.Collection
	collectionIDs []string
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		prompts:     make(map[string]models.Prompt),
		collections: make(map[string]models.Collection),
	}
}

// CreatePrompt inserts a prompt keyed by its id. Reusing an id overwrites
// the previous entry; ids are generated so this does not happen in normal
// operation.
func (s *Store) CreatePrompt(p models.Prompt) models.Prompt {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.prompts[p.ID]; !exists {
		s.promptIDs = append(s.promptIDs, p.ID)
	}
	s.prompts[p.ID] = p
	return p
}

// GetPrompt retrieves a prompt by id.
func (s *Store) GetPrompt(id string) (models.Prompt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.prompts[id]
	return p, ok
}

// AllPrompts returns a snapshot of every prompt in insertion order.
func (s *Store) AllPrompts() []models.Prompt {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Prompt, 0, len(s.promptIDs))
	for _, id := range s.promptIDs {
		out = append(out, s.prompts[id])
	}
	return out
}

// UpdatePrompt replaces the stored value if the id exists. It never
// inserts: updating an unknown id reports ok=false.
func (s *Store) UpdatePrompt(id string, p models.Prompt) (models.Prompt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.prompts[id]; !ok {
		return models.Prompt{}, false
	}
	s.prompts[id] = p
	return p, true
}

// DeletePrompt removes a prompt and reports whether anything was removed.
func (s *Store) DeletePrompt(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.prompts[id]; !ok {
		return false
	}
	delete(s.prompts, id)
	s.promptIDs = removeID(s.promptIDs, id)
	return true
}

// PromptsByCollection returns every prompt referencing the collection, in
// insertion order. A linear scan; there is no secondary index at this scale.
func (s *Store) PromptsByCollection(collectionID string) []models.Prompt {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Prompt
	for _, id := range s.promptIDs {
		p := s.prompts[id]
		if p.CollectionID != nil && *p.CollectionID == collectionID {
			out = append(out, p)
		}
	}
	return out
}

// CreateCollection inserts a collection keyed by its id.
func (s *Store) CreateCollection(c models.Collection) models.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.collections[c.ID]; !exists {
		s.collectionIDs = append(s.collectionIDs, c.ID)
	}
	s.collections[c.ID] = c
	return c
}

// GetCollection retrieves a collection by id.
func (s *Store) GetCollection(id string) (models.Collection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[id]
	return c, ok
}

// AllCollections returns a snapshot of every collection in insertion order.
func (s *Store) AllCollections() []models.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Collection, 0, len(s.collectionIDs))
	for _, id := range s.collectionIDs {
		out = append(out, s.collections[id])
	}
	return out
}

// DeleteCollection removes a collection and reports whether anything was
// removed. Referencing prompts are left alone; use DeleteCollectionCascade
// for the full cascade.
func (s *Store) DeleteCollection(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.deleteCollectionLocked(id)
}

// DeleteCollectionCascade removes the collection and every prompt
// referencing it under a single lock hold, so no reader can observe a
// half-cascaded state. It returns how many prompts were removed and
// whether the collection existed.
func (s *Store) DeleteCollectionCascade(id string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collections[id]; !ok {
		return 0, false
	}

	removed := 0
	kept := make([]string, 0, len(s.promptIDs))
	for _, pid := range s.promptIDs {
		p := s.prompts[pid]
		if p.CollectionID != nil && *p.CollectionID == id {
			delete(s.prompts, pid)
			removed++
			continue
		}
		kept = append(kept, pid)
	}
	s.promptIDs = kept

	s.deleteCollectionLocked(id)
	return removed, true
}

// Clear empties both collections. Only used for test isolation.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prompts = make(map[string]models.Prompt)
	s.promptIDs = nil
	s.collections = make(map[string]models.Collection)
	s.collectionIDs = nil
}

// deleteCollectionLocked removes a collection entry. Callers hold s.mu.
func (s *Store) deleteCollectionLocked(id string) bool {
	if _, ok := s.collections[id]; !ok {
		return false
	}
	delete(s.collections, id)
	s.collectionIDs = removeID(s.collectionIDs, id)
	return true
}

// removeID drops the first occurrence of id from the order slice.
func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
