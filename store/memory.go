// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"sync"

	"github.com/danielhkuo/quickly-vote/models"
)

// MemoryStore keeps the tally in process memory. The zero value is ready to use.
type MemoryStore struct {
	mu    sync.Mutex
	tally models.Tally
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Increment(_ context.Context, c models.Choice) (models.Tally, error) {
	if !c.Valid() {
		return models.Tally{}, models.ErrInvalidChoice
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tally[c]++
	return s.tally, nil
}

func (s *MemoryStore) Snapshot(_ context.Context) (models.Tally, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tally, nil
}
