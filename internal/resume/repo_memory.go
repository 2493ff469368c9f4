package resume

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Document // userId -> document
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Document),
	}
}

// Get returns the stored document for a user.
func (r *MemoryRepo) Get(ctx context.Context, userID string) (Document, bool, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.data[userID]
	if !ok {
		return Document{}, false, nil
	}
	return doc.Clone(), true, nil
}

// Set overwrites the stored document for a user.
func (r *MemoryRepo) Set(ctx context.Context, userID string, doc Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[userID] = doc.Clone()
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
