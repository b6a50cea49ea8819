package property

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryRepository is an in-memory Repository for tests and local
// experimentation. Matching semantics mirror the Postgres queries.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]Property
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: map[string]Property{}}
}

func (r *MemoryRepository) Put(p Property) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[p.ID] = p
}

func (r *MemoryRepository) Search(_ context.Context, f SearchFilter) ([]Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := []Property{}
	for _, p := range r.items {
		if matches(p, f) {
			matched = append(matched, p)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID < matched[j].ID
	})

	if f.Offset >= len(matched) {
		return []Property{}, nil
	}
	matched = matched[f.Offset:]
	if f.Limit > 0 && f.Limit < len(matched) {
		matched = matched[:f.Limit]
	}
	return matched, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return Property{}, ErrNotFound
	}
	return p, nil
}

func matches(p Property, f SearchFilter) bool {
	if f.City != "" && !strings.EqualFold(p.City, f.City) {
		return false
	}
	if f.State != "" && !strings.EqualFold(p.State, f.State) {
		return false
	}
	if f.Type != "" && p.Type != f.Type {
		return false
	}
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.MinPrice > 0 && p.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}
	if f.MinBedrooms > 0 && p.Bedrooms < f.MinBedrooms {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			return false
		}
	}
	return true
}
