package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"dog-adoption-api/internal/domain/adoptions"
	"dog-adoption-api/internal/query"
)

type adoptionRepo struct {
	mu    sync.RWMutex
	items []adoptions.Application
	index map[string]int
}

func NewAdoptionRepo() adoptions.Repository {
	return &adoptionRepo{index: make(map[string]int)}
}

func (r *adoptionRepo) Create(ctx context.Context, a adoptions.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("application id required")
	}
	if _, exists := r.index[a.ID]; exists {
		return errors.New("application already exists")
	}
	r.index[a.ID] = len(r.items)
	r.items = append(r.items, a)
	return nil
}

func (r *adoptionRepo) Update(ctx context.Context, a adoptions.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[a.ID]
	if !ok {
		return adoptions.ErrNotFound
	}
	r.items[i] = a
	return nil
}

func (r *adoptionRepo) GetByID(ctx context.Context, id string) (adoptions.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return adoptions.Application{}, adoptions.ErrNotFound
	}
	return r.items[i], nil
}

func (r *adoptionRepo) List(ctx context.Context, filter adoptions.ListFilter) ([]adoptions.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return query.Filter(r.items, func(a adoptions.Application) bool {
		if filter.Status != "" && string(a.Status) != filter.Status {
			return false
		}
		if filter.DogID != "" && a.DogID != filter.DogID {
			return false
		}
		return true
	}), nil
}
