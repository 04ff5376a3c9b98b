package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"dog-adoption-api/internal/domain/breeds"
	"dog-adoption-api/internal/query"
)

type breedRepo struct {
	mu    sync.RWMutex
	items []breeds.Breed
	index map[string]int
}

func NewBreedRepo() breeds.Repository {
	return &breedRepo{index: make(map[string]int)}
}

func (r *breedRepo) Create(ctx context.Context, b breeds.Breed) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(b.ID) == "" {
		return errors.New("breed id required")
	}
	if _, exists := r.index[b.ID]; exists {
		return errors.New("breed already exists")
	}
	r.index[b.ID] = len(r.items)
	r.items = append(r.items, b)
	return nil
}

func (r *breedRepo) Update(ctx context.Context, b breeds.Breed) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[b.ID]
	if !ok {
		return breeds.ErrNotFound
	}
	r.items[i] = b
	return nil
}

func (r *breedRepo) GetByID(ctx context.Context, id string) (breeds.Breed, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return breeds.Breed{}, breeds.ErrNotFound
	}
	return r.items[i], nil
}

func (r *breedRepo) List(ctx context.Context, filter breeds.ListFilter) ([]breeds.Breed, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return query.Filter(r.items, func(b breeds.Breed) bool {
		if !query.MatchFold(b.Name, filter.Name) {
			return false
		}
		if filter.Group != "" && string(b.Group) != filter.Group {
			return false
		}
		if filter.Size != "" && b.Size != filter.Size {
			return false
		}
		if filter.GoodWithKids != nil && b.GoodWithKids != *filter.GoodWithKids {
			return false
		}
		if filter.GoodWithPets != nil && b.GoodWithPets != *filter.GoodWithPets {
			return false
		}
		return true
	}), nil
}
