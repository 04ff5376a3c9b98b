// Package memory implementa los repositorios sobre estructuras en memoria.
// Cada repo guarda un slice en orden de inserción más un índice id -> posición,
// de modo que los listados son deterministas (orden de creación).
package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"dog-adoption-api/internal/domain/dogs"
	"dog-adoption-api/internal/query"
)

type dogRepo struct {
	mu    sync.RWMutex
	items []dogs.Dog
	index map[string]int
}

func NewDogRepo() dogs.Repository {
	return &dogRepo{index: make(map[string]int)}
}

func (r *dogRepo) Create(ctx context.Context, d dogs.Dog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(d.ID) == "" {
		return errors.New("dog id required")
	}
	if _, exists := r.index[d.ID]; exists {
		return errors.New("dog already exists")
	}
	r.index[d.ID] = len(r.items)
	r.items = append(r.items, d)
	return nil
}

func (r *dogRepo) Update(ctx context.Context, d dogs.Dog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[d.ID]
	if !ok {
		return dogs.ErrNotFound
	}
	r.items[i] = d
	return nil
}

func (r *dogRepo) GetByID(ctx context.Context, id string) (dogs.Dog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return dogs.Dog{}, dogs.ErrNotFound
	}
	return r.items[i], nil
}

func (r *dogRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return dogs.ErrNotFound
	}

	// Borrado preservando el orden relativo del resto; se reindexa la cola.
	r.items = append(r.items[:i], r.items[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.items); j++ {
		r.index[r.items[j].ID] = j
	}
	return nil
}

func (r *dogRepo) List(ctx context.Context, filter dogs.ListFilter) ([]dogs.Dog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return query.Filter(r.items, func(d dogs.Dog) bool {
		if !query.MatchFold(d.Breed, filter.Breed) {
			return false
		}
		if filter.Gender != "" && string(d.Gender) != filter.Gender {
			return false
		}
		if filter.Size != "" && string(d.Size) != filter.Size {
			return false
		}
		if !query.InIntRange(d.Age, filter.AgeMin, filter.AgeMax) {
			return false
		}
		if !query.InFloatRange(d.Weight, filter.WeightMin, filter.WeightMax) {
			return false
		}
		if filter.Neutered != nil && d.Neutered != *filter.Neutered {
			return false
		}
		return true
	}), nil
}
