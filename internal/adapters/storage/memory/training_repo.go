package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"dog-adoption-api/internal/domain/training"
	"dog-adoption-api/internal/query"
)

type trainingRepo struct {
	mu    sync.RWMutex
	items []training.Record
	index map[string]int
}

func NewTrainingRepo() training.Repository {
	return &trainingRepo{index: make(map[string]int)}
}

func (r *trainingRepo) Create(ctx context.Context, rec training.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rec.ID) == "" {
		return errors.New("training record id required")
	}
	if _, exists := r.index[rec.ID]; exists {
		return errors.New("training record already exists")
	}
	r.index[rec.ID] = len(r.items)
	r.items = append(r.items, rec)
	return nil
}

func (r *trainingRepo) Update(ctx context.Context, rec training.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[rec.ID]
	if !ok {
		return training.ErrNotFound
	}
	r.items[i] = rec
	return nil
}

func (r *trainingRepo) GetByID(ctx context.Context, id string) (training.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return training.Record{}, training.ErrNotFound
	}
	return r.items[i], nil
}

func (r *trainingRepo) List(ctx context.Context, filter training.ListFilter) ([]training.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return query.Filter(r.items, func(rec training.Record) bool {
		if filter.DogID != "" && rec.DogID != filter.DogID {
			return false
		}
		if filter.Type != "" && string(rec.Type) != filter.Type {
			return false
		}
		if filter.Status != "" && string(rec.Status) != filter.Status {
			return false
		}
		if !query.MatchFold(rec.Trainer, filter.Trainer) {
			return false
		}
		return true
	}), nil
}
