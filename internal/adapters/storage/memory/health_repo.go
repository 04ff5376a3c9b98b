package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"dog-adoption-api/internal/domain/health"
	"dog-adoption-api/internal/query"
)

type healthRepo struct {
	mu    sync.RWMutex
	items []health.Record
	index map[string]int
}

func NewHealthRepo() health.Repository {
	return &healthRepo{index: make(map[string]int)}
}

func (r *healthRepo) Create(ctx context.Context, rec health.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rec.ID) == "" {
		return errors.New("health record id required")
	}
	if _, exists := r.index[rec.ID]; exists {
		return errors.New("health record already exists")
	}
	r.index[rec.ID] = len(r.items)
	r.items = append(r.items, rec)
	return nil
}

func (r *healthRepo) Update(ctx context.Context, rec health.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[rec.ID]
	if !ok {
		return health.ErrNotFound
	}
	r.items[i] = rec
	return nil
}

func (r *healthRepo) GetByID(ctx context.Context, id string) (health.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return health.Record{}, health.ErrNotFound
	}
	return r.items[i], nil
}

func (r *healthRepo) List(ctx context.Context, filter health.ListFilter) ([]health.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return query.Filter(r.items, func(rec health.Record) bool {
		if filter.DogID != "" && rec.DogID != filter.DogID {
			return false
		}
		if filter.Type != "" && string(rec.Type) != filter.Type {
			return false
		}
		if !query.MatchFold(rec.Veterinarian, filter.Veterinarian) {
			return false
		}
		if !query.InDateRange(rec.Date, filter.From, filter.To) {
			return false
		}
		return true
	}), nil
}
