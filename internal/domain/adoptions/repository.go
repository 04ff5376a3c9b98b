package adoptions

import "context"

type Repository interface {
	Create(ctx context.Context, a Application) error
	Update(ctx context.Context, a Application) error
	GetByID(ctx context.Context, id string) (Application, error)
	List(ctx context.Context, filter ListFilter) ([]Application, error)
}

// ListFilter agrupa los criterios opcionales de listado (AND).
type ListFilter struct {
	Status string // match exacto
	DogID  string // match exacto
}
