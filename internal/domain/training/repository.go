package training

import "context"

type Repository interface {
	Create(ctx context.Context, rec Record) error
	Update(ctx context.Context, rec Record) error
	GetByID(ctx context.Context, id string) (Record, error)
	List(ctx context.Context, filter ListFilter) ([]Record, error)
}

// ListFilter agrupa los criterios opcionales de listado (AND).
type ListFilter struct {
	DogID   string // match exacto
	Type    string // match exacto
	Status  string // match exacto
	Trainer string // subcadena, case-insensitive
}
