package breeds

import "context"

type Repository interface {
	Create(ctx context.Context, b Breed) error
	Update(ctx context.Context, b Breed) error
	GetByID(ctx context.Context, id string) (Breed, error)
	List(ctx context.Context, filter ListFilter) ([]Breed, error)
}

// ListFilter agrupa los criterios opcionales de listado (AND).
type ListFilter struct {
	Name  string // subcadena, case-insensitive
	Group string // match exacto
	Size  string // match exacto

	GoodWithKids *bool
	GoodWithPets *bool
}
