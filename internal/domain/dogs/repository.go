package dogs

import "context"

type Repository interface {
	Create(ctx context.Context, d Dog) error
	Update(ctx context.Context, d Dog) error
	GetByID(ctx context.Context, id string) (Dog, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]Dog, error)
}

// ListFilter agrupa los criterios opcionales de listado. Campos vacíos o
// nil no imponen restricción; todos los presentes se combinan con AND.
type ListFilter struct {
	Breed  string // subcadena, case-insensitive
	Gender string // match exacto
	Size   string // match exacto

	AgeMin    *int
	AgeMax    *int
	WeightMin *float64
	WeightMax *float64

	Neutered *bool
}
