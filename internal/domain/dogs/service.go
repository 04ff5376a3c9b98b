package dogs

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("dog not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name        string
	Breed       string
	Age         int
	Weight      float64
	Gender      string
	Color       string
	Size        string
	Temperament []string
	Neutered    bool
	Microchip   string
	Photos      []string
	Description string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Dog, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Dog{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Breed) == "" {
		return Dog{}, ErrInvalidInput
	}

	now := s.now()
	d := Dog{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Breed:       strings.TrimSpace(in.Breed),
		Age:         in.Age,
		Weight:      in.Weight,
		Gender:      Gender(in.Gender),
		Color:       strings.TrimSpace(in.Color),
		Size:        Size(in.Size),
		Temperament: in.Temperament,
		Neutered:    in.Neutered,
		Microchip:   strings.TrimSpace(in.Microchip),
		Photos:      in.Photos,
		Description: strings.TrimSpace(in.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return Dog{}, err
	}
	return d, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Dog, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Dog{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Dog, error) {
	return s.repo.List(ctx, filter)
}

// UpdateInput usa punteros para PATCH real: nil = no tocar.
type UpdateInput struct {
	Name        *string
	Breed       *string
	Age         *int
	Weight      *float64
	Gender      *string
	Color       *string
	Size        *string
	Temperament *[]string
	Neutered    *bool
	Microchip   *string
	Photos      *[]string
	Description *string
}

// Update mezcla el patch sobre el registro existente y refresca solo
// UpdatedAt; el ID y CreatedAt son inmutables.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Dog, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Dog{}, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return Dog{}, ErrInvalidInput
		}
		current.Name = strings.TrimSpace(*in.Name)
	}
	if in.Breed != nil {
		if strings.TrimSpace(*in.Breed) == "" {
			return Dog{}, ErrInvalidInput
		}
		current.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.Age != nil {
		current.Age = *in.Age
	}
	if in.Weight != nil {
		current.Weight = *in.Weight
	}
	if in.Gender != nil {
		current.Gender = Gender(*in.Gender)
	}
	if in.Color != nil {
		current.Color = strings.TrimSpace(*in.Color)
	}
	if in.Size != nil {
		current.Size = Size(*in.Size)
	}
	if in.Temperament != nil {
		current.Temperament = *in.Temperament
	}
	if in.Neutered != nil {
		current.Neutered = *in.Neutered
	}
	if in.Microchip != nil {
		current.Microchip = strings.TrimSpace(*in.Microchip)
	}
	if in.Photos != nil {
		current.Photos = *in.Photos
	}
	if in.Description != nil {
		current.Description = strings.TrimSpace(*in.Description)
	}

	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Dog{}, err
	}
	return current, nil
}

// Delete elimina el perro de forma definitiva. No retira registros
// dependientes (salud, entrenamiento, solicitudes): simplificación
// deliberada del sistema.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}
