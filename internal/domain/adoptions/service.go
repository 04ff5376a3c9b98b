package adoptions

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"dog-adoption-api/internal/domain/dogs"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("application not found")

	// ErrDogNotFound señala que el dogId referenciado no existe.
	ErrDogNotFound = errors.New("dog not found")
)

// DogService es lo que este módulo necesita del módulo dogs: existencia
// para la guarda de integridad y el listado para la tasa de adopción.
type DogService interface {
	GetByID(ctx context.Context, id string) (dogs.Dog, error)
	List(ctx context.Context, filter dogs.ListFilter) ([]dogs.Dog, error)
}

type Service struct {
	repo Repository
	dogs DogService
	now  func() time.Time
}

func NewService(repo Repository, dogSvc DogService) *Service {
	return &Service{
		repo: repo,
		dogs: dogSvc,
		now:  time.Now,
	}
}

type CreateInput struct {
	DogID         string
	ApplicantName string
	Email         string
	Phone         string
	Address       Address
	HousingType   string
	HasYard       bool
	Experience    string
	Reason        string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Application, error) {
	if strings.TrimSpace(in.DogID) == "" {
		return Application{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.ApplicantName) == "" {
		return Application{}, ErrInvalidInput
	}

	// Guarda de integridad: el perro debe existir al momento de crear.
	// No hay chequeo inverso al borrar perros (sin cascada).
	if _, err := s.dogs.GetByID(ctx, in.DogID); err != nil {
		return Application{}, ErrDogNotFound
	}

	now := s.now()
	a := Application{
		ID:            uuid.NewString(),
		DogID:         strings.TrimSpace(in.DogID),
		ApplicantName: strings.TrimSpace(in.ApplicantName),
		Email:         strings.TrimSpace(in.Email),
		Phone:         strings.TrimSpace(in.Phone),
		Address:       in.Address,
		HousingType:   HousingType(in.HousingType),
		HasYard:       in.HasYard,
		Experience:    Experience(in.Experience),
		Status:        StatusPending,
		Reason:        strings.TrimSpace(in.Reason),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Application{}, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Application, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Application{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Application, error) {
	return s.repo.List(ctx, filter)
}

// UpdateInput usa punteros para PATCH real: nil = no tocar.
type UpdateInput struct {
	Status *string
	Reason *string
	Notes  *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Application, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Application{}, err
	}

	if in.Status != nil {
		current.Status = Status(*in.Status)
	}
	if in.Reason != nil {
		current.Reason = strings.TrimSpace(*in.Reason)
	}
	if in.Notes != nil {
		current.Notes = strings.TrimSpace(*in.Notes)
	}

	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Application{}, err
	}
	return current, nil
}

// Stats resume las solicitudes por estado.
type Stats struct {
	TotalApplications int
	Pending           int
	Approved          int
	Rejected          int
	Withdrawn         int
	TotalDogs         int

	// AdoptionRate = approved / totalDogs * 100, redondeado a 2 decimales.
	// No está acotada a 100: con solicitudes aprobadas repetidas sobre el
	// mismo perro puede superarla. Comportamiento heredado, no se corrige.
	AdoptionRate float64
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	apps, err := s.repo.List(ctx, ListFilter{})
	if err != nil {
		return Stats{}, err
	}

	out := Stats{TotalApplications: len(apps)}
	for _, a := range apps {
		switch a.Status {
		case StatusPending:
			out.Pending++
		case StatusApproved:
			out.Approved++
		case StatusRejected:
			out.Rejected++
		case StatusWithdrawn:
			out.Withdrawn++
		}
	}

	allDogs, err := s.dogs.List(ctx, dogs.ListFilter{})
	if err != nil {
		return Stats{}, err
	}
	out.TotalDogs = len(allDogs)

	if out.TotalDogs > 0 {
		rate := float64(out.Approved) / float64(out.TotalDogs) * 100
		out.AdoptionRate = math.Round(rate*100) / 100
	}

	return out, nil
}
