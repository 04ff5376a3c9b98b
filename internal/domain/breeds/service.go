package breeds

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("breed not found")
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
	Name          string
	Group         string
	Origin        string
	Size          string
	LifespanMin   int
	LifespanMax   int
	Temperament   []string
	ExerciseNeeds string
	GroomingNeeds string
	Trainability  string
	GoodWithKids  bool
	GoodWithPets  bool
	Description   string
	ImageURL      string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Breed, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Breed{}, ErrInvalidInput
	}
	if in.Group == "" {
		return Breed{}, ErrInvalidInput
	}

	now := s.now()
	b := Breed{
		ID:            uuid.NewString(),
		Name:          strings.TrimSpace(in.Name),
		Group:         Group(in.Group),
		Origin:        strings.TrimSpace(in.Origin),
		Size:          in.Size,
		Lifespan:      Lifespan{Min: in.LifespanMin, Max: in.LifespanMax},
		Temperament:   in.Temperament,
		ExerciseNeeds: Level(in.ExerciseNeeds),
		GroomingNeeds: Level(in.GroomingNeeds),
		Trainability:  Level(in.Trainability),
		GoodWithKids:  in.GoodWithKids,
		GoodWithPets:  in.GoodWithPets,
		Description:   strings.TrimSpace(in.Description),
		ImageURL:      strings.TrimSpace(in.ImageURL),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return Breed{}, err
	}
	return b, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Breed, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Breed{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Breed, error) {
	return s.repo.List(ctx, filter)
}

// UpdateInput usa punteros para PATCH real: nil = no tocar.
type UpdateInput struct {
	Name          *string
	Group         *string
	Origin        *string
	Size          *string
	LifespanMin   *int
	LifespanMax   *int
	Temperament   *[]string
	ExerciseNeeds *string
	GroomingNeeds *string
	Trainability  *string
	GoodWithKids  *bool
	GoodWithPets  *bool
	Description   *string
	ImageURL      *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Breed, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Breed{}, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return Breed{}, ErrInvalidInput
		}
		current.Name = strings.TrimSpace(*in.Name)
	}
	if in.Group != nil {
		current.Group = Group(*in.Group)
	}
	if in.Origin != nil {
		current.Origin = strings.TrimSpace(*in.Origin)
	}
	if in.Size != nil {
		current.Size = *in.Size
	}
	if in.LifespanMin != nil {
		current.Lifespan.Min = *in.LifespanMin
	}
	if in.LifespanMax != nil {
		current.Lifespan.Max = *in.LifespanMax
	}
	if in.Temperament != nil {
		current.Temperament = *in.Temperament
	}
	if in.ExerciseNeeds != nil {
		current.ExerciseNeeds = Level(*in.ExerciseNeeds)
	}
	if in.GroomingNeeds != nil {
		current.GroomingNeeds = Level(*in.GroomingNeeds)
	}
	if in.Trainability != nil {
		current.Trainability = Level(*in.Trainability)
	}
	if in.GoodWithKids != nil {
		current.GoodWithKids = *in.GoodWithKids
	}
	if in.GoodWithPets != nil {
		current.GoodWithPets = *in.GoodWithPets
	}
	if in.Description != nil {
		current.Description = strings.TrimSpace(*in.Description)
	}
	if in.ImageURL != nil {
		current.ImageURL = strings.TrimSpace(*in.ImageURL)
	}

	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Breed{}, err
	}
	return current, nil
}

// GroupSummary es el acumulador por grupo canino.
type GroupSummary struct {
	Group  Group
	Count  int
	Breeds []string
}

// Groups agrupa el catálogo por grupo canino en un solo pase,
// preservando el orden de primera aparición.
func (s *Service) Groups(ctx context.Context) ([]GroupSummary, error) {
	all, err := s.repo.List(ctx, ListFilter{})
	if err != nil {
		return nil, err
	}

	order := make([]Group, 0)
	acc := map[Group]*GroupSummary{}

	for _, b := range all {
		g, ok := acc[b.Group]
		if !ok {
			g = &GroupSummary{Group: b.Group}
			acc[b.Group] = g
			order = append(order, b.Group)
		}
		g.Count++
		g.Breeds = append(g.Breeds, b.Name)
	}

	out := make([]GroupSummary, 0, len(order))
	for _, k := range order {
		out = append(out, *acc[k])
	}
	return out, nil
}
