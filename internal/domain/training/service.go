package training

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"dog-adoption-api/internal/domain/dogs"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("training record not found")

	// ErrDogNotFound señala que el dogId referenciado no existe.
	ErrDogNotFound = errors.New("dog not found")
)

// DogFinder expone la existencia de un perro sin acoplar el módulo al
// servicio completo de dogs.
type DogFinder interface {
	GetByID(ctx context.Context, id string) (dogs.Dog, error)
}

type Service struct {
	repo Repository
	dogs DogFinder
	now  func() time.Time
}

func NewService(repo Repository, finder DogFinder) *Service {
	return &Service{
		repo: repo,
		dogs: finder,
		now:  time.Now,
	}
}

type CreateInput struct {
	DogID        string
	Type         string
	Trainer      string
	Facility     string
	StartDate    time.Time
	EndDate      *time.Time
	Status       string
	Skills       []string
	Progress     string
	Cost         *float64
	Notes        string
	Certificates []string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Record, error) {
	if strings.TrimSpace(in.DogID) == "" {
		return Record{}, ErrInvalidInput
	}
	if in.Type == "" || strings.TrimSpace(in.Trainer) == "" || in.StartDate.IsZero() {
		return Record{}, ErrInvalidInput
	}

	// Guarda de integridad: el perro debe existir al momento de crear.
	if _, err := s.dogs.GetByID(ctx, in.DogID); err != nil {
		return Record{}, ErrDogNotFound
	}

	status := Status(in.Status)
	if status == "" {
		status = StatusInProgress
	}
	progress := Progress(in.Progress)
	if progress == "" {
		progress = ProgressFair
	}

	now := s.now()
	rec := Record{
		ID:           uuid.NewString(),
		DogID:        strings.TrimSpace(in.DogID),
		Type:         TrainingType(in.Type),
		Trainer:      strings.TrimSpace(in.Trainer),
		Facility:     strings.TrimSpace(in.Facility),
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Status:       status,
		Skills:       in.Skills,
		Progress:     progress,
		Cost:         in.Cost,
		Notes:        strings.TrimSpace(in.Notes),
		Certificates: in.Certificates,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Record{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Record, error) {
	return s.repo.List(ctx, filter)
}

// UpdateInput usa punteros para PATCH real: nil = no tocar.
type UpdateInput struct {
	Type         *string
	Trainer      *string
	Facility     *string
	StartDate    *time.Time
	EndDate      *time.Time
	Status       *string
	Skills       *[]string
	Progress     *string
	Cost         *float64
	Notes        *string
	Certificates *[]string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Record, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Record{}, err
	}

	if in.Type != nil {
		current.Type = TrainingType(*in.Type)
	}
	if in.Trainer != nil {
		if strings.TrimSpace(*in.Trainer) == "" {
			return Record{}, ErrInvalidInput
		}
		current.Trainer = strings.TrimSpace(*in.Trainer)
	}
	if in.Facility != nil {
		current.Facility = strings.TrimSpace(*in.Facility)
	}
	if in.StartDate != nil {
		current.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		current.EndDate = in.EndDate
	}
	if in.Status != nil {
		current.Status = Status(*in.Status)
	}
	if in.Skills != nil {
		current.Skills = *in.Skills
	}
	if in.Progress != nil {
		current.Progress = Progress(*in.Progress)
	}
	if in.Cost != nil {
		current.Cost = in.Cost
	}
	if in.Notes != nil {
		current.Notes = strings.TrimSpace(*in.Notes)
	}
	if in.Certificates != nil {
		current.Certificates = *in.Certificates
	}

	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Record{}, err
	}
	return current, nil
}

// DogProgress resume los entrenamientos de un perro.
type DogProgress struct {
	DogID          string
	TotalTrainings int
	Completed      int
	InProgress     int
	Discontinued   int
	Skills         []string
	Overall        Progress
	Records        []Record
}

// ProgressByDog particiona por estado, une las habilidades deduplicadas y
// re-proyecta el promedio de progreso sobre la escala ordinal. Sin
// entrenamientos el promedio se define como el punto medio neutro (fair).
func (s *Service) ProgressByDog(ctx context.Context, dogID string) (DogProgress, error) {
	if _, err := s.dogs.GetByID(ctx, dogID); err != nil {
		return DogProgress{}, ErrDogNotFound
	}

	recs, err := s.repo.List(ctx, ListFilter{DogID: dogID})
	if err != nil {
		return DogProgress{}, err
	}

	out := DogProgress{
		DogID:          dogID,
		TotalTrainings: len(recs),
		Skills:         make([]string, 0),
	}

	seen := map[string]struct{}{}
	sum := 0

	for _, rec := range recs {
		switch rec.Status {
		case StatusCompleted:
			out.Completed++
		case StatusInProgress:
			out.InProgress++
		case StatusDiscontinued:
			out.Discontinued++
		}

		for _, sk := range rec.Skills {
			if _, ok := seen[sk]; ok {
				continue
			}
			seen[sk] = struct{}{}
			out.Skills = append(out.Skills, sk)
		}

		sum += scoreOf(rec.Progress)
	}

	avg := float64(neutralScore)
	if len(recs) > 0 {
		avg = float64(sum) / float64(len(recs))
	}
	out.Overall = bucketProgress(avg)

	// más reciente primero
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].StartDate.After(recs[j].StartDate)
	})
	out.Records = recs

	return out, nil
}

// TrainerSummary es el acumulador por entrenador.
type TrainerSummary struct {
	Trainer      string
	Specialties  []TrainingType
	TotalRecords int
	AvgProgress  Progress
}

// TrainerDirectory agrupa los registros por nombre exacto de entrenador en
// un solo pase, preservando el orden de primera aparición.
func (s *Service) TrainerDirectory(ctx context.Context) ([]TrainerSummary, error) {
	recs, err := s.repo.List(ctx, ListFilter{})
	if err != nil {
		return nil, err
	}

	type trainerAcc struct {
		summary TrainerSummary
		sum     int
	}

	order := make([]string, 0)
	acc := map[string]*trainerAcc{}

	for _, rec := range recs {
		a, ok := acc[rec.Trainer]
		if !ok {
			a = &trainerAcc{summary: TrainerSummary{Trainer: rec.Trainer}}
			acc[rec.Trainer] = a
			order = append(order, rec.Trainer)
		}
		a.summary.TotalRecords++
		a.sum += scoreOf(rec.Progress)

		seen := false
		for _, t := range a.summary.Specialties {
			if t == rec.Type {
				seen = true
				break
			}
		}
		if !seen {
			a.summary.Specialties = append(a.summary.Specialties, rec.Type)
		}
	}

	out := make([]TrainerSummary, 0, len(order))
	for _, k := range order {
		a := acc[k]
		avg := float64(a.sum) / float64(a.summary.TotalRecords)
		a.summary.AvgProgress = bucketProgress(avg)
		out = append(out, a.summary)
	}
	return out, nil
}
