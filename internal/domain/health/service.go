package health

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
	ErrNotFound     = errors.New("health record not found")

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
	Date         time.Time
	Veterinarian string
	Clinic       string
	Description  string
	Medications  []string
	Cost         *float64
	FollowUpDate *time.Time
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Record, error) {
	if strings.TrimSpace(in.DogID) == "" {
		return Record{}, ErrInvalidInput
	}
	if in.Type == "" || in.Date.IsZero() {
		return Record{}, ErrInvalidInput
	}

	// Guarda de integridad: el perro debe existir al momento de crear.
	if _, err := s.dogs.GetByID(ctx, in.DogID); err != nil {
		return Record{}, ErrDogNotFound
	}

	now := s.now()
	rec := Record{
		ID:           uuid.NewString(),
		DogID:        strings.TrimSpace(in.DogID),
		Type:         RecordType(in.Type),
		Date:         in.Date,
		Veterinarian: strings.TrimSpace(in.Veterinarian),
		Clinic:       strings.TrimSpace(in.Clinic),
		Description:  strings.TrimSpace(in.Description),
		Medications:  in.Medications,
		Cost:         in.Cost,
		FollowUpDate: in.FollowUpDate,
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
	Date         *time.Time
	Veterinarian *string
	Clinic       *string
	Description  *string
	Medications  *[]string
	Cost         *float64
	FollowUpDate *time.Time
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Record, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Record{}, err
	}

	if in.Type != nil {
		current.Type = RecordType(*in.Type)
	}
	if in.Date != nil {
		current.Date = *in.Date
	}
	if in.Veterinarian != nil {
		current.Veterinarian = strings.TrimSpace(*in.Veterinarian)
	}
	if in.Clinic != nil {
		current.Clinic = strings.TrimSpace(*in.Clinic)
	}
	if in.Description != nil {
		current.Description = strings.TrimSpace(*in.Description)
	}
	if in.Medications != nil {
		current.Medications = *in.Medications
	}
	if in.Cost != nil {
		current.Cost = in.Cost
	}
	if in.FollowUpDate != nil {
		current.FollowUpDate = in.FollowUpDate
	}

	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Record{}, err
	}
	return current, nil
}

// vetKey es la clave compuesta del directorio: veterinario + clínica.
type vetKey struct {
	vet    string
	clinic string
}

// VetSummary es el acumulador por veterinario/clínica.
type VetSummary struct {
	Veterinarian string
	Clinic       string
	RecordTypes  []RecordType
	TotalRecords int
}

// VetDirectory agrupa los registros por (veterinario, clínica) en un solo
// pase, preservando el orden de primera aparición.
func (s *Service) VetDirectory(ctx context.Context) ([]VetSummary, error) {
	recs, err := s.repo.List(ctx, ListFilter{})
	if err != nil {
		return nil, err
	}

	order := make([]vetKey, 0)
	acc := map[vetKey]*VetSummary{}

	for _, rec := range recs {
		if strings.TrimSpace(rec.Veterinarian) == "" {
			continue
		}
		k := vetKey{vet: rec.Veterinarian, clinic: rec.Clinic}

		v, ok := acc[k]
		if !ok {
			v = &VetSummary{Veterinarian: rec.Veterinarian, Clinic: rec.Clinic}
			acc[k] = v
			order = append(order, k)
		}
		v.TotalRecords++

		seen := false
		for _, t := range v.RecordTypes {
			if t == rec.Type {
				seen = true
				break
			}
		}
		if !seen {
			v.RecordTypes = append(v.RecordTypes, rec.Type)
		}
	}

	out := make([]VetSummary, 0, len(order))
	for _, k := range order {
		out = append(out, *acc[k])
	}
	return out, nil
}

// VaccinationStatus resume el estado de vacunación de un perro.
type VaccinationStatus struct {
	DogID             string
	UpToDate          bool
	LastVaccination   *time.Time
	NextDue           *time.Time
	TotalVaccinations int
	Vaccinations      []Record
}

// Vaccinations calcula el estado de vacunación: "al día" significa que la
// vacuna más reciente es posterior a hoy menos un año calendario
// (AddDate(-1,0,0)); en años bisiestos la ventana no es exactamente 365
// días. Comportamiento heredado, deliberadamente sin corregir.
func (s *Service) Vaccinations(ctx context.Context, dogID string) (VaccinationStatus, error) {
	if _, err := s.dogs.GetByID(ctx, dogID); err != nil {
		return VaccinationStatus{}, ErrDogNotFound
	}

	recs, err := s.repo.List(ctx, ListFilter{DogID: dogID, Type: string(TypeVaccination)})
	if err != nil {
		return VaccinationStatus{}, err
	}

	// más reciente primero
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Date.After(recs[j].Date)
	})

	st := VaccinationStatus{
		DogID:             dogID,
		TotalVaccinations: len(recs),
		Vaccinations:      recs,
	}
	if len(recs) == 0 {
		return st, nil
	}

	latest := recs[0]
	oneYearAgo := s.now().AddDate(-1, 0, 0)

	st.LastVaccination = &latest.Date
	st.UpToDate = latest.Date.After(oneYearAgo)
	st.NextDue = latest.FollowUpDate

	return st, nil
}
