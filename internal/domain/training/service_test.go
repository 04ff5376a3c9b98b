package training

import (
	"context"
	"errors"
	"testing"
	"time"

	"dog-adoption-api/internal/domain/dogs"
)

// -------------------------
// Test doubles
// -------------------------

type testRepo struct {
	order []string
	byID  map[string]Record
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Record{}}
}

func (r *testRepo) Create(ctx context.Context, rec Record) error {
	if rec.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[rec.ID] = rec
	r.order = append(r.order, rec.ID)
	return nil
}

func (r *testRepo) Update(ctx context.Context, rec Record) error {
	if _, ok := r.byID[rec.ID]; !ok {
		return ErrNotFound
	}
	r.byID[rec.ID] = rec
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Record, error) {
	rec, ok := r.byID[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

func (r *testRepo) List(ctx context.Context, filter ListFilter) ([]Record, error) {
	out := make([]Record, 0, len(r.order))
	for _, id := range r.order {
		rec := r.byID[id]
		if filter.DogID != "" && rec.DogID != filter.DogID {
			continue
		}
		if filter.Status != "" && string(rec.Status) != filter.Status {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

type testDogs struct{ ids []string }

func (d *testDogs) GetByID(ctx context.Context, id string) (dogs.Dog, error) {
	for _, v := range d.ids {
		if v == id {
			return dogs.Dog{ID: id}, nil
		}
	}
	return dogs.Dog{}, dogs.ErrNotFound
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_ForeignKeyGuard(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, &testDogs{ids: []string{"dog-1"}})

	_, err := svc.Create(context.Background(), CreateInput{
		DogID: "ghost", Type: "agility", Trainer: "Carla", StartDate: date(2026, 1, 10),
	})
	if !errors.Is(err, ErrDogNotFound) {
		t.Fatalf("expected ErrDogNotFound, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected no mutation on FK failure")
	}
}

func TestService_Create_Defaults(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, &testDogs{ids: []string{"dog-1"}})

	rec, err := svc.Create(context.Background(), CreateInput{
		DogID: "dog-1", Type: "basic-obedience", Trainer: "Carla", StartDate: date(2026, 1, 10),
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if rec.Status != StatusInProgress {
		t.Fatalf("expected default status in-progress, got %q", rec.Status)
	}
	if rec.Progress != ProgressFair {
		t.Fatalf("expected default progress fair, got %q", rec.Progress)
	}
}

func TestService_ProgressByDog_Partition(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, &testDogs{ids: []string{"dog-1"}})

	seed := []CreateInput{
		{DogID: "dog-1", Type: "basic-obedience", Trainer: "Carla", StartDate: date(2026, 1, 10),
			Status: "completed", Progress: "excellent", Skills: []string{"sit", "stay"}},
		{DogID: "dog-1", Type: "agility", Trainer: "Marco", StartDate: date(2026, 3, 5),
			Status: "in-progress", Progress: "good", Skills: []string{"stay", "jump"}},
		{DogID: "dog-1", Type: "socialization", Trainer: "Carla", StartDate: date(2026, 2, 1),
			Status: "discontinued", Progress: "poor"},
	}
	for i, in := range seed {
		if _, err := svc.Create(context.Background(), in); err != nil {
			t.Fatalf("Create #%d error: %v", i, err)
		}
	}

	p, err := svc.ProgressByDog(context.Background(), "dog-1")
	if err != nil {
		t.Fatalf("ProgressByDog error: %v", err)
	}
	if p.TotalTrainings != 3 || p.Completed != 1 || p.InProgress != 1 || p.Discontinued != 1 {
		t.Fatalf("unexpected partition: %+v", p)
	}
	// habilidades deduplicadas en orden de aparición
	want := []string{"sit", "stay", "jump"}
	if len(p.Skills) != len(want) {
		t.Fatalf("expected skills %v, got %v", want, p.Skills)
	}
	for i := range want {
		if p.Skills[i] != want[i] {
			t.Fatalf("expected skills %v, got %v", want, p.Skills)
		}
	}
	// (4+3+1)/3 = 2.67 -> good
	if p.Overall != ProgressGood {
		t.Fatalf("expected overall good, got %q", p.Overall)
	}
	// registros ordenados más reciente primero
	if !p.Records[0].StartDate.Equal(date(2026, 3, 5)) {
		t.Fatalf("expected newest first, got %v", p.Records[0].StartDate)
	}
}

func TestService_ProgressByDog_InclusiveBucketBoundary(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, &testDogs{ids: []string{"dog-1"}})

	// promedio exacto 3.5 = (3+4)/2: el umbral es inclusivo, cae en good
	for _, in := range []CreateInput{
		{DogID: "dog-1", Type: "agility", Trainer: "Carla", StartDate: date(2026, 1, 1), Progress: "good"},
		{DogID: "dog-1", Type: "agility", Trainer: "Carla", StartDate: date(2026, 2, 1), Progress: "excellent"},
	} {
		if _, err := svc.Create(context.Background(), in); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}

	p, err := svc.ProgressByDog(context.Background(), "dog-1")
	if err != nil {
		t.Fatalf("ProgressByDog error: %v", err)
	}
	if p.Overall != ProgressGood {
		t.Fatalf("expected good at the 3.5 boundary, got %q", p.Overall)
	}
}

func TestService_ProgressByDog_NoTrainings(t *testing.T) {
	svc := NewService(newTestRepo(), &testDogs{ids: []string{"dog-1"}})

	p, err := svc.ProgressByDog(context.Background(), "dog-1")
	if err != nil {
		t.Fatalf("ProgressByDog error: %v", err)
	}
	if p.TotalTrainings != 0 || p.Completed != 0 || p.InProgress != 0 || p.Discontinued != 0 {
		t.Fatalf("expected zero counters, got %+v", p)
	}
	if len(p.Skills) != 0 {
		t.Fatalf("expected empty skills, got %v", p.Skills)
	}
	// sin registros el promedio neutro cae en fair
	if p.Overall != ProgressFair {
		t.Fatalf("expected fair for empty set, got %q", p.Overall)
	}
}

func TestService_ProgressByDog_UnknownDog(t *testing.T) {
	svc := NewService(newTestRepo(), &testDogs{})

	_, err := svc.ProgressByDog(context.Background(), "ghost")
	if !errors.Is(err, ErrDogNotFound) {
		t.Fatalf("expected ErrDogNotFound, got %v", err)
	}
}

func TestService_TrainerDirectory_FirstSeenOrder(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, &testDogs{ids: []string{"dog-1"}})

	seed := []CreateInput{
		{DogID: "dog-1", Type: "basic-obedience", Trainer: "Carla", StartDate: date(2026, 1, 1), Progress: "good"},
		{DogID: "dog-1", Type: "agility", Trainer: "Marco", StartDate: date(2026, 1, 2), Progress: "fair"},
		{DogID: "dog-1", Type: "basic-obedience", Trainer: "Carla", StartDate: date(2026, 1, 3), Progress: "excellent"},
		{DogID: "dog-1", Type: "therapy-training", Trainer: "Carla", StartDate: date(2026, 1, 4), Progress: "good"},
	}
	for i, in := range seed {
		if _, err := svc.Create(context.Background(), in); err != nil {
			t.Fatalf("Create #%d error: %v", i, err)
		}
	}

	trainers, err := svc.TrainerDirectory(context.Background())
	if err != nil {
		t.Fatalf("TrainerDirectory error: %v", err)
	}
	if len(trainers) != 2 {
		t.Fatalf("expected 2 trainers, got %d", len(trainers))
	}
	if trainers[0].Trainer != "Carla" || trainers[1].Trainer != "Marco" {
		t.Fatalf("expected first-seen order, got %+v", trainers)
	}
	if trainers[0].TotalRecords != 3 {
		t.Fatalf("expected 3 records for Carla, got %d", trainers[0].TotalRecords)
	}
	// especialidades deduplicadas
	if len(trainers[0].Specialties) != 2 ||
		trainers[0].Specialties[0] != TypeBasicObedience ||
		trainers[0].Specialties[1] != TypeTherapy {
		t.Fatalf("unexpected specialties: %v", trainers[0].Specialties)
	}
	// (3+4+3)/3 = 3.33 -> good
	if trainers[0].AvgProgress != ProgressGood {
		t.Fatalf("expected avg good for Carla, got %q", trainers[0].AvgProgress)
	}
}

func TestService_Update_PatchSemantics(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, &testDogs{ids: []string{"dog-1"}})

	created := date(2026, 1, 1)
	svc.now = func() time.Time { return created }

	rec, err := svc.Create(context.Background(), CreateInput{
		DogID: "dog-1", Type: "agility", Trainer: "Carla", StartDate: date(2026, 1, 10),
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	later := date(2026, 2, 1)
	svc.now = func() time.Time { return later }

	status := "completed"
	progress := "excellent"
	updated, err := svc.Update(context.Background(), rec.ID, UpdateInput{
		Status: &status, Progress: &progress,
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Status != StatusCompleted || updated.Progress != ProgressExcellent {
		t.Fatalf("patch did not apply: %+v", updated)
	}
	// los campos no enviados quedan intactos
	if updated.Trainer != "Carla" || !updated.StartDate.Equal(date(2026, 1, 10)) {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
	if !updated.CreatedAt.Equal(created) || !updated.UpdatedAt.Equal(later) {
		t.Fatalf("timestamps: created=%v updated=%v", updated.CreatedAt, updated.UpdatedAt)
	}
}
