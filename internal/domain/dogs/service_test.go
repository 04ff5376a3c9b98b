package dogs

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	order []string
	byID  map[string]Dog
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Dog{}}
}

func (r *testRepo) Create(ctx context.Context, d Dog) error {
	if d.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[d.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[d.ID] = d
	r.order = append(r.order, d.ID)
	return nil
}

func (r *testRepo) Update(ctx context.Context, d Dog) error {
	if _, ok := r.byID[d.ID]; !ok {
		return ErrNotFound
	}
	r.byID[d.ID] = d
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Dog, error) {
	d, ok := r.byID[id]
	if !ok {
		return Dog{}, ErrNotFound
	}
	return d, nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *testRepo) List(ctx context.Context, filter ListFilter) ([]Dog, error) {
	out := make([]Dog, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_RoundTrip(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	created, err := svc.Create(context.Background(), CreateInput{
		Name:        "Rocky",
		Breed:       "labrador",
		Age:         3,
		Weight:      28.5,
		Gender:      "male",
		Color:       "black",
		Size:        "large",
		Temperament: []string{"friendly", "energetic"},
		Neutered:    true,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if created.CreatedAt != now || created.UpdatedAt != now {
		t.Fatalf("expected CreatedAt == UpdatedAt == now")
	}

	// fetch por el id asignado devuelve el mismo valor
	got, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.Name != "Rocky" || got.Breed != "labrador" || got.Age != 3 || got.Weight != 28.5 {
		t.Fatalf("round trip mismatch: %#v", got)
	}
	if got.CreatedAt != created.CreatedAt || got.UpdatedAt != created.UpdatedAt {
		t.Fatalf("round trip timestamps mismatch")
	}
}

func TestService_Create_RequiresNameAndBreed(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.Create(context.Background(), CreateInput{Breed: "beagle"}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput without name, got %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateInput{Name: "Luna"}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput without breed, got %v", err)
	}
}

func TestService_Update_RefreshesOnlyUpdatedAt(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now1 := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	now2 := now1.Add(30 * time.Minute)

	svc.now = func() time.Time { return now1 }
	created, err := svc.Create(context.Background(), CreateInput{
		Name: "Luna", Breed: "poodle", Age: 2, Weight: 8, Gender: "female", Size: "small",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	svc.now = func() time.Time { return now2 }
	newAge := 3
	updated, err := svc.Update(context.Background(), created.ID, UpdateInput{Age: &newAge})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}

	if updated.ID != created.ID {
		t.Fatalf("id must be immutable")
	}
	if updated.Age != 3 {
		t.Fatalf("expected patched age 3, got %d", updated.Age)
	}
	if updated.Name != "Luna" {
		t.Fatalf("untouched fields must survive the patch")
	}
	if updated.CreatedAt != now1 {
		t.Fatalf("CreatedAt must not change on update")
	}
	if updated.UpdatedAt != now2 {
		t.Fatalf("expected UpdatedAt refreshed to now2")
	}
}

func TestService_Update_UnknownID(t *testing.T) {
	svc := NewService(newTestRepo())

	name := "Ghost"
	_, err := svc.Update(context.Background(), "nope", UpdateInput{Name: &name})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Delete(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), CreateInput{Name: "Max", Breed: "beagle"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound deleting twice, got %v", err)
	}
}
