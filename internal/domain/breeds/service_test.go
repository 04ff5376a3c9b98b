package breeds

import (
	"context"
	"errors"
	"testing"
	"time"
)

type testRepo struct {
	order []string
	byID  map[string]Breed
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Breed{}}
}

func (r *testRepo) Create(ctx context.Context, b Breed) error {
	if b.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[b.ID] = b
	r.order = append(r.order, b.ID)
	return nil
}

func (r *testRepo) Update(ctx context.Context, b Breed) error {
	if _, ok := r.byID[b.ID]; !ok {
		return ErrNotFound
	}
	r.byID[b.ID] = b
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Breed, error) {
	b, ok := r.byID[id]
	if !ok {
		return Breed{}, ErrNotFound
	}
	return b, nil
}

func (r *testRepo) List(ctx context.Context, filter ListFilter) ([]Breed, error) {
	out := make([]Breed, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func TestService_Groups_FirstSeenOrder(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	// herding aparece primero, luego toy, luego otro herding
	for _, in := range []CreateInput{
		{Name: "Border Collie", Group: "herding", Size: "medium"},
		{Name: "Chihuahua", Group: "toy", Size: "small"},
		{Name: "German Shepherd", Group: "herding", Size: "large"},
	} {
		if _, err := svc.Create(context.Background(), in); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}

	groups, err := svc.Groups(context.Background())
	if err != nil {
		t.Fatalf("Groups error: %v", err)
	}

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Group != GroupHerding || groups[0].Count != 2 {
		t.Fatalf("expected herding first with count 2, got %+v", groups[0])
	}
	if groups[0].Breeds[0] != "Border Collie" || groups[0].Breeds[1] != "German Shepherd" {
		t.Fatalf("expected breed names in insertion order, got %v", groups[0].Breeds)
	}
	if groups[1].Group != GroupToy || groups[1].Count != 1 {
		t.Fatalf("expected toy second with count 1, got %+v", groups[1])
	}
}

func TestService_Groups_EmptyCatalog(t *testing.T) {
	svc := NewService(newTestRepo())

	groups, err := svc.Groups(context.Background())
	if err != nil {
		t.Fatalf("Groups error: %v", err)
	}
	if len(groups) != 0 {
		t.Fatalf("expected no groups for empty catalog, got %d", len(groups))
	}
}

func TestService_Update_LifespanPatch(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), CreateInput{
		Name: "Beagle", Group: "hound", Size: "medium", LifespanMin: 10, LifespanMax: 14,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	newMax := 15
	updated, err := svc.Update(context.Background(), created.ID, UpdateInput{LifespanMax: &newMax})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Lifespan.Min != 10 || updated.Lifespan.Max != 15 {
		t.Fatalf("expected lifespan 10..15, got %+v", updated.Lifespan)
	}
}
