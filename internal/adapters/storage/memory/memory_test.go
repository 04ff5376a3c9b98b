package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"dog-adoption-api/internal/domain/dogs"
	"dog-adoption-api/internal/domain/health"
)

func seedDog(t *testing.T, repo dogs.Repository, id, name string, age int) {
	t.Helper()
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	err := repo.Create(context.Background(), dogs.Dog{
		ID: id, Name: name, Breed: "Beagle", Age: age, Weight: 10,
		Gender: dogs.GenderMale, Size: dogs.SizeSmall,
		CreatedAt: now, UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("Create %s error: %v", name, err)
	}
}

func TestDogRepo_List_AgeRange(t *testing.T) {
	repo := NewDogRepo()
	seedDog(t, repo, "dog-a", "Ana", 3)
	seedDog(t, repo, "dog-b", "Bruno", 5)

	min := 4
	out, err := repo.List(context.Background(), dogs.ListFilter{AgeMin: &min})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(out) != 1 || out[0].ID != "dog-b" {
		t.Fatalf("expected only dog-b, got %+v", out)
	}

	// el mínimo es inclusivo
	min = 5
	out, err = repo.List(context.Background(), dogs.ListFilter{AgeMin: &min})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(out) != 1 || out[0].ID != "dog-b" {
		t.Fatalf("expected inclusive min, got %+v", out)
	}
}

func TestDogRepo_List_InsertionOrder(t *testing.T) {
	repo := NewDogRepo()
	ids := []string{"dog-1", "dog-2", "dog-3", "dog-4"}
	for i, id := range ids {
		seedDog(t, repo, id, id, i)
	}

	out, err := repo.List(context.Background(), dogs.ListFilter{})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(out) != len(ids) {
		t.Fatalf("expected %d dogs, got %d", len(ids), len(out))
	}
	for i, id := range ids {
		if out[i].ID != id {
			t.Fatalf("expected insertion order %v, got %+v", ids, out)
		}
	}
}

func TestDogRepo_Delete_Reindex(t *testing.T) {
	repo := NewDogRepo()
	for i, id := range []string{"dog-1", "dog-2", "dog-3"} {
		seedDog(t, repo, id, id, i)
	}

	if err := repo.Delete(context.Background(), "dog-2"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := repo.Delete(context.Background(), "dog-2"); !errors.Is(err, dogs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}

	// el resto sigue accesible y en orden tras el reindexado
	d, err := repo.GetByID(context.Background(), "dog-3")
	if err != nil || d.ID != "dog-3" {
		t.Fatalf("GetByID after delete: %v (%+v)", err, d)
	}
	out, err := repo.List(context.Background(), dogs.ListFilter{})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(out) != 2 || out[0].ID != "dog-1" || out[1].ID != "dog-3" {
		t.Fatalf("unexpected order after delete: %+v", out)
	}
}

func TestHealthRepo_List_DateRangeInclusive(t *testing.T) {
	repo := NewHealthRepo()
	d := func(day int) time.Time {
		return time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC)
	}
	for i, day := range []int{5, 10, 15} {
		err := repo.Create(context.Background(), health.Record{
			ID: []string{"rec-1", "rec-2", "rec-3"}[i], DogID: "dog-1",
			Type: health.TypeCheckup, Date: d(day), Veterinarian: "Dra. Soto",
		})
		if err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}

	from, to := d(10), d(15)
	out, err := repo.List(context.Background(), health.ListFilter{From: &from, To: &to})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(out) != 2 || out[0].ID != "rec-2" || out[1].ID != "rec-3" {
		t.Fatalf("expected inclusive window [rec-2 rec-3], got %+v", out)
	}
}

func TestSeed_LoadsFixedDataset(t *testing.T) {
	dogRepo := NewDogRepo()
	breedRepo := NewBreedRepo()
	adoptionRepo := NewAdoptionRepo()
	healthRepo := NewHealthRepo()
	trainingRepo := NewTrainingRepo()

	if err := Seed(context.Background(), dogRepo, breedRepo, adoptionRepo, healthRepo, trainingRepo); err != nil {
		t.Fatalf("Seed error: %v", err)
	}

	out, err := dogRepo.List(context.Background(), dogs.ListFilter{})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(out) != 5 {
		t.Fatalf("expected 5 seeded dogs, got %d", len(out))
	}
	if _, err := dogRepo.GetByID(context.Background(), SeedDogRocky); err != nil {
		t.Fatalf("seeded dog missing: %v", err)
	}

	// sembrar dos veces debe fallar por ids duplicados
	if err := Seed(context.Background(), dogRepo, breedRepo, adoptionRepo, healthRepo, trainingRepo); err == nil {
		t.Fatalf("expected duplicate seed to fail")
	}
}
