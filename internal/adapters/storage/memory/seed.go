package memory

import (
	"context"
	"time"

	"dog-adoption-api/internal/domain/adoptions"
	"dog-adoption-api/internal/domain/breeds"
	"dog-adoption-api/internal/domain/dogs"
	"dog-adoption-api/internal/domain/health"
	"dog-adoption-api/internal/domain/training"
)

// IDs fijos del dataset de demostración. Son UUID v4 válidos porque los
// payloads de creación validan dogId con formato uuid4; ids inventados a
// mano romperían esa simetría en los ejemplos de la documentación.
const (
	SeedDogRocky = "8f2b6d2a-1c3e-4f5a-9b7d-2e8c4a6f1b3d"
	SeedDogLuna  = "3a9c1e5b-7d2f-4b8a-8c4e-6f1a3d5b7c9e"
	SeedDogMax   = "b4d8f2a6-3c7e-4a1b-9d5f-8e2c6a4b1d3f"
	SeedDogDaisy = "5e1a7c3b-9f4d-4c6e-8a2b-4d6f8c1e3a5b"
	SeedDogToby  = "2c6e4a8d-5b1f-4d3a-b7c9-1e5a3f7b9d2c"
)

// Seed carga el dataset inicial de demostración: 8 razas (una por grupo),
// 5 perros, 3 solicitudes, 4 registros de salud y 4 entrenamientos.
func Seed(
	ctx context.Context,
	dogRepo dogs.Repository,
	breedRepo breeds.Repository,
	adoptionRepo adoptions.Repository,
	healthRepo health.Repository,
	trainingRepo training.Repository,
) error {
	at := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	for _, b := range seedBreeds(at) {
		if err := breedRepo.Create(ctx, b); err != nil {
			return err
		}
	}
	for _, d := range seedDogs(at) {
		if err := dogRepo.Create(ctx, d); err != nil {
			return err
		}
	}
	for _, a := range seedApplications(at) {
		if err := adoptionRepo.Create(ctx, a); err != nil {
			return err
		}
	}
	for _, h := range seedHealthRecords(at) {
		if err := healthRepo.Create(ctx, h); err != nil {
			return err
		}
	}
	for _, t := range seedTrainingRecords(at) {
		if err := trainingRepo.Create(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

func seedBreeds(at time.Time) []breeds.Breed {
	mk := func(id, name string, group breeds.Group, origin, size string, life breeds.Lifespan,
		temperament []string, exercise, grooming, train breeds.Level, kids, pets bool, desc string) breeds.Breed {
		return breeds.Breed{
			ID: id, Name: name, Group: group, Origin: origin, Size: size,
			Lifespan: life, Temperament: temperament,
			ExerciseNeeds: exercise, GroomingNeeds: grooming, Trainability: train,
			GoodWithKids: kids, GoodWithPets: pets, Description: desc,
			CreatedAt: at, UpdatedAt: at,
		}
	}

	return []breeds.Breed{
		mk("7a3c5e1b-2d4f-4e6a-9c8b-5f7d1a3e9b2c", "Labrador Retriever", breeds.GroupSporting,
			"Canada", "large", breeds.Lifespan{Min: 10, Max: 12},
			[]string{"friendly", "outgoing", "gentle"},
			breeds.LevelHigh, breeds.LevelModerate, breeds.LevelHigh, true, true,
			"Perro de cobro versátil, el favorito de las familias."),
		mk("1e5b7d3f-8a2c-4c4e-8d6a-9b1f5c3e7a4d", "Beagle", breeds.GroupHound,
			"England", "small", breeds.Lifespan{Min: 12, Max: 15},
			[]string{"curious", "merry", "determined"},
			breeds.LevelModerate, breeds.LevelLow, breeds.LevelModerate, true, true,
			"Sabueso compacto guiado por el olfato."),
		mk("9c1f3a5d-6e8b-4b2c-a4e6-3d7f9a1c5e8b", "Rottweiler", breeds.GroupWorking,
			"Germany", "large", breeds.Lifespan{Min: 8, Max: 10},
			[]string{"loyal", "confident", "protective"},
			breeds.LevelHigh, breeds.LevelLow, breeds.LevelModerate, false, false,
			"Guardián robusto de trabajo, necesita guía firme."),
		mk("4b8d2f6a-1c3e-4f7b-8e5c-7a9d3b1f6c2e", "Bull Terrier", breeds.GroupTerrier,
			"England", "medium", breeds.Lifespan{Min: 11, Max: 13},
			[]string{"playful", "mischievous", "stubborn"},
			breeds.LevelModerate, breeds.LevelLow, breeds.LevelLow, true, false,
			"Terrier musculoso de cabeza ovalada inconfundible."),
		mk("6d2a8c4e-3f5b-4a9d-b1e7-5c3a7f9b4d6e", "Chihuahua", breeds.GroupToy,
			"Mexico", "small", breeds.Lifespan{Min: 14, Max: 17},
			[]string{"alert", "bold", "devoted"},
			breeds.LevelLow, breeds.LevelLow, breeds.LevelModerate, false, true,
			"El más pequeño de los perros, con carácter de gigante."),
		mk("8e4c6a2b-7d9f-4d1c-9a3e-2b6d8f4a7c1e", "Bulldog", breeds.GroupNonSporting,
			"England", "medium", breeds.Lifespan{Min: 8, Max: 10},
			[]string{"calm", "courageous", "friendly"},
			breeds.LevelLow, breeds.LevelModerate, breeds.LevelLow, true, true,
			"Compañero tranquilo de cara arrugada."),
		mk("3f7b9d5c-4e6a-4b8f-8c2d-6a4e1b9f3d5a", "Border Collie", breeds.GroupHerding,
			"United Kingdom", "medium", breeds.Lifespan{Min: 12, Max: 15},
			[]string{"intelligent", "energetic", "responsive"},
			breeds.LevelHigh, breeds.LevelModerate, breeds.LevelHigh, true, true,
			"Pastor incansable, considerado el más inteligente."),
		mk("5a9d1f7e-2c4b-4e3a-a6c8-4f2b8d6e1a9c", "Xoloitzcuintli", breeds.GroupMiscellaneous,
			"Mexico", "medium", breeds.Lifespan{Min: 13, Max: 18},
			[]string{"calm", "attentive", "loyal"},
			breeds.LevelModerate, breeds.LevelLow, breeds.LevelModerate, true, true,
			"Perro sin pelo mexicano de linaje ancestral."),
	}
}

func seedDogs(at time.Time) []dogs.Dog {
	return []dogs.Dog{
		{
			ID: SeedDogRocky, Name: "Rocky", Breed: "Labrador Retriever",
			Age: 3, Weight: 29.5, Gender: dogs.GenderMale, Color: "golden", Size: dogs.SizeLarge,
			Temperament: []string{"friendly", "energetic"}, Neutered: true,
			Microchip:   "985112004789123",
			Photos:      []string{"https://images.example.com/dogs/rocky-1.jpg"},
			Description: "Labrador joven, ideal para familias activas.",
			CreatedAt:   at, UpdatedAt: at,
		},
		{
			ID: SeedDogLuna, Name: "Luna", Breed: "Border Collie",
			Age: 2, Weight: 17.0, Gender: dogs.GenderFemale, Color: "black and white", Size: dogs.SizeMedium,
			Temperament: []string{"intelligent", "alert"}, Neutered: true,
			Photos:      []string{"https://images.example.com/dogs/luna-1.jpg"},
			Description: "Border collie muy despierta, aprende rápido.",
			CreatedAt:   at, UpdatedAt: at,
		},
		{
			ID: SeedDogMax, Name: "Max", Breed: "Beagle",
			Age: 5, Weight: 11.2, Gender: dogs.GenderMale, Color: "tricolor", Size: dogs.SizeSmall,
			Temperament: []string{"curious", "gentle"}, Neutered: false,
			Description: "Beagle tranquilo, convive bien con otros perros.",
			CreatedAt:   at, UpdatedAt: at,
		},
		{
			ID: SeedDogDaisy, Name: "Daisy", Breed: "Bulldog",
			Age: 4, Weight: 22.8, Gender: dogs.GenderFemale, Color: "white", Size: dogs.SizeMedium,
			Temperament: []string{"calm"}, Neutered: true,
			Microchip:   "985112004781456",
			Description: "Bulldog serena, perfecta para departamento.",
			CreatedAt:   at, UpdatedAt: at,
		},
		{
			ID: SeedDogToby, Name: "Toby", Breed: "Chihuahua",
			Age: 7, Weight: 2.4, Gender: dogs.GenderMale, Color: "fawn", Size: dogs.SizeSmall,
			Temperament: []string{"bold", "devoted"}, Neutered: false,
			Description: "Chihuahua adulto, apegado a su persona.",
			CreatedAt:   at, UpdatedAt: at,
		},
	}
}

func seedApplications(at time.Time) []adoptions.Application {
	return []adoptions.Application{
		{
			ID: "c2e4a6b8-1d3f-4f5c-9e7a-3b5d7f9c2e4a", DogID: SeedDogRocky,
			ApplicantName: "María Torres", Email: "maria.torres@example.com", Phone: "+51 987 654 321",
			Address: adoptions.Address{
				Street: "Av. Arequipa 1234", City: "Lima", State: "Lima", ZipCode: "15046", Country: "PE",
			},
			HousingType: adoptions.HousingHouse, HasYard: true,
			Experience: adoptions.ExperienceExpert,
			Status:     adoptions.StatusApproved,
			Notes:      "Visita domiciliaria completada sin observaciones.",
			CreatedAt:  at, UpdatedAt: at,
		},
		{
			ID: "e6a8c2d4-5f7b-4a1e-8b3c-9d1f5a7c3e6b", DogID: SeedDogLuna,
			ApplicantName: "Jorge Campos", Email: "jorge.campos@example.com", Phone: "+51 912 345 678",
			Address: adoptions.Address{
				Street: "Jr. Los Pinos 456", City: "Cusco", State: "Cusco", ZipCode: "08002", Country: "PE",
			},
			HousingType: adoptions.HousingApartment, HasYard: false,
			Experience: adoptions.ExperienceSome,
			Status:     adoptions.StatusPending,
			CreatedAt:  at, UpdatedAt: at,
		},
		{
			ID: "a4c6e8b2-3d5f-4c7a-b9e1-7f3a5c9b1d8e", DogID: SeedDogMax,
			ApplicantName: "Ana Quispe", Email: "ana.quispe@example.com", Phone: "+51 998 877 665",
			Address: adoptions.Address{
				Street: "Calle Las Flores 789", City: "Arequipa", State: "Arequipa", ZipCode: "04001", Country: "PE",
			},
			HousingType: adoptions.HousingCondo, HasYard: false,
			Experience: adoptions.ExperienceFirstTime,
			Status:     adoptions.StatusRejected,
			Reason:     "El edificio no admite mascotas.",
			CreatedAt:  at, UpdatedAt: at,
		},
	}
}

func seedHealthRecords(at time.Time) []health.Record {
	d := func(y int, m time.Month, day int) time.Time {
		return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	}
	cost := func(v float64) *float64 { return &v }
	rockyFollowUp := d(2027, 3, 10)

	return []health.Record{
		{
			ID: "d8b2f4a6-7c9e-4e1d-8f5b-1a3c7e9d5b2f", DogID: SeedDogRocky,
			Type: health.TypeVaccination, Date: d(2026, 3, 10),
			Veterinarian: "Dra. Elena Soto", Clinic: "Veterinaria San Borja",
			Description: "Refuerzo anual antirrábica y séxtuple.",
			Medications: []string{"rabies vaccine", "DHPPiL"},
			Cost:        cost(120), FollowUpDate: &rockyFollowUp,
			CreatedAt: at, UpdatedAt: at,
		},
		{
			ID: "f2d4b6a8-9e1c-4c3f-a7d9-5b7f1d3a9c4e", DogID: SeedDogLuna,
			Type: health.TypeCheckup, Date: d(2026, 4, 2),
			Veterinarian: "Dra. Elena Soto", Clinic: "Veterinaria San Borja",
			Description: "Control general, peso y condición corporal normales.",
			Cost:        cost(80),
			CreatedAt:   at, UpdatedAt: at,
		},
		{
			ID: "b6f8d2c4-1a3e-4d5b-9c7f-3e5a9f1b7d4c", DogID: SeedDogMax,
			Type: health.TypeVaccination, Date: d(2025, 1, 20),
			Veterinarian: "Dr. Raúl Mendoza", Clinic: "Clínica Canina Miraflores",
			Description: "Vacuna antirrábica, vencida a la fecha.",
			Medications: []string{"rabies vaccine"},
			Cost:        cost(95),
			CreatedAt:   at, UpdatedAt: at,
		},
		{
			ID: "a8b4c2d6-5e7f-4f9a-8d1b-9c3e5a7f1b4d", DogID: SeedDogDaisy,
			Type: health.TypeDental, Date: d(2026, 2, 14),
			Veterinarian: "Dr. Raúl Mendoza", Clinic: "Clínica Canina Miraflores",
			Description: "Profilaxis dental bajo sedación ligera.",
			Cost:        cost(250),
			CreatedAt:   at, UpdatedAt: at,
		},
	}
}

func seedTrainingRecords(at time.Time) []training.Record {
	d := func(y int, m time.Month, day int) time.Time {
		return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	}
	cost := func(v float64) *float64 { return &v }
	rockyEnd := d(2026, 3, 15)

	return []training.Record{
		{
			ID: "c4a2e6f8-3b5d-4a7c-9f1e-5d7b3f9a1c6e", DogID: SeedDogRocky,
			Type: training.TypeBasicObedience, Trainer: "Carla Ríos", Facility: "Centro Canino Lima Norte",
			StartDate: d(2026, 1, 15), EndDate: &rockyEnd,
			Status: training.StatusCompleted,
			Skills: []string{"sit", "stay", "recall"},
			Progress: training.ProgressExcellent, Cost: cost(300),
			Certificates: []string{"basic-obedience-level-1"},
			CreatedAt:    at, UpdatedAt: at,
		},
		{
			ID: "e8c6a4b2-7f9d-4b3e-8a5c-1f9b7d5e3a2c", DogID: SeedDogRocky,
			Type: training.TypeAgility, Trainer: "Carla Ríos", Facility: "Centro Canino Lima Norte",
			StartDate: d(2026, 4, 1),
			Status:    training.StatusInProgress,
			Skills:    []string{"jump", "tunnel"},
			Progress:  training.ProgressGood, Cost: cost(350),
			CreatedAt: at, UpdatedAt: at,
		},
		{
			ID: "d2f6b8a4-9c1e-4e7f-a3b5-7d1f9c3a5e8b", DogID: SeedDogLuna,
			Type: training.TypeSocialization, Trainer: "Miguel Paredes",
			StartDate: d(2026, 3, 20),
			Status:    training.StatusInProgress,
			Skills:    []string{"greeting", "leash-walking"},
			Progress:  training.ProgressFair,
			CreatedAt: at, UpdatedAt: at,
		},
		{
			ID: "f6d8b4c2-1e3a-4c9d-b5f7-3a5c1e7f9b6d", DogID: SeedDogToby,
			Type: training.TypeBehavioral, Trainer: "Miguel Paredes",
			StartDate: d(2026, 2, 5),
			Status:    training.StatusDiscontinued,
			Skills:    []string{"bark-control"},
			Progress:  training.ProgressPoor,
			Notes:     "Suspendido por mudanza de la familia temporal.",
			CreatedAt: at, UpdatedAt: at,
		},
	}
}
