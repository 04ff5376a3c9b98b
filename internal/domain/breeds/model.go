package breeds

import "time"

// Group define los 8 grupos caninos reconocidos.
// @Enum sporting, hound, working, terrier, toy, non-sporting, herding, miscellaneous
type Group string

const (
	GroupSporting      Group = "sporting"
	GroupHound         Group = "hound"
	GroupWorking       Group = "working"
	GroupTerrier       Group = "terrier"
	GroupToy           Group = "toy"
	GroupNonSporting   Group = "non-sporting"
	GroupHerding       Group = "herding"
	GroupMiscellaneous Group = "miscellaneous"
)

// Level es la escala ordinal para necesidades de ejercicio, grooming y
// facilidad de entrenamiento.
// @Enum low, moderate, high
type Level string

const (
	LevelLow      Level = "low"
	LevelModerate Level = "moderate"
	LevelHigh     Level = "high"
)

// Lifespan es el rango de expectativa de vida en años.
type Lifespan struct {
	Min int
	Max int
}

// Breed representa una raza del catálogo.
type Breed struct {
	ID string

	Name   string
	Group  Group
	Origin string
	Size   string // small, medium, large, extra-large

	Lifespan    Lifespan
	Temperament []string // máx 15 tags

	ExerciseNeeds Level
	GroomingNeeds Level
	Trainability  Level

	GoodWithKids bool
	GoodWithPets bool

	Description string
	ImageURL    string // opcional

	CreatedAt time.Time
	UpdatedAt time.Time
}
