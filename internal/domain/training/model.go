package training

import "time"

// TrainingType define el tipo de entrenamiento.
// @Enum basic-obedience, advanced-obedience, agility, behavioral-correction, socialization, service-training, therapy-training
type TrainingType string

const (
	TypeBasicObedience    TrainingType = "basic-obedience"
	TypeAdvancedObedience TrainingType = "advanced-obedience"
	TypeAgility           TrainingType = "agility"
	TypeBehavioral        TrainingType = "behavioral-correction"
	TypeSocialization     TrainingType = "socialization"
	TypeService           TrainingType = "service-training"
	TypeTherapy           TrainingType = "therapy-training"
)

// Status define el estado del entrenamiento.
// @Enum in-progress, completed, discontinued
type Status string

const (
	StatusInProgress   Status = "in-progress"
	StatusCompleted    Status = "completed"
	StatusDiscontinued Status = "discontinued"
)

// Record representa un entrenamiento de un perro existente.
type Record struct {
	ID    string
	DogID string

	Type     TrainingType
	Trainer  string
	Facility string // opcional

	StartDate time.Time
	EndDate   *time.Time // opcional

	Status   Status
	Skills   []string // máx 20
	Progress Progress

	Cost         *float64 // opcional
	Notes        string
	Certificates []string // opcional

	CreatedAt time.Time
	UpdatedAt time.Time
}
