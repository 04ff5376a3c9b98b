package dogs

import "time"

// Gender define el sexo del perro.
// @Enum male, female
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Size define la categoría de tamaño del perro.
// @Enum small, medium, large, extra-large
type Size string

const (
	SizeSmall      Size = "small"
	SizeMedium     Size = "medium"
	SizeLarge      Size = "large"
	SizeExtraLarge Size = "extra-large"
)

// Dog representa un perro disponible para adopción.
type Dog struct {
	ID string

	Name   string
	Breed  string // texto libre, no referencia al catálogo de razas
	Age    int    // años, 0..30
	Weight float64
	Gender Gender
	Color  string
	Size   Size

	Temperament []string // máx 10 tags
	Neutered    bool
	Microchip   string // opcional
	Photos      []string // máx 10 URLs
	Description string

	CreatedAt time.Time
	UpdatedAt time.Time
}
