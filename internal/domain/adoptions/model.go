package adoptions

import "time"

// Status define el estado de una solicitud de adopción.
// @Enum pending, approved, rejected, withdrawn
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusWithdrawn Status = "withdrawn"
)

// HousingType describe el tipo de vivienda del solicitante.
// @Enum house, apartment, condo, farm, other
type HousingType string

const (
	HousingHouse     HousingType = "house"
	HousingApartment HousingType = "apartment"
	HousingCondo     HousingType = "condo"
	HousingFarm      HousingType = "farm"
	HousingOther     HousingType = "other"
)

// Experience define el nivel de experiencia previa con perros.
// @Enum first-time, some-experience, experienced
type Experience string

const (
	ExperienceFirstTime Experience = "first-time"
	ExperienceSome      Experience = "some-experience"
	ExperienceExpert    Experience = "experienced"
)

// Address es la dirección estructurada del solicitante.
type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

// Application representa una solicitud de adopción sobre un perro
// existente. DogID debe referenciar un perro presente al momento de crear.
type Application struct {
	ID    string
	DogID string

	ApplicantName  string
	Email          string
	Phone          string
	Address        Address
	HousingType    HousingType
	HasYard        bool
	Experience     Experience

	Status Status
	Reason string
	Notes  string

	CreatedAt time.Time
	UpdatedAt time.Time
}
