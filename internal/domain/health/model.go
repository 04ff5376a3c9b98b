package health

import "time"

// RecordType define el tipo de registro de salud.
// @Enum vaccination, checkup, surgery, dental, medication, injury, other
type RecordType string

const (
	TypeVaccination RecordType = "vaccination"
	TypeCheckup     RecordType = "checkup"
	TypeSurgery     RecordType = "surgery"
	TypeDental      RecordType = "dental"
	TypeMedication  RecordType = "medication"
	TypeInjury      RecordType = "injury"
	TypeOther       RecordType = "other"
)

// Record representa un evento de salud de un perro existente.
type Record struct {
	ID    string
	DogID string

	Type RecordType
	Date time.Time

	Veterinarian string
	Clinic       string
	Description  string

	Medications  []string   // opcional
	Cost         *float64   // opcional
	FollowUpDate *time.Time // opcional

	CreatedAt time.Time
	UpdatedAt time.Time
}
