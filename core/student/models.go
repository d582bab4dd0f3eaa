package student

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/bweni/core"
)

// RoomNotAssigned is rendered when no room references the student.
const RoomNotAssigned = "Not Assigned"

type Student struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Course           string `json:"course"`
	Year             int    `json:"year"`
	AdmissionDate    string `json:"admission_date"`
	ParentContact    string `json:"parent_contact"`
	Address          string `json:"address"`
	EmergencyContact string `json:"emergency_contact"`
	MessOptedIn      bool   `json:"mess_opted_in"`
}

// Info is a Student with its room number resolved from the room collection.
// Room.Students is the canonical side of that relationship.
type Info struct {
	Student
	RoomNumber string `json:"room_number"`
}

// NewStudent contains information needed to register a new Student.
type NewStudent struct {
	Name             string `json:"name" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone" validate:"required"`
	Course           string `json:"course" validate:"required"`
	Year             int    `json:"year" validate:"omitempty,min=1,max=4"`
	ParentContact    string `json:"parent_contact" validate:"required"`
	Address          string `json:"address" validate:"required"`
	EmergencyContact string `json:"emergency_contact" validate:"required"`
	MessOptedIn      bool   `json:"mess_opted_in"`
}

// Validate cleans the payload and reports every missing field at once; no
// partial entity is ever created from an invalid payload.
func (ns *NewStudent) Validate(validate *validator.Validate, translator ut.Translator) error {
	ns.Name = core.CleanString(ns.Name)
	ns.Email = core.CleanString(ns.Email, true /* lower */)
	ns.Phone = core.CleanString(ns.Phone)
	ns.Course = core.CleanString(ns.Course)
	ns.ParentContact = core.CleanString(ns.ParentContact)
	ns.Address = core.CleanString(ns.Address)
	ns.EmergencyContact = core.CleanString(ns.EmergencyContact)
	if ns.Year == 0 {
		ns.Year = 1
	}

	if err := validate.Struct(ns); err != nil {
		return core.TranslateValidatorError(err, translator)
	}
	return nil
}
