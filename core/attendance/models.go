package attendance

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/bweni/core"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
)

var Statuses = []Status{StatusPresent, StatusAbsent, StatusLate}

// Attendance records one student on one calendar date; at most one record
// exists per (student, date) pair, enforced by replace-on-write.
type Attendance struct {
	ID           string      `json:"id"`
	StudentID    string      `json:"student_id"`
	Date         string      `json:"date"`
	Status       Status      `json:"status"`
	CheckInTime  null.String `json:"check_in_time,omitempty"`
	CheckOutTime null.String `json:"check_out_time,omitempty"`
	Remarks      null.String `json:"remarks,omitempty"`
}

// Info is an Attendance with the student id resolved to a display name.
type Info struct {
	Attendance
	StudentName string `json:"student_name"`
}

// Stats summarizes one date across the whole student body.
type Stats struct {
	Date          string `json:"date"`
	TotalStudents int    `json:"total_students"`
	PresentCount  int    `json:"present_count"`
	AbsentCount   int    `json:"absent_count"`
	LateCount     int    `json:"late_count"`
	// AttendanceRate counts late arrivals alongside present; 0 when there are
	// no students.
	AttendanceRate int `json:"attendance_rate"`
}

// Mark is one student's entry in a Batch.
type Mark struct {
	StudentID    string `json:"student_id" validate:"required"`
	Status       Status `json:"status" validate:"required,attendancestatus"`
	CheckInTime  string `json:"check_in_time" validate:"omitempty,hhmm"`
	CheckOutTime string `json:"check_out_time" validate:"omitempty,hhmm"`
	Remarks      string `json:"remarks"`
}

// Batch marks attendance for every listed student on one date.
type Batch struct {
	Date  string `json:"date" validate:"required,isodate"`
	Marks []Mark `json:"marks" validate:"required,min=1,dive"`
}

var duplicateMarkText = "a student may only appear once per batch"

// Validate cleans the payload and reports every invalid field at once.
func (b *Batch) Validate(validate *validator.Validate, translator ut.Translator) error {
	b.Date = core.CleanString(b.Date)
	for i := range b.Marks {
		m := &b.Marks[i]
		m.StudentID = core.CleanString(m.StudentID)
		m.CheckInTime = core.CleanString(m.CheckInTime)
		m.CheckOutTime = core.CleanString(m.CheckOutTime)
		m.Remarks = core.CleanString(m.Remarks)
	}

	if err := validate.Struct(b); err != nil {
		return core.TranslateValidatorError(err, translator)
	}

	// One record per (student, date): a batch may not list a student twice.
	seen := make(map[string]struct{}, len(b.Marks))
	for _, m := range b.Marks {
		if _, dup := seen[m.StudentID]; dup {
			return core.NewValidationError(
				errors.New(duplicateMarkText),
				core.FieldError{Field: "marks", Error: duplicateMarkText},
			)
		}
		seen[m.StudentID] = struct{}{}
	}
	return nil
}
