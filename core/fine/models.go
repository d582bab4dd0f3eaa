package fine

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/bweni/core"
)

// Reasons is the fixed list a fine may be issued for; "Other" is the
// catch-all, detailed in the description.
var Reasons = []string{
	"Late Night Noise",
	"Damaged Property",
	"Cleanliness Issues",
	"Unauthorized Guest",
	"Smoking in Room",
	"Misuse of Common Areas",
	"Late Fee Payment",
	"Other",
}

// Fine penalizes one student.
// Invariant: PaidDate is set if and only if Paid is true.
type Fine struct {
	ID          string      `json:"id"`
	StudentID   string      `json:"student_id"`
	Reason      string      `json:"reason"`
	Amount      float64     `json:"amount"`
	DateIssued  string      `json:"date_issued"`
	Paid        bool        `json:"paid"`
	PaidDate    null.String `json:"paid_date,omitempty"`
	Description string      `json:"description"`
}

// Info is a Fine with the student id resolved to a display name.
type Info struct {
	Fine
	StudentName string `json:"student_name"`
}

// Stats summarizes collection across the whole collection.
type Stats struct {
	TotalFines     int     `json:"total_fines"`
	PaidFines      int     `json:"paid_fines"`
	UnpaidFines    int     `json:"unpaid_fines"`
	TotalAmount    float64 `json:"total_amount"`
	PaidAmount     float64 `json:"paid_amount"`
	UnpaidAmount   float64 `json:"unpaid_amount"`
	CollectionRate int     `json:"collection_rate"` // percentage; 0 when nothing is fined
}

// NewFine contains information needed to issue a new Fine.
type NewFine struct {
	StudentID   string  `json:"student_id" validate:"required"`
	Reason      string  `json:"reason" validate:"required,finereason"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description" validate:"required"`
}

// Validate cleans the payload and reports every invalid field at once.
func (nf *NewFine) Validate(validate *validator.Validate, translator ut.Translator) error {
	nf.StudentID = core.CleanString(nf.StudentID)
	nf.Reason = core.CleanString(nf.Reason)
	nf.Description = core.CleanString(nf.Description)

	if err := validate.Struct(nf); err != nil {
		return core.TranslateValidatorError(err, translator)
	}
	return nil
}
