package complaint

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/bweni/core"
)

type Category string

const (
	CategoryMaintenance Category = "maintenance"
	CategoryFood        Category = "food"
	CategoryCleanliness Category = "cleanliness"
	CategoryNoise       Category = "noise"
	CategorySecurity    Category = "security"
	CategoryOther       Category = "other"
)

var Categories = []Category{
	CategoryMaintenance, CategoryFood, CategoryCleanliness,
	CategoryNoise, CategorySecurity, CategoryOther,
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

// Statuses may be set in any order; transitions are not constrained to be
// sequential.
var Statuses = []Status{StatusPending, StatusInProgress, StatusResolved, StatusClosed}

type Complaint struct {
	ID            string   `json:"id"`
	StudentID     string   `json:"student_id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Category      Category `json:"category"`
	Priority      Priority `json:"priority"`
	Status        Status   `json:"status"`
	DateSubmitted string   `json:"date_submitted"`
	// DateResolved keeps the date the complaint was last resolved; it is not
	// cleared when the status moves away from resolved.
	DateResolved  null.String `json:"date_resolved,omitempty"`
	AdminResponse null.String `json:"admin_response,omitempty"`
	AdminID       null.String `json:"admin_id,omitempty"`
}

// Info is a Complaint with the student id resolved to a display name.
type Info struct {
	Complaint
	StudentName string `json:"student_name"`
}

// NewComplaint contains information needed to submit a Complaint.
type NewComplaint struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Category    Category `json:"category" validate:"required,complaintcategory"`
	Priority    Priority `json:"priority" validate:"required,complaintpriority"`
}

// Validate cleans the payload, defaulting category and priority the way the
// submission form does, and reports every invalid field at once.
func (nc *NewComplaint) Validate(validate *validator.Validate, translator ut.Translator) error {
	nc.Title = core.CleanString(nc.Title)
	nc.Description = core.CleanString(nc.Description)
	if nc.Category == "" {
		nc.Category = CategoryMaintenance
	}
	if nc.Priority == "" {
		nc.Priority = PriorityMedium
	}

	if err := validate.Struct(nc); err != nil {
		return core.TranslateValidatorError(err, translator)
	}
	return nil
}

// StatusUpdate is an admin's action on a complaint.
type StatusUpdate struct {
	Status        Status `json:"status" validate:"required,complaintstatus"`
	AdminResponse string `json:"admin_response"`
}

func (su *StatusUpdate) Validate(validate *validator.Validate, translator ut.Translator) error {
	su.AdminResponse = core.CleanString(su.AdminResponse)

	if err := validate.Struct(su); err != nil {
		return core.TranslateValidatorError(err, translator)
	}
	return nil
}
