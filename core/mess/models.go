package mess

import "github.com/volatiletech/null/v8"

// MessFee bills one student for one month+year period.
// Invariant: PaidDate is set if and only if Paid is true.
type MessFee struct {
	ID        string      `json:"id"`
	StudentID string      `json:"student_id"`
	Month     string      `json:"month"`
	Year      int         `json:"year"`
	Amount    float64     `json:"amount"`
	Paid      bool        `json:"paid"`
	DueDate   string      `json:"due_date"`
	PaidDate  null.String `json:"paid_date,omitempty"`
}

// Info is a MessFee with the student id resolved to a display name.
type Info struct {
	MessFee
	StudentName string `json:"student_name"`
}

// Stats summarizes collection across the whole collection.
type Stats struct {
	TotalFees      int     `json:"total_fees"`
	PaidFees       int     `json:"paid_fees"`
	UnpaidFees     int     `json:"unpaid_fees"`
	TotalAmount    float64 `json:"total_amount"`
	PaidAmount     float64 `json:"paid_amount"`
	CollectionRate int     `json:"collection_rate"` // percentage; 0 when nothing is billed
}
