package attendance

import (
	"errors"
	"math"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/bweni/core"
	"github.com/trezcool/bweni/core/auth"
)

var ErrNotFound = errors.New("attendance record not found")

type (
	Repository interface {
		QueryAllAttendance() ([]Attendance, error)
		// ReplaceAttendanceForDate atomically removes every record matching
		// (date, studentID ∈ batch) and inserts the batch.
		ReplaceAttendanceForDate(date string, records []Attendance) ([]Attendance, error)
	}

	StudentDirectory interface {
		StudentName(id string) (string, bool)
		CountStudents() (int, error)
	}

	Service struct {
		repo     Repository
		students StudentDirectory
	}
)

func NewService(repo Repository, students StudentDirectory) *Service {
	return &Service{repo: repo, students: students}
}

// Mark bulk-marks attendance for one date. It is a full replace: marking the
// same date twice overwrites rather than accumulates, and records for other
// dates are left alone. b must have been validated.
func (svc *Service) Mark(p auth.Principal, b Batch) ([]Attendance, error) {
	if err := auth.RequireAdmin(p); err != nil {
		return nil, err
	}

	records := make([]Attendance, 0, len(b.Marks))
	for _, m := range b.Marks {
		rec := Attendance{
			StudentID: m.StudentID,
			Date:      b.Date,
			Status:    m.Status,
		}
		if m.CheckInTime != "" {
			rec.CheckInTime = null.StringFrom(m.CheckInTime)
		}
		if m.CheckOutTime != "" {
			rec.CheckOutTime = null.StringFrom(m.CheckOutTime)
		}
		if m.Remarks != "" {
			rec.Remarks = null.StringFrom(m.Remarks)
		}
		records = append(records, rec)
	}
	return svc.repo.ReplaceAttendanceForDate(b.Date, records)
}

// Query lists records for the exact date, matching the case-insensitive
// search on student name. A student principal only sees their own records.
func (svc *Service) Query(p auth.Principal, date, search string) ([]Info, error) {
	recs, err := svc.repo.QueryAllAttendance()
	if err != nil {
		return nil, err
	}

	owner, restricted := auth.Owner(p)
	date = core.CleanString(date)
	search = core.CleanString(search)

	infos := make([]Info, 0, len(recs))
	for _, rec := range recs {
		if restricted && rec.StudentID != owner {
			continue
		}
		if date != "" && rec.Date != date {
			continue
		}
		info := svc.info(rec)
		if search != "" && !core.ContainsFold(info.StudentName, search) {
			continue
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// Stats summarizes one date for the admin dashboard.
func (svc *Service) Stats(p auth.Principal, date string) (Stats, error) {
	if err := auth.RequireAdmin(p); err != nil {
		return Stats{}, err
	}
	recs, err := svc.repo.QueryAllAttendance()
	if err != nil {
		return Stats{}, err
	}
	total, err := svc.students.CountStudents()
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{Date: date, TotalStudents: total}
	for _, rec := range recs {
		if rec.Date != date {
			continue
		}
		switch rec.Status {
		case StatusPresent:
			stats.PresentCount++
		case StatusAbsent:
			stats.AbsentCount++
		case StatusLate:
			stats.LateCount++
		}
	}
	if total > 0 {
		stats.AttendanceRate = int(math.Round(100 * float64(stats.PresentCount+stats.LateCount) / float64(total)))
	}
	return stats, nil
}

func (svc *Service) info(rec Attendance) Info {
	name, ok := svc.students.StudentName(rec.StudentID)
	if !ok {
		name = core.UnknownStudent
	}
	return Info{Attendance: rec, StudentName: name}
}
