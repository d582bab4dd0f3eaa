package fine

import (
	"errors"
	"fmt"
	"math"
	"net/mail"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/bweni/core"
	"github.com/trezcool/bweni/core/auth"
)

var ErrNotFound = errors.New("fine not found")

type (
	Repository interface {
		CreateFine(f Fine) (Fine, error)
		QueryAllFines() ([]Fine, error)
		GetFineByID(id string) (Fine, error)
		UpdateFine(f Fine) (Fine, error)
	}

	// StudentDirectory resolves student ids to display names and contacts.
	StudentDirectory interface {
		StudentName(id string) (string, bool)
		StudentContact(id string) (mail.Address, bool)
	}

	Service struct {
		repo     Repository
		students StudentDirectory
		mailSvc  core.EmailService
	}
)

func NewService(repo Repository, students StudentDirectory, mailSvc core.EmailService) *Service {
	return &Service{repo: repo, students: students, mailSvc: mailSvc}
}

// Query lists fines matching the case-insensitive search on student name or
// reason. A student principal only sees their own fines.
func (svc *Service) Query(p auth.Principal, search string) ([]Info, error) {
	fines, err := svc.repo.QueryAllFines()
	if err != nil {
		return nil, err
	}

	owner, restricted := auth.Owner(p)
	search = core.CleanString(search)

	infos := make([]Info, 0, len(fines))
	for _, f := range fines {
		if restricted && f.StudentID != owner {
			continue
		}
		info := svc.info(f)
		if search != "" && !core.ContainsFold(info.StudentName, search) && !core.ContainsFold(f.Reason, search) {
			continue
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// Add issues a new fine, dated today and unpaid, and notifies the student.
// nf must have been validated.
func (svc *Service) Add(p auth.Principal, nf NewFine) (Fine, error) {
	if err := auth.RequireAdmin(p); err != nil {
		return Fine{}, err
	}
	f, err := svc.repo.CreateFine(Fine{
		StudentID:   nf.StudentID,
		Reason:      nf.Reason,
		Amount:      nf.Amount,
		DateIssued:  core.Today(),
		Description: nf.Description,
	})
	if err != nil {
		return Fine{}, err
	}

	if to, ok := svc.students.StudentContact(f.StudentID); ok {
		svc.mailSvc.SendMessages(&core.EmailMessage{
			To:      []mail.Address{to},
			Subject: "A fine has been issued to you",
			Body: fmt.Sprintf(
				"Hi %s,\n\nA fine of %.2f has been issued to you on %s.\nReason: %s\n%s\n\nPlease settle it at the hostel office.",
				to.Name, f.Amount, f.DateIssued, f.Reason, f.Description,
			),
		})
	}
	return f, nil
}

// MarkPaid settles a fine as of today. Marking an already-paid fine is a
// silent no-op.
func (svc *Service) MarkPaid(p auth.Principal, id string) (Fine, error) {
	if err := auth.RequireAdmin(p); err != nil {
		return Fine{}, err
	}
	f, err := svc.repo.GetFineByID(id)
	if err != nil {
		return Fine{}, err
	}
	if f.Paid {
		return f, nil
	}
	f.Paid = true
	f.PaidDate = null.StringFrom(core.Today())
	return svc.repo.UpdateFine(f)
}

// Stats is the admin dashboard fines summary.
func (svc *Service) Stats(p auth.Principal) (Stats, error) {
	if err := auth.RequireAdmin(p); err != nil {
		return Stats{}, err
	}
	fines, err := svc.repo.QueryAllFines()
	if err != nil {
		return Stats{}, err
	}

	var stats Stats
	stats.TotalFines = len(fines)
	for _, f := range fines {
		stats.TotalAmount += f.Amount
		if f.Paid {
			stats.PaidFines++
			stats.PaidAmount += f.Amount
		}
	}
	stats.UnpaidFines = stats.TotalFines - stats.PaidFines
	stats.UnpaidAmount = stats.TotalAmount - stats.PaidAmount
	if stats.TotalAmount > 0 {
		stats.CollectionRate = int(math.Round(100 * stats.PaidAmount / stats.TotalAmount))
	}
	return stats, nil
}

func (svc *Service) info(f Fine) Info {
	name, ok := svc.students.StudentName(f.StudentID)
	if !ok {
		name = core.UnknownStudent
	}
	return Info{Fine: f, StudentName: name}
}
