package complaint

import (
	"errors"
	"fmt"
	"net/mail"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/bweni/core"
	"github.com/trezcool/bweni/core/auth"
)

var ErrNotFound = errors.New("complaint not found")

type (
	Repository interface {
		// PrependComplaint inserts at the head of the collection so listings
		// come out newest-first.
		PrependComplaint(c Complaint) (Complaint, error)
		QueryAllComplaints() ([]Complaint, error)
		GetComplaintByID(id string) (Complaint, error)
		UpdateComplaint(c Complaint) (Complaint, error)
	}

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

// Submit files a new complaint for the student principal; it starts pending,
// dated today, with no admin fields set. nc must have been validated.
func (svc *Service) Submit(p auth.Principal, nc NewComplaint) (Complaint, error) {
	owner, restricted := auth.Owner(p)
	if !restricted {
		return Complaint{}, auth.ErrPermissionDenied // admins have no student record to complain as
	}
	return svc.repo.PrependComplaint(Complaint{
		StudentID:     owner,
		Title:         nc.Title,
		Description:   nc.Description,
		Category:      nc.Category,
		Priority:      nc.Priority,
		Status:        StatusPending,
		DateSubmitted: core.Today(),
	})
}

// Query lists complaints newest-first. A student principal only sees their
// own complaints.
func (svc *Service) Query(p auth.Principal) ([]Info, error) {
	cpls, err := svc.repo.QueryAllComplaints()
	if err != nil {
		return nil, err
	}

	owner, restricted := auth.Owner(p)
	infos := make([]Info, 0, len(cpls))
	for _, c := range cpls {
		if restricted && c.StudentID != owner {
			continue
		}
		infos = append(infos, svc.info(c))
	}
	return infos, nil
}

// UpdateStatus sets a complaint's status; any status may be set from any
// other. The first move away from pending stamps the acting admin's id;
// resolving stamps today's date (and keeps it if later un-resolved). An
// empty response is stored as unset, never as "". The student is notified
// when their complaint is resolved. su must have been validated.
func (svc *Service) UpdateStatus(p auth.Principal, id string, su StatusUpdate) (Complaint, error) {
	if err := auth.RequireAdmin(p); err != nil {
		return Complaint{}, err
	}
	c, err := svc.repo.GetComplaintByID(id)
	if err != nil {
		return Complaint{}, err
	}

	wasResolved := c.Status == StatusResolved
	c.Status = su.Status
	if su.AdminResponse != "" {
		c.AdminResponse = null.StringFrom(su.AdminResponse)
	} else {
		c.AdminResponse = null.String{}
	}
	if su.Status != StatusPending && !c.AdminID.Valid {
		admin := p.(auth.Admin)
		c.AdminID = null.StringFrom(admin.ID)
	}
	if su.Status == StatusResolved {
		c.DateResolved = null.StringFrom(core.Today())
	}

	c, err = svc.repo.UpdateComplaint(c)
	if err != nil {
		return Complaint{}, err
	}

	if su.Status == StatusResolved && !wasResolved {
		if to, ok := svc.students.StudentContact(c.StudentID); ok {
			body := fmt.Sprintf("Hi %s,\n\nYour complaint %q has been resolved.", to.Name, c.Title)
			if c.AdminResponse.Valid {
				body += "\n\nResponse: " + c.AdminResponse.String
			}
			svc.mailSvc.SendMessages(&core.EmailMessage{
				To:      []mail.Address{to},
				Subject: "Your complaint has been resolved",
				Body:    body,
			})
		}
	}
	return c, nil
}

func (svc *Service) info(c Complaint) Info {
	name, ok := svc.students.StudentName(c.StudentID)
	if !ok {
		name = core.UnknownStudent
	}
	return Info{Complaint: c, StudentName: name}
}
