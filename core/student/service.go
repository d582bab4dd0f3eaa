package student

import (
	"errors"

	"github.com/trezcool/bweni/core"
	"github.com/trezcool/bweni/core/auth"
)

var ErrNotFound = errors.New("student not found")

type (
	Repository interface {
		CreateStudent(std Student) (Student, error)
		QueryAllStudents() ([]Student, error)
		GetStudentByID(id string) (Student, error)
	}

	// RoomDirectory resolves the room a student is assigned to.
	RoomDirectory interface {
		RoomNumberForStudent(studentID string) (string, bool)
	}

	Service struct {
		repo  Repository
		rooms RoomDirectory
	}
)

func NewService(repo Repository, rooms RoomDirectory) *Service {
	return &Service{repo: repo, rooms: rooms}
}

// Query lists students. Admins see the whole collection; a student principal
// only ever resolves their own record.
func (svc *Service) Query(p auth.Principal) ([]Info, error) {
	if owner, restricted := auth.Owner(p); restricted {
		std, err := svc.repo.GetStudentByID(owner)
		if err != nil {
			return nil, err
		}
		return []Info{svc.info(std)}, nil
	}

	stds, err := svc.repo.QueryAllStudents()
	if err != nil {
		return nil, err
	}
	infos := make([]Info, 0, len(stds))
	for _, std := range stds {
		infos = append(infos, svc.info(std))
	}
	return infos, nil
}

// Profile resolves the principal's own student record; admins have no
// student record attached.
func (svc *Service) Profile(p auth.Principal) (Info, error) {
	owner, restricted := auth.Owner(p)
	if !restricted {
		return Info{}, ErrNotFound
	}
	std, err := svc.repo.GetStudentByID(owner)
	if err != nil {
		return Info{}, err
	}
	return svc.info(std), nil
}

// Add registers a new student with a generated identifier; admission date is
// today. ns must have been validated.
func (svc *Service) Add(p auth.Principal, ns NewStudent) (Student, error) {
	if err := auth.RequireAdmin(p); err != nil {
		return Student{}, err
	}
	std := Student{
		Name:             ns.Name,
		Email:            ns.Email,
		Phone:            ns.Phone,
		Course:           ns.Course,
		Year:             ns.Year,
		AdmissionDate:    core.Today(),
		ParentContact:    ns.ParentContact,
		Address:          ns.Address,
		EmergencyContact: ns.EmergencyContact,
		MessOptedIn:      ns.MessOptedIn,
	}
	return svc.repo.CreateStudent(std)
}

func (svc *Service) info(std Student) Info {
	number, ok := svc.rooms.RoomNumberForStudent(std.ID)
	if !ok {
		number = RoomNotAssigned
	}
	return Info{Student: std, RoomNumber: number}
}
