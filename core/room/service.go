package room

import (
	"errors"
	"math"

	"github.com/trezcool/bweni/core"
	"github.com/trezcool/bweni/core/auth"
)

var ErrNotFound = errors.New("room not found")

type (
	Repository interface {
		QueryAllRooms() ([]Room, error)
		GetRoomByID(id string) (Room, error)
		GetRoomByStudentID(studentID string) (Room, error)
	}

	// StudentDirectory resolves student ids to display names.
	StudentDirectory interface {
		StudentName(id string) (string, bool)
	}

	Service struct {
		repo     Repository
		students StudentDirectory
	}
)

func NewService(repo Repository, students StudentDirectory) *Service {
	return &Service{repo: repo, students: students}
}

// Query lists rooms matching the case-insensitive room number search. A
// student principal only resolves their own room, search ignored.
func (svc *Service) Query(p auth.Principal, search string) ([]Room, error) {
	if owner, restricted := auth.Owner(p); restricted {
		rm, err := svc.repo.GetRoomByStudentID(owner)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return []Room{}, nil // not assigned yet
			}
			return nil, err
		}
		return []Room{rm}, nil
	}

	rooms, err := svc.repo.QueryAllRooms()
	if err != nil {
		return nil, err
	}
	search = core.CleanString(search)
	if search == "" {
		return rooms, nil
	}
	matches := make([]Room, 0, len(rooms))
	for _, rm := range rooms {
		if core.ContainsFold(rm.RoomNumber, search) {
			matches = append(matches, rm)
		}
	}
	return matches, nil
}

// Details expands a room's assigned students and items. A student principal
// may only expand their own room.
func (svc *Service) Details(p auth.Principal, id string) (Details, error) {
	rm, err := svc.repo.GetRoomByID(id)
	if err != nil {
		return Details{}, err
	}
	if owner, restricted := auth.Owner(p); restricted && !assignedTo(rm, owner) {
		return Details{}, auth.ErrPermissionDenied
	}
	return svc.details(rm), nil
}

// MyRoom resolves the student principal's own room with details.
func (svc *Service) MyRoom(p auth.Principal) (Details, error) {
	owner, restricted := auth.Owner(p)
	if !restricted {
		return Details{}, ErrNotFound
	}
	rm, err := svc.repo.GetRoomByStudentID(owner)
	if err != nil {
		return Details{}, err
	}
	return svc.details(rm), nil
}

// Stats is the admin dashboard occupancy summary.
func (svc *Service) Stats(p auth.Principal) (Stats, error) {
	if err := auth.RequireAdmin(p); err != nil {
		return Stats{}, err
	}
	rooms, err := svc.repo.QueryAllRooms()
	if err != nil {
		return Stats{}, err
	}

	var stats Stats
	stats.TotalRooms = len(rooms)
	for _, rm := range rooms {
		if rm.Occupied > 0 {
			stats.OccupiedRooms++
		}
		stats.TotalCapacity += rm.Capacity
		stats.TotalOccupied += rm.Occupied
	}
	if stats.TotalCapacity > 0 {
		stats.OccupancyRate = int(math.Round(100 * float64(stats.TotalOccupied) / float64(stats.TotalCapacity)))
	}
	return stats, nil
}

func (svc *Service) details(rm Room) Details {
	names := make([]string, 0, len(rm.Students))
	for _, sid := range rm.Students {
		name, ok := svc.students.StudentName(sid)
		if !ok {
			name = core.UnknownStudent
		}
		names = append(names, name)
	}
	return Details{Room: rm, StudentNames: names}
}

func assignedTo(rm Room, studentID string) bool {
	for _, sid := range rm.Students {
		if sid == studentID {
			return true
		}
	}
	return false
}
