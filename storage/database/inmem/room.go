package inmemdb

import (
	"github.com/trezcool/bweni/core/room"
)

type RoomRepository struct {
	db *roomTable
}

func NewRoomRepository(db *DB) *RoomRepository {
	return &RoomRepository{db: db.room}
}

var _ room.Repository = (*RoomRepository)(nil)

func (repo *RoomRepository) QueryAllRooms() ([]room.Room, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	rows := make([]room.Room, len(repo.db.rows))
	copy(rows, repo.db.rows)
	return rows, nil
}

func (repo *RoomRepository) GetRoomByID(id string) (room.Room, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, rm := range repo.db.rows {
		if rm.ID == id {
			return rm, nil
		}
	}
	return room.Room{}, room.ErrNotFound
}

func (repo *RoomRepository) GetRoomByStudentID(studentID string) (room.Room, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, rm := range repo.db.rows {
		for _, sid := range rm.Students {
			if sid == studentID {
				return rm, nil
			}
		}
	}
	return room.Room{}, room.ErrNotFound
}

// RoomNumberForStudent resolves the room a student is assigned to; ok is
// false when no room references the student.
func (repo *RoomRepository) RoomNumberForStudent(studentID string) (string, bool) {
	rm, err := repo.GetRoomByStudentID(studentID)
	if err != nil {
		return "", false
	}
	return rm.RoomNumber, true
}
