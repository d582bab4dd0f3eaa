package inmemdb

import (
	"sync"

	"github.com/trezcool/bweni/core/attendance"
	"github.com/trezcool/bweni/core/complaint"
	"github.com/trezcool/bweni/core/fine"
	"github.com/trezcool/bweni/core/mess"
	"github.com/trezcool/bweni/core/room"
	"github.com/trezcool/bweni/core/student"
)

// DB owns the six entity tables. Tables are ordered slices, not maps:
// listing order is part of the contract (complaints are newest-first).
// Each process opens its own independent DB; nothing is shared or persisted.
type (
	DB struct {
		student    *studentTable
		room       *roomTable
		messFee    *messFeeTable
		fine       *fineTable
		complaint  *complaintTable
		attendance *attendanceTable
	}

	studentTable struct {
		sync.RWMutex
		rows []student.Student
	}
	roomTable struct {
		sync.RWMutex
		rows []room.Room
	}
	messFeeTable struct {
		sync.RWMutex
		rows []mess.MessFee
	}
	fineTable struct {
		sync.RWMutex
		rows []fine.Fine
	}
	complaintTable struct {
		sync.RWMutex
		rows []complaint.Complaint
	}
	attendanceTable struct {
		sync.RWMutex
		rows []attendance.Attendance
	}
)

// Open returns a fresh empty DB.
func Open() (*DB, error) {
	db := &DB{
		student:    new(studentTable),
		room:       new(roomTable),
		messFee:    new(messFeeTable),
		fine:       new(fineTable),
		complaint:  new(complaintTable),
		attendance: new(attendanceTable),
	}
	return db, nil
}
