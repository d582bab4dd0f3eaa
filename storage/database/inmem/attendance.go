package inmemdb

import (
	"github.com/google/uuid"

	"github.com/trezcool/bweni/core/attendance"
)

type AttendanceRepository struct {
	db *attendanceTable
}

func NewAttendanceRepository(db *DB) *AttendanceRepository {
	return &AttendanceRepository{db: db.attendance}
}

var _ attendance.Repository = (*AttendanceRepository)(nil)

func (repo *AttendanceRepository) QueryAllAttendance() ([]attendance.Attendance, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	rows := make([]attendance.Attendance, len(repo.db.rows))
	copy(rows, repo.db.rows)
	return rows, nil
}

// ReplaceAttendanceForDate removes every record matching date for a student
// present in the batch, then inserts the batch with fresh identifiers, all
// under one lock. A student listed twice in the batch keeps only the last
// mark, so the table never holds two records for one (student, date) pair.
// Records for other dates are untouched.
func (repo *AttendanceRepository) ReplaceAttendanceForDate(date string, records []attendance.Attendance) ([]attendance.Attendance, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	batch := make(map[string]int, len(records))
	inserted := make([]attendance.Attendance, 0, len(records))
	for _, rec := range records {
		if i, dup := batch[rec.StudentID]; dup {
			inserted[i] = rec
			continue
		}
		batch[rec.StudentID] = len(inserted)
		inserted = append(inserted, rec)
	}

	kept := repo.db.rows[:0]
	for _, rec := range repo.db.rows {
		if rec.Date == date {
			if _, inBatch := batch[rec.StudentID]; inBatch {
				continue
			}
		}
		kept = append(kept, rec)
	}

	for i := range inserted {
		inserted[i].ID = uuid.New().String()
		kept = append(kept, inserted[i])
	}
	repo.db.rows = kept
	return inserted, nil
}
