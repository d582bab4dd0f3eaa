package inmemdb

import (
	"net/mail"

	"github.com/google/uuid"

	"github.com/trezcool/bweni/core/student"
)

type StudentRepository struct {
	db *studentTable
}

func NewStudentRepository(db *DB) *StudentRepository {
	return &StudentRepository{db: db.student}
}

var _ student.Repository = (*StudentRepository)(nil)

func (repo *StudentRepository) CreateStudent(std student.Student) (student.Student, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if std.ID == "" {
		std.ID = uuid.New().String()
	}
	repo.db.rows = append(repo.db.rows, std)
	return std, nil
}

func (repo *StudentRepository) QueryAllStudents() ([]student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	rows := make([]student.Student, len(repo.db.rows))
	copy(rows, repo.db.rows)
	return rows, nil
}

func (repo *StudentRepository) GetStudentByID(id string) (student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, std := range repo.db.rows {
		if std.ID == id {
			return std, nil
		}
	}
	return student.Student{}, student.ErrNotFound
}

// StudentName resolves a student id to its display name; ok is false for a
// dangling id so callers can substitute their sentinel.
func (repo *StudentRepository) StudentName(id string) (string, bool) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, std := range repo.db.rows {
		if std.ID == id {
			return std.Name, true
		}
	}
	return "", false
}

func (repo *StudentRepository) StudentContact(id string) (mail.Address, bool) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, std := range repo.db.rows {
		if std.ID == id {
			return mail.Address{Name: std.Name, Address: std.Email}, true
		}
	}
	return mail.Address{}, false
}

func (repo *StudentRepository) CountStudents() (int, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return len(repo.db.rows), nil
}
