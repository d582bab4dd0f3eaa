package inmemdb

import (
	"github.com/google/uuid"

	"github.com/trezcool/bweni/core/complaint"
)

type ComplaintRepository struct {
	db *complaintTable
}

func NewComplaintRepository(db *DB) *ComplaintRepository {
	return &ComplaintRepository{db: db.complaint}
}

var _ complaint.Repository = (*ComplaintRepository)(nil)

// PrependComplaint inserts at the head of the table; listing order is
// newest-first by construction.
func (repo *ComplaintRepository) PrependComplaint(c complaint.Complaint) (complaint.Complaint, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	repo.db.rows = append([]complaint.Complaint{c}, repo.db.rows...)
	return c, nil
}

func (repo *ComplaintRepository) QueryAllComplaints() ([]complaint.Complaint, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	rows := make([]complaint.Complaint, len(repo.db.rows))
	copy(rows, repo.db.rows)
	return rows, nil
}

func (repo *ComplaintRepository) GetComplaintByID(id string) (complaint.Complaint, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, c := range repo.db.rows {
		if c.ID == id {
			return c, nil
		}
	}
	return complaint.Complaint{}, complaint.ErrNotFound
}

func (repo *ComplaintRepository) UpdateComplaint(c complaint.Complaint) (complaint.Complaint, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	for i := range repo.db.rows {
		if repo.db.rows[i].ID == c.ID {
			repo.db.rows[i] = c
			return c, nil
		}
	}
	return complaint.Complaint{}, complaint.ErrNotFound
}
