package inmemdb

import (
	"github.com/google/uuid"

	"github.com/trezcool/bweni/core/fine"
)

type FineRepository struct {
	db *fineTable
}

func NewFineRepository(db *DB) *FineRepository {
	return &FineRepository{db: db.fine}
}

var _ fine.Repository = (*FineRepository)(nil)

func (repo *FineRepository) CreateFine(f fine.Fine) (fine.Fine, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	repo.db.rows = append(repo.db.rows, f)
	return f, nil
}

func (repo *FineRepository) QueryAllFines() ([]fine.Fine, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	rows := make([]fine.Fine, len(repo.db.rows))
	copy(rows, repo.db.rows)
	return rows, nil
}

func (repo *FineRepository) GetFineByID(id string) (fine.Fine, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, f := range repo.db.rows {
		if f.ID == id {
			return f, nil
		}
	}
	return fine.Fine{}, fine.ErrNotFound
}

func (repo *FineRepository) UpdateFine(f fine.Fine) (fine.Fine, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	for i := range repo.db.rows {
		if repo.db.rows[i].ID == f.ID {
			repo.db.rows[i] = f
			return f, nil
		}
	}
	return fine.Fine{}, fine.ErrNotFound
}
