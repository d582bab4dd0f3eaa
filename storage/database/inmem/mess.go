package inmemdb

import (
	"github.com/trezcool/bweni/core/mess"
)

type MessFeeRepository struct {
	db *messFeeTable
}

func NewMessFeeRepository(db *DB) *MessFeeRepository {
	return &MessFeeRepository{db: db.messFee}
}

var _ mess.Repository = (*MessFeeRepository)(nil)

func (repo *MessFeeRepository) QueryAllMessFees() ([]mess.MessFee, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	rows := make([]mess.MessFee, len(repo.db.rows))
	copy(rows, repo.db.rows)
	return rows, nil
}

func (repo *MessFeeRepository) GetMessFeeByID(id string) (mess.MessFee, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, fee := range repo.db.rows {
		if fee.ID == id {
			return fee, nil
		}
	}
	return mess.MessFee{}, mess.ErrNotFound
}

func (repo *MessFeeRepository) UpdateMessFee(fee mess.MessFee) (mess.MessFee, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	for i := range repo.db.rows {
		if repo.db.rows[i].ID == fee.ID {
			repo.db.rows[i] = fee
			return fee, nil
		}
	}
	return mess.MessFee{}, mess.ErrNotFound
}
