package mess

import (
	"errors"
	"math"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/bweni/core"
	"github.com/trezcool/bweni/core/auth"
)

var ErrNotFound = errors.New("mess fee not found")

type (
	Repository interface {
		QueryAllMessFees() ([]MessFee, error)
		GetMessFeeByID(id string) (MessFee, error)
		UpdateMessFee(fee MessFee) (MessFee, error)
	}

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

// Query lists mess fees matching the case-insensitive search on student name
// or month. A student principal only sees their own fees.
func (svc *Service) Query(p auth.Principal, search string) ([]Info, error) {
	fees, err := svc.repo.QueryAllMessFees()
	if err != nil {
		return nil, err
	}

	owner, restricted := auth.Owner(p)
	search = core.CleanString(search)

	infos := make([]Info, 0, len(fees))
	for _, fee := range fees {
		if restricted && fee.StudentID != owner {
			continue
		}
		info := svc.info(fee)
		if search != "" && !core.ContainsFold(info.StudentName, search) && !core.ContainsFold(fee.Month, search) {
			continue
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// MarkPaid settles a fee as of today. Marking an already-paid fee is a
// silent no-op.
func (svc *Service) MarkPaid(p auth.Principal, id string) (MessFee, error) {
	if err := auth.RequireAdmin(p); err != nil {
		return MessFee{}, err
	}
	fee, err := svc.repo.GetMessFeeByID(id)
	if err != nil {
		return MessFee{}, err
	}
	if fee.Paid {
		return fee, nil
	}
	fee.Paid = true
	fee.PaidDate = null.StringFrom(core.Today())
	return svc.repo.UpdateMessFee(fee)
}

// Stats is the admin dashboard collection summary.
func (svc *Service) Stats(p auth.Principal) (Stats, error) {
	if err := auth.RequireAdmin(p); err != nil {
		return Stats{}, err
	}
	fees, err := svc.repo.QueryAllMessFees()
	if err != nil {
		return Stats{}, err
	}

	var stats Stats
	stats.TotalFees = len(fees)
	for _, fee := range fees {
		stats.TotalAmount += fee.Amount
		if fee.Paid {
			stats.PaidFees++
			stats.PaidAmount += fee.Amount
		}
	}
	stats.UnpaidFees = stats.TotalFees - stats.PaidFees
	if stats.TotalAmount > 0 {
		stats.CollectionRate = int(math.Round(100 * stats.PaidAmount / stats.TotalAmount))
	}
	return stats, nil
}

func (svc *Service) info(fee MessFee) Info {
	name, ok := svc.students.StudentName(fee.StudentID)
	if !ok {
		name = core.UnknownStudent
	}
	return Info{MessFee: fee, StudentName: name}
}
