package fine_test

import (
	"testing"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/bweni/core"
	"github.com/trezcool/bweni/core/auth"
	"github.com/trezcool/bweni/core/fine"
	emailsvc "github.com/trezcool/bweni/services/email"
	inmemdb "github.com/trezcool/bweni/storage/database/inmem"
)

var (
	adminP   = auth.Admin{ID: "admin-1", Name: "Admin User"}
	studentP = auth.Student{ID: "student-1", Name: "John Smith", StudentID: "1"}

	testConf = &core.Config{AppName: "Bweni", TestMode: true}
)

func setup(t *testing.T, seed bool) *fine.Service {
	db, err := inmemdb.Open()
	require.NoError(t, err)
	if seed {
		require.NoError(t, inmemdb.Seed(db))
	}
	emailsvc.ClearSentMessages()
	mailSvc := emailsvc.NewConsoleServiceMock(testConf)
	return fine.NewService(inmemdb.NewFineRepository(db), inmemdb.NewStudentRepository(db), mailSvc)
}

func newValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	fine.InitValidators(validate, translator)
	return validate, translator
}

func TestService_Query(t *testing.T) {
	svc := setup(t, true)

	t.Run("admin sees all fines", func(t *testing.T) {
		fines, err := svc.Query(adminP, "")
		require.NoError(t, err)
		assert.Len(t, fines, 3)
	})

	t.Run("student only sees own fines", func(t *testing.T) {
		fines, err := svc.Query(studentP, "")
		require.NoError(t, err)
		require.Len(t, fines, 1)
		assert.Equal(t, "Late Night Noise", fines[0].Reason)
	})

	t.Run("search matches reason", func(t *testing.T) {
		fines, err := svc.Query(adminP, "damaged")
		require.NoError(t, err)
		require.Len(t, fines, 1)
		assert.Equal(t, "Carlos Mendes", fines[0].StudentName)
	})

	t.Run("search matches student name", func(t *testing.T) {
		fines, err := svc.Query(adminP, "okafor")
		require.NoError(t, err)
		assert.Len(t, fines, 1)
	})
}

func TestService_Add(t *testing.T) {
	svc := setup(t, true)

	nf := fine.NewFine{
		StudentID:   "2",
		Reason:      "Unauthorized Guest",
		Amount:      30,
		Description: "Guest stayed past visiting hours.",
	}

	t.Run("student principal is rejected", func(t *testing.T) {
		_, err := svc.Add(studentP, nf)
		assert.Equal(t, auth.ErrPermissionDenied, err)

		fines, err := svc.Query(adminP, "")
		require.NoError(t, err)
		assert.Len(t, fines, 3) // untouched
	})

	t.Run("admin issues a fine and the student is notified", func(t *testing.T) {
		f, err := svc.Add(adminP, nf)
		require.NoError(t, err)
		assert.NotEmpty(t, f.ID)
		assert.Equal(t, core.Today(), f.DateIssued)
		assert.False(t, f.Paid)
		assert.False(t, f.PaidDate.Valid)

		require.Len(t, emailsvc.SentMessages, 1)
		msg := emailsvc.SentMessages[0]
		assert.Equal(t, "amina.yusuf@example.com", msg.To[0].Address)
		assert.Contains(t, msg.Body, "Unauthorized Guest")
	})
}

func TestService_MarkPaid(t *testing.T) {
	svc := setup(t, true)

	t.Run("unpaid fine is settled as of today", func(t *testing.T) {
		f, err := svc.MarkPaid(adminP, "fn-2")
		require.NoError(t, err)
		assert.True(t, f.Paid)
		require.True(t, f.PaidDate.Valid)
		assert.Equal(t, core.Today(), f.PaidDate.String)
	})

	t.Run("already-paid fine is a silent no-op", func(t *testing.T) {
		f, err := svc.MarkPaid(adminP, "fn-1")
		require.NoError(t, err)
		assert.True(t, f.Paid)
		assert.Equal(t, "2025-06-25", f.PaidDate.String) // original date kept
	})

	t.Run("unknown fine", func(t *testing.T) {
		_, err := svc.MarkPaid(adminP, "nope")
		assert.Equal(t, fine.ErrNotFound, err)
	})
}

func TestService_Stats(t *testing.T) {
	t.Run("seeded collection", func(t *testing.T) {
		svc := setup(t, true)

		stats, err := svc.Stats(adminP)
		require.NoError(t, err)
		assert.Equal(t, fine.Stats{
			TotalFines:     3,
			PaidFines:      1,
			UnpaidFines:    2,
			TotalAmount:    100,
			PaidAmount:     25,
			UnpaidAmount:   75,
			CollectionRate: 25,
		}, stats)
	})

	t.Run("empty collection has a zero rate", func(t *testing.T) {
		svc := setup(t, false)

		stats, err := svc.Stats(adminP)
		require.NoError(t, err)
		assert.Equal(t, fine.Stats{}, stats)
	})
}

func TestNewFine_Validate(t *testing.T) {
	validate, translator := newValidator()

	tests := []struct {
		name       string
		nf         fine.NewFine
		wantFields []string
	}{
		{
			name:       "all missing fields reported at once",
			nf:         fine.NewFine{},
			wantFields: []string{"student_id", "reason", "amount", "description"},
		},
		{
			name:       "reason outside the fixed list",
			nf:         fine.NewFine{StudentID: "1", Reason: "Whistling", Amount: 10, Description: "x"},
			wantFields: []string{"reason"},
		},
		{
			name:       "non-positive amount",
			nf:         fine.NewFine{StudentID: "1", Reason: "Other", Amount: -5, Description: "x"},
			wantFields: []string{"amount"},
		},
		{
			name: "valid",
			nf:   fine.NewFine{StudentID: "1", Reason: "Other", Amount: 10, Description: "x"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.nf.Validate(validate, translator)
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			vErr, ok := err.(*core.ValidationError)
			require.True(t, ok)
			fields := vErr.FieldMap()
			for _, fld := range tt.wantFields {
				assert.Contains(t, fields, fld)
			}
		})
	}
}
