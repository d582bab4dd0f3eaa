package attendance_test

import (
	"testing"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/bweni/core"
	"github.com/trezcool/bweni/core/attendance"
	"github.com/trezcool/bweni/core/auth"
	inmemdb "github.com/trezcool/bweni/storage/database/inmem"
)

var (
	adminP   = auth.Admin{ID: "admin-1", Name: "Admin User"}
	studentP = auth.Student{ID: "student-1", Name: "John Smith", StudentID: "1"}
)

func setup(t *testing.T, seed bool) *attendance.Service {
	db, err := inmemdb.Open()
	require.NoError(t, err)
	if seed {
		require.NoError(t, inmemdb.Seed(db))
	}
	return attendance.NewService(inmemdb.NewAttendanceRepository(db), inmemdb.NewStudentRepository(db))
}

func newValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	attendance.InitValidators(validate, translator)
	return validate, translator
}

func TestService_Mark(t *testing.T) {
	svc := setup(t, true)

	batch := attendance.Batch{
		Date: "2025-07-14",
		Marks: []attendance.Mark{
			{StudentID: "1", Status: attendance.StatusAbsent, Remarks: "Left for the weekend"},
			{StudentID: "2", Status: attendance.StatusLate, CheckInTime: "10:15"},
		},
	}

	t.Run("student principal is rejected", func(t *testing.T) {
		_, err := svc.Mark(studentP, batch)
		assert.Equal(t, auth.ErrPermissionDenied, err)
	})

	t.Run("re-marking a date replaces, never accumulates", func(t *testing.T) {
		recs, err := svc.Mark(adminP, batch)
		require.NoError(t, err)
		require.Len(t, recs, 2)
		assert.NotEmpty(t, recs[0].ID)

		infos, err := svc.Query(adminP, "2025-07-14", "")
		require.NoError(t, err)
		assert.Len(t, infos, 5) // still one record per student

		byStudent := make(map[string]attendance.Info, len(infos))
		for _, info := range infos {
			byStudent[info.StudentID] = info
		}
		assert.Equal(t, attendance.StatusAbsent, byStudent["1"].Status)
		assert.Equal(t, "Left for the weekend", byStudent["1"].Remarks.String)
		assert.False(t, byStudent["1"].CheckInTime.Valid)
		assert.Equal(t, attendance.StatusLate, byStudent["2"].Status)
		assert.Equal(t, "10:15", byStudent["2"].CheckInTime.String)
		assert.Equal(t, attendance.StatusLate, byStudent["3"].Status) // untouched
	})

	t.Run("a student marked twice keeps one record, last mark wins", func(t *testing.T) {
		recs, err := svc.Mark(adminP, attendance.Batch{
			Date: "2025-07-14",
			Marks: []attendance.Mark{
				{StudentID: "1", Status: attendance.StatusPresent, CheckInTime: "08:00"},
				{StudentID: "1", Status: attendance.StatusAbsent},
			},
		})
		require.NoError(t, err)
		require.Len(t, recs, 1)

		infos, err := svc.Query(adminP, "2025-07-14", "")
		require.NoError(t, err)
		assert.Len(t, infos, 5)

		var own []attendance.Info
		for _, info := range infos {
			if info.StudentID == "1" {
				own = append(own, info)
			}
		}
		require.Len(t, own, 1)
		assert.Equal(t, attendance.StatusAbsent, own[0].Status)
		assert.False(t, own[0].CheckInTime.Valid)
	})

	t.Run("other dates are untouched", func(t *testing.T) {
		infos, err := svc.Query(adminP, "2025-07-13", "")
		require.NoError(t, err)
		assert.Len(t, infos, 2)
	})
}

func TestService_Query(t *testing.T) {
	svc := setup(t, true)

	t.Run("filters by exact date", func(t *testing.T) {
		infos, err := svc.Query(adminP, "2025-07-13", "")
		require.NoError(t, err)
		assert.Len(t, infos, 2)
	})

	t.Run("no date lists everything", func(t *testing.T) {
		infos, err := svc.Query(adminP, "", "")
		require.NoError(t, err)
		assert.Len(t, infos, 7)
	})

	t.Run("search matches student name", func(t *testing.T) {
		infos, err := svc.Query(adminP, "2025-07-14", "priya")
		require.NoError(t, err)
		require.Len(t, infos, 1)
		assert.Equal(t, attendance.StatusAbsent, infos[0].Status)
	})

	t.Run("student only sees own records", func(t *testing.T) {
		infos, err := svc.Query(studentP, "", "")
		require.NoError(t, err)
		assert.Len(t, infos, 2)
		for _, info := range infos {
			assert.Equal(t, "1", info.StudentID)
		}
	})
}

func TestService_Stats(t *testing.T) {
	t.Run("late counts towards attendance", func(t *testing.T) {
		svc := setup(t, true)

		stats, err := svc.Stats(adminP, "2025-07-14")
		require.NoError(t, err)
		assert.Equal(t, attendance.Stats{
			Date:           "2025-07-14",
			TotalStudents:  5,
			PresentCount:   3,
			AbsentCount:    1,
			LateCount:      1,
			AttendanceRate: 80, // round(100 * (3+1)/5)
		}, stats)
	})

	t.Run("unmarked date", func(t *testing.T) {
		svc := setup(t, true)

		stats, err := svc.Stats(adminP, "2025-01-01")
		require.NoError(t, err)
		assert.Equal(t, attendance.Stats{Date: "2025-01-01", TotalStudents: 5}, stats)
	})

	t.Run("no students means a zero rate", func(t *testing.T) {
		svc := setup(t, false)

		stats, err := svc.Stats(adminP, "2025-07-14")
		require.NoError(t, err)
		assert.Equal(t, attendance.Stats{Date: "2025-07-14"}, stats)
	})

	t.Run("student principal is rejected", func(t *testing.T) {
		svc := setup(t, true)

		_, err := svc.Stats(studentP, "2025-07-14")
		assert.Equal(t, auth.ErrPermissionDenied, err)
	})
}

func TestBatch_Validate(t *testing.T) {
	validate, translator := newValidator()

	tests := []struct {
		name       string
		b          attendance.Batch
		wantFields []string
	}{
		{
			name:       "empty batch",
			b:          attendance.Batch{},
			wantFields: []string{"date", "marks"},
		},
		{
			name: "bad date format",
			b: attendance.Batch{
				Date:  "14/07/2025",
				Marks: []attendance.Mark{{StudentID: "1", Status: attendance.StatusPresent}},
			},
			wantFields: []string{"date"},
		},
		{
			name: "bad status",
			b: attendance.Batch{
				Date:  "2025-07-14",
				Marks: []attendance.Mark{{StudentID: "1", Status: "sleeping"}},
			},
			wantFields: []string{"status"},
		},
		{
			name: "bad check-in time",
			b: attendance.Batch{
				Date:  "2025-07-14",
				Marks: []attendance.Mark{{StudentID: "1", Status: attendance.StatusPresent, CheckInTime: "8am"}},
			},
			wantFields: []string{"check_in_time"},
		},
		{
			name: "duplicate student",
			b: attendance.Batch{
				Date: "2025-07-14",
				Marks: []attendance.Mark{
					{StudentID: "1", Status: attendance.StatusPresent},
					{StudentID: "1", Status: attendance.StatusAbsent},
				},
			},
			wantFields: []string{"marks"},
		},
		{
			name: "valid",
			b: attendance.Batch{
				Date: "2025-07-14",
				Marks: []attendance.Mark{
					{StudentID: "1", Status: attendance.StatusPresent, CheckInTime: "08:00"},
					{StudentID: "2", Status: attendance.StatusAbsent},
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.b.Validate(validate, translator)
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			vErr, ok := err.(*core.ValidationError)
			require.True(t, ok)
			fields := vErr.FieldMap()
			for _, fld := range tt.wantFields {
				found := false
				for key := range fields {
					if key == fld || containsField(key, fld) {
						found = true
					}
				}
				assert.True(t, found, "expected a %q error in %v", fld, fields)
			}
		})
	}
}

func containsField(key, fld string) bool {
	// dive errors come out namespaced, e.g. "marks[0].status"
	if len(key) < len(fld) {
		return false
	}
	return key[len(key)-len(fld):] == fld
}
