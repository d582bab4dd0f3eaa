package complaint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/bweni/core"
	"github.com/trezcool/bweni/core/auth"
	"github.com/trezcool/bweni/core/complaint"
	emailsvc "github.com/trezcool/bweni/services/email"
	inmemdb "github.com/trezcool/bweni/storage/database/inmem"
)

var (
	adminP   = auth.Admin{ID: "admin-1", Name: "Admin User"}
	studentP = auth.Student{ID: "student-1", Name: "John Smith", StudentID: "1"}

	testConf = &core.Config{AppName: "Bweni", TestMode: true}
)

func setup(t *testing.T) *complaint.Service {
	db, err := inmemdb.Open()
	require.NoError(t, err)
	require.NoError(t, inmemdb.Seed(db))
	emailsvc.ClearSentMessages()
	mailSvc := emailsvc.NewConsoleServiceMock(testConf)
	return complaint.NewService(inmemdb.NewComplaintRepository(db), inmemdb.NewStudentRepository(db), mailSvc)
}

func TestService_Submit(t *testing.T) {
	svc := setup(t)

	t.Run("admin cannot submit", func(t *testing.T) {
		_, err := svc.Submit(adminP, complaint.NewComplaint{Title: "t", Description: "d"})
		assert.Equal(t, auth.ErrPermissionDenied, err)
	})

	t.Run("new complaint starts pending and lists first", func(t *testing.T) {
		c, err := svc.Submit(studentP, complaint.NewComplaint{
			Title:       "Broken window latch",
			Description: "The latch on the window near my bed does not close.",
			Category:    complaint.CategoryMaintenance,
			Priority:    complaint.PriorityHigh,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, c.ID)
		assert.Equal(t, "1", c.StudentID)
		assert.Equal(t, complaint.StatusPending, c.Status)
		assert.Equal(t, core.Today(), c.DateSubmitted)
		assert.False(t, c.DateResolved.Valid)
		assert.False(t, c.AdminResponse.Valid)
		assert.False(t, c.AdminID.Valid)

		infos, err := svc.Query(adminP)
		require.NoError(t, err)
		require.Len(t, infos, 4)
		assert.Equal(t, c.ID, infos[0].ID) // newest-first
	})
}

func TestService_Query(t *testing.T) {
	svc := setup(t)

	t.Run("admin sees all, newest-first", func(t *testing.T) {
		infos, err := svc.Query(adminP)
		require.NoError(t, err)
		require.Len(t, infos, 3)
		assert.Equal(t, []string{"cp-3", "cp-2", "cp-1"}, []string{infos[0].ID, infos[1].ID, infos[2].ID})
		assert.Equal(t, "Priya Sharma", infos[0].StudentName)
	})

	t.Run("student only sees own complaints", func(t *testing.T) {
		infos, err := svc.Query(studentP)
		require.NoError(t, err)
		require.Len(t, infos, 1)
		assert.Equal(t, "cp-2", infos[0].ID)
	})
}

func TestService_UpdateStatus(t *testing.T) {
	t.Run("first move off pending stamps the admin", func(t *testing.T) {
		svc := setup(t)

		c, err := svc.UpdateStatus(adminP, "cp-3", complaint.StatusUpdate{
			Status:        complaint.StatusInProgress,
			AdminResponse: "Electrician scheduled for Monday.",
		})
		require.NoError(t, err)
		assert.Equal(t, complaint.StatusInProgress, c.Status)
		assert.Equal(t, "admin-1", c.AdminID.String)
		assert.Equal(t, "Electrician scheduled for Monday.", c.AdminResponse.String)
		assert.False(t, c.DateResolved.Valid)
		assert.Empty(t, emailsvc.SentMessages)
	})

	t.Run("resolving stamps today and notifies the student", func(t *testing.T) {
		svc := setup(t)

		c, err := svc.UpdateStatus(adminP, "cp-2", complaint.StatusUpdate{
			Status:        complaint.StatusResolved,
			AdminResponse: "New warmers installed.",
		})
		require.NoError(t, err)
		assert.Equal(t, complaint.StatusResolved, c.Status)
		require.True(t, c.DateResolved.Valid)
		assert.Equal(t, core.Today(), c.DateResolved.String)

		require.Len(t, emailsvc.SentMessages, 1)
		msg := emailsvc.SentMessages[0]
		assert.Equal(t, "john.smith@example.com", msg.To[0].Address)
		assert.Contains(t, msg.Body, "Cold food at dinner")
	})

	t.Run("un-resolving keeps the resolution date", func(t *testing.T) {
		svc := setup(t)

		c, err := svc.UpdateStatus(adminP, "cp-1", complaint.StatusUpdate{Status: complaint.StatusInProgress})
		require.NoError(t, err)
		assert.Equal(t, complaint.StatusInProgress, c.Status)
		assert.Equal(t, "2025-07-01", c.DateResolved.String) // kept

		// no resolution mail on a complaint moving away from resolved
		assert.Empty(t, emailsvc.SentMessages)
	})

	t.Run("re-resolving an already-resolved complaint does not notify twice", func(t *testing.T) {
		svc := setup(t)

		c, err := svc.UpdateStatus(adminP, "cp-1", complaint.StatusUpdate{Status: complaint.StatusResolved})
		require.NoError(t, err)
		assert.Equal(t, core.Today(), c.DateResolved.String) // restamped
		assert.Empty(t, emailsvc.SentMessages)
	})

	t.Run("empty response is stored as unset", func(t *testing.T) {
		svc := setup(t)

		c, err := svc.UpdateStatus(adminP, "cp-2", complaint.StatusUpdate{Status: complaint.StatusClosed})
		require.NoError(t, err)
		assert.False(t, c.AdminResponse.Valid)
		assert.Equal(t, "admin-1", c.AdminID.String) // kept from the seed
	})

	t.Run("student principal is rejected", func(t *testing.T) {
		svc := setup(t)

		_, err := svc.UpdateStatus(studentP, "cp-2", complaint.StatusUpdate{Status: complaint.StatusClosed})
		assert.Equal(t, auth.ErrPermissionDenied, err)
	})

	t.Run("unknown complaint", func(t *testing.T) {
		svc := setup(t)

		_, err := svc.UpdateStatus(adminP, "nope", complaint.StatusUpdate{Status: complaint.StatusClosed})
		assert.Equal(t, complaint.ErrNotFound, err)
	})
}
