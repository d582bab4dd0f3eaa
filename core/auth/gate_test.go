package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreens(t *testing.T) {
	admin := Admin{ID: "admin-1"}
	student := Student{ID: "student-1", StudentID: "1"}

	assert.Equal(t,
		[]Screen{ScreenStudents, ScreenRooms, ScreenMess, ScreenFines, ScreenComplaints, ScreenAttendance},
		Screens(admin),
	)
	assert.Equal(t,
		[]Screen{ScreenProfile, ScreenRoom, ScreenMess, ScreenFines, ScreenComplaints},
		Screens(student),
	)
}

func TestCanReach(t *testing.T) {
	admin := Admin{ID: "admin-1"}
	student := Student{ID: "student-1", StudentID: "1"}

	tests := []struct {
		name string
		p    Principal
		s    Screen
		want bool
	}{
		{name: "admin reaches attendance", p: admin, s: ScreenAttendance, want: true},
		{name: "admin cannot reach profile", p: admin, s: ScreenProfile, want: false},
		{name: "admin cannot reach room", p: admin, s: ScreenRoom, want: false},
		{name: "student reaches profile", p: student, s: ScreenProfile, want: true},
		{name: "student cannot reach students", p: student, s: ScreenStudents, want: false},
		{name: "student cannot reach attendance", p: student, s: ScreenAttendance, want: false},
		{name: "shared screen, admin", p: admin, s: ScreenComplaints, want: true},
		{name: "shared screen, student", p: student, s: ScreenComplaints, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanReach(tt.p, tt.s))
		})
	}
}

func TestOwner(t *testing.T) {
	sid, restricted := Owner(Student{StudentID: "1"})
	assert.True(t, restricted)
	assert.Equal(t, "1", sid)

	sid, restricted = Owner(Admin{})
	assert.False(t, restricted)
	assert.Empty(t, sid)
}

func TestRequireAdmin(t *testing.T) {
	assert.NoError(t, RequireAdmin(Admin{}))
	assert.Equal(t, ErrPermissionDenied, RequireAdmin(Student{StudentID: "1"}))
}
