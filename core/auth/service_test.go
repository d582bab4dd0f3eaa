package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/bweni/core"
)

func testService(t *testing.T, delay ...time.Duration) *Service {
	accounts, err := DefaultAccounts()
	require.NoError(t, err)

	conf := &core.Config{TestMode: true}
	if len(delay) > 0 {
		conf.Auth.LoginDelay = delay[0]
	}
	return NewService(accounts, conf)
}

func TestService_Login(t *testing.T) {
	svc := testService(t)

	tests := []struct {
		name     string
		email    string
		password string
		want     Principal
		wantErr  error
	}{
		{
			name:  "admin account",
			email: "admin@hostel.com", password: "admin123",
			want: Admin{ID: "admin-1", Name: "Admin User", Email: "admin@hostel.com"},
		},
		{
			name:  "student account",
			email: "john.smith@example.com", password: "student123",
			want: Student{ID: "student-1", Name: "John Smith", Email: "john.smith@example.com", StudentID: "1"},
		},
		{
			name:  "email is case-insensitive and trimmed",
			email: "  Admin@Hostel.com ", password: "admin123",
			want: Admin{ID: "admin-1", Name: "Admin User", Email: "admin@hostel.com"},
		},
		{
			name:  "unknown email",
			email: "nope@hostel.com", password: "admin123",
			wantErr: ErrAuthenticationFailed,
		},
		{
			name:  "wrong password",
			email: "admin@hostel.com", password: "student123",
			wantErr: ErrAuthenticationFailed,
		},
		{
			name:  "empty password",
			email: "admin@hostel.com", password: "",
			wantErr: ErrAuthenticationFailed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := svc.Login(tt.email, tt.password)
			if tt.wantErr != nil {
				// unknown email and wrong password must be indistinguishable
				assert.Equal(t, tt.wantErr, err)
				assert.Nil(t, session)
				return
			}
			require.NoError(t, err)
			p, ok := session.Principal()
			require.True(t, ok)
			assert.Equal(t, tt.want, p)
		})
	}
}

func TestService_Login_delay(t *testing.T) {
	delay := 50 * time.Millisecond
	svc := testService(t, delay)

	start := time.Now()
	_, err := svc.Login("admin@hostel.com", "admin123")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), delay)

	// failures take just as long
	start = time.Now()
	_, err = svc.Login("nope@hostel.com", "whatever")
	assert.Equal(t, ErrAuthenticationFailed, err)
	assert.GreaterOrEqual(t, time.Since(start), delay)
}

func TestSession_Logout(t *testing.T) {
	svc := testService(t)

	session, err := svc.Login("john.smith@example.com", "student123")
	require.NoError(t, err)

	_, ok := session.Principal()
	require.True(t, ok)

	session.Logout()
	p, ok := session.Principal()
	assert.False(t, ok)
	assert.Nil(t, p)
}

func TestService_Authenticate_skipsDelay(t *testing.T) {
	svc := testService(t, time.Second)

	start := time.Now()
	p, err := svc.Authenticate("admin@hostel.com", "admin123")
	require.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, Admin{ID: "admin-1", Name: "Admin User", Email: "admin@hostel.com"}, p)
}
