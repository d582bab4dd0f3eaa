package auth

import (
	"errors"
	"time"

	"github.com/trezcool/bweni/core"
)

var (
	// ErrAuthenticationFailed is returned on any credential mismatch; unknown
	// email and wrong password are deliberately indistinguishable.
	ErrAuthenticationFailed = errors.New("authentication failed")

	ErrPermissionDenied = errors.New("permission denied")
)

type (
	// Service validates credentials against the fixed account list and mints
	// sessions.
	Service struct {
		accounts []Account
		delay    time.Duration
	}

	// Session holds the principal produced by a successful login until
	// Logout destroys it. Sessions are single-user and never persisted.
	Session struct {
		principal Principal
	}
)

func NewService(accounts []Account, conf *core.Config) *Service {
	return &Service{accounts: accounts, delay: conf.Auth.LoginDelay}
}

// Login looks the account list up by exact (email, password) match.
// The call suspends for the configured delay before resolving and is not
// cancellable; if a second Login is started before the first resolves, both
// run and whichever settles last wins. Accepted: the portal is single-user.
func (svc *Service) Login(email, password string) (*Session, error) {
	if svc.delay > 0 {
		time.Sleep(svc.delay)
	}
	p, err := svc.Authenticate(email, password)
	if err != nil {
		return nil, err
	}
	return &Session{principal: p}, nil
}

// Authenticate is the delay-free credential check backing Login; the admin
// CLI uses it directly.
func (svc *Service) Authenticate(email, password string) (Principal, error) {
	email = core.CleanString(email, true /* lower */)
	for i := range svc.accounts {
		acct := &svc.accounts[i]
		if acct.Email != email {
			continue
		}
		if err := acct.CheckPassword(password); err != nil {
			return nil, ErrAuthenticationFailed
		}
		return acct.Principal(), nil
	}
	return nil, ErrAuthenticationFailed
}

// Principal returns the session's principal; ok is false once logged out.
func (s *Session) Principal() (Principal, bool) {
	if s == nil || s.principal == nil {
		return nil, false
	}
	return s.principal, true
}

// Logout destroys the principal synchronously.
func (s *Session) Logout() {
	s.principal = nil
}
