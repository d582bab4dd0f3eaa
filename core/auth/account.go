package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/trezcool/bweni/core"
)

// Account is an entry of the fixed credential store. Accounts are seeded at
// startup and never persisted or mutated.
type Account struct {
	ID           string
	Name         string
	Email        string
	PasswordHash []byte
	StudentID    string // empty for admin accounts
}

func (a *Account) IsAdmin() bool { return a.StudentID == "" }

func (a *Account) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = hash
	return nil
}

func (a *Account) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(a.PasswordHash, []byte(pwd))
}

// Principal builds the session principal this account authenticates as.
func (a *Account) Principal() Principal {
	if a.IsAdmin() {
		return Admin{ID: a.ID, Name: a.Name, Email: a.Email}
	}
	return Student{ID: a.ID, Name: a.Name, Email: a.Email, StudentID: a.StudentID}
}

// NewAccount hashes pwd and returns a ready account. studentID is empty for
// admin accounts.
func NewAccount(id, name, email, pwd, studentID string) (Account, error) {
	acct := Account{
		ID:        id,
		Name:      name,
		Email:     core.CleanString(email, true /* lower */),
		StudentID: studentID,
	}
	if err := acct.SetPassword(pwd); err != nil {
		return Account{}, err
	}
	return acct, nil
}

// DefaultAccounts is the portal's entire credential store: one admin and one
// student.
func DefaultAccounts() ([]Account, error) {
	admin, err := NewAccount("admin-1", "Admin User", "admin@hostel.com", "admin123", "")
	if err != nil {
		return nil, err
	}
	student, err := NewAccount("student-1", "John Smith", "john.smith@example.com", "student123", "1")
	if err != nil {
		return nil, err
	}
	return []Account{admin, student}, nil
}
