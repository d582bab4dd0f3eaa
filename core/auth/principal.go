package auth

// Principal is the authenticated identity and role attached to a session.
// The set of variants is closed: a session belongs to an Admin or to a
// Student, nothing else. Role checks are type switches, never string
// comparisons.
type Principal interface {
	DisplayName() string
	principal() // sealed
}

// Admin has unrestricted read access and exclusive write access.
type Admin struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (Admin) principal()            {}
func (a Admin) DisplayName() string { return a.Name }

// Student carries the id of its own Student record; all of its entity reads
// are restricted to that record.
type Student struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	StudentID string `json:"student_id"`
}

func (Student) principal()            {}
func (s Student) DisplayName() string { return s.Name }

// Owner returns the student id a principal's entity reads must be restricted
// to. restricted is false for admins: they see everything.
func Owner(p Principal) (studentID string, restricted bool) {
	if s, ok := p.(Student); ok {
		return s.StudentID, true
	}
	return "", false
}

// RequireAdmin rejects any non-admin principal. Mutations call this at the
// data boundary even though the navigation gate already hides admin screens
// from students.
func RequireAdmin(p Principal) error {
	if _, ok := p.(Admin); !ok {
		return ErrPermissionDenied
	}
	return nil
}
