package auth

// Screen is a top-level screen of the portal.
type Screen string

const (
	// Admin screens
	ScreenStudents   Screen = "students"
	ScreenRooms      Screen = "rooms"
	ScreenMess       Screen = "mess"
	ScreenFines      Screen = "fines"
	ScreenComplaints Screen = "complaints"
	ScreenAttendance Screen = "attendance"

	// Student screens (mess, fines and complaints are shared)
	ScreenProfile Screen = "profile"
	ScreenRoom    Screen = "room"
)

var (
	adminScreens   = []Screen{ScreenStudents, ScreenRooms, ScreenMess, ScreenFines, ScreenComplaints, ScreenAttendance}
	studentScreens = []Screen{ScreenProfile, ScreenRoom, ScreenMess, ScreenFines, ScreenComplaints}
)

// Screens returns the closed set of screens reachable by the principal.
func Screens(p Principal) []Screen {
	switch p.(type) {
	case Admin:
		return adminScreens
	case Student:
		return studentScreens
	}
	return nil
}

// CanReach reports whether the principal's view may navigate to the screen.
func CanReach(p Principal, s Screen) bool {
	for _, scr := range Screens(p) {
		if scr == s {
			return true
		}
	}
	return false
}
