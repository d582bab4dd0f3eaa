package inmemdb

import (
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/bweni/core/attendance"
	"github.com/trezcool/bweni/core/complaint"
	"github.com/trezcool/bweni/core/fine"
	"github.com/trezcool/bweni/core/mess"
	"github.com/trezcool/bweni/core/room"
	"github.com/trezcool/bweni/core/student"
)

// Seed loads the demo dataset. Student "1" is the one the demo student
// account is bound to.
func Seed(db *DB) error {
	db.student.Lock()
	db.student.rows = append(db.student.rows[:0], seedStudents...)
	db.student.Unlock()

	db.room.Lock()
	db.room.rows = append(db.room.rows[:0], seedRooms...)
	db.room.Unlock()

	db.messFee.Lock()
	db.messFee.rows = append(db.messFee.rows[:0], seedMessFees...)
	db.messFee.Unlock()

	db.fine.Lock()
	db.fine.rows = append(db.fine.rows[:0], seedFines...)
	db.fine.Unlock()

	db.complaint.Lock()
	db.complaint.rows = append(db.complaint.rows[:0], seedComplaints...)
	db.complaint.Unlock()

	db.attendance.Lock()
	db.attendance.rows = append(db.attendance.rows[:0], seedAttendance...)
	db.attendance.Unlock()

	return nil
}

var seedStudents = []student.Student{
	{
		ID: "1", Name: "John Smith", Email: "john.smith@example.com",
		Phone: "+1 555-0101", Course: "Computer Science", Year: 2,
		AdmissionDate: "2023-08-15", ParentContact: "+1 555-0102",
		Address: "42 Maple Street, Springfield", EmergencyContact: "+1 555-0103",
		MessOptedIn: true,
	},
	{
		ID: "2", Name: "Amina Yusuf", Email: "amina.yusuf@example.com",
		Phone: "+1 555-0111", Course: "Mechanical Engineering", Year: 3,
		AdmissionDate: "2022-08-20", ParentContact: "+1 555-0112",
		Address: "17 Oak Avenue, Riverdale", EmergencyContact: "+1 555-0113",
		MessOptedIn: true,
	},
	{
		ID: "3", Name: "Carlos Mendes", Email: "carlos.mendes@example.com",
		Phone: "+1 555-0121", Course: "Business Administration", Year: 1,
		AdmissionDate: "2024-08-10", ParentContact: "+1 555-0122",
		Address: "9 Pine Road, Lakeside", EmergencyContact: "+1 555-0123",
		MessOptedIn: false,
	},
	{
		ID: "4", Name: "Priya Sharma", Email: "priya.sharma@example.com",
		Phone: "+1 555-0131", Course: "Electrical Engineering", Year: 4,
		AdmissionDate: "2021-08-18", ParentContact: "+1 555-0132",
		Address: "88 Cedar Lane, Hillview", EmergencyContact: "+1 555-0133",
		MessOptedIn: true,
	},
	{
		ID: "5", Name: "Tom Okafor", Email: "tom.okafor@example.com",
		Phone: "+1 555-0141", Course: "Architecture", Year: 2,
		AdmissionDate: "2023-08-15", ParentContact: "+1 555-0142",
		Address: "3 Birch Close, Westbrook", EmergencyContact: "+1 555-0143",
		MessOptedIn: true,
	},
}

var seedRooms = []room.Room{
	{
		ID: "101", RoomNumber: "A-101", Capacity: 2, Occupied: 2, Floor: 1,
		Type: room.TypeDouble, Students: []string{"1", "2"},
		Items: []room.RoomItem{
			{ID: "101-1", Name: "Bed", Quantity: 2, Condition: room.ConditionGood, LastChecked: "2025-07-01"},
			{ID: "101-2", Name: "Study Desk", Quantity: 2, Condition: room.ConditionGood, LastChecked: "2025-07-01"},
			{ID: "101-3", Name: "Ceiling Fan", Quantity: 1, Condition: room.ConditionFair, LastChecked: "2025-06-12"},
		},
	},
	{
		ID: "102", RoomNumber: "A-102", Capacity: 2, Occupied: 1, Floor: 1,
		Type: room.TypeDouble, Students: []string{"3"},
		Items: []room.RoomItem{
			{ID: "102-1", Name: "Bed", Quantity: 2, Condition: room.ConditionGood, LastChecked: "2025-07-01"},
			{ID: "102-2", Name: "Wardrobe", Quantity: 1, Condition: room.ConditionPoor, LastChecked: "2025-05-30"},
		},
	},
	{
		ID: "201", RoomNumber: "B-201", Capacity: 1, Occupied: 1, Floor: 2,
		Type: room.TypeSingle, Students: []string{"4"},
		Items: []room.RoomItem{
			{ID: "201-1", Name: "Bed", Quantity: 1, Condition: room.ConditionGood, LastChecked: "2025-07-02"},
			{ID: "201-2", Name: "Study Desk", Quantity: 1, Condition: room.ConditionGood, LastChecked: "2025-07-02"},
		},
	},
	{
		ID: "202", RoomNumber: "B-202", Capacity: 3, Occupied: 1, Floor: 2,
		Type: room.TypeTriple, Students: []string{"5"},
		Items: []room.RoomItem{
			{ID: "202-1", Name: "Bed", Quantity: 3, Condition: room.ConditionFair, LastChecked: "2025-06-20"},
			{ID: "202-2", Name: "Bookshelf", Quantity: 1, Condition: room.ConditionGood, LastChecked: "2025-06-20"},
		},
	},
	{
		ID: "203", RoomNumber: "B-203", Capacity: 4, Occupied: 0, Floor: 2,
		Type: room.TypeQuad, Students: []string{},
		Items: []room.RoomItem{
			{ID: "203-1", Name: "Bed", Quantity: 4, Condition: room.ConditionGood, LastChecked: "2025-07-02"},
		},
	},
}

var seedMessFees = []mess.MessFee{
	{ID: "mf-1", StudentID: "1", Month: "June", Year: 2025, Amount: 120, Paid: true, DueDate: "2025-06-10", PaidDate: null.StringFrom("2025-06-08")},
	{ID: "mf-2", StudentID: "1", Month: "July", Year: 2025, Amount: 120, Paid: false, DueDate: "2025-07-10"},
	{ID: "mf-3", StudentID: "2", Month: "June", Year: 2025, Amount: 120, Paid: true, DueDate: "2025-06-10", PaidDate: null.StringFrom("2025-06-10")},
	{ID: "mf-4", StudentID: "2", Month: "July", Year: 2025, Amount: 120, Paid: true, DueDate: "2025-07-10", PaidDate: null.StringFrom("2025-07-05")},
	{ID: "mf-5", StudentID: "4", Month: "July", Year: 2025, Amount: 120, Paid: false, DueDate: "2025-07-10"},
	{ID: "mf-6", StudentID: "5", Month: "July", Year: 2025, Amount: 120, Paid: false, DueDate: "2025-07-10"},
}

var seedFines = []fine.Fine{
	{
		ID: "fn-1", StudentID: "1", Reason: "Late Night Noise", Amount: 25,
		DateIssued: "2025-06-18", Paid: true, PaidDate: null.StringFrom("2025-06-25"),
		Description: "Loud music after quiet hours, second warning.",
	},
	{
		ID: "fn-2", StudentID: "3", Reason: "Damaged Property", Amount: 60,
		DateIssued: "2025-07-02", Paid: false,
		Description: "Broken wardrobe door in A-102.",
	},
	{
		ID: "fn-3", StudentID: "5", Reason: "Late Fee Payment", Amount: 15,
		DateIssued: "2025-07-12", Paid: false,
		Description: "June mess fee settled two weeks past due date.",
	},
}

var seedComplaints = []complaint.Complaint{
	{
		ID: "cp-3", StudentID: "4", Title: "Flickering corridor light",
		Description:   "The corridor light on floor 2 flickers all night.",
		Category:      complaint.CategoryMaintenance,
		Priority:      complaint.PriorityLow,
		Status:        complaint.StatusPending,
		DateSubmitted: "2025-07-14",
	},
	{
		ID: "cp-2", StudentID: "1", Title: "Cold food at dinner",
		Description:   "Dinner service has been lukewarm for the past week.",
		Category:      complaint.CategoryFood,
		Priority:      complaint.PriorityMedium,
		Status:        complaint.StatusInProgress,
		DateSubmitted: "2025-07-08",
		AdminResponse: null.StringFrom("Kitchen supervisor notified, new warmers ordered."),
		AdminID:       null.StringFrom("admin-1"),
	},
	{
		ID: "cp-1", StudentID: "2", Title: "Leaking tap in A-101",
		Description:   "The bathroom tap drips constantly.",
		Category:      complaint.CategoryMaintenance,
		Priority:      complaint.PriorityHigh,
		Status:        complaint.StatusResolved,
		DateSubmitted: "2025-06-28",
		DateResolved:  null.StringFrom("2025-07-01"),
		AdminResponse: null.StringFrom("Plumber replaced the washer."),
		AdminID:       null.StringFrom("admin-1"),
	},
}

var seedAttendance = []attendance.Attendance{
	{ID: "at-1", StudentID: "1", Date: "2025-07-14", Status: attendance.StatusPresent, CheckInTime: null.StringFrom("08:02")},
	{ID: "at-2", StudentID: "2", Date: "2025-07-14", Status: attendance.StatusPresent, CheckInTime: null.StringFrom("07:55")},
	{ID: "at-3", StudentID: "3", Date: "2025-07-14", Status: attendance.StatusLate, CheckInTime: null.StringFrom("09:40"), Remarks: null.StringFrom("Overslept")},
	{ID: "at-4", StudentID: "4", Date: "2025-07-14", Status: attendance.StatusAbsent, Remarks: null.StringFrom("Home visit, informed warden")},
	{ID: "at-5", StudentID: "5", Date: "2025-07-14", Status: attendance.StatusPresent, CheckInTime: null.StringFrom("08:10"), CheckOutTime: null.StringFrom("18:30")},
	{ID: "at-6", StudentID: "1", Date: "2025-07-13", Status: attendance.StatusPresent, CheckInTime: null.StringFrom("08:00")},
	{ID: "at-7", StudentID: "2", Date: "2025-07-13", Status: attendance.StatusAbsent},
}
