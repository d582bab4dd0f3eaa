package room

// RoomType classifies a room by its bed count.
type RoomType string

const (
	TypeSingle RoomType = "single"
	TypeDouble RoomType = "double"
	TypeTriple RoomType = "triple"
	TypeQuad   RoomType = "quad"
)

// Condition grades a room item.
type Condition string

const (
	ConditionGood Condition = "good"
	ConditionFair Condition = "fair"
	ConditionPoor Condition = "poor"
)

// RoomItem is owned exclusively by its Room; it has no independent lifecycle.
type RoomItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Quantity    int       `json:"quantity"`
	Condition   Condition `json:"condition"`
	LastChecked string    `json:"last_checked"`
}

type Room struct {
	ID         string     `json:"id"`
	RoomNumber string     `json:"room_number"`
	Capacity   int        `json:"capacity"`
	Occupied   int        `json:"occupied"`
	Floor      int        `json:"floor"`
	Type       RoomType   `json:"type"`
	Students   []string   `json:"students"` // student ids, canonical assignment
	Items      []RoomItem `json:"items"`
}

// Details is a Room with its student ids resolved to display names.
type Details struct {
	Room
	StudentNames []string `json:"student_names"`
}

// Stats summarizes occupancy across the whole collection.
type Stats struct {
	TotalRooms    int `json:"total_rooms"`
	OccupiedRooms int `json:"occupied_rooms"`
	TotalCapacity int `json:"total_capacity"`
	TotalOccupied int `json:"total_occupied"`
	OccupancyRate int `json:"occupancy_rate"` // percentage; 0 when there is no capacity
}
