package domain

// RoomStatus enumerates the occupancy states a room can be in. StatusAll is
// only valid as a listing filter, never as a stored value.
type RoomStatus string

const (
	RoomStatusAvailable        RoomStatus = "Available"
	RoomStatusUnderMaintenance RoomStatus = "Under Maintenance"
	RoomStatusOccupied         RoomStatus = "Occupied"
	RoomStatusAll              RoomStatus = "All"
)

// ValidRoomStatus reports whether s is a storable room status.
func ValidRoomStatus(s string) bool {
	switch RoomStatus(s) {
	case RoomStatusAvailable, RoomStatusUnderMaintenance, RoomStatusOccupied:
		return true
	}
	return false
}

// Room is a bookable hotel room.
type Room struct {
	RoomID     int     `json:"RoomID" db:"RoomID"`
	RoomNumber string  `json:"RoomNumber" db:"RoomNumber"`
	RoomTypeID int     `json:"RoomTypeID" db:"RoomTypeID"`
	Price      float64 `json:"Price" db:"Price"`
	BedType    string  `json:"BedType" db:"BedType"`
	ViewType   string  `json:"ViewType" db:"ViewType"`
	Status     string  `json:"Status" db:"Status"`
	IsActive   bool    `json:"IsActive" db:"IsActive"`
}
