package models

// RoomStatus is the occupancy state of a room.
type RoomStatus string

const (
	RoomStatusOccupied RoomStatus = "Occupied"
	RoomStatusVacant   RoomStatus = "Vacant"
)

func (s RoomStatus) Valid() bool {
	return s == RoomStatusOccupied || s == RoomStatusVacant
}

// VacantTenantLabel is the tenant placeholder stored on vacant rooms.
const VacantTenantLabel = "Vacant"

type Room struct {
	ID     int        `json:"id"`
	Number string     `json:"number"`
	Floor  string     `json:"floor"`
	Tenant string     `json:"tenant"`
	Status RoomStatus `json:"status"`
	Rent   int64      `json:"rent"`
}

// RoomFilter combines a free text search with an exact status match.
type RoomFilter struct {
	Search string     `query:"search"`
	Status RoomStatus `query:"status"`
}

// TenantContact is the contact card shown when an occupied room is opened.
type TenantContact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// RoomTile is one cell of the rooms grid.
type RoomTile struct {
	Number string         `json:"number"`
	Status RoomStatus     `json:"status"`
	Tenant *TenantContact `json:"tenant"`
}
