package model

import "time"

const (
	TableName  = "Rooms"
	EntityName = "room"

	FieldHotelID    = "hotelID"
	FieldRoomNumber = "roomNumber"
	FieldPrice      = "price"
	FieldImageURL   = "imageURL"
)

const (
	UpdateLogTableName  = "RoomUpdatesLog"
	UpdateLogEntityName = "room_update"

	UpdateLogFieldID        = "updateNumber"
	UpdateLogFieldUpdatedOn = "updatedOn"
)

type Room struct {
	HotelID    int64   `db:"hotelid"`
	RoomNumber int     `db:"roomnumber"`
	Price      float64 `db:"price"`
	ImageURL   *string `db:"imageurl"`
}

// RoomStatus is a room with its booking state on one date.
type RoomStatus struct {
	Room
	Booked bool `db:"booked"`
}

type UpdateLogEntry struct {
	UpdateNumber int64     `db:"updatenumber"`
	ManagerID    int64     `db:"managerid"`
	HotelID      int64     `db:"hotelid"`
	RoomNumber   int       `db:"roomnumber"`
	UpdatedOn    time.Time `db:"updatedon"`
}
