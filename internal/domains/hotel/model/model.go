package model

import (
	"math"
	"time"
)

const (
	TableName  = "Hotel"
	EntityName = "hotel"

	FieldID            = "hotelID"
	FieldManagerUserID = "managerUserID"
)

type Hotel struct {
	HotelID         int64     `db:"hotelid"`
	HotelName       string    `db:"hotelname"`
	Latitude        float64   `db:"latitude"`
	Longitude       float64   `db:"longitude"`
	DateEstablished time.Time `db:"dateestablished"`
	ManagerUserID   *int64    `db:"manageruserid"`
}

// DistanceTo is the Euclidean distance to (latitude, longitude) in raw coordinate units.
func (h Hotel) DistanceTo(latitude, longitude float64) float64 {
	return math.Hypot(h.Latitude-latitude, h.Longitude-longitude)
}

func (h Hotel) ManagedBy(userID int64) bool {
	return h.ManagerUserID != nil && *h.ManagerUserID == userID
}
