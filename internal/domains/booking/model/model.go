package model

import "time"

const (
	TableName  = "RoomBookings"
	EntityName = "booking"

	FieldID          = "bookingID"
	FieldCustomerID  = "customerID"
	FieldHotelID     = "hotelID"
	FieldRoomNumber  = "roomNumber"
	FieldBookingDate = "bookingDate"
)

type Booking struct {
	BookingID   int64     `db:"bookingid"`
	CustomerID  int64     `db:"customerid"`
	HotelID     int64     `db:"hotelid"`
	RoomNumber  int       `db:"roomnumber"`
	BookingDate time.Time `db:"bookingdate"`
}

type RegularCustomer struct {
	CustomerID int64
	Name       string
	Bookings   int
}
