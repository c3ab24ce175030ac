package dto

import (
	"time"

	"hotel/internal/domains/booking/model"
)

type QuoteRequest struct {
	HotelID    int64     `name:"hotel id"    validate:"required,gt=0"`
	RoomNumber int       `name:"room number" validate:"gte=0"`
	Date       time.Time `name:"date"        validate:"required"`
}

// Quote is a priced, not yet confirmed booking.
type Quote struct {
	HotelID    int64
	RoomNumber int
	Date       time.Time
	Price      float64
}

func (q Quote) ToModel(customerID int64) model.Booking {
	return model.Booking{
		CustomerID:  customerID,
		HotelID:     q.HotelID,
		RoomNumber:  q.RoomNumber,
		BookingDate: q.Date,
	}
}

type BookingResponse struct {
	BookingID   int64     `json:"booking_id"`
	CustomerID  int64     `json:"customer_id"`
	HotelID     int64     `json:"hotel_id"`
	RoomNumber  int       `json:"room_number"`
	BookingDate time.Time `json:"booking_date"`
}

func (r *BookingResponse) FromModel(m model.Booking) {
	r.BookingID = m.BookingID
	r.CustomerID = m.CustomerID
	r.HotelID = m.HotelID
	r.RoomNumber = m.RoomNumber
	r.BookingDate = m.BookingDate
}

func FromModels(models []model.Booking) []BookingResponse {
	res := make([]BookingResponse, 0, len(models))

	for _, m := range models {
		var booking BookingResponse
		booking.FromModel(m)

		res = append(res, booking)
	}

	return res
}

type HistoryRequest struct {
	HotelID int64     `name:"hotel id"   validate:"required,gt=0"`
	From    time.Time `name:"start date" validate:"required"`
	To      time.Time `name:"end date"   validate:"required,gtefield=From"`
}

type RegularCustomerResponse struct {
	CustomerID int64
	Name       string
	Bookings   int
}

func FromRegularCustomers(models []model.RegularCustomer) []RegularCustomerResponse {
	res := make([]RegularCustomerResponse, 0, len(models))

	for _, m := range models {
		res = append(res, RegularCustomerResponse(m))
	}

	return res
}
