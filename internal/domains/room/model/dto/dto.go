package dto

import (
	"time"

	"hotel/internal/domains/room/model"
)

type AvailabilityRequest struct {
	HotelID int64     `name:"hotel id" validate:"required,gt=0"`
	Date    time.Time `validate:"required"`
}

type RoomResponse struct {
	HotelID    int64
	RoomNumber int
	Price      float64
	ImageURL   string
}

func (r *RoomResponse) FromModel(m model.Room) {
	r.HotelID = m.HotelID
	r.RoomNumber = m.RoomNumber
	r.Price = m.Price

	r.ImageURL = ""
	if m.ImageURL != nil {
		r.ImageURL = *m.ImageURL
	}
}

func FromModels(models []model.Room) []RoomResponse {
	res := make([]RoomResponse, 0, len(models))

	for _, m := range models {
		var room RoomResponse
		room.FromModel(m)

		res = append(res, room)
	}

	return res
}

type RoomStatusResponse struct {
	RoomResponse
	Available bool
}

func FromStatusModels(models []model.RoomStatus) []RoomStatusResponse {
	res := make([]RoomStatusResponse, 0, len(models))

	for _, m := range models {
		var status RoomStatusResponse
		status.FromModel(m.Room)
		status.Available = !m.Booked

		res = append(res, status)
	}

	return res
}

// RoomChanges holds the staged edits of a room. Nil fields are left untouched on save.
type RoomChanges struct {
	Price    *float64 `db:"price"    validate:"omitempty,gt=0"`
	ImageURL *string  `db:"imageURL" validate:"omitempty,url,max=256"`
}

func (c RoomChanges) Empty() bool {
	return c.Price == nil && c.ImageURL == nil
}

// Apply returns room with the staged values written over it.
func (c RoomChanges) Apply(room model.Room) model.Room {
	if c.Price != nil {
		room.Price = *c.Price
	}

	if c.ImageURL != nil {
		url := *c.ImageURL
		room.ImageURL = &url
	}

	return room
}

type UpdateLogResponse struct {
	UpdateNumber int64     `json:"update_number"`
	ManagerID    int64     `json:"manager_id"`
	HotelID      int64     `json:"hotel_id"`
	RoomNumber   int       `json:"room_number"`
	UpdatedOn    time.Time `json:"updated_on"`
}

func (r *UpdateLogResponse) FromModel(m model.UpdateLogEntry) {
	r.UpdateNumber = m.UpdateNumber
	r.ManagerID = m.ManagerID
	r.HotelID = m.HotelID
	r.RoomNumber = m.RoomNumber
	r.UpdatedOn = m.UpdatedOn
}

func FromUpdateLogModels(models []model.UpdateLogEntry) []UpdateLogResponse {
	res := make([]UpdateLogResponse, 0, len(models))

	for _, m := range models {
		var entry UpdateLogResponse
		entry.FromModel(m)

		res = append(res, entry)
	}

	return res
}
