package dto

import (
	"strings"
	"time"

	"hotel/internal/domains/hotel/model"
)

// NearbyRequest searches around a point. A zero Radius means the configured default.
type NearbyRequest struct {
	Latitude  float64
	Longitude float64
	Radius    float64 `name:"radius" validate:"gte=0"`
}

type HotelResponse struct {
	HotelID         int64
	Name            string
	Latitude        float64
	Longitude       float64
	DateEstablished time.Time
	ManagerUserID   *int64
	Distance        float64
}

func (r *HotelResponse) FromModel(m model.Hotel) {
	r.HotelID = m.HotelID
	r.Name = strings.TrimSpace(m.HotelName)
	r.Latitude = m.Latitude
	r.Longitude = m.Longitude
	r.DateEstablished = m.DateEstablished
	r.ManagerUserID = m.ManagerUserID
}

func FromModels(models []model.Hotel) []HotelResponse {
	res := make([]HotelResponse, 0, len(models))

	for _, m := range models {
		var hotel HotelResponse
		hotel.FromModel(m)

		res = append(res, hotel)
	}

	return res
}
