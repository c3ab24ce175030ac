package dto

import (
	"strings"
	"time"

	"hotel/internal/domains/maintenance/model"
)

type CompanyResponse struct {
	CompanyID   int64
	Name        string
	Address     string
	IsCertified bool
}

func FromCompanies(models []model.Company) []CompanyResponse {
	res := make([]CompanyResponse, 0, len(models))

	for _, m := range models {
		res = append(res, CompanyResponse{
			CompanyID:   m.CompanyID,
			Name:        strings.TrimSpace(m.Name),
			Address:     strings.TrimSpace(m.Address),
			IsCertified: m.IsCertified,
		})
	}

	return res
}

type RepairRequest struct {
	CompanyID  int64 `name:"company id"  validate:"required,gt=0"`
	HotelID    int64 `name:"hotel id"    validate:"required,gt=0"`
	RoomNumber int   `name:"room number" validate:"gte=0"`
}

func (r RepairRequest) ToModel(repairDate time.Time) model.Repair {
	return model.Repair{
		CompanyID:  r.CompanyID,
		HotelID:    r.HotelID,
		RoomNumber: r.RoomNumber,
		RepairDate: repairDate,
	}
}

type RepairResponse struct {
	RequestNumber int64     `json:"request_number"`
	RepairID      int64     `json:"repair_id"`
	ManagerID     int64     `json:"manager_id"`
	CompanyID     int64     `json:"company_id"`
	HotelID       int64     `json:"hotel_id"`
	RoomNumber    int       `json:"room_number"`
	RepairDate    time.Time `json:"repair_date"`
}

func ToRepairResponse(repair model.Repair, managerID int64) RepairResponse {
	return RepairResponse{
		RequestNumber: repair.RepairID,
		RepairID:      repair.RepairID,
		ManagerID:     managerID,
		CompanyID:     repair.CompanyID,
		HotelID:       repair.HotelID,
		RoomNumber:    repair.RoomNumber,
		RepairDate:    repair.RepairDate,
	}
}

type RepairHistoryResponse struct {
	RequestNumber int64
	CompanyName   string
	HotelID       int64
	RoomNumber    int
	RepairDate    time.Time
}

func FromHistory(models []model.RepairHistoryEntry) []RepairHistoryResponse {
	res := make([]RepairHistoryResponse, 0, len(models))

	for _, m := range models {
		res = append(res, RepairHistoryResponse{
			RequestNumber: m.RequestNumber,
			CompanyName:   strings.TrimSpace(m.CompanyName),
			HotelID:       m.HotelID,
			RoomNumber:    m.RoomNumber,
			RepairDate:    m.RepairDate,
		})
	}

	return res
}
