package model

import "time"

const (
	CompanyTableName  = "MaintenanceCompany"
	CompanyEntityName = "maintenance_company"
	CompanyFieldID    = "companyID"

	RepairTableName  = "RoomRepairs"
	RepairEntityName = "room_repair"
	RepairFieldID    = "repairID"

	RequestTableName  = "RoomRepairRequests"
	RequestEntityName = "room_repair_request"
	RequestFieldID    = "requestNumber"
)

type Company struct {
	CompanyID   int64  `db:"companyid"`
	Name        string `db:"name"`
	Address     string `db:"address"`
	IsCertified bool   `db:"iscertified"`
}

type Repair struct {
	RepairID   int64     `db:"repairid"`
	CompanyID  int64     `db:"companyid"`
	HotelID    int64     `db:"hotelid"`
	RoomNumber int       `db:"roomnumber"`
	RepairDate time.Time `db:"repairdate"`
}

// RepairRequest links a repair to the manager who asked for it; RequestNumber equals RepairID.
type RepairRequest struct {
	RequestNumber int64 `db:"requestnumber"`
	ManagerID     int64 `db:"managerid"`
	RepairID      int64 `db:"repairid"`
}

type RepairHistoryEntry struct {
	RequestNumber int64     `db:"requestnumber"`
	ManagerID     int64     `db:"managerid"`
	RepairID      int64     `db:"repairid"`
	CompanyID     int64     `db:"companyid"`
	CompanyName   string    `db:"companyname"`
	HotelID       int64     `db:"hotelid"`
	RoomNumber    int       `db:"roomnumber"`
	RepairDate    time.Time `db:"repairdate"`
}
