package constant

import (
	"time"
)

const (
	RoleCustomer = "customer"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
)

const (
	SequenceBookings      = "roombookings_bookingid_seq"
	SequenceRoomUpdateLog = "roomupdateslog_updatenumber_seq"
	SequenceRoomRepairs   = "roomrepairs_repairid_seq"
)

const (
	DefaultValueLimit   = 5
	DefaultValueSortDir = "DESC"
)

const (
	PqErrorCodeUniqueViolation = "23505"
)

const (
	// InputDateFormat is the console date entry format (MM/DD/YYYY).
	InputDateFormat = "01/02/2006"
	DateFormat      = "2006-01-02"
	TimestampFormat = time.RFC3339
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelGatewayScopeName    = "gateway"

	OtelQueryAttributeKey = "query"
	OtelS3ScopeName       = "s3"
)

const (
	EventBookingCreated  = "booking.created"
	EventRoomUpdated     = "room.updated"
	EventRepairRequested = "repair.requested"
)

const (
	S3DirectoryRooms = "rooms"
)

const (
	Empty = ""
)
