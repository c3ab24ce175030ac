package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/booking/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"
)

const (
	queryBookingsOnDate = `SELECT bookingID FROM RoomBookings
WHERE hotelID = :hotelID AND roomNumber = :roomNumber AND bookingDate = :bookingDate`

	queryInsertBooking = `INSERT INTO RoomBookings (bookingID, customerID, hotelID, roomNumber, bookingDate)
VALUES (:bookingid, :customerid, :hotelid, :roomnumber, :bookingdate)
ON CONFLICT (hotelID, roomNumber, bookingDate) DO NOTHING`

	queryRegularCustomers = `SELECT u.userID, u.name, COUNT(b.bookingID) AS bookings
FROM RoomBookings b JOIN Users u ON u.userID = b.customerID
WHERE b.hotelID = :hotelID
GROUP BY u.userID, u.name
ORDER BY bookings DESC, u.userID LIMIT :limit`
)

type Booking interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Booking, error)
	// IsBooked reports whether the room already has a booking on date.
	IsBooked(ctx context.Context, hotelID int64, roomNumber int, date time.Time) (bool, error)
	// Create mints a booking id and inserts the booking unless the room is taken on that date.
	// The returned flag is false when another booking won.
	Create(ctx context.Context, booking model.Booking) (model.Booking, bool, error)
	RegularCustomers(ctx context.Context, hotelID int64, limit int) ([]model.RegularCustomer, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	otel otel.Otel
}

func New(gateway postgres.Gateway, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, gateway, otel),
		otel:       otel,
	}
}

func (r *repositoryImpl) IsBooked(ctx context.Context, hotelID int64, roomNumber int, date time.Time) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.IsBooked")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryBookingsOnDate)

	count, err := r.Gateway().QueryCount(ctx, queryBookingsOnDate, map[string]any{
		"hotelID":     hotelID,
		"roomNumber":  roomNumber,
		"bookingDate": date,
	})
	if err != nil {
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check booking: %w", err)
	}

	return count > 0, nil
}

func (r *repositoryImpl) Create(ctx context.Context, booking model.Booking) (model.Booking, bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Create")
	defer scope.End()

	id, err := r.Gateway().NextSequenceValue(ctx, constant.SequenceBookings)
	if err != nil {
		scope.TraceError(err)

		return booking, false, fmt.Errorf("failed to allocate booking id: %w", err)
	}

	booking.BookingID = id

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryInsertBooking)

	affected, err := r.Gateway().Execute(ctx, queryInsertBooking, booking)
	if err != nil {
		scope.TraceError(err)

		return booking, false, fmt.Errorf("failed to insert booking: %w", err)
	}

	return booking, affected > 0, nil
}

func (r *repositoryImpl) RegularCustomers(ctx context.Context, hotelID int64, limit int) ([]model.RegularCustomer, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.RegularCustomers")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryRegularCustomers)

	rows, err := r.Gateway().QueryRows(ctx, queryRegularCustomers, map[string]any{
		"hotelID": hotelID,
		"limit":   limit,
	})
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get regular customers: %w", err)
	}

	customers := make([]model.RegularCustomer, 0, len(rows))

	for _, row := range rows {
		customer, err := parseRegularCustomer(row)
		if err != nil {
			scope.TraceError(err)

			return nil, err
		}

		customers = append(customers, customer)
	}

	return customers, nil
}

func parseRegularCustomer(row []string) (model.RegularCustomer, error) {
	if len(row) != 3 {
		return model.RegularCustomer{}, fmt.Errorf("unexpected regular customer row with %d columns", len(row))
	}

	id, err := strconv.ParseInt(row[0], 10, 64)
	if err != nil {
		return model.RegularCustomer{}, fmt.Errorf("invalid customer id %q: %w", row[0], err)
	}

	bookings, err := strconv.Atoi(row[2])
	if err != nil {
		return model.RegularCustomer{}, fmt.Errorf("invalid booking count %q: %w", row[2], err)
	}

	name := row[1]
	if name == postgres.NullValue {
		name = constant.Empty
	}

	return model.RegularCustomer{
		CustomerID: id,
		Name:       strings.TrimSpace(name),
		Bookings:   bookings,
	}, nil
}
