package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/room/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	gRepo "hotel/shared/repository"
)

const (
	queryAvailableRooms = `SELECT r.hotelID, r.roomNumber, r.price, r.imageURL FROM Rooms r
WHERE r.hotelID = :hotelID AND NOT EXISTS (
	SELECT 1 FROM RoomBookings b
	WHERE b.hotelID = r.hotelID AND b.roomNumber = r.roomNumber AND b.bookingDate = :bookingDate
) ORDER BY r.roomNumber`

	queryRoomStatus = `SELECT r.hotelID, r.roomNumber, r.price, r.imageURL, EXISTS (
	SELECT 1 FROM RoomBookings b
	WHERE b.hotelID = r.hotelID AND b.roomNumber = r.roomNumber AND b.bookingDate = :bookingDate
) AS booked FROM Rooms r
WHERE r.hotelID = :hotelID ORDER BY r.roomNumber`

	queryRecentUpdates = `SELECT l.updateNumber, l.managerID, l.hotelID, l.roomNumber, l.updatedOn
FROM RoomUpdatesLog l JOIN Hotel h ON h.hotelID = l.hotelID
%s ORDER BY l.updatedOn DESC, l.updateNumber DESC LIMIT :limit`
)

type Room interface {
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Room, bool, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	// AvailableRooms lists the rooms of a hotel without a booking on date, by room number.
	AvailableRooms(ctx context.Context, hotelID int64, date time.Time) ([]model.Room, error)
	// RoomStatuses lists every room of a hotel with its booking state on date.
	RoomStatuses(ctx context.Context, hotelID int64, date time.Time) ([]model.RoomStatus, error)
	// SaveWithLog updates one room and appends its update log entry in a single transaction.
	SaveWithLog(ctx context.Context, hotelID int64, roomNumber int, fields map[string]any, entry model.UpdateLogEntry) (model.UpdateLogEntry, error)
	// RecentUpdates returns the newest log entries, restricted to the hotels of managerID when set.
	RecentUpdates(ctx context.Context, managerID *int64, limit int) ([]model.UpdateLogEntry, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	updateLog gRepo.Repository[model.UpdateLogEntry]
	otel      otel.Otel
}

func New(gateway postgres.Gateway, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldHotelID, gateway, otel),
		updateLog: gRepo.NewRepository[model.UpdateLogEntry](model.UpdateLogEntityName, model.UpdateLogTableName,
			model.UpdateLogFieldID, gateway, otel),
		otel: otel,
	}
}

// FilterRoom matches one room by its composite key.
func FilterRoom(hotelID int64, roomNumber int) gDto.FilterGroup {
	return shared.FilterAll(
		gDto.Filter{Field: model.FieldHotelID, Value: hotelID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{Field: model.FieldRoomNumber, Value: roomNumber, Operator: gDto.FilterOperatorEq, Table: model.TableName},
	)
}

func (r *repositoryImpl) AvailableRooms(ctx context.Context, hotelID int64, date time.Time) ([]model.Room, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.AvailableRooms")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryAvailableRooms)

	rooms := []model.Room{}

	err := r.Gateway().Select(ctx, &rooms, queryAvailableRooms, map[string]any{
		"hotelID":     hotelID,
		"bookingDate": date,
	})
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get available rooms: %w", err)
	}

	return rooms, nil
}

func (r *repositoryImpl) RoomStatuses(ctx context.Context, hotelID int64, date time.Time) ([]model.RoomStatus, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.RoomStatuses")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryRoomStatus)

	rooms := []model.RoomStatus{}

	err := r.Gateway().Select(ctx, &rooms, queryRoomStatus, map[string]any{
		"hotelID":     hotelID,
		"bookingDate": date,
	})
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get room statuses: %w", err)
	}

	return rooms, nil
}

func (r *repositoryImpl) SaveWithLog(ctx context.Context, hotelID int64, roomNumber int, fields map[string]any, entry model.UpdateLogEntry) (model.UpdateLogEntry, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.SaveWithLog")
	defer scope.End()

	err := r.Gateway().WithTx(ctx, func(tx postgres.Gateway) error {
		affected, err := r.UpdateTx(ctx, tx, fields, FilterRoom(hotelID, roomNumber))
		if err != nil {
			return err
		}

		if affected == 0 {
			return failure.NoSuchRoom
		}

		entry.UpdateNumber, err = tx.NextSequenceValue(ctx, constant.SequenceRoomUpdateLog)
		if err != nil {
			return err
		}

		return r.updateLog.InsertTx(ctx, tx, entry)
	})
	if err != nil {
		scope.TraceError(err)

		return model.UpdateLogEntry{}, fmt.Errorf("failed to save room: %w", err)
	}

	return entry, nil
}

func (r *repositoryImpl) RecentUpdates(ctx context.Context, managerID *int64, limit int) ([]model.UpdateLogEntry, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.RecentUpdates")
	defer scope.End()

	args := map[string]any{"limit": limit}

	where := ""
	if managerID != nil {
		where = "WHERE h.managerUserID = :managerID"
		args["managerID"] = *managerID
	}

	query := fmt.Sprintf(queryRecentUpdates, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	entries := []model.UpdateLogEntry{}
	if err := r.Gateway().Select(ctx, &entries, query, args); err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get recent room updates: %w", err)
	}

	return entries, nil
}
