package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/maintenance/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"
)

const (
	queryInsertRepair = `INSERT INTO RoomRepairs (repairID, companyID, hotelID, roomNumber, repairDate)
VALUES (:repairid, :companyid, :hotelid, :roomnumber, :repairdate)
ON CONFLICT (companyID, hotelID, roomNumber, repairDate) DO NOTHING`

	queryRepairHistory = `SELECT q.requestNumber, q.managerID, r.repairID, r.companyID, c.name AS companyname,
	r.hotelID, r.roomNumber, r.repairDate
FROM RoomRepairRequests q
JOIN RoomRepairs r ON r.repairID = q.repairID
JOIN MaintenanceCompany c ON c.companyID = r.companyID
WHERE q.managerID = :managerID
ORDER BY r.repairDate DESC, q.requestNumber DESC`
)

type Maintenance interface {
	Companies(ctx context.Context) ([]model.Company, error)
	CompanyExists(ctx context.Context, companyID int64) (bool, error)
	// Place stores a repair and its request in one transaction. The returned flag is false,
	// and nothing is written, when the same repair is already on file.
	Place(ctx context.Context, repair model.Repair, managerID int64) (model.Repair, bool, error)
	RepairHistory(ctx context.Context, managerID int64) ([]model.RepairHistoryEntry, error)
}

type repositoryImpl struct {
	companies gRepo.Repository[model.Company]
	requests  gRepo.Repository[model.RepairRequest]
	otel      otel.Otel
}

func New(gateway postgres.Gateway, otel otel.Otel) Maintenance {
	return &repositoryImpl{
		companies: gRepo.NewRepository[model.Company](model.CompanyEntityName, model.CompanyTableName, model.CompanyFieldID, gateway, otel),
		requests:  gRepo.NewRepository[model.RepairRequest](model.RequestEntityName, model.RequestTableName, model.RequestFieldID, gateway, otel),
		otel:      otel,
	}
}

func (r *repositoryImpl) Companies(ctx context.Context) ([]model.Company, error) {
	params := gDto.QueryParams{SortBy: model.CompanyFieldID, SortDir: gDto.SortDirAsc}

	return r.companies.GetAll(ctx, params, gDto.FilterGroup{})
}

func (r *repositoryImpl) CompanyExists(ctx context.Context, companyID int64) (bool, error) {
	return r.companies.Exist(ctx, shared.FilterByID(companyID, model.CompanyFieldID, model.CompanyTableName))
}

func (r *repositoryImpl) Place(ctx context.Context, repair model.Repair, managerID int64) (model.Repair, bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".maintenance.Place")
	defer scope.End()

	placed := false

	err := r.companies.Gateway().WithTx(ctx, func(tx postgres.Gateway) error {
		id, err := tx.NextSequenceValue(ctx, constant.SequenceRoomRepairs)
		if err != nil {
			return err
		}

		repair.RepairID = id

		affected, err := tx.Execute(ctx, queryInsertRepair, repair)
		if err != nil {
			return err
		}

		if affected == 0 {
			return nil
		}

		placed = true

		return r.requests.InsertTx(ctx, tx, model.RepairRequest{
			RequestNumber: id,
			ManagerID:     managerID,
			RepairID:      id,
		})
	})
	if err != nil {
		scope.TraceError(err)

		return repair, false, fmt.Errorf("failed to place repair request: %w", err)
	}

	return repair, placed, nil
}

func (r *repositoryImpl) RepairHistory(ctx context.Context, managerID int64) ([]model.RepairHistoryEntry, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".maintenance.RepairHistory")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryRepairHistory)

	entries := []model.RepairHistoryEntry{}

	err := r.companies.Gateway().Select(ctx, &entries, queryRepairHistory, map[string]any{"managerID": managerID})
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get repair history: %w", err)
	}

	return entries, nil
}
