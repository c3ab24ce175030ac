package service_test

import (
	"context"
	"errors"
	"testing"

	"hotel/config"
	kafkaMocks "hotel/infras/kafka/mocks"
	"hotel/infras/otel/mocks"
	hotelDto "hotel/internal/domains/hotel/model/dto"
	hotelSvcMocks "hotel/internal/domains/hotel/service/mocks"
	maintenanceMocks "hotel/internal/domains/maintenance/mocks"
	"hotel/internal/domains/maintenance/model"
	"hotel/internal/domains/maintenance/model/dto"
	"hotel/internal/domains/maintenance/service"
	roomDto "hotel/internal/domains/room/model/dto"
	roomSvcMocks "hotel/internal/domains/room/service/mocks"
	"hotel/internal/session"
	"hotel/shared/cache"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo   *maintenanceMocks.MockMaintenance
	hotels *hotelSvcMocks.MockHotel
	rooms  *roomSvcMocks.MockRoom
	kafka  *kafkaMocks.MockClient
	svc    service.Maintenance
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	otl := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	f := fixture{
		repo:   maintenanceMocks.NewMockMaintenance(ctrl),
		hotels: hotelSvcMocks.NewMockHotel(ctrl),
		rooms:  roomSvcMocks.NewMockRoom(ctrl),
		kafka:  kafkaMocks.NewMockClient(ctrl),
	}
	f.svc = service.New(f.repo, f.hotels, f.rooms, cfg, cache.NewMemoryCache(otl), f.kafka, otl)

	return f
}

func managerContext() context.Context {
	return session.NewContext(context.Background(), session.Principal{UserID: 2, Name: "bob", Role: constant.RoleManager})
}

var request = dto.RepairRequest{CompanyID: 3, HotelID: 1, RoomNumber: 101}

func (f fixture) expectRoomChecks() {
	f.hotels.EXPECT().Authorize(gomock.Any(), int64(1)).Return(hotelDto.HotelResponse{HotelID: 1}, nil)
	f.rooms.EXPECT().Get(gomock.Any(), int64(1), 101).Return(roomDto.RoomResponse{HotelID: 1, RoomNumber: 101}, nil)
}

func TestMaintenanceService_PlaceRepairRequest(t *testing.T) {
	t.Run("places a request for today", func(t *testing.T) {
		f := newFixture(t)
		f.expectRoomChecks()

		today := timezone.Date(timezone.Now())

		f.repo.EXPECT().CompanyExists(gomock.Any(), int64(3)).Return(true, nil)
		f.repo.EXPECT().
			Place(gomock.Any(), model.Repair{CompanyID: 3, HotelID: 1, RoomNumber: 101, RepairDate: today}, int64(2)).
			DoAndReturn(func(_ context.Context, repair model.Repair, _ int64) (model.Repair, bool, error) {
				repair.RepairID = 5

				return repair, true, nil
			})
		f.kafka.EXPECT().Publish(gomock.Any(), constant.EventRepairRequested, gomock.Any()).Return(nil)

		res, err := f.svc.PlaceRepairRequest(managerContext(), request)

		require.NoError(t, err)
		assert.Equal(t, int64(5), res.RequestNumber)
		assert.Equal(t, int64(5), res.RepairID)
		assert.Equal(t, int64(2), res.ManagerID)
	})

	t.Run("admin places a request for a hotel managed by someone else", func(t *testing.T) {
		f := newFixture(t)
		admin := session.NewContext(context.Background(), session.Principal{UserID: 1, Name: "root", Role: constant.RoleAdmin})
		otherManager := int64(9)

		f.hotels.EXPECT().Authorize(gomock.Any(), int64(1)).
			Return(hotelDto.HotelResponse{HotelID: 1, ManagerUserID: &otherManager}, nil)
		f.rooms.EXPECT().Get(gomock.Any(), int64(1), 101).Return(roomDto.RoomResponse{HotelID: 1, RoomNumber: 101}, nil)
		f.repo.EXPECT().CompanyExists(gomock.Any(), int64(3)).Return(true, nil)
		f.repo.EXPECT().Place(gomock.Any(), gomock.Any(), int64(1)).Return(model.Repair{RepairID: 8}, true, nil)
		f.kafka.EXPECT().Publish(gomock.Any(), constant.EventRepairRequested, gomock.Any()).Return(nil)

		res, err := f.svc.PlaceRepairRequest(admin, request)

		require.NoError(t, err)
		assert.Equal(t, int64(1), res.ManagerID)
	})

	t.Run("duplicate is rejected", func(t *testing.T) {
		f := newFixture(t)
		f.expectRoomChecks()

		f.repo.EXPECT().CompanyExists(gomock.Any(), int64(3)).Return(true, nil)
		f.repo.EXPECT().Place(gomock.Any(), gomock.Any(), int64(2)).Return(model.Repair{RepairID: 6}, false, nil)

		_, err := f.svc.PlaceRepairRequest(managerContext(), request)

		assert.ErrorIs(t, err, failure.DuplicateRepair)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("unknown company", func(t *testing.T) {
		f := newFixture(t)
		f.expectRoomChecks()

		f.repo.EXPECT().CompanyExists(gomock.Any(), int64(3)).Return(false, nil)

		_, err := f.svc.PlaceRepairRequest(managerContext(), request)

		assert.ErrorIs(t, err, service.ErrNoSuchCompany)
	})

	t.Run("unknown room", func(t *testing.T) {
		f := newFixture(t)

		f.hotels.EXPECT().Authorize(gomock.Any(), int64(1)).Return(hotelDto.HotelResponse{HotelID: 1}, nil)
		f.rooms.EXPECT().Get(gomock.Any(), int64(1), 101).Return(roomDto.RoomResponse{}, failure.NoSuchRoom)

		_, err := f.svc.PlaceRepairRequest(managerContext(), request)

		assert.ErrorIs(t, err, failure.NoSuchRoom)
	})

	t.Run("hotel not owned", func(t *testing.T) {
		f := newFixture(t)

		f.hotels.EXPECT().Authorize(gomock.Any(), int64(1)).Return(hotelDto.HotelResponse{}, failure.ResourceRestrictedError)

		_, err := f.svc.PlaceRepairRequest(managerContext(), request)

		assert.ErrorIs(t, err, failure.ResourceRestrictedError)
	})

	t.Run("invalid request", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.PlaceRepairRequest(managerContext(), dto.RepairRequest{HotelID: 1, RoomNumber: 101})

		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("store error", func(t *testing.T) {
		f := newFixture(t)
		f.expectRoomChecks()

		f.repo.EXPECT().CompanyExists(gomock.Any(), int64(3)).Return(true, nil)
		f.repo.EXPECT().Place(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Repair{}, false, errors.New("db down"))

		_, err := f.svc.PlaceRepairRequest(managerContext(), request)

		require.Error(t, err)
		assert.Equal(t, 500, failure.GetCode(err))
	})
}

func TestMaintenanceService_Companies(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Companies(gomock.Any()).Return([]model.Company{
		{CompanyID: 1, Name: "FixIt   ", Address: "1 Main St", IsCertified: true},
	}, nil).Times(1)

	for range 2 {
		res, err := f.svc.Companies(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []dto.CompanyResponse{{CompanyID: 1, Name: "FixIt", Address: "1 Main St", IsCertified: true}}, res)
	}
}

func TestMaintenanceService_RepairHistory(t *testing.T) {
	t.Run("manager", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().RepairHistory(gomock.Any(), int64(2)).Return([]model.RepairHistoryEntry{
			{RequestNumber: 5, CompanyName: "FixIt ", HotelID: 1, RoomNumber: 101},
		}, nil)

		res, err := f.svc.RepairHistory(managerContext())

		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "FixIt", res[0].CompanyName)
	})

	t.Run("customer", func(t *testing.T) {
		f := newFixture(t)

		ctx := session.NewContext(context.Background(), session.Principal{UserID: 7, Role: constant.RoleCustomer})

		_, err := f.svc.RepairHistory(ctx)

		assert.ErrorIs(t, err, failure.ForbiddenError)
	})
}
