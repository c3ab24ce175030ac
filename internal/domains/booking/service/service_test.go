package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel/config"
	kafkaMocks "hotel/infras/kafka/mocks"
	"hotel/infras/otel/mocks"
	bookingMocks "hotel/internal/domains/booking/mocks"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/service"
	hotelDto "hotel/internal/domains/hotel/model/dto"
	hotelSvcMocks "hotel/internal/domains/hotel/service/mocks"
	roomDto "hotel/internal/domains/room/model/dto"
	roomSvcMocks "hotel/internal/domains/room/service/mocks"
	"hotel/internal/session"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var june1 = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

type fixture struct {
	repo   *bookingMocks.MockBooking
	rooms  *roomSvcMocks.MockRoom
	hotels *hotelSvcMocks.MockHotel
	kafka  *kafkaMocks.MockClient
	svc    service.Booking
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.App.RecentLimit = 5

	f := fixture{
		repo:   bookingMocks.NewMockBooking(ctrl),
		rooms:  roomSvcMocks.NewMockRoom(ctrl),
		hotels: hotelSvcMocks.NewMockHotel(ctrl),
		kafka:  kafkaMocks.NewMockClient(ctrl),
	}
	f.svc = service.New(f.repo, f.rooms, f.hotels, cfg, f.kafka, mocks.NewOtel())

	return f
}

func customerContext(id int64) context.Context {
	return session.NewContext(context.Background(), session.Principal{UserID: id, Name: "alice", Role: constant.RoleCustomer})
}

func TestBookingService_Quote(t *testing.T) {
	req := dto.QuoteRequest{HotelID: 1, RoomNumber: 101, Date: june1.Add(13 * time.Hour)}

	t.Run("free room is priced", func(t *testing.T) {
		f := newFixture(t)

		f.rooms.EXPECT().Get(gomock.Any(), int64(1), 101).Return(roomDto.RoomResponse{HotelID: 1, RoomNumber: 101, Price: 120}, nil)
		f.repo.EXPECT().IsBooked(gomock.Any(), int64(1), 101, june1).Return(false, nil)

		quote, err := f.svc.Quote(customerContext(7), req)

		require.NoError(t, err)
		assert.Equal(t, dto.Quote{HotelID: 1, RoomNumber: 101, Date: june1, Price: 120}, quote)
	})

	t.Run("booked room is unavailable", func(t *testing.T) {
		f := newFixture(t)

		f.rooms.EXPECT().Get(gomock.Any(), int64(1), 101).Return(roomDto.RoomResponse{Price: 120}, nil)
		f.repo.EXPECT().IsBooked(gomock.Any(), int64(1), 101, june1).Return(true, nil)

		_, err := f.svc.Quote(customerContext(7), req)

		assert.ErrorIs(t, err, failure.RoomUnavailable)
	})

	t.Run("unknown room", func(t *testing.T) {
		f := newFixture(t)

		f.rooms.EXPECT().Get(gomock.Any(), int64(1), 101).Return(roomDto.RoomResponse{}, failure.NoSuchRoom)

		_, err := f.svc.Quote(customerContext(7), req)

		assert.ErrorIs(t, err, failure.NoSuchRoom)
	})

	t.Run("missing date", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Quote(customerContext(7), dto.QuoteRequest{HotelID: 1, RoomNumber: 101})

		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("requires a session", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Quote(context.Background(), req)

		assert.ErrorIs(t, err, session.ErrNotAuthenticated)
	})
}

func TestBookingService_Confirm(t *testing.T) {
	quote := dto.Quote{HotelID: 1, RoomNumber: 101, Date: june1, Price: 120}

	t.Run("books for the principal", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Create(gomock.Any(), model.Booking{CustomerID: 7, HotelID: 1, RoomNumber: 101, BookingDate: june1}).
			Return(model.Booking{BookingID: 42, CustomerID: 7, HotelID: 1, RoomNumber: 101, BookingDate: june1}, true, nil)
		f.kafka.EXPECT().Publish(gomock.Any(), constant.EventBookingCreated, gomock.Any()).Return(nil)

		res, err := f.svc.Confirm(customerContext(7), quote)

		require.NoError(t, err)
		assert.Equal(t, int64(42), res.BookingID)
		assert.Equal(t, int64(7), res.CustomerID)
	})

	t.Run("lost race is a conflict", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(model.Booking{BookingID: 43}, false, nil)

		_, err := f.svc.Confirm(customerContext(8), quote)

		assert.ErrorIs(t, err, failure.RoomUnavailable)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("publish failure does not fail the booking", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(model.Booking{BookingID: 44}, true, nil)
		f.kafka.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		res, err := f.svc.Confirm(customerContext(7), quote)

		require.NoError(t, err)
		assert.Equal(t, int64(44), res.BookingID)
	})

	t.Run("store error", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(model.Booking{}, false, errors.New("db down"))

		_, err := f.svc.Confirm(customerContext(7), quote)

		require.Error(t, err)
		assert.Equal(t, 500, failure.GetCode(err))
	})

	t.Run("requires a session", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Confirm(context.Background(), quote)

		assert.ErrorIs(t, err, session.ErrNotAuthenticated)
	})
}

func TestBookingService_RecentBookings(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().
		GetAll(gomock.Any(), gDto.Recent(model.FieldBookingDate, 5), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) ([]model.Booking, error) {
			where, args := filter.GetWhereClause()
			assert.Equal(t, "(RoomBookings.customerID = :customerID)", where)
			assert.Equal(t, int64(7), args["customerID"])

			return []model.Booking{{BookingID: 2}, {BookingID: 1}}, nil
		})

	res, err := f.svc.RecentBookings(customerContext(7))

	require.NoError(t, err)
	assert.Len(t, res, 2)
}

func TestBookingService_HotelHistory(t *testing.T) {
	manager := session.NewContext(context.Background(), session.Principal{UserID: 2, Role: constant.RoleManager})
	req := dto.HistoryRequest{HotelID: 1, From: june1, To: june1.AddDate(0, 1, 0)}

	t.Run("owned hotel", func(t *testing.T) {
		f := newFixture(t)

		f.hotels.EXPECT().Authorize(gomock.Any(), int64(1)).Return(hotelDto.HotelResponse{HotelID: 1}, nil)
		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) ([]model.Booking, error) {
				_, args := filter.GetWhereClause()
				assert.Equal(t, june1, args["fromDate"])
				assert.Equal(t, june1.AddDate(0, 1, 0), args["toDate"])

				return []model.Booking{{BookingID: 1}}, nil
			})

		res, err := f.svc.HotelHistory(manager, req)

		require.NoError(t, err)
		assert.Len(t, res, 1)
	})

	t.Run("hotel not owned", func(t *testing.T) {
		f := newFixture(t)

		f.hotels.EXPECT().Authorize(gomock.Any(), int64(1)).Return(hotelDto.HotelResponse{}, failure.ResourceRestrictedError)

		_, err := f.svc.HotelHistory(manager, req)

		assert.ErrorIs(t, err, failure.ResourceRestrictedError)
	})

	t.Run("reversed range", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.HotelHistory(manager, dto.HistoryRequest{HotelID: 1, From: req.To, To: req.From})

		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestBookingService_RegularCustomers(t *testing.T) {
	f := newFixture(t)
	manager := session.NewContext(context.Background(), session.Principal{UserID: 2, Role: constant.RoleManager})

	f.hotels.EXPECT().Authorize(gomock.Any(), int64(1)).Return(hotelDto.HotelResponse{HotelID: 1}, nil)
	f.repo.EXPECT().RegularCustomers(gomock.Any(), int64(1), 5).Return([]model.RegularCustomer{
		{CustomerID: 7, Name: "alice", Bookings: 3},
	}, nil)

	res, err := f.svc.RegularCustomers(manager, 1)

	require.NoError(t, err)
	assert.Equal(t, []dto.RegularCustomerResponse{{CustomerID: 7, Name: "alice", Bookings: 3}}, res)
}
