package booking_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"hotel/infras/otel/mocks"
	"hotel/internal/domains/booking/model/dto"
	bookingMocks "hotel/internal/domains/booking/service/mocks"
	hotelMocks "hotel/internal/domains/hotel/service/mocks"
	roomDto "hotel/internal/domains/room/model/dto"
	roomMocks "hotel/internal/domains/room/service/mocks"
	"hotel/internal/handlers/booking"
	"hotel/shared/failure"
	"hotel/transport/console/terminal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var june1 = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

type fixture struct {
	handler  booking.Handler
	bookings *bookingMocks.MockBooking
	rooms    *roomMocks.MockRoom
	hotels   *hotelMocks.MockHotel
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		bookings: bookingMocks.NewMockBooking(ctrl),
		rooms:    roomMocks.NewMockRoom(ctrl),
		hotels:   hotelMocks.NewMockHotel(ctrl),
	}
	f.handler = booking.New(f.bookings, f.rooms, f.hotels, mocks.NewOtel())

	return f
}

func (f *fixture) expectAvailableRooms(rooms ...roomDto.RoomResponse) {
	f.rooms.EXPECT().
		AvailableRooms(gomock.Any(), roomDto.AvailabilityRequest{HotelID: 1, Date: june1}).
		Return(rooms, nil)
}

func TestHandler_BookRoom(t *testing.T) {
	quoteReq := dto.QuoteRequest{HotelID: 1, RoomNumber: 101, Date: june1}
	quote := dto.Quote{HotelID: 1, RoomNumber: 101, Date: june1, Price: 120}

	tests := []struct {
		name       string
		input      string
		mockSetup  func(f *fixture)
		wantErr    error
		wantOutput []string
	}{
		{
			name:  "confirmed booking",
			input: "1\n06/01/2024\n101\ny\n",
			mockSetup: func(f *fixture) {
				f.expectAvailableRooms(roomDto.RoomResponse{HotelID: 1, RoomNumber: 101, Price: 120})
				f.bookings.EXPECT().Quote(gomock.Any(), quoteReq).Return(quote, nil)
				f.bookings.EXPECT().Confirm(gomock.Any(), quote).Return(dto.BookingResponse{BookingID: 55}, nil)
			},
			wantOutput: []string{"Room  Price", "101   120.00", "costs 120.00", "Booking confirmed, booking number 55."},
		},
		{
			name:  "cancel books nothing",
			input: "1\n06/01/2024\n101\nn\n",
			mockSetup: func(f *fixture) {
				f.expectAvailableRooms(roomDto.RoomResponse{HotelID: 1, RoomNumber: 101, Price: 120})
				f.bookings.EXPECT().Quote(gomock.Any(), quoteReq).Return(quote, nil)
			},
			wantOutput: []string{"Booking cancelled."},
		},
		{
			name:  "no free room",
			input: "1\n06/01/2024\n",
			mockSetup: func(f *fixture) {
				f.expectAvailableRooms()
			},
			wantOutput: []string{"No rooms are available on 06/01/2024."},
		},
		{
			name:  "room taken after listing",
			input: "1\n06/01/2024\n101\n",
			mockSetup: func(f *fixture) {
				f.expectAvailableRooms(roomDto.RoomResponse{HotelID: 1, RoomNumber: 101, Price: 120})
				f.bookings.EXPECT().Quote(gomock.Any(), quoteReq).Return(dto.Quote{}, failure.RoomUnavailable)
			},
			wantErr: failure.RoomUnavailable,
		},
		{
			name:  "lost the race on confirm",
			input: "1\n06/01/2024\n101\nyes\n",
			mockSetup: func(f *fixture) {
				f.expectAvailableRooms(roomDto.RoomResponse{HotelID: 1, RoomNumber: 101, Price: 120})
				f.bookings.EXPECT().Quote(gomock.Any(), quoteReq).Return(quote, nil)
				f.bookings.EXPECT().Confirm(gomock.Any(), quote).Return(dto.BookingResponse{}, failure.RoomUnavailable)
			},
			wantErr: failure.RoomUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.mockSetup(f)

			var out bytes.Buffer
			err := f.handler.BookRoom(context.Background(), terminal.New(strings.NewReader(tt.input), &out))

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)

			for _, want := range tt.wantOutput {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestHandler_HotelHistory(t *testing.T) {
	f := newFixture(t)

	f.hotels.EXPECT().HotelsManagedBy(gomock.Any()).Return(nil, nil)
	f.bookings.EXPECT().
		HotelHistory(gomock.Any(), dto.HistoryRequest{HotelID: 4, From: june1, To: june1.AddDate(0, 0, 30)}).
		Return([]dto.BookingResponse{{BookingID: 3, CustomerID: 7, HotelID: 4, RoomNumber: 2, BookingDate: june1}}, nil)

	var out bytes.Buffer
	err := f.handler.HotelHistory(context.Background(), terminal.New(strings.NewReader("4\n06/01/2024\n07/01/2024\n"), &out))

	require.NoError(t, err)
	assert.Contains(t, out.String(), "You do not manage any hotel.")
	assert.Contains(t, out.String(), "06/01/2024")
}

func TestHandler_RegularCustomers(t *testing.T) {
	f := newFixture(t)

	f.hotels.EXPECT().HotelsManagedBy(gomock.Any()).Return(nil, failure.ForbiddenError)

	var out bytes.Buffer
	err := f.handler.RegularCustomers(context.Background(), terminal.New(strings.NewReader(""), &out))

	require.ErrorIs(t, err, failure.ForbiddenError)
}

func TestHandler_RecentBookingsEmpty(t *testing.T) {
	f := newFixture(t)

	f.bookings.EXPECT().RecentBookings(gomock.Any()).Return([]dto.BookingResponse{}, nil)

	var out bytes.Buffer
	err := f.handler.RecentBookings(context.Background(), terminal.New(strings.NewReader(""), &out))

	require.NoError(t, err)
	assert.Contains(t, out.String(), "You have no bookings yet.")
}
