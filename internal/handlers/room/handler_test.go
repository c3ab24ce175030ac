package room_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"hotel/infras/otel/mocks"
	hotelDto "hotel/internal/domains/hotel/model/dto"
	hotelMocks "hotel/internal/domains/hotel/service/mocks"
	"hotel/internal/domains/room/model/dto"
	roomMocks "hotel/internal/domains/room/service/mocks"
	"hotel/internal/handlers/room"
	"hotel/shared/failure"
	"hotel/transport/console/terminal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	handler room.Handler
	rooms   *roomMocks.MockRoom
	hotels  *hotelMocks.MockHotel
	editor  *roomMocks.MockEditor
	otel    *mocks.Otel
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		rooms:  roomMocks.NewMockRoom(ctrl),
		hotels: hotelMocks.NewMockHotel(ctrl),
		editor: roomMocks.NewMockEditor(ctrl),
		otel:   mocks.NewRecordingOtel(),
	}
	f.handler = room.New(f.rooms, f.hotels, f.otel)

	return f
}

func (f *fixture) openEditor() {
	f.hotels.EXPECT().HotelsManagedBy(gomock.Any()).Return([]hotelDto.HotelResponse{{HotelID: 1, Name: "Origin Inn"}}, nil)
	f.rooms.EXPECT().OpenEditor(gomock.Any(), int64(1), 101).Return(f.editor, nil)
	f.editor.EXPECT().Room().Return(dto.RoomResponse{HotelID: 1, RoomNumber: 101, Price: 100}).AnyTimes()
}

func run(t *testing.T, f *fixture, input string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	err := f.handler.UpdateRoom(context.Background(), terminal.New(strings.NewReader(input), &out))

	return out.String(), err
}

func TestHandler_UpdateRoomExitWithoutSaving(t *testing.T) {
	f := newFixture(t)
	f.openEditor()

	f.editor.EXPECT().SetPrice(150.0).Return(nil)
	f.editor.EXPECT().Dirty().Return(true).AnyTimes()
	f.editor.EXPECT().Discard(gomock.Any()).Times(1)

	out, err := run(t, f, "1\n101\n1\n150\n9\n")

	require.NoError(t, err)
	assert.Contains(t, out, "Origin Inn")
	assert.Contains(t, out, "Changes discarded.")
}

func TestHandler_UpdateRoomSave(t *testing.T) {
	f := newFixture(t)
	f.openEditor()

	gomock.InOrder(
		f.editor.EXPECT().SetPrice(150.0).Return(nil),
		f.editor.EXPECT().SetImageURL("https://img.example.com/101.png").Return(nil),
		f.editor.EXPECT().Save(gomock.Any()).Return(dto.UpdateLogResponse{UpdateNumber: 9}, nil),
	)
	f.editor.EXPECT().Dirty().Return(true).AnyTimes()

	out, err := run(t, f, "1\n101\n1\n150\n2\nhttps://img.example.com/101.png\n4\n")

	require.NoError(t, err)
	assert.Contains(t, out, "Room updated, update number 9.")
	assert.Contains(t, out, "(unsaved changes)")
	assert.Equal(t, []string{"Room updated"}, f.otel.Scope.Events())
}

func TestHandler_UpdateRoomRejectedEdits(t *testing.T) {
	f := newFixture(t)
	f.openEditor()

	f.editor.EXPECT().SetPrice(-5.0).Return(failure.BadRequestFromString("price must be greater than 0"))
	f.editor.EXPECT().Save(gomock.Any()).Return(dto.UpdateLogResponse{}, failure.BadRequestFromString("nothing to save, no change was made"))
	f.editor.EXPECT().Dirty().Return(false).AnyTimes()
	f.editor.EXPECT().Discard(gomock.Any()).Times(1)

	out, err := run(t, f, "1\n101\n1\n-5\n4\n7\n9\n")

	require.NoError(t, err)
	assert.Contains(t, out, "price must be greater than 0")
	assert.Contains(t, out, "nothing to save, no change was made")
	assert.Contains(t, out, "Unrecognized choice!")
	assert.NotContains(t, out, "Changes discarded.")
}

func TestHandler_UpdateRoomUpload(t *testing.T) {
	f := newFixture(t)
	f.openEditor()

	f.editor.EXPECT().UploadImage(gomock.Any(), "/tmp/room.png").Return(nil)
	f.editor.EXPECT().Dirty().Return(true).AnyTimes()
	f.editor.EXPECT().Discard(gomock.Any()).Times(1)

	_, err := run(t, f, "1\n101\n3\n/tmp/room.png\n")

	require.Error(t, err, "input ends inside the editor")
}

func TestHandler_UpdateRoomNotAllowed(t *testing.T) {
	f := newFixture(t)

	f.hotels.EXPECT().HotelsManagedBy(gomock.Any()).Return([]hotelDto.HotelResponse{}, nil)
	f.rooms.EXPECT().OpenEditor(gomock.Any(), int64(5), 1).Return(nil, failure.ResourceRestrictedError)

	_, err := run(t, f, "5\n1\n")

	require.ErrorIs(t, err, failure.ResourceRestrictedError)
	require.Len(t, f.otel.Scope.Errors(), 1)
}

func TestHandler_ViewRooms(t *testing.T) {
	f := newFixture(t)

	f.rooms.EXPECT().
		ViewRooms(gomock.Any(), dto.AvailabilityRequest{HotelID: 1, Date: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)}).
		Return([]dto.RoomStatusResponse{
			{RoomResponse: dto.RoomResponse{HotelID: 1, RoomNumber: 1, Price: 80}, Available: true},
			{RoomResponse: dto.RoomResponse{HotelID: 1, RoomNumber: 2, Price: 95.5}},
		}, nil)

	var out bytes.Buffer
	err := f.handler.ViewRooms(context.Background(), terminal.New(strings.NewReader("1\n06/01/2024\n"), &out))

	require.NoError(t, err)
	assert.Contains(t, out.String(), "available")
	assert.Contains(t, out.String(), "95.50")
	assert.Contains(t, out.String(), "booked")
}

func TestHandler_RecentUpdatesEmpty(t *testing.T) {
	f := newFixture(t)

	f.rooms.EXPECT().RecentUpdates(gomock.Any()).Return(nil, nil)

	var out bytes.Buffer
	err := f.handler.RecentUpdates(context.Background(), terminal.New(strings.NewReader(""), &out))

	require.NoError(t, err)
	assert.Contains(t, out.String(), "No room updates yet.")
}
