package service_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"hotel/config"
	kafkaMocks "hotel/infras/kafka/mocks"
	"hotel/infras/otel/mocks"
	s3Mocks "hotel/infras/s3/mocks"
	hotelDto "hotel/internal/domains/hotel/model/dto"
	hotelSvcMocks "hotel/internal/domains/hotel/service/mocks"
	roomMocks "hotel/internal/domains/room/mocks"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/service"
	"hotel/internal/session"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

type fixture struct {
	repo   *roomMocks.MockRoom
	hotels *hotelSvcMocks.MockHotel
	s3     *s3Mocks.MockS3
	kafka  *kafkaMocks.MockClient
	svc    service.Room
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.App.RecentLimit = 5

	f := fixture{
		repo:   roomMocks.NewMockRoom(ctrl),
		hotels: hotelSvcMocks.NewMockHotel(ctrl),
		s3:     s3Mocks.NewMockS3(ctrl),
		kafka:  kafkaMocks.NewMockClient(ctrl),
	}
	f.svc = service.New(f.repo, f.hotels, cfg, f.s3, f.kafka, mocks.NewOtel())

	return f
}

func managerContext() context.Context {
	return session.NewContext(context.Background(), session.Principal{UserID: 2, Name: "bob", Role: constant.RoleManager})
}

func stringPtr(v string) *string {
	return &v
}

func (f fixture) openEditor(t *testing.T, room model.Room) service.Editor {
	t.Helper()

	f.hotels.EXPECT().Authorize(gomock.Any(), room.HotelID).Return(hotelDto.HotelResponse{HotelID: room.HotelID}, nil)
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, true, nil)

	editor, err := f.svc.OpenEditor(managerContext(), room.HotelID, room.RoomNumber)
	require.NoError(t, err)

	return editor
}

func TestRoomService_AvailableRooms(t *testing.T) {
	date := time.Date(2024, time.May, 3, 15, 30, 0, 0, time.UTC)

	t.Run("returns rooms for the calendar day", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			AvailableRooms(gomock.Any(), int64(1), timezone.Date(date)).
			Return([]model.Room{
				{HotelID: 1, RoomNumber: 1, Price: 100},
				{HotelID: 1, RoomNumber: 3, Price: 120, ImageURL: stringPtr("https://img/3.png")},
			}, nil)

		res, err := f.svc.AvailableRooms(context.Background(), dto.AvailabilityRequest{HotelID: 1, Date: date})

		require.NoError(t, err)
		assert.Equal(t, []dto.RoomResponse{
			{HotelID: 1, RoomNumber: 1, Price: 100},
			{HotelID: 1, RoomNumber: 3, Price: 120, ImageURL: "https://img/3.png"},
		}, res)
	})

	t.Run("rejects a missing hotel id", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.AvailableRooms(context.Background(), dto.AvailabilityRequest{Date: date})

		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("store error", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().AvailableRooms(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		_, err := f.svc.AvailableRooms(context.Background(), dto.AvailabilityRequest{HotelID: 1, Date: date})

		require.Error(t, err)
		assert.Equal(t, 500, failure.GetCode(err))
	})
}

func TestRoomService_ViewRooms(t *testing.T) {
	f := newFixture(t)
	date := time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC)

	f.repo.EXPECT().RoomStatuses(gomock.Any(), int64(1), date).Return([]model.RoomStatus{
		{Room: model.Room{HotelID: 1, RoomNumber: 1, Price: 100}, Booked: true},
		{Room: model.Room{HotelID: 1, RoomNumber: 2, Price: 90}},
	}, nil)

	res, err := f.svc.ViewRooms(context.Background(), dto.AvailabilityRequest{HotelID: 1, Date: date})

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.False(t, res[0].Available)
	assert.True(t, res[1].Available)
	assert.Equal(t, 90.0, res[1].Price)
}

func TestRoomService_Get(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, false, nil)

	_, err := f.svc.Get(context.Background(), 1, 404)

	assert.ErrorIs(t, err, failure.NoSuchRoom)
}

func TestRoomService_OpenEditor(t *testing.T) {
	t.Run("hotel not managed by the principal", func(t *testing.T) {
		f := newFixture(t)

		f.hotels.EXPECT().Authorize(gomock.Any(), int64(5)).Return(hotelDto.HotelResponse{}, failure.ResourceRestrictedError)

		_, err := f.svc.OpenEditor(managerContext(), 5, 1)

		assert.ErrorIs(t, err, failure.ResourceRestrictedError)
	})

	t.Run("unknown room", func(t *testing.T) {
		f := newFixture(t)

		f.hotels.EXPECT().Authorize(gomock.Any(), int64(1)).Return(hotelDto.HotelResponse{HotelID: 1}, nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, false, nil)

		_, err := f.svc.OpenEditor(managerContext(), 1, 99)

		assert.ErrorIs(t, err, failure.NoSuchRoom)
	})
}

func TestEditor_ExitWithoutSaveWritesNothing(t *testing.T) {
	f := newFixture(t)
	editor := f.openEditor(t, model.Room{HotelID: 1, RoomNumber: 7, Price: 100})

	require.NoError(t, editor.SetPrice(150))
	assert.True(t, editor.Dirty())
	assert.Equal(t, 150.0, editor.Room().Price)

	// no SaveWithLog expectation: any write fails the test
	editor.Discard(context.Background())

	assert.False(t, editor.Dirty())
	assert.Equal(t, 100.0, editor.Room().Price)
}

func TestEditor_SaveWritesLastStagedValues(t *testing.T) {
	f := newFixture(t)
	editor := f.openEditor(t, model.Room{HotelID: 1, RoomNumber: 7, Price: 100})

	require.NoError(t, editor.SetPrice(120))
	require.NoError(t, editor.SetPrice(150))
	require.NoError(t, editor.SetImageURL("https://cdn.example.com/rooms/7.png"))

	f.repo.EXPECT().
		SaveWithLog(gomock.Any(), int64(1), 7, map[string]any{
			"price":    150.0,
			"imageURL": "https://cdn.example.com/rooms/7.png",
		}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, _ int, _ map[string]any, entry model.UpdateLogEntry) (model.UpdateLogEntry, error) {
			assert.Equal(t, int64(2), entry.ManagerID)
			assert.False(t, entry.UpdatedOn.IsZero())

			entry.UpdateNumber = 11

			return entry, nil
		}).
		Times(1)
	f.kafka.EXPECT().Publish(gomock.Any(), constant.EventRoomUpdated, gomock.Any()).Return(nil)

	res, err := editor.Save(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(11), res.UpdateNumber)
	assert.Equal(t, 7, res.RoomNumber)
	assert.False(t, editor.Dirty())
	assert.Equal(t, 150.0, editor.Room().Price)
}

func TestEditor_SaveWithoutChanges(t *testing.T) {
	f := newFixture(t)
	editor := f.openEditor(t, model.Room{HotelID: 1, RoomNumber: 7, Price: 100})

	_, err := editor.Save(context.Background())

	require.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestEditor_InvalidValues(t *testing.T) {
	f := newFixture(t)
	editor := f.openEditor(t, model.Room{HotelID: 1, RoomNumber: 7, Price: 100})

	assert.Error(t, editor.SetPrice(0))
	assert.Error(t, editor.SetPrice(-5))
	assert.Error(t, editor.SetImageURL("not a url"))
	assert.False(t, editor.Dirty())
}

func TestEditor_SaveReplacesStoredImage(t *testing.T) {
	f := newFixture(t)
	editor := f.openEditor(t, model.Room{HotelID: 1, RoomNumber: 7, Price: 100, ImageURL: stringPtr("https://cdn/rooms/old.png")})

	require.NoError(t, editor.SetImageURL("https://cdn/rooms/new.png"))

	f.repo.EXPECT().SaveWithLog(gomock.Any(), int64(1), 7, gomock.Any(), gomock.Any()).Return(model.UpdateLogEntry{UpdateNumber: 1}, nil)
	f.s3.EXPECT().GetObjectNameFromURL("", "https://cdn/rooms/old.png").Return("rooms/old.png")
	f.s3.EXPECT().DeleteFile(gomock.Any(), "", "", "rooms/old.png").Return(nil)
	f.kafka.EXPECT().Publish(gomock.Any(), constant.EventRoomUpdated, gomock.Any()).Return(errors.New("broker down"))

	_, err := editor.Save(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "https://cdn/rooms/new.png", editor.Room().ImageURL)
}

func TestEditor_UploadImage(t *testing.T) {
	dir := t.TempDir()

	image := filepath.Join(dir, "room.png")
	require.NoError(t, os.WriteFile(image, pngHeader, 0o600))

	text := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(text, []byte("just text"), 0o600))

	t.Run("discard deletes the uploaded object", func(t *testing.T) {
		f := newFixture(t)
		editor := f.openEditor(t, model.Room{HotelID: 1, RoomNumber: 7, Price: 100})

		var key string

		f.s3.EXPECT().Enabled().Return(true)
		f.s3.EXPECT().
			UploadFileBytes(gomock.Any(), "", constant.S3DirectoryRooms, gomock.Any(), "image/png", pngHeader).
			DoAndReturn(func(_ context.Context, _, directory, fileName, _ string, _ []byte) (string, error) {
				key = directory + "/" + fileName

				return "https://cdn/" + key, nil
			})

		require.NoError(t, editor.UploadImage(context.Background(), image))
		assert.Equal(t, "https://cdn/"+key, editor.Room().ImageURL)
		assert.Equal(t, ".png", filepath.Ext(key))

		f.s3.EXPECT().DeleteFile(gomock.Any(), "", "", key).Return(nil)

		editor.Discard(context.Background())

		assert.False(t, editor.Dirty())
	})

	t.Run("failed save deletes the uploaded object", func(t *testing.T) {
		f := newFixture(t)
		editor := f.openEditor(t, model.Room{HotelID: 1, RoomNumber: 7, Price: 100})

		f.s3.EXPECT().Enabled().Return(true)
		f.s3.EXPECT().UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("https://cdn/rooms/x.png", nil)
		f.repo.EXPECT().SaveWithLog(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(model.UpdateLogEntry{}, errors.New("db down"))
		f.s3.EXPECT().DeleteFile(gomock.Any(), "", "", gomock.Any()).Return(nil)

		require.NoError(t, editor.UploadImage(context.Background(), image))

		_, err := editor.Save(context.Background())

		require.Error(t, err)
		assert.Equal(t, 500, failure.GetCode(err))
		assert.Empty(t, editor.Room().ImageURL)
	})

	t.Run("rejects non image files", func(t *testing.T) {
		f := newFixture(t)
		editor := f.openEditor(t, model.Room{HotelID: 1, RoomNumber: 7, Price: 100})

		f.s3.EXPECT().Enabled().Return(true)

		err := editor.UploadImage(context.Background(), text)

		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("storage disabled", func(t *testing.T) {
		f := newFixture(t)
		editor := f.openEditor(t, model.Room{HotelID: 1, RoomNumber: 7, Price: 100})

		f.s3.EXPECT().Enabled().Return(false)

		err := editor.UploadImage(context.Background(), image)

		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestRoomService_RecentUpdates(t *testing.T) {
	t.Run("manager sees own hotels", func(t *testing.T) {
		f := newFixture(t)

		managerID := int64(2)
		f.repo.EXPECT().RecentUpdates(gomock.Any(), &managerID, 5).Return([]model.UpdateLogEntry{{UpdateNumber: 3}}, nil)

		res, err := f.svc.RecentUpdates(managerContext())

		require.NoError(t, err)
		assert.Len(t, res, 1)
	})

	t.Run("admin sees all hotels", func(t *testing.T) {
		f := newFixture(t)

		ctx := session.NewContext(context.Background(), session.Principal{UserID: 1, Role: constant.RoleAdmin})
		f.repo.EXPECT().RecentUpdates(gomock.Any(), (*int64)(nil), 5).Return([]model.UpdateLogEntry{}, nil)

		res, err := f.svc.RecentUpdates(ctx)

		require.NoError(t, err)
		assert.Empty(t, res)
	})

	t.Run("customer is forbidden", func(t *testing.T) {
		f := newFixture(t)

		ctx := session.NewContext(context.Background(), session.Principal{UserID: 7, Role: constant.RoleCustomer})

		_, err := f.svc.RecentUpdates(ctx)

		assert.ErrorIs(t, err, failure.ForbiddenError)
	})
}
