package service

import (
	"context"
	"errors"
	"fmt"
	"os"

	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/session"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/timezone"
	"hotel/shared/validator"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const imageMimeTypes = "oneof=image/png image/jpeg image/gif image/webp"

var errNothingToSave = failure.BadRequestFromString("nothing to save, no change was made")

type editorImpl struct {
	svc       *serviceImpl
	principal session.Principal
	room      model.Room
	staged    dto.RoomChanges
	// object key of an image uploaded during this edit
	uploaded string
}

func (e *editorImpl) Room() dto.RoomResponse {
	var res dto.RoomResponse
	res.FromModel(e.staged.Apply(e.room))

	return res
}

func (e *editorImpl) Dirty() bool {
	return !e.staged.Empty()
}

func (e *editorImpl) SetPrice(price float64) error {
	changes := dto.RoomChanges{Price: &price}
	if err := validator.ValidateStruct(&changes); err != nil {
		return err
	}

	e.staged.Price = changes.Price

	return nil
}

func (e *editorImpl) SetImageURL(url string) error {
	changes := dto.RoomChanges{ImageURL: &url}
	if err := validator.ValidateStruct(&changes); err != nil {
		return err
	}

	e.staged.ImageURL = changes.ImageURL

	return nil
}

func (e *editorImpl) UploadImage(ctx context.Context, path string) (err error) {
	ctx, scope := e.svc.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !e.svc.s3.Enabled() {
		return failure.BadRequestFromString("image upload is not configured")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return failure.BadRequest(err)
	}

	mime := mimetype.Detect(data)
	if err = validator.ValidateVar(mime.String(), imageMimeTypes); err != nil {
		return failure.BadRequestFromString("only png, jpeg, gif and webp images can be uploaded")
	}

	fileName := uuid.NewString() + mime.Extension()

	url, err := e.svc.s3.UploadFileBytes(ctx, constant.Empty, constant.S3DirectoryRooms, fileName, mime.String(), data)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload room image")

		return fmt.Errorf("failed to upload image: %w", err)
	}

	e.dropUpload(ctx)

	e.uploaded = constant.S3DirectoryRooms + "/" + fileName
	e.staged.ImageURL = &url

	return nil
}

func (e *editorImpl) Save(ctx context.Context) (res dto.UpdateLogResponse, err error) {
	ctx, scope := e.svc.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !e.Dirty() {
		return res, errNothingToSave
	}

	entry := model.UpdateLogEntry{
		ManagerID:  e.principal.UserID,
		HotelID:    e.room.HotelID,
		RoomNumber: e.room.RoomNumber,
		UpdatedOn:  timezone.Now(),
	}

	entry, err = e.svc.repo.SaveWithLog(ctx, e.room.HotelID, e.room.RoomNumber, shared.TransformFields(e.staged), entry)
	if err != nil {
		log.Error().Err(err).Int64("hotelID", e.room.HotelID).Int("roomNumber", e.room.RoomNumber).Msg("failed to save room")

		if e.uploaded != constant.Empty {
			e.dropUpload(ctx)
			e.staged.ImageURL = nil
		}

		if errors.Is(err, failure.NoSuchRoom) {
			return res, failure.NoSuchRoom
		}

		return res, fmt.Errorf("failed to save room: %w", err)
	}

	previous := e.room.ImageURL
	e.room = e.staged.Apply(e.room)
	e.staged = dto.RoomChanges{}
	e.uploaded = constant.Empty

	if previous != nil && (e.room.ImageURL == nil || *previous != *e.room.ImageURL) {
		e.deleteObject(ctx, e.svc.s3.GetObjectNameFromURL(constant.Empty, *previous))
	}

	res.FromModel(entry)

	if err := e.svc.kafka.Publish(ctx, constant.EventRoomUpdated, res); err != nil {
		log.Warn().Err(err).Msg("failed to publish room update event")
	}

	return res, nil
}

func (e *editorImpl) Discard(ctx context.Context) {
	e.dropUpload(ctx)
	e.staged = dto.RoomChanges{}
}

func (e *editorImpl) dropUpload(ctx context.Context) {
	if e.uploaded == constant.Empty {
		return
	}

	e.deleteObject(ctx, e.uploaded)
	e.uploaded = constant.Empty
}

// deleteObject removes an image this application stored; foreign URLs resolve to no key.
func (e *editorImpl) deleteObject(ctx context.Context, objectKey string) {
	if objectKey == constant.Empty {
		return
	}

	if err := e.svc.s3.DeleteFile(ctx, constant.Empty, constant.Empty, objectKey); err != nil {
		log.Warn().Err(err).Str("object", objectKey).Msg("failed to delete room image")
	}
}
