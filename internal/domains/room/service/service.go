package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/Satyam7Parsad/hotel-management-system/infras/otel"
	"github.com/Satyam7Parsad/hotel-management-system/infras/postgres"
	"github.com/Satyam7Parsad/hotel-management-system/internal/availability"
	"github.com/Satyam7Parsad/hotel-management-system/internal/calendar"
	"github.com/Satyam7Parsad/hotel-management-system/internal/domains/room/model"
	"github.com/Satyam7Parsad/hotel-management-system/internal/domains/room/model/dto"
	"github.com/Satyam7Parsad/hotel-management-system/internal/domains/room/repository"
	"github.com/Satyam7Parsad/hotel-management-system/shared/constant"
	gDto "github.com/Satyam7Parsad/hotel-management-system/shared/dto"
	"github.com/Satyam7Parsad/hotel-management-system/shared/failure"
	"github.com/Satyam7Parsad/hotel-management-system/shared/timezone"
	"github.com/Satyam7Parsad/hotel-management-system/shared/validator"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (int64, error)
	Get(ctx context.Context, id int64) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams) ([]model.Room, error)
	GetByFloor(ctx context.Context, floor int) ([]model.Room, error)
	GetByStatus(ctx context.Context, status model.RoomStatus) ([]model.Room, error)
	GetByRoomType(ctx context.Context, roomTypeID int64) ([]model.Room, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, id int64) error
	UpdateStatus(ctx context.Context, id int64, status model.RoomStatus) error
	Delete(ctx context.Context, id int64) error
	TotalRooms(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status model.RoomStatus) (int, error)
	IsRoomAvailable(ctx context.Context, roomID int64, checkIn, checkOut string) (bool, error)
	AvailableRooms(ctx context.Context, checkIn, checkOut string) ([]int64, error)
}

type serviceImpl struct {
	repo   repository.Room
	engine availability.Engine
	store  postgres.Store
	otel   otel.Otel
}

func New(repo repository.Room, engine availability.Engine, store postgres.Store, otel otel.Otel) Room {
	return &serviceImpl{
		repo:   repo,
		engine: engine,
		store:  store,
		otel:   otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.Struct(req); err != nil {
		log.Error().Err(err).Msg("invalid room request")

		return 0, err
	}

	room, err := req.ToModel()
	if err != nil {
		return 0, err
	}

	err = s.store.RunReadWrite(ctx, func(tx *sqlx.Tx) error {
		id, err = s.repo.Insert(ctx, tx, room)
		if err != nil {
			return fmt.Errorf("failed to create room: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("roomNumber", req.RoomNumber).Msg("failed to create room")

		return 0, err
	}

	log.Info().Int64("roomID", id).Str("roomNumber", req.RoomNumber).Msg("room created")

	return id, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.store.RunReadOnly(ctx, func(tx *sqlx.Tx) error {
		res, err = s.repo.Get(ctx, tx, gDto.FilterByID(id, model.FieldID, model.TableName))

		return err
	})
	if err != nil {
		if !failure.IsNotFound(err) {
			log.Error().Err(err).Int64("roomID", id).Msg("failed to get room")
		}

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res []model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if params.SortBy == "" {
		params.SortBy = model.FieldRoomNumber
	}

	params.Normalize()

	err = s.store.RunReadOnly(ctx, func(tx *sqlx.Tx) error {
		res, err = s.repo.GetAll(ctx, tx, params, gDto.FilterGroup{})

		return err
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) GetByFloor(ctx context.Context, floor int) ([]model.Room, error) {
	return s.getFiltered(ctx, s.eqFilter(model.FieldFloorNumber, floor))
}

func (s *serviceImpl) GetByStatus(ctx context.Context, status model.RoomStatus) ([]model.Room, error) {
	return s.getFiltered(ctx, s.eqFilter(model.FieldStatus, status))
}

func (s *serviceImpl) GetByRoomType(ctx context.Context, roomTypeID int64) ([]model.Room, error) {
	return s.getFiltered(ctx, s.eqFilter(model.FieldRoomTypeID, roomTypeID))
}

func (s *serviceImpl) eqFilter(field string, value any) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Table:    model.TableName,
				Value:    value,
				Operator: gDto.FilterOperatorEq,
			},
		},
	}
}

func (s *serviceImpl) getFiltered(ctx context.Context, filter gDto.FilterGroup) (res []model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.getFiltered")
	defer scope.End()
	defer scope.TraceIfError(err)

	// Predicate listings return every matching row; only paged browsing
	// through GetAll applies a limit.
	params := gDto.QueryParams{SortBy: model.FieldRoomNumber, SortDir: gDto.SortDirAsc}

	err = s.store.RunReadOnly(ctx, func(tx *sqlx.Tx) error {
		res, err = s.repo.GetAll(ctx, tx, params, filter)

		return err
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.IsEmpty() {
		return failure.Validation("update request cannot be empty")
	}

	if err = validator.Struct(req); err != nil {
		return err
	}

	fields := req.Fields()
	fields[constant.FieldUpdatedAt] = timezone.Now()

	return s.update(ctx, id, fields)
}

// UpdateStatus changes the physical room state, e.g. taking a room into
// maintenance.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id int64, status model.RoomStatus) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = model.ParseRoomStatus(string(status)); err != nil {
		return err
	}

	return s.update(ctx, id, map[string]any{
		model.FieldStatus:       status,
		constant.FieldUpdatedAt: timezone.Now(),
	})
}

func (s *serviceImpl) update(ctx context.Context, id int64, fields map[string]any) error {
	filter := gDto.FilterByID(id, model.FieldID, model.TableName)

	err := s.store.RunReadWrite(ctx, func(tx *sqlx.Tx) error {
		affected, err := s.repo.Update(ctx, tx, fields, filter)
		if err != nil {
			return fmt.Errorf("failed to update room: %w", err)
		}

		if affected == 0 {
			return failure.NotFound(model.EntityName)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int64("roomID", id).Msg("failed to update room")

		return err
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.store.RunReadWrite(ctx, func(tx *sqlx.Tx) error {
		affected, err := s.repo.Delete(ctx, tx, gDto.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			return fmt.Errorf("failed to delete room: %w", err)
		}

		if affected == 0 {
			return failure.NotFound(model.EntityName)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int64("roomID", id).Msg("failed to delete room")

		return err
	}

	return nil
}

func (s *serviceImpl) TotalRooms(ctx context.Context) (int, error) {
	return s.count(ctx, gDto.FilterGroup{})
}

func (s *serviceImpl) CountByStatus(ctx context.Context, status model.RoomStatus) (int, error) {
	return s.count(ctx, s.eqFilter(model.FieldStatus, status))
}

func (s *serviceImpl) count(ctx context.Context, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.count")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.store.RunReadOnly(ctx, func(tx *sqlx.Tx) error {
		res, err = s.repo.Count(ctx, tx, filter)

		return err
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return 0, fmt.Errorf("failed to count rooms: %w", err)
	}

	return res, nil
}

// IsRoomAvailable reports whether the room can take a stay on the half-open
// date range [checkIn, checkOut).
func (s *serviceImpl) IsRoomAvailable(ctx context.Context, roomID int64, checkIn, checkOut string) (free bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.IsRoomAvailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, end, err := s.parseRange(checkIn, checkOut)
	if err != nil {
		return false, err
	}

	err = s.store.RunReadOnly(ctx, func(tx *sqlx.Tx) error {
		exist, err := s.repo.Exist(ctx, tx, gDto.FilterByID(roomID, model.FieldID, model.TableName))
		if err != nil {
			return fmt.Errorf("failed to check if room exists: %w", err)
		}

		if !exist {
			return failure.NotFound(model.EntityName)
		}

		free, err = s.engine.IsRoomAvailable(ctx, tx, roomID, start, end)

		return err
	})
	if err != nil {
		if !failure.IsNotFound(err) {
			log.Error().Err(err).Int64("roomID", roomID).Msg("failed to check room availability")
		}

		return false, err
	}

	return free, nil
}

// AvailableRooms lists the ids of rooms open for the half-open date range
// [checkIn, checkOut). Result order is unspecified.
func (s *serviceImpl) AvailableRooms(ctx context.Context, checkIn, checkOut string) (ids []int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.AvailableRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, end, err := s.parseRange(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	err = s.store.RunReadOnly(ctx, func(tx *sqlx.Tx) error {
		ids, err = s.engine.AvailableRoomIDs(ctx, tx, start, end)

		return err
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to list available rooms")

		return nil, err
	}

	return ids, nil
}

func (s *serviceImpl) parseRange(checkIn, checkOut string) (time.Time, time.Time, error) {
	start, err := calendar.ParseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	end, err := calendar.ParseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if !start.Before(end) {
		return time.Time{}, time.Time{}, failure.Validation("check-in date must be before check-out date")
	}

	return start, end, nil
}
