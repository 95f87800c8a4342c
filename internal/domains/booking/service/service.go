package service

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/Satyam7Parsad/hotel-management-system/infras/otel"
	"github.com/Satyam7Parsad/hotel-management-system/infras/postgres"
	"github.com/Satyam7Parsad/hotel-management-system/internal/availability"
	"github.com/Satyam7Parsad/hotel-management-system/internal/domains/booking/model"
	"github.com/Satyam7Parsad/hotel-management-system/internal/domains/booking/model/dto"
	"github.com/Satyam7Parsad/hotel-management-system/internal/domains/booking/repository"
	roomModel "github.com/Satyam7Parsad/hotel-management-system/internal/domains/room/model"
	roomRepo "github.com/Satyam7Parsad/hotel-management-system/internal/domains/room/repository"
	"github.com/Satyam7Parsad/hotel-management-system/shared/constant"
	gDto "github.com/Satyam7Parsad/hotel-management-system/shared/dto"
	"github.com/Satyam7Parsad/hotel-management-system/shared/failure"
	"github.com/Satyam7Parsad/hotel-management-system/shared/timezone"
	"github.com/Satyam7Parsad/hotel-management-system/shared/validator"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (int64, error)
	Get(ctx context.Context, id int64) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams) ([]model.Booking, error)
	GetByGuest(ctx context.Context, guestID int64) ([]model.Booking, error)
	GetByRoom(ctx context.Context, roomID int64) ([]model.Booking, error)
	GetByStatus(ctx context.Context, status model.BookingStatus) ([]model.Booking, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id int64) error
	Delete(ctx context.Context, id int64) error
	Confirm(ctx context.Context, id int64) error
	CheckIn(ctx context.Context, id int64) error
	CheckOut(ctx context.Context, id int64) error
	Cancel(ctx context.Context, id int64) error
	ActiveCount(ctx context.Context) (int, error)
	TodayCheckIns(ctx context.Context) (int, error)
	TodayCheckOuts(ctx context.Context) (int, error)
}

type serviceImpl struct {
	repo     repository.Booking
	roomRepo roomRepo.Room
	engine   availability.Engine
	store    postgres.Store
	otel     otel.Otel
}

func New(repo repository.Booking, roomRepo roomRepo.Room, engine availability.Engine, store postgres.Store, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		engine:   engine,
		store:    store,
		otel:     otel,
	}
}

// Create validates the request before touching the store, then runs the
// availability check and the insert inside one read-write transaction so no
// competing booking can slip in between them.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.Struct(req); err != nil {
		log.Error().Err(err).Msg("invalid booking request")

		return 0, err
	}

	booking, err := req.ToModel()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return 0, err
	}

	err = s.store.RunReadWrite(ctx, func(tx *sqlx.Tx) error {
		roomExists, err := s.roomRepo.Exist(ctx, tx, gDto.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to check if room exists: %w", err)
		}

		if !roomExists {
			return failure.NotFound(roomModel.EntityName)
		}

		free, err := s.engine.IsRoomAvailable(ctx, tx, booking.RoomID, booking.CheckInDate, booking.CheckOutDate)
		if err != nil {
			return fmt.Errorf("failed to check room availability: %w", err)
		}

		if !free {
			return failure.Conflict("room is not available for the requested dates")
		}

		id, err = s.repo.Insert(ctx, tx, booking)
		if err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int64("roomID", booking.RoomID).Msg("failed to create booking")

		return 0, err
	}

	log.Info().Int64("bookingID", id).Int64("roomID", booking.RoomID).Msg("booking created")

	return id, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.store.RunReadOnly(ctx, func(tx *sqlx.Tx) error {
		res, err = s.repo.Get(ctx, tx, gDto.FilterByID(id, model.FieldID, model.TableName))

		return err
	})
	if err != nil {
		if !failure.IsNotFound(err) {
			log.Error().Err(err).Int64("bookingID", id).Msg("failed to get booking")
		}

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res []model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if params.SortBy == "" {
		params.SortBy = model.FieldCheckInDate
		params.SortDir = gDto.SortDirDesc
	}

	params.Normalize()

	err = s.store.RunReadOnly(ctx, func(tx *sqlx.Tx) error {
		res, err = s.repo.GetAll(ctx, tx, params, gDto.FilterGroup{})

		return err
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) GetByGuest(ctx context.Context, guestID int64) ([]model.Booking, error) {
	return s.getFiltered(ctx, gDto.FilterByID(guestID, model.FieldGuestID, model.TableName))
}

func (s *serviceImpl) GetByRoom(ctx context.Context, roomID int64) ([]model.Booking, error) {
	return s.getFiltered(ctx, gDto.FilterByID(roomID, model.FieldRoomID, model.TableName))
}

func (s *serviceImpl) GetByStatus(ctx context.Context, status model.BookingStatus) ([]model.Booking, error) {
	return s.getFiltered(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Table:    model.TableName,
				Value:    status,
				Operator: gDto.FilterOperatorEq,
			},
		},
	})
}

func (s *serviceImpl) getFiltered(ctx context.Context, filter gDto.FilterGroup) (res []model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.getFiltered")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{SortBy: model.FieldCheckInDate, SortDir: gDto.SortDirDesc}

	err = s.store.RunReadOnly(ctx, func(tx *sqlx.Tx) error {
		res, err = s.repo.GetAll(ctx, tx, params, filter)

		return err
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.IsEmpty() {
		return failure.Validation("update request cannot be empty")
	}

	if err = validator.Struct(req); err != nil {
		return err
	}

	filter := gDto.FilterByID(id, model.FieldID, model.TableName)

	err = s.store.RunReadWrite(ctx, func(tx *sqlx.Tx) error {
		exist, err := s.repo.Exist(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("failed to check if booking exists: %w", err)
		}

		if !exist {
			return failure.NotFound(model.EntityName)
		}

		fields := req.Fields()
		fields[constant.FieldUpdatedAt] = timezone.Now()

		if _, err := s.repo.Update(ctx, tx, fields, filter); err != nil {
			return fmt.Errorf("failed to update booking: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int64("bookingID", id).Msg("failed to update booking")

		return err
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.store.RunReadWrite(ctx, func(tx *sqlx.Tx) error {
		affected, err := s.repo.Delete(ctx, tx, gDto.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			return fmt.Errorf("failed to delete booking: %w", err)
		}

		if affected == 0 {
			return failure.NotFound(model.EntityName)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int64("bookingID", id).Msg("failed to delete booking")

		return err
	}

	return nil
}

// Confirm moves a pending booking to confirmed.
func (s *serviceImpl) Confirm(ctx context.Context, id int64) error {
	return s.transition(ctx, id, "Confirm", func(b *model.Booking) (map[string]any, error) {
		if err := b.Confirm(); err != nil {
			return nil, err
		}

		return map[string]any{model.FieldStatus: b.Status}, nil
	})
}

// CheckIn applies the lifecycle rule and persists the new status together
// with the actual check-in timestamp in one transaction.
func (s *serviceImpl) CheckIn(ctx context.Context, id int64) error {
	return s.transition(ctx, id, "CheckIn", func(b *model.Booking) (map[string]any, error) {
		if err := b.CheckIn(timezone.Now()); err != nil {
			return nil, err
		}

		return map[string]any{
			model.FieldStatus:        b.Status,
			model.FieldActualCheckIn: *b.ActualCheckIn,
		}, nil
	})
}

// CheckOut applies the lifecycle rule and persists the new status together
// with the actual check-out timestamp in one transaction.
func (s *serviceImpl) CheckOut(ctx context.Context, id int64) error {
	return s.transition(ctx, id, "CheckOut", func(b *model.Booking) (map[string]any, error) {
		if err := b.CheckOut(timezone.Now()); err != nil {
			return nil, err
		}

		return map[string]any{
			model.FieldStatus:         b.Status,
			model.FieldActualCheckOut: *b.ActualCheckOut,
		}, nil
	})
}

// Cancel releases the room from any non-terminal status.
func (s *serviceImpl) Cancel(ctx context.Context, id int64) error {
	return s.transition(ctx, id, "Cancel", func(b *model.Booking) (map[string]any, error) {
		if err := b.Cancel(); err != nil {
			return nil, err
		}

		return map[string]any{model.FieldStatus: b.Status}, nil
	})
}

// transition loads the booking, applies one lifecycle rule, and persists the
// resulting columns, all inside a single read-write transaction. A failed
// precondition rolls everything back, so no partial mutation is observable.
func (s *serviceImpl) transition(ctx context.Context, id int64, name string, apply func(*model.Booking) (map[string]any, error)) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking."+name)
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterByID(id, model.FieldID, model.TableName)

	err = s.store.RunReadWrite(ctx, func(tx *sqlx.Tx) error {
		booking, err := s.repo.Get(ctx, tx, filter)
		if err != nil {
			return err
		}

		fields, err := apply(&booking)
		if err != nil {
			return err
		}

		fields[constant.FieldUpdatedAt] = timezone.Now()

		if _, err := s.repo.Update(ctx, tx, fields, filter); err != nil {
			return fmt.Errorf("failed to persist booking transition: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int64("bookingID", id).Str("transition", name).Msg("booking transition failed")

		return err
	}

	log.Info().Int64("bookingID", id).Str("transition", name).Msg("booking transition applied")

	return nil
}

// ActiveCount counts bookings currently holding a room.
func (s *serviceImpl) ActiveCount(ctx context.Context) (int, error) {
	return s.count(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Table:    model.TableName,
				Value:    model.ActiveStatuses,
				Operator: gDto.FilterOperatorIn,
			},
		},
	})
}

// TodayCheckIns counts active bookings whose stay begins today.
func (s *serviceImpl) TodayCheckIns(ctx context.Context) (int, error) {
	return s.count(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCheckInDate,
				Table:    model.TableName,
				Value:    timezone.Today(),
				Operator: gDto.FilterOperatorEq,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Table:    model.TableName,
				Value:    model.ActiveStatuses,
				Operator: gDto.FilterOperatorIn,
			},
		},
	})
}

// TodayCheckOuts counts bookings whose stay ends today and that are either
// still in house or already checked out.
func (s *serviceImpl) TodayCheckOuts(ctx context.Context) (int, error) {
	return s.count(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCheckOutDate,
				Table:    model.TableName,
				Value:    timezone.Today(),
				Operator: gDto.FilterOperatorEq,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Table:    model.TableName,
				Value:    []model.BookingStatus{model.StatusCheckedIn, model.StatusCheckedOut},
				Operator: gDto.FilterOperatorIn,
			},
		},
	})
}

func (s *serviceImpl) count(ctx context.Context, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.count")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.store.RunReadOnly(ctx, func(tx *sqlx.Tx) error {
		res, err = s.repo.Count(ctx, tx, filter)

		return err
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	return res, nil
}
