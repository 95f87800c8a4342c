// Package availability decides room free/busy for a requested stay. A stay
// occupies the half-open interval [checkIn, checkOut), so a checkout date
// equal to another booking's check-in date is not a conflict and same-day
// turnover is legal.
package availability

//go:generate go run go.uber.org/mock/mockgen -source=./engine.go -destination=./mocks/engine_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Satyam7Parsad/hotel-management-system/infras/otel"
	"github.com/Satyam7Parsad/hotel-management-system/shared/constant"
	"github.com/Satyam7Parsad/hotel-management-system/shared/logger"
)

// Overlaps reports whether two half-open intervals [aStart,aEnd) and
// [bStart,bEnd) conflict: aStart < bEnd AND bStart < aEnd.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// Engine runs availability queries inside the caller's transaction so a
// check can share one transaction with the insert that depends on it.
// Callers must validate start < end before asking; the engine does not
// re-derive it.
type Engine interface {
	IsRoomAvailable(ctx context.Context, tx *sqlx.Tx, roomID int64, start, end time.Time) (bool, error)
	AvailableRoomIDs(ctx context.Context, tx *sqlx.Tx, start, end time.Time) ([]int64, error)
}

type engineImpl struct {
	otel otel.Otel
}

func New(otl otel.Otel) Engine {
	return &engineImpl{
		otel: otl,
	}
}

// Bookings in these statuses hold their room; cancelled and checked-out
// bookings never conflict.
const conflictQuery = `SELECT EXISTS(
	SELECT 1 FROM bookings
	WHERE room_id = :room_id
	AND status NOT IN ('cancelled', 'checked_out')
	AND check_in_date < :check_out
	AND :check_in < check_out_date
)`

func (e *engineImpl) IsRoomAvailable(ctx context.Context, tx *sqlx.Tx, roomID int64, start, end time.Time) (bool, error) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.IsRoomAvailable")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, conflictQuery)

	prepare, err := tx.PrepareNamedContext(ctx, conflictQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to prepare availability query: %w", err)
	}
	defer prepare.Close()

	var conflict bool

	args := map[string]any{
		"room_id":   roomID,
		"check_in":  start,
		"check_out": end,
	}
	if err := prepare.GetContext(ctx, &conflict, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check room availability: %w", err)
	}

	return !conflict, nil
}

const availableRoomsQuery = `SELECT r.id FROM rooms r
	WHERE r.status = 'available'
	AND NOT EXISTS (
		SELECT 1 FROM bookings b
		WHERE b.room_id = r.id
		AND b.status NOT IN ('cancelled', 'checked_out')
		AND b.check_in_date < :check_out
		AND :check_in < b.check_out_date
	)`

// AvailableRoomIDs returns the rooms open for [start,end). Result order is
// whatever the planner produced; treat it as a set.
func (e *engineImpl) AvailableRoomIDs(ctx context.Context, tx *sqlx.Tx, start, end time.Time) ([]int64, error) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.AvailableRoomIDs")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, availableRoomsQuery)

	prepare, err := tx.PrepareNamedContext(ctx, availableRoomsQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare available rooms query: %w", err)
	}
	defer prepare.Close()

	var ids []int64

	args := map[string]any{
		"check_in":  start,
		"check_out": end,
	}
	if err := prepare.SelectContext(ctx, &ids, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list available rooms: %w", err)
	}

	return ids, nil
}
