package postgres

//go:generate go run go.uber.org/mock/mockgen -source=./store.go -destination=./mocks/store_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/Satyam7Parsad/hotel-management-system/infras/otel"
	"github.com/Satyam7Parsad/hotel-management-system/shared/constant"
	"github.com/Satyam7Parsad/hotel-management-system/shared/failure"
)

// TxFunc runs inside an open transaction. Returning a non-nil error rolls
// the transaction back and propagates the error to the caller.
type TxFunc func(tx *sqlx.Tx) error

// Store serializes all access to the single database connection. A
// transaction either fully commits or has no observable effect, and at most
// one transaction is in flight system-wide.
type Store interface {
	RunReadWrite(ctx context.Context, fn TxFunc) error
	RunReadOnly(ctx context.Context, fn TxFunc) error
	Ping(ctx context.Context) error
}

type storeImpl struct {
	mu   sync.Mutex
	db   *sqlx.DB
	otel otel.Otel
}

func NewStore(db *sqlx.DB, otl otel.Otel) Store {
	return &storeImpl{
		db:   db,
		otel: otl,
	}
}

func (s *storeImpl) RunReadWrite(ctx context.Context, fn TxFunc) error {
	return s.run(ctx, fn, false)
}

func (s *storeImpl) RunReadOnly(ctx context.Context, fn TxFunc) error {
	return s.run(ctx, fn, true)
}

// run holds the exclusive lock for the whole transaction. Concurrent
// callers block until the lock is free; there is no timeout.
func (s *storeImpl) run(ctx context.Context, fn TxFunc, readOnly bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".run")
	defer scope.End()

	txID := uuid.NewString()
	scope.SetAttribute(constant.OtelTxAttributeKey, txID)

	tx, err := s.db.BeginTxx(ctx, &sql.TxOptions{ReadOnly: readOnly})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("txID", txID).Msg("failed to begin transaction")

		return failure.Connection(err)
	}

	if err := fn(tx); err != nil {
		scope.TraceError(err)

		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Error().Err(rbErr).Str("txID", txID).Msg("rollback failed")

			return failure.Transaction("rollback failed: "+rbErr.Error(), err)
		}

		log.Debug().Err(err).Str("txID", txID).Bool("readOnly", readOnly).Msg("transaction rolled back")

		return MapError(err)
	}

	if err := tx.Commit(); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("txID", txID).Msg("commit failed")

		return failure.Transaction("commit failed: "+err.Error(), err)
	}

	return nil
}

func (s *storeImpl) Ping(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var one int
	if err := s.db.GetContext(ctx, &one, "SELECT 1"); err != nil {
		return failure.Connection(err)
	}

	return nil
}

// MapError classifies a driver error into the store's failure taxonomy.
// Errors that already carry a failure kind pass through untouched.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	var fail *failure.Failure
	if errors.As(err, &fail) {
		return err
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case constant.PqErrorCodeUniqueViolation,
			constant.PqErrorCodeFkViolation,
			constant.PqErrorCodeExclusionViolation,
			constant.PqErrorCodeCheckViolation:
			return failure.Constraint(err)
		}
	}

	if errors.Is(err, driver.ErrBadConn) {
		return failure.Connection(err)
	}

	return err
}
