package postgres_test

import (
	"context"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/Satyam7Parsad/hotel-management-system/infras/otel/mocks"
	"github.com/Satyam7Parsad/hotel-management-system/infras/postgres"
	"github.com/Satyam7Parsad/hotel-management-system/shared/failure"
)

func newMockStore(t *testing.T) (postgres.Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return postgres.NewStore(sqlx.NewDb(db, "sqlmock"), mocks.NewOtel()), mock
}

func TestStoreRun(t *testing.T) {
	t.Run("commits when the function succeeds", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectBegin()
		mock.ExpectCommit()

		err := store.RunReadWrite(context.Background(), func(tx *sqlx.Tx) error {
			return nil
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when the function fails", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectBegin()
		mock.ExpectRollback()

		boom := errors.New("insert failed")
		err := store.RunReadWrite(context.Background(), func(tx *sqlx.Tx) error {
			return boom
		})

		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("commit failure maps to a transaction failure", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(errors.New("connection reset"))

		err := store.RunReadWrite(context.Background(), func(tx *sqlx.Tx) error {
			return nil
		})

		assert.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindTransaction))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin failure maps to a connection failure", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectBegin().WillReturnError(errors.New("server closed"))

		err := store.RunReadOnly(context.Background(), func(tx *sqlx.Tx) error {
			t.Fatal("function must not run without a transaction")

			return nil
		})

		assert.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindConnection))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind failure.Kind
	}{
		{
			name: "unique violation",
			err:  &pq.Error{Code: "23505", Message: "duplicate key value"},
			kind: failure.KindConstraint,
		},
		{
			name: "exclusion violation from the non-overlap constraint",
			err:  &pq.Error{Code: "23P01", Message: "conflicting key value violates exclusion constraint"},
			kind: failure.KindConstraint,
		},
		{
			name: "foreign key violation",
			err:  &pq.Error{Code: "23503", Message: "violates foreign key constraint"},
			kind: failure.KindConstraint,
		},
		{
			name: "plain driver error passes through unclassified",
			err:  errors.New("syntax error"),
			kind: failure.KindUnknown,
		},
		{
			name: "existing failure kind preserved",
			err:  failure.NotFound("booking"),
			kind: failure.KindNotFound,
		},
		{
			name: "illegal transition preserved",
			err:  failure.IllegalTransition("cannot check out from confirmed"),
			kind: failure.KindIllegalTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := postgres.MapError(tt.err)
			assert.Equal(t, tt.kind, failure.KindOf(mapped))
		})
	}
}

func TestMapError_Nil(t *testing.T) {
	assert.NoError(t, postgres.MapError(nil))
}
