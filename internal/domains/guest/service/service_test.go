package service_test

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Satyam7Parsad/hotel-management-system/infras/otel/mocks"
	"github.com/Satyam7Parsad/hotel-management-system/infras/postgres"
	storeMocks "github.com/Satyam7Parsad/hotel-management-system/infras/postgres/mocks"
	guestMocks "github.com/Satyam7Parsad/hotel-management-system/internal/domains/guest/mocks"
	"github.com/Satyam7Parsad/hotel-management-system/internal/domains/guest/model"
	"github.com/Satyam7Parsad/hotel-management-system/internal/domains/guest/model/dto"
	"github.com/Satyam7Parsad/hotel-management-system/internal/domains/guest/service"
	gDto "github.com/Satyam7Parsad/hotel-management-system/shared/dto"
	"github.com/Satyam7Parsad/hotel-management-system/shared/failure"
)

type guestFixture struct {
	repo  *guestMocks.MockGuest
	store *storeMocks.MockStore
	svc   service.Guest
}

func newGuestFixture(ctrl *gomock.Controller) *guestFixture {
	f := &guestFixture{
		repo:  guestMocks.NewMockGuest(ctrl),
		store: storeMocks.NewMockStore(ctrl),
	}
	f.svc = service.New(f.repo, f.store, mocks.NewOtel())

	return f
}

func (f *guestFixture) expectReadWrite() {
	f.store.EXPECT().
		RunReadWrite(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn postgres.TxFunc) error {
			return fn(&sqlx.Tx{})
		})
}

func (f *guestFixture) expectReadOnly() {
	f.store.EXPECT().
		RunReadOnly(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn postgres.TxFunc) error {
			return fn(&sqlx.Tx{})
		})
}

func validGuestRequest() dto.CreateGuestRequest {
	return dto.CreateGuestRequest{
		FirstName: "Ana",
		LastName:  "Silva",
		Email:     "ana.silva@example.com",
		Phone:     "+628123456789",
		IDType:    "passport",
		IDNumber:  "X1234567",
	}
}

func TestGuestService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       func() dto.CreateGuestRequest
		setupMock func(f *guestFixture)
		wantID    int64
		wantErr   bool
	}{
		{
			name: "successful create",
			req:  validGuestRequest,
			setupMock: func(f *guestFixture) {
				f.expectReadWrite()

				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(21), nil)
			},
			wantID: 21,
		},
		{
			name: "missing phone is rejected",
			req: func() dto.CreateGuestRequest {
				req := validGuestRequest()
				req.Phone = ""

				return req
			},
			setupMock: func(f *guestFixture) {},
			wantErr:   true,
		},
		{
			name: "unknown id type is rejected",
			req: func() dto.CreateGuestRequest {
				req := validGuestRequest()
				req.IDType = "library_card"

				return req
			},
			setupMock: func(f *guestFixture) {},
			wantErr:   true,
		},
		{
			name: "bad email is rejected",
			req: func() dto.CreateGuestRequest {
				req := validGuestRequest()
				req.Email = "not-an-email"

				return req
			},
			setupMock: func(f *guestFixture) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newGuestFixture(ctrl)
			tt.setupMock(f)

			id, err := f.svc.Create(context.Background(), tt.req())

			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, failure.IsValidation(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestGuestService_SearchByName(t *testing.T) {
	t.Run("matches either name part", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newGuestFixture(ctrl)
		f.expectReadOnly()

		want := []model.Guest{{ID: 1, FirstName: "Ana", LastName: "Silva"}}

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(want, nil)

		got, err := f.svc.SearchByName(context.Background(), "sil")

		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("returns every match without a page limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newGuestFixture(ctrl)
		f.expectReadOnly()

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Guest, error) {
				assert.Zero(t, params.Limit)
				assert.Zero(t, params.Page)
				assert.Equal(t, model.FieldLastName, params.SortBy)

				return []model.Guest{}, nil
			})

		_, err := f.svc.SearchByName(context.Background(), "sil")

		assert.NoError(t, err)
	})

	t.Run("empty term is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newGuestFixture(ctrl)

		_, err := f.svc.SearchByName(context.Background(), "")

		assert.Error(t, err)
		assert.True(t, failure.IsValidation(err))
	})
}

func TestGuestService_Update(t *testing.T) {
	t.Run("empty update is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newGuestFixture(ctrl)

		err := f.svc.Update(context.Background(), dto.UpdateGuestRequest{}, 1)

		assert.Error(t, err)
		assert.True(t, failure.IsValidation(err))
	})

	t.Run("missing guest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newGuestFixture(ctrl)
		f.expectReadWrite()

		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), nil)

		vip := true
		err := f.svc.Update(context.Background(), dto.UpdateGuestRequest{VIPStatus: &vip}, 404)

		assert.Error(t, err)
		assert.True(t, failure.IsNotFound(err))
	})
}

func TestGuestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newGuestFixture(ctrl)
	f.expectReadWrite()

	f.repo.EXPECT().
		Delete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(int64(1), nil)

	err := f.svc.Delete(context.Background(), 21)

	assert.NoError(t, err)
}
