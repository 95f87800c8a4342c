package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Satyam7Parsad/hotel-management-system/infras/otel/mocks"
	"github.com/Satyam7Parsad/hotel-management-system/infras/postgres"
	storeMocks "github.com/Satyam7Parsad/hotel-management-system/infras/postgres/mocks"
	engineMocks "github.com/Satyam7Parsad/hotel-management-system/internal/availability/mocks"
	roomMocks "github.com/Satyam7Parsad/hotel-management-system/internal/domains/room/mocks"
	"github.com/Satyam7Parsad/hotel-management-system/internal/domains/room/model"
	"github.com/Satyam7Parsad/hotel-management-system/internal/domains/room/model/dto"
	"github.com/Satyam7Parsad/hotel-management-system/internal/domains/room/service"
	gDto "github.com/Satyam7Parsad/hotel-management-system/shared/dto"
	"github.com/Satyam7Parsad/hotel-management-system/shared/failure"
)

type roomFixture struct {
	repo   *roomMocks.MockRoom
	engine *engineMocks.MockEngine
	store  *storeMocks.MockStore
	svc    service.Room
}

func newRoomFixture(ctrl *gomock.Controller) *roomFixture {
	f := &roomFixture{
		repo:   roomMocks.NewMockRoom(ctrl),
		engine: engineMocks.NewMockEngine(ctrl),
		store:  storeMocks.NewMockStore(ctrl),
	}
	f.svc = service.New(f.repo, f.engine, f.store, mocks.NewOtel())

	return f
}

func (f *roomFixture) expectReadWrite() {
	f.store.EXPECT().
		RunReadWrite(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn postgres.TxFunc) error {
			return fn(&sqlx.Tx{})
		})
}

func (f *roomFixture) expectReadOnly() {
	f.store.EXPECT().
		RunReadOnly(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn postgres.TxFunc) error {
			return fn(&sqlx.Tx{})
		})
}

func TestRoomService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateRoomRequest
		setupMock func(f *roomFixture)
		wantID    int64
		wantErr   bool
	}{
		{
			name: "successful create",
			req:  dto.CreateRoomRequest{RoomNumber: "101A", RoomTypeID: 2, FloorNumber: 1},
			setupMock: func(f *roomFixture) {
				f.expectReadWrite()

				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, room model.Room) (int64, error) {
						assert.Equal(t, model.StatusAvailable, room.Status)

						return 9, nil
					})
			},
			wantID: 9,
		},
		{
			name:      "room number with symbols is rejected",
			req:       dto.CreateRoomRequest{RoomNumber: "101-A", RoomTypeID: 2, FloorNumber: 1},
			setupMock: func(f *roomFixture) {},
			wantErr:   true,
		},
		{
			name:      "zero floor is rejected",
			req:       dto.CreateRoomRequest{RoomNumber: "101A", RoomTypeID: 2},
			setupMock: func(f *roomFixture) {},
			wantErr:   true,
		},
		{
			name:      "unknown status is rejected",
			req:       dto.CreateRoomRequest{RoomNumber: "101A", RoomTypeID: 2, FloorNumber: 1, Status: "broken"},
			setupMock: func(f *roomFixture) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newRoomFixture(ctrl)
			tt.setupMock(f)

			id, err := f.svc.Create(context.Background(), tt.req)

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

func TestRoomService_UpdateStatus(t *testing.T) {
	t.Run("valid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newRoomFixture(ctrl)
		f.expectReadWrite()

		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) (int64, error) {
				assert.Equal(t, model.StatusMaintenance, fields[model.FieldStatus])

				return 1, nil
			})

		err := f.svc.UpdateStatus(context.Background(), 4, model.StatusMaintenance)

		assert.NoError(t, err)
	})

	t.Run("unknown status fails before the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newRoomFixture(ctrl)

		err := f.svc.UpdateStatus(context.Background(), 4, model.RoomStatus("exploded"))

		assert.Error(t, err)
		assert.True(t, failure.IsValidation(err))
	})

	t.Run("missing room", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newRoomFixture(ctrl)
		f.expectReadWrite()

		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), nil)

		err := f.svc.UpdateStatus(context.Background(), 404, model.StatusOccupied)

		assert.Error(t, err)
		assert.True(t, failure.IsNotFound(err))
	})
}

func TestRoomService_GetByFloor(t *testing.T) {
	t.Run("returns every room on the floor without a page limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newRoomFixture(ctrl)
		f.expectReadOnly()

		want := []model.Room{{ID: 1, RoomNumber: "101"}, {ID: 2, RoomNumber: "102"}}

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Room, error) {
				assert.Zero(t, params.Limit)
				assert.Zero(t, params.Page)
				assert.Equal(t, model.FieldRoomNumber, params.SortBy)
				assert.Len(t, filter.Filters, 1)
				assert.Equal(t, model.FieldFloorNumber, filter.Filters[0].(gDto.Filter).Field)

				return want, nil
			})

		got, err := f.svc.GetByFloor(context.Background(), 1)

		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestRoomService_IsRoomAvailable(t *testing.T) {
	tests := []struct {
		name      string
		checkIn   string
		checkOut  string
		setupMock func(f *roomFixture)
		want      bool
		wantErr   bool
	}{
		{
			name:     "free room",
			checkIn:  "2026-09-10",
			checkOut: "2026-09-12",
			setupMock: func(f *roomFixture) {
				f.expectReadOnly()

				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.engine.EXPECT().
					IsRoomAvailable(gomock.Any(), gomock.Any(), int64(3), gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			want: true,
		},
		{
			name:     "occupied room",
			checkIn:  "2026-09-10",
			checkOut: "2026-09-12",
			setupMock: func(f *roomFixture) {
				f.expectReadOnly()

				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.engine.EXPECT().
					IsRoomAvailable(gomock.Any(), gomock.Any(), int64(3), gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			want: false,
		},
		{
			name:      "inverted range fails before the store",
			checkIn:   "2026-09-12",
			checkOut:  "2026-09-10",
			setupMock: func(f *roomFixture) {},
			wantErr:   true,
		},
		{
			name:      "equal dates fail before the store",
			checkIn:   "2026-09-10",
			checkOut:  "2026-09-10",
			setupMock: func(f *roomFixture) {},
			wantErr:   true,
		},
		{
			name:     "missing room",
			checkIn:  "2026-09-10",
			checkOut: "2026-09-12",
			setupMock: func(f *roomFixture) {
				f.expectReadOnly()

				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newRoomFixture(ctrl)
			tt.setupMock(f)

			got, err := f.svc.IsRoomAvailable(context.Background(), 3, tt.checkIn, tt.checkOut)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoomService_AvailableRooms(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newRoomFixture(ctrl)
	f.expectReadOnly()

	f.engine.EXPECT().
		AvailableRoomIDs(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, start, end time.Time) ([]int64, error) {
			assert.True(t, start.Before(end))

			return []int64{3, 1, 7}, nil
		})

	ids, err := f.svc.AvailableRooms(context.Background(), "2026-09-10", "2026-09-12")

	assert.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 3, 7}, ids)
}

func TestRoomService_Counts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newRoomFixture(ctrl)
	f.expectReadOnly()

	f.repo.EXPECT().
		Count(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(12, nil)

	total, err := f.svc.TotalRooms(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 12, total)
}
