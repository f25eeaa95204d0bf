package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"nomad/config"
	"nomad/infras/otel/mocks"
	accommodationMocks "nomad/internal/domains/accommodation/mocks"
	accommodationModel "nomad/internal/domains/accommodation/model"
	roomMocks "nomad/internal/domains/room/mocks"
	"nomad/internal/domains/room/model"
	"nomad/internal/domains/room/model/dto"
	"nomad/internal/domains/room/service"
	cacheMocks "nomad/shared/cache/mocks"
	gDto "nomad/shared/dto"
	"nomad/shared/failure"
)

type fixture struct {
	svc            service.Room
	repo           *roomMocks.MockRoom
	accommodations *accommodationMocks.MockAccommodation
	cache          *cacheMocks.MockRedisCache
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		repo:           roomMocks.NewMockRoom(ctrl),
		accommodations: accommodationMocks.NewMockAccommodation(ctrl),
		cache:          cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	f.svc = service.New(f.repo, f.accommodations, cfg, f.cache, mocks.NewOtel())

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func ownedBy(userID string) accommodationModel.Accommodation {
	return accommodationModel.Accommodation{ID: "acc-1", UserID: userID}
}

func TestRoomService_Create(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "owner adds a room",
			setupMock: func(f fixture) {
				f.accommodations.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ownedBy("admin-1"), nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, room model.Room) error {
					assert.Equal(t, "acc-1", room.AccommodationID)
					assert.True(t, room.IsAvailable)

					return nil
				})
			},
		},
		{
			name: "another admin",
			setupMock: func(f fixture) {
				f.accommodations.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ownedBy("admin-2"), nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "missing accommodation",
			setupMock: func(f fixture) {
				f.accommodations.EXPECT().Get(gomock.Any(), gomock.Any()).Return(accommodationModel.Accommodation{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			req := dto.CreateRoomRequest{Name: "Ocean 12", RoomType: "double", Cost: 120}
			res, err := f.svc.Create(context.Background(), req, "acc-1", "admin-1")
			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, res.ID)
		})
	}
}

func TestRoomService_GetAll(t *testing.T) {
	t.Run("rooms of an accommodation", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).Times(2)
		f.accommodations.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Room, error) {
				where, args := filter.GetWhereClause()
				assert.Equal(t, "(rooms.accommodation_id = :accommodation_id)", where)
				assert.Equal(t, "acc-1", args["accommodation_id"])

				return []model.Room{{ID: "room-1", Name: "Ocean 12", Cost: 120}}, nil
			})

		res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, "acc-1")
		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		require.Len(t, res.Rooms, 1)
		assert.InDelta(t, 120.0, res.Rooms[0].Cost, 0.001)
	})

	t.Run("unknown accommodation", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		f.accommodations.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, "acc-1")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRoomService_Update(t *testing.T) {
	unavailable := false

	t.Run("owner marks a room unavailable", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: "room-1", AccommodationID: "acc-1", IsAvailable: true}, nil)
		f.accommodations.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ownedBy("admin-1"), nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, false, req[model.FieldIsAvailable])

			return nil
		})

		err := f.svc.Update(context.Background(), dto.UpdateRoomRequest{IsAvailable: &unavailable}, "room-1", "admin-1")
		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
	})

	t.Run("empty request", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.Update(context.Background(), dto.UpdateRoomRequest{}, "room-1", "admin-1")

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("missing room", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

		err := f.svc.Update(context.Background(), dto.UpdateRoomRequest{IsAvailable: &unavailable}, "room-1", "admin-1")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
