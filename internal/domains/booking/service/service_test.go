package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"nomad/config"
	"nomad/infras/otel/mocks"
	bookingMocks "nomad/internal/domains/booking/mocks"
	"nomad/internal/domains/booking/model"
	"nomad/internal/domains/booking/model/dto"
	"nomad/internal/domains/booking/service"
	notificationMocks "nomad/internal/domains/notification/mocks"
	roomMocks "nomad/internal/domains/room/mocks"
	roomModel "nomad/internal/domains/room/model"
	tripMocks "nomad/internal/domains/triprequest/mocks"
	tripModel "nomad/internal/domains/triprequest/model"
	cacheMocks "nomad/shared/cache/mocks"
	"nomad/shared/constant"
	gDto "nomad/shared/dto"
	"nomad/shared/failure"
	"nomad/shared/timezone"
)

type fixture struct {
	svc          service.Booking
	repo         *bookingMocks.MockBooking
	rooms        *roomMocks.MockRoom
	trips        *tripMocks.MockTripRequest
	notification *notificationMocks.MockNotificationService
	cache        *cacheMocks.MockRedisCache
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		repo:         bookingMocks.NewMockBooking(ctrl),
		rooms:        roomMocks.NewMockRoom(ctrl),
		trips:        tripMocks.NewMockTripRequest(ctrl),
		notification: notificationMocks.NewMockNotificationService(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	f.svc = service.New(f.repo, f.rooms, f.trips, f.notification, cfg, f.cache, mocks.NewOtel())

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func date(days int) string {
	return timezone.Now().AddDate(0, 0, days).Format(time.DateOnly)
}

func availableRoom() roomModel.Room {
	return roomModel.Room{ID: "8d7f6a2e-4a7b-4b1e-9a39-1f0c5e7d2b10", AccommodationID: "acc-1", IsAvailable: true}
}

func TestBookingService_Create(t *testing.T) {
	tripID := "5b0a3f7c-2d4e-4c8a-8f1b-6e9d0c3a7b21"

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "books and notifies the travel admin",
			req:  dto.CreateBookingRequest{RoomID: availableRoom().ID, CheckIn: date(2), CheckOut: date(4)},
			setupMock: func(f fixture) {
				f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (bool, error) {
					where, args := filter.GetWhereClause()
					assert.Equal(t, "(bookings.room_id = :room_id AND bookings.check_in < :new_check_out AND bookings.check_out > :new_check_in)", where)
					assert.Contains(t, args, "new_check_in")

					return false, nil
				})
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				f.notification.EXPECT().NewBooking(gomock.Any(), gomock.Any(), "booker-1").Return(nil)
			},
		},
		{
			name: "with the booker's trip request",
			req:  dto.CreateBookingRequest{RoomID: availableRoom().ID, CheckIn: date(2), CheckOut: date(4), TripRequestID: &tripID},
			setupMock: func(f fixture) {
				f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)
				f.trips.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tripModel.TripRequest{ID: tripID, UserID: "booker-1"}, nil)
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b model.Booking) error {
					assert.Equal(t, tripID, *b.TripRequestID)

					return nil
				})
				f.notification.EXPECT().NewBooking(gomock.Any(), gomock.Any(), "booker-1").Return(errors.New("down"))
			},
		},
		{
			name: "someone else's trip request",
			req:  dto.CreateBookingRequest{RoomID: availableRoom().ID, CheckIn: date(2), CheckOut: date(4), TripRequestID: &tripID},
			setupMock: func(f fixture) {
				f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)
				f.trips.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tripModel.TripRequest{ID: tripID, UserID: "other"}, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:      "check-out before check-in",
			req:       dto.CreateBookingRequest{RoomID: availableRoom().ID, CheckIn: date(4), CheckOut: date(4)},
			setupMock: func(_ fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "check-in in the past",
			req:       dto.CreateBookingRequest{RoomID: availableRoom().ID, CheckIn: date(-2), CheckOut: date(4)},
			setupMock: func(_ fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unknown room",
			req:  dto.CreateBookingRequest{RoomID: availableRoom().ID, CheckIn: date(2), CheckOut: date(4)},
			setupMock: func(f fixture) {
				f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "unavailable room",
			req:  dto.CreateBookingRequest{RoomID: availableRoom().ID, CheckIn: date(2), CheckOut: date(4)},
			setupMock: func(f fixture) {
				room := availableRoom()
				room.IsAvailable = false
				f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "dates already booked",
			req:  dto.CreateBookingRequest{RoomID: availableRoom().ID, CheckIn: date(2), CheckOut: date(4)},
			setupMock: func(f fixture) {
				f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "overlapping booking committed after the check",
			req:  dto.CreateBookingRequest{RoomID: availableRoom().ID, CheckIn: date(2), CheckOut: date(4)},
			setupMock: func(f fixture) {
				f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("failed to insert data (booking): %w", &pq.Error{Code: constant.PqErrorCodeExclusion}))
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "insert fails",
			req:  dto.CreateBookingRequest{RoomID: availableRoom().ID, CheckIn: date(2), CheckOut: date(4)},
			setupMock: func(f fixture) {
				f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Create(context.Background(), tt.req, "booker-1")

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

func TestBookingService_Mine(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().CountDetail(gomock.Any(), gomock.Any()).Return(3, nil)
	f.repo.EXPECT().GetAllDetail(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.BookingDetail, error) {
			assert.Equal(t, "bookings.check_in", params.SortBy)

			where, _ := filter.GetWhereClause()
			assert.Equal(t, "(bookings.user_id = :user_id)", where)

			return []model.BookingDetail{{Booking: model.Booking{ID: "b-1"}, RoomName: "Ocean 12"}}, nil
		})

	res, err := f.svc.Mine(context.Background(), gDto.QueryParams{Page: 1, Limit: 2, SortBy: "check_in"}, "booker-1")

	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalPage)
	assert.Equal(t, "Ocean 12", res.Bookings[0].RoomName)
}

func TestBookingService_Get(t *testing.T) {
	detail := model.BookingDetail{
		Booking:       model.Booking{ID: "b-1", UserID: "booker-1"},
		TravelAdminID: "admin-1",
	}

	tests := []struct {
		name     string
		userID   string
		wantCode int
	}{
		{name: "booker", userID: "booker-1"},
		{name: "travel admin", userID: "admin-1"},
		{name: "someone else", userID: "stranger", wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.cache.EXPECT().Get(gomock.Any(), "booking:get:b-1", gomock.Any()).Return(errors.New("miss"))
			f.repo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(detail, nil)

			res, err := f.svc.Get(context.Background(), "b-1", tt.userID)
			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "b-1", res.ID)
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "booker cancels",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{ID: "b-1", UserID: "booker-1"}, nil)
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "not the booker",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{ID: "b-1", UserID: "other"}, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "missing",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.Cancel(context.Background(), "b-1", "booker-1")
			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
		})
	}
}
