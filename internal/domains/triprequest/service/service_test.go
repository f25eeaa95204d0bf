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

	"nomad/infras/otel/mocks"
	accommodationMocks "nomad/internal/domains/accommodation/mocks"
	cityMocks "nomad/internal/domains/city/mocks"
	notificationMocks "nomad/internal/domains/notification/mocks"
	profileMocks "nomad/internal/domains/profile/mocks"
	profileModel "nomad/internal/domains/profile/model"
	tripMocks "nomad/internal/domains/triprequest/mocks"
	"nomad/internal/domains/triprequest/model"
	"nomad/internal/domains/triprequest/model/dto"
	"nomad/internal/domains/triprequest/service"
	"nomad/shared/constant"
	gDto "nomad/shared/dto"
	"nomad/shared/failure"
	"nomad/shared/timezone"
)

type fixture struct {
	svc            service.TripRequest
	repo           *tripMocks.MockTripRequest
	profiles       *profileMocks.MockProfile
	accommodations *accommodationMocks.MockAccommodation
	cities         *cityMocks.MockCityService
	notification   *notificationMocks.MockNotificationService
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		repo:           tripMocks.NewMockTripRequest(ctrl),
		profiles:       profileMocks.NewMockProfile(ctrl),
		accommodations: accommodationMocks.NewMockAccommodation(ctrl),
		cities:         cityMocks.NewMockCityService(ctrl),
		notification:   notificationMocks.NewMockNotificationService(ctrl),
	}

	f.svc = service.New(f.repo, f.profiles, f.accommodations, f.cities, f.notification, mocks.NewOtel())

	return f
}

func ptr[T any](v T) *T {
	return &v
}

func date(days int) string {
	return timezone.Now().AddDate(0, 0, days).Format(time.DateOnly)
}

func validCreate() dto.CreateTripRequest {
	return dto.CreateTripRequest{
		OriginID:      1,
		DestinationID: 2,
		DepartureDate: date(3),
		ReturnDate:    ptr(date(7)),
		Reason:        "client workshop",
	}
}

func pendingDetail() model.TripRequestDetail {
	return model.TripRequestDetail{
		TripRequest: model.TripRequest{
			ID:       "trip-1",
			UserID:   "owner-1",
			StatusID: constant.StatusIDPending,
		},
		Status:    "Pending",
		ManagerID: ptr("manager-1"),
	}
}

func TestTripRequestService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       func() dto.CreateTripRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "creates and notifies the manager",
			req:  validCreate,
			setupMock: func(f fixture) {
				f.cities.EXPECT().Exist(gomock.Any(), 1, 2).Return(true, nil)
				f.profiles.EXPECT().Get(gomock.Any(), gomock.Any()).Return(profileModel.Profile{ID: "p-1", ManagerID: ptr("manager-1")}, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, trip model.TripRequest) error {
					assert.Equal(t, constant.StatusIDPending, trip.StatusID)
					assert.Equal(t, "owner-1", trip.UserID)

					return nil
				})
				f.notification.EXPECT().NewTripRequest(gomock.Any(), gomock.Any(), "owner-1").Return(nil)
			},
		},
		{
			name: "notification failure does not fail the request",
			req:  validCreate,
			setupMock: func(f fixture) {
				f.cities.EXPECT().Exist(gomock.Any(), 1, 2).Return(true, nil)
				f.profiles.EXPECT().Get(gomock.Any(), gomock.Any()).Return(profileModel.Profile{ID: "p-1", ManagerID: ptr("manager-1")}, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				f.notification.EXPECT().NewTripRequest(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
			},
		},
		{
			name: "departure in the past",
			req: func() dto.CreateTripRequest {
				req := validCreate()
				req.DepartureDate = date(-1)

				return req
			},
			setupMock: func(_ fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "return before departure",
			req: func() dto.CreateTripRequest {
				req := validCreate()
				req.ReturnDate = ptr(date(1))

				return req
			},
			setupMock: func(_ fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unknown city",
			req:  validCreate,
			setupMock: func(f fixture) {
				f.cities.EXPECT().Exist(gomock.Any(), 1, 2).Return(false, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown accommodation",
			req: func() dto.CreateTripRequest {
				req := validCreate()
				req.AccommodationID = ptr("acc-1")

				return req
			},
			setupMock: func(f fixture) {
				f.cities.EXPECT().Exist(gomock.Any(), 1, 2).Return(true, nil)
				f.accommodations.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "requester without line manager",
			req:  validCreate,
			setupMock: func(f fixture) {
				f.cities.EXPECT().Exist(gomock.Any(), 1, 2).Return(true, nil)
				f.profiles.EXPECT().Get(gomock.Any(), gomock.Any()).Return(profileModel.Profile{ID: "p-1"}, nil)
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Create(context.Background(), tt.req(), "owner-1")

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

func TestTripRequestService_Get(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		detail   model.TripRequestDetail
		wantCode int
	}{
		{name: "owner", userID: "owner-1", detail: pendingDetail()},
		{name: "line manager", userID: "manager-1", detail: pendingDetail()},
		{name: "someone else", userID: "stranger", detail: pendingDetail(), wantCode: http.StatusForbidden},
		{name: "missing", userID: "owner-1", detail: model.TripRequestDetail{}, wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.repo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(tt.detail, nil)

			res, err := f.svc.Get(context.Background(), "trip-1", tt.userID)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "trip-1", res.ID)
			assert.Equal(t, "Pending", res.Status)
		})
	}
}

func TestTripRequestService_Reports(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().CountDetail(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
		where, args := filter.GetWhereClause()
		assert.Equal(t, "(user_profiles.manager_id = :manager_id)", where)
		assert.Equal(t, "manager-1", args["manager_id"])

		return 11, nil
	})
	f.repo.EXPECT().GetAllDetail(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup) ([]model.TripRequestDetail, error) {
			assert.Equal(t, "trip_requests.created_at", params.SortBy)

			return []model.TripRequestDetail{pendingDetail()}, nil
		})

	res, err := f.svc.Reports(context.Background(), gDto.QueryParams{Page: 1, Limit: 10, SortBy: "password"}, "manager-1")

	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.TripRequests, 1)
}

func TestTripRequestService_Update(t *testing.T) {
	stored := model.TripRequest{
		ID:            "trip-1",
		UserID:        "owner-1",
		StatusID:      constant.StatusIDPending,
		OriginID:      1,
		DestinationID: 2,
		DepartureDate: timezone.Now().AddDate(0, 0, 5),
	}

	tests := []struct {
		name      string
		req       dto.UpdateTripRequest
		userID    string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name:   "owner edits a pending request",
			req:    dto.UpdateTripRequest{Reason: ptr("conference"), DestinationID: ptr(3)},
			userID: "owner-1",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
				f.cities.EXPECT().Exist(gomock.Any(), 1, 3).Return(true, nil)
				f.repo.EXPECT().UpdateAffected(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req map[string]any, _ gDto.FilterGroup) (int64, error) {
					assert.Equal(t, "conference", req[model.FieldReason])
					assert.Equal(t, 3, req[model.FieldDestinationID])
					assert.NotContains(t, req, model.FieldOriginID)

					return 1, nil
				})
				f.notification.EXPECT().EditedTrip(gomock.Any(), "trip-1", "owner-1").Return(nil)
			},
		},
		{
			name:      "empty request",
			userID:    "owner-1",
			setupMock: func(_ fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "not the owner",
			req:    dto.UpdateTripRequest{Reason: ptr("conference")},
			userID: "manager-1",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:   "already approved",
			req:    dto.UpdateTripRequest{Reason: ptr("conference")},
			userID: "owner-1",
			setupMock: func(f fixture) {
				approved := stored
				approved.StatusID = constant.StatusIDApproved
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(approved, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "approved while the edit was in flight",
			req:    dto.UpdateTripRequest{Reason: ptr("conference")},
			userID: "owner-1",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
				f.repo.EXPECT().UpdateAffected(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "destination equals origin",
			req:    dto.UpdateTripRequest{DestinationID: ptr(1)},
			userID: "owner-1",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "missing",
			req:    dto.UpdateTripRequest{Reason: ptr("conference")},
			userID: "owner-1",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.TripRequest{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.Update(context.Background(), tt.req, "trip-1", tt.userID)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestTripRequestService_Review(t *testing.T) {
	t.Run("manager approves", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(pendingDetail(), nil)
		f.repo.EXPECT().UpdateAffected(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error) {
			assert.Equal(t, constant.StatusIDApproved, req[model.FieldStatusID])
			assert.Equal(t, "manager-1", req[constant.FieldModifiedBy])

			where, args := filter.GetWhereClause()
			assert.Equal(t, "(trip_requests.id = :id AND trip_requests.status_id = :current_status_id)", where)
			assert.Equal(t, constant.StatusIDPending, args["current_status_id"])

			return 1, nil
		})
		f.notification.EXPECT().ApprovedOrRejectedTrip(gomock.Any(), "trip-1", "fits the budget").Return(nil)

		err := f.svc.Approve(context.Background(), dto.ReviewTripRequest{Reason: "fits the budget"}, "trip-1", "manager-1")

		require.NoError(t, err)
	})

	t.Run("manager rejects", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(pendingDetail(), nil)
		f.repo.EXPECT().UpdateAffected(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req map[string]any, _ gDto.FilterGroup) (int64, error) {
			assert.Equal(t, constant.StatusIDRejected, req[model.FieldStatusID])

			return 1, nil
		})
		f.notification.EXPECT().ApprovedOrRejectedTrip(gomock.Any(), "trip-1", "").Return(nil)

		require.NoError(t, f.svc.Reject(context.Background(), dto.ReviewTripRequest{}, "trip-1", "manager-1"))
	})

	t.Run("another manager", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(pendingDetail(), nil)

		err := f.svc.Approve(context.Background(), dto.ReviewTripRequest{}, "trip-1", "manager-2")

		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("already reviewed", func(t *testing.T) {
		f := newFixture(t)

		detail := pendingDetail()
		detail.StatusID = constant.StatusIDRejected
		detail.Status = "Rejected"
		f.repo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(detail, nil)

		err := f.svc.Approve(context.Background(), dto.ReviewTripRequest{}, "trip-1", "manager-1")

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Contains(t, err.Error(), "rejected")
	})

	t.Run("concurrent review wins the race", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(pendingDetail(), nil)
		f.repo.EXPECT().UpdateAffected(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

		err := f.svc.Reject(context.Background(), dto.ReviewTripRequest{}, "trip-1", "manager-1")

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Contains(t, err.Error(), "already been reviewed")
	})
}
