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
	commentMocks "nomad/internal/domains/comment/mocks"
	"nomad/internal/domains/comment/model"
	"nomad/internal/domains/comment/model/dto"
	"nomad/internal/domains/comment/service"
	notificationMocks "nomad/internal/domains/notification/mocks"
	tripMocks "nomad/internal/domains/triprequest/mocks"
	tripModel "nomad/internal/domains/triprequest/model"
	cacheMocks "nomad/shared/cache/mocks"
	gDto "nomad/shared/dto"
	"nomad/shared/failure"
)

type fixture struct {
	svc          service.Comment
	repo         *commentMocks.MockComment
	trips        *tripMocks.MockTripRequest
	notification *notificationMocks.MockNotificationService
	cache        *cacheMocks.MockRedisCache
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		repo:         commentMocks.NewMockComment(ctrl),
		trips:        tripMocks.NewMockTripRequest(ctrl),
		notification: notificationMocks.NewMockNotificationService(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	f.svc = service.New(f.repo, f.trips, f.notification, cfg, f.cache, mocks.NewOtel())

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func trip() tripModel.TripRequestDetail {
	manager := "manager-1"

	return tripModel.TripRequestDetail{
		TripRequest: tripModel.TripRequest{ID: "trip-1", UserID: "owner-1"},
		ManagerID:   &manager,
	}
}

func TestCommentService_Create(t *testing.T) {
	tests := []struct {
		name      string
		userID    string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name:   "owner comments",
			userID: "owner-1",
			setupMock: func(f fixture) {
				f.trips.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(trip(), nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c model.Comment) error {
					assert.Equal(t, "trip-1", c.TripRequestID)
					assert.Equal(t, "see you there", c.Comment)

					return nil
				})
				f.notification.EXPECT().AddComment(gomock.Any(), "trip-1", "owner-1").Return(nil)
			},
		},
		{
			name:   "manager comments, notification failure is only logged",
			userID: "manager-1",
			setupMock: func(f fixture) {
				f.trips.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(trip(), nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				f.notification.EXPECT().AddComment(gomock.Any(), "trip-1", "manager-1").Return(errors.New("down"))
			},
		},
		{
			name:   "outsider",
			userID: "stranger",
			setupMock: func(f fixture) {
				f.trips.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(trip(), nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:   "unknown trip",
			userID: "owner-1",
			setupMock: func(f fixture) {
				f.trips.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(tripModel.TripRequestDetail{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Create(context.Background(), dto.CreateCommentRequest{Comment: " see you there "}, "trip-1", tt.userID)
			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "see you there", res.Comment)
			assert.NotEmpty(t, res.ID)
		})
	}
}

func TestCommentService_GetAll(t *testing.T) {
	f := newFixture(t)
	image := "https://cdn.example.com/ada.png"

	f.trips.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(trip(), nil)
	f.cache.EXPECT().Get(gomock.Any(), "comment:gets:trip-1", gomock.Any()).Return(errors.New("miss"))
	f.repo.EXPECT().GetThread(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.CommentThread, error) {
			assert.Equal(t, "comments.modified_at", params.SortBy)
			assert.Equal(t, gDto.SortDirAsc, params.SortDir)
			assert.Zero(t, params.Limit)

			where, _ := filter.GetWhereClause()
			assert.Equal(t, "(comments.trip_request_id = :trip_request_id)", where)

			return []model.CommentThread{
				{Comment: model.Comment{ID: "c-1", UserID: "owner-1", Comment: "first"}, FirstName: "Ada", ImageURL: &image},
				{Comment: model.Comment{ID: "c-2", UserID: "manager-1", Comment: "second"}, FirstName: "Grace"},
			}, nil
		})

	res, err := f.svc.GetAll(context.Background(), "trip-1", "manager-1")
	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	require.Len(t, res.Comments, 2)
	assert.Equal(t, "first", res.Comments[0].Comment)
	assert.Equal(t, image, *res.Comments[0].User.ImageURL)
	assert.Nil(t, res.Comments[1].User.ImageURL)
	assert.Equal(t, "manager-1", res.Comments[1].User.ID)
}

func TestCommentService_Get(t *testing.T) {
	thread := model.CommentThread{Comment: model.Comment{ID: "c-1", Comment: "hello", TripRequestID: "trip-1"}}

	tests := []struct {
		name      string
		userID    string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name:   "requester reads",
			userID: "owner-1",
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetThreadItem(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (model.CommentThread, error) {
					where, args := filter.GetWhereClause()
					assert.Equal(t, "(comments.id = :id)", where)
					assert.Equal(t, "c-1", args["id"])

					return thread, nil
				})
				f.trips.EXPECT().GetDetail(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (tripModel.TripRequestDetail, error) {
					_, args := filter.GetWhereClause()
					assert.Equal(t, "trip-1", args["id"])

					return trip(), nil
				})
			},
		},
		{
			name:   "line manager reads",
			userID: "manager-1",
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetThreadItem(gomock.Any(), gomock.Any()).Return(thread, nil)
				f.trips.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(trip(), nil)
			},
		},
		{
			name:   "outsider",
			userID: "stranger",
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetThreadItem(gomock.Any(), gomock.Any()).Return(thread, nil)
				f.trips.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(trip(), nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:   "missing",
			userID: "owner-1",
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetThreadItem(gomock.Any(), gomock.Any()).Return(model.CommentThread{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Get(context.Background(), "c-1", tt.userID)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "hello", res.Comment)
		})
	}
}

func TestCommentService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "author deletes",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Comment{ID: "c-1", UserID: "owner-1", TripRequestID: "trip-1"}, nil)
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "not the author",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Comment{ID: "c-1", UserID: "manager-1"}, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "missing",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Comment{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.Delete(context.Background(), "c-1", "owner-1")
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
