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
	userMocks "nomad/internal/domains/user/mocks"
	"nomad/internal/domains/user/model"
	"nomad/internal/domains/user/model/dto"
	"nomad/internal/domains/user/service"
	cacheMocks "nomad/shared/cache/mocks"
	"nomad/shared/constant"
	gDto "nomad/shared/dto"
	"nomad/shared/failure"
)

func newService(t *testing.T) (service.User, *userMocks.MockUser, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func TestUserService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache)
		wantCode  int
		wantRole  string
	}{
		{
			name: "cache miss loads from repository",
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), "user:get:user-1", gomock.Any()).Return(errors.New("miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{
					ID:        "user-1",
					FirstName: "Ada",
					LastName:  "Lovelace",
					Email:     "ada@example.com",
					RoleID:    constant.RoleIDManager,
				}, nil)
				cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantRole: constant.RoleManager,
		},
		{
			name: "unknown user",
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache := newService(t)
			tt.setupMock(repo, cache)

			res, err := svc.Get(context.Background(), "user-1")
			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, res.Role)
			assert.Equal(t, "ada@example.com", res.Email)
		})
	}
}

func TestUserService_GetAll(t *testing.T) {
	svc, repo, cache := newService(t)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).Times(2)
	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(11, nil)
	repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.User, error) {
			assert.Equal(t, constant.FieldCreatedAt, params.SortBy)

			return []model.User{{ID: "user-1", RoleID: constant.RoleIDRequester}}, nil
		})
	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10, SortBy: "password"}, gDto.FilterGroup{})
	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, 11, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	require.Len(t, res.Users, 1)
	assert.Equal(t, constant.RoleRequester, res.Users[0].Role)
}

func TestUserService_AssignRole(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.AssignRoleRequest
		setupMock func(repo *userMocks.MockUser)
		wantCode  int
	}{
		{
			name: "promote to manager",
			req:  dto.AssignRoleRequest{RoleID: constant.RoleIDManager},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, constant.RoleIDManager, fields[model.FieldRoleID])
						assert.Equal(t, "admin-1", fields[constant.FieldModifiedBy])

						return nil
					})
			},
		},
		{
			name:      "unknown role",
			req:       dto.AssignRoleRequest{RoleID: 42},
			setupMock: func(_ *userMocks.MockUser) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "missing user",
			req:  dto.AssignRoleRequest{RoleID: constant.RoleIDTravelAdmin},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache := newService(t)
			tt.setupMock(repo)
			cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
			err := svc.AssignRole(ctx, tt.req, "user-1")
			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestUserService_Delete(t *testing.T) {
	t.Run("deletes existing user", func(t *testing.T) {
		svc, repo, cache := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := svc.Delete(context.Background(), "user-1")
		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("missing user", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Delete(context.Background(), "user-1")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
