package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"nomad/config"
	"nomad/infras/otel/mocks"
	cityMocks "nomad/internal/domains/city/mocks"
	"nomad/internal/domains/city/model"
	"nomad/internal/domains/city/model/dto"
	"nomad/internal/domains/city/service"
	cacheMocks "nomad/shared/cache/mocks"
	gDto "nomad/shared/dto"
)

func newService(t *testing.T) (service.City, *cityMocks.MockCity, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := cityMocks.NewMockCity(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(repo, cfg, cache, mocks.NewOtel()), repo, cache
}

func TestCityService_GetCities(t *testing.T) {
	t.Run("projects id and city", func(t *testing.T) {
		svc, repo, cache := newService(t)

		cache.EXPECT().Get(gomock.Any(), "city:gets", gomock.Any()).Return(errors.New("miss"))
		repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), model.FieldID, model.FieldCity).
			Return([]model.City{{ID: 1, City: "Kigali"}, {ID: 2, City: "Nairobi"}}, nil)
		cache.EXPECT().Save(gomock.Any(), "city:gets", gomock.Any(), 3600).Return(nil).AnyTimes()

		res, err := svc.GetCities(context.Background())
		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, []dto.CityResponse{{ID: 1, City: "Kigali"}, {ID: 2, City: "Nairobi"}}, res.Cities)
	})

	t.Run("served from cache", func(t *testing.T) {
		svc, _, cache := newService(t)

		cache.EXPECT().
			Get(gomock.Any(), "city:gets", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				res, _ := value.(*dto.GetCitiesResponse)
				res.Cities = []dto.CityResponse{{ID: 3, City: "Kampala"}}

				return nil
			})

		res, err := svc.GetCities(context.Background())

		require.NoError(t, err)
		assert.Len(t, res.Cities, 1)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, repo, cache := newService(t)

		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		_, err := svc.GetCities(context.Background())

		assert.Error(t, err)
	})
}

func TestCityService_Exist(t *testing.T) {
	tests := []struct {
		name  string
		ids   []int
		count int
		want  bool
	}{
		{name: "all known", ids: []int{1, 2}, count: 2, want: true},
		{name: "duplicates collapse", ids: []int{4, 4}, count: 1, want: true},
		{name: "one unknown", ids: []int{1, 99}, count: 1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)

			repo.EXPECT().
				Count(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
					where, _ := filter.GetWhereClause()
					assert.Contains(t, where, "cities.id IN")

					return tt.count, nil
				})

			ok, err := svc.Exist(context.Background(), tt.ids...)

			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}
