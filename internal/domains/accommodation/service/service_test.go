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
	s3Mocks "nomad/infras/s3/mocks"
	accommodationMocks "nomad/internal/domains/accommodation/mocks"
	"nomad/internal/domains/accommodation/model"
	"nomad/internal/domains/accommodation/model/dto"
	"nomad/internal/domains/accommodation/service"
	cityMocks "nomad/internal/domains/city/mocks"
	cacheMocks "nomad/shared/cache/mocks"
	gDto "nomad/shared/dto"
	"nomad/shared/failure"
)

const pngDataURI = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

type fixture struct {
	svc    service.Accommodation
	repo   *accommodationMocks.MockAccommodation
	cities *cityMocks.MockCityService
	cache  *cacheMocks.MockRedisCache
	s3     *s3Mocks.MockS3
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		repo:   accommodationMocks.NewMockAccommodation(ctrl),
		cities: cityMocks.NewMockCityService(ctrl),
		cache:  cacheMocks.NewMockRedisCache(ctrl),
		s3:     s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 60
	cfg.External.S3.AccommodationDir = "accommodations"

	f.svc = service.New(f.repo, f.cities, cfg, f.cache, mocks.NewOtel(), f.s3)

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func TestAccommodationService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateAccommodationRequest
		setupMock func(f fixture)
		wantCode  int
		wantErr   bool
	}{
		{
			name: "without image",
			req:  dto.CreateAccommodationRequest{Name: " Marriott ", Address: "KN 3 Ave", CityID: 1},
			setupMock: func(f fixture) {
				f.cities.EXPECT().Exist(gomock.Any(), 1).Return(true, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a model.Accommodation) error {
					assert.Equal(t, "Marriott", a.Name)
					assert.Equal(t, "admin-1", a.UserID)
					assert.Nil(t, a.ImageURL)

					return nil
				})
			},
		},
		{
			name: "with image",
			req:  dto.CreateAccommodationRequest{Name: "Marriott", Address: "KN 3 Ave", CityID: 1, Image: pngDataURI},
			setupMock: func(f fixture) {
				f.cities.EXPECT().Exist(gomock.Any(), 1).Return(true, nil)
				f.s3.EXPECT().Upload(gomock.Any(), "accommodations", "image/png", gomock.Any()).
					Return("https://cdn.example.com/accommodations/a.png", nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a model.Accommodation) error {
					assert.Equal(t, "https://cdn.example.com/accommodations/a.png", *a.ImageURL)

					return nil
				})
			},
		},
		{
			name: "failed insert removes the uploaded image",
			req:  dto.CreateAccommodationRequest{Name: "Marriott", Address: "KN 3 Ave", CityID: 1, Image: pngDataURI},
			setupMock: func(f fixture) {
				f.cities.EXPECT().Exist(gomock.Any(), 1).Return(true, nil)
				f.s3.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://cdn.example.com/accommodations/a.png", nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
				f.s3.EXPECT().DeleteByURL(gomock.Any(), "https://cdn.example.com/accommodations/a.png").Return(nil)
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "unknown city",
			req:  dto.CreateAccommodationRequest{Name: "Marriott", Address: "KN 3 Ave", CityID: 99},
			setupMock: func(f fixture) {
				f.cities.EXPECT().Exist(gomock.Any(), 99).Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Create(context.Background(), tt.req, "admin-1")
			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, res.ID)
		})
	}
}

func TestAccommodationService_GetAll(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).Times(2)
	f.repo.EXPECT().CountDetail(gomock.Any(), gomock.Any()).Return(1, nil)
	f.repo.EXPECT().GetAllDetail(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup) ([]model.AccommodationDetail, error) {
			assert.Equal(t, "accommodations.name", params.SortBy)

			return []model.AccommodationDetail{{Accommodation: model.Accommodation{ID: "acc-1", Name: "Marriott"}, City: "Kigali"}}, nil
		})

	res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10, SortBy: "name", SortDir: "ASC"}, gDto.FilterGroup{})
	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	require.Len(t, res.Accommodations, 1)
	assert.Equal(t, "Kigali", res.Accommodations[0].City)
}

func TestAccommodationService_Get(t *testing.T) {
	t.Run("cache hit skips the database", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), "accommodation:get:acc-1", gomock.Any()).Return(nil)

		_, err := f.svc.Get(context.Background(), "acc-1")

		require.NoError(t, err)
	})

	t.Run("missing", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		f.repo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(model.AccommodationDetail{}, nil)

		_, err := f.svc.Get(context.Background(), "acc-1")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
