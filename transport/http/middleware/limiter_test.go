package middleware_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"nomad/config"
	"nomad/infras/otel/mocks"
	"nomad/shared/cache"
	cacheMocks "nomad/shared/cache/mocks"
	"nomad/shared/constant"
	"nomad/transport/http/middleware"
)

func TestRateLimit(t *testing.T) {
	const key = "limiter:10.0.0.7:nomad-test"

	tests := []struct {
		name          string
		stored        int
		getErr        error
		expectSave    bool
		wantStatus    int
		wantRemaining string
	}{
		{name: "first request", getErr: fmt.Errorf("wrapped: %w", cache.Nil), expectSave: true, wantStatus: http.StatusOK, wantRemaining: "2"},
		{name: "last allowed request", stored: 2, expectSave: true, wantStatus: http.StatusOK, wantRemaining: "0"},
		{name: "over the limit", stored: 3, wantStatus: http.StatusTooManyRequests, wantRemaining: "0"},
		{name: "cache down fails open", getErr: errors.New("dial tcp: refused"), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			redisCache := cacheMocks.NewMockRedisCache(gomock.NewController(t))

			cfg := &config.Config{}
			cfg.App.RateLimiter.Enable = true
			cfg.App.RateLimiter.MaxRequests = 3
			cfg.App.RateLimiter.WindowSeconds = 60

			redisCache.EXPECT().Get(gomock.Any(), key, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, value any) error {
					if tt.getErr != nil {
						return tt.getErr
					}

					*value.(*int) = tt.stored

					return nil
				})

			if tt.expectSave {
				redisCache.EXPECT().Save(gomock.Any(), key, tt.stored+1, 60).Return(nil)
			}

			app := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, redisCache)
			handler := app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/v1/cities", nil)
			req.RemoteAddr = "10.0.0.7:53122"
			req.Header.Set(constant.RequestHeaderUserAgent, "nomad-test")

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantRemaining, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}

func TestRateLimitDisabled(t *testing.T) {
	redisCache := cacheMocks.NewMockRedisCache(gomock.NewController(t))

	app := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, redisCache)
	handler := app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cities", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
