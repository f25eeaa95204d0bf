package middleware

import (
	"errors"
	"net"
	"net/http"
	"nomad/shared"
	"nomad/shared/cache"
	"nomad/shared/constant"
	"nomad/transport/http/response"
	"strconv"
)

const (
	cacheKeyRateLimit = "limiter"
	unknownUserAgent  = "unknown"
)

// RateLimit counts requests per client address and user agent. The window
// restarts on every accepted request. Cache outages fail open.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	limit := a.config.App.RateLimiter

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limit.Enable {
				next.ServeHTTP(w, r)

				return
			}

			ctx := r.Context()
			key := shared.BuildCacheKey(cacheKeyRateLimit, a.getClientIP(r), a.getUA(r))

			count := 0
			if err := a.cache.Get(ctx, key, &count); err != nil && !errors.Is(err, cache.Nil) {
				next.ServeHTTP(w, r)

				return
			}

			count++

			setRateLimitHeaders(w, limit.MaxRequests, limit.MaxRequests-count, limit.WindowSeconds)

			if count > limit.MaxRequests {
				response.WithRequestLimitExceeded(w)

				return
			}

			if err := a.cache.Save(ctx, key, count, limit.WindowSeconds); err != nil {
				next.ServeHTTP(w, r)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func setRateLimitHeaders(w http.ResponseWriter, maxRequests, remaining, window int) {
	w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxRequests))
	w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, remaining)))
	w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(window))
}

func (a *appMiddleware) getUA(r *http.Request) string {
	if ua := r.Header.Get(constant.RequestHeaderUserAgent); ua != "" {
		return ua
	}

	return unknownUserAgent
}

// getClientIP relies on chi's RealIP middleware having already moved
// X-Forwarded-For / X-Real-IP into RemoteAddr.
func (a *appMiddleware) getClientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}

	return r.RemoteAddr
}
