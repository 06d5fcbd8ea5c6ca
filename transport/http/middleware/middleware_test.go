package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"beauteefool/config"
	otelMocks "beauteefool/infras/otel/mocks"
	cacheMocks "beauteefool/shared/cache/mocks"
	"beauteefool/shared/constant"
	"beauteefool/transport/http/middleware"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func okHandler(actor *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if actor != nil {
			*actor, _ = r.Context().Value(constant.ContextKeyActor).(string)
		}

		w.WriteHeader(http.StatusOK)
	})
}

func TestAPIKey(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.APIKey = "s3cret"

	tests := []struct {
		name      string
		header    string
		wantCode  int
		wantActor string
	}{
		{name: "valid key", header: "s3cret", wantCode: http.StatusOK, wantActor: constant.ActorAdmin},
		{name: "missing key", header: "", wantCode: http.StatusUnauthorized},
		{name: "wrong key", header: "nope", wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, nil)

			var actor string
			req := httptest.NewRequest(http.MethodGet, "/v1/admin/bookings", nil)
			if tt.header != "" {
				req.Header.Set(constant.RequestHeaderAPIKey, tt.header)
			}

			rec := httptest.NewRecorder()
			m.APIKey(okHandler(&actor)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantActor, actor)
		})
	}
}

func TestAPIKey_NotConfigured(t *testing.T) {
	m := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/bookings", nil)
	rec := httptest.NewRecorder()
	m.APIKey(okHandler(nil)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRateLimit(t *testing.T) {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	const key = "limiter:10.0.0.1:test-agent"

	newRequest := func() *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/v1/services", nil)
		req.RemoteAddr = "10.0.0.1:4321"
		req.Header.Set(constant.RequestHeaderUserAgent, "test-agent")

		return req
	}

	t.Run("first request", func(t *testing.T) {
		mockCache := cacheMocks.NewMockRedisCache(ctrl)
		mockCache.EXPECT().Incr(gomock.Any(), key, 60).Return(1, nil)

		m := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, mockCache)
		rec := httptest.NewRecorder()
		m.RateLimit()(okHandler(nil)).ServeHTTP(rec, newRequest())

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2", rec.Header().Get(constant.RequestHeaderRateLimit))
		assert.Equal(t, "1", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		assert.Equal(t, "60", rec.Header().Get(constant.RequestHeaderRateLimitWindow))
	})

	t.Run("limit exceeded", func(t *testing.T) {
		mockCache := cacheMocks.NewMockRedisCache(ctrl)
		mockCache.EXPECT().Incr(gomock.Any(), key, 60).Return(3, nil)

		m := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, mockCache)
		rec := httptest.NewRecorder()
		m.RateLimit()(okHandler(nil)).ServeHTTP(rec, newRequest())

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "60", rec.Header().Get(constant.RequestHeaderRetryAfter))
	})

	t.Run("new window admits again", func(t *testing.T) {
		mockCache := cacheMocks.NewMockRedisCache(ctrl)
		gomock.InOrder(
			mockCache.EXPECT().Incr(gomock.Any(), key, 60).Return(3, nil),
			mockCache.EXPECT().Incr(gomock.Any(), key, 60).Return(1, nil),
		)

		m := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, mockCache)
		handler := m.RateLimit()(okHandler(nil))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, newRequest())
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)

		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, newRequest())
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("concurrent requests are each counted", func(t *testing.T) {
		var counter atomic.Int64

		mockCache := cacheMocks.NewMockRedisCache(ctrl)
		mockCache.EXPECT().Incr(gomock.Any(), key, 60).DoAndReturn(
			func(_ context.Context, _ string, _ int) (int, error) {
				return int(counter.Add(1)), nil
			}).Times(10)

		m := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, mockCache)
		handler := m.RateLimit()(okHandler(nil))

		var (
			wg      sync.WaitGroup
			allowed atomic.Int64
		)

		for range 10 {
			wg.Add(1)

			go func() {
				defer wg.Done()

				rec := httptest.NewRecorder()
				handler.ServeHTTP(rec, newRequest())

				if rec.Code == http.StatusOK {
					allowed.Add(1)
				}
			}()
		}

		wg.Wait()

		assert.Equal(t, int64(2), allowed.Load())
	})

	t.Run("forwarded client is keyed by first hop", func(t *testing.T) {
		mockCache := cacheMocks.NewMockRedisCache(ctrl)
		mockCache.EXPECT().Incr(gomock.Any(), "limiter:203.0.113.7:test-agent", 60).Return(1, nil)

		req := newRequest()
		req.Header.Set(constant.RequestHeaderForwardedFor, "203.0.113.7, 10.0.0.1")

		m := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, mockCache)
		rec := httptest.NewRecorder()
		m.RateLimit()(okHandler(nil)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("cache outage lets the request through", func(t *testing.T) {
		mockCache := cacheMocks.NewMockRedisCache(ctrl)
		mockCache.EXPECT().Incr(gomock.Any(), key, 60).Return(0, errors.New("connection refused"))

		m := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, mockCache)
		rec := httptest.NewRecorder()
		m.RateLimit()(okHandler(nil)).ServeHTTP(rec, newRequest())

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestTracing(t *testing.T) {
	m := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, nil)

	rec := httptest.NewRecorder()
	m.Tracing(okHandler(nil)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
