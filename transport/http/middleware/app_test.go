package middleware_test

import (
	"errors"
	"frontdesk/config"
	otelMocks "frontdesk/infras/otel/mocks"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/constant"
	"frontdesk/transport/http/middleware"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestTracing(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		wantErrors int
	}{
		{name: "success is not an error", status: http.StatusOK},
		{name: "client error is not an error", status: http.StatusConflict},
		{name: "server error is traced", status: http.StatusInternalServerError, wantErrors: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			otel := otelMocks.NewRecordingOtel()
			app := middleware.NewAppMiddleware(otel, &config.Config{}, nil)

			router := chi.NewRouter()
			router.Use(app.Tracing)
			router.Get("/v1/bookings/{id}", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			})

			request := httptest.NewRequest(http.MethodGet, "/v1/bookings/4", nil)
			request.Header.Set(constant.RequestHeaderRequestID, "req-1")

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			scope := otel.Scope("GET /v1/bookings/4")
			require.NotNil(t, scope)

			assert.True(t, scope.Ended)
			assert.Len(t, scope.Errors, tt.wantErrors)
			assert.Equal(t, tt.status, scope.Attributes["http.status_code"])
			assert.Equal(t, "/v1/bookings/{id}", scope.Attributes["http.route"])
			assert.Equal(t, "req-1", scope.Attributes["http.request_id"])
		})
	}
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name          string
		enabled       bool
		headers       map[string]string
		wantKey       string
		count         int64
		err           error
		wantCode      int
		wantRemaining string
	}{
		{
			name:     "disabled skips the counter",
			wantCode: http.StatusOK,
		},
		{
			name:          "first request in window",
			enabled:       true,
			headers:       map[string]string{constant.RequestHeaderUserAgent: "curl/8"},
			wantKey:       "limiter:192.0.2.1:curl/8",
			count:         1,
			wantCode:      http.StatusOK,
			wantRemaining: "4",
		},
		{
			name:    "forwarded client is keyed by first hop",
			enabled: true,
			headers: map[string]string{
				constant.RequestHeaderForwardedFor: "10.0.0.1, 10.0.0.2",
			},
			wantKey:       "limiter:10.0.0.1:unknown",
			count:         5,
			wantCode:      http.StatusOK,
			wantRemaining: "0",
		},
		{
			name:          "over the limit",
			enabled:       true,
			headers:       map[string]string{constant.RequestHeaderRealIP: "10.1.1.1"},
			wantKey:       "limiter:10.1.1.1:unknown",
			count:         6,
			wantCode:      http.StatusTooManyRequests,
			wantRemaining: "0",
		},
		{
			name:     "redis down fails open",
			enabled:  true,
			wantKey:  "limiter:192.0.2.1:unknown",
			err:      errors.New("connection refused"),
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := cacheMocks.NewMockRedisCache(gomock.NewController(t))
			if tt.enabled {
				cache.EXPECT().Increment(gomock.Any(), tt.wantKey, 60).Return(tt.count, tt.err)
			}

			cfg := &config.Config{}
			cfg.App.RateLimiter.Enable = tt.enabled
			cfg.App.RateLimiter.MaxRequests = 5
			cfg.App.RateLimiter.WindowSeconds = 60

			app := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, cache)

			request := httptest.NewRequest(http.MethodGet, "/v1/rooms/grid", nil)
			for key, value := range tt.headers {
				request.Header.Set(key, value)
			}

			recorder := httptest.NewRecorder()
			app.RateLimit()(http.HandlerFunc(okHandler)).ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.Equal(t, tt.wantRemaining, recorder.Header().Get(constant.RequestHeaderRateLimitRemaining))

			if tt.wantCode == http.StatusTooManyRequests {
				assert.JSONEq(t, `{"message":"REQUEST LIMIT EXCEEDED"}`, recorder.Body.String())
			}
		})
	}
}
