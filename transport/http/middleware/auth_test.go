package middleware_test

import (
	"errors"
	"frontdesk/config"
	"frontdesk/infras/jwt"
	jwtMocks "frontdesk/infras/jwt/mocks"
	otelMocks "frontdesk/infras/otel/mocks"
	"frontdesk/permissions"
	"frontdesk/shared/constant"
	"frontdesk/transport/http/middleware"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const apiKey = "internal-key"

var testPermissions = &permissions.PermissionData{
	Endpoints: []permissions.Permission{
		{Path: "/v1/auth/login", Method: http.MethodPost, Skip: true},
		{Path: "/v1/guests/{id}", Method: http.MethodDelete, Permissions: []string{constant.RoleAdmin, constant.RoleManager}},
	},
}

// newServer mounts the auth chain the way the HTTP server does and echoes the caller identity.
func newServer(t *testing.T, setup func(*jwtMocks.MockJWT), data *permissions.PermissionData) http.Handler {
	t.Helper()

	mockJWT := jwtMocks.NewMockJWT(gomock.NewController(t))
	if setup != nil {
		setup(mockJWT)
	}

	cfg := &config.Config{}
	cfg.App.APIKey = apiKey

	authRole := middleware.NewAuthRoleMiddleware(mockJWT, otelMocks.NewOtel(), data, cfg)

	echo := func(w http.ResponseWriter, r *http.Request) {
		username, _ := r.Context().Value(constant.ContextKeyUsername).(string)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(username))
	}

	router := chi.NewRouter()
	router.Group(func(r chi.Router) {
		r.Use(authRole.APIKey)
		r.Use(authRole.Auth)
		r.Use(authRole.RBAC)

		r.Post("/v1/auth/login", echo)
		r.Delete("/v1/guests/{id}", echo)
		r.Get("/v1/rooms/grid", echo)
	})

	return router
}

func claims(role string) *jwt.Claims {
	return &jwt.Claims{UserID: "3", Username: "maria", Role: role, TokenID: "t-1", Type: jwt.AccessToken}
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		header   string
		setup    func(*jwtMocks.MockJWT)
		wantCode int
		wantBody string
	}{
		{
			name:     "login is open",
			method:   http.MethodPost,
			path:     "/v1/auth/login",
			wantCode: http.StatusOK,
		},
		{
			name:     "missing header",
			method:   http.MethodGet,
			path:     "/v1/rooms/grid",
			wantCode: http.StatusUnauthorized,
			wantBody: `{"error":"Missing authorization header"}`,
		},
		{
			name:     "not a bearer token",
			method:   http.MethodGet,
			path:     "/v1/rooms/grid",
			header:   "Basic abc",
			wantCode: http.StatusUnauthorized,
			wantBody: `{"error":"Invalid authorization header format"}`,
		},
		{
			name:   "expired token",
			method: http.MethodGet,
			path:   "/v1/rooms/grid",
			header: "Bearer old",
			setup: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken("old", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)
			},
			wantCode: http.StatusUnauthorized,
			wantBody: `{"error":"Token has expired"}`,
		},
		{
			name:   "unexpected validation error",
			method: http.MethodGet,
			path:   "/v1/rooms/grid",
			header: "Bearer odd",
			setup: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken("odd", jwt.AccessToken).Return(nil, errors.New("boom"))
			},
			wantCode: http.StatusUnauthorized,
			wantBody: `{"error":"Token validation failed"}`,
		},
		{
			name:   "claims without username",
			method: http.MethodGet,
			path:   "/v1/rooms/grid",
			header: "Bearer partial",
			setup: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken("partial", jwt.AccessToken).Return(&jwt.Claims{UserID: "3"}, nil)
			},
			wantCode: http.StatusUnauthorized,
			wantBody: `{"error":"Invalid token claims"}`,
		},
		{
			name:   "valid token puts the caller on the context",
			method: http.MethodGet,
			path:   "/v1/rooms/grid",
			header: "Bearer good",
			setup: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken("good", jwt.AccessToken).Return(claims(constant.RoleStaff), nil)
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				request.Header.Set(constant.RequestHeaderAuthorization, tt.header)
			}

			recorder := httptest.NewRecorder()
			newServer(t, tt.setup, testPermissions).ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantCode, recorder.Code)

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, recorder.Body.String())
			}
		})
	}
}

func TestAuth_ContextCarriesUsername(t *testing.T) {
	setup := func(m *jwtMocks.MockJWT) {
		m.EXPECT().ValidateToken("good", jwt.AccessToken).Return(claims(constant.RoleStaff), nil)
	}

	request := httptest.NewRequest(http.MethodGet, "/v1/rooms/grid", nil)
	request.Header.Set(constant.RequestHeaderAuthorization, "Bearer good")

	recorder := httptest.NewRecorder()
	newServer(t, setup, testPermissions).ServeHTTP(recorder, request)

	assert.Equal(t, "maria", recorder.Body.String())
}

func TestRBAC(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		data     *permissions.PermissionData
		wantCode int
	}{
		{name: "manager deletes guests", role: constant.RoleManager, data: testPermissions, wantCode: http.StatusOK},
		{name: "receptionist cannot delete guests", role: constant.RoleReceptionist, data: testPermissions, wantCode: http.StatusForbidden},
		{name: "global skip", role: constant.RoleStaff, data: &permissions.PermissionData{Skip: true}, wantCode: http.StatusOK},
		{name: "no permissions loaded denies", role: constant.RoleAdmin, data: nil, wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken("good", jwt.AccessToken).Return(claims(tt.role), nil)
			}

			request := httptest.NewRequest(http.MethodDelete, "/v1/guests/7", nil)
			request.Header.Set(constant.RequestHeaderAuthorization, "Bearer good")

			recorder := httptest.NewRecorder()
			newServer(t, setup, tt.data).ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}

func TestAPIKey(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		wantCode int
		wantBody string
	}{
		{name: "matching key bypasses token auth", key: apiKey, wantCode: http.StatusOK, wantBody: "internal"},
		{name: "wrong key is forbidden", key: "guess", wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodDelete, "/v1/guests/7", nil)
			request.Header.Set(constant.RequestHeaderAPIKey, tt.key)

			recorder := httptest.NewRecorder()
			newServer(t, nil, testPermissions).ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantCode, recorder.Code)

			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, recorder.Body.String())
			}
		})
	}
}
