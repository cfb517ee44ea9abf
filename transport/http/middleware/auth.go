package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"frontdesk/config"
	"frontdesk/infras/jwt"
	"frontdesk/infras/otel"
	"frontdesk/permissions"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/transport/http/response"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type SkipAuthKey string

const (
	skipAuth       = SkipAuthKey("skip")
	internalCaller = "internal"
)

// tokenMessages maps validation failures onto the text returned to the caller.
var tokenMessages = []struct {
	err     error
	message string
}{
	{jwt.ErrMissingHeader, "Missing authorization header"},
	{jwt.ErrMalformedHeader, "Invalid authorization header format"},
	{jwt.ErrExpiredToken, "Token has expired"},
	{jwt.ErrInvalidToken, "Invalid token"},
	{jwt.ErrInvalidClaim, "Invalid token claims"},
}

// Auth authenticates the caller.
type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

// Role authorizes the authenticated caller.
type Role interface {
	RBAC(http.Handler) http.Handler
}

type AuthRole interface {
	Auth
	Role
}

type guard struct {
	tokens      jwt.JWT
	otel        otel.Otel
	permissions *permissions.PermissionData
	apiKey      string
}

func NewAuthRoleMiddleware(tokens jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	return &guard{
		tokens:      tokens,
		otel:        otel,
		permissions: permissions,
		apiKey:      cfg.App.APIKey,
	}
}

func tokenMessage(err error) string {
	for _, entry := range tokenMessages {
		if errors.Is(err, entry.err) {
			return entry.message
		}
	}

	return "Token validation failed"
}

func skipped(ctx context.Context) bool {
	skip, _ := ctx.Value(skipAuth).(bool)

	return skip
}

// routePattern resolves the registered pattern of the request, e.g. /v1/bookings/{id}/checkout.
func routePattern(request *http.Request) string {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return request.URL.Path
	}

	return rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)
}

func deny(writer http.ResponseWriter, scope otel.Scope, err error) {
	scope.TraceError(err)
	response.WithError(writer, err)
}

func withIdentity(ctx context.Context, claims *jwt.Claims) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
	ctx = context.WithValue(ctx, constant.ContextKeyUsername, claims.Username)
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)

	return context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)
}

// Auth validates the bearer access token and puts the caller identity on the context.
// Endpoints marked skip in permissions.json and internal API key calls pass through.
func (g *guard) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := g.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		path := routePattern(request)

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       path,
			"http.method":     request.Method,
		})

		if skipped(ctx) || (g.permissions != nil && g.permissions.FindPermissions(path, request.Method).Skip) {
			next.ServeHTTP(writer, request)

			return
		}

		token, err := jwt.ExtractTokenFromHeader(request.Header.Get(constant.RequestHeaderAuthorization))
		if err != nil {
			deny(writer, scope, failure.Unauthorized(tokenMessage(err)))

			return
		}

		claims, err := g.tokens.ValidateToken(token, jwt.AccessToken)
		if err != nil {
			deny(writer, scope, failure.Unauthorized(tokenMessage(err)))

			return
		}

		if claims.UserID == "" || claims.Username == "" {
			log.Error().Str("user_id", claims.UserID).Str("username", claims.Username).Msg("JWT claims incomplete")
			deny(writer, scope, failure.Unauthorized(tokenMessage(jwt.ErrInvalidClaim)))

			return
		}

		next.ServeHTTP(writer, request.WithContext(withIdentity(ctx, claims)))
	})
}

// RBAC checks the authenticated role against the roles listed for the endpoint.
// An endpoint without a role list is open to any authenticated user.
func (g *guard) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := g.otel.NewScope(ctx, constant.OtelHandlerScopeName, "rbac.middleware")
		defer scope.End()

		if skipped(ctx) {
			next.ServeHTTP(writer, request)

			return
		}

		if g.permissions == nil {
			deny(writer, scope, failure.ForbiddenError)

			return
		}

		endpoint := g.permissions.FindPermissions(routePattern(request), request.Method)
		if g.permissions.Skip || endpoint.Skip || len(endpoint.Permissions) == 0 {
			next.ServeHTTP(writer, request)

			return
		}

		role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
		if !slices.Contains(endpoint.Permissions, role) {
			scope.SetAttributes(map[string]any{
				"user_role":     role,
				"allowed_roles": endpoint.Permissions,
				"reason":        "role_not_allowed",
			})
			deny(writer, scope, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(writer, request)
	})
}

// APIKey lets internal callers bypass token auth with the shared key. Requests without the header
// continue as regular clients.
func (g *guard) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := g.otel.NewScope(ctx, constant.OtelHandlerScopeName, "api_key.middleware")
		defer scope.End()

		key := request.Header.Get(constant.RequestHeaderAPIKey)
		if key == "" {
			scope.SetAttribute("http.source", "client")
			next.ServeHTTP(writer, request.WithContext(context.WithValue(ctx, skipAuth, false)))

			return
		}

		scope.SetAttribute("http.source", internalCaller)

		if g.apiKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(g.apiKey)) != 1 {
			deny(writer, scope, failure.ForbiddenError)

			return
		}

		ctx = context.WithValue(ctx, skipAuth, true)
		ctx = context.WithValue(ctx, constant.ContextKeyUsername, internalCaller)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
