package middleware

import (
	"context"
	"errors"
	"net/http"
	"slices"

	"frontdesk/infras/jwt"
	"frontdesk/infras/otel"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/transport/http/response"
)

// Auth validates bearer tokens and stamps the staff identity into the
// request context under the explicit staff context keys.
type Auth interface {
	Authenticate(next http.Handler) http.Handler
	RequireRoles(roles ...string) func(http.Handler) http.Handler
}

type authImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
}

func NewAuth(jwtService jwt.JWT, otel otel.Otel) Auth {
	return &authImpl{
		jwtService: jwtService,
		otel:       otel,
	}
}

func (m *authImpl) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		tokenString, err := jwt.ExtractTokenFromHeader(request.Header.Get(constant.RequestHeaderAuthorization))
		if err != nil {
			unauthorized := failure.Unauthorized("missing or malformed authorization header")

			scope.TraceError(unauthorized)
			response.WithError(writer, unauthorized)

			return
		}

		claims, err := m.jwtService.ValidateToken(ctx, tokenString, jwt.AccessToken)
		if err != nil {
			var message string

			switch {
			case errors.Is(err, jwt.ErrExpiredToken):
				message = "token has expired"
			case errors.Is(err, jwt.ErrInvalidClaim):
				message = "invalid token claims"
			default:
				message = "invalid token"
			}

			unauthorized := failure.Unauthorized(message)

			scope.TraceError(unauthorized)
			response.WithError(writer, unauthorized)

			return
		}

		if claims.StaffID == "" || claims.Email == "" {
			unauthorized := failure.Unauthorized("invalid token claims")

			scope.TraceError(unauthorized)
			response.WithError(writer, unauthorized)

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyStaffID, claims.StaffID)
		ctx = context.WithValue(ctx, constant.ContextKeyStaffEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyStaffRole, claims.Role)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RequireRoles guards a route group to the named roles. Managers pass every
// guard. Requires prior authentication.
func (m *authImpl) RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			role, _ := request.Context().Value(constant.ContextKeyStaffRole).(string)

			if role == constant.RoleManager || slices.Contains(roles, role) {
				next.ServeHTTP(writer, request)

				return
			}

			response.WithError(writer, failure.ForbiddenError)
		})
	}
}
