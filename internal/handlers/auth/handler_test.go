package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/auth/model/dto"
	"frontdesk/internal/domains/auth/service"
	authHandler "frontdesk/internal/handlers/auth"
)

type stubAuthService struct {
	registered bool
}

func (s *stubAuthService) Register(_ context.Context, _ dto.RegisterRequest) error {
	s.registered = true

	return nil
}

func (s *stubAuthService) Login(_ context.Context, _ dto.LoginRequest) (dto.LoginResponse, error) {
	return dto.LoginResponse{}, nil
}

func (s *stubAuthService) RefreshToken(_ context.Context, _ dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error) {
	return dto.RefreshTokenResponse{}, nil
}

func (s *stubAuthService) ChangePassword(_ context.Context, _ dto.ChangePasswordRequest, _ string) error {
	return nil
}

// rejectAllAuth refuses every authenticated request, standing in for the
// middleware on a deployment where nobody has a session yet.
type rejectAllAuth struct{}

func (rejectAllAuth) Authenticate(http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
}

func (rejectAllAuth) RequireRoles(_ ...string) func(http.Handler) http.Handler {
	return func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})
	}
}

func newRouter(svc service.Auth) chi.Router {
	handler := authHandler.New(svc, rejectAllAuth{}, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func TestRegister_OpenWithoutSession(t *testing.T) {
	svc := &stubAuthService{}
	router := newRouter(svc)

	body := `{"full_name":"Ada Obi","email":"ada@example.com","password":"secret-pass","role":"manager"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, svc.registered)
}

func TestChangePassword_RequiresSession(t *testing.T) {
	svc := &stubAuthService{}
	router := newRouter(svc)

	body := `{"current_password":"secret-pass","new_password":"new-secret-pass"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/change-password", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
