package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/estate-hub/internal/config"
	"github.com/MKhiriev/estate-hub/internal/logger"
	"github.com/MKhiriev/estate-hub/internal/service"
	"github.com/MKhiriev/estate-hub/internal/utils"
	"github.com/MKhiriev/estate-hub/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, request models.SignupRequest) (models.User, error)
	loginFn        func(ctx context.Context, request models.SigninRequest) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
	getUserByIDFn  func(ctx context.Context, userID string) (models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, request models.SignupRequest) (models.User, error) {
	return m.registerUserFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.SigninRequest) (models.User, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) GetUserByID(ctx context.Context, userID string) (models.User, error) {
	return m.getUserByIDFn(ctx, userID)
}

// mockUserService implements service.UserService for unit tests.
type mockUserService struct {
	updateUserFn func(ctx context.Context, actorID, targetID string, update models.UserUpdate) (models.User, error)
	deleteUserFn func(ctx context.Context, actorID, targetID string) error
}

func (m *mockUserService) UpdateUser(ctx context.Context, actorID, targetID string, update models.UserUpdate) (models.User, error) {
	return m.updateUserFn(ctx, actorID, targetID, update)
}

func (m *mockUserService) DeleteUser(ctx context.Context, actorID, targetID string) error {
	return m.deleteUserFn(ctx, actorID, targetID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var testServerConfig = config.Server{
	HTTPAddress:    ":0",
	RequestTimeout: time.Second,
}

// newTestHandler builds a Handler with the given service mocks. Nil mocks are
// allowed for handlers that never reach the corresponding service.
func newTestHandler(t *testing.T, auth service.AuthService, user service.UserService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: auth,
		UserService: user,
	}
	return NewHandler(svcs, testServerConfig, logger.Nop())
}

// withSessionUser stores user in the request context the way sessionAuth does.
func withSessionUser(r *http.Request, user models.User) *http.Request {
	ctx := context.WithValue(r.Context(), utils.SessionUserCtxKey, user)
	return r.WithContext(ctx)
}

// withURLParam attaches a chi route parameter to the request context so that
// handlers can be exercised without going through the router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h := NewHandler(&service.Services{}, testServerConfig, logger.Nop())

	require.NotNil(t, h)
}

func TestNewHandler_StoresServices(t *testing.T) {
	svc := &service.Services{}
	h := NewHandler(svc, testServerConfig, logger.Nop())

	assert.Equal(t, svc, h.services)
}

func TestNewHandler_StoresRequestTimeout(t *testing.T) {
	h := NewHandler(&service.Services{}, config.Server{RequestTimeout: 5 * time.Second}, logger.Nop())

	assert.Equal(t, 5*time.Second, h.requestTimeout)
}

// ─────────────────────────────────────────────
// Init — route registration
// ─────────────────────────────────────────────

func TestInit_ReturnsRouter(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockUserService{})

	router := h.Init()

	require.NotNil(t, router)
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockUserService{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/does-not-exist", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
