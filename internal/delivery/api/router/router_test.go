package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storeradar/config"
	"storeradar/internal/delivery/api/middleware"
	"storeradar/internal/delivery/api/router/handler"
	mockSvc "storeradar/internal/mocks/service"
	mockUC "storeradar/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestEcho(t *testing.T, cfg *config.Config) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := NewRouter(RouterParams{
		AuthHandler:         handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: mockUC.NewMockAuthUsecase(t), Logger: logger}),
		StoreHandler:        handler.NewStoreHandler(handler.StoreHandlerParams{StoreUC: mockUC.NewMockStoreUsecase(t), Logger: logger}),
		LocalityHandler:     handler.NewLocalityHandler(handler.LocalityHandlerParams{LocalityUC: mockUC.NewMockLocalityUsecase(t), Logger: logger}),
		CommentHandler:      handler.NewCommentHandler(handler.CommentHandlerParams{CommentUC: mockUC.NewMockCommentUsecase(t), Logger: logger}),
		UploadHandler:       handler.NewUploadHandler(handler.UploadHandlerParams{UploadUC: mockUC.NewMockUploadUsecase(t), Logger: logger}),
		GroupHandler:        handler.NewGroupHandler(handler.GroupHandlerParams{GroupUC: mockUC.NewMockGroupUsecase(t), Logger: logger}),
		AssignmentHandler:   handler.NewAssignmentHandler(handler.AssignmentHandlerParams{AssignmentUC: mockUC.NewMockAssignmentUsecase(t), Logger: logger}),
		VisitHandler:        handler.NewVisitHandler(handler.VisitHandlerParams{VisitUC: mockUC.NewMockVisitUsecase(t), Logger: logger}),
		DeactivationHandler: handler.NewDeactivationHandler(handler.DeactivationHandlerParams{DeactivationUC: mockUC.NewMockDeactivationUsecase(t), Logger: logger}),
		DeviceHandler:       handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: mockUC.NewMockDeviceUsecase(t), Logger: logger}),
		AuthMiddleware:      middleware.NewAuthMiddleware(mockSvc.NewMockTokenService(t)),
		Config:              cfg,
	})

	e := echo.New()
	r.RegisterRoutes(e)

	return e
}

func TestRouter_RegistersRoutes(t *testing.T) {
	e := newTestEcho(t, &config.Config{})

	registered := make(map[string]bool)
	for _, route := range e.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"GET /health",
		"GET /uploads/:kind/:name",
		"POST /api/v1/auth/login",
		"GET /api/v1/auth/me",
		"GET /api/v1/stores/nearby",
		"GET /api/v1/stores/by-neighborhood",
		"GET /api/v1/store-categories",
		"GET /api/v1/locality/address",
		"GET /api/v1/locality/neighborhood",
		"POST /api/v1/stores",
		"PATCH /api/v1/stores/:id/workshop",
		"GET /api/v1/stores/:token/qr",
		"POST /api/v1/uploads/:kind",
		"DELETE /api/v1/store-groups/:code",
		"GET /api/v1/assignments/export",
		"POST /api/v1/visits",
		"POST /api/v1/deactivation-requests/:id/review",
		"DELETE /api/v1/devices/:id",
	} {
		assert.True(t, registered[want], want)
	}
}

func TestRouter_ProtectedRoutesNeedToken(t *testing.T) {
	e := newTestEcho(t, &config.Config{})

	for _, target := range []string{"/api/v1/assignments", "/api/v1/auth/me", "/api/v1/devices"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
	}
}

func TestRouter_HealthIsPublic(t *testing.T) {
	e := newTestEcho(t, &config.Config{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUploadBodyLimit(t *testing.T) {
	assert.Equal(t, defaultUploadLimit, uploadBodyLimit(&config.Config{}))
	assert.Equal(t, "2049KB", uploadBodyLimit(&config.Config{Storage: &config.StorageConfig{MaxUploadSize: 2 << 20}}))
}
