// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"
	"strconv"

	"storeradar/config"
	"storeradar/internal/delivery/api/middleware"
	"storeradar/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

const (
	uploadRoute        = "/api/v1/uploads/:kind"
	defaultUploadLimit = "5MB"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	StoreHandler        *handler.StoreHandler
	LocalityHandler     *handler.LocalityHandler
	CommentHandler      *handler.CommentHandler
	UploadHandler       *handler.UploadHandler
	GroupHandler        *handler.GroupHandler
	AssignmentHandler   *handler.AssignmentHandler
	VisitHandler        *handler.VisitHandler
	DeactivationHandler *handler.DeactivationHandler
	DeviceHandler       *handler.DeviceHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	storeHandler        *handler.StoreHandler
	localityHandler     *handler.LocalityHandler
	commentHandler      *handler.CommentHandler
	uploadHandler       *handler.UploadHandler
	groupHandler        *handler.GroupHandler
	assignmentHandler   *handler.AssignmentHandler
	visitHandler        *handler.VisitHandler
	deactivationHandler *handler.DeactivationHandler
	deviceHandler       *handler.DeviceHandler
	authMiddleware      *middleware.AuthMiddleware
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		storeHandler:        params.StoreHandler,
		localityHandler:     params.LocalityHandler,
		commentHandler:      params.CommentHandler,
		uploadHandler:       params.UploadHandler,
		groupHandler:        params.GroupHandler,
		assignmentHandler:   params.AssignmentHandler,
		visitHandler:        params.VisitHandler,
		deactivationHandler: params.DeactivationHandler,
		deviceHandler:       params.DeviceHandler,
		authMiddleware:      params.AuthMiddleware,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Stored uploads are served without authentication
	e.GET("/uploads/:kind/:name", r.uploadHandler.Serve)

	apiV1 := e.Group("/api/v1")

	// Auth routes
	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Public directory reads
	apiV1.GET("/stores/nearby", r.storeHandler.Nearby)
	apiV1.GET("/stores/by-neighborhood", r.storeHandler.ByNeighborhood)
	apiV1.GET("/stores/:id/comments", r.commentHandler.List)
	apiV1.GET("/stores/:id/groups", r.groupHandler.ListByStore)
	apiV1.GET("/store-categories", r.storeHandler.Categories)
	apiV1.GET("/store-groups", r.groupHandler.List)
	apiV1.GET("/store-groups/:code", r.groupHandler.Get)

	localityGroup := apiV1.Group("/locality")
	{
		localityGroup.GET("/address", r.localityHandler.Address)
		localityGroup.GET("/neighborhood", r.localityHandler.Neighborhood)
	}

	// Everything below requires an access token
	secured := apiV1.Group("", r.authMiddleware.Authenticate)

	secured.PUT("/users/me/location", r.authHandler.UpdateLocation)

	storesGroup := secured.Group("/stores")
	{
		storesGroup.POST("", r.storeHandler.Register)
		storesGroup.POST("/scan", r.storeHandler.ScanQRCode)
		storesGroup.PATCH("/:id/workshop", r.storeHandler.UpdateWorkshop)
		storesGroup.GET("/:token/qr", r.storeHandler.QRCode)
		storesGroup.POST("/:id/comments", r.commentHandler.Create)
	}

	// Uploads are larger than the default body limit
	uploadLimit := echomiddleware.BodyLimit(uploadBodyLimit(r.config))
	e.POST(uploadRoute, r.uploadHandler.Upload, r.authMiddleware.Authenticate, uploadLimit)

	groupsGroup := secured.Group("/store-groups")
	{
		groupsGroup.POST("", r.groupHandler.Create)
		groupsGroup.DELETE("/:code", r.groupHandler.Delete)
	}

	assignmentsGroup := secured.Group("/assignments")
	{
		assignmentsGroup.POST("", r.assignmentHandler.Assign)
		assignmentsGroup.GET("", r.assignmentHandler.List)
		assignmentsGroup.GET("/export", r.assignmentHandler.Export)
	}

	visitsGroup := secured.Group("/visits")
	{
		visitsGroup.POST("", r.visitHandler.Submit)
		visitsGroup.GET("", r.visitHandler.List)
	}

	deactivationGroup := secured.Group("/deactivation-requests")
	{
		deactivationGroup.POST("", r.deactivationHandler.Create)
		deactivationGroup.GET("", r.deactivationHandler.List)
		deactivationGroup.POST("/:id/review", r.deactivationHandler.Review)
	}

	// Device management routes
	devicesGroup := secured.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetUserDevices)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}

// IsUploadRequest reports whether c targets the upload endpoint, which carries its own body limit.
func IsUploadRequest(c echo.Context) bool {
	return c.Request().Method == http.MethodPost && c.Path() == uploadRoute
}

func uploadBodyLimit(cfg *config.Config) string {
	if cfg.Storage == nil || cfg.Storage.MaxUploadSize <= 0 {
		return defaultUploadLimit
	}

	// One extra KB leaves room for the multipart envelope.
	return strconv.FormatInt(cfg.Storage.MaxUploadSize/1024+1, 10) + "KB"
}
