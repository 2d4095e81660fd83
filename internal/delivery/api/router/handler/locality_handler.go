package handler

import (
	"log/slog"
	"net/http"

	"storeradar/internal/delivery/api/response"
	"storeradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocalityHandlerParams holds dependencies for LocalityHandler, injected by Fx.
type LocalityHandlerParams struct {
	fx.In

	LocalityUC usecase.LocalityUsecase
	Logger     *slog.Logger
}

// LocalityHandler resolves addresses and neighborhoods for coordinates.
type LocalityHandler struct {
	localityUC usecase.LocalityUsecase
	logger     *slog.Logger
}

// NewLocalityHandler is the constructor for LocalityHandler.
func NewLocalityHandler(params LocalityHandlerParams) *LocalityHandler {
	return &LocalityHandler{
		localityUC: params.LocalityUC,
		logger:     params.Logger,
	}
}

// Address returns the address at lat/lng.
func (h *LocalityHandler) Address(c echo.Context) error {
	point, present, ok := queryPoint(c)
	if !present || !ok {
		return response.BadRequest(c, "INVALID_COORDINATES", "lat and lng are required and must be valid coordinates")
	}

	result, err := h.localityUC.GetAddress(c.Request().Context(), point)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// Neighborhood returns the neighborhood at lat/lng.
func (h *LocalityHandler) Neighborhood(c echo.Context) error {
	point, present, ok := queryPoint(c)
	if !present || !ok {
		return response.BadRequest(c, "INVALID_COORDINATES", "lat and lng are required and must be valid coordinates")
	}

	result, err := h.localityUC.GetNeighborhood(c.Request().Context(), point)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
