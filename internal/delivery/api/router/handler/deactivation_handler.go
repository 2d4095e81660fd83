package handler

import (
	"log/slog"
	"net/http"

	"storeradar/internal/delivery/api/middleware"
	"storeradar/internal/delivery/api/response"
	"storeradar/internal/domain/entity"
	"storeradar/internal/usecase"
	"storeradar/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeactivationHandlerParams holds dependencies for DeactivationHandler, injected by Fx.
type DeactivationHandlerParams struct {
	fx.In

	DeactivationUC usecase.DeactivationUsecase
	Logger         *slog.Logger
}

// DeactivationHandler serves the store deactivation workflow.
type DeactivationHandler struct {
	deactivationUC usecase.DeactivationUsecase
	logger         *slog.Logger
}

// NewDeactivationHandler is the constructor for DeactivationHandler.
func NewDeactivationHandler(params DeactivationHandlerParams) *DeactivationHandler {
	return &DeactivationHandler{
		deactivationUC: params.DeactivationUC,
		logger:         params.Logger,
	}
}

// CreateDeactivationRequest asks to take a store out of listings.
type CreateDeactivationRequest struct {
	StoreID int64   `json:"storeId" validate:"required,gt=0"`
	Reason  *string `json:"reason" validate:"omitempty,max=1000"`
}

// ReviewDeactivationRequest approves or rejects a pending request.
type ReviewDeactivationRequest struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
}

// DeactivationResponse is a deactivation request with store and user details.
type DeactivationResponse struct {
	ID               int64               `json:"id"`
	StoreID          int64               `json:"storeId"`
	StoreToken       string              `json:"storeToken"`
	StoreName        *string             `json:"storeName"`
	StoreAddress     *string             `json:"storeAddress"`
	Reason           *string             `json:"reason"`
	Status           string              `json:"status"`
	RequestedBy      *entity.UserSummary `json:"requestedBy,omitempty"`
	ReviewedBy       *entity.UserSummary `json:"reviewedBy,omitempty"`
	ReviewedAtJalali string              `json:"reviewedAtJalali,omitempty"`
	CreatedAtJalali  string              `json:"createdAtJalali"`
}

// Create files a deactivation request.
func (h *DeactivationHandler) Create(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req CreateDeactivationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid deactivation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	out, err := h.deactivationUC.Create(c.Request().Context(), userID, req.StoreID, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	body := map[string]any{"success": out.Accepted, "message": out.Message}
	if !out.Accepted {
		return response.Success(c, http.StatusOK, body)
	}
	body["requestId"] = out.RequestID

	return response.Success(c, http.StatusCreated, body)
}

// Review approves or rejects the request in the path.
func (h *DeactivationHandler) Review(c echo.Context) error {
	reviewerID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	requestID, ok := pathInt64(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid request ID")
	}

	var req ReviewDeactivationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	out, err := h.deactivationUC.Review(c.Request().Context(), reviewerID, requestID, req.Action)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": out.Status, "message": out.Message})
}

// List returns deactivation requests, optionally filtered by ?status=.
func (h *DeactivationHandler) List(c echo.Context) error {
	requests, err := h.deactivationUC.List(c.Request().Context(), queryString(c, "status"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := make([]DeactivationResponse, 0, len(requests))
	for _, r := range requests {
		resp = append(resp, DeactivationResponse{
			ID:               r.ID,
			StoreID:          r.StoreID,
			StoreToken:       r.StoreToken,
			StoreName:        r.StoreName,
			StoreAddress:     r.StoreAddress,
			Reason:           r.Reason,
			Status:           r.Status,
			RequestedBy:      r.Requester,
			ReviewedBy:       r.Reviewer,
			ReviewedAtJalali: util.JalaliDatePtr(r.ReviewedAt),
			CreatedAtJalali:  util.JalaliDateTime(r.CreatedAt),
		})
	}

	return response.Success(c, http.StatusOK, resp)
}
