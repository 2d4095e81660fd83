package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"storeradar/internal/delivery/api/middleware"
	"storeradar/internal/delivery/api/response"
	"storeradar/internal/domain/entity"
	"storeradar/internal/usecase"
	"storeradar/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VisitHandlerParams holds dependencies for VisitHandler, injected by Fx.
type VisitHandlerParams struct {
	fx.In

	VisitUC usecase.VisitUsecase
	Logger  *slog.Logger
}

// VisitHandler serves visit evidence.
type VisitHandler struct {
	visitUC usecase.VisitUsecase
	logger  *slog.Logger
}

// NewVisitHandler is the constructor for VisitHandler.
func NewVisitHandler(params VisitHandlerParams) *VisitHandler {
	return &VisitHandler{
		visitUC: params.VisitUC,
		logger:  params.Logger,
	}
}

// SubmitVisitRequest records a visit of an assignment.
type SubmitVisitRequest struct {
	AssignmentID   int64           `json:"assignmentId" validate:"required,gt=0"`
	VisitDate      string          `json:"visitDate" validate:"required,isodate"`
	VisitTime      *string         `json:"visitTime" validate:"omitempty,clock"`
	ImageURLs      []string        `json:"imageUrls"`
	AdditionalInfo json.RawMessage `json:"additionalInfo"`
	Latitude       *float64        `json:"latitude"`
	Longitude      *float64        `json:"longitude"`
}

// VisitResponse is a recorded visit.
type VisitResponse struct {
	ID              int64           `json:"id"`
	AssignmentID    int64           `json:"assignmentId"`
	UserID          uuid.UUID       `json:"userId"`
	StoreToken      string          `json:"storeToken"`
	StoreName       string          `json:"storeName,omitempty"`
	VisitDate       string          `json:"visitDate"`
	VisitDateJalali string          `json:"visitDateJalali"`
	VisitTime       *string         `json:"visitTime"`
	Latitude        *float64        `json:"latitude"`
	Longitude       *float64        `json:"longitude"`
	ImageURLs       []string        `json:"imageUrls"`
	AdditionalInfo  json.RawMessage `json:"additionalInfo,omitempty"`
	CreatedAt       string          `json:"createdAt"`
}

func newVisitResponse(v *entity.VisitRecord) VisitResponse {
	resp := VisitResponse{
		ID:              v.ID,
		AssignmentID:    v.AssignmentID,
		UserID:          v.UserID,
		StoreToken:      v.StoreToken,
		StoreName:       v.StoreName,
		VisitDate:       v.VisitDate.Format(isoDateLayout),
		VisitDateJalali: util.JalaliDate(v.VisitDate),
		VisitTime:       v.VisitTime,
		ImageURLs:       v.ImageURLs,
		AdditionalInfo:  v.AdditionalInfo,
		CreatedAt:       util.JalaliDateTime(v.CreatedAt),
	}
	if v.Location != nil {
		resp.Latitude, resp.Longitude = &v.Location[1], &v.Location[0]
	}

	return resp
}

// Submit records a visit and completes its assignment.
func (h *VisitHandler) Submit(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req SubmitVisitRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid visit input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	visitDate, err := parseISODate(req.VisitDate)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "visitDate must be YYYY-MM-DD")
	}

	location, ok := optionalPoint(req.Latitude, req.Longitude)
	if !ok {
		return response.BadRequest(c, "INVALID_COORDINATES", "latitude and longitude must be valid coordinates")
	}

	visit, err := h.visitUC.Submit(c.Request().Context(), userID, &usecase.SubmitVisitInput{
		AssignmentID:   req.AssignmentID,
		VisitDate:      visitDate,
		VisitTime:      req.VisitTime,
		ImageURLs:      req.ImageURLs,
		AdditionalInfo: req.AdditionalInfo,
		Location:       location,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newVisitResponse(visit))
}

// List returns visits filtered by assignmentId, storeId, storeToken or userId.
func (h *VisitHandler) List(c echo.Context) error {
	var filter entity.VisitFilter

	assignmentID, ok := queryInt64(c, "assignmentId")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid assignment ID")
	}
	storeID, ok := queryInt64(c, "storeId")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}
	filter.AssignmentID, filter.StoreID = assignmentID, storeID
	filter.StoreToken = queryString(c, "storeToken")

	if raw := c.QueryParam("userId"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
		}
		filter.UserID = &userID
	}

	visits, err := h.visitUC.List(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := make([]VisitResponse, 0, len(visits))
	for _, v := range visits {
		resp = append(resp, newVisitResponse(v))
	}

	return response.Success(c, http.StatusOK, resp)
}
