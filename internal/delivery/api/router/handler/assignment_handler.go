package handler

import (
	"log/slog"
	"net/http"
	"time"

	"storeradar/internal/delivery/api/middleware"
	"storeradar/internal/delivery/api/response"
	"storeradar/internal/domain/entity"
	"storeradar/internal/usecase"
	"storeradar/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	xlsxContentType    = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	assignmentsXLSName = "assignments.xlsx"
)

// AssignmentHandlerParams holds dependencies for AssignmentHandler, injected by Fx.
type AssignmentHandlerParams struct {
	fx.In

	AssignmentUC usecase.AssignmentUsecase
	Logger       *slog.Logger
}

// AssignmentHandler serves visit planning.
type AssignmentHandler struct {
	assignmentUC usecase.AssignmentUsecase
	logger       *slog.Logger
}

// NewAssignmentHandler is the constructor for AssignmentHandler.
func NewAssignmentHandler(params AssignmentHandlerParams) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentUC: params.AssignmentUC,
		logger:       params.Logger,
	}
}

// AssignRequest assigns stores to an agent for one date.
type AssignRequest struct {
	UserID       uuid.UUID `json:"userId" validate:"required"`
	StoreTokens  []string  `json:"storeTokens" validate:"required,min=1,dive,required"`
	AssignedDate string    `json:"assignedDate" validate:"required,isodate"`
	Notes        *string   `json:"notes"`
}

// AssignmentResponse is an assignment with Gregorian and Jalali dates.
type AssignmentResponse struct {
	ID                 int64      `json:"id"`
	UserID             uuid.UUID  `json:"userId"`
	StoreToken         string     `json:"storeToken"`
	AssignedDate       string     `json:"assignedDate"`
	AssignedDateJalali string     `json:"assignedDateJalali"`
	VisitDate          *string    `json:"visitDate"`
	VisitDateJalali    string     `json:"visitDateJalali,omitempty"`
	Status             string     `json:"status"`
	Notes              *string    `json:"notes"`
	AssignedBy         *uuid.UUID `json:"assignedBy"`
}

// AssignedStoreResponse is an assignment joined with its store and agent.
type AssignedStoreResponse struct {
	AssignmentResponse
	Store *entity.StoreView   `json:"store"`
	User  *entity.UserSummary `json:"user,omitempty"`
}

func newAssignmentResponse(a *entity.Assignment) AssignmentResponse {
	resp := AssignmentResponse{
		ID:                 a.ID,
		UserID:             a.UserID,
		StoreToken:         a.StoreToken,
		AssignedDate:       a.AssignedDate.Format(isoDateLayout),
		AssignedDateJalali: util.JalaliDate(a.AssignedDate),
		VisitDateJalali:    util.JalaliDatePtr(a.VisitDate),
		Status:             a.Status,
		Notes:              a.Notes,
		AssignedBy:         a.AssignedBy,
	}
	if a.VisitDate != nil {
		visit := a.VisitDate.Format(isoDateLayout)
		resp.VisitDate = &visit
	}

	return resp
}

// Assign writes assignments for every known store token.
func (h *AssignmentHandler) Assign(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req AssignRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assignment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	assignedDate, err := parseISODate(req.AssignedDate)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "assignedDate must be YYYY-MM-DD")
	}

	out, err := h.assignmentUC.Assign(c.Request().Context(), userID, &usecase.AssignInput{
		UserID:       req.UserID,
		StoreTokens:  req.StoreTokens,
		AssignedDate: assignedDate,
		Notes:        req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	assignments := make([]AssignmentResponse, 0, len(out.Assignments))
	for _, a := range out.Assignments {
		assignments = append(assignments, newAssignmentResponse(a))
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"message":       out.Message,
		"requested":     out.Requested,
		"assigned":      len(assignments),
		"assignments":   assignments,
		"skippedTokens": out.SkippedTokens,
		"failedTokens":  out.FailedTokens,
	})
}

// List returns assignments with their stores. Without ?userId= the caller's own are listed.
func (h *AssignmentHandler) List(c echo.Context) error {
	filter, ok, err := h.filter(c)
	if !ok {
		return err
	}

	rows, err := h.assignmentUC.List(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := make([]AssignedStoreResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, AssignedStoreResponse{
			AssignmentResponse: newAssignmentResponse(&rows[i].Assignment),
			Store:              &rows[i].Store,
			User:               rows[i].User,
		})
	}

	return response.Success(c, http.StatusOK, resp)
}

// Export returns the filtered assignments as an Excel workbook.
func (h *AssignmentHandler) Export(c echo.Context) error {
	filter, ok, err := h.filter(c)
	if !ok {
		return err
	}

	report, err := h.assignmentUC.Export(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+assignmentsXLSName+`"`)

	return c.Blob(http.StatusOK, xlsxContentType, report)
}

// filter reads userId, assignedDate and status. When ok is false the error
// response has been written and err is its result.
func (h *AssignmentHandler) filter(c echo.Context) (filter entity.AssignmentFilter, ok bool, err error) {
	currentUserID, found := middleware.GetUserID(c)
	if !found {
		return filter, false, unauthorized(c)
	}

	filter.UserID = &currentUserID
	if raw := c.QueryParam("userId"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			return filter, false, response.BadRequest(c, "INVALID_ID", "Invalid user ID")
		}
		filter.UserID = &userID
	}

	if raw := c.QueryParam("assignedDate"); raw != "" {
		date, err := time.Parse(isoDateLayout, raw)
		if err != nil {
			return filter, false, response.BadRequest(c, "VALIDATION_ERROR", "assignedDate must be YYYY-MM-DD")
		}
		filter.AssignedDate = &date
	}

	filter.Status = queryString(c, "status")

	return filter, true, nil
}
