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

// CommentHandlerParams holds dependencies for CommentHandler, injected by Fx.
type CommentHandlerParams struct {
	fx.In

	CommentUC usecase.CommentUsecase
	Logger    *slog.Logger
}

// CommentHandler serves store comments.
type CommentHandler struct {
	commentUC usecase.CommentUsecase
	logger    *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler.
func NewCommentHandler(params CommentHandlerParams) *CommentHandler {
	return &CommentHandler{
		commentUC: params.CommentUC,
		logger:    params.Logger,
	}
}

// CreateCommentRequest is a new comment on the store in the path.
type CreateCommentRequest struct {
	Comment   string   `json:"comment" validate:"required"`
	Rating    *int     `json:"rating" validate:"omitempty,min=1,max=10"`
	UserLat   *float64 `json:"userLat"`
	UserLng   *float64 `json:"userLng"`
	ImageURLs []string `json:"imageUrls"`
}

// CommentResponse is a comment with its author.
type CommentResponse struct {
	ID        int64               `json:"id"`
	StoreID   int64               `json:"storeId"`
	Comment   string              `json:"comment"`
	Rating    *int                `json:"rating"`
	UserLat   *float64            `json:"userLat"`
	UserLng   *float64            `json:"userLng"`
	ImageURLs []string            `json:"imageUrls"`
	Author    *entity.UserSummary `json:"author,omitempty"`
	CreatedAt string              `json:"createdAt"`
}

func newCommentResponse(cm *entity.Comment) CommentResponse {
	resp := CommentResponse{
		ID:        cm.ID,
		StoreID:   cm.StoreID,
		Comment:   cm.Text,
		Rating:    cm.Rating,
		ImageURLs: cm.ImageURLs,
		Author:    cm.Author,
		CreatedAt: util.JalaliDateTime(cm.CreatedAt),
	}
	if cm.UserLocation != nil {
		resp.UserLat, resp.UserLng = &cm.UserLocation[1], &cm.UserLocation[0]
	}

	return resp
}

// Create adds a comment to a store.
func (h *CommentHandler) Create(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	storeID, ok := pathInt64(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	var req CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	location, ok := optionalPoint(req.UserLat, req.UserLng)
	if !ok {
		return response.BadRequest(c, "INVALID_COORDINATES", "userLat and userLng must be valid coordinates")
	}

	comment, err := h.commentUC.Create(c.Request().Context(), userID, &usecase.CreateCommentInput{
		StoreID:      storeID,
		Text:         req.Comment,
		Rating:       req.Rating,
		UserLocation: location,
		ImageURLs:    req.ImageURLs,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newCommentResponse(comment))
}

// List returns the comments of a store, newest first.
func (h *CommentHandler) List(c echo.Context) error {
	storeID, ok := pathInt64(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	comments, err := h.commentUC.ListByStore(c.Request().Context(), storeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := make([]CommentResponse, 0, len(comments))
	for _, cm := range comments {
		resp = append(resp, newCommentResponse(cm))
	}

	return response.Success(c, http.StatusOK, resp)
}
