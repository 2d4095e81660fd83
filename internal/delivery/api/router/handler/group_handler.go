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

// GroupHandlerParams holds dependencies for GroupHandler, injected by Fx.
type GroupHandlerParams struct {
	fx.In

	GroupUC usecase.GroupUsecase
	Logger  *slog.Logger
}

// GroupHandler serves store groups.
type GroupHandler struct {
	groupUC usecase.GroupUsecase
	logger  *slog.Logger
}

// NewGroupHandler is the constructor for GroupHandler.
func NewGroupHandler(params GroupHandlerParams) *GroupHandler {
	return &GroupHandler{
		groupUC: params.GroupUC,
		logger:  params.Logger,
	}
}

// CreateGroupRequest groups stores, into an existing group when groupCode is set.
type CreateGroupRequest struct {
	StoreIDs  []int64 `json:"storeIds" validate:"required,min=1,dive,gt=0"`
	GroupCode *string `json:"groupCode"`
	GroupName *string `json:"groupName" validate:"omitempty,max=255"`
}

// GroupResponse is a group and optionally its members.
type GroupResponse struct {
	Code       string           `json:"groupCode"`
	Name       *string          `json:"groupName"`
	StoreCount int64            `json:"storeCount"`
	CreatedAt  string           `json:"createdAt"`
	Members    []MemberResponse `json:"members,omitempty"`
	AddedCount *int             `json:"addedCount,omitempty"`
}

// MemberResponse is one store of a group.
type MemberResponse struct {
	StoreID   int64   `json:"storeId"`
	IsPrimary bool    `json:"isPrimary"`
	Name      *string `json:"name,omitempty"`
	Address   *string `json:"address,omitempty"`
	Token     string  `json:"token,omitempty"`
}

func newGroupResponse(g *entity.StoreGroup) GroupResponse {
	return GroupResponse{
		Code:       g.Code,
		Name:       g.Name,
		StoreCount: g.StoreCount,
		CreatedAt:  util.JalaliDateTime(g.CreatedAt),
	}
}

func newGroupOutputResponse(out *usecase.GroupOutput) GroupResponse {
	resp := newGroupResponse(out.Group)
	resp.Members = make([]MemberResponse, 0, len(out.Members))
	for _, m := range out.Members {
		member := MemberResponse{StoreID: m.StoreID, IsPrimary: m.IsPrimary}
		if m.Store != nil {
			member.Name, member.Address, member.Token = m.Store.Name, m.Store.Address, m.Store.Token
		}
		resp.Members = append(resp.Members, member)
	}
	if resp.StoreCount == 0 {
		resp.StoreCount = int64(len(out.Members))
	}

	return resp
}

func newGroupListResponse(groups []*entity.StoreGroup) []GroupResponse {
	resp := make([]GroupResponse, 0, len(groups))
	for _, g := range groups {
		resp = append(resp, newGroupResponse(g))
	}

	return resp
}

// Create creates a group or adds stores to an existing one.
func (h *GroupHandler) Create(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req CreateGroupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid group input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	out, err := h.groupUC.Create(c.Request().Context(), userID, &usecase.CreateGroupInput{
		StoreIDs:  req.StoreIDs,
		GroupCode: req.GroupCode,
		GroupName: req.GroupName,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := newGroupOutputResponse(out)
	resp.AddedCount = &out.AddedCount

	return response.Success(c, http.StatusCreated, resp)
}

// List returns all groups, or the groups of one store with ?storeId=.
func (h *GroupHandler) List(c echo.Context) error {
	storeID, ok := queryInt64(c, "storeId")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	var (
		groups []*entity.StoreGroup
		err    error
	)
	if storeID != nil {
		groups, err = h.groupUC.ListByStore(c.Request().Context(), *storeID)
	} else {
		groups, err = h.groupUC.List(c.Request().Context())
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newGroupListResponse(groups))
}

// ListByStore returns the groups a store belongs to.
func (h *GroupHandler) ListByStore(c echo.Context) error {
	storeID, ok := pathInt64(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	groups, err := h.groupUC.ListByStore(c.Request().Context(), storeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newGroupListResponse(groups))
}

// Get returns one group with its members, primary first.
func (h *GroupHandler) Get(c echo.Context) error {
	out, err := h.groupUC.Get(c.Request().Context(), c.Param("code"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newGroupOutputResponse(out))
}

// Delete removes the store in ?storeId= from the group, or the whole group.
func (h *GroupHandler) Delete(c echo.Context) error {
	storeID, ok := queryInt64(c, "storeId")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	if err := h.groupUC.Delete(c.Request().Context(), c.Param("code"), storeID); err != nil {
		return response.HandleAppError(c, err)
	}

	message := "Group deleted"
	if storeID != nil {
		message = "Store removed from group"
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": message})
}
