package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"storeradar/internal/delivery/api/middleware"
	"storeradar/internal/delivery/api/response"
	"storeradar/internal/domain/entity"
	"storeradar/internal/usecase"
	"storeradar/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StoreHandlerParams holds dependencies for StoreHandler, injected by Fx.
type StoreHandlerParams struct {
	fx.In

	StoreUC usecase.StoreUsecase
	Logger  *slog.Logger
}

// StoreHandler serves the store directory.
type StoreHandler struct {
	storeUC usecase.StoreUsecase
	logger  *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler.
func NewStoreHandler(params StoreHandlerParams) *StoreHandler {
	return &StoreHandler{
		storeUC: params.StoreUC,
		logger:  params.Logger,
	}
}

// RegisterStoreRequest represents a manually registered store.
type RegisterStoreRequest struct {
	Name          string          `json:"name" validate:"required,max=255"`
	Address       string          `json:"address" validate:"required"`
	Lat           *float64        `json:"lat" validate:"omitempty,latitude"`
	Lng           *float64        `json:"lng" validate:"omitempty,longitude"`
	Category      string          `json:"category" validate:"required"`
	CategorySlug  *string         `json:"categorySlug"`
	Phone         *string         `json:"phone"`
	City          *string         `json:"city"`
	Province      *string         `json:"province"`
	PlateNumber   *string         `json:"plateNumber"`
	PostalCode    *string         `json:"postalCode"`
	IsActive      *bool           `json:"isActive"`
	ImageURLs     []string        `json:"imageUrls"`
	PlaceFullData json.RawMessage `json:"placeFullData"`
}

// UpdateWorkshopRequest toggles the workshop flag of a store.
type UpdateWorkshopRequest struct {
	HasWorkshop *bool `json:"hasWorkshop" validate:"required"`
}

// ScanQRRequest carries the content read from a store plate.
type ScanQRRequest struct {
	Content string `json:"content" validate:"required"`
}

// Center is the echoed query point of a proximity search.
type Center struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// NearbyResponse is the proximity search result with its query point.
type NearbyResponse struct {
	*usecase.NearbyResult
	Center Center `json:"center"`
}

// StoreResponse is a persisted store.
type StoreResponse struct {
	ID           int64    `json:"id"`
	Token        string   `json:"token"`
	Name         *string  `json:"name"`
	Address      *string  `json:"address"`
	Lat          *float64 `json:"lat"`
	Lng          *float64 `json:"lng"`
	Category     *string  `json:"category"`
	CategorySlug *string  `json:"categorySlug"`
	City         *string  `json:"city"`
	Province     *string  `json:"province"`
	Phone        *string  `json:"phone"`
	PlateNumber  *string  `json:"plateNumber"`
	PostalCode   *string  `json:"postalCode"`
	ImageURLs    []string `json:"imageUrls"`
	IsActive     bool     `json:"isActive"`
	HasWorkshop  bool     `json:"hasWorkshop"`
	CreatedAt    string   `json:"createdAt"`
}

// CategoryResponse is a main category with its active subcategories.
type CategoryResponse struct {
	ID            int64                 `json:"id"`
	Title         string                `json:"title"`
	Slug          string                `json:"slug"`
	PreviewCount  int                   `json:"previewCount"`
	SubCategories []SubCategoryResponse `json:"subCategories"`
}

// SubCategoryResponse is one subcategory.
type SubCategoryResponse struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	Slug string  `json:"slug"`
	Icon *string `json:"icon"`
}

func newStoreResponse(s *entity.Store) *StoreResponse {
	return &StoreResponse{
		ID:           s.ID,
		Token:        s.Token,
		Name:         s.Name,
		Address:      s.Address,
		Lat:          s.Lat,
		Lng:          s.Lng,
		Category:     s.CategoryDisplay,
		CategorySlug: s.CategorySlug,
		City:         s.CityName,
		Province:     s.ProvinceName,
		Phone:        s.Phone,
		PlateNumber:  s.PlateNumber,
		PostalCode:   s.PostalCode,
		ImageURLs:    s.ImageURLs,
		IsActive:     s.IsActive,
		HasWorkshop:  s.HasWorkshop,
		CreatedAt:    util.JalaliDateTime(s.CreatedAt),
	}
}

// Nearby lists the stores within maxDistance meters of lat/lng, nearest first.
func (h *StoreHandler) Nearby(c echo.Context) error {
	point, present, ok := queryPoint(c)
	if !present || !ok {
		return response.BadRequest(c, "INVALID_COORDINATES", "lat and lng are required and must be valid coordinates")
	}

	query := usecase.NearbyQuery{
		Center:       point,
		Category:     strings.TrimSpace(c.QueryParam("category")),
		City:         strings.TrimSpace(c.QueryParam("city")),
		Neighborhood: strings.TrimSpace(c.QueryParam("neighborhood")),
	}
	if raw := c.QueryParam("maxDistance"); raw != "" {
		radius, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_RADIUS", "maxDistance must be a number")
		}
		query.RadiusMeters = &radius
	}

	result, err := h.storeUC.FindNearby(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, NearbyResponse{
		NearbyResult: result,
		Center:       Center{Lat: result.Center.Lat(), Lng: result.Center.Lon()},
	})
}

// ByNeighborhood lists the stores of one neighborhood.
func (h *StoreHandler) ByNeighborhood(c echo.Context) error {
	neighborhood := strings.TrimSpace(c.QueryParam("neighborhood"))
	if neighborhood == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "neighborhood is required")
	}

	point, present, ok := queryPoint(c)
	if !ok {
		return response.BadRequest(c, "INVALID_COORDINATES", "lat and lng must be valid coordinates")
	}

	query := usecase.NeighborhoodQuery{
		Neighborhood: neighborhood,
		City:         strings.TrimSpace(c.QueryParam("city")),
	}
	if present {
		query.Center = &point
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return response.BadRequest(c, "VALIDATION_ERROR", "limit must be a positive integer")
		}
		query.Limit = limit
	}

	result, err := h.storeUC.ListByNeighborhood(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// Categories returns the category catalog.
func (h *StoreHandler) Categories(c echo.Context) error {
	categories, err := h.storeUC.Categories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := make([]CategoryResponse, 0, len(categories))
	for _, main := range categories {
		item := CategoryResponse{
			ID:            main.ID,
			Title:         main.Title,
			Slug:          main.Slug,
			PreviewCount:  main.PreviewCount,
			SubCategories: make([]SubCategoryResponse, 0, len(main.SubCategories)),
		}
		for _, sub := range main.SubCategories {
			item.SubCategories = append(item.SubCategories, SubCategoryResponse{
				ID:   sub.ID,
				Name: sub.Name,
				Slug: sub.Slug,
				Icon: sub.Icon,
			})
		}
		resp = append(resp, item)
	}

	return response.Success(c, http.StatusOK, resp)
}

// Register stores a manually entered store.
func (h *StoreHandler) Register(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req RegisterStoreRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	store, err := h.storeUC.Register(c.Request().Context(), userID, &usecase.RegisterStoreInput{
		Name:          req.Name,
		Address:       req.Address,
		Lat:           req.Lat,
		Lng:           req.Lng,
		Category:      req.Category,
		CategorySlug:  req.CategorySlug,
		Phone:         req.Phone,
		City:          req.City,
		Province:      req.Province,
		PlateNumber:   req.PlateNumber,
		PostalCode:    req.PostalCode,
		IsActive:      req.IsActive,
		ImageURLs:     req.ImageURLs,
		PlaceFullData: req.PlaceFullData,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newStoreResponse(store))
}

// UpdateWorkshop sets the workshop flag of a store.
func (h *StoreHandler) UpdateWorkshop(c echo.Context) error {
	storeID, ok := pathInt64(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	var req UpdateWorkshopRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid workshop input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.storeUC.UpdateWorkshop(c.Request().Context(), storeID, *req.HasWorkshop); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"id": storeID, "hasWorkshop": *req.HasWorkshop})
}

// QRCode renders the plate QR code of a store as PNG.
func (h *StoreHandler) QRCode(c echo.Context) error {
	png, err := h.storeUC.StoreQRCode(c.Request().Context(), c.Param("token"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ScanQRCode resolves the store printed on a scanned plate.
func (h *StoreHandler) ScanQRCode(c echo.Context) error {
	var req ScanQRRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid QR input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	store, err := h.storeUC.ResolveQRCode(c.Request().Context(), req.Content)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, store)
}
