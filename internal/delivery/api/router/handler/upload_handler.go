package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"storeradar/internal/delivery/api/response"
	"storeradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const uploadFormField = "file"

// UploadHandlerParams holds dependencies for UploadHandler, injected by Fx.
type UploadHandlerParams struct {
	fx.In

	UploadUC usecase.UploadUsecase
	Logger   *slog.Logger
}

// UploadHandler accepts and serves uploaded images.
type UploadHandler struct {
	uploadUC usecase.UploadUsecase
	logger   *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler.
func NewUploadHandler(params UploadHandlerParams) *UploadHandler {
	return &UploadHandler{
		uploadUC: params.UploadUC,
		logger:   params.Logger,
	}
}

// Upload stores the multipart "file" field under the kind in the path.
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile(uploadFormField)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "file field is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return errors.Wrap(err, "failed to read uploaded file")
	}

	output, err := h.uploadUC.UploadImage(c.Request().Context(), c.Param("kind"), fileHeader.Filename, content)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, output)
}

// Serve streams a stored upload.
func (h *UploadHandler) Serve(c echo.Context) error {
	object, err := h.uploadUC.Open(c.Request().Context(), c.Param("kind"), c.Param("name"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer object.Body.Close()

	if object.Size > 0 {
		c.Response().Header().Set(echo.HeaderContentLength, strconv.FormatInt(object.Size, 10))
	}

	return c.Stream(http.StatusOK, object.ContentType, object.Body)
}
