package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"storeradar/internal/delivery/api/validator"
	domainerrors "storeradar/internal/domain/errors"
	"storeradar/internal/domain/service"
	mockUC "storeradar/internal/mocks/usecase"
	"storeradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeactivationHandler_Create(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		deactivationUC := mockUC.NewMockDeactivationUsecase(t)
		h := NewDeactivationHandler(DeactivationHandlerParams{DeactivationUC: deactivationUC, Logger: newDiscardLogger()})
		userID := uuid.New()
		c, rec := newTestContext(http.MethodPost, "/api/v1/deactivation-requests", `{"storeId":5}`, &userID)

		deactivationUC.EXPECT().Create(mock.Anything, userID, int64(5), (*string)(nil)).
			Return(&usecase.DeactivationOutput{Accepted: true, Message: "ok", RequestID: 31}, nil)

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("pending request is not an error", func(t *testing.T) {
		deactivationUC := mockUC.NewMockDeactivationUsecase(t)
		h := NewDeactivationHandler(DeactivationHandlerParams{DeactivationUC: deactivationUC, Logger: newDiscardLogger()})
		userID := uuid.New()
		c, rec := newTestContext(http.MethodPost, "/api/v1/deactivation-requests", `{"storeId":5}`, &userID)

		deactivationUC.EXPECT().Create(mock.Anything, userID, int64(5), (*string)(nil)).
			Return(&usecase.DeactivationOutput{Accepted: false, Message: "pending"}, nil)

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var out map[string]any
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &out))
		assert.Equal(t, false, out["success"])
	})
}

func TestDeactivationHandler_Review_UnknownAction(t *testing.T) {
	h := NewDeactivationHandler(DeactivationHandlerParams{DeactivationUC: mockUC.NewMockDeactivationUsecase(t), Logger: newDiscardLogger()})
	userID := uuid.New()
	c, rec := newTestContext(http.MethodPost, "/api/v1/deactivation-requests/31/review", `{"action":"archive"}`, &userID)
	c.SetParamNames("id")
	c.SetParamValues("31")

	require.NoError(t, h.Review(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVisitHandler_Submit(t *testing.T) {
	t.Run("half a location", func(t *testing.T) {
		h := NewVisitHandler(VisitHandlerParams{VisitUC: mockUC.NewMockVisitUsecase(t), Logger: newDiscardLogger()})
		userID := uuid.New()
		c, rec := newTestContext(http.MethodPost, "/api/v1/visits", `{"assignmentId":11,"visitDate":"2024-05-02","latitude":35.7}`, &userID)

		require.NoError(t, h.Submit(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("other agent's assignment", func(t *testing.T) {
		visitUC := mockUC.NewMockVisitUsecase(t)
		h := NewVisitHandler(VisitHandlerParams{VisitUC: visitUC, Logger: newDiscardLogger()})
		userID := uuid.New()
		c, rec := newTestContext(http.MethodPost, "/api/v1/visits", `{"assignmentId":11,"visitDate":"2024-05-02","visitTime":"10:30"}`, &userID)

		visitUC.EXPECT().Submit(mock.Anything, userID, mock.AnythingOfType("*usecase.SubmitVisitInput")).
			Return(nil, domainerrors.ErrAssignmentForbidden)

		require.NoError(t, h.Submit(c))
		assert.Equal(t, domainerrors.ErrAssignmentForbidden.HTTPCode(), rec.Code)
	})
}

func TestUploadHandler(t *testing.T) {
	t.Run("multipart upload", func(t *testing.T) {
		uploadUC := mockUC.NewMockUploadUsecase(t)
		h := NewUploadHandler(UploadHandlerParams{UploadUC: uploadUC, Logger: newDiscardLogger()})

		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		part, err := writer.CreateFormFile(uploadFormField, "shop.jpg")
		require.NoError(t, err)
		_, err = part.Write([]byte("jpeg-bytes"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		e := echo.New()
		e.Validator = validator.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads/comments", &body)
		req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("kind")
		c.SetParamValues("comments")

		uploadUC.EXPECT().UploadImage(mock.Anything, "comments", "shop.jpg", []byte("jpeg-bytes")).
			Return(&usecase.UploadOutput{URL: "/uploads/comments/a.jpg", Filename: "a.jpg"}, nil)

		require.NoError(t, h.Upload(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("serves stored object", func(t *testing.T) {
		uploadUC := mockUC.NewMockUploadUsecase(t)
		h := NewUploadHandler(UploadHandlerParams{UploadUC: uploadUC, Logger: newDiscardLogger()})
		c, rec := newTestContext(http.MethodGet, "/uploads/comments/a.jpg", "", nil)
		c.SetParamNames("kind", "name")
		c.SetParamValues("comments", "a.jpg")

		uploadUC.EXPECT().Open(mock.Anything, "comments", "a.jpg").Return(&service.StoredObject{
			Body:        io.NopCloser(bytes.NewReader([]byte("jpeg-bytes"))),
			ContentType: "image/jpeg",
			Size:        10,
		}, nil)

		require.NoError(t, h.Serve(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/jpeg", rec.Header().Get("Content-Type"))
		assert.Equal(t, "jpeg-bytes", rec.Body.String())
	})

	t.Run("missing object", func(t *testing.T) {
		uploadUC := mockUC.NewMockUploadUsecase(t)
		h := NewUploadHandler(UploadHandlerParams{UploadUC: uploadUC, Logger: newDiscardLogger()})
		c, rec := newTestContext(http.MethodGet, "/uploads/comments/x.jpg", "", nil)
		c.SetParamNames("kind", "name")
		c.SetParamValues("comments", "x.jpg")

		uploadUC.EXPECT().Open(mock.Anything, "comments", "x.jpg").Return(nil, domainerrors.ErrObjectNotFound)

		require.NoError(t, h.Serve(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGroupHandler_Delete_OneStore(t *testing.T) {
	groupUC := mockUC.NewMockGroupUsecase(t)
	h := NewGroupHandler(GroupHandlerParams{GroupUC: groupUC, Logger: newDiscardLogger()})
	c, rec := newTestContext(http.MethodDelete, "/api/v1/store-groups/GRP-1?storeId=7", "", nil)
	c.SetParamNames("code")
	c.SetParamValues("GRP-1")
	storeID := int64(7)

	groupUC.EXPECT().Delete(mock.Anything, "GRP-1", &storeID).Return(nil)

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
