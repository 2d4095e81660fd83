package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"storeradar/internal/domain/entity"
	mockUC "storeradar/internal/mocks/usecase"
	"storeradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAssignmentHandler(t *testing.T) (*AssignmentHandler, *mockUC.MockAssignmentUsecase) {
	assignmentUC := mockUC.NewMockAssignmentUsecase(t)

	return NewAssignmentHandler(AssignmentHandlerParams{AssignmentUC: assignmentUC, Logger: newDiscardLogger()}), assignmentUC
}

func TestAssignmentHandler_Assign(t *testing.T) {
	t.Run("parses date and returns jalali", func(t *testing.T) {
		h, assignmentUC := newTestAssignmentHandler(t)
		manager, agent := uuid.New(), uuid.New()
		body := `{"userId":"` + agent.String() + `","storeTokens":["store_a"],"assignedDate":"2024-03-20"}`
		c, rec := newTestContext(http.MethodPost, "/api/v1/assignments", body, &manager)
		date := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

		assignmentUC.EXPECT().
			Assign(mock.Anything, manager, &usecase.AssignInput{UserID: agent, StoreTokens: []string{"store_a"}, AssignedDate: date}).
			Return(&usecase.AssignOutput{
				Message:       "1 stores assigned successfully",
				Requested:     2,
				Assignments:   []*entity.Assignment{{ID: 1, UserID: agent, StoreToken: "store_a", AssignedDate: date, Status: "pending"}},
				SkippedTokens: []string{"store_gone"},
				FailedTokens:  []string{},
			}, nil)

		require.NoError(t, h.Assign(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var out struct {
			Message       string               `json:"message"`
			Requested     int                  `json:"requested"`
			Assigned      int                  `json:"assigned"`
			Assignments   []AssignmentResponse `json:"assignments"`
			SkippedTokens []string             `json:"skippedTokens"`
		}
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &out))
		assert.Equal(t, "1 stores assigned successfully", out.Message)
		assert.Equal(t, 2, out.Requested)
		assert.Equal(t, 1, out.Assigned)
		assert.Equal(t, []string{"store_gone"}, out.SkippedTokens)
		require.Len(t, out.Assignments, 1)
		assert.Equal(t, "2024-03-20", out.Assignments[0].AssignedDate)
		assert.Equal(t, "1403/01/01", out.Assignments[0].AssignedDateJalali)
	})

	t.Run("rejects non ISO date", func(t *testing.T) {
		h, _ := newTestAssignmentHandler(t)
		manager := uuid.New()
		body := `{"userId":"` + uuid.NewString() + `","storeTokens":["store_a"],"assignedDate":"1403/01/01"}`
		c, rec := newTestContext(http.MethodPost, "/api/v1/assignments", body, &manager)

		require.NoError(t, h.Assign(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAssignmentHandler_List_DefaultsToCaller(t *testing.T) {
	h, assignmentUC := newTestAssignmentHandler(t)
	userID := uuid.New()
	c, rec := newTestContext(http.MethodGet, "/api/v1/assignments?status=pending", "", &userID)
	status := "pending"

	assignmentUC.EXPECT().
		List(mock.Anything, entity.AssignmentFilter{UserID: &userID, Status: &status}).
		Return([]usecase.AssignedStore{{
			Assignment: entity.Assignment{ID: 3, StoreToken: "store_a"},
			Store:      entity.StoreView{Token: "store_a", Name: "Bakery One"},
		}}, nil)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var out []AssignedStoreResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &out))
	require.Len(t, out, 1)
	assert.Equal(t, "Bakery One", out[0].Store.Name)
}

func TestAssignmentHandler_Export(t *testing.T) {
	h, assignmentUC := newTestAssignmentHandler(t)
	userID, agent := uuid.New(), uuid.New()
	c, rec := newTestContext(http.MethodGet, "/api/v1/assignments/export?userId="+agent.String()+"&assignedDate=2024-05-01", "", &userID)
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	assignmentUC.EXPECT().
		Export(mock.Anything, entity.AssignmentFilter{UserID: &agent, AssignedDate: &date}).
		Return([]byte("xlsx"), nil)

	require.NoError(t, h.Export(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), assignmentsXLSName)
	assert.Equal(t, "xlsx", rec.Body.String())
}
