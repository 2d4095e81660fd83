package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storeradar/internal/domain/service"
	mockSvc "storeradar/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setup      func(*mockSvc.MockTokenService)
		wantStatus int
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			header:     "Basic abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "invalid token",
			header: "Bearer broken",
			setup: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateToken("broken").Return(nil, errors.New("signature is invalid"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "refresh token",
			header: "Bearer refresh",
			setup: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateToken("refresh").Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "access token",
			header: "Bearer access",
			setup: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateToken("access").Return(&service.Claims{UserID: userID, Type: service.TokenTypeAccess}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}
			m := NewAuthMiddleware(tokenSvc)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen uuid.UUID
			err := m.Authenticate(func(c echo.Context) error {
				id, ok := GetUserID(c)
				require.True(t, ok)
				seen = id

				return c.NoContent(http.StatusOK)
			})(c)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, userID, seen)
			}
		})
	}
}
