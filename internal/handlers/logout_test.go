package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/artfest/gallery-api/internal/token"
)

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		mockSetup func(m *MockLogouter)
	}{
		{
			name: "active session is deleted",
			mockSetup: func(m *MockLogouter) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token123", nil)
				m.EXPECT().Logout(gomock.Any(), "token123").Return(nil)
			},
		},
		{
			name: "no resolvable token still succeeds",
			mockSetup: func(m *MockLogouter) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no session token in request"))
			},
		},
		{
			name: "session store failure still succeeds",
			mockSetup: func(m *MockLogouter) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token123", nil)
				m.EXPECT().Logout(gomock.Any(), "token123").Return(errors.New("redis down"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLogouter(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewLogoutHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, map[string]string{"message": "Logout successful"}, resp)

			cookies := rr.Result().Cookies()
			assert.Len(t, cookies, 1)
			assert.Equal(t, token.CookieName, cookies[0].Name)
			assert.Empty(t, cookies[0].Value)
			assert.Negative(t, cookies[0].MaxAge)
		})
	}
}
