package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/artfest/gallery-api/internal/models"
	"github.com/artfest/gallery-api/internal/services"
	"github.com/artfest/gallery-api/internal/token"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		reqBody      RegisterRequest
		rawBody      string // when set, sent verbatim to simulate invalid JSON
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedErr  string
	}{
		{
			name:    "success",
			reqBody: RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "secret"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "alice@example.com", "secret").
					Return(&models.UserDB{ID: 1, Username: "alice", Email: "alice@example.com"}, "token123", nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:    "username taken",
			reqBody: RegisterRequest{Username: "bob", Email: "bob@example.com", Password: "secret"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob", "bob@example.com", "secret").
					Return(nil, "", services.ErrUsernameExists)
			},
			expectedCode: http.StatusConflict,
			expectedErr:  "Username already exists",
		},
		{
			name:    "email taken",
			reqBody: RegisterRequest{Username: "carol", Email: "bob@example.com", Password: "secret"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "carol", "bob@example.com", "secret").
					Return(nil, "", services.ErrEmailExists)
			},
			expectedCode: http.StatusConflict,
			expectedErr:  "Email already registered",
		},
		{
			name:    "internal server error",
			reqBody: RegisterRequest{Username: "dave", Email: "dave@example.com", Password: "secret"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "dave", "dave@example.com", "secret").
					Return(nil, "", errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "Internal server error",
		},
		{
			name:         "missing field",
			reqBody:      RegisterRequest{Username: "eve", Email: "", Password: "secret"},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Username, email, and password are required",
		},
		{
			name:         "invalid json",
			rawBody:      "{invalid json}",
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Username, email, and password are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			var req *http.Request
			if tt.rawBody != "" {
				req = httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(tt.rawBody))
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				req = httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedErr != "" {
				var resp map[string]string
				err := json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, map[string]string{"error": tt.expectedErr}, resp)
				return
			}

			var resp RegisterResponse
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, "Registration successful", resp.Message)
			assert.Equal(t, "alice", resp.User.Username)

			cookies := rr.Result().Cookies()
			assert.Len(t, cookies, 1)
			assert.Equal(t, token.CookieName, cookies[0].Name)
			assert.Equal(t, "token123", cookies[0].Value)
			assert.True(t, cookies[0].HttpOnly)
		})
	}
}
