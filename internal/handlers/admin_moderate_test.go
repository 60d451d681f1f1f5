package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/artfest/gallery-api/internal/models"
	"github.com/artfest/gallery-api/internal/services"
)

func TestApproveArtworkHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admin := &models.Session{UserID: 9, Username: "root", IsAdmin: true}

	tests := []struct {
		name         string
		artworkID    string
		mockSetup    func(m *MockModerator)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name:      "approved",
			artworkID: "10",
			mockSetup: func(m *MockModerator) {
				m.EXPECT().Approve(gomock.Any(), int64(9), int64(10)).Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]string{"message": "Artwork approved successfully"},
		},
		{
			name:      "artwork not found",
			artworkID: "10",
			mockSetup: func(m *MockModerator) {
				m.EXPECT().Approve(gomock.Any(), int64(9), int64(10)).Return(services.ErrArtworkNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: map[string]string{"error": "Artwork not found"},
		},
		{
			name:         "malformed id",
			artworkID:    "abc",
			expectedCode: http.StatusNotFound,
			expectedBody: map[string]string{"error": "Artwork not found"},
		},
		{
			name:      "internal server error",
			artworkID: "10",
			mockSetup: func(m *MockModerator) {
				m.EXPECT().Approve(gomock.Any(), int64(9), int64(10)).Return(errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockModerator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := httptest.NewRequest(http.MethodPut, "/api/admin/artworks/"+tt.artworkID+"/approve", nil)
			req = withRouteID(req, tt.artworkID)

			rr := serveAuthed(t, NewApproveArtworkHandler(mockSvc), req, admin)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}

func TestToggleFeaturedHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admin := &models.Session{UserID: 9, Username: "root", IsAdmin: true}

	tests := []struct {
		name         string
		mockSetup    func(m *MockModerator)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "featured",
			mockSetup: func(m *MockModerator) {
				m.EXPECT().ToggleFeatured(gomock.Any(), int64(9), int64(10)).Return(true, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]string{"message": "Artwork featured successfully"},
		},
		{
			name: "unfeatured",
			mockSetup: func(m *MockModerator) {
				m.EXPECT().ToggleFeatured(gomock.Any(), int64(9), int64(10)).Return(false, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]string{"message": "Artwork unfeatured successfully"},
		},
		{
			name: "artwork not found",
			mockSetup: func(m *MockModerator) {
				m.EXPECT().ToggleFeatured(gomock.Any(), int64(9), int64(10)).Return(false, services.ErrArtworkNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: map[string]string{"error": "Artwork not found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockModerator(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodPut, "/api/admin/artworks/10/feature", nil)
			req = withRouteID(req, "10")

			rr := serveAuthed(t, NewToggleFeaturedHandler(mockSvc), req, admin)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}

func TestDeleteArtworkHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admin := &models.Session{UserID: 9, Username: "root", IsAdmin: true}

	tests := []struct {
		name         string
		mockSetup    func(m *MockModerator)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "deleted",
			mockSetup: func(m *MockModerator) {
				m.EXPECT().Delete(gomock.Any(), int64(9), int64(10)).Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]string{"message": "Artwork deleted successfully"},
		},
		{
			name: "artwork not found",
			mockSetup: func(m *MockModerator) {
				m.EXPECT().Delete(gomock.Any(), int64(9), int64(10)).Return(services.ErrArtworkNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: map[string]string{"error": "Artwork not found"},
		},
		{
			name: "internal server error",
			mockSetup: func(m *MockModerator) {
				m.EXPECT().Delete(gomock.Any(), int64(9), int64(10)).Return(errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockModerator(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodDelete, "/api/admin/artworks/10", nil)
			req = withRouteID(req, "10")

			rr := serveAuthed(t, NewDeleteArtworkHandler(mockSvc), req, admin)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
