package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/artfest/gallery-api/internal/models"
	"github.com/artfest/gallery-api/internal/repositories"
)

func TestAdminListArtworksHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pending := models.ArtworkDB{
		ID:             10,
		Title:          "sunrise",
		Filename:       "abc123_sunrise.png",
		ArtistUsername: "alice",
		IsApproved:     false,
		CreatedAt:      time.Now(),
	}

	t.Run("defaults to all statuses", func(t *testing.T) {
		mockSvc := NewMockModerationLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any(), repositories.ModerationFilter{
				Status:  repositories.StatusAll,
				Page:    1,
				PerPage: 20,
			}).
			Return([]models.ArtworkDB{pending}, int64(1), nil)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/artworks", nil)
		rr := httptest.NewRecorder()
		NewAdminListArtworksHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp AdminArtworksResponse
		err := json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.Len(t, resp.Artworks, 1)
		assert.Equal(t, "sunrise", resp.Artworks[0].Title)
		assert.Equal(t, "alice", resp.Artworks[0].Artist)
		assert.False(t, resp.Artworks[0].IsApproved)
		assert.Equal(t, int64(1), resp.Pagination.Total)
	})

	t.Run("pending filter forwarded", func(t *testing.T) {
		mockSvc := NewMockModerationLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any(), repositories.ModerationFilter{
				Status:  repositories.StatusPending,
				Page:    2,
				PerPage: 5,
			}).
			Return([]models.ArtworkDB{}, int64(11), nil)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/artworks?status=pending&page=2&per_page=5", nil)
		rr := httptest.NewRecorder()
		NewAdminListArtworksHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp AdminArtworksResponse
		err := json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.Equal(t, 2, resp.Pagination.Page)
		assert.Equal(t, 3, resp.Pagination.Pages)
		assert.Equal(t, int64(11), resp.Pagination.Total)
	})

	t.Run("unknown status falls back to all", func(t *testing.T) {
		mockSvc := NewMockModerationLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any(), repositories.ModerationFilter{
				Status:  repositories.StatusAll,
				Page:    1,
				PerPage: 20,
			}).
			Return([]models.ArtworkDB{}, int64(0), nil)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/artworks?status=rejected", nil)
		rr := httptest.NewRecorder()
		NewAdminListArtworksHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("internal server error", func(t *testing.T) {
		mockSvc := NewMockModerationLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any(), gomock.Any()).
			Return(nil, int64(0), errors.New("database failure"))

		req := httptest.NewRequest(http.MethodGet, "/api/admin/artworks", nil)
		rr := httptest.NewRecorder()
		NewAdminListArtworksHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
