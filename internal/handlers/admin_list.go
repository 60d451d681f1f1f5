package handlers

import (
	"context"
	"net/http"

	"github.com/artfest/gallery-api/internal/logger"
	"github.com/artfest/gallery-api/internal/models"
	"github.com/artfest/gallery-api/internal/repositories"
)

// defaultAdminPerPage is the moderation listing page size.
const defaultAdminPerPage = 20

// ModerationLister defines the read side of the moderation listing.
type ModerationLister interface {
	List(ctx context.Context, f repositories.ModerationFilter) ([]models.ArtworkDB, int64, error)
}

// AdminArtworksResponse is the paginated moderation envelope.
// swagger:model AdminArtworksResponse
type AdminArtworksResponse struct {
	Artworks   []models.AdminArtworkItem `json:"artworks"`
	Pagination models.AdminPagination    `json:"pagination"`
}

// NewAdminListArtworksHandler returns an HTTP handler for the moderation
// listing. Routed behind the admin middleware.
// @Summary List artworks for moderation
// @Description Newest first; status one of pending, approved, all.
// @Tags admin
// @Produce json
// @Param page query int false "1-indexed page" default(1)
// @Param per_page query int false "Page size" default(20)
// @Param status query string false "pending | approved | all" default(all)
// @Success 200 {object} handlers.AdminArtworksResponse "One moderation page"
// @Failure 401 {object} handlers.ErrorResponse "No active session"
// @Failure 403 {object} handlers.ErrorResponse "Not an administrator"
// @Router /api/admin/artworks [get]
func NewAdminListArtworksHandler(svc ModerationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := repositories.ModerationFilter{
			Status:  r.URL.Query().Get("status"),
			Page:    queryInt(r, "page", 1),
			PerPage: queryInt(r, "per_page", defaultAdminPerPage),
		}
		if f.Page < 1 {
			f.Page = 1
		}
		if f.PerPage < 1 {
			f.PerPage = defaultAdminPerPage
		}
		if f.Status != repositories.StatusPending && f.Status != repositories.StatusApproved {
			f.Status = repositories.StatusAll
		}

		artworks, total, err := svc.List(r.Context(), f)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		items := make([]models.AdminArtworkItem, 0, len(artworks))
		for i := range artworks {
			items = append(items, models.NewAdminArtworkItem(&artworks[i]))
		}

		pages := int((total + int64(f.PerPage) - 1) / int64(f.PerPage))
		writeJSON(w, http.StatusOK, AdminArtworksResponse{
			Artworks: items,
			Pagination: models.AdminPagination{
				Page:    f.Page,
				Pages:   pages,
				PerPage: f.PerPage,
				Total:   total,
			},
		})
	}
}
