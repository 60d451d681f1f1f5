package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/artfest/gallery-api/internal/logger"
	"github.com/artfest/gallery-api/internal/models"
	"github.com/artfest/gallery-api/internal/repositories"
	"github.com/artfest/gallery-api/internal/services"
)

// defaultPerPage is the public catalog page size.
const defaultPerPage = 12

// CatalogLister defines the read side of the public catalog listing.
type CatalogLister interface {
	List(ctx context.Context, f repositories.CatalogFilter) ([]models.ArtworkDB, int64, error)
}

// ArtworkGetter resolves a single approved artwork.
type ArtworkGetter interface {
	Get(ctx context.Context, id int64) (*models.ArtworkDB, error)
}

// ArtworksResponse is the paginated catalog envelope.
// swagger:model ArtworksResponse
type ArtworksResponse struct {
	Artworks   []models.ArtworkItem `json:"artworks"`
	Pagination models.Pagination    `json:"pagination"`
}

// ArtworkResponse wraps a single artwork detail.
// swagger:model ArtworkResponse
type ArtworkResponse struct {
	Artwork models.ArtworkItem `json:"artwork"`
}

// NewListArtworksHandler returns an HTTP handler for the public catalog.
// Only approved artworks are listed; a page past the end yields an empty set.
// @Summary List approved artworks
// @Description Paginated catalog with optional category and featured filters; sort one of recent, popular, title.
// @Tags artworks
// @Produce json
// @Param page query int false "1-indexed page" default(1)
// @Param per_page query int false "Page size" default(12)
// @Param category_id query int false "Narrow to a category"
// @Param featured query bool false "Featured artworks only"
// @Param sort query string false "recent | popular | title" default(recent)
// @Success 200 {object} handlers.ArtworksResponse "One catalog page"
// @Router /api/artworks [get]
func NewListArtworksHandler(svc CatalogLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := repositories.CatalogFilter{
			Sort:    r.URL.Query().Get("sort"),
			Page:    queryInt(r, "page", 1),
			PerPage: queryInt(r, "per_page", defaultPerPage),
		}
		if f.Page < 1 {
			f.Page = 1
		}
		if f.PerPage < 1 {
			f.PerPage = defaultPerPage
		}

		if v := r.URL.Query().Get("category_id"); v != "" {
			if id, err := strconv.ParseInt(v, 10, 64); err == nil {
				f.CategoryID = &id
			}
		}
		if v := r.URL.Query().Get("featured"); v == "true" || v == "1" {
			f.FeaturedOnly = true
		}

		artworks, total, err := svc.List(r.Context(), f)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		items := make([]models.ArtworkItem, 0, len(artworks))
		for i := range artworks {
			items = append(items, models.NewArtworkItem(&artworks[i]))
		}

		writeJSON(w, http.StatusOK, ArtworksResponse{
			Artworks:   items,
			Pagination: models.NewPagination(f.Page, f.PerPage, total),
		})
	}
}

// NewGetArtworkHandler returns an HTTP handler for a single artwork.
// @Summary Get an approved artwork
// @Tags artworks
// @Produce json
// @Param id path int true "Artwork id"
// @Success 200 {object} handlers.ArtworkResponse "Artwork detail"
// @Failure 404 {object} handlers.ErrorResponse "Absent or not approved"
// @Router /api/artworks/{id} [get]
func NewGetArtworkHandler(svc ArtworkGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusNotFound, "Artwork not found")
			return
		}

		artwork, err := svc.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrArtworkNotFound) {
				writeError(w, http.StatusNotFound, "Artwork not found")
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, ArtworkResponse{Artwork: models.NewArtworkItem(artwork)})
	}
}
