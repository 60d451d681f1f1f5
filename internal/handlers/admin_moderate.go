package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/artfest/gallery-api/internal/logger"
	"github.com/artfest/gallery-api/internal/middlewares"
	"github.com/artfest/gallery-api/internal/services"
)

// Moderator defines the moderation mutations.
type Moderator interface {
	Approve(ctx context.Context, adminID, artworkID int64) error
	ToggleFeatured(ctx context.Context, adminID, artworkID int64) (bool, error)
	Delete(ctx context.Context, adminID, artworkID int64) error
}

// NewApproveArtworkHandler returns an HTTP handler that approves an artwork,
// making it visible in the public catalog. Idempotent. Routed behind the
// admin middleware.
// @Summary Approve an artwork
// @Tags admin
// @Produce json
// @Param id path int true "Artwork id"
// @Success 200 {object} handlers.MessageResponse "Approved"
// @Failure 404 {object} handlers.ErrorResponse "Artwork absent"
// @Router /api/admin/artworks/{id}/approve [put]
func NewApproveArtworkHandler(svc Moderator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := middlewares.GetSessionFromContext(r.Context())
		if session == nil {
			writeError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		artworkID, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusNotFound, "Artwork not found")
			return
		}

		if err := svc.Approve(r.Context(), session.UserID, artworkID); err != nil {
			if errors.Is(err, services.ErrArtworkNotFound) {
				writeError(w, http.StatusNotFound, "Artwork not found")
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Artwork approved successfully"})
	}
}

// NewToggleFeaturedHandler returns an HTTP handler that flips the featured
// flag of an artwork. Routed behind the admin middleware.
// @Summary Toggle the featured flag
// @Tags admin
// @Produce json
// @Param id path int true "Artwork id"
// @Success 200 {object} handlers.MessageResponse "Toggled"
// @Failure 404 {object} handlers.ErrorResponse "Artwork absent"
// @Router /api/admin/artworks/{id}/feature [put]
func NewToggleFeaturedHandler(svc Moderator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := middlewares.GetSessionFromContext(r.Context())
		if session == nil {
			writeError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		artworkID, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusNotFound, "Artwork not found")
			return
		}

		featured, err := svc.ToggleFeatured(r.Context(), session.UserID, artworkID)
		if err != nil {
			if errors.Is(err, services.ErrArtworkNotFound) {
				writeError(w, http.StatusNotFound, "Artwork not found")
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		msg := "Artwork unfeatured successfully"
		if featured {
			msg = "Artwork featured successfully"
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: msg})
	}
}

// NewDeleteArtworkHandler returns an HTTP handler that removes an artwork
// together with its votes and comments. Routed behind the admin middleware.
// @Summary Delete an artwork
// @Tags admin
// @Produce json
// @Param id path int true "Artwork id"
// @Success 200 {object} handlers.MessageResponse "Deleted"
// @Failure 404 {object} handlers.ErrorResponse "Artwork absent"
// @Router /api/admin/artworks/{id} [delete]
func NewDeleteArtworkHandler(svc Moderator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := middlewares.GetSessionFromContext(r.Context())
		if session == nil {
			writeError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		artworkID, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusNotFound, "Artwork not found")
			return
		}

		if err := svc.Delete(r.Context(), session.UserID, artworkID); err != nil {
			if errors.Is(err, services.ErrArtworkNotFound) {
				writeError(w, http.StatusNotFound, "Artwork not found")
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Artwork deleted successfully"})
	}
}
