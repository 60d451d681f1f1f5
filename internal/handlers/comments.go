package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/artfest/gallery-api/internal/logger"
	"github.com/artfest/gallery-api/internal/middlewares"
	"github.com/artfest/gallery-api/internal/models"
	"github.com/artfest/gallery-api/internal/services"
)

// Commenter defines the comment operations of the engagement service.
type Commenter interface {
	AddComment(ctx context.Context, userID int64, username string, artworkID int64, content string) (*models.CommentDB, error)
	ListComments(ctx context.Context, artworkID int64) ([]models.CommentDB, error)
}

// AddCommentRequest represents the JSON body for comment creation
// swagger:model AddCommentRequest
type AddCommentRequest struct {
	// Comment text
	// required: true
	Content string `json:"content"`
}

// AddCommentResponse represents a successful comment creation
// swagger:model AddCommentResponse
type AddCommentResponse struct {
	Message string             `json:"message"`
	Comment models.CommentItem `json:"comment"`
}

// CommentsResponse wraps the comment listing of an artwork.
// swagger:model CommentsResponse
type CommentsResponse struct {
	Comments []models.CommentItem `json:"comments"`
}

// NewAddCommentHandler returns an HTTP handler that appends a comment.
// Routed behind the auth middleware. Comments are append-only.
// @Summary Comment on an artwork
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Artwork id"
// @Param addCommentRequest body handlers.AddCommentRequest true "Comment"
// @Success 201 {object} handlers.AddCommentResponse "Comment added"
// @Failure 400 {object} handlers.ErrorResponse "Empty content"
// @Failure 401 {object} handlers.ErrorResponse "No active session"
// @Failure 404 {object} handlers.ErrorResponse "Artwork absent or not approved"
// @Router /api/artworks/{id}/comments [post]
func NewAddCommentHandler(svc Commenter) http.HandlerFunc {
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

		var req AddCommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Content == "" {
			writeError(w, http.StatusBadRequest, "Comment content is required")
			return
		}

		comment, err := svc.AddComment(r.Context(), session.UserID, session.Username, artworkID, req.Content)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrArtworkNotFound):
				writeError(w, http.StatusNotFound, "Artwork not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, AddCommentResponse{
			Message: "Comment added successfully",
			Comment: models.NewCommentItem(comment),
		})
	}
}

// NewListCommentsHandler returns an HTTP handler for an artwork's comments.
// @Summary List comments of an artwork
// @Tags comments
// @Produce json
// @Param id path int true "Artwork id"
// @Success 200 {object} handlers.CommentsResponse "Comments, oldest first"
// @Failure 404 {object} handlers.ErrorResponse "Artwork absent or not approved"
// @Router /api/artworks/{id}/comments [get]
func NewListCommentsHandler(svc Commenter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		artworkID, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusNotFound, "Artwork not found")
			return
		}

		comments, err := svc.ListComments(r.Context(), artworkID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrArtworkNotFound):
				writeError(w, http.StatusNotFound, "Artwork not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		items := make([]models.CommentItem, 0, len(comments))
		for i := range comments {
			items = append(items, models.NewCommentItem(&comments[i]))
		}

		writeJSON(w, http.StatusOK, CommentsResponse{Comments: items})
	}
}
