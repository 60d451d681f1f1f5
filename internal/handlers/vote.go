package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/artfest/gallery-api/internal/logger"
	"github.com/artfest/gallery-api/internal/middlewares"
	"github.com/artfest/gallery-api/internal/services"
)

// Voter defines the voting operations of the engagement service.
type Voter interface {
	CastVote(ctx context.Context, userID, artworkID int64) (int64, error)
	RetractVote(ctx context.Context, userID, artworkID int64) (int64, error)
}

// VoteResponse carries the updated vote count after a cast or retraction.
// swagger:model VoteResponse
type VoteResponse struct {
	// Success message
	Message string `json:"message"`

	// Updated vote cardinality of the artwork
	VoteCount int64 `json:"vote_count"`
}

// NewCastVoteHandler returns an HTTP handler that records a vote.
// Routed behind the auth middleware.
// @Summary Vote for an artwork
// @Description One vote per user per artwork; the duplicate is rejected.
// @Tags votes
// @Produce json
// @Param id path int true "Artwork id"
// @Success 200 {object} handlers.VoteResponse "Vote recorded"
// @Failure 401 {object} handlers.ErrorResponse "No active session"
// @Failure 404 {object} handlers.ErrorResponse "Artwork absent or not approved"
// @Failure 409 {object} handlers.ErrorResponse "Already voted"
// @Router /api/artworks/{id}/vote [post]
func NewCastVoteHandler(svc Voter) http.HandlerFunc {
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

		count, err := svc.CastVote(r.Context(), session.UserID, artworkID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrArtworkNotFound):
				writeError(w, http.StatusNotFound, "Artwork not found")
			case errors.Is(err, services.ErrAlreadyVoted):
				writeError(w, http.StatusConflict, "You have already voted for this artwork")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, VoteResponse{
			Message:   "Vote recorded successfully",
			VoteCount: count,
		})
	}
}

// NewRetractVoteHandler returns an HTTP handler that removes a vote.
// Routed behind the auth middleware.
// @Summary Retract a vote
// @Tags votes
// @Produce json
// @Param id path int true "Artwork id"
// @Success 200 {object} handlers.VoteResponse "Vote removed"
// @Failure 401 {object} handlers.ErrorResponse "No active session"
// @Failure 404 {object} handlers.ErrorResponse "No matching vote"
// @Router /api/artworks/{id}/vote [delete]
func NewRetractVoteHandler(svc Voter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := middlewares.GetSessionFromContext(r.Context())
		if session == nil {
			writeError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		artworkID, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusNotFound, "Vote not found")
			return
		}

		count, err := svc.RetractVote(r.Context(), session.UserID, artworkID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrVoteNotFound):
				writeError(w, http.StatusNotFound, "Vote not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, VoteResponse{
			Message:   "Vote removed successfully",
			VoteCount: count,
		})
	}
}
