package handlers

import (
	"context"
	"net/http"

	"github.com/artfest/gallery-api/internal/logger"
	"github.com/artfest/gallery-api/internal/models"
)

// Summarizer returns the festival-wide aggregate counts.
type Summarizer interface {
	Summary(ctx context.Context) (*models.Statistics, error)
}

// TopVoter lists the most voted approved artworks.
type TopVoter interface {
	TopVoted(ctx context.Context, limit int) ([]models.ArtworkDB, error)
}

// StatisticsResponse wraps the aggregate counts.
// swagger:model StatisticsResponse
type StatisticsResponse struct {
	Statistics models.Statistics `json:"statistics"`
}

// TopVotedResponse wraps the top-voted listing.
// swagger:model TopVotedResponse
type TopVotedResponse struct {
	TopVoted []models.TopVotedItem `json:"top_voted"`
}

// NewStatisticsHandler returns an HTTP handler for the public statistics.
// @Summary Festival statistics
// @Description Aggregate counts: approved artworks, votes, users, comments.
// @Tags statistics
// @Produce json
// @Success 200 {object} handlers.StatisticsResponse "Counts"
// @Router /api/statistics [get]
func NewStatisticsHandler(svc Summarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Summary(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, StatisticsResponse{Statistics: *stats})
	}
}

// NewTopVotedHandler returns an HTTP handler for the top-voted listing.
// @Summary Top voted artworks
// @Tags statistics
// @Produce json
// @Param limit query int false "Maximum items" default(10)
// @Success 200 {object} handlers.TopVotedResponse "Most voted approved artworks"
// @Router /api/top-voted [get]
func NewTopVotedHandler(svc TopVoter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := queryInt(r, "limit", 10)

		artworks, err := svc.TopVoted(r.Context(), limit)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		items := make([]models.TopVotedItem, 0, len(artworks))
		for i := range artworks {
			items = append(items, models.NewTopVotedItem(&artworks[i]))
		}

		writeJSON(w, http.StatusOK, TopVotedResponse{TopVoted: items})
	}
}
