package services

import (
	"context"

	"github.com/artfest/gallery-api/internal/models"
)

// StatisticsReader returns the festival-wide aggregate counts.
type StatisticsReader interface {
	GetStatistics(ctx context.Context) (*models.Statistics, error)
}

// TopVotedReader lists the most voted approved artworks.
type TopVotedReader interface {
	TopVoted(ctx context.Context, limit int) ([]models.ArtworkDB, error)
}

// StatsService serves the public statistics endpoints.
type StatsService struct {
	stats    StatisticsReader
	artworks TopVotedReader
}

// NewStatsService creates a new StatsService.
func NewStatsService(stats StatisticsReader, artworks TopVotedReader) *StatsService {
	return &StatsService{
		stats:    stats,
		artworks: artworks,
	}
}

// Summary returns the aggregate counts. Pure aggregation, always public.
func (svc *StatsService) Summary(ctx context.Context) (*models.Statistics, error) {
	return svc.stats.GetStatistics(ctx)
}

// TopVoted returns up to limit approved artworks ordered by vote count.
func (svc *StatsService) TopVoted(ctx context.Context, limit int) ([]models.ArtworkDB, error) {
	if limit <= 0 {
		limit = 10
	}
	return svc.artworks.TopVoted(ctx, limit)
}
