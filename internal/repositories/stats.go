package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/artfest/gallery-api/internal/logger"
	"github.com/artfest/gallery-api/internal/models"
)

type StatsReadRepository struct {
	db *sqlx.DB
}

func NewStatsReadRepository(db *sqlx.DB) *StatsReadRepository {
	return &StatsReadRepository{db: db}
}

// GetStatistics returns the festival-wide aggregate counts in one query.
func (r *StatsReadRepository) GetStatistics(ctx context.Context) (*models.Statistics, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM artworks WHERE is_approved) AS total_artworks,
			(SELECT COUNT(*) FROM votes) AS total_votes,
			(SELECT COUNT(*) FROM users) AS active_participants,
			(SELECT COUNT(*) FROM comments) AS total_comments
	`

	var stats models.Statistics
	if err := sqlx.GetContext(ctx, executor(ctx, r.db), &stats, query); err != nil {
		logger.Log.Errorw("failed to get statistics", "error", err)
		return nil, err
	}
	return &stats, nil
}
