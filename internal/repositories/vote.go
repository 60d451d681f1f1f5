package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/artfest/gallery-api/internal/logger"
)

type VoteReadRepository struct {
	db *sqlx.DB
}

func NewVoteReadRepository(db *sqlx.DB) *VoteReadRepository {
	return &VoteReadRepository{db: db}
}

// CountByArtwork returns the vote cardinality of an artwork. A missing
// artwork simply counts zero.
func (r *VoteReadRepository) CountByArtwork(ctx context.Context, artworkID int64) (int64, error) {
	const query = `SELECT COUNT(*) FROM votes WHERE artwork_id = $1`

	var count int64
	if err := sqlx.GetContext(ctx, executor(ctx, r.db), &count, query, artworkID); err != nil {
		logger.Log.Errorw("failed to count votes", "artwork_id", artworkID, "error", err)
		return 0, err
	}
	return count, nil
}

type VoteWriteRepository struct {
	db *sqlx.DB
}

func NewVoteWriteRepository(db *sqlx.DB) *VoteWriteRepository {
	return &VoteWriteRepository{db: db}
}

// Save casts a vote. A second vote by the same user on the same artwork
// violates the unique_vote constraint and surfaces as ErrUniqueViolation,
// so concurrent duplicates lose at the storage layer, not in a check.
func (r *VoteWriteRepository) Save(ctx context.Context, userID, artworkID int64) error {
	const query = `INSERT INTO votes (user_id, artwork_id) VALUES ($1, $2)`

	if _, err := executor(ctx, r.db).ExecContext(ctx, query, userID, artworkID); err != nil {
		logger.Log.Errorw("failed to save vote", "user_id", userID, "artwork_id", artworkID, "error", err)
		return wrapUniqueViolation(err)
	}

	logger.Log.Infow("vote saved", "user_id", userID, "artwork_id", artworkID)
	return nil
}

// Delete retracts a vote. Returns false when no matching vote exists.
func (r *VoteWriteRepository) Delete(ctx context.Context, userID, artworkID int64) (bool, error) {
	const query = `DELETE FROM votes WHERE user_id = $1 AND artwork_id = $2`

	res, err := executor(ctx, r.db).ExecContext(ctx, query, userID, artworkID)
	if err != nil {
		logger.Log.Errorw("failed to delete vote", "user_id", userID, "artwork_id", artworkID, "error", err)
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
