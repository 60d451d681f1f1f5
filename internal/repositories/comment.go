package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/artfest/gallery-api/internal/logger"
	"github.com/artfest/gallery-api/internal/models"
)

type CommentReadRepository struct {
	db *sqlx.DB
}

func NewCommentReadRepository(db *sqlx.DB) *CommentReadRepository {
	return &CommentReadRepository{db: db}
}

// ListByArtwork returns the comments of an artwork, oldest first.
func (r *CommentReadRepository) ListByArtwork(ctx context.Context, artworkID int64) ([]models.CommentDB, error) {
	const query = `
		SELECT cm.id, cm.content, cm.user_id, cm.artwork_id, cm.created_at,
		       u.username AS author_username
		FROM comments cm
		JOIN users u ON u.id = cm.user_id
		WHERE cm.artwork_id = $1
		ORDER BY cm.created_at ASC
	`

	comments := []models.CommentDB{}
	if err := sqlx.SelectContext(ctx, executor(ctx, r.db), &comments, query, artworkID); err != nil {
		logger.Log.Errorw("failed to list comments", "artwork_id", artworkID, "error", err)
		return nil, err
	}
	return comments, nil
}

type CommentWriteRepository struct {
	db *sqlx.DB
}

func NewCommentWriteRepository(db *sqlx.DB) *CommentWriteRepository {
	return &CommentWriteRepository{db: db}
}

// Save appends a comment and returns the stored row.
func (r *CommentWriteRepository) Save(ctx context.Context, content string, userID, artworkID int64) (*models.CommentDB, error) {
	const query = `
		INSERT INTO comments (content, user_id, artwork_id)
		VALUES ($1, $2, $3)
		RETURNING id, content, user_id, artwork_id, created_at
	`

	var comment models.CommentDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &comment, query, content, userID, artworkID)
	if err != nil {
		logger.Log.Errorw("failed to save comment", "user_id", userID, "artwork_id", artworkID, "error", err)
		return nil, err
	}

	logger.Log.Infow("comment saved", "id", comment.ID, "artwork_id", artworkID)
	return &comment, nil
}
