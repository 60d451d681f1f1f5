package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/artfest/gallery-api/internal/logger"
	"github.com/artfest/gallery-api/internal/models"
)

// Sort keys accepted by the public catalog listing.
const (
	SortRecent  = "recent"
	SortPopular = "popular"
	SortTitle   = "title"
)

// Moderation status filters.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusAll      = "all"
)

// CatalogFilter narrows and orders the public artwork listing.
type CatalogFilter struct {
	CategoryID   *int64
	FeaturedOnly bool
	Sort         string
	Page         int
	PerPage      int
}

// ModerationFilter narrows the admin artwork listing.
type ModerationFilter struct {
	Status  string
	Page    int
	PerPage int
}

// selectArtwork joins every artwork with its artist, optional category and
// the derived vote/comment counts. The counts are aggregated at query time.
const selectArtwork = `
	SELECT a.id, a.title, a.description, a.filename, a.original_filename, a.file_path,
	       a.artist_id, u.username AS artist_username,
	       a.category_id, c.name AS category_name,
	       a.is_featured, a.is_approved, a.created_at, a.updated_at,
	       (SELECT COUNT(*) FROM votes v WHERE v.artwork_id = a.id) AS vote_count,
	       (SELECT COUNT(*) FROM comments cm WHERE cm.artwork_id = a.id) AS comment_count
	FROM artworks a
	JOIN users u ON u.id = a.artist_id
	LEFT JOIN categories c ON c.id = a.category_id
`

type ArtworkReadRepository struct {
	db *sqlx.DB
}

func NewArtworkReadRepository(db *sqlx.DB) *ArtworkReadRepository {
	return &ArtworkReadRepository{db: db}
}

// ListApproved returns one page of the public catalog plus the total count
// of matching artworks. Pages beyond the end yield an empty slice.
func (r *ArtworkReadRepository) ListApproved(ctx context.Context, f CatalogFilter) ([]models.ArtworkDB, int64, error) {
	const where = `
		WHERE a.is_approved
		  AND ($1::BIGINT IS NULL OR a.category_id = $1)
		  AND (NOT $2::BOOLEAN OR a.is_featured)
	`

	var order string
	switch f.Sort {
	case SortPopular:
		order = ` ORDER BY vote_count DESC, a.created_at DESC`
	case SortTitle:
		order = ` ORDER BY a.title ASC`
	default:
		order = ` ORDER BY a.created_at DESC`
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM artworks a ` + where
	if err := sqlx.GetContext(ctx, executor(ctx, r.db), &total, countQuery, f.CategoryID, f.FeaturedOnly); err != nil {
		logger.Log.Errorw("failed to count artworks", "error", err)
		return nil, 0, err
	}

	query := selectArtwork + where + order + ` LIMIT $3 OFFSET $4`
	offset := (f.Page - 1) * f.PerPage

	artworks := []models.ArtworkDB{}
	if err := sqlx.SelectContext(ctx, executor(ctx, r.db), &artworks, query,
		f.CategoryID, f.FeaturedOnly, f.PerPage, offset); err != nil {
		logger.Log.Errorw("failed to list artworks", "error", err)
		return nil, 0, err
	}

	return artworks, total, nil
}

// GetApprovedByID returns an approved artwork, or nil when the artwork is
// absent or still pending moderation.
func (r *ArtworkReadRepository) GetApprovedByID(ctx context.Context, id int64) (*models.ArtworkDB, error) {
	var artwork models.ArtworkDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &artwork,
		selectArtwork+` WHERE a.id = $1 AND a.is_approved`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to get artwork", "id", id, "error", err)
		return nil, err
	}
	return &artwork, nil
}

// GetByID returns an artwork regardless of approval state, or nil when absent.
func (r *ArtworkReadRepository) GetByID(ctx context.Context, id int64) (*models.ArtworkDB, error) {
	var artwork models.ArtworkDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &artwork, selectArtwork+` WHERE a.id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to get artwork", "id", id, "error", err)
		return nil, err
	}
	return &artwork, nil
}

// ListForModeration returns one page of artworks for the admin listing,
// newest first, optionally narrowed to pending or approved.
func (r *ArtworkReadRepository) ListForModeration(ctx context.Context, f ModerationFilter) ([]models.ArtworkDB, int64, error) {
	const where = `
		WHERE ($1::VARCHAR <> 'pending' OR NOT a.is_approved)
		  AND ($1::VARCHAR <> 'approved' OR a.is_approved)
	`

	var total int64
	countQuery := `SELECT COUNT(*) FROM artworks a ` + where
	if err := sqlx.GetContext(ctx, executor(ctx, r.db), &total, countQuery, f.Status); err != nil {
		logger.Log.Errorw("failed to count artworks for moderation", "error", err)
		return nil, 0, err
	}

	query := selectArtwork + where + ` ORDER BY a.created_at DESC LIMIT $2 OFFSET $3`
	offset := (f.Page - 1) * f.PerPage

	artworks := []models.ArtworkDB{}
	if err := sqlx.SelectContext(ctx, executor(ctx, r.db), &artworks, query,
		f.Status, f.PerPage, offset); err != nil {
		logger.Log.Errorw("failed to list artworks for moderation", "error", err)
		return nil, 0, err
	}

	return artworks, total, nil
}

// TopVoted returns the approved artworks that received at least one vote,
// ordered by vote count descending.
func (r *ArtworkReadRepository) TopVoted(ctx context.Context, limit int) ([]models.ArtworkDB, error) {
	query := selectArtwork + `
		WHERE a.is_approved
		  AND EXISTS (SELECT 1 FROM votes v WHERE v.artwork_id = a.id)
		ORDER BY vote_count DESC
		LIMIT $1
	`

	artworks := []models.ArtworkDB{}
	if err := sqlx.SelectContext(ctx, executor(ctx, r.db), &artworks, query, limit); err != nil {
		logger.Log.Errorw("failed to list top voted artworks", "error", err)
		return nil, err
	}
	return artworks, nil
}

type ArtworkWriteRepository struct {
	db *sqlx.DB
}

func NewArtworkWriteRepository(db *sqlx.DB) *ArtworkWriteRepository {
	return &ArtworkWriteRepository{db: db}
}

// Save inserts an artwork pending moderation and returns the generated id.
func (r *ArtworkWriteRepository) Save(ctx context.Context, title, description, filename, originalFilename, filePath string, artistID int64, categoryID *int64) (int64, error) {
	const query = `
		INSERT INTO artworks (title, description, filename, original_filename, file_path, artist_id, category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &id, query,
		title, description, filename, originalFilename, filePath, artistID, categoryID)
	if err != nil {
		logger.Log.Errorw("failed to save artwork", "title", title, "artist_id", artistID, "error", err)
		return 0, wrapUniqueViolation(err)
	}

	logger.Log.Infow("artwork saved", "id", id, "title", title, "artist_id", artistID)
	return id, nil
}

// SetApproved marks an artwork approved. Idempotent. Returns false when the
// artwork does not exist.
func (r *ArtworkWriteRepository) SetApproved(ctx context.Context, id int64) (bool, error) {
	const query = `UPDATE artworks SET is_approved = TRUE, updated_at = NOW() WHERE id = $1`

	res, err := executor(ctx, r.db).ExecContext(ctx, query, id)
	if err != nil {
		logger.Log.Errorw("failed to approve artwork", "id", id, "error", err)
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// ToggleFeatured flips the featured flag and returns the new state.
// The second return is false when the artwork does not exist.
func (r *ArtworkWriteRepository) ToggleFeatured(ctx context.Context, id int64) (bool, bool, error) {
	const query = `
		UPDATE artworks SET is_featured = NOT is_featured, updated_at = NOW()
		WHERE id = $1
		RETURNING is_featured
	`

	var featured bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &featured, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, false, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to toggle featured", "id", id, "error", err)
		return false, false, err
	}
	return featured, true, nil
}

// Delete removes an artwork; its votes and comments go with it through the
// foreign key cascade. Returns the stored filename for cleanup and false
// when the artwork does not exist.
func (r *ArtworkWriteRepository) Delete(ctx context.Context, id int64) (string, bool, error) {
	const query = `DELETE FROM artworks WHERE id = $1 RETURNING filename`

	var filename string
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &filename, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to delete artwork", "id", id, "error", err)
		return "", false, err
	}

	logger.Log.Infow("artwork deleted", "id", id, "filename", filename)
	return filename, true, nil
}
