package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/artfest/gallery-api/internal/logger"
	"github.com/artfest/gallery-api/internal/models"
)

type CategoryReadRepository struct {
	db *sqlx.DB
}

func NewCategoryReadRepository(db *sqlx.DB) *CategoryReadRepository {
	return &CategoryReadRepository{db: db}
}

// ListWithCounts returns all categories with their artwork cardinality.
func (r *CategoryReadRepository) ListWithCounts(ctx context.Context) ([]models.CategoryWithCount, error) {
	const query = `
		SELECT c.id, c.name, c.description, c.created_at,
		       COUNT(a.id) AS artwork_count
		FROM categories c
		LEFT JOIN artworks a ON a.category_id = c.id
		GROUP BY c.id
		ORDER BY c.name
	`

	categories := []models.CategoryWithCount{}
	if err := sqlx.SelectContext(ctx, executor(ctx, r.db), &categories, query); err != nil {
		logger.Log.Errorw("failed to list categories", "error", err)
		return nil, err
	}
	return categories, nil
}

// Exists reports whether a category with the given id exists.
func (r *CategoryReadRepository) Exists(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`

	var exists bool
	if err := sqlx.GetContext(ctx, executor(ctx, r.db), &exists, query, id); err != nil {
		logger.Log.Errorw("failed to check category", "id", id, "error", err)
		return false, err
	}
	return exists, nil
}

type CategoryWriteRepository struct {
	db *sqlx.DB
}

func NewCategoryWriteRepository(db *sqlx.DB) *CategoryWriteRepository {
	return &CategoryWriteRepository{db: db}
}

// Save inserts a category and returns the stored row. A duplicate name
// surfaces as ErrUniqueViolation from the storage constraint.
func (r *CategoryWriteRepository) Save(ctx context.Context, name, description string) (*models.CategoryDB, error) {
	const query = `
		INSERT INTO categories (name, description)
		VALUES ($1, $2)
		RETURNING id, name, description, created_at
	`

	var category models.CategoryDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &category, query, name, description)
	if err != nil {
		logger.Log.Errorw("failed to save category", "name", name, "error", err)
		return nil, wrapUniqueViolation(err)
	}

	logger.Log.Infow("category saved", "id", category.ID, "name", name)
	return &category, nil
}
