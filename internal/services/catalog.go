package services

import (
	"context"
	"errors"
	"io"

	"github.com/artfest/gallery-api/internal/logger"
	"github.com/artfest/gallery-api/internal/models"
	"github.com/artfest/gallery-api/internal/repositories"
	"github.com/artfest/gallery-api/internal/uploads"
)

// Error variables
var (
	ErrArtworkNotFound  = errors.New("artwork not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")
)

// CatalogReader defines the read side of the public catalog.
type CatalogReader interface {
	ListApproved(ctx context.Context, f repositories.CatalogFilter) ([]models.ArtworkDB, int64, error)
	GetApprovedByID(ctx context.Context, id int64) (*models.ArtworkDB, error)
}

// ArtworkSaver persists a newly submitted artwork.
type ArtworkSaver interface {
	Save(ctx context.Context, title, description, filename, originalFilename, filePath string, artistID int64, categoryID *int64) (int64, error)
}

// CategoryReader defines the read side of categories.
type CategoryReader interface {
	ListWithCounts(ctx context.Context) ([]models.CategoryWithCount, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// CategoryWriter persists new categories.
type CategoryWriter interface {
	Save(ctx context.Context, name, description string) (*models.CategoryDB, error)
}

// FileSaver accepts an upload and returns its stored reference.
type FileSaver interface {
	Save(src io.Reader, declaredName string) (*uploads.StoredFile, error)
}

// CatalogService handles the public artwork catalog: listing, detail and
// submission. Submissions enter the catalog unapproved and stay invisible
// until moderation approves them.
type CatalogService struct {
	artworks    CatalogReader
	writer      ArtworkSaver
	categories  CategoryReader
	catWriter   CategoryWriter
	files       FileSaver
	kafkaWriter KafkaWriter
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(artworks CatalogReader, writer ArtworkSaver, categories CategoryReader, catWriter CategoryWriter, files FileSaver, kafkaWriter KafkaWriter) *CatalogService {
	return &CatalogService{
		artworks:    artworks,
		writer:      writer,
		categories:  categories,
		catWriter:   catWriter,
		files:       files,
		kafkaWriter: kafkaWriter,
	}
}

// List returns one page of approved artworks plus the total match count.
func (svc *CatalogService) List(ctx context.Context, f repositories.CatalogFilter) ([]models.ArtworkDB, int64, error) {
	return svc.artworks.ListApproved(ctx, f)
}

// Get returns a single approved artwork.
func (svc *CatalogService) Get(ctx context.Context, id int64) (*models.ArtworkDB, error) {
	artwork, err := svc.artworks.GetApprovedByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if artwork == nil {
		return nil, ErrArtworkNotFound
	}
	return artwork, nil
}

// Create accepts an upload through the media intake and persists the
// artwork pending approval. Returns the new artwork id and the stored file.
func (svc *CatalogService) Create(ctx context.Context, artistID int64, title, description string, categoryID *int64, file io.Reader, declaredFilename string) (int64, *uploads.StoredFile, error) {
	if categoryID != nil {
		exists, err := svc.categories.Exists(ctx, *categoryID)
		if err != nil {
			return 0, nil, err
		}
		if !exists {
			return 0, nil, ErrCategoryNotFound
		}
	}

	stored, err := svc.files.Save(file, declaredFilename)
	if err != nil {
		return 0, nil, err
	}

	id, err := svc.writer.Save(ctx, title, description,
		stored.Filename, stored.OriginalFilename, stored.Path, artistID, categoryID)
	if err != nil {
		logger.Log.Errorw("failed to save artwork", "title", title, "error", err)
		return 0, nil, err
	}

	publishEvent(ctx, svc.kafkaWriter, models.EventArtworkSubmitted, artistID, id)
	return id, stored, nil
}

// ListCategories returns every category with its artwork cardinality.
func (svc *CatalogService) ListCategories(ctx context.Context) ([]models.CategoryWithCount, error) {
	return svc.categories.ListWithCounts(ctx)
}

// CreateCategory adds a category. Duplicate names are rejected by the
// storage constraint.
func (svc *CatalogService) CreateCategory(ctx context.Context, name, description string) (*models.CategoryDB, error) {
	category, err := svc.catWriter.Save(ctx, name, description)
	if err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return nil, ErrCategoryExists
		}
		return nil, err
	}
	return category, nil
}
