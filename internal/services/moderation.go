package services

import (
	"context"

	"github.com/artfest/gallery-api/internal/logger"
	"github.com/artfest/gallery-api/internal/models"
	"github.com/artfest/gallery-api/internal/repositories"
)

// ModerationReader lists artworks regardless of approval state.
type ModerationReader interface {
	ListForModeration(ctx context.Context, f repositories.ModerationFilter) ([]models.ArtworkDB, int64, error)
}

// ModerationWriter mutates artwork moderation state.
type ModerationWriter interface {
	SetApproved(ctx context.Context, id int64) (bool, error)
	ToggleFeatured(ctx context.Context, id int64) (bool, bool, error)
	Delete(ctx context.Context, id int64) (string, bool, error)
}

// FileRemover deletes a stored upload by its generated filename.
type FileRemover interface {
	Remove(filename string) error
}

// ModerationService handles the admin workflow: listing submissions,
// approving, featuring and removing artworks.
type ModerationService struct {
	reader      ModerationReader
	writer      ModerationWriter
	files       FileRemover
	kafkaWriter KafkaWriter
}

// NewModerationService creates a new ModerationService.
func NewModerationService(reader ModerationReader, writer ModerationWriter, files FileRemover, kafkaWriter KafkaWriter) *ModerationService {
	return &ModerationService{
		reader:      reader,
		writer:      writer,
		files:       files,
		kafkaWriter: kafkaWriter,
	}
}

// List returns one page of artworks for moderation plus the total count.
func (svc *ModerationService) List(ctx context.Context, f repositories.ModerationFilter) ([]models.ArtworkDB, int64, error) {
	return svc.reader.ListForModeration(ctx, f)
}

// Approve makes an artwork visible in the public catalog. Idempotent:
// approving an approved artwork succeeds without effect.
func (svc *ModerationService) Approve(ctx context.Context, adminID, artworkID int64) error {
	found, err := svc.writer.SetApproved(ctx, artworkID)
	if err != nil {
		return err
	}
	if !found {
		return ErrArtworkNotFound
	}

	publishEvent(ctx, svc.kafkaWriter, models.EventArtworkApproved, adminID, artworkID)
	return nil
}

// ToggleFeatured flips the featured flag and returns the new state.
func (svc *ModerationService) ToggleFeatured(ctx context.Context, adminID, artworkID int64) (bool, error) {
	featured, found, err := svc.writer.ToggleFeatured(ctx, artworkID)
	if err != nil {
		return false, err
	}
	if !found {
		return false, ErrArtworkNotFound
	}

	publishEvent(ctx, svc.kafkaWriter, models.EventArtworkFeatured, adminID, artworkID)
	return featured, nil
}

// Delete removes an artwork; its votes and comments fall with it through
// the storage cascade. The stored image is removed best effort.
func (svc *ModerationService) Delete(ctx context.Context, adminID, artworkID int64) error {
	filename, found, err := svc.writer.Delete(ctx, artworkID)
	if err != nil {
		return err
	}
	if !found {
		return ErrArtworkNotFound
	}

	if err := svc.files.Remove(filename); err != nil {
		logger.Log.Errorw("failed to remove artwork file", "filename", filename, "error", err)
	}

	publishEvent(ctx, svc.kafkaWriter, models.EventArtworkDeleted, adminID, artworkID)
	return nil
}
