package services

import (
	"context"
	"errors"

	"github.com/artfest/gallery-api/internal/logger"
	"github.com/artfest/gallery-api/internal/models"
	"github.com/artfest/gallery-api/internal/repositories"
)

// Error variables
var (
	ErrAlreadyVoted = errors.New("already voted for this artwork")
	ErrVoteNotFound = errors.New("vote not found")
)

// ApprovedArtworkReader resolves approved artworks by id.
type ApprovedArtworkReader interface {
	GetApprovedByID(ctx context.Context, id int64) (*models.ArtworkDB, error)
}

// VoteWriter defines write operations for votes.
type VoteWriter interface {
	Save(ctx context.Context, userID, artworkID int64) error
	Delete(ctx context.Context, userID, artworkID int64) (bool, error)
}

// VoteCounter returns vote cardinalities.
type VoteCounter interface {
	CountByArtwork(ctx context.Context, artworkID int64) (int64, error)
}

// CommentWriter appends comments.
type CommentWriter interface {
	Save(ctx context.Context, content string, userID, artworkID int64) (*models.CommentDB, error)
}

// CommentReader lists comments.
type CommentReader interface {
	ListByArtwork(ctx context.Context, artworkID int64) ([]models.CommentDB, error)
}

// EngagementService handles voting and comments on approved artworks.
type EngagementService struct {
	artworks    ApprovedArtworkReader
	voteWriter  VoteWriter
	votes       VoteCounter
	commWriter  CommentWriter
	commReader  CommentReader
	kafkaWriter KafkaWriter
}

// NewEngagementService creates a new EngagementService.
func NewEngagementService(
	artworks ApprovedArtworkReader,
	voteWriter VoteWriter,
	votes VoteCounter,
	commWriter CommentWriter,
	commReader CommentReader,
	kafkaWriter KafkaWriter,
) *EngagementService {
	return &EngagementService{
		artworks:    artworks,
		voteWriter:  voteWriter,
		votes:       votes,
		commWriter:  commWriter,
		commReader:  commReader,
		kafkaWriter: kafkaWriter,
	}
}

// CastVote records a vote on an approved artwork and returns the updated
// vote count. A user casts at most one vote per artwork: the duplicate is
// rejected by the storage constraint, so concurrent casts cannot both win.
func (svc *EngagementService) CastVote(ctx context.Context, userID, artworkID int64) (int64, error) {
	artwork, err := svc.artworks.GetApprovedByID(ctx, artworkID)
	if err != nil {
		return 0, err
	}
	if artwork == nil {
		return 0, ErrArtworkNotFound
	}

	if err := svc.voteWriter.Save(ctx, userID, artworkID); err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return 0, ErrAlreadyVoted
		}
		return 0, err
	}

	count, err := svc.votes.CountByArtwork(ctx, artworkID)
	if err != nil {
		return 0, err
	}

	publishEvent(ctx, svc.kafkaWriter, models.EventVoteCast, userID, artworkID)
	return count, nil
}

// RetractVote removes the user's vote and returns the updated vote count,
// zero when the artwork itself no longer exists. Not repeatable: the second
// retraction finds no vote.
func (svc *EngagementService) RetractVote(ctx context.Context, userID, artworkID int64) (int64, error) {
	deleted, err := svc.voteWriter.Delete(ctx, userID, artworkID)
	if err != nil {
		return 0, err
	}
	if !deleted {
		return 0, ErrVoteNotFound
	}

	count, err := svc.votes.CountByArtwork(ctx, artworkID)
	if err != nil {
		return 0, err
	}

	publishEvent(ctx, svc.kafkaWriter, models.EventVoteRemoved, userID, artworkID)
	return count, nil
}

// AddComment appends a comment to an approved artwork. Comments have no
// uniqueness constraint; the same user may comment any number of times.
func (svc *EngagementService) AddComment(ctx context.Context, userID int64, username string, artworkID int64, content string) (*models.CommentDB, error) {
	artwork, err := svc.artworks.GetApprovedByID(ctx, artworkID)
	if err != nil {
		return nil, err
	}
	if artwork == nil {
		return nil, ErrArtworkNotFound
	}

	comment, err := svc.commWriter.Save(ctx, content, userID, artworkID)
	if err != nil {
		logger.Log.Errorw("failed to add comment", "artwork_id", artworkID, "error", err)
		return nil, err
	}
	comment.AuthorUsername = username
	return comment, nil
}

// ListComments returns the comments of an approved artwork, oldest first.
func (svc *EngagementService) ListComments(ctx context.Context, artworkID int64) ([]models.CommentDB, error) {
	artwork, err := svc.artworks.GetApprovedByID(ctx, artworkID)
	if err != nil {
		return nil, err
	}
	if artwork == nil {
		return nil, ErrArtworkNotFound
	}

	return svc.commReader.ListByArtwork(ctx, artworkID)
}
