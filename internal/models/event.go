package models

// Event types published to the festival event stream.
const (
	EventArtworkSubmitted = "artwork_submitted"
	EventArtworkApproved  = "artwork_approved"
	EventArtworkFeatured  = "artwork_featured"
	EventArtworkDeleted   = "artwork_deleted"
	EventVoteCast         = "vote_cast"
	EventVoteRemoved      = "vote_removed"
)

// Event is a domain event published to Kafka.
type Event struct {
	EventID   string `json:"event_id"`   // Unique event identifier
	Timestamp int64  `json:"timestamp"`  // Unix timestamp of the event
	Type      string `json:"type"`       // One of the Event* constants
	UserID    int64  `json:"user_id"`    // Acting user
	ArtworkID int64  `json:"artwork_id"` // Target artwork
}
