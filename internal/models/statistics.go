package models

// Statistics holds the festival-wide aggregate counts.
type Statistics struct {
	TotalArtworks      int64 `json:"total_artworks" db:"total_artworks"`           // Approved artworks only
	TotalVotes         int64 `json:"total_votes" db:"total_votes"`                 // All votes
	ActiveParticipants int64 `json:"active_participants" db:"active_participants"` // Registered users
	TotalComments      int64 `json:"total_comments" db:"total_comments"`           // All comments
}
