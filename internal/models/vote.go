package models

import "time"

// VoteDB represents a vote record in the database. The (user_id, artwork_id)
// pair is unique: a user casts at most one vote per artwork.
type VoteDB struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	ArtworkID int64     `db:"artwork_id"`
	CreatedAt time.Time `db:"created_at"`
}
