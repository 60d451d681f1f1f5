package models

import "time"

// CommentDB represents a comment row joined with its author's username.
// Comments are append-only: no edit or delete exists at the API boundary.
type CommentDB struct {
	ID             int64     `db:"id"`
	Content        string    `db:"content"`
	UserID         int64     `db:"user_id"`
	ArtworkID      int64     `db:"artwork_id"`
	AuthorUsername string    `db:"author_username"`
	CreatedAt      time.Time `db:"created_at"`
}

// CommentItem is the public payload for a comment.
type CommentItem struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	Author    ArtistRef `json:"author"`
	CreatedAt string    `json:"created_at"`
}

// NewCommentItem builds the public payload for a comment row.
func NewCommentItem(c *CommentDB) CommentItem {
	return CommentItem{
		ID:        c.ID,
		Content:   c.Content,
		Author:    ArtistRef{ID: c.UserID, Username: c.AuthorUsername},
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
