package models

import "time"

// ArtworkDB represents an artwork row joined with its artist, category and
// vote/comment cardinalities. The counts are query-time aggregations, never
// stored columns.
type ArtworkDB struct {
	ID               int64     `db:"id"`
	Title            string    `db:"title"`
	Description      *string   `db:"description"`
	Filename         string    `db:"filename"`
	OriginalFilename *string   `db:"original_filename"`
	FilePath         string    `db:"file_path"`
	ArtistID         int64     `db:"artist_id"`
	ArtistUsername   string    `db:"artist_username"`
	CategoryID       *int64    `db:"category_id"`
	CategoryName     *string   `db:"category_name"`
	IsFeatured       bool      `db:"is_featured"`
	IsApproved       bool      `db:"is_approved"`
	VoteCount        int64     `db:"vote_count"`
	CommentCount     int64     `db:"comment_count"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// ArtistRef is the embedded artist payload of an artwork item.
type ArtistRef struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// CategoryRef is the embedded category payload of an artwork item.
type CategoryRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ArtworkItem is the public catalog payload for a single artwork.
type ArtworkItem struct {
	ID           int64        `json:"id"`
	Title        string       `json:"title"`
	Description  *string      `json:"description"`
	Filename     string       `json:"filename"`
	FilePath     string       `json:"file_path"`
	Artist       ArtistRef    `json:"artist"`
	Category     *CategoryRef `json:"category"`
	VoteCount    int64        `json:"vote_count"`
	CommentCount int64        `json:"comment_count"`
	IsFeatured   bool         `json:"is_featured"`
	CreatedAt    string       `json:"created_at"`
}

// NewArtworkItem builds the public payload for an artwork row.
func NewArtworkItem(a *ArtworkDB) ArtworkItem {
	item := ArtworkItem{
		ID:           a.ID,
		Title:        a.Title,
		Description:  a.Description,
		Filename:     a.Filename,
		FilePath:     "/uploads/" + a.Filename,
		Artist:       ArtistRef{ID: a.ArtistID, Username: a.ArtistUsername},
		VoteCount:    a.VoteCount,
		CommentCount: a.CommentCount,
		IsFeatured:   a.IsFeatured,
		CreatedAt:    a.CreatedAt.Format(time.RFC3339),
	}
	if a.CategoryID != nil && a.CategoryName != nil {
		item.Category = &CategoryRef{ID: *a.CategoryID, Name: *a.CategoryName}
	}
	return item
}

// AdminArtworkItem is the moderation payload: artist and category flattened
// to names, approval state included.
type AdminArtworkItem struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Artist      string  `json:"artist"`
	Category    *string `json:"category"`
	IsApproved  bool    `json:"is_approved"`
	IsFeatured  bool    `json:"is_featured"`
	VoteCount   int64   `json:"vote_count"`
	CreatedAt   string  `json:"created_at"`
	FilePath    string  `json:"file_path"`
}

// NewAdminArtworkItem builds the moderation payload for an artwork row.
func NewAdminArtworkItem(a *ArtworkDB) AdminArtworkItem {
	return AdminArtworkItem{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Artist:      a.ArtistUsername,
		Category:    a.CategoryName,
		IsApproved:  a.IsApproved,
		IsFeatured:  a.IsFeatured,
		VoteCount:   a.VoteCount,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
		FilePath:    "/uploads/" + a.Filename,
	}
}

// TopVotedItem is the payload of the top-voted listing.
type TopVotedItem struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Artist    string `json:"artist"`
	VoteCount int64  `json:"vote_count"`
	FilePath  string `json:"file_path"`
}

// NewTopVotedItem builds the top-voted payload for an artwork row.
func NewTopVotedItem(a *ArtworkDB) TopVotedItem {
	return TopVotedItem{
		ID:        a.ID,
		Title:     a.Title,
		Artist:    a.ArtistUsername,
		VoteCount: a.VoteCount,
		FilePath:  "/uploads/" + a.Filename,
	}
}
