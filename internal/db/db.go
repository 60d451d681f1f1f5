package db

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/artfest/gallery-api/internal/logger"
)

// schema creates all tables if they do not exist. Uniqueness of usernames,
// emails, category names and (user_id, artwork_id) vote pairs is enforced
// here, at the storage layer, so concurrent duplicate submissions resolve at
// the constraint rather than in application code.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	username VARCHAR(80) NOT NULL UNIQUE,
	email VARCHAR(120) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	is_admin BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS categories (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR(100) NOT NULL UNIQUE,
	description TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS artworks (
	id BIGSERIAL PRIMARY KEY,
	title VARCHAR(200) NOT NULL,
	description TEXT,
	filename VARCHAR(255) NOT NULL UNIQUE,
	original_filename VARCHAR(255),
	file_path VARCHAR(500) NOT NULL,
	artist_id BIGINT NOT NULL REFERENCES users(id),
	category_id BIGINT REFERENCES categories(id),
	is_featured BOOLEAN NOT NULL DEFAULT FALSE,
	is_approved BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS votes (
	id BIGSERIAL PRIMARY KEY,
	user_id BIGINT NOT NULL REFERENCES users(id),
	artwork_id BIGINT NOT NULL REFERENCES artworks(id) ON DELETE CASCADE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CONSTRAINT unique_vote UNIQUE (user_id, artwork_id)
);

CREATE TABLE IF NOT EXISTS comments (
	id BIGSERIAL PRIMARY KEY,
	content TEXT NOT NULL,
	user_id BIGINT NOT NULL REFERENCES users(id),
	artwork_id BIGINT NOT NULL REFERENCES artworks(id) ON DELETE CASCADE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS festival_settings (
	id BIGSERIAL PRIMARY KEY,
	key VARCHAR(100) NOT NULL UNIQUE,
	value TEXT,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// defaultCategories are seeded on first run.
var defaultCategories = []struct {
	Name        string
	Description string
}{
	{"Paintings", "Traditional and digital paintings"},
	{"Photography", "Photographic works"},
	{"Sculptures", "3D artistic works"},
	{"Digital Art", "Computer-generated artwork"},
	{"Mixed Media", "Art using multiple mediums"},
}

// Migrate creates the schema and seeds the default categories.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		logger.Log.Errorw("failed to create schema", "error", err)
		return err
	}

	const seed = `
		INSERT INTO categories (name, description)
		VALUES ($1, $2)
		ON CONFLICT (name) DO NOTHING
	`
	for _, c := range defaultCategories {
		if _, err := db.ExecContext(ctx, seed, c.Name, c.Description); err != nil {
			logger.Log.Errorw("failed to seed category", "name", c.Name, "error", err)
			return err
		}
	}

	logger.Log.Infow("database migrated", "default_categories", len(defaultCategories))
	return nil
}
