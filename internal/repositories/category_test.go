package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryReadRepository_ListWithCounts(t *testing.T) {
	conn, teardown := setupArtworkPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	readRepo := NewCategoryReadRepository(conn)

	categories, err := readRepo.ListWithCounts(ctx)
	assert.NoError(t, err)

	// Migration seeds the default festival categories
	require.Len(t, categories, 5)
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
		assert.Equal(t, int64(0), c.ArtworkCount)
	}
	assert.Equal(t, []string{"Digital Art", "Mixed Media", "Paintings", "Photography", "Sculptures"}, names)
}

func TestCategoryReadRepository_CountsArtworks(t *testing.T) {
	conn, teardown := setupArtworkPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	readRepo := NewCategoryReadRepository(conn)

	var paintingsID int64
	require.NoError(t, conn.Get(&paintingsID, "SELECT id FROM categories WHERE name=$1", "Paintings"))

	artistID := seedArtist(t, conn, "artist")
	seedArtwork(t, conn, "one", artistID, &paintingsID)
	seedArtwork(t, conn, "two", artistID, &paintingsID)

	categories, err := readRepo.ListWithCounts(ctx)
	assert.NoError(t, err)

	for _, c := range categories {
		if c.ID == paintingsID {
			assert.Equal(t, int64(2), c.ArtworkCount)
		}
	}
}

func TestCategoryReadRepository_Exists(t *testing.T) {
	conn, teardown := setupArtworkPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	readRepo := NewCategoryReadRepository(conn)

	var id int64
	require.NoError(t, conn.Get(&id, "SELECT id FROM categories WHERE name=$1", "Photography"))

	ok, err := readRepo.Exists(ctx, id)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = readRepo.Exists(ctx, 99999)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestCategoryWriteRepository_Save(t *testing.T) {
	conn, teardown := setupArtworkPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	writeRepo := NewCategoryWriteRepository(conn)

	category, err := writeRepo.Save(ctx, "Street Art", "murals and installations")
	assert.NoError(t, err)
	require.NotNil(t, category)
	assert.Greater(t, category.ID, int64(0))
	assert.Equal(t, "Street Art", category.Name)

	_, err = writeRepo.Save(ctx, "Street Art", "again")
	assert.ErrorIs(t, err, ErrUniqueViolation)
}
