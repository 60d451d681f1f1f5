package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/artfest/gallery-api/internal/db"
)

func setupArtworkPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var conn *sqlx.DB
	for i := 0; i < 10; i++ {
		conn, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	require.NoError(t, db.Migrate(context.Background(), conn))

	teardown := func() {
		conn.Close()
		container.Terminate(context.Background())
	}

	return conn, teardown
}

func seedArtist(t *testing.T, conn *sqlx.DB, username string) int64 {
	t.Helper()
	id, err := NewUserWriteRepository(conn).Save(context.Background(), username, username+"@example.com", "hash")
	require.NoError(t, err)
	return id
}

func seedArtwork(t *testing.T, conn *sqlx.DB, title string, artistID int64, categoryID *int64) int64 {
	t.Helper()
	id, err := NewArtworkWriteRepository(conn).Save(context.Background(),
		title, "a piece", title+".png", title+".png", "uploads/"+title+".png", artistID, categoryID)
	require.NoError(t, err)
	return id
}

func approveArtwork(t *testing.T, conn *sqlx.DB, id int64) {
	t.Helper()
	found, err := NewArtworkWriteRepository(conn).SetApproved(context.Background(), id)
	require.NoError(t, err)
	require.True(t, found)
}

func TestArtworkReadRepository_ApprovalGate(t *testing.T) {
	conn, teardown := setupArtworkPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	readRepo := NewArtworkReadRepository(conn)

	artistID := seedArtist(t, conn, "painter")
	artworkID := seedArtwork(t, conn, "sunrise", artistID, nil)

	t.Run("PendingHiddenFromPublic", func(t *testing.T) {
		artwork, err := readRepo.GetApprovedByID(ctx, artworkID)
		assert.NoError(t, err)
		assert.Nil(t, artwork)
	})

	t.Run("PendingVisibleInternally", func(t *testing.T) {
		artwork, err := readRepo.GetByID(ctx, artworkID)
		assert.NoError(t, err)
		assert.NotNil(t, artwork)
		assert.False(t, artwork.IsApproved)
		assert.Equal(t, "painter", artwork.ArtistUsername)
	})

	t.Run("ApprovedVisible", func(t *testing.T) {
		approveArtwork(t, conn, artworkID)

		artwork, err := readRepo.GetApprovedByID(ctx, artworkID)
		assert.NoError(t, err)
		assert.NotNil(t, artwork)
		assert.True(t, artwork.IsApproved)
		assert.Equal(t, "sunrise", artwork.Title)
	})
}

func TestArtworkReadRepository_ListApproved(t *testing.T) {
	conn, teardown := setupArtworkPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	readRepo := NewArtworkReadRepository(conn)
	writeRepo := NewArtworkWriteRepository(conn)
	voteRepo := NewVoteWriteRepository(conn)

	artistID := seedArtist(t, conn, "sculptor")
	voterID := seedArtist(t, conn, "visitor")

	category, err := NewCategoryWriteRepository(conn).Save(ctx, "Ceramics", "clay works")
	require.NoError(t, err)

	// Three approved artworks, one pending
	aID := seedArtwork(t, conn, "alpha", artistID, nil)
	bID := seedArtwork(t, conn, "beta", artistID, &category.ID)
	cID := seedArtwork(t, conn, "gamma", artistID, nil)
	seedArtwork(t, conn, "pending", artistID, nil)
	for _, id := range []int64{aID, bID, cID} {
		approveArtwork(t, conn, id)
	}

	// beta gets votes, gamma gets featured
	require.NoError(t, voteRepo.Save(ctx, artistID, bID))
	require.NoError(t, voteRepo.Save(ctx, voterID, bID))
	_, found, err := writeRepo.ToggleFeatured(ctx, cID)
	require.NoError(t, err)
	require.True(t, found)

	t.Run("ExcludesPending", func(t *testing.T) {
		artworks, total, err := readRepo.ListApproved(ctx, CatalogFilter{Sort: SortRecent, Page: 1, PerPage: 10})
		assert.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, artworks, 3)
	})

	t.Run("CategoryFilter", func(t *testing.T) {
		artworks, total, err := readRepo.ListApproved(ctx, CatalogFilter{CategoryID: &category.ID, Sort: SortRecent, Page: 1, PerPage: 10})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, "beta", artworks[0].Title)
		assert.NotNil(t, artworks[0].CategoryName)
		assert.Equal(t, "Ceramics", *artworks[0].CategoryName)
	})

	t.Run("FeaturedFilter", func(t *testing.T) {
		artworks, total, err := readRepo.ListApproved(ctx, CatalogFilter{FeaturedOnly: true, Sort: SortRecent, Page: 1, PerPage: 10})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, "gamma", artworks[0].Title)
	})

	t.Run("SortPopular", func(t *testing.T) {
		artworks, _, err := readRepo.ListApproved(ctx, CatalogFilter{Sort: SortPopular, Page: 1, PerPage: 10})
		assert.NoError(t, err)
		require.Len(t, artworks, 3)
		assert.Equal(t, "beta", artworks[0].Title)
		assert.Equal(t, int64(2), artworks[0].VoteCount)
	})

	t.Run("SortTitle", func(t *testing.T) {
		artworks, _, err := readRepo.ListApproved(ctx, CatalogFilter{Sort: SortTitle, Page: 1, PerPage: 10})
		assert.NoError(t, err)
		require.Len(t, artworks, 3)
		assert.Equal(t, "alpha", artworks[0].Title)
		assert.Equal(t, "beta", artworks[1].Title)
		assert.Equal(t, "gamma", artworks[2].Title)
	})

	t.Run("Pagination", func(t *testing.T) {
		artworks, total, err := readRepo.ListApproved(ctx, CatalogFilter{Sort: SortTitle, Page: 2, PerPage: 2})
		assert.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, artworks, 1)
		assert.Equal(t, "gamma", artworks[0].Title)
	})

	t.Run("PageBeyondEnd", func(t *testing.T) {
		artworks, total, err := readRepo.ListApproved(ctx, CatalogFilter{Sort: SortTitle, Page: 5, PerPage: 10})
		assert.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Empty(t, artworks)
	})
}

func TestArtworkReadRepository_ListForModeration(t *testing.T) {
	conn, teardown := setupArtworkPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	readRepo := NewArtworkReadRepository(conn)

	artistID := seedArtist(t, conn, "artist")
	approvedID := seedArtwork(t, conn, "approved-one", artistID, nil)
	seedArtwork(t, conn, "pending-one", artistID, nil)
	seedArtwork(t, conn, "pending-two", artistID, nil)
	approveArtwork(t, conn, approvedID)

	t.Run("All", func(t *testing.T) {
		artworks, total, err := readRepo.ListForModeration(ctx, ModerationFilter{Status: StatusAll, Page: 1, PerPage: 10})
		assert.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, artworks, 3)
	})

	t.Run("Pending", func(t *testing.T) {
		artworks, total, err := readRepo.ListForModeration(ctx, ModerationFilter{Status: StatusPending, Page: 1, PerPage: 10})
		assert.NoError(t, err)
		assert.Equal(t, int64(2), total)
		for _, a := range artworks {
			assert.False(t, a.IsApproved)
		}
	})

	t.Run("Approved", func(t *testing.T) {
		artworks, total, err := readRepo.ListForModeration(ctx, ModerationFilter{Status: StatusApproved, Page: 1, PerPage: 10})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, "approved-one", artworks[0].Title)
	})
}

func TestArtworkReadRepository_TopVoted(t *testing.T) {
	conn, teardown := setupArtworkPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	readRepo := NewArtworkReadRepository(conn)
	voteRepo := NewVoteWriteRepository(conn)

	artistID := seedArtist(t, conn, "artist")
	voterID := seedArtist(t, conn, "voter")

	popularID := seedArtwork(t, conn, "popular", artistID, nil)
	modestID := seedArtwork(t, conn, "modest", artistID, nil)
	unvotedID := seedArtwork(t, conn, "unvoted", artistID, nil)
	for _, id := range []int64{popularID, modestID, unvotedID} {
		approveArtwork(t, conn, id)
	}

	require.NoError(t, voteRepo.Save(ctx, artistID, popularID))
	require.NoError(t, voteRepo.Save(ctx, voterID, popularID))
	require.NoError(t, voteRepo.Save(ctx, voterID, modestID))

	artworks, err := readRepo.TopVoted(ctx, 10)
	assert.NoError(t, err)
	require.Len(t, artworks, 2)
	assert.Equal(t, "popular", artworks[0].Title)
	assert.Equal(t, int64(2), artworks[0].VoteCount)
	assert.Equal(t, "modest", artworks[1].Title)
}

func TestArtworkWriteRepository_ToggleFeatured(t *testing.T) {
	conn, teardown := setupArtworkPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	writeRepo := NewArtworkWriteRepository(conn)

	artistID := seedArtist(t, conn, "artist")
	artworkID := seedArtwork(t, conn, "flipper", artistID, nil)

	featured, found, err := writeRepo.ToggleFeatured(ctx, artworkID)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.True(t, featured)

	featured, found, err = writeRepo.ToggleFeatured(ctx, artworkID)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.False(t, featured)

	_, found, err = writeRepo.ToggleFeatured(ctx, 99999)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestArtworkWriteRepository_Delete(t *testing.T) {
	conn, teardown := setupArtworkPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	writeRepo := NewArtworkWriteRepository(conn)
	voteRepo := NewVoteWriteRepository(conn)

	artistID := seedArtist(t, conn, "artist")
	artworkID := seedArtwork(t, conn, "doomed", artistID, nil)
	approveArtwork(t, conn, artworkID)
	require.NoError(t, voteRepo.Save(ctx, artistID, artworkID))

	filename, found, err := writeRepo.Delete(ctx, artworkID)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "doomed.png", filename)

	// Votes go with the artwork
	var votes int64
	require.NoError(t, conn.Get(&votes, "SELECT COUNT(*) FROM votes WHERE artwork_id=$1", artworkID))
	assert.Equal(t, int64(0), votes)

	_, found, err = writeRepo.Delete(ctx, artworkID)
	assert.NoError(t, err)
	assert.False(t, found)
}
