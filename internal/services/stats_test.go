package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/artfest/gallery-api/internal/models"
	"github.com/artfest/gallery-api/internal/services"
)

func TestStatsService_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := services.NewMockStatisticsReader(ctrl)
	stats.EXPECT().GetStatistics(gomock.Any()).Return(&models.Statistics{
		TotalArtworks:      12,
		TotalVotes:         48,
		ActiveParticipants: 30,
		TotalComments:      7,
	}, nil)

	svc := services.NewStatsService(stats, nil)

	got, err := svc.Summary(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(12), got.TotalArtworks)
	assert.Equal(t, int64(48), got.TotalVotes)
}

func TestStatsService_TopVoted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("explicit limit", func(t *testing.T) {
		artworks := services.NewMockTopVotedReader(ctrl)
		artworks.EXPECT().TopVoted(gomock.Any(), 5).
			Return([]models.ArtworkDB{{ID: 1, Title: "winner", VoteCount: 9}}, nil)

		svc := services.NewStatsService(nil, artworks)

		got, err := svc.TopVoted(context.Background(), 5)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, "winner", got[0].Title)
	})

	t.Run("non-positive limit falls back to default", func(t *testing.T) {
		artworks := services.NewMockTopVotedReader(ctrl)
		artworks.EXPECT().TopVoted(gomock.Any(), 10).Return([]models.ArtworkDB{}, nil)

		svc := services.NewStatsService(nil, artworks)

		got, err := svc.TopVoted(context.Background(), 0)
		assert.NoError(t, err)
		assert.Empty(t, got)
	})
}
