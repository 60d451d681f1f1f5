package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/artfest/gallery-api/internal/models"
)

func TestStatisticsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("aggregate counts", func(t *testing.T) {
		mockSvc := NewMockSummarizer(ctrl)
		mockSvc.EXPECT().
			Summary(gomock.Any()).
			Return(&models.Statistics{
				TotalArtworks:      12,
				TotalVotes:         48,
				ActiveParticipants: 30,
				TotalComments:      7,
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/statistics", nil)
		rr := httptest.NewRecorder()
		NewStatisticsHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp StatisticsResponse
		err := json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.Equal(t, int64(12), resp.Statistics.TotalArtworks)
		assert.Equal(t, int64(48), resp.Statistics.TotalVotes)
		assert.Equal(t, int64(30), resp.Statistics.ActiveParticipants)
		assert.Equal(t, int64(7), resp.Statistics.TotalComments)
	})

	t.Run("internal server error", func(t *testing.T) {
		mockSvc := NewMockSummarizer(ctrl)
		mockSvc.EXPECT().
			Summary(gomock.Any()).
			Return(nil, errors.New("database failure"))

		req := httptest.NewRequest(http.MethodGet, "/api/statistics", nil)
		rr := httptest.NewRecorder()
		NewStatisticsHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestTopVotedHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("default limit", func(t *testing.T) {
		mockSvc := NewMockTopVoter(ctrl)
		mockSvc.EXPECT().
			TopVoted(gomock.Any(), 10).
			Return([]models.ArtworkDB{
				{ID: 1, Title: "winner", ArtistUsername: "alice", VoteCount: 9, Filename: "a.png"},
				{ID: 2, Title: "runner-up", ArtistUsername: "bob", VoteCount: 5, Filename: "b.png"},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/top-voted", nil)
		rr := httptest.NewRecorder()
		NewTopVotedHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp TopVotedResponse
		err := json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.Len(t, resp.TopVoted, 2)
		assert.Equal(t, "winner", resp.TopVoted[0].Title)
		assert.Equal(t, int64(9), resp.TopVoted[0].VoteCount)
		assert.Equal(t, "/uploads/a.png", resp.TopVoted[0].FilePath)
	})

	t.Run("explicit limit", func(t *testing.T) {
		mockSvc := NewMockTopVoter(ctrl)
		mockSvc.EXPECT().
			TopVoted(gomock.Any(), 3).
			Return([]models.ArtworkDB{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/top-voted?limit=3", nil)
		rr := httptest.NewRecorder()
		NewTopVotedHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"top_voted":[]}`, rr.Body.String())
	})

	t.Run("internal server error", func(t *testing.T) {
		mockSvc := NewMockTopVoter(ctrl)
		mockSvc.EXPECT().
			TopVoted(gomock.Any(), 10).
			Return(nil, errors.New("database failure"))

		req := httptest.NewRequest(http.MethodGet, "/api/top-voted", nil)
		rr := httptest.NewRecorder()
		NewTopVotedHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
