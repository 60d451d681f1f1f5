package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/artfest/gallery-api/internal/logger"
	"github.com/artfest/gallery-api/internal/models"
)

// SessionRepository keeps server-side sessions in Redis with a bounded TTL.
// Deleting the entry invalidates every token that references it.
type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionRepository creates a session repository with the given lifetime.
func NewSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		client: client,
		ttl:    ttl,
	}
}

func sessionRedisKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

// Save stores the session under its id.
func (r *SessionRepository) Save(ctx context.Context, sessionID string, session models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	key := sessionRedisKey(sessionID)
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		logger.Log.Errorw("failed to save session", "key", key, "error", err)
		return err
	}

	logger.Log.Infow("session saved", "key", key, "user_id", session.UserID)
	return nil
}

// Get returns the session for an id, or nil when it expired or never existed.
func (r *SessionRepository) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	key := sessionRedisKey(sessionID)

	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to get session", "key", key, "error", err)
		return nil, err
	}

	var session models.Session
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		logger.Log.Errorw("failed to decode session", "key", key, "error", err)
		return nil, err
	}
	return &session, nil
}

// Delete removes the session. Deleting an absent session is not an error,
// which keeps logout idempotent.
func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	key := sessionRedisKey(sessionID)
	if err := r.client.Del(ctx, key).Err(); err != nil {
		logger.Log.Errorw("failed to delete session", "key", key, "error", err)
		return err
	}
	return nil
}
