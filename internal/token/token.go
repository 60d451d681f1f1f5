package token

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the cookie carrying the session token.
const CookieName = "gallery_session"

// Service signs and verifies session tokens. The token carries only an
// opaque session id; the session content itself lives server-side, so
// deleting the stored session revokes the token.
type Service struct {
	SecretKey string        // Secret key for signing tokens
	Exp       time.Duration // Token expiration duration
}

// New creates a new token Service.
func New(secretKey string, expiration time.Duration) *Service {
	return &Service{
		SecretKey: secretKey,
		Exp:       expiration,
	}
}

// Generate creates a signed token for a given session id.
func (s *Service) Generate(ctx context.Context, sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"sid": sessionID,
		"exp": time.Now().Add(s.Exp).Unix(),
		"iat": time.Now().Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.SecretKey))
}

// GetSessionID parses the token string and returns the session id if valid.
func (s *Service) GetSessionID(ctx context.Context, tokenString string) (string, error) {
	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.SecretKey), nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := t.Claims.(jwt.MapClaims); ok && t.Valid {
		if sid, ok := claims["sid"].(string); ok && sid != "" {
			return sid, nil
		}
		return "", errors.New("sid not found in token")
	}
	return "", errors.New("invalid token")
}

// GetTokenFromRequest extracts the token from the session cookie, falling
// back to a bearer Authorization header for non-browser clients.
func (s *Service) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return c.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("no session token in request")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
