package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/artfest/gallery-api/internal/logger"
	"github.com/artfest/gallery-api/internal/models"
)

// SessionResolver turns an inbound request into the session bound to it.
type SessionResolver interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Resolve(ctx context.Context, tokenString string) (*models.Session, error)
}

var sessionKey = contextKey{"session"}

// setSessionToContext stores the resolved session in the context.
func setSessionToContext(ctx context.Context, s *models.Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// GetSessionFromContext retrieves the session from the context.
// Returns nil if the request is unauthenticated.
func GetSessionFromContext(ctx context.Context) *models.Session {
	s, _ := ctx.Value(sessionKey).(*models.Session)
	return s
}

// Auth returns a middleware that resolves the session token and stores the
// session in the request context. Requests without a valid session get 401.
func Auth(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := resolver.GetTokenFromRequest(ctx, r)
			if err != nil {
				writeAuthError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			session, err := resolver.Resolve(ctx, tokenString)
			if err != nil || session == nil {
				logger.Log.Infow("session resolution failed", "error", err)
				writeAuthError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			next.ServeHTTP(w, r.WithContext(setSessionToContext(ctx, session)))
		})
	}
}

// Admin returns a middleware that requires the session resolved by Auth to
// belong to an administrator. Must be composed after Auth.
func Admin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := GetSessionFromContext(r.Context())
		if session == nil {
			writeAuthError(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		if !session.IsAdmin {
			writeAuthError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeAuthError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
