package handlers

import (
	"context"
	"net/http"

	"github.com/artfest/gallery-api/internal/logger"
)

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Logout(ctx context.Context, tokenString string) error
}

// NewLogoutHandler returns an HTTP handler that ends the current session.
// Logout is idempotent: requests without a resolvable session still succeed.
// @Summary Log out
// @Description Invalidates the server-side session and clears the cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MessageResponse "Session ended"
// @Router /api/auth/logout [post]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if tokenString, err := svc.GetTokenFromRequest(ctx, r); err == nil {
			if err := svc.Logout(ctx, tokenString); err != nil {
				logger.Log.Errorw("failed to delete session", "err", err)
			}
		}

		clearSessionCookie(w)
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Logout successful"})
	}
}
