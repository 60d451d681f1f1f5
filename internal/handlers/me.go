package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/artfest/gallery-api/internal/logger"
	"github.com/artfest/gallery-api/internal/middlewares"
	"github.com/artfest/gallery-api/internal/models"
	"github.com/artfest/gallery-api/internal/services"
)

// CurrentUserer resolves the user bound to the session.
type CurrentUserer interface {
	CurrentUser(ctx context.Context, userID int64) (*models.UserDB, error)
}

// MeResponse wraps the authenticated user's identity.
// swagger:model MeResponse
type MeResponse struct {
	User models.UserResponse `json:"user"`
}

// NewMeHandler returns an HTTP handler for the current-user endpoint.
// Routed behind the auth middleware.
// @Summary Current user
// @Description Returns the identity bound to the active session.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MeResponse "Authenticated user"
// @Failure 401 {object} handlers.ErrorResponse "No active session"
// @Router /api/auth/me [get]
func NewMeHandler(svc CurrentUserer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := middlewares.GetSessionFromContext(r.Context())
		if session == nil {
			writeError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		user, err := svc.CurrentUser(r.Context(), session.UserID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusUnauthorized, "Authentication required")
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, MeResponse{User: models.NewUserResponse(user)})
	}
}
