package services

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/artfest/gallery-api/internal/logger"
	"github.com/artfest/gallery-api/internal/models"
	"github.com/artfest/gallery-api/internal/repositories"
)

// Error variables
var (
	ErrUsernameExists     = errors.New("username already exists")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string) (int64, error)
}

// SessionStore keeps server-side session state.
type SessionStore interface {
	Save(ctx context.Context, sessionID string, session models.Session) error
	Get(ctx context.Context, sessionID string) (*models.Session, error)
	Delete(ctx context.Context, sessionID string) error
}

// TokenService signs and verifies the opaque tokens that reference sessions.
type TokenService interface {
	Generate(ctx context.Context, sessionID string) (string, error)
	GetSessionID(ctx context.Context, tokenString string) (string, error)
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// AuthService handles registration, login, logout and session resolution.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	sessions SessionStore
	tokens   TokenService
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, sessions SessionStore, tokens TokenService) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		sessions: sessions,
		tokens:   tokens,
	}
}

// Register creates a user with a bcrypt password hash and establishes a
// session bound to the new identity. The plaintext password is never stored.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) (*models.UserDB, string, error) {
	if existing, err := svc.reader.GetByUsername(ctx, username); err != nil {
		return nil, "", err
	} else if existing != nil {
		return nil, "", ErrUsernameExists
	}

	if existing, err := svc.reader.GetByEmail(ctx, email); err != nil {
		return nil, "", err
	} else if existing != nil {
		return nil, "", ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "error", err)
		return nil, "", err
	}

	id, err := svc.writer.Save(ctx, username, email, string(hashedPassword))
	if err != nil {
		// The storage constraints backstop the pre-checks against a
		// concurrent duplicate registration. The constraint name tells
		// which of the two unique columns collided.
		if errors.Is(err, repositories.ErrUniqueViolation) {
			var uv *repositories.UniqueViolationError
			if errors.As(err, &uv) && strings.Contains(uv.Constraint, "email") {
				return nil, "", ErrEmailExists
			}
			return nil, "", ErrUsernameExists
		}
		return nil, "", err
	}

	user := &models.UserDB{
		ID:       id,
		Username: username,
		Email:    email,
	}

	tokenString, err := svc.createSession(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return user, tokenString, nil
}

// Login authenticates a user and establishes a session.
func (svc *AuthService) Login(ctx context.Context, username, password string) (*models.UserDB, string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "username", username)
		return nil, "", ErrInvalidCredentials
	}

	tokenString, err := svc.createSession(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return user, tokenString, nil
}

// Logout invalidates the session referenced by the token. Unknown or absent
// sessions are ignored, which keeps logout idempotent.
func (svc *AuthService) Logout(ctx context.Context, tokenString string) error {
	sessionID, err := svc.tokens.GetSessionID(ctx, tokenString)
	if err != nil {
		return nil
	}
	return svc.sessions.Delete(ctx, sessionID)
}

// CurrentUser returns the user bound to a session.
func (svc *AuthService) CurrentUser(ctx context.Context, userID int64) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// GetTokenFromRequest extracts the session token from a request.
func (svc *AuthService) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	return svc.tokens.GetTokenFromRequest(ctx, r)
}

// Resolve maps a token onto the server-side session it references.
// Returns nil when the session was invalidated or expired.
func (svc *AuthService) Resolve(ctx context.Context, tokenString string) (*models.Session, error) {
	sessionID, err := svc.tokens.GetSessionID(ctx, tokenString)
	if err != nil {
		return nil, err
	}
	return svc.sessions.Get(ctx, sessionID)
}

func (svc *AuthService) createSession(ctx context.Context, user *models.UserDB) (string, error) {
	sessionID := uuid.NewString()

	session := models.Session{
		UserID:   user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	}
	if err := svc.sessions.Save(ctx, sessionID, session); err != nil {
		logger.Log.Errorw("failed to save session", "user_id", user.ID, "error", err)
		return "", err
	}

	tokenString, err := svc.tokens.Generate(ctx, sessionID)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "user_id", user.ID, "error", err)
		return "", err
	}
	return tokenString, nil
}
