package token

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndGetSessionID(t *testing.T) {
	svc := New("test_secret", time.Hour)
	ctx := context.Background()

	tokenString, err := svc.Generate(ctx, "sid-1")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	sid, err := svc.GetSessionID(ctx, tokenString)
	assert.NoError(t, err)
	assert.Equal(t, "sid-1", sid)
}

func TestGetSessionID_WrongSecret(t *testing.T) {
	ctx := context.Background()

	tokenString, err := New("test_secret", time.Hour).Generate(ctx, "sid-1")
	require.NoError(t, err)

	_, err = New("other_secret", time.Hour).GetSessionID(ctx, tokenString)
	assert.Error(t, err)
}

func TestGetSessionID_Expired(t *testing.T) {
	ctx := context.Background()

	svc := New("test_secret", -time.Minute)
	tokenString, err := svc.Generate(ctx, "sid-1")
	require.NoError(t, err)

	_, err = svc.GetSessionID(ctx, tokenString)
	assert.Error(t, err)
}

func TestGetSessionID_Garbage(t *testing.T) {
	svc := New("test_secret", time.Hour)

	_, err := svc.GetSessionID(context.Background(), "not-a-token")
	assert.Error(t, err)
}

func TestGetTokenFromRequest(t *testing.T) {
	svc := New("test_secret", time.Hour)
	ctx := context.Background()

	t.Run("cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "cookie-token"})

		got, err := svc.GetTokenFromRequest(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, "cookie-token", got)
	})

	t.Run("bearer header fallback", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer header-token")

		got, err := svc.GetTokenFromRequest(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, "header-token", got)
	})

	t.Run("cookie wins over header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "cookie-token"})
		req.Header.Set("Authorization", "Bearer header-token")

		got, err := svc.GetTokenFromRequest(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, "cookie-token", got)
	})

	t.Run("no token at all", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		_, err := svc.GetTokenFromRequest(ctx, req)
		assert.Error(t, err)
	})

	t.Run("malformed authorization header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

		_, err := svc.GetTokenFromRequest(ctx, req)
		assert.Error(t, err)
	})
}
