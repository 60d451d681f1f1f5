package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"

	"github.com/artfest/gallery-api/internal/middlewares"
	"github.com/artfest/gallery-api/internal/models"
)

// withRouteID attaches a chi route context carrying the {id} parameter.
func withRouteID(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// serveAuthed runs the handler behind the auth middleware with a resolver
// that yields the given session, the way the router composes it.
func serveAuthed(t *testing.T, h http.Handler, req *http.Request, s *models.Session) *httptest.ResponseRecorder {
	t.Helper()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := middlewares.NewMockSessionResolver(ctrl)
	resolver.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token123", nil)
	resolver.EXPECT().Resolve(gomock.Any(), "token123").Return(s, nil)

	rr := httptest.NewRecorder()
	middlewares.Auth(resolver)(h).ServeHTTP(rr, req)
	return rr
}
