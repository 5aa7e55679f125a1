package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/womencards/womencards-backend/api/middleware"
	"github.com/womencards/womencards-backend/internal/resolver"
)

type stubAuthorizer struct {
	admin bool
}

func (s stubAuthorizer) Authorize(_ context.Context, _, _ string) (bool, error) {
	return s.admin, nil
}

func resolveView(t *testing.T, handler http.HandlerFunc, path string, userID string) (int, viewResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/view?path="+path, nil)
	if userID != "" {
		req = req.WithContext(middleware.WithIdentity(req.Context(), userID, "amina@women.cards", "sess-1"))
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var envelope struct {
		Data viewResponse `json:"data"`
	}
	if rec.Code == http.StatusOK {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	}
	return rec.Code, envelope.Data
}

func TestResolveViewRequiresPath(t *testing.T) {
	handler := ResolveView(outcomeResolver{}, stubAuthorizer{}, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/view", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResolveViewRootModes(t *testing.T) {
	handler := ResolveView(outcomeResolver{}, stubAuthorizer{}, nil)

	code, resp := resolveView(t, handler, "/", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, resolver.KindLanding, resp.Mode.Kind)

	code, resp = resolveView(t, handler, "/", uuid.NewString())
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, resolver.KindEditor, resp.Mode.Kind)
}

func TestResolveViewAdminPath(t *testing.T) {
	granted := ResolveView(outcomeResolver{}, stubAuthorizer{admin: true}, nil)
	code, resp := resolveView(t, granted, "/admin", uuid.NewString())
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, resolver.KindAdminConsole, resp.Mode.Kind)

	denied := ResolveView(outcomeResolver{}, stubAuthorizer{}, nil)
	code, resp = resolveView(t, denied, "/admin", uuid.NewString())
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, resolver.KindAdminRedirect, resp.Mode.Kind)

	code, resp = resolveView(t, denied, "/admin", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, resolver.KindAdminRedirect, resp.Mode.Kind)
}

func TestResolveViewEmbedsPublicLookup(t *testing.T) {
	public := outcomeResolver{view: resolver.PublicView{Outcome: resolver.OutcomeNotFound}}
	handler := ResolveView(public, stubAuthorizer{}, nil)

	code, resp := resolveView(t, handler, "/ghost", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, resolver.KindPublicProfile, resp.Mode.Kind)
	require.Equal(t, "ghost", resp.Mode.Username)
	// a missing profile still resolves the view, the outcome rides along
	require.NotNil(t, resp.PublicView)
	require.Equal(t, resolver.OutcomeNotFound, resp.PublicView.Outcome)
}

func TestResolveViewSkipsLookupForNonProfileModes(t *testing.T) {
	handler := ResolveView(outcomeResolver{}, stubAuthorizer{}, nil)
	code, resp := resolveView(t, handler, "/", "")
	require.Equal(t, http.StatusOK, code)
	require.Nil(t, resp.PublicView)
}
