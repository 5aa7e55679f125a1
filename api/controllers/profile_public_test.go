package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/womencards/womencards-backend/internal/profiles"
	"github.com/womencards/womencards-backend/internal/resolver"
	pkgerrors "github.com/womencards/womencards-backend/pkg/errors"
)

type outcomeResolver struct {
	view resolver.PublicView
	err  error
}

func (s outcomeResolver) ResolveForUsername(_ context.Context, _ string) (resolver.PublicView, error) {
	return s.view, s.err
}

func servePublicProfile(t *testing.T, public PublicResolver, username string) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	r.Get("/profiles/{username}", PublicProfile(public, nil))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profiles/"+username, nil))
	return rec
}

func TestPublicProfileFound(t *testing.T) {
	view := resolver.PublicView{
		Outcome: resolver.OutcomeFound,
		Profile: &profiles.PublicProfileView{Name: "Alice", Username: "alice"},
	}
	rec := servePublicProfile(t, outcomeResolver{view: view}, "alice")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"alice"`) {
		t.Fatalf("payload must include the profile: %s", rec.Body)
	}
}

func TestPublicProfileNotFound(t *testing.T) {
	rec := servePublicProfile(t, outcomeResolver{view: resolver.PublicView{Outcome: resolver.OutcomeNotFound}}, "nobody")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestPublicProfileDeactivated(t *testing.T) {
	rec := servePublicProfile(t, outcomeResolver{view: resolver.PublicView{Outcome: resolver.OutcomeDeactivated}}, "dora")
	if rec.Code != http.StatusGone {
		t.Fatalf("deactivated must be 410, not 404: got %d", rec.Code)
	}
}

func TestPublicProfileStoreFailure(t *testing.T) {
	err := pkgerrors.New(pkgerrors.CodeDependency, "store unavailable")
	rec := servePublicProfile(t, outcomeResolver{err: err}, "alice")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}
