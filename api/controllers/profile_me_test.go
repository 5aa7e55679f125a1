package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/womencards/womencards-backend/api/middleware"
	"github.com/womencards/womencards-backend/internal/profiles"
)

type recordingSaver struct {
	saved *profiles.UserProfile
	err   error
}

func (s *recordingSaver) Save(_ context.Context, p profiles.UserProfile) (profiles.UserProfile, error) {
	if s.err != nil {
		return profiles.UserProfile{}, s.err
	}
	s.saved = &p
	return p, nil
}

type ownerService struct{}

func (ownerService) LoadForOwner(_ context.Context, ownerID uuid.UUID) (profiles.UserProfile, error) {
	p := profiles.DefaultProfile()
	id := ownerID
	p.ID = &id
	return p, nil
}

func identifiedRequest(method, target, body string, userID uuid.UUID) *http.Request {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	ctx := middleware.WithIdentity(req.Context(), userID.String(), "amina@women.cards", "sess-1")
	return req.WithContext(ctx)
}

func TestMeGetProfileRequiresIdentity(t *testing.T) {
	handler := MeGetProfile(ownerService{}, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me/profile", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %d", rec.Code)
	}
}

func TestMeGetProfileReturnsOwnerDraft(t *testing.T) {
	ownerID := uuid.New()
	handler := MeGetProfile(ownerService{}, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, identifiedRequest(http.MethodGet, "/me/profile", "", ownerID))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}
	if !strings.Contains(rec.Body.String(), ownerID.String()) {
		t.Fatalf("draft must carry the session owner's id: %s", rec.Body)
	}
}

func TestMePutProfileTakesIDFromSession(t *testing.T) {
	ownerID := uuid.New()
	saver := &recordingSaver{}
	handler := MePutProfile(saver, nil)

	body := `{"name":"Amina","username":"amina","bio":"hello","links":[],"theme":{"id":"dawn","name":"Dawn","backgroundStart":"#ffffff","backgroundEnd":"#fde4ec","buttonBg":"#111111","buttonText":"#ffffff","textColor":"#111111","fontFamily":"Inter"}}`
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, identifiedRequest(http.MethodPut, "/me/profile", body, ownerID))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}
	if saver.saved == nil || saver.saved.ID == nil || *saver.saved.ID != ownerID {
		t.Fatalf("saved profile must carry the session id, got %+v", saver.saved)
	}
	if !saver.saved.IsActive {
		t.Fatal("is_active must default to true when omitted")
	}
}

func TestMePutProfileRejectsBodyID(t *testing.T) {
	saver := &recordingSaver{}
	handler := MePutProfile(saver, nil)

	body := `{"id":"` + uuid.NewString() + `","username":"amina"}`
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, identifiedRequest(http.MethodPut, "/me/profile", body, uuid.New()))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown field id must be rejected, got %d: %s", rec.Code, rec.Body)
	}
	if saver.saved != nil {
		t.Fatal("rejected body must not reach the saver")
	}
}

func TestMePutProfileValidatesUsername(t *testing.T) {
	saver := &recordingSaver{}
	handler := MePutProfile(saver, nil)

	body := `{"username":"ab"}`
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, identifiedRequest(http.MethodPut, "/me/profile", body, uuid.New()))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("short username must fail validation, got %d", rec.Code)
	}
}

func TestMePutProfileHonorsDeactivation(t *testing.T) {
	saver := &recordingSaver{}
	handler := MePutProfile(saver, nil)

	body := `{"username":"amina","is_active":false}`
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, identifiedRequest(http.MethodPut, "/me/profile", body, uuid.New()))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}
	if saver.saved == nil || saver.saved.IsActive {
		t.Fatalf("explicit is_active=false must flow through, got %+v", saver.saved)
	}
}
