package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/womencards/womencards-backend/internal/profiles"
	"github.com/womencards/womencards-backend/internal/resolver"
	"github.com/womencards/womencards-backend/pkg/config"
	"github.com/womencards/womencards-backend/pkg/db/models"
	dbtypes "github.com/womencards/womencards-backend/pkg/db/types"
	pkgerrors "github.com/womencards/womencards-backend/pkg/errors"
)

type fakeListRepo struct {
	rows []models.Profile
	err  error
}

func (f *fakeListRepo) List(_ context.Context) ([]models.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func (f *fakeListRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.rows {
		if f.rows[i].ID == id {
			return &f.rows[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func rowWithLinks(name, username, email string, links []profiles.LinkItem) models.Profile {
	e := email
	return models.Profile{
		ID:       uuid.New(),
		Name:     name,
		Username: username,
		Email:    &e,
		Links:    dbtypes.MustDocument(links),
		IsActive: true,
	}
}

func testRows() []models.Profile {
	return []models.Profile{
		rowWithLinks("Alice", "alice", "alice@women.cards", []profiles.LinkItem{
			{ID: "1", Title: "Shop", URL: "https://a", IsActive: true},
			{ID: "2", Title: "Blog", URL: "https://b", IsActive: false},
		}),
		rowWithLinks("Bob", "bob", "bob@example.com", []profiles.LinkItem{
			{ID: "3", Title: "Site", URL: "https://c", IsActive: true},
		}),
	}
}

func TestComputeStats(t *testing.T) {
	s := NewService(&fakeListRepo{rows: testRows()}, config.AdminConfig{}, nil)

	stats, err := s.ComputeStats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalProfiles != 2 {
		t.Fatalf("expected 2 profiles, got %d", stats.TotalProfiles)
	}
	if stats.TotalLinks != 3 {
		t.Fatalf("expected 3 links, got %d", stats.TotalLinks)
	}
	if stats.ActiveLinks != 2 {
		t.Fatalf("expected 2 active links, got %d", stats.ActiveLinks)
	}
}

func TestListProfilesSearchFilter(t *testing.T) {
	s := NewService(&fakeListRepo{rows: testRows()}, config.AdminConfig{}, nil)

	all, err := s.ListProfiles(context.Background(), "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected both rows, got %d", len(all))
	}
	if all[0].LinkCount != 2 {
		t.Fatalf("expected link count 2, got %d", all[0].LinkCount)
	}

	byEmail, err := s.ListProfiles(context.Background(), "WOMEN.CARDS")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(byEmail) != 1 || byEmail[0].Username != "alice" {
		t.Fatalf("case-insensitive email search failed: %+v", byEmail)
	}

	none, err := s.ListProfiles(context.Background(), "zzz")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected empty result, got %+v", none)
	}
}

func TestListProfilesStoreFailure(t *testing.T) {
	s := NewService(&fakeListRepo{err: errors.New("down")}, config.AdminConfig{}, nil)

	_, err := s.ListProfiles(context.Background(), "")
	if !pkgerrors.HasCode(err, pkgerrors.CodeDependency) {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestIsAdmin(t *testing.T) {
	cfg := config.AdminConfig{BreakGlassEmail: "ops@women.cards"}
	s := NewService(&fakeListRepo{}, cfg, nil)

	cases := []struct {
		name    string
		session resolver.Session
		want    bool
	}{
		{"column flag", resolver.Session{ID: "1", IsAdmin: true}, true},
		{"break-glass email", resolver.Session{ID: "2", Email: "ops@women.cards"}, true},
		{"break-glass case-insensitive", resolver.Session{ID: "3", Email: "OPS@Women.Cards"}, true},
		{"plain user", resolver.Session{ID: "4", Email: "alice@women.cards"}, false},
		{"empty email", resolver.Session{ID: "5"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.IsAdmin(context.Background(), tc.session); got != tc.want {
				t.Fatalf("IsAdmin = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAuthorizeReadsStoredFlag(t *testing.T) {
	adminRow := rowWithLinks("Root", "root", "root@women.cards", nil)
	adminRow.IsAdmin = true
	plainRow := rowWithLinks("Alice", "alice", "alice@women.cards", nil)

	s := NewService(&fakeListRepo{rows: []models.Profile{adminRow, plainRow}}, config.AdminConfig{}, nil)

	ok, err := s.Authorize(context.Background(), adminRow.ID.String(), "root@women.cards")
	if err != nil {
		t.Fatalf("authorize: %v", err)
	}
	if !ok {
		t.Fatalf("stored is_admin flag must grant access")
	}

	ok, err = s.Authorize(context.Background(), plainRow.ID.String(), "alice@women.cards")
	if err != nil {
		t.Fatalf("authorize: %v", err)
	}
	if ok {
		t.Fatalf("plain users must be refused")
	}
}

func TestAuthorizeBreakGlassWithoutRow(t *testing.T) {
	cfg := config.AdminConfig{BreakGlassEmail: "ops@women.cards"}
	s := NewService(&fakeListRepo{}, cfg, nil)

	ok, err := s.Authorize(context.Background(), uuid.NewString(), "ops@women.cards")
	if err != nil {
		t.Fatalf("authorize: %v", err)
	}
	if !ok {
		t.Fatalf("allowlisted operator must enter even without a profile row")
	}
}

func TestIsAdminWithoutAllowlist(t *testing.T) {
	s := NewService(&fakeListRepo{}, config.AdminConfig{}, nil)
	if s.IsAdmin(context.Background(), resolver.Session{ID: "1", Email: "anyone@example.com"}) {
		t.Fatalf("no allowlist configured, nothing should match")
	}
}
