package admin

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"github.com/womencards/womencards-backend/internal/profiles"
	"github.com/womencards/womencards-backend/internal/resolver"
	"github.com/womencards/womencards-backend/pkg/config"
	"github.com/womencards/womencards-backend/pkg/db/models"
	"github.com/womencards/womencards-backend/pkg/errors"
	"github.com/womencards/womencards-backend/pkg/logger"
)

// Stats is the dashboard aggregate over all profiles.
type Stats struct {
	TotalProfiles int `json:"totalProfiles"`
	TotalLinks    int `json:"totalLinks"`
	ActiveLinks   int `json:"activeLinks"`
}

// ListEntry is one row of the operator listing. It carries the stored column
// values raw, without merging in editor defaults.
type ListEntry struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	LinkCount int    `json:"linkCount"`
	IsAdmin   bool   `json:"is_admin"`
	IsActive  bool   `json:"is_active"`
}

type adminRepository interface {
	List(ctx context.Context) ([]models.Profile, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
}

// Service backs the operator console.
type Service struct {
	repo adminRepository
	cfg  config.AdminConfig
	logg *logger.Logger
}

// NewService builds the console service.
func NewService(repo adminRepository, cfg config.AdminConfig, logg *logger.Logger) *Service {
	return &Service{repo: repo, cfg: cfg, logg: logg}
}

// Authorize resolves the stored is_admin flag for the identity and applies
// the break-glass allowlist on top. Identities without a profile row can
// still enter through the allowlist.
func (s *Service) Authorize(ctx context.Context, userID, email string) (bool, error) {
	session := resolver.Session{ID: userID, Email: email}

	if id, err := uuid.Parse(userID); err == nil {
		row, err := s.repo.FindByID(ctx, id)
		switch {
		case err == nil:
			session.IsAdmin = row.IsAdmin
		case profiles.IsNotFound(err):
		default:
			return false, errors.Wrap(errors.CodeDependency, err, "loading admin flag")
		}
	}

	return s.IsAdmin(ctx, session), nil
}

// IsAdmin reports whether the session may enter the console: either the
// profile row's is_admin column, or the configured break-glass operator
// email. Allowlist grants are logged so they leave a trace.
func (s *Service) IsAdmin(ctx context.Context, session resolver.Session) bool {
	if session.IsAdmin {
		return true
	}
	if s.cfg.BreakGlassEmail == "" || session.Email == "" {
		return false
	}
	if !strings.EqualFold(session.Email, s.cfg.BreakGlassEmail) {
		return false
	}
	if s.logg != nil {
		s.logg.Warn(s.logg.WithUserID(ctx, session.ID), "break-glass admin access granted")
	}
	return true
}

// ListProfiles returns all profiles, optionally filtered by a
// case-insensitive substring over name, username and email.
func (s *Service) ListProfiles(ctx context.Context, search string) ([]ListEntry, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "listing profiles")
	}

	needle := strings.ToLower(strings.TrimSpace(search))
	entries := make([]ListEntry, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		if needle != "" && !matches(row, needle) {
			continue
		}
		entries = append(entries, ListEntry{
			ID:        row.ID.String(),
			Name:      row.Name,
			Username:  row.Username,
			Email:     derefString(row.Email),
			LinkCount: len(decodeLinks(row)),
			IsAdmin:   row.IsAdmin,
			IsActive:  row.IsActive,
		})
	}
	return entries, nil
}

// ComputeStats aggregates the dashboard counters over every stored profile.
func (s *Service) ComputeStats(ctx context.Context) (Stats, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return Stats{}, errors.Wrap(errors.CodeDependency, err, "computing stats")
	}

	stats := Stats{TotalProfiles: len(rows)}
	for i := range rows {
		for _, link := range decodeLinks(&rows[i]) {
			stats.TotalLinks++
			if link.IsActive {
				stats.ActiveLinks++
			}
		}
	}
	return stats, nil
}

func matches(row *models.Profile, needle string) bool {
	if strings.Contains(strings.ToLower(row.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(row.Username), needle) {
		return true
	}
	if row.Email != nil && strings.Contains(strings.ToLower(*row.Email), needle) {
		return true
	}
	return false
}

func decodeLinks(row *models.Profile) []profiles.LinkItem {
	if len(row.Links) == 0 {
		return nil
	}
	var links []profiles.LinkItem
	if err := json.Unmarshal(row.Links, &links); err != nil {
		return nil
	}
	return links
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
