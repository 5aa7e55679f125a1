package publisher

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/womencards/womencards-backend/internal/profiles"
	"github.com/womencards/womencards-backend/pkg/db"
	"github.com/womencards/womencards-backend/pkg/db/models"
	"github.com/womencards/womencards-backend/pkg/errors"
	"github.com/womencards/womencards-backend/pkg/logger"
	"github.com/womencards/womencards-backend/pkg/metrics"
)

const schemaMismatchGuidance = "the profile store is missing a column this version writes; run pending migrations before saving again"

// usernameConstraint is the unique index created by the profiles migration.
const usernameConstraint = "profiles_username_key"

// store is the slice of the profile repository a save needs.
type store interface {
	Upsert(ctx context.Context, row *models.Profile) error
}

// Synchronizer turns a draft snapshot into one idempotent upsert. At most one
// save per profile is in flight at a time; a second call for the same profile
// arriving while one is pending is rejected with a state conflict instead of
// queuing, and either way the store only ever sees whole, validated rows.
// Saves of unrelated profiles proceed independently.
type Synchronizer struct {
	store   store
	logg    *logger.Logger
	metrics *metrics.Metrics
	now     func() time.Time

	mu       sync.Mutex
	inflight map[uuid.UUID]struct{}
}

// NewSynchronizer builds a Synchronizer over the profile store.
func NewSynchronizer(store store, logg *logger.Logger, m *metrics.Metrics) *Synchronizer {
	return &Synchronizer{
		store:    store,
		logg:     logg,
		metrics:  m,
		now:      time.Now,
		inflight: make(map[uuid.UUID]struct{}),
	}
}

func (s *Synchronizer) begin(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[id]; busy {
		return false
	}
	s.inflight[id] = struct{}{}
	return true
}

func (s *Synchronizer) end(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, id)
}

// Save validates, normalizes, stamps and upserts the profile. The returned
// profile carries the normalized username and the stamped timestamp so the
// caller's draft can be refreshed from it.
func (s *Synchronizer) Save(ctx context.Context, profile profiles.UserProfile) (profiles.UserProfile, error) {
	id := uuid.Nil
	if profile.ID != nil {
		id = *profile.ID
	}
	if !s.begin(id) {
		return profiles.UserProfile{}, errors.New(errors.CodeStateConflict, "a save is already in flight for this profile")
	}
	defer s.end(id)

	started := s.now()

	if err := profiles.Validate(profile); err != nil {
		s.metrics.ObserveSave("validation", s.now().Sub(started))
		return profiles.UserProfile{}, err
	}

	stamped := profile.Clone()
	stamped.Username = profiles.NormalizeUsername(stamped.Username)
	updatedAt := s.now().UTC()

	row, err := profiles.ToModel(stamped, updatedAt)
	if err != nil {
		s.metrics.ObserveSave("validation", s.now().Sub(started))
		return profiles.UserProfile{}, err
	}

	if err := s.store.Upsert(ctx, row); err != nil {
		outcome, mapped := s.mapStoreError(err)
		s.metrics.ObserveSave(outcome, s.now().Sub(started))
		if s.logg != nil {
			s.logg.Error(s.logg.WithUsername(ctx, stamped.Username), "profile save failed", err)
		}
		return profiles.UserProfile{}, mapped
	}

	s.metrics.ObserveSave("success", s.now().Sub(started))
	if s.logg != nil {
		s.logg.Info(s.logg.WithUsername(ctx, stamped.Username), "profile saved")
	}
	return stamped, nil
}

func (s *Synchronizer) mapStoreError(err error) (string, error) {
	switch {
	case db.IsUniqueViolation(err, usernameConstraint):
		return "conflict", errors.Wrap(errors.CodeConflict, err, "username already taken")
	case db.IsUndefinedColumn(err):
		return "schema_mismatch", errors.Wrap(errors.CodeSchemaMismatch, err, "profile store schema is out of date").
			WithDetails(map[string]any{"guidance": schemaMismatchGuidance})
	default:
		return "dependency", errors.Wrap(errors.CodeDependency, err, "profile save failed")
	}
}
