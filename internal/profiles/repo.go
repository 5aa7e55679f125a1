package profiles

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/womencards/womencards-backend/pkg/db/models"
)

// Repository is the consumer of the remote profile store: point reads by id
// and by normalized username, a bulk listing for the admin console, and one
// idempotent upsert keyed by id.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a profiles repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByID loads a profile row by account id.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	var row models.Profile
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// FindByUsername loads a profile row by handle. The lookup is always against
// the normalized value; usernames are stored normalized.
func (r *Repository) FindByUsername(ctx context.Context, username string) (*models.Profile, error) {
	var row models.Profile
	normalized := NormalizeUsername(username)
	if err := r.db.WithContext(ctx).Where("username = ?", normalized).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns every profile row, admin listing only.
func (r *Repository) List(ctx context.Context) ([]models.Profile, error) {
	var rows []models.Profile
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Upsert inserts or updates the row keyed by id. Repeating the same input
// produces the same remote state; there is no duplicate-creation path.
func (r *Repository) Upsert(ctx context.Context, row *models.Profile) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "username", "bio", "avatar_url", "phone", "email",
			"links", "theme", "is_active", "updated_at",
		}),
	}).Create(row).Error
}

// UsernameOwner returns the id of the row currently holding the normalized
// form of username, or nil when no row holds it.
func (r *Repository) UsernameOwner(ctx context.Context, username string) (*uuid.UUID, error) {
	var row models.Profile
	normalized := NormalizeUsername(username)
	err := r.db.WithContext(ctx).Select("id").Where("username = ?", normalized).First(&row).Error
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	id := row.ID
	return &id, nil
}

// IsNotFound reports whether err is the store's missing-row marker.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
