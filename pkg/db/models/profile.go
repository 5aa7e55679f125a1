package models

import (
	"time"

	"github.com/google/uuid"

	dbtypes "github.com/womencards/womencards-backend/pkg/db/types"
)

// Profile is the persisted row behind a public link-in-bio page. The id is
// assigned by the identity provider at account creation and is the sole upsert
// key; username is a secondary unique index, stored normalized (lowercase,
// trimmed).
type Profile struct {
	ID        uuid.UUID            `gorm:"type:uuid;primaryKey"`
	Name      string               `gorm:"column:name"`
	Username  string               `gorm:"column:username;uniqueIndex"`
	Bio       string               `gorm:"column:bio"`
	AvatarURL string               `gorm:"column:avatar_url"`
	Phone     *string              `gorm:"column:phone"`
	Email     *string              `gorm:"column:email"`
	Links     dbtypes.JSONDocument `gorm:"column:links;type:jsonb"`
	Theme     dbtypes.JSONDocument `gorm:"column:theme;type:jsonb"`
	IsAdmin   bool                 `gorm:"column:is_admin;not null;default:false"`
	IsActive  bool                 `gorm:"column:is_active;not null;default:true"`
	CreatedAt time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time            `gorm:"column:updated_at"`
}

// TableName pins the table used by the remote profile store.
func (Profile) TableName() string {
	return "profiles"
}
