package profiles

import (
	"encoding/json"
	"time"

	"github.com/womencards/womencards-backend/pkg/db/models"
	dbtypes "github.com/womencards/womencards-backend/pkg/db/types"
	pkgerrors "github.com/womencards/womencards-backend/pkg/errors"
)

var errMissingID = pkgerrors.New(pkgerrors.CodeValidation, "profile id is required")

// ToModel converts a draft snapshot into the persisted row shape. The caller
// must have assigned an id; username is stored normalized.
func ToModel(p UserProfile, updatedAt time.Time) (*models.Profile, error) {
	if p.ID == nil {
		return nil, errMissingID
	}

	links, err := json.Marshal(p.Links)
	if err != nil {
		return nil, err
	}
	theme, err := json.Marshal(p.Theme)
	if err != nil {
		return nil, err
	}

	row := &models.Profile{
		ID:        *p.ID,
		Name:      p.Name,
		Username:  NormalizeUsername(p.Username),
		Bio:       p.Bio,
		AvatarURL: p.AvatarURL,
		Links:     dbtypes.JSONDocument(links),
		Theme:     dbtypes.JSONDocument(theme),
		IsAdmin:   p.IsAdmin,
		IsActive:  p.IsActive,
		UpdatedAt: updatedAt,
	}
	if p.Phone != "" {
		phone := p.Phone
		row.Phone = &phone
	}
	if p.Email != "" {
		email := p.Email
		row.Email = &email
	}
	return row, nil
}

// MergeWithDefaults folds a remote row into a fallback profile: every field is
// taken from the row when present and non-empty, else from the fallback. The
// remote schema may lag the application schema, so absent or unreadable
// columns degrade to defaults instead of failing.
func MergeWithDefaults(row *models.Profile, fallback UserProfile) UserProfile {
	out := fallback.Clone()
	if row == nil {
		return out
	}

	id := row.ID
	out.ID = &id
	if row.Name != "" {
		out.Name = row.Name
	}
	if row.Username != "" {
		out.Username = row.Username
	}
	if row.Bio != "" {
		out.Bio = row.Bio
	}
	if row.AvatarURL != "" {
		out.AvatarURL = row.AvatarURL
	}
	if row.Phone != nil && *row.Phone != "" {
		out.Phone = *row.Phone
	}
	if row.Email != nil && *row.Email != "" {
		out.Email = *row.Email
	}

	if len(row.Links) > 0 {
		var links []LinkItem
		if err := json.Unmarshal(row.Links, &links); err == nil && links != nil {
			out.Links = links
		}
	}
	if len(row.Theme) > 0 {
		var theme ThemeConfig
		if err := json.Unmarshal(row.Theme, &theme); err == nil && theme.ID != "" {
			out.Theme = theme
		}
	}

	out.IsAdmin = row.IsAdmin
	out.IsActive = row.IsActive
	return out
}

// PublicProfileView is the transport shape rendered on a public page. Contact
// fields are included only when the owner filled them in.
type PublicProfileView struct {
	Name      string      `json:"name"`
	Username  string      `json:"username"`
	Bio       string      `json:"bio"`
	AvatarURL string      `json:"avatarUrl"`
	Phone     string      `json:"phone,omitempty"`
	Email     string      `json:"email,omitempty"`
	Links     []LinkItem  `json:"links"`
	Theme     ThemeConfig `json:"theme"`
}

// ToPublicView strips owner-only fields from a merged profile.
func ToPublicView(p UserProfile) PublicProfileView {
	return PublicProfileView{
		Name:      p.Name,
		Username:  p.Username,
		Bio:       p.Bio,
		AvatarURL: p.AvatarURL,
		Phone:     p.Phone,
		Email:     p.Email,
		Links:     append([]LinkItem(nil), p.Links...),
		Theme:     p.Theme,
	}
}
