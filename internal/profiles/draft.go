package profiles

import (
	"fmt"

	"github.com/google/uuid"

	pkgerrors "github.com/womencards/womencards-backend/pkg/errors"
)

// Field names accepted by SetField. Links and theme have dedicated operations
// and are never mutated through the shallow path.
type Field string

const (
	FieldName      Field = "name"
	FieldUsername  Field = "username"
	FieldBio       Field = "bio"
	FieldAvatarURL Field = "avatarUrl"
	FieldPhone     Field = "phone"
	FieldEmail     Field = "email"
)

// LinkField names accepted by SetLinkField.
type LinkField string

const (
	LinkFieldTitle    LinkField = "title"
	LinkFieldURL      LinkField = "url"
	LinkFieldIsActive LinkField = "isActive"
)

// Direction of a MoveLink swap.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// SetField returns a new snapshot with one shallow field replaced. Unknown
// fields are a local validation error.
func SetField(p UserProfile, field Field, value string) (UserProfile, error) {
	out := p.Clone()
	switch field {
	case FieldName:
		out.Name = value
	case FieldUsername:
		out.Username = value
	case FieldBio:
		out.Bio = value
	case FieldAvatarURL:
		out.AvatarURL = value
	case FieldPhone:
		out.Phone = value
	case FieldEmail:
		out.Email = value
	default:
		return p, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown profile field %q", field))
	}
	return out, nil
}

// AddLink prepends the link with a freshly generated id. The caller's id, if
// any, is discarded: ids are assigned exactly once, here.
func AddLink(p UserProfile, link LinkItem) UserProfile {
	out := p.Clone()
	link.ID = uuid.NewString()
	out.Links = append([]LinkItem{link}, out.Links...)
	return out
}

// RemoveLink drops the link by id. Removing an absent id is a no-op.
func RemoveLink(p UserProfile, id string) UserProfile {
	out := p.Clone()
	kept := out.Links[:0]
	for _, link := range out.Links {
		if link.ID != id {
			kept = append(kept, link)
		}
	}
	out.Links = kept
	return out
}

// MoveLink swaps the link at index with its neighbor. Moving up at index 0 or
// down at the last index leaves the sequence unchanged, as does an
// out-of-range index.
func MoveLink(p UserProfile, index int, direction Direction) UserProfile {
	out := p.Clone()
	if index < 0 || index >= len(out.Links) {
		return out
	}
	switch direction {
	case DirectionUp:
		if index > 0 {
			out.Links[index], out.Links[index-1] = out.Links[index-1], out.Links[index]
		}
	case DirectionDown:
		if index < len(out.Links)-1 {
			out.Links[index], out.Links[index+1] = out.Links[index+1], out.Links[index]
		}
	}
	return out
}

// SetLinkField mutates one link's title, url, or active flag, leaving its
// position and the other links untouched.
func SetLinkField(p UserProfile, id string, field LinkField, value any) (UserProfile, error) {
	out := p.Clone()
	for i, link := range out.Links {
		if link.ID != id {
			continue
		}
		switch field {
		case LinkFieldTitle:
			s, ok := value.(string)
			if !ok {
				return p, pkgerrors.New(pkgerrors.CodeValidation, "link title must be a string")
			}
			out.Links[i].Title = s
		case LinkFieldURL:
			s, ok := value.(string)
			if !ok {
				return p, pkgerrors.New(pkgerrors.CodeValidation, "link url must be a string")
			}
			out.Links[i].URL = s
		case LinkFieldIsActive:
			b, ok := value.(bool)
			if !ok {
				return p, pkgerrors.New(pkgerrors.CodeValidation, "link isActive must be a boolean")
			}
			out.Links[i].IsActive = b
		default:
			return p, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown link field %q", field))
		}
		return out, nil
	}
	// absent id: snapshot unchanged
	return out, nil
}

// ApplyTheme replaces the theme wholesale. Partial merges would leave hybrid
// themes, so they are not offered.
func ApplyTheme(p UserProfile, theme ThemeConfig) UserProfile {
	out := p.Clone()
	out.Theme = theme
	return out
}

// Draft holds the single in-memory mutable copy of the profile being edited.
// It is owned by exactly one editing session; operations are synchronous and
// each produces a fresh snapshot, so no locking discipline is required.
type Draft struct {
	current UserProfile
}

// NewDraft seeds the editor, usually with DefaultProfile or a fetched row.
func NewDraft(initial UserProfile) *Draft {
	return &Draft{current: initial.Clone()}
}

// Snapshot returns a copy of the current draft.
func (d *Draft) Snapshot() UserProfile {
	return d.current.Clone()
}

// Replace loads a whole profile, used after a successful fetch.
func (d *Draft) Replace(p UserProfile) {
	d.current = p.Clone()
}

func (d *Draft) SetField(field Field, value string) error {
	next, err := SetField(d.current, field, value)
	if err != nil {
		return err
	}
	d.current = next
	return nil
}

func (d *Draft) AddLink(link LinkItem) {
	d.current = AddLink(d.current, link)
}

func (d *Draft) RemoveLink(id string) {
	d.current = RemoveLink(d.current, id)
}

func (d *Draft) MoveLink(index int, direction Direction) {
	d.current = MoveLink(d.current, index, direction)
}

func (d *Draft) SetLinkField(id string, field LinkField, value any) error {
	next, err := SetLinkField(d.current, id, field, value)
	if err != nil {
		return err
	}
	d.current = next
	return nil
}

func (d *Draft) ApplyTheme(theme ThemeConfig) {
	d.current = ApplyTheme(d.current, theme)
}
