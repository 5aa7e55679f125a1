package profiles

import "github.com/google/uuid"

const (
	// BioMaxLength caps the bio rendered on the public page.
	BioMaxLength = 150
	// UsernameMinLength is the smallest handle that can claim a public URL.
	UsernameMinLength = 3
)

// LinkItem is one entry of the ordered link sequence. The id is generated once
// at creation and never reused or reassigned; order within the owning profile
// is user-controlled and significant.
type LinkItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	IsActive bool   `json:"isActive"`
}

// ThemeConfig is an immutable value type. Edits always replace the whole
// object; presets are read-only catalog entries.
type ThemeConfig struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	BackgroundStart string `json:"backgroundStart"`
	BackgroundEnd   string `json:"backgroundEnd"`
	ButtonBg        string `json:"buttonBg"`
	ButtonText      string `json:"buttonText"`
	TextColor       string `json:"textColor"`
	FontFamily      string `json:"fontFamily"`
}

// UserProfile is the editable draft value. ID is absent until the first
// authenticated save assigns the identity provider's account id.
type UserProfile struct {
	ID        *uuid.UUID  `json:"id,omitempty"`
	Name      string      `json:"name"`
	Username  string      `json:"username"`
	Bio       string      `json:"bio"`
	AvatarURL string      `json:"avatarUrl"`
	Phone     string      `json:"phone,omitempty"`
	Email     string      `json:"email,omitempty"`
	Links     []LinkItem  `json:"links"`
	Theme     ThemeConfig `json:"theme"`
	IsAdmin   bool        `json:"is_admin,omitempty"`
	IsActive  bool        `json:"is_active"`
}

// Clone returns a deep copy; the link sequence is never shared between
// snapshots.
func (p UserProfile) Clone() UserProfile {
	out := p
	if p.ID != nil {
		id := *p.ID
		out.ID = &id
	}
	out.Links = append([]LinkItem(nil), p.Links...)
	return out
}

const defaultFontFamily = "Plus Jakarta Sans"

// DefaultThemes is the read-only preset catalog shown in the theme picker.
var DefaultThemes = []ThemeConfig{
	{
		ID:              "cyber-nebula",
		Name:            "Cyber Nebula",
		BackgroundStart: "#0F011E",
		BackgroundEnd:   "#2D0B5A",
		ButtonBg:        "#A855F7",
		ButtonText:      "#FFFFFF",
		TextColor:       "#F3E8FF",
		FontFamily:      defaultFontFamily,
	},
	{
		ID:              "midnight-glass",
		Name:            "Midnight Glass",
		BackgroundStart: "#000000",
		BackgroundEnd:   "#1A1A1A",
		ButtonBg:        "#FFFFFF",
		ButtonText:      "#000000",
		TextColor:       "#FFFFFF",
		FontFamily:      defaultFontFamily,
	},
	{
		ID:              "neon-horizon",
		Name:            "Neon Horizon",
		BackgroundStart: "#0D1117",
		BackgroundEnd:   "#010409",
		ButtonBg:        "#3B82F6",
		ButtonText:      "#FFFFFF",
		TextColor:       "#E6EDF3",
		FontFamily:      defaultFontFamily,
	},
	{
		ID:              "electric-pink",
		Name:            "Electric Pink",
		BackgroundStart: "#111827",
		BackgroundEnd:   "#000000",
		ButtonBg:        "#EC4899",
		ButtonText:      "#FFFFFF",
		TextColor:       "#FDF2F8",
		FontFamily:      defaultFontFamily,
	},
	{
		ID:              "arctic-ghost",
		Name:            "Arctic Ghost",
		BackgroundStart: "#F8FAFC",
		BackgroundEnd:   "#F1F5F9",
		ButtonBg:        "#0F172A",
		ButtonText:      "#FFFFFF",
		TextColor:       "#1E293B",
		FontFamily:      defaultFontFamily,
	},
	{
		ID:              "aurora-borealis",
		Name:            "Aurora",
		BackgroundStart: "#020617",
		BackgroundEnd:   "#1E1B4B",
		ButtonBg:        "#2DD4BF",
		ButtonText:      "#042F2E",
		TextColor:       "#F0FDFA",
		FontFamily:      defaultFontFamily,
	},
}

// ThemeByID looks up a preset. The second return is false for unknown ids
// (custom and AI-generated themes live only inside a profile).
func ThemeByID(id string) (ThemeConfig, bool) {
	for _, theme := range DefaultThemes {
		if theme.ID == id {
			return theme, true
		}
	}
	return ThemeConfig{}, false
}

// DefaultProfile returns the initial draft shown before any remote load.
func DefaultProfile() UserProfile {
	return UserProfile{
		Name:      "Amina Creator",
		Username:  "amina",
		Bio:       "Transforming visions into digital reality. 🚀\nNext-Gen Creative Director.",
		AvatarURL: "https://images.unsplash.com/photo-1534528741775-53994a69daeb?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&q=80",
		Links: []LinkItem{
			{ID: "1", Title: "Voir mon Catalogue", URL: "https://example.com", IsActive: true},
			{ID: "2", Title: "Mes Projets AI", URL: "https://example.com/ai", IsActive: true},
			{ID: "3", Title: "Instagram", URL: "https://instagram.com", IsActive: true},
		},
		Theme:    DefaultThemes[0],
		IsActive: true,
	}
}
