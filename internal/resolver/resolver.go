package resolver

import (
	"strings"
)

// Session is the nullable identity the resolver consults. IsAdmin is already
// settled by the admin service (column or break-glass allowlist) before
// resolution.
type Session struct {
	ID      string
	Email   string
	IsAdmin bool
}

// Kind is the closed set of application modes. Adding a mode means updating
// every switch over Kind, which the compiler and tests will flag.
type Kind string

const (
	KindLanding       Kind = "landing"
	KindEditor        Kind = "editor"
	KindPublicProfile Kind = "public_profile"
	KindAdminConsole  Kind = "admin_console"
	// KindAdminRedirect is the hard redirect issued when /admin is requested
	// without an admin session. It is not a renderable mode.
	KindAdminRedirect Kind = "admin_redirect"
)

// Mode is what the application renders for a given URL and session. Username
// is set only for KindPublicProfile.
type Mode struct {
	Kind     Kind   `json:"kind"`
	Username string `json:"username,omitempty"`
}

// reservedSegments can never be interpreted as usernames; a handle colliding
// with one always loses to the reserved interpretation.
var reservedSegments = map[string]struct{}{
	"index.html": {},
	"auth":       {},
	"login":      {},
	"api":        {},
	"admin":      {},
	"assets":     {},
	"static":     {},
}

// Resolve maps a URL path and an optional session to exactly one mode. It is
// pure and total: same inputs, same mode, and it never fails. Entering a mode
// triggers at most one fetch per transition; that bookkeeping lives in
// ViewState, not here.
func Resolve(path string, session *Session) Mode {
	segment := firstSegment(path)

	if segment == "admin" {
		if session != nil && session.IsAdmin {
			return Mode{Kind: KindAdminConsole}
		}
		return Mode{Kind: KindAdminRedirect}
	}

	if isUsernameCandidate(segment) {
		return Mode{Kind: KindPublicProfile, Username: segment}
	}

	if session != nil {
		return Mode{Kind: KindEditor}
	}
	return Mode{Kind: KindLanding}
}

func firstSegment(path string) string {
	trimmed := strings.Trim(strings.TrimSpace(path), "/")
	if trimmed == "" {
		return ""
	}
	segment := trimmed
	if idx := strings.IndexByte(trimmed, '/'); idx >= 0 {
		segment = trimmed[:idx]
	}
	return strings.ToLower(segment)
}

// isUsernameCandidate applies the reserved set, the file rule (usernames may
// never contain dots), and the minimum length.
func isUsernameCandidate(segment string) bool {
	if segment == "" {
		return false
	}
	if _, reserved := reservedSegments[segment]; reserved {
		return false
	}
	if strings.ContainsRune(segment, '.') {
		return false
	}
	return len(segment) >= 3
}
