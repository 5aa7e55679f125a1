package profiles

import (
	"fmt"
	"strings"
	"unicode/utf8"

	pkgerrors "github.com/womencards/womencards-backend/pkg/errors"
)

// NormalizeUsername lowercases, trims, and strips every character outside
// [a-z0-9_]. Idempotent: normalizing twice yields the same value.
func NormalizeUsername(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsUsernameSyntaxValid reports whether the candidate survives normalization
// with at least UsernameMinLength characters.
func IsUsernameSyntaxValid(candidate string) bool {
	return len(NormalizeUsername(candidate)) >= UsernameMinLength
}

// Validate applies the local, synchronous rules. Violations never reach the
// remote store.
func Validate(p UserProfile) error {
	details := map[string]string{}

	if p.Username != "" && !IsUsernameSyntaxValid(p.Username) {
		details["username"] = fmt.Sprintf("must be at least %d characters from [a-z0-9_]", UsernameMinLength)
	}
	if utf8.RuneCountInString(p.Bio) > BioMaxLength {
		details["bio"] = fmt.Sprintf("must be at most %d characters", BioMaxLength)
	}

	if len(details) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "profile validation failed").WithDetails(details)
	}
	return nil
}
