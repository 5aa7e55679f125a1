package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
)

var defaultCORSOrigins = []string{
	"http://localhost:3000", // local dev
	"https://women.cards",
	"https://www.women.cards",
}

// CORS returns middleware that applies the API's allowed origin policy.
// The configured comma-separated origin list overrides the defaults; "*"
// opens the API up, which dev setups use.
func CORS(origins string) func(http.Handler) http.Handler {
	allowed := defaultCORSOrigins
	if trimmed := strings.TrimSpace(origins); trimmed != "" && trimmed != "*" {
		allowed = nil
		for _, origin := range strings.Split(trimmed, ",") {
			if o := strings.TrimSpace(origin); o != "" {
				allowed = append(allowed, o)
			}
		}
	} else if trimmed == "*" {
		allowed = []string{"*"}
	}

	return cors.New(cors.Options{
		AllowedOrigins:   allowed,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
