package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/womencards/womencards-backend/api/responses"
	"github.com/womencards/womencards-backend/pkg/config"
	pkgerrors "github.com/womencards/womencards-backend/pkg/errors"
	"github.com/womencards/womencards-backend/pkg/logger"
)

const readyPingTimeout = 2 * time.Second

// Pinger is any backend dependency the readiness probe checks.
type Pinger interface {
	Ping(context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-WomenCards-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, dbP, redisP Pinger) http.HandlerFunc {
	deps := map[string]Pinger{
		"db":    dbP,
		"redis": redisP,
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-WomenCards-Env", cfg.App.Env)

		for name, dep := range deps {
			if dep == nil {
				continue
			}
			ctx, cancel := context.WithTimeout(r.Context(), readyPingTimeout)
			err := dep.Ping(ctx)
			cancel()
			if err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, name+" unavailable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
