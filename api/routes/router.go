package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/womencards/womencards-backend/api/controllers"
	"github.com/womencards/womencards-backend/api/middleware"
	"github.com/womencards/womencards-backend/internal/admin"
	"github.com/womencards/womencards-backend/internal/profiles"
	"github.com/womencards/womencards-backend/pkg/config"
	"github.com/womencards/womencards-backend/pkg/logger"
	"github.com/womencards/womencards-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP controllers.Pinger,
	redisClient *redis.Client,
	registry *prometheus.Registry,
	profileSvc profiles.Service,
	publicResolver controllers.PublicResolver,
	checker controllers.AvailabilityChecker,
	saver controllers.Saver,
	adminSvc *admin.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	var sessions middleware.SessionChecker
	var limiter middleware.RateLimiterStore
	var redisP controllers.Pinger
	if redisClient != nil {
		sessions = redisClient
		limiter = redisClient
		redisP = redisClient
	}

	// keystroke-driven endpoint, absorb bursts per client
	availabilityPolicy := middleware.NewRateLimitPolicy("availability", time.Minute, 120)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.OptionalAuth(cfg.JWT, sessions, logg))

			r.Get("/view", controllers.ResolveView(publicResolver, adminSvc, logg))
			r.Get("/profiles/{username}", controllers.PublicProfile(publicResolver, logg))
			r.With(middleware.RateLimit(availabilityPolicy, limiter, logg)).
				Get("/username-availability", controllers.UsernameAvailability(checker, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, sessions, logg))

			r.Route("/me", func(r chi.Router) {
				r.Get("/profile", controllers.MeGetProfile(profileSvc, logg))
				r.Put("/profile", controllers.MePutProfile(saver, logg))
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.RequireAdmin(adminSvc, logg))
				r.Get("/profiles", controllers.AdminListProfiles(adminSvc, logg))
				r.Get("/stats", controllers.AdminStats(adminSvc, logg))
			})
		})
	})

	return r
}
