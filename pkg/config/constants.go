package config

// EnvPrefix namespaces every environment variable consumed by the service.
const EnvPrefix = "WOMENCARDS"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

// Environment variable names referenced outside of struct tags (tests, error
// messages).
const (
	EnvAppEnv   = "WOMENCARDS_APP_ENV"
	EnvPort     = "WOMENCARDS_APP_PORT"
	EnvDBDSN    = "WOMENCARDS_DB_DSN"
	EnvDBHost   = "WOMENCARDS_DB_HOST"
	EnvDBUser   = "WOMENCARDS_DB_USER"
	EnvDBName   = "WOMENCARDS_DB_NAME"
	EnvRedisURL = "WOMENCARDS_REDIS_URL"

	EnvJWTSecret  = "WOMENCARDS_JWT_SECRET"
	EnvJWTIssuer  = "WOMENCARDS_JWT_ISSUER"
	EnvJWTExpMins = "WOMENCARDS_JWT_EXPIRATION_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
