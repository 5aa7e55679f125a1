package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Admin        AdminConfig
	Availability AvailabilityConfig
	Save         SaveConfig
	FeatureFlags FeatureFlagsConfig
}

// Load builds the configuration from the environment. The returned object is
// the single source of backend credentials: store clients receive it at
// construction and a reload means building a fresh client from a fresh Load.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"WOMENCARDS_APP_ENV" required:"true"`
	Port         string `envconfig:"WOMENCARDS_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"WOMENCARDS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"WOMENCARDS_LOG_WARN_STACK" default:"false"`
	CORSOrigins  string `envconfig:"WOMENCARDS_CORS_ORIGINS" default:"*"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"WOMENCARDS_DB_DSN"`
	Driver string `envconfig:"WOMENCARDS_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"WOMENCARDS_DB_HOST"`
	LegacyPort     int    `envconfig:"WOMENCARDS_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"WOMENCARDS_DB_USER"`
	LegacyPassword string `envconfig:"WOMENCARDS_DB_PASSWORD"`
	LegacyName     string `envconfig:"WOMENCARDS_DB_NAME"`
	LegacySSLMode  string `envconfig:"WOMENCARDS_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"WOMENCARDS_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"WOMENCARDS_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"WOMENCARDS_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"WOMENCARDS_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"WOMENCARDS_REDIS_URL" required:"true"`
	Address      string        `envconfig:"WOMENCARDS_REDIS_ADDR"`
	Password     string        `envconfig:"WOMENCARDS_REDIS_PASSWORD"`
	DB           int           `envconfig:"WOMENCARDS_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"WOMENCARDS_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"WOMENCARDS_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"WOMENCARDS_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"WOMENCARDS_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"WOMENCARDS_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"WOMENCARDS_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"WOMENCARDS_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"WOMENCARDS_JWT_EXPIRATION_MINUTES" required:"true"`
}

// AccessTokenTTL returns the access token TTL configured in minutes.
func (j JWTConfig) AccessTokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type AdminConfig struct {
	// BreakGlassEmail is always treated as an admin regardless of the
	// profile's is_admin column. Empty disables the fallback.
	BreakGlassEmail string `envconfig:"WOMENCARDS_ADMIN_BREAK_GLASS_EMAIL"`
}

type AvailabilityConfig struct {
	Debounce time.Duration `envconfig:"WOMENCARDS_AVAILABILITY_DEBOUNCE" default:"500ms"`
	CacheTTL time.Duration `envconfig:"WOMENCARDS_AVAILABILITY_CACHE_TTL" default:"5s"`
}

type SaveConfig struct {
	// SuccessFlashTTL is how long the transient "saved" state is held for
	// clients that poll it. Presentation only.
	SuccessFlashTTL time.Duration `envconfig:"WOMENCARDS_SAVE_SUCCESS_FLASH_TTL" default:"3s"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"WOMENCARDS_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"WOMENCARDS_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
