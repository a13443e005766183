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
	AuthLimit    AuthRateLimitConfig
	FeatureFlags FeatureFlagsConfig
	GCP          GCPConfig
	PubSub       PubSubConfig
	Recommend    RecommendConfig
}

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
	Env          string `envconfig:"VAHANBAZAR_APP_ENV" required:"true"`
	Port         string `envconfig:"VAHANBAZAR_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"VAHANBAZAR_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"VAHANBAZAR_LOG_WARN_STACK" default:"false"`

	CORSOrigins []string `envconfig:"VAHANBAZAR_CORS_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"VAHANBAZAR_DB_DSN"`
	Driver string `envconfig:"VAHANBAZAR_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"VAHANBAZAR_DB_HOST"`
	LegacyPort     int    `envconfig:"VAHANBAZAR_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"VAHANBAZAR_DB_USER"`
	LegacyPassword string `envconfig:"VAHANBAZAR_DB_PASSWORD"`
	LegacyName     string `envconfig:"VAHANBAZAR_DB_NAME"`
	LegacySSLMode  string `envconfig:"VAHANBAZAR_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"VAHANBAZAR_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"VAHANBAZAR_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"VAHANBAZAR_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"VAHANBAZAR_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// IsSQLite reports whether the sqlite driver was selected (dev installs).
func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, DBDriverSQLite)
}

type RedisConfig struct {
	URL          string        `envconfig:"VAHANBAZAR_REDIS_URL"`
	Address      string        `envconfig:"VAHANBAZAR_REDIS_ADDR"`
	Password     string        `envconfig:"VAHANBAZAR_REDIS_PASSWORD"`
	DB           int           `envconfig:"VAHANBAZAR_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"VAHANBAZAR_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"VAHANBAZAR_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"VAHANBAZAR_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"VAHANBAZAR_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"VAHANBAZAR_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"VAHANBAZAR_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"VAHANBAZAR_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"VAHANBAZAR_JWT_EXPIRATION_MINUTES" default:"10080"`
}

// TokenTTL returns the access token lifetime.
func (j JWTConfig) TokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type AuthRateLimitConfig struct {
	LoginWindow     time.Duration `envconfig:"VAHANBAZAR_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit int           `envconfig:"VAHANBAZAR_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit    int           `envconfig:"VAHANBAZAR_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	AutoMigrate     bool `envconfig:"VAHANBAZAR_AUTO_MIGRATE" default:"false"`
	EventingEnabled bool `envconfig:"VAHANBAZAR_EVENTING_ENABLED" default:"false"`
}

type GCPConfig struct {
	ProjectID              string `envconfig:"VAHANBAZAR_GCP_PROJECT_ID"`
	ApplicationCredentials string `envconfig:"VAHANBAZAR_GOOGLE_APPLICATION_CREDENTIALS"`
}

type PubSubConfig struct {
	OrdersTopic        string `envconfig:"VAHANBAZAR_PUBSUB_ORDERS_TOPIC" default:"vb-order-events"`
	OrdersSubscription string `envconfig:"VAHANBAZAR_PUBSUB_ORDERS_SUBSCRIPTION" default:"vb-order-events-notifier"`
}

type RecommendConfig struct {
	TrendingCacheTTL time.Duration `envconfig:"VAHANBAZAR_TRENDING_CACHE_TTL" default:"60s"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}
	if db.IsSQLite() {
		db.DSN = DefaultSQLitePath
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
