package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "HAZELLAB"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	Account       AccountConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
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
	Env          string `envconfig:"HAZELLAB_APP_ENV" required:"true"`
	Port         string `envconfig:"HAZELLAB_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"HAZELLAB_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"HAZELLAB_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"HAZELLAB_DB_DSN"`
	Driver string `envconfig:"HAZELLAB_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"HAZELLAB_DB_HOST"`
	Port     int    `envconfig:"HAZELLAB_DB_PORT" default:"5432"`
	User     string `envconfig:"HAZELLAB_DB_USER"`
	Password string `envconfig:"HAZELLAB_DB_PASSWORD"`
	Name     string `envconfig:"HAZELLAB_DB_NAME"`
	SSLMode  string `envconfig:"HAZELLAB_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"HAZELLAB_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"HAZELLAB_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"HAZELLAB_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"HAZELLAB_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"HAZELLAB_REDIS_URL" required:"true"`
	Password     string        `envconfig:"HAZELLAB_REDIS_PASSWORD"`
	DB           int           `envconfig:"HAZELLAB_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"HAZELLAB_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"HAZELLAB_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"HAZELLAB_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"HAZELLAB_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"HAZELLAB_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"HAZELLAB_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"HAZELLAB_JWT_ISSUER" default:"hazellab"`
	ExpirationMinutes int    `envconfig:"HAZELLAB_JWT_EXPIRATION_MINUTES" default:"60"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"HAZELLAB_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"HAZELLAB_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"HAZELLAB_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"HAZELLAB_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"HAZELLAB_ARGON_KEY_LEN" default:"32"`
}

// AccountConfig scopes user-registration business rules.
type AccountConfig struct {
	AllowedEmailDomains []string `envconfig:"HAZELLAB_ACCOUNT_ALLOWED_EMAIL_DOMAINS" default:"@duoc.cl,@profesor.duoc.cl,@gmail.com"`
}

type AuthRateLimitConfig struct {
	LoginWindow     time.Duration `envconfig:"HAZELLAB_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit int           `envconfig:"HAZELLAB_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit    int           `envconfig:"HAZELLAB_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"HAZELLAB_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	if strings.EqualFold(db.Driver, "sqlite") {
		return fmt.Errorf("HAZELLAB_DB_DSN is required for the sqlite driver")
	}

	missing := []string{}
	for _, pair := range []struct {
		envVar string
		value  string
	}{
		{"HAZELLAB_DB_HOST", db.Host},
		{"HAZELLAB_DB_USER", db.User},
		{"HAZELLAB_DB_NAME", db.Name},
	} {
		if pair.value == "" {
			missing = append(missing, pair.envVar)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("either HAZELLAB_DB_DSN or %s are required", strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}

	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
