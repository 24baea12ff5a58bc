// Package config loads runtime settings from an optional .env file and the environment.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/viper"

	"blog_backend/internal/platform/db"
)

// EnvConfigFile names the env var holding the optional config file path.
const EnvConfigFile = "CONFIG_FILE"

// Config is the resolved application configuration.
type Config struct {
	Port                   int
	AdminUserID            uint
	SessionSecret          string
	SessionTTL             time.Duration
	CookieSecure           bool
	PasswordIterations     int
	StrictCommentOwnership bool

	DB            db.Config
	RunMigrations bool

	RedisAddr     string
	RedisPassword string

	// RateLimitPerMinute is the per-IP request budget. Zero disables limiting.
	RateLimitPerMinute int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", 5002)
	v.SetDefault("ADMIN_USER_ID", 1)
	v.SetDefault("SESSION_SECRET", "")
	v.SetDefault("SESSION_TTL", "720h")
	v.SetDefault("COOKIE_SECURE", false)
	v.SetDefault("PASSWORD_ITERATIONS", 600000)
	v.SetDefault("STRICT_COMMENT_OWNERSHIP", false)

	v.SetDefault("DB_DRIVER", db.DriverSQLite)
	v.SetDefault("DB_PATH", "posts.db")
	v.SetDefault("DB_HOST", "")
	v.SetDefault("DB_PORT", "")
	v.SetDefault("DB_USER", "")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "")
	v.SetDefault("INSTANCE_CONNECTION_NAME", "")
	v.SetDefault("DB_CONNECT_TIMEOUT", "60s")
	v.SetDefault("RUN_MIGRATIONS", true)

	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 100)
}

// Load reads CONFIG_FILE (default ".env") if it exists, then overlays the environment.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	path := os.Getenv(EnvConfigFile)
	if path == "" {
		path = ".env"
	}
	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		slog.Info("loaded config file", "path", path)
	}

	cfg := &Config{
		Port:                   v.GetInt("PORT"),
		AdminUserID:            v.GetUint("ADMIN_USER_ID"),
		SessionSecret:          v.GetString("SESSION_SECRET"),
		SessionTTL:             v.GetDuration("SESSION_TTL"),
		CookieSecure:           v.GetBool("COOKIE_SECURE"),
		PasswordIterations:     v.GetInt("PASSWORD_ITERATIONS"),
		StrictCommentOwnership: v.GetBool("STRICT_COMMENT_OWNERSHIP"),
		DB: db.Config{
			Driver:         v.GetString("DB_DRIVER"),
			Path:           v.GetString("DB_PATH"),
			User:           v.GetString("DB_USER"),
			Password:       v.GetString("DB_PASSWORD"),
			Name:           v.GetString("DB_NAME"),
			Host:           v.GetString("DB_HOST"),
			Port:           v.GetString("DB_PORT"),
			InstanceName:   v.GetString("INSTANCE_CONNECTION_NAME"),
			ConnectTimeout: v.GetDuration("DB_CONNECT_TIMEOUT"),
		},
		RunMigrations:      v.GetBool("RUN_MIGRATIONS"),
		RedisAddr:          v.GetString("REDIS_ADDR"),
		RedisPassword:      v.GetString("REDIS_PASSWORD"),
		RateLimitPerMinute: v.GetInt("RATE_LIMIT_PER_MINUTE"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.SessionSecret == "" {
		secret, err := randomSecret()
		if err != nil {
			return nil, err
		}
		cfg.SessionSecret = secret
		slog.Warn("SESSION_SECRET is not set; sessions will not survive a restart")
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}
	if c.AdminUserID == 0 {
		errs = append(errs, errors.New("ADMIN_USER_ID must be positive"))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL must be positive"))
	}
	if c.PasswordIterations < 1 {
		errs = append(errs, errors.New("PASSWORD_ITERATIONS must be positive"))
	}
	if c.RateLimitPerMinute < 0 {
		errs = append(errs, errors.New("RATE_LIMIT_PER_MINUTE must not be negative"))
	}
	switch c.DB.Driver {
	case db.DriverSQLite, db.DriverPostgres, db.DriverMySQL:
	default:
		errs = append(errs, fmt.Errorf("unsupported DB_DRIVER %q", c.DB.Driver))
	}
	return errors.Join(errs...)
}

func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Addr is the listen address for Port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
