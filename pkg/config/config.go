package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // APP_TIMEZONE must resolve on minimal images

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const minJWTSecretLength = 32

// Config holds application configuration.
type Config struct {
	DatabaseURL          string
	Port                 string
	IsProduction         bool
	EnableDBCheck        bool
	RunMigrationsOnStart bool
	LogLevel             string
	Timezone             string
	CORSAllowedOrigins   []string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	LoginRateLimit    string // ulule formatted rate, e.g. "5-M"

	RedisURL string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	location *time.Location
}

// LoadConfig loads configuration from environment variables and a .env file if present.
// Unlike a plain lookup it validates the result: a missing JWT secret or database URL
// aborts startup instead of falling back to an insecure default.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("RUN_MIGRATIONS_ON_START", true)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("APP_TIMEZONE", "America/Argentina/Buenos_Aires")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRY_DURATION", "12h")
	v.SetDefault("JWT_ISSUER", "comandas-backend")
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("GOOGLE_CLIENT_ID", "")
	v.SetDefault("GOOGLE_CLIENT_SECRET", "")
	v.SetDefault("GOOGLE_REDIRECT_URL", "")
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:          v.GetString("PGSQL_URL"),
		Port:                 v.GetString("PORT"),
		IsProduction:         v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:        v.GetBool("ENABLE_DB_CHECK"),
		RunMigrationsOnStart: v.GetBool("RUN_MIGRATIONS_ON_START"),
		LogLevel:             v.GetString("LOG_LEVEL"),
		Timezone:             v.GetString("APP_TIMEZONE"),
		CORSAllowedOrigins:   splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		JWTSecret:            v.GetString("JWT_SECRET"),
		JWTIssuer:            v.GetString("JWT_ISSUER"),
		LoginRateLimit:       v.GetString("LOGIN_RATE_LIMIT"),
		RedisURL:             v.GetString("REDIS_URL"),
		GoogleClientID:       v.GetString("GOOGLE_CLIENT_ID"),
		GoogleClientSecret:   v.GetString("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:    v.GetString("GOOGLE_REDIRECT_URL"),
	}

	var errs []error
	expiry, err := time.ParseDuration(v.GetString("JWT_EXPIRY_DURATION"))
	if err != nil {
		errs = append(errs, fmt.Errorf("JWT_EXPIRY_DURATION: %w", err))
	}
	cfg.JWTExpiryDuration = expiry

	if err := cfg.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return cfg, nil
}

// Validate checks every required setting and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error
	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("PGSQL_URL is required"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	} else if len(c.JWTSecret) < minJWTSecretLength {
		errs = append(errs, fmt.Errorf("JWT_SECRET must be at least %d bytes", minJWTSecretLength))
	}
	if c.JWTExpiryDuration <= 0 {
		errs = append(errs, errors.New("JWT_EXPIRY_DURATION must be positive"))
	}
	if c.Port == "" {
		errs = append(errs, errors.New("PORT is required"))
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		errs = append(errs, fmt.Errorf("APP_TIMEZONE: %w", err))
	}
	c.location = loc
	if c.GoogleClientID != "" && c.GoogleRedirectURL == "" {
		errs = append(errs, errors.New("GOOGLE_REDIRECT_URL is required when GOOGLE_CLIENT_ID is set"))
	}
	if c.GoogleClientID != "" && c.GoogleClientSecret == "" {
		errs = append(errs, errors.New("GOOGLE_CLIENT_SECRET is required when GOOGLE_CLIENT_ID is set"))
	}
	return errors.Join(errs...)
}

// Location returns the configured timezone, falling back to a fixed UTC-03:00 offset.
func (c *Config) Location() *time.Location {
	if c.location != nil {
		return c.location
	}
	return time.FixedZone("ART", -3*60*60)
}

// GoogleEnabled reports whether Google sign-in is configured. The Google routes are only
// registered when it is.
func (c *Config) GoogleEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
