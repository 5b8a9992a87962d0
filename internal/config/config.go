package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Team roster configuration
	DefaultMaxTeamSize     int `mapstructure:"DEFAULT_MAX_TEAM_SIZE"`
	InviteCodeMaxRetries   int `mapstructure:"INVITE_CODE_MAX_RETRIES"`
	InviteCodeRetryDelayMS int `mapstructure:"INVITE_CODE_RETRY_DELAY_MS"`
	JoinRateLimitPerMin    int `mapstructure:"JOIN_RATE_LIMIT_PER_MIN"`
	RepairIntervalSec      int `mapstructure:"REPAIR_INTERVAL_SEC"`
}

// Load reads configuration from an optional config.yaml and environment variables.
// Environment variables win over the file; both win over defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}

// Every key needs a default, even an empty one, or AutomaticEnv never unmarshals it
func setDefaults(v *viper.Viper) {
	defaults := map[string]interface{}{
		"ENVIRONMENT": "development",
		"PORT":        "7008",
		"LOG_LEVEL":   "info",

		"DATABASE_URL": "",
		"DB_HOST":      "localhost",
		"DB_PORT":      "5432",
		"DB_USER":      "postgres",
		"DB_PASSWORD":  "postgres",
		"DB_NAME":      "competition_registration",
		"DB_SSL_MODE":  "disable",

		"JWT_SECRET":      defaultJWTSecret,
		"ALLOWED_ORIGINS": []string{"http://localhost:3000", "http://localhost:8080"},

		"DEFAULT_MAX_TEAM_SIZE":      4,
		"INVITE_CODE_MAX_RETRIES":    5,
		"INVITE_CODE_RETRY_DELAY_MS": 20,
		"JOIN_RATE_LIMIT_PER_MIN":    30,
		"REPAIR_INTERVAL_SEC":        60,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.IsProduction() && config.JWTSecret == defaultJWTSecret {
		return errors.New("JWT_SECRET must be set in production")
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.DefaultMaxTeamSize < 1 {
		return fmt.Errorf("DEFAULT_MAX_TEAM_SIZE must be positive, got %d", config.DefaultMaxTeamSize)
	}

	if config.InviteCodeMaxRetries < 0 {
		return fmt.Errorf("INVITE_CODE_MAX_RETRIES cannot be negative")
	}

	return nil
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// InviteCodeRetryDelay returns the pause between invite code collision retries
func (c *Config) InviteCodeRetryDelay() time.Duration {
	return time.Duration(c.InviteCodeRetryDelayMS) * time.Millisecond
}

// RepairInterval returns how often the repair worker drains its queue
func (c *Config) RepairInterval() time.Duration {
	if c.RepairIntervalSec <= 0 {
		return time.Minute
	}
	return time.Duration(c.RepairIntervalSec) * time.Second
}
