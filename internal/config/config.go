package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port                string   `mapstructure:"PORT"`
	Env                 string   `mapstructure:"ENV"`
	DatabaseURL         string   `mapstructure:"DATABASE_URL"`
	DBMaxConns          int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns          int32    `mapstructure:"DB_MIN_CONNS"`
	JWTSecret           string   `mapstructure:"JWT_SECRET"`
	AccessTokenTTLHours int      `mapstructure:"ACCESS_TOKEN_TTL_HOURS"`
	RefreshTokenTTLDays int      `mapstructure:"REFRESH_TOKEN_TTL_DAYS"`
	CORSOrigins         []string `mapstructure:"CORS_ORIGINS"`
	RateLimitRPS        float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst      int      `mapstructure:"RATE_LIMIT_BURST"`
	GeminiAPIKey        string   `mapstructure:"GEMINI_API_KEY"`
	GeminiBaseURL       string   `mapstructure:"GEMINI_BASE_URL"`
	GeminiModel         string   `mapstructure:"GEMINI_MODEL"`
	AITimeoutSeconds    int      `mapstructure:"AI_TIMEOUT_SECONDS"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("ACCESS_TOKEN_TTL_HOURS", 24)
	v.SetDefault("REFRESH_TOKEN_TTL_DAYS", 30)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")
	v.SetDefault("RATE_LIMIT_RPS", 100)
	v.SetDefault("RATE_LIMIT_BURST", 200)
	v.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/models")
	v.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	v.SetDefault("AI_TIMEOUT_SECONDS", 60)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("JWT_SECRET")
	v.BindEnv("ACCESS_TOKEN_TTL_HOURS")
	v.BindEnv("REFRESH_TOKEN_TTL_DAYS")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("RATE_LIMIT_RPS")
	v.BindEnv("RATE_LIMIT_BURST")
	v.BindEnv("GEMINI_API_KEY")
	v.BindEnv("GEMINI_BASE_URL")
	v.BindEnv("GEMINI_MODEL")
	v.BindEnv("AI_TIMEOUT_SECONDS")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true when the server is configured for production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// AccessTokenTTL returns the access token lifetime.
func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenTTLHours) * time.Hour
}

// RefreshTokenTTL returns the refresh token lifetime.
func (c *Config) RefreshTokenTTL() time.Duration {
	return time.Duration(c.RefreshTokenTTLDays) * 24 * time.Hour
}

// AITimeout returns the overall timeout applied to outbound AI calls.
func (c *Config) AITimeout() time.Duration {
	return time.Duration(c.AITimeoutSeconds) * time.Second
}

// Validate checks that the configuration is safe to run. Outside development
// the JWT signing secret must be set explicitly; a server that signs tokens
// with an empty secret is unusable.
func (c *Config) Validate() error {
	if !c.IsDev() && c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required when ENV=%q", c.Env)
	}
	if c.AccessTokenTTLHours <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_TTL_HOURS must be positive, got %d", c.AccessTokenTTLHours)
	}
	if c.RefreshTokenTTLDays <= 0 {
		return fmt.Errorf("REFRESH_TOKEN_TTL_DAYS must be positive, got %d", c.RefreshTokenTTLDays)
	}
	return nil
}
