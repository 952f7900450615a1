package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName           string
	AppEnv            string
	AppPort           string
	DatabaseURL       string
	RedisURL          string
	JWTSecret         string
	TokenTTL          time.Duration
	CollegeMailDomain string
	DashboardCacheTTL time.Duration
	ExecuteDelay      time.Duration
	SeedOnStart       bool
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("PECCODE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "PECCode API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "3001")
	v.SetDefault("database.url", "peccode.sqlite")
	v.SetDefault("token.ttl", "12h")
	v.SetDefault("college.mail_domain", "panimalar.edu")
	v.SetDefault("dashboard.cache_ttl", "5m")
	v.SetDefault("execute.delay", "1s")
	v.SetDefault("seed.on_start", true)

	ttl, err := time.ParseDuration(v.GetString("token.ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid token ttl: %w", err)
	}

	cacheTTL, err := time.ParseDuration(v.GetString("dashboard.cache_ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid dashboard cache ttl: %w", err)
	}

	executeDelay, err := time.ParseDuration(v.GetString("execute.delay"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid execute delay: %w", err)
	}

	cfg := Config{
		AppName:           v.GetString("app.name"),
		AppEnv:            v.GetString("app.env"),
		AppPort:           v.GetString("app.port"),
		DatabaseURL:       v.GetString("database.url"),
		RedisURL:          v.GetString("redis.url"),
		JWTSecret:         v.GetString("jwt.secret"),
		TokenTTL:          ttl,
		CollegeMailDomain: v.GetString("college.mail_domain"),
		DashboardCacheTTL: cacheTTL,
		ExecuteDelay:      executeDelay,
		SeedOnStart:       v.GetBool("seed.on_start"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("jwt secret must be provided")
	}

	if cfg.TokenTTL <= 0 {
		return Config{}, fmt.Errorf("token ttl must be positive")
	}

	return cfg, nil
}
