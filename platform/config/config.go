// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
	GetIntakeRateLimit() float64
	GetIntakeRateBurst() int
}

// SchedulerConfig provides settings for the asynq delivery queue.
type SchedulerConfig interface {
	GetRedisURL() string
	GetRedisTLSInsecure() bool
	GetAsynqQueueName() string
	GetAsynqConcurrency() int
}

// CrmConfig provides settings for the outbound CRM sync client.
type CrmConfig interface {
	GetCrmBaseURL() string
	GetCrmSessionCookie() string
	GetCrmTimeout() time.Duration
	IsCrmEnabled() bool
}

// QualificationConfig provides settings for the lead qualification evaluator.
type QualificationConfig interface {
	GetCommunityName() string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env              string
	HTTPAddr         string
	DatabaseURL      string
	CORSAllowAll     bool
	CORSOrigins      []string
	CORSAllowCreds   bool
	IntakeRateLimit  float64
	IntakeRateBurst  int
	RedisURL         string
	RedisTLSInsecure bool
	AsynqQueueName   string
	AsynqConcurrency int
	CrmBaseURL       string
	CrmSessionCookie string
	CrmTimeout       time.Duration
	CommunityName    string
}

// =============================================================================
// Interface Implementations
// =============================================================================

// DatabaseConfig implementation
func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string         { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool       { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string    { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool     { return c.CORSAllowCreds }
func (c *Config) GetIntakeRateLimit() float64 { return c.IntakeRateLimit }
func (c *Config) GetIntakeRateBurst() int     { return c.IntakeRateBurst }

// SchedulerConfig implementation
func (c *Config) GetRedisURL() string       { return c.RedisURL }
func (c *Config) GetRedisTLSInsecure() bool { return c.RedisTLSInsecure }
func (c *Config) GetAsynqQueueName() string { return c.AsynqQueueName }
func (c *Config) GetAsynqConcurrency() int  { return c.AsynqConcurrency }

// CrmConfig implementation
func (c *Config) GetCrmBaseURL() string        { return c.CrmBaseURL }
func (c *Config) GetCrmSessionCookie() string  { return c.CrmSessionCookie }
func (c *Config) GetCrmTimeout() time.Duration { return c.CrmTimeout }
func (c *Config) IsCrmEnabled() bool           { return c.CrmBaseURL != "" }

// QualificationConfig implementation
func (c *Config) GetCommunityName() string { return c.CommunityName }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:              getEnv("APP_ENV", "development"),
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		CORSAllowAll:     corsAllowAll,
		CORSOrigins:      corsOrigins,
		CORSAllowCreds:   strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		IntakeRateLimit:  mustFloat(getEnv("INTAKE_RATE_LIMIT", "1")),
		IntakeRateBurst:  mustInt(getEnv("INTAKE_RATE_BURST", "5")),
		RedisURL:         getEnv("REDIS_URL", ""),
		RedisTLSInsecure: strings.EqualFold(getEnv("REDIS_TLS_INSECURE", "false"), "true"),
		AsynqQueueName:   getEnv("ASYNQ_QUEUE", "default"),
		AsynqConcurrency: mustInt(getEnv("ASYNQ_CONCURRENCY", "10")),
		CrmBaseURL:       getEnv("CRM_BASE_URL", ""),
		CrmSessionCookie: getEnv("CRM_SESSION_COOKIE", ""),
		CrmTimeout:       mustDuration(getEnv("CRM_TIMEOUT", "10s")),
		CommunityName:    getEnv("COMMUNITY_NAME", "Skye Canyon"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}
	if cfg.CrmBaseURL != "" && cfg.CrmSessionCookie == "" {
		return nil, fmt.Errorf("CRM_SESSION_COOKIE is required when CRM_BASE_URL is set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}

func mustFloat(value string) float64 {
	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
