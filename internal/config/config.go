package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	Env       string `envconfig:"APP_ENV" default:"development"`
	Port      int    `envconfig:"APP_PORT" default:"8080"`
	DB        DBConfig
	Redis     RedisConfig
	Limiter   RateLimiterConfig
	CORS      CORSConfig
	JWT       JWTConfig
	Crypto    CryptoConfig
	AI        AIConfig
	Interview InterviewConfig
	NATS      NATSConfig
}

// database configuration
type DBConfig struct {
	DSN          string        `envconfig:"DATABASE_URL" required:"true"`
	MaxOpenConns int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleTime  time.Duration `envconfig:"DB_MAX_IDLE_TIME" default:"15m"`
}

// redis configuration (session locks, state cache, rate limiting)
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// rate limiting configuration
type RateLimiterConfig struct {
	Requests int           `envconfig:"RATE_LIMIT_REQUESTS" default:"60"`
	Window   time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
	Enabled  bool          `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// CORS configuration
type CORSConfig struct {
	TrustedOrigins []string `envconfig:"CORS_TRUSTED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

// JWT configuration. Tokens are issued by the platform auth service;
// this service only verifies them.
type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

// encryption configuration; empty secret disables encryption at rest
type CryptoConfig struct {
	Secret string `envconfig:"AES_SECRET_KEY" default:""`
}

// AI provider configuration
type AIConfig struct {
	Provider    string        `envconfig:"AI_PROVIDER" default:"groq"`
	APIKey      string        `envconfig:"AI_API_KEY" required:"true"`
	Model       string        `envconfig:"AI_MODEL" default:"meta-llama/llama-4-maverick-17b-128e-instruct"`
	Timeout     time.Duration `envconfig:"AI_TIMEOUT" default:"30s"`
	MaxTokens   int           `envconfig:"AI_MAX_TOKENS" default:"1024"`
	Temperature float32       `envconfig:"AI_TEMPERATURE" default:"0.7"`
}

// interview engine configuration
type InterviewConfig struct {
	QuestionBudget int           `envconfig:"INTERVIEW_QUESTION_BUDGET" default:"3"`
	Pregenerate    bool          `envconfig:"INTERVIEW_PREGENERATE" default:"true"`
	LockTTL        time.Duration `envconfig:"INTERVIEW_LOCK_TTL" default:"90s"`
	StateCacheTTL  time.Duration `envconfig:"INTERVIEW_STATE_CACHE_TTL" default:"10m"`
	PersonaFile    string        `envconfig:"INTERVIEW_PERSONA_FILE" default:""`
}

// NATS configuration; empty URL disables event publishing
type NATSConfig struct {
	URL string `envconfig:"NATS_URL" default:""`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Env] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, staging, production, test)", c.Env)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be between 1 and 65535)", c.Port)
	}
	if c.DB.MaxOpenConns < 1 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be at least 1")
	}
	if c.Limiter.Requests < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1")
	}
	if c.Limiter.Window < time.Second {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be at least 1s")
	}
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters")
	}
	if c.Crypto.Secret != "" && len(c.Crypto.Secret) != 32 {
		return fmt.Errorf("AES_SECRET_KEY must be 32 bytes (got %d)", len(c.Crypto.Secret))
	}
	validProviders := map[string]bool{"groq": true, "openai": true, "anthropic": true}
	if !validProviders[c.AI.Provider] {
		return fmt.Errorf("invalid AI provider: %s (must be one of: groq, openai, anthropic)", c.AI.Provider)
	}
	if c.Interview.QuestionBudget < 1 {
		return fmt.Errorf("INTERVIEW_QUESTION_BUDGET must be at least 1")
	}
	if c.Interview.LockTTL < time.Second {
		return fmt.Errorf("INTERVIEW_LOCK_TTL must be at least 1s")
	}
	if len(c.CORS.TrustedOrigins) == 0 {
		return fmt.Errorf("at least one trusted origin must be specified")
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// GetCORSOrigins returns the list of trusted CORS origins
func (c *Config) GetCORSOrigins() []string {
	origins := make([]string, 0, len(c.CORS.TrustedOrigins))
	for _, origin := range c.CORS.TrustedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func (c *Config) String() string {
	return fmt.Sprintf("Config{Env=%s, Port=%d, DB.MaxOpenConns=%d, Redis.Addr=%s, "+
		"Limiter.Requests=%d, Limiter.Window=%s, Limiter.Enabled=%t, "+
		"AI.Provider=%s, AI.Model=%s, Interview.Budget=%d, Interview.Pregenerate=%t, NATS=%t}",
		c.Env, c.Port, c.DB.MaxOpenConns, c.Redis.Addr,
		c.Limiter.Requests, c.Limiter.Window, c.Limiter.Enabled,
		c.AI.Provider, c.AI.Model, c.Interview.QuestionBudget, c.Interview.Pregenerate, c.NATS.URL != "")
}
