package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Database
	Database DatabaseConfig

	// Server
	Port        string
	CORSOrigins []string
	Env         string

	// Session
	Session SessionConfig

	// Demo auth
	Demo DemoConfig

	// Reference data cache
	RedisURL          string
	ReferenceCacheTTL time.Duration

	// Change events
	AMQPURL      string
	AMQPExchange string

	// S3 report archive
	S3 S3Config
}

// DatabaseConfig holds PostgreSQL connection settings
type DatabaseConfig struct {
	URL            string
	SSL            bool
	CAPEM          string
	CAPath         string
	MaxConns       int32
	MigrateOnStart bool
}

// SessionConfig holds settings for the signed session cookie
type SessionConfig struct {
	Secret       string
	CookieName   string
	CookieDomain string
	Issuer       string
	Audience     string
	Secure       bool
}

// DemoConfig holds the static demo credential pair
type DemoConfig struct {
	Enabled     bool
	Username    string
	Password    string
	OwnerOpenID string
	LoginRate   float64
	LoginBurst  int
}

// S3Config holds AWS S3 configuration
type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string // Optional: for MinIO/LocalStack local dev
}

// Enabled reports whether a bucket is configured for report archiving.
func (s S3Config) Enabled() bool {
	return s.Bucket != ""
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	env := getEnv("ENV", "development")

	cfg := &Config{
		Database:    loadDatabase(),
		Port:        getEnv("PORT", "8080"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		Env:         env,
		Session: SessionConfig{
			Secret:       getEnv("JWT_SECRET", ""),
			CookieName:   getEnv("SESSION_COOKIE_NAME", "app_session_id"),
			CookieDomain: getEnv("COOKIE_DOMAIN", ""),
			Issuer:       getEnv("SESSION_ISSUER", "finanzas-backend"),
			Audience:     getEnv("SESSION_AUDIENCE", "finanzas-web"),
			Secure:       env == "production",
		},
		Demo: DemoConfig{
			Enabled:     getEnvBool("DEMO_AUTH_ENABLED", false),
			Username:    getEnv("DEMO_USERNAME", ""),
			Password:    getEnv("DEMO_PASSWORD", ""),
			OwnerOpenID: getEnv("OWNER_OPEN_ID", ""),
			LoginRate:   getEnvFloat("LOGIN_RATE_LIMIT", 0.2),
			LoginBurst:  getEnvInt("LOGIN_RATE_BURST", 5),
		},
		RedisURL:          getEnv("REDIS_URL", ""),
		ReferenceCacheTTL: getEnvDuration("REFERENCE_CACHE_TTL", 10*time.Minute),
		AMQPURL:           getEnv("AMQP_URL", ""),
		AMQPExchange:      getEnv("AMQP_EXCHANGE", "finanzas.events"),
		S3: S3Config{
			Region:          getEnv("S3_REGION", "us-east-1"),
			Bucket:          getEnv("S3_BUCKET", ""),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			Endpoint:        getEnv("S3_ENDPOINT", ""), // Empty = use AWS, set for MinIO/LocalStack
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDatabase reads only the database settings, for tools that do not
// serve HTTP.
func LoadDatabase() DatabaseConfig {
	_ = godotenv.Load()
	return loadDatabase()
}

func loadDatabase() DatabaseConfig {
	return DatabaseConfig{
		URL:            getEnv("DATABASE_URL", ""),
		SSL:            getEnvBool("DB_SSL", false),
		CAPEM:          getEnv("DB_SSL_CA_PEM", ""),
		CAPath:         getEnv("DB_SSL_CA_PATH", ""),
		MaxConns:       int32(getEnvInt("DB_MAX_CONNS", 5)),
		MigrateOnStart: getEnvBool("MIGRATE_ON_START", false),
	}
}

// IsProduction reports whether the process runs with ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) validate() error {
	if c.Session.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Database.MaxConns < 1 {
		return fmt.Errorf("DB_MAX_CONNS must be at least 1")
	}
	return nil
}

// Validate reports database configuration problems. A failure here does not
// stop the process; the caller falls back to the unavailable store.
func (d DatabaseConfig) Validate() error {
	if d.URL == "" {
		return fmt.Errorf("DATABASE_URL is not set")
	}
	if d.SSL && d.CAPEM == "" && d.CAPath == "" {
		return fmt.Errorf("DB_SSL is enabled but neither DB_SSL_CA_PEM nor DB_SSL_CA_PATH is set")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return f
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
