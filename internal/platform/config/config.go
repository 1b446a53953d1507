package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const insecureJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	RunMigrations  bool
	MigrationsPath string

	JWTSecret         string
	JWTIssuer         string
	JWTExpiryDuration time.Duration

	// Idempotency store; empty RedisURL selects the in-memory store.
	RedisURL       string
	IdempotencyTTL time.Duration

	// Audit stream; no brokers disables publishing.
	KafkaBrokers    []string
	KafkaAuditTopic string

	DefaultTaxTolerance       decimal.Decimal
	RequireOpenPeriodOnCreate bool

	RateLimit          string // limiter format, e.g. "100-M"
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("RUN_MIGRATIONS", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", insecureJWTSecret)
	v.SetDefault("JWT_ISSUER", "backoffice-governance")
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("IDEMPOTENCY_TTL", "720h")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_AUDIT_TOPIC", "governance.audit")
	v.SetDefault("DEFAULT_TAX_TOLERANCE", "0.01")
	v.SetDefault("REQUIRE_OPEN_PERIOD_ON_CREATE", false)
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	// Environment variables override defaults and .env values
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabaseURL:               v.GetString("PGSQL_URL"),
		Port:                      v.GetString("PORT"),
		IsProduction:              v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:             v.GetBool("ENABLE_DB_CHECK"),
		RunMigrations:             v.GetBool("RUN_MIGRATIONS"),
		MigrationsPath:            v.GetString("MIGRATIONS_PATH"),
		JWTSecret:                 v.GetString("JWT_SECRET"),
		JWTIssuer:                 v.GetString("JWT_ISSUER"),
		RedisURL:                  v.GetString("REDIS_URL"),
		KafkaBrokers:              splitList(v.GetString("KAFKA_BROKERS")),
		KafkaAuditTopic:           v.GetString("KAFKA_AUDIT_TOPIC"),
		RequireOpenPeriodOnCreate: v.GetBool("REQUIRE_OPEN_PERIOD_ON_CREATE"),
		RateLimit:                 v.GetString("RATE_LIMIT"),
		CORSAllowedOrigins:        splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == insecureJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = insecureJWTSecret
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	var err error
	if cfg.JWTExpiryDuration, err = parseDuration(v, "JWT_EXPIRY_DURATION", time.Hour); err != nil {
		return nil, err
	}
	if cfg.IdempotencyTTL, err = parseDuration(v, "IDEMPOTENCY_TTL", 30*24*time.Hour); err != nil {
		return nil, err
	}

	cfg.DefaultTaxTolerance, err = decimal.NewFromString(v.GetString("DEFAULT_TAX_TOLERANCE"))
	if err != nil || !cfg.DefaultTaxTolerance.IsPositive() {
		return nil, fmt.Errorf("invalid DEFAULT_TAX_TOLERANCE %q: must be a positive decimal", v.GetString("DEFAULT_TAX_TOLERANCE"))
	}

	return cfg, nil
}

func parseDuration(v *viper.Viper, key string, fallback time.Duration) (time.Duration, error) {
	raw := v.GetString(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
