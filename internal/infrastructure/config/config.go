package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type KafkaConfig struct {
	Brokers []string
	Enabled bool
}

type AuthConfig struct {
	JWTSecret string
	Issuer    string
	TokenTTL  time.Duration
}

// ScoringConfig configures the optional remote scoring collaborator. An
// empty BaseURL disables the remote path and keeps scoring local.
type ScoringConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type Config struct {
	HTTPPort    int
	MetricsPort int
	DB          DatabaseConfig
	Kafka       KafkaConfig
	Auth        AuthConfig
	Scoring     ScoringConfig
	ServiceName string
	LogLevel    string

	// DemoMode runs the service on the seeded in-memory dataset instead of
	// PostgreSQL.
	DemoMode bool
}

func (c Config) Validate() {
	if c.Auth.JWTSecret == "" {
		panic("JWT_SECRET environment variable is required")
	}
	if !c.DemoMode && c.DB.Password == "" {
		panic("DB_PASSWORD environment variable is required")
	}
}

func Load() Config {
	return Config{
		HTTPPort:    getEnvInt("HTTP_PORT", 8080),
		MetricsPort: getEnvInt("METRICS_PORT", 9090),
		DB: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "miriesgo"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "miriesgo_central"),
			SSLMode:  getEnv("DB_SSLMODE", "require"),
		},
		Kafka: KafkaConfig{
			Brokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			Enabled: getEnvBool("KAFKA_ENABLED", true),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			Issuer:    getEnv("JWT_ISSUER", "miriesgo-central"),
			TokenTTL:  getEnvDuration("JWT_TTL", 8*time.Hour),
		},
		Scoring: ScoringConfig{
			BaseURL: getEnv("SCORING_BASE_URL", ""),
			APIKey:  getEnv("SCORING_API_KEY", ""),
			Timeout: getEnvDuration("SCORING_TIMEOUT", 5*time.Second),
		},
		ServiceName: "miriesgo-central",
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		DemoMode:    getEnvBool("DEMO_MODE", false),
	}
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func (c Config) MetricsAddr() string {
	return fmt.Sprintf(":%d", c.MetricsPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
