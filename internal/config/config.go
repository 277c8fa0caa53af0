package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	HTTP     HTTPConfig
	Log      LogConfig
	Finder   FinderConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type HTTPConfig struct {
	Addr             string
	ShutdownTimeout  time.Duration
	RateLimitRPS     float64
	RateLimitBurst   int
	RateLimitIdleTTL time.Duration // простой, после которого лимитер клиента удаляется
	TrustProxy       bool          // брать адрес из X-Forwarded-For / X-Real-IP, только за своим прокси
}

type LogConfig struct {
	Env   string // development | production
	Level string
}

// FinderConfig - настройки расчета свободного времени
type FinderConfig struct {
	RecurrenceMode string // process | member
	Timezone       string // пусто - локальный пояс процесса
	Parallelism    int
	DefaultLimit   int // сколько окон возвращать по умолчанию
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "freetime"),
			Password: getEnv("DB_PASSWORD", "freetime"),
			DBName:   getEnv("DB_NAME", "freetime"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		HTTP: HTTPConfig{
			Addr:             getEnv("HTTP_ADDR", ":8080"),
			ShutdownTimeout:  getEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
			RateLimitRPS:     getEnvFloat("RATE_LIMIT_RPS", 10),
			RateLimitBurst:   getEnvInt("RATE_LIMIT_BURST", 20),
			RateLimitIdleTTL: getEnvDuration("RATE_LIMIT_IDLE_TTL", 10*time.Minute),
			TrustProxy:       getEnvBool("TRUST_PROXY", false),
		},
		Log: LogConfig{
			Env:   getEnv("APP_ENV", "development"),
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Finder: FinderConfig{
			RecurrenceMode: getEnv("RECURRENCE_MODE", "process"),
			Timezone:       getEnv("FINDER_TIMEZONE", ""),
			Parallelism:    getEnvInt("FINDER_PARALLELISM", 4),
			DefaultLimit:   getEnvInt("FIND_DEFAULT_LIMIT", 5),
		},
	}
}

// Location возвращает пояс расчета; пустое значение - time.Local
func (c FinderConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid FINDER_TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
