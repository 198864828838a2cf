package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	DatabaseURL     string        // Postgres connection string for the catalog
	CareerFile      string        // path to the career catalog seed (careers.yaml)
	RefreshInterval time.Duration // interval between catalog refreshes (default: 15m)
	SessionTTL      time.Duration // diagnosis sessions idle longer than this are purged
	ReapInterval    time.Duration // how often stale sessions are reaped

	DefaultLocale string // "km" or "en"

	AuthUserinfoURL string        // auth provider endpoint for bearer-token lookups ("" = auth disabled)
	AuthTimeout     time.Duration // timeout for auth provider calls
	AdminToken      string        // shared token guarding the manual refresh endpoint

	AllowedOrigins []string // CORS origins ("*" allowed for dev)

	// Redis
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDT             time.Duration // Redis dial timeout (ex: 5s)
	RedisRT             time.Duration // Redis read timeout (ex: 3s)
	RedisWT             time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize       int           // Redis connection pool size
	RedisConnectTimeout time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold  int           // warn after this many attempts
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("DOORHUB_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("DOORHUB_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("DOORHUB_LOG_LEVEL", "info"),
		PrettyLog: mustBool("DOORHUB_PRETTY_LOG", true),

		// Catalog sources
		DatabaseURL:     requireEnv("DOORHUB_DATABASE_URL"),
		CareerFile:      getenv("DOORHUB_CAREER_FILE", "careers.yaml"),
		RefreshInterval: mustDuration("DOORHUB_REFRESH_INTERVAL", 15*time.Minute),
		SessionTTL:      mustDuration("DOORHUB_SESSION_TTL", 24*time.Hour),
		ReapInterval:    mustDuration("DOORHUB_REAP_INTERVAL", time.Hour),

		DefaultLocale: getenv("DOORHUB_DEFAULT_LOCALE", "km"),

		// Auth
		AuthUserinfoURL: getenv("DOORHUB_AUTH_USERINFO_URL", ""),
		AuthTimeout:     mustDuration("DOORHUB_AUTH_TIMEOUT", 3*time.Second),
		AdminToken:      getenv("DOORHUB_ADMIN_TOKEN", ""),

		AllowedOrigins: splitAndTrim(getenv("DOORHUB_ALLOWED_ORIGINS", "*")),

		// Redis settings
		RedisAddr:           requireEnv("DOORHUB_REDIS_ADDR"),
		RedisUser:           getenv("DOORHUB_REDIS_USERNAME", "default"),
		RedisPassword:       getenv("DOORHUB_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("DOORHUB_REDIS_DB", 0),
		RedisDT:             mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:        mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:       getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:  getenvInt("REDIS_WARN_THRESHOLD", 3),
	}

	if cfg.DefaultLocale != "km" && cfg.DefaultLocale != "en" {
		panic(fmt.Sprintf("❌ FATAL: DOORHUB_DEFAULT_LOCALE must be \"km\" or \"en\", got %q", cfg.DefaultLocale))
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
