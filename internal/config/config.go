package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/portalwatch/portal-api/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                  string
	ServiceName             string
	ServiceVersion          string
	HTTPAddr                string
	ReadTimeout             time.Duration
	WriteTimeout            time.Duration
	CORSAllowedOrigins      []string
	LogLevel                logging.Level
	CFBDBaseURL             string
	CFBDToken               string
	CFBDTimeout             time.Duration
	CFBDMaxRetries          int
	CFBDCircuitEnabled      bool
	CFBDCircuitFailureCount int
	CFBDCircuitOpenTimeout  time.Duration
	CFBDCircuitHalfOpenMax  int
	FetchInterval           time.Duration
	TransferCacheTTL        time.Duration
	RosterCacheTTL          time.Duration
	CareerCacheTTL          time.Duration
	StatsCacheTTL           time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	cfbdTimeout, err := time.ParseDuration(getEnv("CFBD_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CFBD_TIMEOUT: %w", err)
	}
	if cfbdTimeout <= 0 {
		return Config{}, fmt.Errorf("CFBD_TIMEOUT must be > 0")
	}

	cfbdMaxRetries, err := getEnvAsInt("CFBD_MAX_RETRIES", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse CFBD_MAX_RETRIES: %w", err)
	}
	if cfbdMaxRetries < 0 {
		return Config{}, fmt.Errorf("CFBD_MAX_RETRIES must be >= 0")
	}

	cfbdCircuitEnabled, err := strconv.ParseBool(getEnv("CFBD_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CFBD_CIRCUIT_ENABLED: %w", err)
	}

	cfbdCircuitFailureCount, err := getEnvAsInt("CFBD_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse CFBD_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if cfbdCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("CFBD_CIRCUIT_FAILURE_COUNT must be >= 1")
	}

	cfbdCircuitOpenTimeout, err := time.ParseDuration(getEnv("CFBD_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CFBD_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if cfbdCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("CFBD_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}

	cfbdCircuitHalfOpenMax, err := getEnvAsInt("CFBD_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse CFBD_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if cfbdCircuitHalfOpenMax < 1 {
		return Config{}, fmt.Errorf("CFBD_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	fetchInterval, err := time.ParseDuration(getEnv("FETCH_INTERVAL", "750ms"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FETCH_INTERVAL: %w", err)
	}
	if fetchInterval < 0 {
		return Config{}, fmt.Errorf("FETCH_INTERVAL must be >= 0")
	}

	transferTTL, err := parseTTL("TRANSFER_CACHE_TTL", "24h")
	if err != nil {
		return Config{}, err
	}
	rosterTTL, err := parseTTL("ROSTER_CACHE_TTL", "24h")
	if err != nil {
		return Config{}, err
	}
	careerTTL, err := parseTTL("CAREER_CACHE_TTL", "24h")
	if err != nil {
		return Config{}, err
	}
	statsTTL, err := parseTTL("STATS_CACHE_TTL", "24h")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:                  appEnv,
		ServiceName:             getEnv("APP_SERVICE_NAME", "portal-api"),
		ServiceVersion:          getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:             readTimeout,
		WriteTimeout:            writeTimeout,
		CORSAllowedOrigins:      splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:                parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		CFBDBaseURL:             strings.TrimSpace(getEnv("CFBD_BASE_URL", "https://api.collegefootballdata.com")),
		CFBDToken:               strings.TrimSpace(getEnv("CFBD_TOKEN", "")),
		CFBDTimeout:             cfbdTimeout,
		CFBDMaxRetries:          cfbdMaxRetries,
		CFBDCircuitEnabled:      cfbdCircuitEnabled,
		CFBDCircuitFailureCount: cfbdCircuitFailureCount,
		CFBDCircuitOpenTimeout:  cfbdCircuitOpenTimeout,
		CFBDCircuitHalfOpenMax:  cfbdCircuitHalfOpenMax,
		FetchInterval:           fetchInterval,
		TransferCacheTTL:        transferTTL,
		RosterCacheTTL:          rosterTTL,
		CareerCacheTTL:          careerTTL,
		StatsCacheTTL:           statsTTL,
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

func parseTTL(key, fallback string) (time.Duration, error) {
	ttl, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if ttl <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return ttl, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}
