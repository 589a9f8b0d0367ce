package config

import (
	"testing"
	"time"

	"github.com/portalwatch/portal-api/internal/platform/logging"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.AppEnv != EnvDev {
		t.Errorf("AppEnv = %q, want %q", cfg.AppEnv, EnvDev)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.CFBDBaseURL != "https://api.collegefootballdata.com" {
		t.Errorf("CFBDBaseURL = %q", cfg.CFBDBaseURL)
	}
	if cfg.CFBDToken != "" {
		t.Errorf("CFBDToken = %q, want empty", cfg.CFBDToken)
	}
	if cfg.FetchInterval != 750*time.Millisecond {
		t.Errorf("FetchInterval = %v", cfg.FetchInterval)
	}
	if cfg.TransferCacheTTL != 24*time.Hour {
		t.Errorf("TransferCacheTTL = %v", cfg.TransferCacheTTL)
	}
	if cfg.StatsCacheTTL != 24*time.Hour {
		t.Errorf("StatsCacheTTL = %v", cfg.StatsCacheTTL)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Errorf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}
	if !cfg.CFBDCircuitEnabled || cfg.CFBDCircuitFailureCount != 5 {
		t.Errorf("circuit defaults = %v/%d", cfg.CFBDCircuitEnabled, cfg.CFBDCircuitFailureCount)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("CFBD_TOKEN", "secret-token")
	t.Setenv("CFBD_TIMEOUT", "5s")
	t.Setenv("CFBD_MAX_RETRIES", "4")
	t.Setenv("FETCH_INTERVAL", "250ms")
	t.Setenv("TRANSFER_CACHE_TTL", "1h")
	t.Setenv("APP_LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.AppEnv != EnvProd {
		t.Errorf("AppEnv = %q", cfg.AppEnv)
	}
	if cfg.CFBDToken != "secret-token" {
		t.Errorf("CFBDToken = %q", cfg.CFBDToken)
	}
	if cfg.CFBDTimeout != 5*time.Second {
		t.Errorf("CFBDTimeout = %v", cfg.CFBDTimeout)
	}
	if cfg.CFBDMaxRetries != 4 {
		t.Errorf("CFBDMaxRetries = %d", cfg.CFBDMaxRetries)
	}
	if cfg.FetchInterval != 250*time.Millisecond {
		t.Errorf("FetchInterval = %v", cfg.FetchInterval)
	}
	if cfg.TransferCacheTTL != time.Hour {
		t.Errorf("TransferCacheTTL = %v", cfg.TransferCacheTTL)
	}
	if cfg.LogLevel != logging.LevelDebug {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Errorf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"invalid app env", "APP_ENV", "sandbox"},
		{"invalid timeout", "CFBD_TIMEOUT", "fast"},
		{"negative retries", "CFBD_MAX_RETRIES", "-1"},
		{"zero ttl", "ROSTER_CACHE_TTL", "0s"},
		{"zero stats ttl", "STATS_CACHE_TTL", "0s"},
		{"invalid circuit count", "CFBD_CIRCUIT_FAILURE_COUNT", "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			if _, err := Load(); err == nil {
				t.Fatalf("Load() accepted %s=%q", tc.key, tc.value)
			}
		})
	}
}
