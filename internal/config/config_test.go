package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("THESPORTS_USER", "user")
	t.Setenv("THESPORTS_SECRET", "secret")
}

func TestLoad_AppEnvValidation(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_RequiresProviderCredentials(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("missing user", func(t *testing.T) {
		t.Setenv("THESPORTS_USER", "")
		t.Setenv("THESPORTS_SECRET", "secret")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error without THESPORTS_USER")
		}
	})

	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("THESPORTS_USER", "user")
		t.Setenv("THESPORTS_SECRET", "")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error without THESPORTS_SECRET")
		}
	})
}

func TestLoad_ProviderDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.TheSportsBaseURL != "https://api.thesports.com/v1/football" {
		t.Fatalf("unexpected base url: %q", cfg.TheSportsBaseURL)
	}
	if cfg.TheSportsTimeout != 30*time.Second {
		t.Fatalf("unexpected timeout: %s", cfg.TheSportsTimeout)
	}
	if cfg.TheSportsMaxRetries != 2 {
		t.Fatalf("unexpected max retries: %d", cfg.TheSportsMaxRetries)
	}
	if cfg.TheSportsWorkerCount != 8 {
		t.Fatalf("unexpected worker count: %d", cfg.TheSportsWorkerCount)
	}
	if !cfg.TheSportsCircuitEnabled {
		t.Fatalf("expected circuit enabled by default")
	}
	if cfg.PollInterval != 30*time.Second {
		t.Fatalf("unexpected poll interval: %s", cfg.PollInterval)
	}
	if cfg.HistoryPath != "data/live_matches_history.json" {
		t.Fatalf("unexpected history path: %q", cfg.HistoryPath)
	}
}

func TestLoad_ProviderValidation(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", EnvDev)

	t.Run("negative retries", func(t *testing.T) {
		t.Setenv("THESPORTS_MAX_RETRIES", "-1")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for negative THESPORTS_MAX_RETRIES")
		}
	})

	t.Run("zero workers", func(t *testing.T) {
		t.Setenv("THESPORTS_MAX_RETRIES", "")
		t.Setenv("THESPORTS_WORKER_COUNT", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for THESPORTS_WORKER_COUNT=0")
		}
	})

	t.Run("bad poll interval", func(t *testing.T) {
		t.Setenv("THESPORTS_WORKER_COUNT", "")
		t.Setenv("POLL_INTERVAL", "soon")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid POLL_INTERVAL")
		}
	})
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `uptrace-dsn="https://token@api.uptrace.dev/project"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev/project" {
		t.Fatalf("unexpected uptrace dsn: %q", cfg.UptraceDSN)
	}
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", EnvDev)

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[0] != "https://a.example.com" {
			t.Fatalf("unexpected first CORS origin: %s", cfg.CORSAllowedOrigins[0])
		}
		if cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
			t.Fatalf("unexpected second CORS origin: %s", cfg.CORSAllowedOrigins[1])
		}
	})
}

func TestLoad_LogLevelParsing(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogLevel.String() != "warn" {
		t.Fatalf("unexpected log level: %s", cfg.LogLevel.String())
	}
}
