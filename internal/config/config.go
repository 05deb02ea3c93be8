package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/match-center/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                         string
	ServiceName                    string
	ServiceVersion                 string
	HTTPAddr                       string
	ReadTimeout                    time.Duration
	WriteTimeout                   time.Duration
	CORSAllowedOrigins             []string
	PprofEnabled                   bool
	PprofAddr                      string
	TheSportsBaseURL               string
	TheSportsUser                  string
	TheSportsSecret                string
	TheSportsTimeout               time.Duration
	TheSportsMaxRetries            int
	TheSportsWorkerCount           int
	TheSportsCircuitEnabled        bool
	TheSportsCircuitFailureCount   int
	TheSportsCircuitOpenTimeout    time.Duration
	TheSportsCircuitHalfOpenMaxReq int
	PollInterval                   time.Duration
	HistoryPath                    string
	UptraceEnabled                 bool
	UptraceDSN                     string
	UptraceLogsEnabled             bool
	LogLevel                       logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}

	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	theSportsUser := strings.TrimSpace(getEnv("THESPORTS_USER", ""))
	if theSportsUser == "" {
		return Config{}, fmt.Errorf("THESPORTS_USER is required")
	}
	theSportsSecret := strings.TrimSpace(getEnv("THESPORTS_SECRET", ""))
	if theSportsSecret == "" {
		return Config{}, fmt.Errorf("THESPORTS_SECRET is required")
	}

	theSportsTimeout, err := time.ParseDuration(getEnv("THESPORTS_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse THESPORTS_TIMEOUT: %w", err)
	}
	if theSportsTimeout <= 0 {
		return Config{}, fmt.Errorf("THESPORTS_TIMEOUT must be > 0")
	}
	theSportsMaxRetries, err := getEnvAsInt("THESPORTS_MAX_RETRIES", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse THESPORTS_MAX_RETRIES: %w", err)
	}
	if theSportsMaxRetries < 0 {
		return Config{}, fmt.Errorf("THESPORTS_MAX_RETRIES must be >= 0")
	}
	theSportsWorkerCount, err := getEnvAsInt("THESPORTS_WORKER_COUNT", 8)
	if err != nil {
		return Config{}, fmt.Errorf("parse THESPORTS_WORKER_COUNT: %w", err)
	}
	if theSportsWorkerCount < 1 {
		return Config{}, fmt.Errorf("THESPORTS_WORKER_COUNT must be >= 1")
	}
	theSportsCircuitEnabled, err := strconv.ParseBool(getEnv("THESPORTS_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse THESPORTS_CIRCUIT_ENABLED: %w", err)
	}
	theSportsCircuitFailureCount, err := getEnvAsInt("THESPORTS_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse THESPORTS_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if theSportsCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("THESPORTS_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	theSportsCircuitOpenTimeout, err := time.ParseDuration(getEnv("THESPORTS_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse THESPORTS_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if theSportsCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("THESPORTS_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	theSportsCircuitHalfOpenMaxReq, err := getEnvAsInt("THESPORTS_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse THESPORTS_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if theSportsCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("THESPORTS_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	pollInterval, err := time.ParseDuration(getEnv("POLL_INTERVAL", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse POLL_INTERVAL: %w", err)
	}
	if pollInterval <= 0 {
		return Config{}, fmt.Errorf("POLL_INTERVAL must be > 0")
	}

	historyPath := strings.TrimSpace(getEnv("HISTORY_PATH", "data/live_matches_history.json"))
	if historyPath == "" {
		return Config{}, fmt.Errorf("HISTORY_PATH cannot be empty")
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	cfg := Config{
		AppEnv:                         appEnv,
		ServiceName:                    getEnv("APP_SERVICE_NAME", "match-center-api"),
		ServiceVersion:                 getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                       getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:                    readTimeout,
		WriteTimeout:                   writeTimeout,
		CORSAllowedOrigins:             splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		PprofEnabled:                   pprofEnabled,
		PprofAddr:                      pprofAddr,
		TheSportsBaseURL:               strings.TrimSpace(getEnv("THESPORTS_BASE_URL", "https://api.thesports.com/v1/football")),
		TheSportsUser:                  theSportsUser,
		TheSportsSecret:                theSportsSecret,
		TheSportsTimeout:               theSportsTimeout,
		TheSportsMaxRetries:            theSportsMaxRetries,
		TheSportsWorkerCount:           theSportsWorkerCount,
		TheSportsCircuitEnabled:        theSportsCircuitEnabled,
		TheSportsCircuitFailureCount:   theSportsCircuitFailureCount,
		TheSportsCircuitOpenTimeout:    theSportsCircuitOpenTimeout,
		TheSportsCircuitHalfOpenMaxReq: theSportsCircuitHalfOpenMaxReq,
		PollInterval:                   pollInterval,
		HistoryPath:                    historyPath,
		UptraceEnabled:                 uptraceEnabled,
		UptraceDSN:                     uptraceDSN,
		UptraceLogsEnabled:             uptraceLogsEnabled,
		LogLevel:                       parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
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

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
