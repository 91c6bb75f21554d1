package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/statsapi-gateway/internal/platform/logging"
	"github.com/riskibarqy/statsapi-gateway/internal/platform/resilience"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                        string
	ServiceName                   string
	ServiceVersion                string
	HTTPAddr                      string
	CORSAllowedOrigins            []string
	ReadTimeout                   time.Duration
	WriteTimeout                  time.Duration
	ShutdownTimeout               time.Duration
	UpstreamBaseURL               string
	UpstreamUserAgent             string
	UpstreamTimeout               time.Duration
	UpstreamCircuitEnabled        bool
	UpstreamCircuitFailureCount   int
	UpstreamCircuitOpenTimeout    time.Duration
	UpstreamCircuitHalfOpenMaxReq int
	PprofEnabled                  bool
	PprofAddr                     string
	UptraceEnabled                bool
	UptraceDSN                    string
	UptraceLogsEnabled            bool
	PyroscopeEnabled              bool
	PyroscopeServerAddress        string
	PyroscopeAppName              string
	PyroscopeAuthToken            string
	PyroscopeBasicAuthUser        string
	PyroscopeBasicAuthPassword    string
	PyroscopeUploadRate           time.Duration
	LogLevel                      logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := getEnvAsDuration("APP_READ_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}
	writeTimeout, err := getEnvAsDuration("APP_WRITE_TIMEOUT", "30s")
	if err != nil {
		return Config{}, err
	}
	shutdownTimeout, err := getEnvAsDuration("APP_SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}

	upstreamBaseURL := strings.TrimRight(strings.TrimSpace(getEnv("UPSTREAM_BASE_URL", "https://statsapi.mlb.com/api/v1")), "/")
	parsedBaseURL, err := url.Parse(upstreamBaseURL)
	if err != nil {
		return Config{}, fmt.Errorf("parse UPSTREAM_BASE_URL: %w", err)
	}
	if parsedBaseURL.Scheme != "http" && parsedBaseURL.Scheme != "https" {
		return Config{}, fmt.Errorf("UPSTREAM_BASE_URL must be an http(s) URL, got %q", upstreamBaseURL)
	}
	if parsedBaseURL.RawQuery != "" {
		return Config{}, fmt.Errorf("UPSTREAM_BASE_URL must not carry a query string")
	}

	upstreamTimeout, err := getEnvAsDuration("UPSTREAM_TIMEOUT", "20s")
	if err != nil {
		return Config{}, err
	}
	upstreamCircuitEnabled, err := getEnvAsBool("UPSTREAM_CIRCUIT_ENABLED", "false")
	if err != nil {
		return Config{}, err
	}
	upstreamCircuitFailureCount, err := getEnvAsInt("UPSTREAM_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse UPSTREAM_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if upstreamCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("UPSTREAM_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	upstreamCircuitOpenTimeout, err := getEnvAsDuration("UPSTREAM_CIRCUIT_OPEN_TIMEOUT", "15s")
	if err != nil {
		return Config{}, err
	}
	upstreamCircuitHalfOpenMaxReq, err := getEnvAsInt("UPSTREAM_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse UPSTREAM_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if upstreamCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("UPSTREAM_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	uptraceEnabled, err := getEnvAsBool("UPTRACE_ENABLED", "false")
	if err != nil {
		return Config{}, err
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := getEnvAsBool("UPTRACE_LOGS_ENABLED", "true")
	if err != nil {
		return Config{}, err
	}

	pprofEnabled, err := getEnvAsBool("PPROF_ENABLED", "false")
	if err != nil {
		return Config{}, err
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := getEnvAsBool("PYROSCOPE_ENABLED", "false")
	if err != nil {
		return Config{}, err
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := getEnvAsDuration("PYROSCOPE_UPLOAD_RATE", "15s")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:                        appEnv,
		ServiceName:                   getEnv("APP_SERVICE_NAME", "statsapi-gateway"),
		ServiceVersion:                getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                      strings.TrimSpace(getEnv("APP_HTTP_ADDR", ":8080")),
		CORSAllowedOrigins:            splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:                   readTimeout,
		WriteTimeout:                  writeTimeout,
		ShutdownTimeout:               shutdownTimeout,
		UpstreamBaseURL:               upstreamBaseURL,
		UpstreamUserAgent:             strings.TrimSpace(getEnv("UPSTREAM_USER_AGENT", "MLB-MCP-Server/1.0")),
		UpstreamTimeout:               upstreamTimeout,
		UpstreamCircuitEnabled:        upstreamCircuitEnabled,
		UpstreamCircuitFailureCount:   upstreamCircuitFailureCount,
		UpstreamCircuitOpenTimeout:    upstreamCircuitOpenTimeout,
		UpstreamCircuitHalfOpenMaxReq: upstreamCircuitHalfOpenMaxReq,
		PprofEnabled:                  pprofEnabled,
		PprofAddr:                     pprofAddr,
		UptraceEnabled:                uptraceEnabled,
		UptraceDSN:                    uptraceDSN,
		UptraceLogsEnabled:            uptraceLogsEnabled,
		PyroscopeEnabled:              pyroscopeEnabled,
		PyroscopeServerAddress:        pyroscopeServerAddress,
		PyroscopeAuthToken:            strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:        strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword:    strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:           pyroscopeUploadRate,
		LogLevel:                      parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if cfg.HTTPAddr == "" {
		return Config{}, fmt.Errorf("APP_HTTP_ADDR cannot be empty")
	}

	return cfg, nil
}

func (c Config) UpstreamCircuitBreaker() resilience.CircuitBreakerConfig {
	return resilience.CircuitBreakerConfig{
		Enabled:          c.UpstreamCircuitEnabled,
		FailureThreshold: c.UpstreamCircuitFailureCount,
		OpenTimeout:      c.UpstreamCircuitOpenTimeout,
		HalfOpenMaxReq:   c.UpstreamCircuitHalfOpenMaxReq,
	}
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

func getEnvAsBool(key, fallback string) (bool, error) {
	out, err := strconv.ParseBool(strings.TrimSpace(getEnv(key, fallback)))
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return out, nil
}

// getEnvAsDuration parses a positive duration such as "15s".
func getEnvAsDuration(key, fallback string) (time.Duration, error) {
	out, err := time.ParseDuration(strings.TrimSpace(getEnv(key, fallback)))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
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
