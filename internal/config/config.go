package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/fpl-cli/internal/platform/logging"
)

// Config stores runtime configuration for one CLI invocation.
type Config struct {
	AppEnv          string
	ServiceName     string
	ServiceVersion  string
	LogLevel        logging.Level
	LogFormat       logging.Format
	FPLBaseURL      string
	FPLTimeout      time.Duration
	FPLUserAgent    string
	FPLMaxBodyBytes int
	FPLStatCatalog  string
	UptraceEnabled  bool
	UptraceDSN      string
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	logFormatDefault := string(logging.FormatConsole)
	if appEnv == EnvProd {
		logFormatDefault = string(logging.FormatJSON)
	}
	logFormat, err := parseLogFormat(getEnv("APP_LOG_FORMAT", logFormatDefault))
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

	baseURL, err := parseBaseURL(getEnv("FPL_BASE_URL", DefaultFPLBaseURL))
	if err != nil {
		return Config{}, fmt.Errorf("parse FPL_BASE_URL: %w", err)
	}

	// zero disables the client timeout
	timeout, err := time.ParseDuration(getEnv("FPL_TIMEOUT", "0s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FPL_TIMEOUT: %w", err)
	}
	if timeout < 0 {
		return Config{}, fmt.Errorf("FPL_TIMEOUT must be >= 0")
	}

	maxBodyBytes, err := getEnvAsInt("FPL_MAX_BODY_BYTES", 16<<20)
	if err != nil {
		return Config{}, fmt.Errorf("parse FPL_MAX_BODY_BYTES: %w", err)
	}
	if maxBodyBytes <= 0 {
		return Config{}, fmt.Errorf("FPL_MAX_BODY_BYTES must be > 0")
	}

	statCatalog := strings.ToLower(strings.TrimSpace(getEnv("FPL_STAT_CATALOG", "v1")))
	switch statCatalog {
	case "v1", "v2":
	default:
		return Config{}, fmt.Errorf("invalid FPL_STAT_CATALOG %q: valid values are v1, v2", statCatalog)
	}

	cfg := Config{
		AppEnv:          appEnv,
		ServiceName:     getEnv("APP_SERVICE_NAME", "fpl-cli"),
		ServiceVersion:  getEnv("APP_SERVICE_VERSION", "dev"),
		LogLevel:        logging.ParseLevel(getEnv("APP_LOG_LEVEL", "warn"), logging.LevelWarn),
		LogFormat:       logFormat,
		FPLBaseURL:      baseURL,
		FPLTimeout:      timeout,
		FPLMaxBodyBytes: maxBodyBytes,
		FPLStatCatalog:  statCatalog,
		UptraceEnabled:  uptraceEnabled,
		UptraceDSN:      uptraceDSN,
	}
	cfg.FPLUserAgent = strings.TrimSpace(getEnv("FPL_USER_AGENT", cfg.ServiceName+"/"+cfg.ServiceVersion))

	return cfg, nil
}

const DefaultFPLBaseURL = "https://fantasy.premierleague.com/api"

func parseBaseURL(raw string) (string, error) {
	value := strings.TrimRight(strings.TrimSpace(raw), "/")
	parsed, err := url.Parse(value)
	if err != nil {
		return "", err
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("scheme must be http or https, got %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("host is required")
	}
	return value, nil
}

func parseLogFormat(v string) (logging.Format, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case string(logging.FormatJSON):
		return logging.FormatJSON, nil
	case string(logging.FormatConsole), "text":
		return logging.FormatConsole, nil
	default:
		return "", fmt.Errorf("invalid APP_LOG_FORMAT %q: valid values are json, console", v)
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
