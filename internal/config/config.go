package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/text/language"
)

// Config contains runtime configuration values.
type Config struct {
	APIURL           string
	PublicationLimit int
	RequestTimeout   time.Duration
	SortLocale       language.Tag
	HostPage         string
	OutputPath       string
	ListenAddr       string
	RefreshCron      string
	LogLevel         string
}

const (
	defaultAPIURL           = "https://jsonplaceholder.typicode.com"
	defaultPublicationLimit = 20
	defaultTimeout          = 15 * time.Second
	defaultSortLocale       = "und"
	defaultOutputPath       = "index.html"
	defaultLogLevel         = "info"
)

// Load builds a Config from environment variables with sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		APIURL:           strings.TrimRight(getenvDefault("API_URL", defaultAPIURL), "/"),
		PublicationLimit: parseIntDefault("PUBLICATION_LIMIT", defaultPublicationLimit),
		RequestTimeout:   parseDurationDefault("REQUEST_TIMEOUT", defaultTimeout),
		HostPage:         os.Getenv("HOST_PAGE"),
		OutputPath:       lookupDefault("OUTPUT_PATH", defaultOutputPath),
		ListenAddr:       os.Getenv("LISTEN_ADDR"),
		RefreshCron:      strings.TrimSpace(os.Getenv("REFRESH_CRON")),
		LogLevel:         getenvDefault("LOG_LEVEL", defaultLogLevel),
	}

	if err := validateAPIURL(cfg.APIURL); err != nil {
		return nil, err
	}

	tag, err := language.Parse(getenvDefault("SORT_LOCALE", defaultSortLocale))
	if err != nil {
		return nil, fmt.Errorf("SORT_LOCALE is invalid: %w", err)
	}
	cfg.SortLocale = tag

	if cfg.RefreshCron != "" {
		if _, err := cron.ParseStandard(cfg.RefreshCron); err != nil {
			return nil, fmt.Errorf("REFRESH_CRON is invalid: %w", err)
		}
	}

	if cfg.PublicationLimit <= 0 {
		cfg.PublicationLimit = defaultPublicationLimit
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}

	return cfg, nil
}

func validateAPIURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("API_URL is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("API_URL is invalid: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("API_URL must be an absolute http(s) URL, got %q", raw)
	}
	return nil
}

func getenvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// lookupDefault differs from getenvDefault in that an explicitly empty value is kept.
func lookupDefault(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func parseIntDefault(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func parseDurationDefault(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
