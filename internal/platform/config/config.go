package config

import (
	"fmt"
	"net/netip"
	"os"
	"strconv"
	"strings"
	"time"
)

// ReferenceDateLayout is the format of PNR_REFERENCE_DATE.
const ReferenceDateLayout = "2006-01-02"

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	Environment     string
	LogLevel        string
	PseudonymKey    []byte
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64
	TrustedProxies  []netip.Prefix

	// ReferenceDate pins "today" for every age and century decision.
	// Zero means the system clock is used.
	ReferenceDate time.Time
}

// DevPseudonymKey is used when PNR_PSEUDONYM_KEY is unset. Pseudonyms made
// with it are only stable, not secret.
const DevPseudonymKey = "dev-pseudonym-key-change-in-production"

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	return fromLookup(os.Getenv)
}

func fromLookup(getenv func(string) string) (Server, error) {
	cfg := Server{
		Addr:            valueOr(getenv("PNR_ADDR"), ":8080"),
		Environment:     valueOr(getenv("PNR_ENVIRONMENT"), "development"),
		LogLevel:        valueOr(getenv("PNR_LOG_LEVEL"), "info"),
		PseudonymKey:    []byte(valueOr(getenv("PNR_PSEUDONYM_KEY"), DevPseudonymKey)),
		RequestTimeout:  5 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		MaxBodyBytes:    4096,
	}

	var err error
	if cfg.RequestTimeout, err = duration(getenv, "PNR_REQUEST_TIMEOUT", cfg.RequestTimeout); err != nil {
		return Server{}, err
	}
	if cfg.ShutdownTimeout, err = duration(getenv, "PNR_SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout); err != nil {
		return Server{}, err
	}

	if raw := getenv("PNR_MAX_BODY_BYTES"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			return Server{}, fmt.Errorf("PNR_MAX_BODY_BYTES: invalid size %q", raw)
		}
		cfg.MaxBodyBytes = n
	}

	if raw := getenv("PNR_REFERENCE_DATE"); raw != "" {
		ref, err := time.Parse(ReferenceDateLayout, raw)
		if err != nil {
			return Server{}, fmt.Errorf("PNR_REFERENCE_DATE: %w", err)
		}
		cfg.ReferenceDate = ref
	}

	if raw := getenv("PNR_TRUSTED_PROXIES"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			prefix, err := netip.ParsePrefix(strings.TrimSpace(part))
			if err != nil {
				return Server{}, fmt.Errorf("PNR_TRUSTED_PROXIES: %w", err)
			}
			cfg.TrustedProxies = append(cfg.TrustedProxies, prefix)
		}
	}

	return cfg, nil
}

func duration(getenv func(string) string, key string, fallback time.Duration) (time.Duration, error) {
	raw := getenv(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %s", key, d)
	}
	return d, nil
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
