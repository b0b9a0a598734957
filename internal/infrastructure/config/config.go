package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

const defaultPort = 3333

// Config holds the process-wide settings loaded from the environment.
//
// Required env vars:
//   - MERCADOPAGO_ACCESS_TOKEN
//   - MERCADOPAGO_PUBLIC_KEY
//   - CALLBACK_BASE_URL (absolute URL; success/failure/pending callbacks hang off it)
//
// Optional:
//   - PORT (default: 3333)
//   - DYNAMODB_ENDPOINT / AWS_* (consumed by the database package)
type Config struct {
	AccessToken     string
	PublicKey       string
	CallbackBaseURL string
	Port            int
}

// FromEnv loads and validates the configuration. Any missing or malformed
// required value is an error; callers are expected to fail startup on it.
func FromEnv() (*Config, error) {
	cfg := &Config{
		AccessToken:     strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
		PublicKey:       strings.TrimSpace(os.Getenv("MERCADOPAGO_PUBLIC_KEY")),
		CallbackBaseURL: strings.TrimSpace(os.Getenv("CALLBACK_BASE_URL")),
		Port:            defaultPort,
	}

	if cfg.AccessToken == "" {
		return nil, fmt.Errorf("missing MERCADOPAGO_ACCESS_TOKEN")
	}
	if cfg.PublicKey == "" {
		return nil, fmt.Errorf("missing MERCADOPAGO_PUBLIC_KEY")
	}
	if cfg.CallbackBaseURL == "" {
		return nil, fmt.Errorf("missing CALLBACK_BASE_URL")
	}
	u, err := url.Parse(cfg.CallbackBaseURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("CALLBACK_BASE_URL must be an absolute URL, got %q", cfg.CallbackBaseURL)
	}
	cfg.CallbackBaseURL = strings.TrimRight(cfg.CallbackBaseURL, "/")

	if raw := strings.TrimSpace(os.Getenv("PORT")); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port <= 0 || port > 65535 {
			return nil, fmt.Errorf("invalid PORT %q", raw)
		}
		cfg.Port = port
	}

	return cfg, nil
}
