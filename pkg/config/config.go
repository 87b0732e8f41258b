// Package config loads KrakenClient settings from YAML files or the process
// environment.
package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvAPIKey       = "KRAKEN_API_KEY"
	EnvAPISecret    = "KRAKEN_API_SECRET"
	EnvTimeout      = "KRAKEN_TIMEOUT"
	EnvDefaultError = "KRAKEN_DEFAULT_ERROR"
	EnvBaseURL      = "KRAKEN_BASE_URL"
	EnvUserAgent    = "KRAKEN_USER_AGENT"
	EnvTier         = "KRAKEN_TIER"
	EnvRateLimit    = "KRAKEN_RATE_LIMIT"
	EnvLogLevel     = "LOG_LEVEL"
	EnvLogFile      = "KRAKEN_LOG_FILE"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	APIKey              string `yaml:"api_key"`
	APISecret           string `yaml:"api_secret"`
	Timeout             int    `yaml:"timeout"` // seconds, 0 leaves requests unbounded by the client
	DefaultErrorMessage string `yaml:"default_error_message"`
	BaseURL             string `yaml:"base_url"`
	UserAgent           string `yaml:"user_agent"`
	VerificationTier    uint8  `yaml:"verification_tier"`
	RateLimit           bool   `yaml:"rate_limit"`
	LogLevel            string `yaml:"log_level"`
	LogFile             string `yaml:"log_file"`
}

// Load reads and validates the YAML config at 'path'.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv builds a Config from environment variables. Any 'files' passed are
// loaded first with godotenv; variables already present in the environment
// take precedence over values in the files. Missing files are ignored.
func FromEnv(files ...string) (*Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}
	cfg := &Config{
		APIKey:              os.Getenv(EnvAPIKey),
		APISecret:           os.Getenv(EnvAPISecret),
		DefaultErrorMessage: os.Getenv(EnvDefaultError),
		BaseURL:             os.Getenv(EnvBaseURL),
		UserAgent:           os.Getenv(EnvUserAgent),
		LogLevel:            os.Getenv(EnvLogLevel),
		LogFile:             os.Getenv(EnvLogFile),
	}
	if v := strings.TrimSpace(os.Getenv(EnvTimeout)); v != "" {
		timeout, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w; %s must be an integer | %w", ErrInvalidConfig, EnvTimeout, err)
		}
		cfg.Timeout = timeout
	}
	if v := strings.TrimSpace(os.Getenv(EnvTier)); v != "" {
		tier, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("%w; %s must be 1, 2 or 3 | %w", ErrInvalidConfig, EnvTier, err)
		}
		cfg.VerificationTier = uint8(tier)
	}
	if v := strings.TrimSpace(os.Getenv(EnvRateLimit)); v != "" {
		rl, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%w; %s must be a boolean | %w", ErrInvalidConfig, EnvRateLimit, err)
		}
		cfg.RateLimit = rl
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field ranges. An empty secret is allowed and produces a
// public-only client.
func (c *Config) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("%w; timeout cannot be negative", ErrInvalidConfig)
	}
	if c.APISecret != "" {
		if _, err := base64.StdEncoding.DecodeString(c.APISecret); err != nil {
			return fmt.Errorf("%w; api secret is not valid base64", ErrInvalidConfig)
		}
		if c.APIKey == "" {
			return fmt.Errorf("%w; api secret set without api key", ErrInvalidConfig)
		}
	}
	if c.VerificationTier > 3 {
		return fmt.Errorf("%w; verification tier must be 1, 2 or 3", ErrInvalidConfig)
	}
	if c.RateLimit && c.VerificationTier == 0 {
		return fmt.Errorf("%w; rate limiting requires a verification tier", ErrInvalidConfig)
	}
	return nil
}

// RequestTimeout returns Timeout as a time.Duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// HasCredentials reports whether both key and secret are present.
func (c *Config) HasCredentials() bool {
	return c.APIKey != "" && c.APISecret != ""
}
