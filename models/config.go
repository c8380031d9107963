package models

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"dario.cat/mergo"
)

// RetryConfig Bounded retry policy for idempotent upstream reads.
type RetryConfig struct {
	Attempts          int
	Interval          time.Duration
	BackoffMultiplier float64
}

// LLMConfig Settings for the hosted language-model backend.
type LLMConfig struct {
	URL          string
	APIKey       string
	Model        string
	MaxTokens    int
	Temperature  float64
	SystemPrompt string
	Timeout      time.Duration
}

// Config Process-wide configuration, read once at startup and never mutated.
type Config struct {
	Port       string
	LogLevel   string
	AppVersion string

	// JobServiceURL Base URL of the upstream job service
	JobServiceURL string
	// JobServiceTimeout Deadline for job-service calls
	JobServiceTimeout time.Duration
	// FileServiceTimeout Deadline for file-service calls. Longer than the
	// job-service one since artifact transfers are expected to take longer.
	FileServiceTimeout time.Duration
	// FileServiceHostTemplate Pattern for deriving a tenant's file-service
	// host; "{tenant}" is substituted with the tenant id.
	FileServiceHostTemplate string
	// FileServiceTenantHosts Operator-provided explicit tenant-to-host
	// overrides, checked before the template.
	FileServiceTenantHosts map[string]string

	Retry RetryConfig
	LLM   LLMConfig
}

func defaultConfig() Config {
	return Config{
		Port:                    "8000",
		LogLevel:                "info",
		AppVersion:              "0.1.0",
		JobServiceTimeout:       30 * time.Second,
		FileServiceTimeout:      5 * time.Minute,
		FileServiceHostTemplate: "https://gw-{tenant}.workloadmgr.example.com",
		Retry: RetryConfig{
			Attempts:          3,
			Interval:          500 * time.Millisecond,
			BackoffMultiplier: 2,
		},
		LLM: LLMConfig{
			Model:       "claude-3-5-sonnet",
			MaxTokens:   4096,
			Temperature: 0.7,
			Timeout:     30 * time.Second,
		},
	}
}

// NewConfigFromEnv Constructor. Unset variables fall back to defaults via a
// mergo merge, so the environment only needs to name what differs.
func NewConfigFromEnv() (*Config, error) {
	cfg := Config{
		Port:                    strings.TrimSpace(os.Getenv("PORT")),
		LogLevel:                strings.TrimSpace(os.Getenv("LOG_LEVEL")),
		AppVersion:              strings.TrimSpace(os.Getenv("APP_VERSION")),
		JobServiceURL:           strings.TrimSpace(os.Getenv("JOB_SERVICE_URL")),
		FileServiceHostTemplate: strings.TrimSpace(os.Getenv("FILE_SERVICE_HOST_TEMPLATE")),
		LLM: LLMConfig{
			URL:          strings.TrimSpace(os.Getenv("LLM_URL")),
			APIKey:       os.Getenv("LLM_API_KEY"),
			Model:        strings.TrimSpace(os.Getenv("LLM_MODEL")),
			SystemPrompt: os.Getenv("LLM_SYSTEM_PROMPT"),
		},
	}

	var err error
	if cfg.JobServiceTimeout, err = durationFromEnv("JOB_SERVICE_TIMEOUT"); err != nil {
		return nil, err
	}
	if cfg.FileServiceTimeout, err = durationFromEnv("FILE_SERVICE_TIMEOUT"); err != nil {
		return nil, err
	}
	if cfg.LLM.Timeout, err = durationFromEnv("LLM_TIMEOUT"); err != nil {
		return nil, err
	}
	if cfg.Retry.Interval, err = durationFromEnv("UPSTREAM_RETRY_INTERVAL"); err != nil {
		return nil, err
	}
	if cfg.Retry.Attempts, err = intFromEnv("UPSTREAM_RETRY_ATTEMPTS"); err != nil {
		return nil, err
	}
	if cfg.LLM.MaxTokens, err = intFromEnv("LLM_MAX_TOKENS"); err != nil {
		return nil, err
	}
	if cfg.Retry.BackoffMultiplier, err = floatFromEnv("UPSTREAM_RETRY_BACKOFF"); err != nil {
		return nil, err
	}
	if cfg.LLM.Temperature, err = floatFromEnv("LLM_TEMPERATURE"); err != nil {
		return nil, err
	}
	if cfg.FileServiceTenantHosts, err = tenantHostsFromEnv("FILE_SERVICE_TENANT_HOSTS"); err != nil {
		return nil, err
	}

	if err := mergo.Merge(&cfg, defaultConfig()); err != nil {
		return nil, fmt.Errorf("failed to apply config defaults: %w", err)
	}

	if cfg.JobServiceURL == "" {
		return nil, fmt.Errorf("JOB_SERVICE_URL is not set")
	}
	return &cfg, nil
}

func durationFromEnv(name string) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return 0, nil
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid duration in %s: %w", name, err)
	}
	return duration, nil
}

func intFromEnv(name string) (int, error) {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return 0, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid integer in %s: %w", name, err)
	}
	return parsed, nil
}

func floatFromEnv(name string) (float64, error) {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return 0, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number in %s: %w", name, err)
	}
	return parsed, nil
}

func tenantHostsFromEnv(name string) (map[string]string, error) {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return nil, nil
	}
	hosts := map[string]string{}
	if err := json.Unmarshal([]byte(value), &hosts); err != nil {
		return nil, fmt.Errorf("invalid JSON in %s: %w", name, err)
	}
	return hosts, nil
}
