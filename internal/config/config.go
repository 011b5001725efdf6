// Package config handles configuration for the streamchat client.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/diogo/streamchat/internal/models"
)

// EnvBaseURL overrides the configured backend base URL when set.
const EnvBaseURL = "STREAMCHAT_BASE_URL"

// MarkdownConfig configures markdown rendering options
type MarkdownConfig struct {
	Style            string `json:"style"`             // "dark", "light", or "auto"
	EnableEmoji      bool   `json:"enable_emoji"`      // Convert :emoji: to unicode
	PreserveNewLines bool   `json:"preserve_newlines"` // Preserve original line breaks
}

// RetryConfig configures the retry controller for a logical send.
type RetryConfig struct {
	// MaxRetries is the maximum number of retry attempts after the first
	// failure. The total number of network calls is MaxRetries+1.
	MaxRetries int `json:"max_retries"`
	// BaseDelayMS is the backoff base in milliseconds; attempt n waits
	// BaseDelayMS * 2^n before restarting.
	BaseDelayMS int `json:"base_delay_ms"`
	// RetryableStatuses are the response statuses treated as transient.
	RetryableStatuses []int `json:"retryable_statuses"`
}

// Config represents the user configuration
type Config struct {
	// BaseURL of the chat backend, without a trailing slash.
	BaseURL string `json:"base_url"`
	// Retry controls backoff behavior for failed sends.
	Retry RetryConfig `json:"retry"`
	// Verbose enables detailed progress output during operations.
	Verbose bool `json:"verbose"`
	// Debug writes every failure and stream event to the debug log file.
	Debug           bool           `json:"debug"`
	CopyToClipboard bool           `json:"copy_to_clipboard"`
	Markdown        MarkdownConfig `json:"markdown,omitempty"`
}

// DefaultMarkdownConfig returns the default markdown configuration
func DefaultMarkdownConfig() MarkdownConfig {
	return MarkdownConfig{
		Style:            "dark",
		EnableEmoji:      true,
		PreserveNewLines: true,
	}
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:        3,
		BaseDelayMS:       1000,
		RetryableStatuses: models.DefaultRetryableStatuses(),
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		BaseURL:         "http://localhost:5000",
		Retry:           DefaultRetryConfig(),
		Verbose:         false,
		Debug:           false,
		CopyToClipboard: false,
		Markdown:        DefaultMarkdownConfig(),
	}
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, ".streamchat"), nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// LoadConfig loads the configuration from disk. The STREAMCHAT_BASE_URL
// environment variable takes precedence over the stored base URL.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	configPath, err := GetConfigPath()
	if err != nil {
		return applyEnv(cfg), err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return applyEnv(cfg), nil // Use defaults if config doesn't exist
		}
		return applyEnv(cfg), fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return applyEnv(DefaultConfig()), fmt.Errorf("failed to parse config file: %w", err)
	}

	// A stored config with no retryable set falls back to the defaults
	if len(cfg.Retry.RetryableStatuses) == 0 {
		cfg.Retry.RetryableStatuses = models.DefaultRetryableStatuses()
	}

	return applyEnv(cfg), nil
}

func applyEnv(cfg Config) Config {
	if url := os.Getenv(EnvBaseURL); url != "" {
		cfg.BaseURL = url
	}
	return cfg
}

// SaveConfig saves the configuration to disk
func SaveConfig(cfg Config) error {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.json")

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
