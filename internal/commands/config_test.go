package commands

import (
	"testing"

	"github.com/diogo/streamchat/internal/config"
)

func TestRunConfigSet(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvBaseURL, "")

	tests := []struct {
		name  string
		key   string
		value string
		check func(cfg config.Config) bool
	}{
		{"base url", "base_url", "http://example.com:9000", func(cfg config.Config) bool {
			return cfg.BaseURL == "http://example.com:9000"
		}},
		{"max retries", "max_retries", "5", func(cfg config.Config) bool {
			return cfg.Retry.MaxRetries == 5
		}},
		{"base delay", "base_delay_ms", "500", func(cfg config.Config) bool {
			return cfg.Retry.BaseDelayMS == 500
		}},
		{"clipboard", "copy_to_clipboard", "true", func(cfg config.Config) bool {
			return cfg.CopyToClipboard
		}},
		{"markdown style", "markdown_style", "light", func(cfg config.Config) bool {
			return cfg.Markdown.Style == "light"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := runConfigSet(tt.key, tt.value); err != nil {
				t.Fatalf("runConfigSet() error = %v", err)
			}
			cfg, err := config.LoadConfig()
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			if !tt.check(cfg) {
				t.Errorf("setting %s=%s not persisted: %+v", tt.key, tt.value, cfg)
			}
		})
	}
}

func TestRunConfigSetRejectsInvalid(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown key", "no_such_key", "x"},
		{"negative retries", "max_retries", "-1"},
		{"non numeric retries", "max_retries", "lots"},
		{"zero delay", "base_delay_ms", "0"},
		{"bad boolean", "copy_to_clipboard", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := runConfigSet(tt.key, tt.value); err == nil {
				t.Errorf("runConfigSet(%s, %s) succeeded, want error", tt.key, tt.value)
			}
		})
	}
}
