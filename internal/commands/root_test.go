package commands

import (
	"testing"
)

func TestRootCommandStructure(t *testing.T) {
	subcommands := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		subcommands[cmd.Name()] = true
	}

	for _, want := range []string{"chat", "clear", "health", "config"} {
		if !subcommands[want] {
			t.Errorf("root command missing %q subcommand", want)
		}
	}
}

func TestRootCommandFlags(t *testing.T) {
	tests := []struct {
		name       string
		flag       string
		persistent bool
	}{
		{"base url", "base-url", true},
		{"verbose", "verbose", true},
		{"debug", "debug", true},
		{"output", "output", false},
		{"file", "file", false},
		{"plain", "plain", false},
		{"version", "version", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := rootCmd.Flags()
			if tt.persistent {
				flags = rootCmd.PersistentFlags()
			}
			if flags.Lookup(tt.flag) == nil {
				t.Errorf("flag --%s not registered", tt.flag)
			}
		})
	}
}

func TestConfigCommandStructure(t *testing.T) {
	subcommands := map[string]bool{}
	for _, cmd := range configCmd.Commands() {
		subcommands[cmd.Name()] = true
	}
	for _, want := range []string{"set", "path"} {
		if !subcommands[want] {
			t.Errorf("config command missing %q subcommand", want)
		}
	}
}
