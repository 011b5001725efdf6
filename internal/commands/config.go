package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/diogo/streamchat/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change settings",
	Long: `Show the current configuration, or change a setting with
'config set <key> <value>'.

Settable keys:
  base_url           Backend base URL
  max_retries        Retry attempts after the first failure
  base_delay_ms      Backoff base delay in milliseconds
  copy_to_clipboard  Copy responses to the clipboard (true/false)
  markdown_style     Markdown theme ("dark", "light", or a JSON file path)
  verbose            Detailed progress output (true/false)
  debug              Diagnostic logging (true/false)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigShow()
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigSet(args[0], args[1])
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("base_url           %s\n", cfg.BaseURL)
	fmt.Printf("max_retries        %d\n", cfg.Retry.MaxRetries)
	fmt.Printf("base_delay_ms      %d\n", cfg.Retry.BaseDelayMS)
	fmt.Printf("retryable_statuses %v\n", cfg.Retry.RetryableStatuses)
	fmt.Printf("copy_to_clipboard  %t\n", cfg.CopyToClipboard)
	fmt.Printf("markdown_style     %s\n", cfg.Markdown.Style)
	fmt.Printf("verbose            %t\n", cfg.Verbose)
	fmt.Printf("debug              %t\n", cfg.Debug)
	return nil
}

func runConfigSet(key, value string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	switch key {
	case "base_url":
		cfg.BaseURL = value
	case "max_retries":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("max_retries must be a non-negative integer")
		}
		cfg.Retry.MaxRetries = n
	case "base_delay_ms":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("base_delay_ms must be a positive integer")
		}
		cfg.Retry.BaseDelayMS = n
	case "copy_to_clipboard":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("copy_to_clipboard must be true or false")
		}
		cfg.CopyToClipboard = b
	case "markdown_style":
		cfg.Markdown.Style = value
	case "verbose":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("verbose must be true or false")
		}
		cfg.Verbose = b
	case "debug":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("debug must be true or false")
		}
		cfg.Debug = b
	default:
		return fmt.Errorf("unknown setting %q", key)
	}

	if err := config.SaveConfig(cfg); err != nil {
		return err
	}
	fmt.Printf("%s = %s\n", key, value)
	return nil
}
