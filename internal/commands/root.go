// Package commands provides CLI commands for streamchat.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/diogo/streamchat/internal/config"
)

var (
	// Global flags
	baseURLFlag string
	outputFlag  string
	fileFlag    string
	plainFlag   bool
	verboseFlag bool
	debugFlag   bool

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "streamchat [message]",
	Short: "Streaming chat client",
	Long: `streamchat is a command-line client for a streaming chat backend.
Responses arrive incrementally and are displayed as they stream in.

Examples:
  streamchat chat                      Start interactive chat
  streamchat "What is Go?"             Send a single message
  streamchat -f prompt.md              Read message from file
  cat prompt.md | streamchat           Read message from stdin
  streamchat "Hello" -o response.md    Save response to file
  streamchat clear                     Reset the conversation
  streamchat health                    Check backend availability`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("streamchat %s (built %s)\n", Version, BuildTime)
			return nil
		}

		// Check for stdin input
		stat, _ := os.Stdin.Stat()
		hasStdin := (stat.Mode() & os.ModeCharDevice) == 0

		if fileFlag != "" {
			data, err := os.ReadFile(fileFlag)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			return runQuery(string(data), plainFlag || !isStdoutTTY())
		}

		if hasStdin {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			return runQuery(string(data), plainFlag || !isStdoutTTY())
		}

		if len(args) > 0 {
			return runQuery(args[0], plainFlag || !isStdoutTTY())
		}

		// No input - show help
		return cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURLFlag, "base-url", "", "Backend base URL (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Show detailed progress on stderr")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Write diagnostics to the debug log")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save response to file")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read message from file")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")
	rootCmd.Flags().BoolVar(&plainFlag, "plain", false, "Print the raw response without decoration")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig returns the user configuration with flag overrides applied
func loadConfig() config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
	}
	if baseURLFlag != "" {
		cfg.BaseURL = baseURLFlag
	}
	if verboseFlag {
		cfg.Verbose = true
	}
	if debugFlag {
		cfg.Debug = true
	}
	if cfg.Debug {
		if err := config.InitDebugLog(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to open debug log: %v\n", err)
		}
	}
	return cfg
}
