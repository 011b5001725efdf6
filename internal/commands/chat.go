package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start an interactive chat session.

The conversation context is maintained by the backend across messages.
Type 'exit', 'quit', or press Ctrl+C to end the session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat()
	},
}

func runChat() error {
	client, err := newClient()
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	// Confirm the backend is reachable before entering the TUI
	spin := newSpinner("Connecting to backend")
	spin.start()
	status, err := client.Health(context.Background())
	if err != nil {
		spin.stopWithError()
		fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Backend unavailable"))
		return fmt.Errorf("backend unavailable: %w", err)
	}
	spin.stopWithSuccess(fmt.Sprintf("Connected (%s)", status))

	return deps.TUI.RunChat(client)
}
