package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Reset the conversation",
	Long: `Reset the conversation history on the backend.

Clearing is idempotent; an already-empty conversation clears successfully.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClear()
	},
}

func runClear() error {
	client, err := newClient()
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	if err := client.ClearConversation(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Clear failed"))
		return err
	}

	fmt.Println("Conversation cleared")
	return nil
}
