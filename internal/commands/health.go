package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check backend availability",
	Long:  `Query the backend health endpoint and report its status.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHealth()
	},
}

func runHealth() error {
	client, err := newClient()
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	status, err := client.Health(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Health check failed"))
		return err
	}

	fmt.Printf("%s: %s\n", client.BaseURL(), status)
	return nil
}
