package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check backend connectivity",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if pinger == nil {
		return errors.New("api client not configured")
	}

	if err := pinger.Ping(cmd.Context()); err != nil {
		cmd.Println(styleError.Render("Backend unreachable."))
		return fmt.Errorf("ping failed: %w", err)
	}

	cmd.Println(styleSuccess.Render("Backend reachable."))
	return nil
}
