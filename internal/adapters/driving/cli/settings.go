package cli

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/tailorkit/tailor-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	RunE:  runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change one setting",
	Long: `Change one setting and persist it.

Keys:
  base-url     Backend base URL
  timeout      Request timeout in seconds
  rate-limit   Max requests per second (0 = unlimited)
  mode         Auth mode (bearer, session)
  issuer-url   OIDC issuer URL (bearer mode)
  client-id    OAuth client ID (bearer mode)
  public-key   Identity provider publishable key`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}

	cmd.Println(styleHeader.Render("[API]"))
	cmd.Printf("  Base URL:   %s\n", settings.API.BaseURL)
	cmd.Printf("  Timeout:    %s\n", settings.API.Timeout)
	cmd.Printf("  Rate limit: %d req/s\n", settings.API.RateLimit)
	cmd.Println()
	cmd.Println(styleHeader.Render("[Auth]"))
	cmd.Printf("  Mode: %s\n", settings.Auth.Mode)
	if settings.Auth.Mode == domain.AuthModeBearer {
		cmd.Printf("  Issuer:    %s\n", settings.Auth.IssuerURL)
		cmd.Printf("  Client ID: %s\n", settings.Auth.ClientID)
	}
	return nil
}

//nolint:gocyclo // flat key dispatch
func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}

	key, value := args[0], args[1]
	switch key {
	case "base-url":
		settings.API.BaseURL = value
	case "timeout":
		secs, err := strconv.Atoi(value)
		if err != nil || secs <= 0 {
			return fmt.Errorf("invalid timeout %q", value)
		}
		settings.API.Timeout = time.Duration(secs) * time.Second
	case "rate-limit":
		limit, err := strconv.Atoi(value)
		if err != nil || limit < 0 {
			return fmt.Errorf("invalid rate limit %q", value)
		}
		settings.API.RateLimit = limit
	case "mode":
		mode := domain.AuthMode(value)
		if !mode.IsValid() {
			return fmt.Errorf("invalid mode %q (bearer, session)", value)
		}
		settings.Auth.Mode = mode
	case "issuer-url":
		settings.Auth.IssuerURL = value
	case "client-id":
		settings.Auth.ClientID = value
	case "public-key":
		settings.Auth.PublicKey = value
	default:
		return fmt.Errorf("unknown setting %q", key)
	}

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}

	cmd.Printf("Set %s.\n", key)
	return nil
}
