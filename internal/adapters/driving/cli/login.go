package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login [token]",
	Short: "Sign in to your TailorKit account",
	Long: `Sign in and store the credential for subsequent commands.

In bearer mode, paste the token issued by your identity provider, either
as an argument or at the hidden prompt. In legacy session mode no token
is needed; a local session identity is created.

Examples:
  tailor login                 # prompt for token (bearer) or mint session
  tailor login eyJhbGciOi...   # non-interactive`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	var token string
	if len(args) > 0 {
		token = args[0]
	} else if term.IsTerminal(int(os.Stdin.Fd())) {
		cmd.Print("Token (leave empty for session mode): ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		cmd.Println()
		if err != nil {
			return fmt.Errorf("reading token: %w", err)
		}
		token = strings.TrimSpace(string(raw))
	}

	session, err := sessionService.Login(cmd.Context(), token)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	cmd.Println(styleSuccess.Render("Signed in."))
	cmd.Printf("  User: %s\n", session.UserID)
	cmd.Printf("  Mode: %s\n", session.Mode)
	return nil
}
