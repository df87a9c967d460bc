// Package cli implements the command-line interface using cobra.
// Commands are thin: they parse flags, call the driving services injected
// through SetServices, and render results.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tailorkit/tailor-cli/internal/core/ports/driving"
	"github.com/tailorkit/tailor-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Injected services. Commands nil-guard before use so the package stays
// testable without a full bootstrap.
var (
	sessionService     driving.SessionService
	resumeService      driving.ResumeService
	tailorService      driving.TailorService
	coachService       driving.CoachService
	researchService    driving.ResearchService
	applicationService driving.ApplicationService
	settingsService    driving.SettingsService
	pinger             Pinger
)

// Pinger checks backend reachability for the status command.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Persistent flags.
var (
	flagVerbose   bool
	flagConfigDir string
)

var rootCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Resume tailoring from the command line",
	Long: `Tailor is the command-line client for the TailorKit resume platform.

Upload resumes, tailor them to job postings, generate cover letters and
interview prep, track applications, and research companies - all against
your TailorKit account.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "Config directory (default ~/.tailor)")
}

// Services bundles everything the CLI needs.
type Services struct {
	Session     driving.SessionService
	Resume      driving.ResumeService
	Tailor      driving.TailorService
	Coach       driving.CoachService
	Research    driving.ResearchService
	Application driving.ApplicationService
	Settings    driving.SettingsService
	Pinger      Pinger
}

// SetServices injects the service implementations used by the commands.
func SetServices(s Services) {
	sessionService = s.Session
	resumeService = s.Resume
	tailorService = s.Tailor
	coachService = s.Coach
	researchService = s.Research
	applicationService = s.Application
	settingsService = s.Settings
	pinger = s.Pinger
}

// ConfigDir returns the --config-dir flag value ("" means default).
func ConfigDir() string {
	return flagConfigDir
}

// SetVersion sets the version printed by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
