package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tailorkit/tailor-cli/internal/core/domain"
)

var appsCmd = &cobra.Command{
	Use:   "apps",
	Short: "Track job applications",
}

var appsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked applications",
	RunE:  runAppsList,
}

var appsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Track a new application",
	Long: `Track a new job application.

Examples:
  tailor apps add --company Acme --role "Staff Engineer"
  tailor apps add --company Acme --role "Staff Engineer" --status interviewing`,
	RunE: runAppsAdd,
}

var appsUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a tracked application",
	Args:  cobra.ExactArgs(1),
	RunE:  runAppsUpdate,
}

var appsRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Stop tracking an application",
	Args:  cobra.ExactArgs(1),
	RunE:  runAppsRemove,
}

// Flags for apps add/update.
var (
	appsListJSON bool

	appCompany string
	appRole    string
	appStatus  string
	appURL     string
	appNotes   string
)

func addAppFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&appCompany, "company", "", "Hiring company")
	cmd.Flags().StringVar(&appRole, "role", "", "Position applied for")
	cmd.Flags().StringVar(&appStatus, "status", "",
		"Pipeline stage (saved, applied, interviewing, offer, rejected, accepted)")
	cmd.Flags().StringVar(&appURL, "url", "", "Posting URL")
	cmd.Flags().StringVar(&appNotes, "notes", "", "Free-form notes")
}

func init() {
	appsListCmd.Flags().BoolVar(&appsListJSON, "json", false, "output as JSON")
	addAppFlags(appsAddCmd)
	addAppFlags(appsUpdateCmd)

	appsCmd.AddCommand(appsListCmd)
	appsCmd.AddCommand(appsAddCmd)
	appsCmd.AddCommand(appsUpdateCmd)
	appsCmd.AddCommand(appsRemoveCmd)
	rootCmd.AddCommand(appsCmd)
}

func runAppsList(cmd *cobra.Command, _ []string) error {
	if applicationService == nil {
		return errors.New("application service not configured")
	}

	apps, err := applicationService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing applications: %w", err)
	}

	if appsListJSON {
		data, err := json.MarshalIndent(apps, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling applications: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(apps) == 0 {
		cmd.Println(styleMuted.Render("No tracked applications."))
		return nil
	}

	cmd.Println(styleHeader.Render("ID    Status        Company              Role"))
	for _, a := range apps {
		status := string(a.Status)
		switch a.Status {
		case domain.StatusOffer, domain.StatusAccepted:
			status = styleSuccess.Render(status)
		case domain.StatusRejected:
			status = styleError.Render(status)
		case domain.StatusInterviewing:
			status = styleWarning.Render(status)
		}
		cmd.Printf("%-5d %-13s %-20s %s\n", a.ID, status, a.Company, a.Role)
	}
	return nil
}

func runAppsAdd(cmd *cobra.Command, _ []string) error {
	if applicationService == nil {
		return errors.New("application service not configured")
	}

	app := domain.Application{
		Company:   appCompany,
		Role:      appRole,
		Status:    domain.ApplicationStatus(appStatus),
		URL:       appURL,
		Notes:     appNotes,
		AppliedAt: time.Now(),
	}
	if app.Status == "" {
		app.Status = domain.StatusSaved
	}

	created, err := applicationService.Create(cmd.Context(), app)
	if err != nil {
		return fmt.Errorf("creating application: %w", err)
	}

	cmd.Println(styleSuccess.Render(fmt.Sprintf(
		"Tracking %s at %s (id %d).", created.Role, created.Company, created.ID)))
	return nil
}

func runAppsUpdate(cmd *cobra.Command, args []string) error {
	if applicationService == nil {
		return errors.New("application service not configured")
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	app := domain.Application{
		ID:      id,
		Company: appCompany,
		Role:    appRole,
		Status:  domain.ApplicationStatus(appStatus),
		URL:     appURL,
		Notes:   appNotes,
	}

	updated, err := applicationService.Update(cmd.Context(), app)
	if err != nil {
		return fmt.Errorf("updating application: %w", err)
	}

	cmd.Printf("Updated application %d (%s).\n", updated.ID, updated.Status)
	return nil
}

func runAppsRemove(cmd *cobra.Command, args []string) error {
	if applicationService == nil {
		return errors.New("application service not configured")
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err := applicationService.Delete(cmd.Context(), id); err != nil {
		return fmt.Errorf("removing application: %w", err)
	}

	cmd.Printf("Removed application %d.\n", id)
	return nil
}
