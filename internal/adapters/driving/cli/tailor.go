package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tailorkit/tailor-cli/internal/core/domain"
)

var tailorCmd = &cobra.Command{
	Use:   "tailor [resume-id]",
	Short: "Tailor a resume to a job posting",
	Long: `Rewrite a resume so it targets a specific job posting.

The posting is described with --title and --company, plus either
--description-file for the full posting text or --url for the posting link.

Examples:
  tailor tailor 3 --title "Staff Engineer" --company "Acme" --description-file posting.txt
  tailor tailor 3 --title "Staff Engineer" --company "Acme" --url https://jobs.acme.com/123`,
	Args: cobra.ExactArgs(1),
	RunE: runTailor,
}

var interviewCmd = &cobra.Command{
	Use:   "interview [resume-id]",
	Short: "Generate interview prep for a posting",
	Args:  cobra.ExactArgs(1),
	RunE:  runInterview,
}

var coverLetterCmd = &cobra.Command{
	Use:   "cover-letter",
	Short: "Generate and list cover letters",
}

var coverLetterGenerateCmd = &cobra.Command{
	Use:   "generate [resume-id]",
	Short: "Generate a cover letter for a posting",
	Args:  cobra.ExactArgs(1),
	RunE:  runCoverLetterGenerate,
}

var coverLetterListCmd = &cobra.Command{
	Use:   "list",
	Short: "List generated cover letters",
	RunE:  runCoverLetterList,
}

// Job posting flags shared by the generation commands.
var (
	jobTitle        string
	jobCompany      string
	jobDescFile     string
	jobURL          string
	coverLetterTone string
)

func addJobFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&jobTitle, "title", "", "Job title (required)")
	cmd.Flags().StringVar(&jobCompany, "company", "", "Hiring company (required)")
	cmd.Flags().StringVar(&jobDescFile, "description-file", "", "File containing the posting text")
	cmd.Flags().StringVar(&jobURL, "url", "", "Posting URL")
}

func init() {
	addJobFlags(tailorCmd)
	addJobFlags(interviewCmd)
	addJobFlags(coverLetterGenerateCmd)
	coverLetterGenerateCmd.Flags().StringVar(
		&coverLetterTone, "tone", "", "Writing tone (professional, enthusiastic, concise)")

	coverLetterCmd.AddCommand(coverLetterGenerateCmd)
	coverLetterCmd.AddCommand(coverLetterListCmd)

	rootCmd.AddCommand(tailorCmd)
	rootCmd.AddCommand(interviewCmd)
	rootCmd.AddCommand(coverLetterCmd)
}

// jobFromFlags assembles the posting from the shared flags.
func jobFromFlags() (domain.JobPosting, error) {
	job := domain.JobPosting{
		Title:   jobTitle,
		Company: jobCompany,
		URL:     jobURL,
	}

	if jobDescFile != "" {
		data, err := os.ReadFile(jobDescFile)
		if err != nil {
			return job, fmt.Errorf("reading %s: %w", jobDescFile, err)
		}
		job.Description = string(data)
	}

	if err := job.Validate(); err != nil {
		return job, errors.New("--title and --company are required")
	}
	return job, nil
}

func runTailor(cmd *cobra.Command, args []string) error {
	if tailorService == nil {
		return errors.New("tailor service not configured")
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	job, err := jobFromFlags()
	if err != nil {
		return err
	}

	cmd.Println(styleMuted.Render("Tailoring... this can take a minute."))

	result, err := tailorService.Tailor(cmd.Context(), id, job)
	if err != nil {
		return fmt.Errorf("tailoring resume: %w", err)
	}

	cmd.Println(styleSuccess.Render(fmt.Sprintf(
		"Tailored resume %d for %s at %s (match %d%%).",
		result.ID, result.JobTitle, result.Company, result.MatchScore)))
	cmd.Println()
	cmd.Println(result.Content)
	return nil
}

func runInterview(cmd *cobra.Command, args []string) error {
	if tailorService == nil {
		return errors.New("tailor service not configured")
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	job, err := jobFromFlags()
	if err != nil {
		return err
	}

	prep, err := tailorService.InterviewPrep(cmd.Context(), id, job)
	if err != nil {
		return fmt.Errorf("generating interview prep: %w", err)
	}

	cmd.Println(styleHeader.Render(fmt.Sprintf(
		"Interview prep: %s at %s", prep.JobTitle, prep.Company)))
	for i, q := range prep.Questions {
		cmd.Printf("\n%d. %s\n", i+1, q.Question)
		if q.Category != "" {
			cmd.Printf("   %s\n", styleMuted.Render("["+q.Category+"]"))
		}
		if q.Guidance != "" {
			cmd.Printf("   %s\n", q.Guidance)
		}
	}
	return nil
}

func runCoverLetterGenerate(cmd *cobra.Command, args []string) error {
	if tailorService == nil {
		return errors.New("tailor service not configured")
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	job, err := jobFromFlags()
	if err != nil {
		return err
	}

	letter, err := tailorService.CoverLetter(cmd.Context(), id, job, coverLetterTone)
	if err != nil {
		return fmt.Errorf("generating cover letter: %w", err)
	}

	cmd.Println(styleSuccess.Render(fmt.Sprintf(
		"Cover letter %d for %s at %s.", letter.ID, letter.JobTitle, letter.Company)))
	cmd.Println()
	cmd.Println(letter.Body)
	return nil
}

func runCoverLetterList(cmd *cobra.Command, _ []string) error {
	if tailorService == nil {
		return errors.New("tailor service not configured")
	}

	letters, err := tailorService.ListCoverLetters(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing cover letters: %w", err)
	}

	if len(letters) == 0 {
		cmd.Println(styleMuted.Render("No cover letters yet."))
		return nil
	}

	cmd.Println(styleHeader.Render("ID    Company              Role"))
	for _, l := range letters {
		cmd.Printf("%-5d %-20s %s\n", l.ID, l.Company, l.JobTitle)
	}
	return nil
}
