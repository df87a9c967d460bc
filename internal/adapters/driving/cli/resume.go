package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tailorkit/tailor-cli/internal/core/domain"
)

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Manage uploaded resumes",
}

var resumeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List uploaded resumes",
	RunE:  runResumeList,
}

var resumeGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show one resume",
	Args:  cobra.ExactArgs(1),
	RunE:  runResumeGet,
}

var resumeUploadCmd = &cobra.Command{
	Use:   "upload [file]",
	Short: "Upload a resume file",
	Args:  cobra.ExactArgs(1),
	RunE:  runResumeUpload,
}

var resumeDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a resume",
	Args:  cobra.ExactArgs(1),
	RunE:  runResumeDelete,
}

var resumeExportCmd = &cobra.Command{
	Use:   "export [kind] [id]",
	Short: "Export a document (resume, tailored, cover-letter)",
	Long: `Download a document in the requested format and write it to disk.

Examples:
  tailor resume export resume 3 --format pdf
  tailor resume export tailored 7 --format docx -o tailored.docx`,
	Args: cobra.ExactArgs(2),
	RunE: runResumeExport,
}

var (
	resumeListJSON bool
	exportFormat   string
	exportOutput   string
)

func init() {
	resumeListCmd.Flags().BoolVar(&resumeListJSON, "json", false, "output as JSON")
	resumeExportCmd.Flags().StringVar(&exportFormat, "format", "pdf", "Export format (pdf, docx)")
	resumeExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: server-suggested name)")

	resumeCmd.AddCommand(resumeListCmd)
	resumeCmd.AddCommand(resumeGetCmd)
	resumeCmd.AddCommand(resumeUploadCmd)
	resumeCmd.AddCommand(resumeDeleteCmd)
	resumeCmd.AddCommand(resumeExportCmd)
	rootCmd.AddCommand(resumeCmd)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func runResumeList(cmd *cobra.Command, _ []string) error {
	if resumeService == nil {
		return errors.New("resume service not configured")
	}

	resumes, err := resumeService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing resumes: %w", err)
	}

	if resumeListJSON {
		data, err := json.MarshalIndent(resumes, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling resumes: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(resumes) == 0 {
		cmd.Println(styleMuted.Render("No resumes uploaded."))
		return nil
	}

	cmd.Println(styleHeader.Render("ID    Filename"))
	for _, r := range resumes {
		cmd.Printf("%-5d %s\n", r.ID, r.Filename)
	}
	return nil
}

func runResumeGet(cmd *cobra.Command, args []string) error {
	if resumeService == nil {
		return errors.New("resume service not configured")
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	resume, err := resumeService.Get(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("getting resume: %w", err)
	}

	cmd.Printf("ID:           %d\n", resume.ID)
	cmd.Printf("Filename:     %s\n", resume.Filename)
	cmd.Printf("Content type: %s\n", resume.ContentType)
	if !resume.UploadedAt.IsZero() {
		cmd.Printf("Uploaded:     %s\n", resume.UploadedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func runResumeUpload(cmd *cobra.Command, args []string) error {
	if resumeService == nil {
		return errors.New("resume service not configured")
	}

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	resume, err := resumeService.Upload(cmd.Context(), filepath.Base(path), data)
	if err != nil {
		return fmt.Errorf("uploading resume: %w", err)
	}

	cmd.Println(styleSuccess.Render(fmt.Sprintf("Uploaded %s (id %d).", resume.Filename, resume.ID)))
	return nil
}

func runResumeDelete(cmd *cobra.Command, args []string) error {
	if resumeService == nil {
		return errors.New("resume service not configured")
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err := resumeService.Delete(cmd.Context(), id); err != nil {
		return fmt.Errorf("deleting resume: %w", err)
	}

	cmd.Printf("Deleted resume %d.\n", id)
	return nil
}

func runResumeExport(cmd *cobra.Command, args []string) error {
	if resumeService == nil {
		return errors.New("resume service not configured")
	}

	kind := domain.ExportKind(args[0])
	if !kind.IsValid() {
		return fmt.Errorf("invalid kind %q (resume, tailored, cover-letter)", args[0])
	}
	id, err := parseID(args[1])
	if err != nil {
		return err
	}

	export, err := resumeService.Export(cmd.Context(), kind, id, exportFormat)
	if err != nil {
		return fmt.Errorf("exporting document: %w", err)
	}

	out := exportOutput
	if out == "" {
		out = export.Filename
	}
	if out == "" {
		out = fmt.Sprintf("%s-%d.%s", kind, id, exportFormat)
	}

	if err := os.WriteFile(out, export.Data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	cmd.Println(styleSuccess.Render(fmt.Sprintf("Wrote %s (%d bytes).", out, len(export.Data))))
	return nil
}
