package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var careerCmd = &cobra.Command{
	Use:   "career [current-role] [target-role]",
	Short: "Suggest a career path between two roles",
	Long: `Suggest a progression from your current role to a target role.

Example:
  tailor career "Software Engineer" "Engineering Manager"`,
	Args: cobra.ExactArgs(2),
	RunE: runCareer,
}

var storyCmd = &cobra.Command{
	Use:   "story",
	Short: "Generate and list STAR interview stories",
}

var storyGenerateCmd = &cobra.Command{
	Use:   "generate [prompt]",
	Short: "Generate a STAR answer for a behavioural prompt",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runStoryGenerate,
}

var storyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List generated stories",
	RunE:  runStoryList,
}

var researchCmd = &cobra.Command{
	Use:   "research [company]",
	Short: "Research a company",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runResearch,
}

func init() {
	storyCmd.AddCommand(storyGenerateCmd)
	storyCmd.AddCommand(storyListCmd)

	rootCmd.AddCommand(careerCmd)
	rootCmd.AddCommand(storyCmd)
	rootCmd.AddCommand(researchCmd)
}

func runCareer(cmd *cobra.Command, args []string) error {
	if coachService == nil {
		return errors.New("coach service not configured")
	}

	path, err := coachService.CareerPath(cmd.Context(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("generating career path: %w", err)
	}

	cmd.Println(styleHeader.Render(fmt.Sprintf("%s -> %s", path.CurrentRole, path.TargetRole)))
	for i, step := range path.Steps {
		cmd.Printf("\n%d. %s", i+1, step.Role)
		if step.Duration != "" {
			cmd.Printf(" %s", styleMuted.Render("("+step.Duration+")"))
		}
		cmd.Println()
		if len(step.Skills) > 0 {
			cmd.Printf("   Skills: %s\n", strings.Join(step.Skills, ", "))
		}
	}
	return nil
}

func runStoryGenerate(cmd *cobra.Command, args []string) error {
	if coachService == nil {
		return errors.New("coach service not configured")
	}

	prompt := strings.Join(args, " ")
	story, err := coachService.GenerateStory(cmd.Context(), prompt)
	if err != nil {
		return fmt.Errorf("generating story: %w", err)
	}

	cmd.Println(styleHeader.Render(story.Prompt))
	cmd.Printf("\nSituation: %s\n", story.Situation)
	cmd.Printf("Task:      %s\n", story.Task)
	cmd.Printf("Action:    %s\n", story.Action)
	cmd.Printf("Result:    %s\n", story.Result)
	return nil
}

func runStoryList(cmd *cobra.Command, _ []string) error {
	if coachService == nil {
		return errors.New("coach service not configured")
	}

	stories, err := coachService.ListStories(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing stories: %w", err)
	}

	if len(stories) == 0 {
		cmd.Println(styleMuted.Render("No stories yet."))
		return nil
	}

	cmd.Println(styleHeader.Render("ID    Prompt"))
	for _, s := range stories {
		cmd.Printf("%-5d %s\n", s.ID, s.Prompt)
	}
	return nil
}

func runResearch(cmd *cobra.Command, args []string) error {
	if researchService == nil {
		return errors.New("research service not configured")
	}

	company := strings.Join(args, " ")
	research, err := researchService.Company(cmd.Context(), company)
	if err != nil {
		return fmt.Errorf("researching company: %w", err)
	}

	cmd.Println(styleHeader.Render(research.Company))
	cmd.Printf("\n%s\n", research.Summary)
	if research.Culture != "" {
		cmd.Printf("\nCulture: %s\n", research.Culture)
	}
	if len(research.News) > 0 {
		cmd.Println("\nRecent news:")
		for _, item := range research.News {
			cmd.Printf("  - %s\n", item)
		}
	}
	return nil
}
