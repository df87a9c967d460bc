package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tailorkit/tailor-cli/internal/core/domain"
)

func TestTailorCmd_RequiresJobFlags(t *testing.T) {
	cleanup := setupTestServices(Services{Tailor: &mockTailor{}})
	defer cleanup()

	_, err := execute(t, "tailor", "3", "--title", "", "--company", "")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "--title and --company are required")
}

func TestTailorCmd_Executes(t *testing.T) {
	cleanup := setupTestServices(Services{
		Tailor: &mockTailor{tailored: &domain.TailoredResume{
			ID:         42,
			JobTitle:   "Staff Engineer",
			Company:    "Acme",
			Content:    "# Tailored",
			MatchScore: 91,
		}},
	})
	defer cleanup()

	out, err := execute(t, "tailor", "3", "--title", "Staff Engineer", "--company", "Acme")

	assert.NoError(t, err)
	assert.Contains(t, out, "Tailored resume 42")
	assert.Contains(t, out, "match 91%")
	assert.Contains(t, out, "# Tailored")
}

func TestInterviewCmd_Executes(t *testing.T) {
	cleanup := setupTestServices(Services{
		Tailor: &mockTailor{prep: &domain.InterviewPrep{
			JobTitle: "Staff Engineer",
			Company:  "Acme",
			Questions: []domain.InterviewQuestion{
				{Question: "Tell me about a conflict.", Category: "behavioural"},
			},
		}},
	})
	defer cleanup()

	out, err := execute(t, "interview", "3", "--title", "Staff Engineer", "--company", "Acme")

	assert.NoError(t, err)
	assert.Contains(t, out, "Tell me about a conflict.")
	assert.Contains(t, out, "behavioural")
}

func TestCoverLetterListCmd_Empty(t *testing.T) {
	cleanup := setupTestServices(Services{Tailor: &mockTailor{}})
	defer cleanup()

	out, err := execute(t, "cover-letter", "list")

	assert.NoError(t, err)
	assert.Contains(t, out, "No cover letters yet.")
}

func TestAppsListCmd(t *testing.T) {
	cleanup := setupTestServices(Services{
		Application: &mockApps{apps: []domain.Application{
			{ID: 1, Company: "Acme", Role: "Engineer", Status: domain.StatusApplied},
		}},
	})
	defer cleanup()

	out, err := execute(t, "apps", "list")

	assert.NoError(t, err)
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "Engineer")
}

func TestAppsListCmd_JSON(t *testing.T) {
	cleanup := setupTestServices(Services{
		Application: &mockApps{apps: []domain.Application{
			{ID: 1, Company: "Acme", Role: "Engineer", Status: domain.StatusApplied},
		}},
	})
	defer cleanup()
	t.Cleanup(func() { appsListJSON = false })

	out, err := execute(t, "apps", "list", "--json")

	assert.NoError(t, err)

	var decoded []domain.Application
	assert.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Len(t, decoded, 1)
	assert.Equal(t, domain.StatusApplied, decoded[0].Status)
}

func TestAppsAddCmd(t *testing.T) {
	cleanup := setupTestServices(Services{
		Application: &mockApps{app: &domain.Application{
			ID:      5,
			Company: "Acme",
			Role:    "Engineer",
			Status:  domain.StatusSaved,
		}},
	})
	defer cleanup()

	out, err := execute(t, "apps", "add", "--company", "Acme", "--role", "Engineer")

	assert.NoError(t, err)
	assert.Contains(t, out, "Tracking Engineer at Acme (id 5).")
}

func TestCareerCmd_Executes(t *testing.T) {
	cleanup := setupTestServices(Services{
		Coach: &mockCoach{path: &domain.CareerPath{
			CurrentRole: "Engineer",
			TargetRole:  "CTO",
			Steps: []domain.CareerStep{
				{Role: "Senior Engineer", Duration: "2 years", Skills: []string{"mentoring"}},
			},
		}},
	})
	defer cleanup()

	out, err := execute(t, "career", "Engineer", "CTO")

	assert.NoError(t, err)
	assert.Contains(t, out, "Senior Engineer")
	assert.Contains(t, out, "mentoring")
}

func TestResearchCmd_Executes(t *testing.T) {
	cleanup := setupTestServices(Services{
		Research: &mockResearch{research: &domain.CompanyResearch{
			Company: "Acme",
			Summary: "Makes everything.",
		}},
	})
	defer cleanup()

	out, err := execute(t, "research", "Acme")

	assert.NoError(t, err)
	assert.Contains(t, out, "Makes everything.")
}

func TestStoryGenerateCmd_Executes(t *testing.T) {
	cleanup := setupTestServices(Services{
		Coach: &mockCoach{story: &domain.StarStory{
			Prompt:    "Tell me about a failure.",
			Situation: "Prod outage.",
			Task:      "Restore service.",
			Action:    "Rolled back.",
			Result:    "Five minute recovery.",
		}},
	})
	defer cleanup()

	out, err := execute(t, "story", "generate", "Tell", "me", "about", "a", "failure.")

	assert.NoError(t, err)
	assert.Contains(t, out, "Prod outage.")
	assert.Contains(t, out, "Five minute recovery.")
}
