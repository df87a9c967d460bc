package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tailorkit/tailor-cli/internal/core/domain"
)

// TailorInput is the input schema for the tailor_resume tool.
type TailorInput struct {
	ResumeID    int64  `json:"resume_id" jsonschema:"the ID of the stored resume to tailor"`
	JobTitle    string `json:"job_title" jsonschema:"the title of the target role"`
	Company     string `json:"company" jsonschema:"the hiring company"`
	Description string `json:"description,omitempty" jsonschema:"the full job posting text"`
}

// TailorOutput is the output schema for the tailor_resume tool.
type TailorOutput struct {
	TailoredID int64  `json:"tailored_id"`
	Content    string `json:"content"`
	MatchScore int    `json:"match_score"`
}

// ResearchInput is the input schema for the research_company tool.
type ResearchInput struct {
	Company string `json:"company" jsonschema:"the company name to research"`
}

// ResearchOutput is the output schema for the research_company tool.
type ResearchOutput struct {
	Company string   `json:"company"`
	Summary string   `json:"summary"`
	Culture string   `json:"culture,omitempty"`
	News    []string `json:"news,omitempty"`
}

// ListResumesInput is the input schema for the list_resumes tool.
type ListResumesInput struct{}

// ListResumesOutput is the output schema for the list_resumes tool.
type ListResumesOutput struct {
	Resumes []ResumeInfo `json:"resumes"`
	Count   int          `json:"count"`
}

// ResumeInfo is one stored resume in list_resumes output.
type ResumeInfo struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Filename string `json:"filename"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "tailor_resume",
		Description: "Tailor a stored resume to a specific job posting",
	}, s.handleTailor)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "research_company",
		Description: "Produce a research brief about a company",
	}, s.handleResearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_resumes",
		Description: "List the user's stored resumes",
	}, s.handleListResumes)
}

// handleTailor handles the tailor_resume tool invocation.
func (s *Server) handleTailor(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TailorInput,
) (*mcp.CallToolResult, TailorOutput, error) {
	job := domain.JobPosting{
		Title:       input.JobTitle,
		Company:     input.Company,
		Description: input.Description,
	}

	result, err := s.ports.Tailor.Tailor(ctx, input.ResumeID, job)
	if err != nil {
		return nil, TailorOutput{}, err
	}

	return nil, TailorOutput{
		TailoredID: result.ID,
		Content:    result.Content,
		MatchScore: result.MatchScore,
	}, nil
}

// handleResearch handles the research_company tool invocation.
func (s *Server) handleResearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ResearchInput,
) (*mcp.CallToolResult, ResearchOutput, error) {
	if s.ports.Research == nil {
		return nil, ResearchOutput{}, domain.ErrNotConfigured
	}

	research, err := s.ports.Research.Company(ctx, input.Company)
	if err != nil {
		return nil, ResearchOutput{}, err
	}

	return nil, ResearchOutput{
		Company: research.Company,
		Summary: research.Summary,
		Culture: research.Culture,
		News:    research.News,
	}, nil
}

// handleListResumes handles the list_resumes tool invocation.
func (s *Server) handleListResumes(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListResumesInput,
) (*mcp.CallToolResult, ListResumesOutput, error) {
	if s.ports.Resume == nil {
		return nil, ListResumesOutput{}, domain.ErrNotConfigured
	}

	resumes, err := s.ports.Resume.List(ctx)
	if err != nil {
		return nil, ListResumesOutput{}, err
	}

	output := ListResumesOutput{
		Resumes: make([]ResumeInfo, len(resumes)),
		Count:   len(resumes),
	}
	for i := range resumes {
		output.Resumes[i] = ResumeInfo{
			ID:       resumes[i].ID,
			Title:    resumes[i].Title,
			Filename: resumes[i].Filename,
		}
	}

	return nil, output, nil
}
