package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for tailor resources.
const uriScheme = "tailor://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing resumes.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "resumes",
		Name:        "resumes",
		Description: "List of the user's stored resumes",
		MIMEType:    "application/json",
	}, s.handleResumesResource)

	// Template for one resume's metadata.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "resumes/{resumeId}",
		Name:        "resume",
		Description: "Metadata for a specific stored resume",
		MIMEType:    "application/json",
	}, s.handleResumeResource)
}

// handleResumesResource returns the stored resume list.
func (s *Server) handleResumesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Resume == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	resumes, err := s.ports.Resume.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing resumes: %w", err)
	}

	infos := make([]ResumeInfo, len(resumes))
	for i := range resumes {
		infos[i] = ResumeInfo{
			ID:       resumes[i].ID,
			Title:    resumes[i].Title,
			Filename: resumes[i].Filename,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resumes: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleResumeResource returns metadata for one resume.
func (s *Server) handleResumeResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Resume == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	id := extractResumeID(req.Params.URI)
	if id <= 0 {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	resume, err := s.ports.Resume.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting resume: %w", err)
	}

	data, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resume: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractResumeID parses the resume ID from tailor://resumes/{resumeId}.
// Returns 0 when the URI does not match.
func extractResumeID(uri string) int64 {
	rest, ok := strings.CutPrefix(uri, uriScheme+"resumes/")
	if !ok || rest == "" || strings.Contains(rest, "/") {
		return 0
	}
	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return 0
	}
	return id
}
