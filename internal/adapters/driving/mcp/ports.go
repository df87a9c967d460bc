package mcp

import (
	"github.com/tailorkit/tailor-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Tailor drives resume tailoring.
	Tailor driving.TailorService

	// Resume lists and fetches stored resumes.
	Resume driving.ResumeService

	// Research produces company research briefs.
	Research driving.ResearchService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Tailor == nil {
		return ErrMissingTailorService
	}
	// Resume and Research degrade gracefully when absent
	return nil
}
