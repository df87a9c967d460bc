// Package mcp provides an MCP (Model Context Protocol) server adapter.
// It lets AI assistants tailor resumes, research companies, and browse
// stored resumes through the user's TailorKit account.
package mcp

import "errors"

// ErrMissingTailorService is returned when the tailor service is not provided.
var ErrMissingTailorService = errors.New("mcp: tailor service is required")
