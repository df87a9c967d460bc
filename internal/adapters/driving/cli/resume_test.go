package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tailorkit/tailor-cli/internal/core/domain"
)

func TestResumeListCmd(t *testing.T) {
	cleanup := setupTestServices(Services{
		Resume: &mockResumes{resumes: []domain.Resume{
			{ID: 1, Filename: "backend.pdf"},
			{ID: 2, Filename: "platform.pdf"},
		}},
	})
	defer cleanup()

	out, err := execute(t, "resume", "list")

	assert.NoError(t, err)
	assert.Contains(t, out, "backend.pdf")
	assert.Contains(t, out, "platform.pdf")
}

func TestResumeListCmd_Empty(t *testing.T) {
	cleanup := setupTestServices(Services{Resume: &mockResumes{}})
	defer cleanup()

	out, err := execute(t, "resume", "list")

	assert.NoError(t, err)
	assert.Contains(t, out, "No resumes uploaded.")
}

func TestResumeListCmd_JSON(t *testing.T) {
	cleanup := setupTestServices(Services{
		Resume: &mockResumes{resumes: []domain.Resume{
			{ID: 1, Filename: "resume.pdf"},
		}},
	})
	defer cleanup()
	t.Cleanup(func() { resumeListJSON = false })

	out, err := execute(t, "resume", "list", "--json")

	assert.NoError(t, err)

	var decoded []domain.Resume
	assert.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Len(t, decoded, 1)
	assert.Equal(t, "resume.pdf", decoded[0].Filename)
}

func TestResumeGetCmd_InvalidID(t *testing.T) {
	cleanup := setupTestServices(Services{Resume: &mockResumes{}})
	defer cleanup()

	_, err := execute(t, "resume", "get", "abc")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), `invalid id "abc"`)
}

func TestResumeUploadCmd(t *testing.T) {
	cleanup := setupTestServices(Services{
		Resume: &mockResumes{resume: &domain.Resume{ID: 9, Filename: "cv.pdf"}},
	})
	defer cleanup()

	path := filepath.Join(t.TempDir(), "cv.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o600))

	out, err := execute(t, "resume", "upload", path)

	assert.NoError(t, err)
	assert.Contains(t, out, "Uploaded cv.pdf (id 9).")
}

func TestResumeUploadCmd_MissingFile(t *testing.T) {
	cleanup := setupTestServices(Services{Resume: &mockResumes{}})
	defer cleanup()

	_, err := execute(t, "resume", "upload", filepath.Join(t.TempDir(), "absent.pdf"))

	assert.Error(t, err)
}

func TestResumeExportCmd(t *testing.T) {
	cleanup := setupTestServices(Services{
		Resume: &mockResumes{export: &domain.Export{
			Filename:    "resume-3.pdf",
			ContentType: "application/pdf",
			Data:        []byte("%PDF-1.4 data"),
		}},
	})
	defer cleanup()

	out := filepath.Join(t.TempDir(), "out.pdf")
	stdout, err := execute(t, "resume", "export", "resume", "3", "--format", "pdf", "-o", out)

	assert.NoError(t, err)
	assert.Contains(t, stdout, "Wrote "+out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 data"), data)
}

func TestResumeExportCmd_InvalidKind(t *testing.T) {
	cleanup := setupTestServices(Services{Resume: &mockResumes{}})
	defer cleanup()

	_, err := execute(t, "resume", "export", "spreadsheet", "3")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), `invalid kind "spreadsheet"`)
}
