package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tailorkit/tailor-cli/internal/core/domain"
)

func TestServer_handleTailor(t *testing.T) {
	ctx := context.Background()

	t.Run("returns tailored resume", func(t *testing.T) {
		mockTailor := &mockTailorService{
			tailored: &domain.TailoredResume{
				ID:         42,
				ResumeID:   3,
				Content:    "# Tailored resume",
				MatchScore: 87,
			},
		}

		server, err := NewServer(&Ports{Tailor: mockTailor})
		require.NoError(t, err)

		input := TailorInput{
			ResumeID: 3,
			JobTitle: "Staff Engineer",
			Company:  "Acme",
		}
		_, output, err := server.handleTailor(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, int64(42), output.TailoredID)
		assert.Equal(t, "# Tailored resume", output.Content)
		assert.Equal(t, 87, output.MatchScore)
		assert.Equal(t, int64(3), mockTailor.gotResumeID)
		assert.Equal(t, "Staff Engineer", mockTailor.gotJob.Title)
		assert.Equal(t, "Acme", mockTailor.gotJob.Company)
	})

	t.Run("returns error on tailor failure", func(t *testing.T) {
		mockTailor := &mockTailorService{
			err: errors.New("generation failed"),
		}

		server, err := NewServer(&Ports{Tailor: mockTailor})
		require.NoError(t, err)

		_, _, err = server.handleTailor(ctx, nil, TailorInput{ResumeID: 1, JobTitle: "X", Company: "Y"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "generation failed")
	})
}

func TestServer_handleResearch(t *testing.T) {
	ctx := context.Background()

	t.Run("returns research brief", func(t *testing.T) {
		mockResearch := &mockResearchService{
			research: &domain.CompanyResearch{
				Company: "Acme",
				Summary: "Makes everything.",
				News:    []string{"Acme ships new anvil"},
			},
		}

		server, err := NewServer(&Ports{
			Tailor:   &mockTailorService{},
			Research: mockResearch,
		})
		require.NoError(t, err)

		_, output, err := server.handleResearch(ctx, nil, ResearchInput{Company: "Acme"})

		require.NoError(t, err)
		assert.Equal(t, "Acme", output.Company)
		assert.Equal(t, "Makes everything.", output.Summary)
		assert.Len(t, output.News, 1)
	})

	t.Run("missing research service", func(t *testing.T) {
		server, err := NewServer(&Ports{Tailor: &mockTailorService{}})
		require.NoError(t, err)

		_, _, err = server.handleResearch(ctx, nil, ResearchInput{Company: "Acme"})
		assert.ErrorIs(t, err, domain.ErrNotConfigured)
	})
}

func TestServer_handleListResumes(t *testing.T) {
	ctx := context.Background()

	mockResume := &mockResumeService{
		resumes: []domain.Resume{
			{ID: 1, Title: "Backend CV", Filename: "cv.pdf"},
			{ID: 2, Title: "Platform CV", Filename: "cv2.pdf"},
		},
	}

	server, err := NewServer(&Ports{
		Tailor: &mockTailorService{},
		Resume: mockResume,
	})
	require.NoError(t, err)

	_, output, err := server.handleListResumes(ctx, nil, ListResumesInput{})

	require.NoError(t, err)
	assert.Equal(t, 2, output.Count)
	require.Len(t, output.Resumes, 2)
	assert.Equal(t, "Backend CV", output.Resumes[0].Title)
}

func TestExtractResumeID(t *testing.T) {
	tests := []struct {
		uri  string
		want int64
	}{
		{"tailor://resumes/7", 7},
		{"tailor://resumes/123", 123},
		{"tailor://resumes/", 0},
		{"tailor://resumes/abc", 0},
		{"tailor://resumes/7/extra", 0},
		{"other://resumes/7", 0},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			assert.Equal(t, tt.want, extractResumeID(tt.uri))
		})
	}
}
