package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/tailorkit/tailor-cli/internal/core/domain"
)

// tailorRequest is the request body shared by the generation endpoints
// that work from a resume and a posting.
type tailorRequest struct {
	ResumeID int64             `json:"resume_id"`
	Job      domain.JobPosting `json:"job"`
	Tone     string            `json:"tone,omitempty"`
}

// TailorResume rewrites a resume for a job posting.
func (c *Client) TailorResume(ctx context.Context, resumeID int64, job domain.JobPosting) (*domain.TailoredResume, error) {
	if resumeID <= 0 {
		return nil, fmt.Errorf("tailor resume: %w", domain.ErrInvalidInput)
	}
	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("tailor resume: %w", err)
	}

	var tailored domain.TailoredResume
	err := c.do(ctx, call{
		op:     "tailor resume",
		method: http.MethodPost,
		path:   "/api/tailor",
		body:   tailorRequest{ResumeID: resumeID, Job: job},
	}, &tailored)
	if err != nil {
		return nil, err
	}
	return &tailored, nil
}

// GenerateInterviewPrep produces interview questions for a posting.
func (c *Client) GenerateInterviewPrep(ctx context.Context, resumeID int64, job domain.JobPosting) (*domain.InterviewPrep, error) {
	if resumeID <= 0 {
		return nil, fmt.Errorf("interview prep: %w", domain.ErrInvalidInput)
	}
	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("interview prep: %w", err)
	}

	var prep domain.InterviewPrep
	err := c.do(ctx, call{
		op:     "interview prep",
		method: http.MethodPost,
		path:   "/api/interview-prep",
		body:   tailorRequest{ResumeID: resumeID, Job: job},
	}, &prep)
	if err != nil {
		return nil, err
	}
	return &prep, nil
}

// GenerateCoverLetter writes a cover letter in the given tone.
func (c *Client) GenerateCoverLetter(ctx context.Context, resumeID int64, job domain.JobPosting, tone string) (*domain.CoverLetter, error) {
	if resumeID <= 0 {
		return nil, fmt.Errorf("cover letter: %w", domain.ErrInvalidInput)
	}
	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("cover letter: %w", err)
	}

	var letter domain.CoverLetter
	err := c.do(ctx, call{
		op:     "cover letter",
		method: http.MethodPost,
		path:   "/api/cover-letters",
		body:   tailorRequest{ResumeID: resumeID, Job: job, Tone: tone},
	}, &letter)
	if err != nil {
		return nil, err
	}
	return &letter, nil
}

// ListCoverLetters returns previously generated cover letters.
func (c *Client) ListCoverLetters(ctx context.Context) ([]domain.CoverLetter, error) {
	var letters []domain.CoverLetter
	err := c.do(ctx, call{
		op:     "list cover letters",
		method: http.MethodGet,
		path:   "/api/cover-letters",
	}, &letters)
	if err != nil {
		return nil, err
	}
	return letters, nil
}

// GetCareerPath suggests a progression between two roles.
func (c *Client) GetCareerPath(ctx context.Context, currentRole, targetRole string) (*domain.CareerPath, error) {
	if currentRole == "" || targetRole == "" {
		return nil, fmt.Errorf("career path: %w", domain.ErrInvalidInput)
	}

	query := url.Values{}
	query.Set("current", currentRole)
	query.Set("target", targetRole)

	var path domain.CareerPath
	err := c.do(ctx, call{
		op:     "career path",
		method: http.MethodGet,
		path:   "/api/career-path",
		query:  query,
	}, &path)
	if err != nil {
		return nil, err
	}
	return &path, nil
}

// GenerateStarStory produces a STAR answer for a behavioural prompt.
func (c *Client) GenerateStarStory(ctx context.Context, prompt string) (*domain.StarStory, error) {
	if prompt == "" {
		return nil, fmt.Errorf("star story: %w", domain.ErrInvalidInput)
	}

	var story domain.StarStory
	err := c.do(ctx, call{
		op:     "star story",
		method: http.MethodPost,
		path:   "/api/star-stories",
		body:   map[string]string{"prompt": prompt},
	}, &story)
	if err != nil {
		return nil, err
	}
	return &story, nil
}

// ListStarStories returns previously generated stories.
func (c *Client) ListStarStories(ctx context.Context) ([]domain.StarStory, error) {
	var stories []domain.StarStory
	err := c.do(ctx, call{
		op:     "list star stories",
		method: http.MethodGet,
		path:   "/api/star-stories",
	}, &stories)
	if err != nil {
		return nil, err
	}
	return stories, nil
}

// ResearchCompany produces a research brief for a company.
func (c *Client) ResearchCompany(ctx context.Context, company string) (*domain.CompanyResearch, error) {
	if company == "" {
		return nil, fmt.Errorf("research company: %w", domain.ErrInvalidInput)
	}

	var research domain.CompanyResearch
	err := c.do(ctx, call{
		op:     "research company",
		method: http.MethodPost,
		path:   "/api/research",
		body:   map[string]string{"company": company},
	}, &research)
	if err != nil {
		return nil, err
	}
	return &research, nil
}
