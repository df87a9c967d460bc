package mcp

import (
	"context"

	"github.com/tailorkit/tailor-cli/internal/core/domain"
)

// mockTailorService is a mock implementation of driving.TailorService.
type mockTailorService struct {
	tailored *domain.TailoredResume
	prep     *domain.InterviewPrep
	letter   *domain.CoverLetter
	letters  []domain.CoverLetter
	err      error

	gotResumeID int64
	gotJob      domain.JobPosting
}

func (m *mockTailorService) Tailor(
	_ context.Context,
	resumeID int64,
	job domain.JobPosting,
) (*domain.TailoredResume, error) {
	m.gotResumeID = resumeID
	m.gotJob = job
	return m.tailored, m.err
}

func (m *mockTailorService) InterviewPrep(
	_ context.Context,
	_ int64,
	_ domain.JobPosting,
) (*domain.InterviewPrep, error) {
	return m.prep, m.err
}

func (m *mockTailorService) CoverLetter(
	_ context.Context,
	_ int64,
	_ domain.JobPosting,
	_ string,
) (*domain.CoverLetter, error) {
	return m.letter, m.err
}

func (m *mockTailorService) ListCoverLetters(_ context.Context) ([]domain.CoverLetter, error) {
	return m.letters, m.err
}

// mockResumeService is a mock implementation of driving.ResumeService.
type mockResumeService struct {
	resumes []domain.Resume
	resume  *domain.Resume
	export  *domain.Export
	err     error
}

func (m *mockResumeService) List(_ context.Context) ([]domain.Resume, error) {
	return m.resumes, m.err
}

func (m *mockResumeService) Get(_ context.Context, _ int64) (*domain.Resume, error) {
	return m.resume, m.err
}

func (m *mockResumeService) Upload(_ context.Context, _ string, _ []byte) (*domain.Resume, error) {
	return m.resume, m.err
}

func (m *mockResumeService) Delete(_ context.Context, _ int64) error {
	return m.err
}

func (m *mockResumeService) Export(
	_ context.Context,
	_ domain.ExportKind,
	_ int64,
	_ string,
) (*domain.Export, error) {
	return m.export, m.err
}

// mockResearchService is a mock implementation of driving.ResearchService.
type mockResearchService struct {
	research *domain.CompanyResearch
	err      error
}

func (m *mockResearchService) Company(_ context.Context, _ string) (*domain.CompanyResearch, error) {
	return m.research, m.err
}
