package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/tailorkit/tailor-cli/internal/core/domain"
)

// execute runs the root command with args and returns its combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// setupTestServices swaps in mock services and returns a cleanup function.
func setupTestServices(mocks Services) func() {
	prev := Services{
		Session:     sessionService,
		Resume:      resumeService,
		Tailor:      tailorService,
		Coach:       coachService,
		Research:    researchService,
		Application: applicationService,
		Settings:    settingsService,
		Pinger:      pinger,
	}
	SetServices(mocks)
	return func() { SetServices(prev) }
}

// mockSession implements driving.SessionService.
type mockSession struct {
	session *domain.Session
	err     error
}

func (m *mockSession) Login(_ context.Context, _ string) (*domain.Session, error) {
	return m.session, m.err
}
func (m *mockSession) Logout(_ context.Context) error { return m.err }
func (m *mockSession) Current(_ context.Context) (*domain.Session, error) {
	return m.session, m.err
}

// mockResumes implements driving.ResumeService.
type mockResumes struct {
	resumes []domain.Resume
	resume  *domain.Resume
	export  *domain.Export
	err     error
}

func (m *mockResumes) List(_ context.Context) ([]domain.Resume, error) { return m.resumes, m.err }
func (m *mockResumes) Get(_ context.Context, _ int64) (*domain.Resume, error) {
	return m.resume, m.err
}
func (m *mockResumes) Upload(_ context.Context, _ string, _ []byte) (*domain.Resume, error) {
	return m.resume, m.err
}
func (m *mockResumes) Delete(_ context.Context, _ int64) error { return m.err }
func (m *mockResumes) Export(_ context.Context, _ domain.ExportKind, _ int64, _ string) (*domain.Export, error) {
	return m.export, m.err
}

// mockTailor implements driving.TailorService.
type mockTailor struct {
	tailored *domain.TailoredResume
	prep     *domain.InterviewPrep
	letter   *domain.CoverLetter
	letters  []domain.CoverLetter
	err      error
}

func (m *mockTailor) Tailor(_ context.Context, _ int64, _ domain.JobPosting) (*domain.TailoredResume, error) {
	return m.tailored, m.err
}
func (m *mockTailor) InterviewPrep(_ context.Context, _ int64, _ domain.JobPosting) (*domain.InterviewPrep, error) {
	return m.prep, m.err
}
func (m *mockTailor) CoverLetter(_ context.Context, _ int64, _ domain.JobPosting, _ string) (*domain.CoverLetter, error) {
	return m.letter, m.err
}
func (m *mockTailor) ListCoverLetters(_ context.Context) ([]domain.CoverLetter, error) {
	return m.letters, m.err
}

// mockCoach implements driving.CoachService.
type mockCoach struct {
	path    *domain.CareerPath
	story   *domain.StarStory
	stories []domain.StarStory
	err     error
}

func (m *mockCoach) CareerPath(_ context.Context, _, _ string) (*domain.CareerPath, error) {
	return m.path, m.err
}
func (m *mockCoach) GenerateStory(_ context.Context, _ string) (*domain.StarStory, error) {
	return m.story, m.err
}
func (m *mockCoach) ListStories(_ context.Context) ([]domain.StarStory, error) {
	return m.stories, m.err
}

// mockResearch implements driving.ResearchService.
type mockResearch struct {
	research *domain.CompanyResearch
	err      error
}

func (m *mockResearch) Company(_ context.Context, _ string) (*domain.CompanyResearch, error) {
	return m.research, m.err
}

// mockApps implements driving.ApplicationService.
type mockApps struct {
	apps []domain.Application
	app  *domain.Application
	err  error
}

func (m *mockApps) List(_ context.Context) ([]domain.Application, error) { return m.apps, m.err }
func (m *mockApps) Create(_ context.Context, _ domain.Application) (*domain.Application, error) {
	return m.app, m.err
}
func (m *mockApps) Update(_ context.Context, _ domain.Application) (*domain.Application, error) {
	return m.app, m.err
}
func (m *mockApps) Delete(_ context.Context, _ int64) error { return m.err }

// mockPinger implements Pinger.
type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(_ context.Context) error { return m.err }
