package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tailorkit/tailor-cli/internal/core/domain"
)

// fakeSession is a stub session provider with a fixed token.
type fakeSession struct {
	token string
	err   error
}

func (f *fakeSession) GetToken(_ context.Context) (string, error) { return f.token, f.err }
func (f *fakeSession) IsAuthenticated() bool                      { return f.token != "" }
func (f *fakeSession) UserID() string                             { return "user-1" }
func (f *fakeSession) Mode() domain.AuthMode                      { return domain.AuthModeBearer }
func (f *fakeSession) Subscribe(func(domain.Session)) func()      { return func() {} }

// newTestClient wires a client against an httptest server.
func newTestClient(t *testing.T, handler http.Handler, token string) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(Config{
		BaseURL:  server.URL,
		Strategy: BearerStrategy{},
		Session:  &fakeSession{token: token},
	})
	require.NoError(t, err)
	return client, server
}

func TestNew_Validation(t *testing.T) {
	_, err := New(Config{Strategy: BearerStrategy{}, Session: &fakeSession{}})
	assert.Error(t, err, "missing base URL")

	_, err = New(Config{BaseURL: "http://x", Session: &fakeSession{}})
	assert.Error(t, err, "missing strategy")

	_, err = New(Config{BaseURL: "http://x", Strategy: BearerStrategy{}})
	assert.Error(t, err, "missing session provider")
}

func TestListResumes_Success(t *testing.T) {
	// Scenario A: bearer header present, envelope data decoded.
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/resumes", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":[{"id":1,"title":"My Resume"},{"id":2,"title":"Backend CV"}]}`))
	})

	client, _ := newTestClient(t, handler, "abc123")

	resumes, err := client.ListResumes(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", gotAuth)
	require.Len(t, resumes, 2)
	assert.Equal(t, int64(1), resumes[0].ID)
	assert.Equal(t, "My Resume", resumes[0].Title)
}

func TestListResumes_Unauthenticated_NoNetworkCall(t *testing.T) {
	// Scenario B: no token and auth required -> fail fast, zero calls.
	var calls atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"success":true,"data":[]}`))
	})

	client, _ := newTestClient(t, handler, "")

	_, err := client.ListResumes(context.Background())

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	assert.Equal(t, int32(0), calls.Load(), "no network call may be made without a credential")
}

func TestListResumes_SessionProviderError_DegradesToUnauthenticated(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	client, err := New(Config{
		BaseURL:  server.URL,
		Strategy: BearerStrategy{},
		Session:  &fakeSession{err: errors.New("identity backend unreachable")},
	})
	require.NoError(t, err)

	_, err = client.ListResumes(context.Background())

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	assert.Equal(t, int32(0), calls.Load())
}

func TestListResumes_ServerError_NonJSONBody(t *testing.T) {
	// Scenario C: HTTP 500 with a non-JSON body -> typed error, no panic.
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Internal Server Error"))
	})

	client, _ := newTestClient(t, handler, "abc123")

	_, err := client.ListResumes(context.Background())

	var httpErr *domain.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.False(t, httpErr.IsAuthFailure())
}

func TestGetResume_ApplicationError(t *testing.T) {
	// Scenario D: HTTP 200 with success=false -> AppError with the message.
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"success":false,"error":"Resume not found"}`))
	})

	client, _ := newTestClient(t, handler, "abc123")

	_, err := client.GetResume(context.Background(), 42)

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Resume not found", appErr.Message)
}

func TestGetResume_MalformedJSON(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"success":true,"data":{`))
	})

	client, _ := newTestClient(t, handler, "abc123")

	_, err := client.GetResume(context.Background(), 1)

	var parseErr *domain.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestGetResume_InvalidID(t *testing.T) {
	var calls atomic.Int32
	handler := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
	})

	client, _ := newTestClient(t, handler, "abc123")

	for _, id := range []int64{0, -3} {
		_, err := client.GetResume(context.Background(), id)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Equal(t, int32(0), calls.Load())
}

func TestNetworkError_ServerDown(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // immediately unreachable

	client, err := New(Config{
		BaseURL:  server.URL,
		Strategy: BearerStrategy{},
		Session:  &fakeSession{token: "abc123"},
	})
	require.NoError(t, err)

	_, err = client.ListResumes(context.Background())

	var netErr *domain.NetworkError
	assert.ErrorAs(t, err, &netErr)
}

func TestUploadResume_Multipart(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "cv.pdf", header.Filename)
		assert.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")
		// Auth header survives the content-type override.
		assert.Equal(t, "Bearer abc123", r.Header.Get("Authorization"))

		w.Write([]byte(`{"success":true,"data":{"id":7,"title":"cv.pdf","filename":"cv.pdf"}}`))
	})

	client, _ := newTestClient(t, handler, "abc123")

	resume, err := client.UploadResume(context.Background(), "cv.pdf", []byte("%PDF-1.4 fake"))

	require.NoError(t, err)
	assert.Equal(t, int64(7), resume.ID)
}

func TestUploadResume_EmptyPayload(t *testing.T) {
	client, _ := newTestClient(t, http.NotFoundHandler(), "abc123")

	_, err := client.UploadResume(context.Background(), "cv.pdf", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = client.UploadResume(context.Background(), "", []byte("data"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTailorResume_RequestShape(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/tailor", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"success":true,"data":{"id":3,"resume_id":1,"job_title":"SRE","company":"Acme","content":"...","match_score":87}}`))
	})

	client, _ := newTestClient(t, handler, "abc123")

	tailored, err := client.TailorResume(context.Background(), 1, domain.JobPosting{
		Title: "SRE", Company: "Acme",
	})

	require.NoError(t, err)
	assert.Equal(t, 87, tailored.MatchScore)
}

func TestTailorResume_InvalidPosting(t *testing.T) {
	client, _ := newTestClient(t, http.NotFoundHandler(), "abc123")

	_, err := client.TailorResume(context.Background(), 1, domain.JobPosting{Title: "SRE"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetCareerPath_QueryParams(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Engineer", r.URL.Query().Get("current"))
		assert.Equal(t, "Staff Engineer", r.URL.Query().Get("target"))
		w.Write([]byte(`{"success":true,"data":{"current_role":"Engineer","target_role":"Staff Engineer","steps":[{"role":"Senior Engineer"}]}}`))
	})

	client, _ := newTestClient(t, handler, "abc123")

	path, err := client.GetCareerPath(context.Background(), "Engineer", "Staff Engineer")

	require.NoError(t, err)
	require.Len(t, path.Steps, 1)
	assert.Equal(t, "Senior Engineer", path.Steps[0].Role)
}

func TestExportDocument_Binary(t *testing.T) {
	payload := []byte("%PDF-1.4 binary payload")
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/export/tailored/3", r.URL.Path)
		assert.Equal(t, "pdf", r.URL.Query().Get("format"))
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="tailored-3.pdf"`)
		w.Write(payload)
	})

	client, _ := newTestClient(t, handler, "abc123")

	export, err := client.ExportDocument(context.Background(), domain.ExportTailored, 3, "pdf")

	require.NoError(t, err)
	assert.Equal(t, "tailored-3.pdf", export.Filename)
	assert.Equal(t, "application/pdf", export.ContentType)
	assert.Equal(t, payload, export.Data)
}

func TestExportDocument_InvalidKind(t *testing.T) {
	client, _ := newTestClient(t, http.NotFoundHandler(), "abc123")

	_, err := client.ExportDocument(context.Background(), domain.ExportKind("zip"), 3, "pdf")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPing_NoAuthRequired(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Empty(t, r.Header.Get("X-User-Id"))
		w.Write([]byte(`{"success":true,"data":{"status":"ok"}}`))
	})

	// No token configured; ping must still go through.
	client, _ := newTestClient(t, handler, "")

	assert.NoError(t, client.Ping(context.Background()))
}

func TestLegacyStrategy_SendsUserIDHeader(t *testing.T) {
	var gotUserID, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = r.Header.Get("X-User-Id")
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	defer server.Close()

	client, err := New(Config{
		BaseURL:  server.URL,
		Strategy: LegacyStrategy{},
		Session:  &fakeSession{token: "9f1c2d3e-uuid"},
	})
	require.NoError(t, err)

	_, err = client.ListApplications(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "9f1c2d3e-uuid", gotUserID)
	assert.Empty(t, gotAuth)
}

func TestUpdateApplication_LastWriteWins(t *testing.T) {
	// The client imposes no locking: both updates reach the server.
	var calls atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodPut, r.Method)
		w.Write([]byte(`{"success":true,"data":{"id":5,"company":"Acme","role":"SRE","status":"applied"}}`))
	})

	client, _ := newTestClient(t, handler, "abc123")

	app := domain.Application{ID: 5, Company: "Acme", Role: "SRE", Status: domain.StatusApplied}
	_, err1 := client.UpdateApplication(context.Background(), app)
	_, err2 := client.UpdateApplication(context.Background(), app)

	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Equal(t, int32(2), calls.Load())
}

func TestContextCancellation_AbortsRequest(t *testing.T) {
	started := make(chan struct{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	})

	client, _ := newTestClient(t, handler, "abc123")

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := client.ListResumes(ctx)

	var netErr *domain.NetworkError
	assert.ErrorAs(t, err, &netErr)
}
