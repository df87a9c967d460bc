package domain

import "time"

// Resume is an uploaded resume document stored by the backend.
type Resume struct {
	// ID is the backend-assigned identifier.
	ID int64 `json:"id"`
	// Title is the user-facing name (defaults to the filename).
	Title string `json:"title"`
	// Filename is the original upload filename.
	Filename string `json:"filename"`
	// ContentType is the MIME type of the uploaded file.
	ContentType string `json:"content_type"`
	// UploadedAt is when the resume was uploaded.
	UploadedAt time.Time `json:"uploaded_at"`
}

// JobPosting describes the job a resume is being tailored towards.
type JobPosting struct {
	// Title is the role title (required).
	Title string `json:"title"`
	// Company is the hiring company (required).
	Company string `json:"company"`
	// Description is the full posting text, if available.
	Description string `json:"description,omitempty"`
	// URL is the posting URL, if the description should be fetched remotely.
	URL string `json:"url,omitempty"`
}

// Validate checks the posting has the minimum fields the backend requires.
func (j *JobPosting) Validate() error {
	if j.Title == "" || j.Company == "" {
		return ErrInvalidInput
	}
	return nil
}

// TailoredResume is the AI-tailored version of a resume for one posting.
type TailoredResume struct {
	// ID is the backend-assigned identifier.
	ID int64 `json:"id"`
	// ResumeID is the source resume.
	ResumeID int64 `json:"resume_id"`
	// JobTitle and Company identify the posting it was tailored for.
	JobTitle string `json:"job_title"`
	Company  string `json:"company"`
	// Content is the tailored resume text (markdown).
	Content string `json:"content"`
	// MatchScore is the backend's estimate of fit, 0-100.
	MatchScore int `json:"match_score"`
	// CreatedAt is when tailoring completed.
	CreatedAt time.Time `json:"created_at"`
}

// Export is a binary document produced by the backend's export endpoint.
type Export struct {
	// Filename is the suggested filename from the Content-Disposition header.
	Filename string
	// ContentType is the MIME type of the payload.
	ContentType string
	// Data is the raw document bytes.
	Data []byte
}

// ExportKind identifies which document family an export request targets.
type ExportKind string

const (
	// ExportResume exports an original uploaded resume.
	ExportResume ExportKind = "resume"
	// ExportTailored exports a tailored resume.
	ExportTailored ExportKind = "tailored"
	// ExportCoverLetter exports a cover letter.
	ExportCoverLetter ExportKind = "cover-letter"
)

// IsValid returns true if the export kind is recognised.
func (k ExportKind) IsValid() bool {
	switch k {
	case ExportResume, ExportTailored, ExportCoverLetter:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k ExportKind) String() string {
	return string(k)
}
