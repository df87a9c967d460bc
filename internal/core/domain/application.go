package domain

import "time"

// ApplicationStatus tracks where a job application sits in the pipeline.
type ApplicationStatus string

// Available application statuses.
const (
	// StatusSaved is a posting the user intends to apply to.
	StatusSaved ApplicationStatus = "saved"
	// StatusApplied is a submitted application awaiting a response.
	StatusApplied ApplicationStatus = "applied"
	// StatusInterviewing means at least one interview is scheduled or done.
	StatusInterviewing ApplicationStatus = "interviewing"
	// StatusOffer means an offer was extended.
	StatusOffer ApplicationStatus = "offer"
	// StatusRejected means the application was declined.
	StatusRejected ApplicationStatus = "rejected"
	// StatusAccepted means the user accepted an offer.
	StatusAccepted ApplicationStatus = "accepted"
)

// IsValid returns true if the status is recognised.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case StatusSaved, StatusApplied, StatusInterviewing, StatusOffer, StatusRejected, StatusAccepted:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s ApplicationStatus) String() string {
	return string(s)
}

// Application is a tracked job application.
type Application struct {
	// ID is the backend-assigned identifier.
	ID int64 `json:"id"`
	// Company is the hiring company (required).
	Company string `json:"company"`
	// Role is the position applied for (required).
	Role string `json:"role"`
	// Status is the pipeline stage.
	Status ApplicationStatus `json:"status"`
	// URL is the posting URL, if known.
	URL string `json:"url,omitempty"`
	// Notes holds free-form user notes.
	Notes string `json:"notes,omitempty"`
	// TailoredResumeID links the tailored resume used, if any.
	TailoredResumeID int64 `json:"tailored_resume_id,omitempty"`
	// AppliedAt is when the application was submitted.
	AppliedAt time.Time `json:"applied_at,omitempty"`
	// UpdatedAt is when the record last changed.
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks the application has the fields the backend requires.
func (a *Application) Validate() error {
	if a.Company == "" || a.Role == "" {
		return ErrInvalidInput
	}
	if a.Status != "" && !a.Status.IsValid() {
		return ErrInvalidInput
	}
	return nil
}
