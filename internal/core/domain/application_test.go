package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationStatus_IsValid(t *testing.T) {
	valid := []ApplicationStatus{
		StatusSaved, StatusApplied, StatusInterviewing,
		StatusOffer, StatusRejected, StatusAccepted,
	}
	for _, s := range valid {
		t.Run(string(s), func(t *testing.T) {
			assert.True(t, s.IsValid())
		})
	}

	assert.False(t, ApplicationStatus("pending").IsValid())
	assert.False(t, ApplicationStatus("").IsValid())
}

func TestApplication_Validate(t *testing.T) {
	tests := []struct {
		name    string
		app     Application
		wantErr bool
	}{
		{"valid", Application{Company: "Acme", Role: "Engineer"}, false},
		{"valid with status", Application{Company: "Acme", Role: "Engineer", Status: StatusApplied}, false},
		{"missing company", Application{Role: "Engineer"}, true},
		{"missing role", Application{Company: "Acme"}, true},
		{"bad status", Application{Company: "Acme", Role: "Engineer", Status: "limbo"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.app.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestJobPosting_Validate(t *testing.T) {
	assert.NoError(t, (&JobPosting{Title: "Engineer", Company: "Acme"}).Validate())
	assert.ErrorIs(t, (&JobPosting{Title: "Engineer"}).Validate(), ErrInvalidInput)
	assert.ErrorIs(t, (&JobPosting{Company: "Acme"}).Validate(), ErrInvalidInput)
}

func TestExportKind_IsValid(t *testing.T) {
	assert.True(t, ExportResume.IsValid())
	assert.True(t, ExportTailored.IsValid())
	assert.True(t, ExportCoverLetter.IsValid())
	assert.False(t, ExportKind("pdf").IsValid())
}

func TestAppSettings_Validate(t *testing.T) {
	t.Run("defaults valid", func(t *testing.T) {
		assert.NoError(t, DefaultAppSettings().Validate())
	})

	t.Run("bearer requires issuer and client", func(t *testing.T) {
		s := DefaultAppSettings()
		s.Auth.Mode = AuthModeBearer
		assert.ErrorIs(t, s.Validate(), ErrNotConfigured)

		s.Auth.IssuerURL = "https://id.tailorkit.dev"
		s.Auth.ClientID = "tailor-cli"
		assert.NoError(t, s.Validate())
	})

	t.Run("empty base url", func(t *testing.T) {
		s := DefaultAppSettings()
		s.API.BaseURL = ""
		assert.ErrorIs(t, s.Validate(), ErrInvalidInput)
	})
}
