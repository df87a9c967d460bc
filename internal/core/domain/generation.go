package domain

import "time"

// InterviewQuestion is one generated interview question with guidance.
type InterviewQuestion struct {
	// Question is the question text.
	Question string `json:"question"`
	// Category groups questions (behavioural, technical, company).
	Category string `json:"category,omitempty"`
	// Guidance is a suggested approach to answering.
	Guidance string `json:"guidance,omitempty"`
}

// InterviewPrep is a generated interview-preparation pack for one posting.
type InterviewPrep struct {
	// ID is the backend-assigned identifier.
	ID int64 `json:"id"`
	// ResumeID is the resume the prep was generated against.
	ResumeID int64 `json:"resume_id"`
	// JobTitle and Company identify the posting.
	JobTitle string `json:"job_title"`
	Company  string `json:"company"`
	// Questions are the generated questions.
	Questions []InterviewQuestion `json:"questions"`
	// CreatedAt is when generation completed.
	CreatedAt time.Time `json:"created_at"`
}

// CoverLetter is a generated cover letter for one posting.
type CoverLetter struct {
	// ID is the backend-assigned identifier.
	ID int64 `json:"id"`
	// ResumeID is the resume the letter draws on.
	ResumeID int64 `json:"resume_id"`
	// JobTitle and Company identify the posting.
	JobTitle string `json:"job_title"`
	Company  string `json:"company"`
	// Body is the letter text.
	Body string `json:"body"`
	// Tone is the requested writing tone (professional, enthusiastic, concise).
	Tone string `json:"tone,omitempty"`
	// CreatedAt is when generation completed.
	CreatedAt time.Time `json:"created_at"`
}

// CareerStep is one step in a suggested career path.
type CareerStep struct {
	// Role is the suggested next role.
	Role string `json:"role"`
	// Duration is the typical time spent in this step.
	Duration string `json:"duration,omitempty"`
	// Skills lists skills to acquire during this step.
	Skills []string `json:"skills,omitempty"`
}

// CareerPath is a generated progression from the current role to a target role.
type CareerPath struct {
	// CurrentRole is the starting point.
	CurrentRole string `json:"current_role"`
	// TargetRole is the destination.
	TargetRole string `json:"target_role"`
	// Steps are the suggested intermediate roles, in order.
	Steps []CareerStep `json:"steps"`
}

// StarStory is a generated STAR-format behavioural interview answer.
type StarStory struct {
	// ID is the backend-assigned identifier.
	ID int64 `json:"id"`
	// Prompt is the behavioural question the story answers.
	Prompt string `json:"prompt"`
	// Situation, Task, Action, Result are the four STAR sections.
	Situation string `json:"situation"`
	Task      string `json:"task"`
	Action    string `json:"action"`
	Result    string `json:"result"`
	// CreatedAt is when generation completed.
	CreatedAt time.Time `json:"created_at"`
}

// CompanyResearch is a generated research brief about a company.
type CompanyResearch struct {
	// Company is the researched company name.
	Company string `json:"company"`
	// Summary is a short overview of the company.
	Summary string `json:"summary"`
	// Culture describes working culture signals, if found.
	Culture string `json:"culture,omitempty"`
	// News lists recent headlines.
	News []string `json:"news,omitempty"`
	// FetchedAt is when the research was produced.
	FetchedAt time.Time `json:"fetched_at"`
}
