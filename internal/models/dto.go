package models

import "time"

// SubmissionSummary is the redacted listing view of a submission.
type SubmissionSummary struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
	Date  time.Time `json:"date"`
}

type SubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

// Analysis is the categorized feedback produced by the rule engine.
type Analysis struct {
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	Suggestions  []string `json:"suggestions"`
}

// AnalysisReport is the full analyze endpoint payload: score,
// leaderboard standing and the rule-based feedback lists.
type AnalysisReport struct {
	ID           string    `json:"id"`
	Score        int       `json:"score"`
	Percentile   int       `json:"percentile"`
	Position     int       `json:"position"`
	TotalResumes int       `json:"totalResumes"`
	Strengths    []string  `json:"strengths"`
	Improvements []string  `json:"improvements"`
	Suggestions  []string  `json:"suggestions"`
	AnalyzedAt   time.Time `json:"analyzedAt"`
}

type FeedbackRequest struct {
	ResumeID string `json:"resumeId"`
	Rating   int    `json:"rating"`
	Comments string `json:"comments"`
}
