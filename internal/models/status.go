package models

import "time"

type SubmissionStatus string

// Review lifecycle stages. Strictly linear, a record never moves
// backwards.
const (
	StatusReceived   SubmissionStatus = "Received"
	StatusProcessing SubmissionStatus = "Processing"
	StatusReviewed   SubmissionStatus = "Reviewed"
	StatusCompleted  SubmissionStatus = "Completed"
)

var statusOrder = []SubmissionStatus{
	StatusReceived,
	StatusProcessing,
	StatusReviewed,
	StatusCompleted,
}

// Index returns the position of the status in the lifecycle, or -1 for
// an unknown value.
func (s SubmissionStatus) Index() int {
	for i, st := range statusOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// Next returns the following lifecycle stage. ok is false when the
// status is already terminal or unknown.
func (s SubmissionStatus) Next() (SubmissionStatus, bool) {
	i := s.Index()
	if i < 0 || i == len(statusOrder)-1 {
		return s, false
	}
	return statusOrder[i+1], true
}

type StatusEvent struct {
	Status    SubmissionStatus `json:"status"`
	Timestamp time.Time        `json:"timestamp"`
}

// StatusRecord tracks the review stage of a single submission.
type StatusRecord struct {
	SubmissionID string           `gorm:"type:uuid;primary_key" json:"-"`
	Status       SubmissionStatus `gorm:"type:text;not null" json:"status"`
	LastUpdated  time.Time        `gorm:"type:timestamp" json:"lastUpdated"`
	History      []StatusEvent    `gorm:"serializer:json" json:"history,omitempty"`
}

func (StatusRecord) TableName() string {
	return "statuses"
}
