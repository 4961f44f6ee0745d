package models

import "time"

// Submission is one applicant's resume form data plus an optional
// reference to the uploaded resume file. Submissions are immutable
// once stored.
type Submission struct {
	ID         string    `gorm:"type:uuid;primary_key" json:"id"`
	Name       string    `gorm:"type:text;not null" json:"name"`
	Email      string    `gorm:"type:text;not null" json:"email"`
	Phone      string    `gorm:"type:text;not null" json:"phone"`
	Education  string    `gorm:"type:text" json:"education"`
	Skills     string    `gorm:"type:text" json:"skills"`
	Experience string    `gorm:"type:text" json:"experience"`
	Linkedin   string    `gorm:"type:text" json:"linkedin"`
	ResumeFile *string   `gorm:"type:text" json:"resumeFile"`
	Date       time.Time `gorm:"type:timestamp;default:now()" json:"date"`
}

func (Submission) TableName() string {
	return "submissions"
}

// Summary returns the fields safe to expose on the public listing
// endpoint.
func (s *Submission) Summary() SubmissionSummary {
	return SubmissionSummary{
		ID:    s.ID,
		Name:  s.Name,
		Email: s.Email,
		Phone: s.Phone,
		Date:  s.Date,
	}
}
