package models

import "time"

const (
	// SubmissionStatusAccepted marks a submission recorded as passing.
	SubmissionStatusAccepted = "accepted"
	// SubmissionStatusWrong marks a submission recorded as failing.
	SubmissionStatusWrong = "wrong"
)

// Submission represents a solution recorded against a question.
type Submission struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	UserID     string    `gorm:"size:36;not null;index" json:"user_id"`
	QuestionID string    `gorm:"size:36;not null;index" json:"question_id"`
	Language   string    `gorm:"size:32;not null" json:"language"`
	Code       string    `gorm:"type:text;not null" json:"code"`
	Status     string    `gorm:"size:16;not null" json:"status"`
	CreatedAt  time.Time `json:"timestamp"`
	Question   Question  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	User       User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// IsAccepted reports whether the submission passed.
func (s Submission) IsAccepted() bool {
	return s.Status == SubmissionStatusAccepted
}
