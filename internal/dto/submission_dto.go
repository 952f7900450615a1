package dto

import "github.com/peccode-dev/peccode-api/internal/models"

// SubmissionFilter defines query parameters for listing submissions.
type SubmissionFilter struct {
	QuestionID string `query:"question_id"`
	Status     string `query:"status"`
}

// SubmissionRequest carries a solution submitted against a question.
type SubmissionRequest struct {
	QuestionID string `json:"question_id" validate:"required"`
	Language   string `json:"language" validate:"required,min=1,max=32"`
	Code       string `json:"code" validate:"required"`
}

// SubmissionResponse represents a recorded submission.
type SubmissionResponse struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	QuestionID    string `json:"question_id"`
	QuestionTitle string `json:"question_title,omitempty"`
	Language      string `json:"language"`
	Code          string `json:"code"`
	Status        string `json:"status"`
	Timestamp     string `json:"timestamp"`
}

// NewSubmissionResponse builds a response DTO from the model. The question
// title is included when the association was loaded.
func NewSubmissionResponse(submission models.Submission) SubmissionResponse {
	return SubmissionResponse{
		ID:            submission.ID,
		UserID:        submission.UserID,
		QuestionID:    submission.QuestionID,
		QuestionTitle: submission.Question.Title,
		Language:      submission.Language,
		Code:          submission.Code,
		Status:        submission.Status,
		Timestamp:     submission.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// NewSubmissionListResponse maps submissions to response DTOs.
func NewSubmissionListResponse(submissions []models.Submission) []SubmissionResponse {
	items := make([]SubmissionResponse, 0, len(submissions))
	for _, submission := range submissions {
		items = append(items, NewSubmissionResponse(submission))
	}
	return items
}
