package dto

import "github.com/peccode-dev/peccode-api/internal/models"

// QuestionFilter defines query parameters for listing questions.
type QuestionFilter struct {
	Difficulty string `query:"difficulty"`
	Tag        string `query:"tag"`
	Search     string `query:"search"`
	Page       int    `query:"page"`
	PageSize   int    `query:"page_size"`
}

// Pagination describes pagination metadata for list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
}

// QuestionRequest carries the fields for creating or updating a question.
type QuestionRequest struct {
	Title        string   `json:"title" validate:"required,min=3,max=255"`
	Description  string   `json:"description" validate:"required"`
	Difficulty   string   `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Tags         []string `json:"tags" validate:"max=10,dive,min=1,max=64"`
	SampleInput  string   `json:"sample_input"`
	SampleOutput string   `json:"sample_output"`
	Constraints  string   `json:"constraints"`
}

// QuestionResponse represents a question returned by the API.
type QuestionResponse struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Difficulty   string   `json:"difficulty"`
	Tags         []string `json:"tags"`
	SampleInput  string   `json:"sample_input"`
	SampleOutput string   `json:"sample_output"`
	Constraints  string   `json:"constraints"`
	CreatedBy    string   `json:"created_by"`
	CreatedAt    string   `json:"created_at"`
}

// QuestionListResponse wraps questions and pagination metadata.
type QuestionListResponse struct {
	Items      []QuestionResponse `json:"items"`
	Pagination Pagination         `json:"pagination"`
}

// NewQuestionResponse builds a response DTO from the model.
func NewQuestionResponse(question models.Question) QuestionResponse {
	tags := question.TagsSlice()
	if tags == nil {
		tags = []string{}
	}

	return QuestionResponse{
		ID:           question.ID,
		Title:        question.Title,
		Description:  question.Description,
		Difficulty:   question.Difficulty,
		Tags:         tags,
		SampleInput:  question.SampleInput,
		SampleOutput: question.SampleOutput,
		Constraints:  question.Constraints,
		CreatedBy:    question.CreatedBy,
		CreatedAt:    question.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// NewQuestionListResponse builds a list response from models and pagination meta.
func NewQuestionListResponse(questions []models.Question, pagination Pagination) QuestionListResponse {
	items := make([]QuestionResponse, 0, len(questions))
	for _, question := range questions {
		items = append(items, NewQuestionResponse(question))
	}

	return QuestionListResponse{
		Items:      items,
		Pagination: pagination,
	}
}
