package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/peccode-dev/peccode-api/internal/dto"
	"github.com/peccode-dev/peccode-api/internal/models"
	"github.com/peccode-dev/peccode-api/internal/repository"
)

// ErrQuestionNotFound indicates the requested question does not exist, or
// is not owned by the caller where ownership is required.
var ErrQuestionNotFound = errors.New("question not found")

// QuestionService exposes question use cases. Mutations are restricted to
// the staff member who created the question.
type QuestionService interface {
	List(ctx context.Context, filter dto.QuestionFilter) (dto.QuestionListResponse, error)
	Get(ctx context.Context, id string) (dto.QuestionResponse, error)
	Create(ctx context.Context, creatorID string, payload dto.QuestionRequest) (dto.QuestionResponse, error)
	Update(ctx context.Context, id, creatorID string, payload dto.QuestionRequest) (dto.QuestionResponse, error)
	Delete(ctx context.Context, id, creatorID string) error
}

type questionService struct {
	repo      repository.QuestionRepository
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
}

// NewQuestionService builds a new question service.
func NewQuestionService(repo repository.QuestionRepository, validate *validator.Validate, logger zerolog.Logger) QuestionService {
	return &questionService{
		repo:      repo,
		validator: validate,
		sanitizer: bluemonday.UGCPolicy(),
		logger:    logger.With().Str("component", "question_service").Logger(),
	}
}

func (s *questionService) List(ctx context.Context, filter dto.QuestionFilter) (dto.QuestionListResponse, error) {
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	query := repository.QuestionQuery{
		Difficulty: strings.ToLower(strings.TrimSpace(filter.Difficulty)),
		Tag:        strings.ToLower(strings.TrimSpace(filter.Tag)),
		Search:     strings.TrimSpace(filter.Search),
		Offset:     (page - 1) * pageSize,
		Limit:      pageSize,
	}

	questions, total, err := s.repo.List(ctx, query)
	if err != nil {
		return dto.QuestionListResponse{}, err
	}

	pagination := dto.Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: int(total),
	}

	return dto.NewQuestionListResponse(questions, pagination), nil
}

func (s *questionService) Get(ctx context.Context, id string) (dto.QuestionResponse, error) {
	question, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.QuestionResponse{}, ErrQuestionNotFound
		}
		return dto.QuestionResponse{}, err
	}

	return dto.NewQuestionResponse(question), nil
}

func (s *questionService) Create(ctx context.Context, creatorID string, payload dto.QuestionRequest) (dto.QuestionResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.QuestionResponse{}, err
	}

	question := models.Question{
		ID:           uuid.NewString(),
		Title:        strings.TrimSpace(payload.Title),
		Description:  s.sanitizer.Sanitize(payload.Description),
		Difficulty:   strings.ToLower(payload.Difficulty),
		Tags:         models.EncodeTags(normalizeTags(payload.Tags)),
		SampleInput:  payload.SampleInput,
		SampleOutput: payload.SampleOutput,
		Constraints:  payload.Constraints,
		CreatedBy:    creatorID,
	}

	if err := s.repo.Create(ctx, &question); err != nil {
		return dto.QuestionResponse{}, err
	}

	s.logger.Info().Str("question_id", question.ID).Str("created_by", creatorID).Msg("question created")

	return dto.NewQuestionResponse(question), nil
}

func (s *questionService) Update(ctx context.Context, id, creatorID string, payload dto.QuestionRequest) (dto.QuestionResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.QuestionResponse{}, err
	}

	question, err := s.repo.GetByIDAndCreator(ctx, id, creatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.QuestionResponse{}, ErrQuestionNotFound
		}
		return dto.QuestionResponse{}, err
	}

	question.Title = strings.TrimSpace(payload.Title)
	question.Description = s.sanitizer.Sanitize(payload.Description)
	question.Difficulty = strings.ToLower(payload.Difficulty)
	question.Tags = models.EncodeTags(normalizeTags(payload.Tags))
	question.SampleInput = payload.SampleInput
	question.SampleOutput = payload.SampleOutput
	question.Constraints = payload.Constraints

	if err := s.repo.Update(ctx, &question); err != nil {
		return dto.QuestionResponse{}, err
	}

	return dto.NewQuestionResponse(question), nil
}

func (s *questionService) Delete(ctx context.Context, id, creatorID string) error {
	if _, err := s.repo.GetByIDAndCreator(ctx, id, creatorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuestionNotFound
		}
		return err
	}

	return s.repo.Delete(ctx, id)
}

func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}

	seen := make(map[string]struct{})
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		trimmed := strings.ToLower(strings.TrimSpace(tag))
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		result = append(result, trimmed)
	}
	return result
}
