package service

import (
	"context"
	"errors"
	"math/rand"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/peccode-dev/peccode-api/internal/dto"
	"github.com/peccode-dev/peccode-api/internal/models"
	"github.com/peccode-dev/peccode-api/internal/repository"
)

// acceptProbability is the chance a simulated verdict comes back accepted,
// matching the portal's demo behavior. No real execution happens.
const acceptProbability = 0.7

// SubmissionService records and lists solution submissions.
type SubmissionService interface {
	List(ctx context.Context, userID string, filter dto.SubmissionFilter) ([]dto.SubmissionResponse, error)
	Submit(ctx context.Context, userID string, payload dto.SubmissionRequest) (dto.SubmissionResponse, error)
}

type submissionService struct {
	submissions repository.SubmissionRepository
	questions   repository.QuestionRepository
	validator   *validator.Validate
	rng         *rand.Rand
	logger      zerolog.Logger
}

// NewSubmissionService constructs a submission service. The rand source is
// injected so tests can fix the simulated verdict.
func NewSubmissionService(submissions repository.SubmissionRepository, questions repository.QuestionRepository, validate *validator.Validate, rng *rand.Rand, logger zerolog.Logger) SubmissionService {
	return &submissionService{
		submissions: submissions,
		questions:   questions,
		validator:   validate,
		rng:         rng,
		logger:      logger.With().Str("component", "submission_service").Logger(),
	}
}

func (s *submissionService) List(ctx context.Context, userID string, filter dto.SubmissionFilter) ([]dto.SubmissionResponse, error) {
	query := repository.SubmissionQuery{
		UserID:     userID,
		QuestionID: strings.TrimSpace(filter.QuestionID),
		Status:     strings.TrimSpace(filter.Status),
	}

	submissions, err := s.submissions.ListByUser(ctx, query)
	if err != nil {
		return nil, err
	}

	return dto.NewSubmissionListResponse(submissions), nil
}

func (s *submissionService) Submit(ctx context.Context, userID string, payload dto.SubmissionRequest) (dto.SubmissionResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.SubmissionResponse{}, err
	}

	question, err := s.questions.GetByID(ctx, payload.QuestionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SubmissionResponse{}, ErrQuestionNotFound
		}
		return dto.SubmissionResponse{}, err
	}

	status := models.SubmissionStatusWrong
	if s.rng.Float64() < acceptProbability {
		status = models.SubmissionStatusAccepted
	}

	submission := models.Submission{
		ID:         uuid.NewString(),
		UserID:     userID,
		QuestionID: question.ID,
		Language:   strings.ToLower(strings.TrimSpace(payload.Language)),
		Code:       payload.Code,
		Status:     status,
	}

	if err := s.submissions.Create(ctx, &submission); err != nil {
		return dto.SubmissionResponse{}, err
	}

	s.logger.Info().
		Str("submission_id", submission.ID).
		Str("question_id", question.ID).
		Str("status", status).
		Msg("submission recorded")

	submission.Question = question
	return dto.NewSubmissionResponse(submission), nil
}
