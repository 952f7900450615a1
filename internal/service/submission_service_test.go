package service

import (
	"context"
	"math/rand"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/peccode-dev/peccode-api/internal/dto"
	"github.com/peccode-dev/peccode-api/internal/models"
	"github.com/peccode-dev/peccode-api/internal/repository"
)

type stubSubmissionRepo struct {
	created []models.Submission
}

func (s *stubSubmissionRepo) ListByUser(ctx context.Context, query repository.SubmissionQuery) ([]models.Submission, error) {
	var result []models.Submission
	for _, submission := range s.created {
		if submission.UserID != query.UserID {
			continue
		}
		if query.QuestionID != "" && submission.QuestionID != query.QuestionID {
			continue
		}
		if query.Status != "" && submission.Status != query.Status {
			continue
		}
		result = append(result, submission)
	}
	return result, nil
}

func (s *stubSubmissionRepo) Create(ctx context.Context, submission *models.Submission) error {
	s.created = append(s.created, *submission)
	return nil
}

func (s *stubSubmissionRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	return int64(len(s.created)), nil
}

func (s *stubSubmissionRepo) CountAcceptedByUser(ctx context.Context, userID string) (int64, error) {
	var total int64
	for _, submission := range s.created {
		if submission.IsAccepted() {
			total++
		}
	}
	return total, nil
}

func (s *stubSubmissionRepo) CountDistinctQuestions(ctx context.Context, userID string) (int64, error) {
	distinct := map[string]struct{}{}
	for _, submission := range s.created {
		distinct[submission.QuestionID] = struct{}{}
	}
	return int64(len(distinct)), nil
}

func (s *stubSubmissionRepo) AttemptedPerDifficulty(ctx context.Context, userID string) ([]repository.DifficultyBucket, error) {
	return nil, nil
}

func (s *stubSubmissionRepo) RecentByUser(ctx context.Context, userID string, limit int) ([]models.Submission, error) {
	return nil, nil
}

func (s *stubSubmissionRepo) CountForCreatorQuestions(ctx context.Context, creatorID string) (int64, error) {
	return 0, nil
}

func (s *stubSubmissionRepo) StatusForCreatorQuestions(ctx context.Context, creatorID string) ([]repository.StatusBucket, error) {
	return nil, nil
}

func newSubmissionService(submissions *stubSubmissionRepo, questions *stubQuestionRepo) SubmissionService {
	validate := validator.New(validator.WithRequiredStructEnabled())
	rng := rand.New(rand.NewSource(1))
	return NewSubmissionService(submissions, questions, validate, rng, zerolog.Nop())
}

func TestSubmissionServiceSubmitRecordsVerdict(t *testing.T) {
	questions := newStubQuestionRepo()
	questions.questions["q1"] = models.Question{ID: "q1", Title: "Two Sum"}
	submissions := &stubSubmissionRepo{}
	svc := newSubmissionService(submissions, questions)

	response, err := svc.Submit(context.Background(), "u1", dto.SubmissionRequest{
		QuestionID: "q1",
		Language:   "Python",
		Code:       "def twoSum(): pass",
	})
	require.NoError(t, err)
	require.Len(t, submissions.created, 1)
	require.Equal(t, "u1", response.UserID)
	require.Equal(t, "q1", response.QuestionID)
	require.Equal(t, "python", response.Language)
	require.Equal(t, "Two Sum", response.QuestionTitle)
	require.Contains(t, []string{models.SubmissionStatusAccepted, models.SubmissionStatusWrong}, response.Status)
}

func TestSubmissionServiceSubmitUnknownQuestion(t *testing.T) {
	svc := newSubmissionService(&stubSubmissionRepo{}, newStubQuestionRepo())

	_, err := svc.Submit(context.Background(), "u1", dto.SubmissionRequest{
		QuestionID: "missing",
		Language:   "python",
		Code:       "pass",
	})
	require.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestSubmissionServiceVerdictDistribution(t *testing.T) {
	questions := newStubQuestionRepo()
	questions.questions["q1"] = models.Question{ID: "q1", Title: "Two Sum"}
	submissions := &stubSubmissionRepo{}
	svc := newSubmissionService(submissions, questions)

	for i := 0; i < 200; i++ {
		_, err := svc.Submit(context.Background(), "u1", dto.SubmissionRequest{
			QuestionID: "q1",
			Language:   "python",
			Code:       "pass",
		})
		require.NoError(t, err)
	}

	var accepted int
	for _, submission := range submissions.created {
		if submission.IsAccepted() {
			accepted++
		}
	}

	// With p=0.7 over 200 draws both outcomes must appear.
	require.Greater(t, accepted, 0)
	require.Less(t, accepted, 200)
}

func TestSubmissionServiceListFilters(t *testing.T) {
	questions := newStubQuestionRepo()
	questions.questions["q1"] = models.Question{ID: "q1"}
	questions.questions["q2"] = models.Question{ID: "q2"}
	submissions := &stubSubmissionRepo{created: []models.Submission{
		{ID: "s1", UserID: "u1", QuestionID: "q1", Status: models.SubmissionStatusAccepted},
		{ID: "s2", UserID: "u1", QuestionID: "q2", Status: models.SubmissionStatusWrong},
		{ID: "s3", UserID: "u2", QuestionID: "q1", Status: models.SubmissionStatusAccepted},
	}}
	svc := newSubmissionService(submissions, questions)

	all, err := svc.List(context.Background(), "u1", dto.SubmissionFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	filtered, err := svc.List(context.Background(), "u1", dto.SubmissionFilter{Status: models.SubmissionStatusWrong})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	require.Equal(t, "s2", filtered[0].ID)
}
