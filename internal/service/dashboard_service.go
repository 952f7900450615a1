package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/peccode-dev/peccode-api/internal/dto"
	"github.com/peccode-dev/peccode-api/internal/repository"
)

const recentLimit = 5

// DashboardService produces per-role aggregated statistics.
type DashboardService interface {
	StudentStats(ctx context.Context, userID string) (dto.StudentStatsResponse, error)
	StaffStats(ctx context.Context, userID string) (dto.StaffStatsResponse, error)
}

type dashboardService struct {
	questions   repository.QuestionRepository
	submissions repository.SubmissionRepository
	cache       *redis.Client
	cacheTTL    time.Duration
	logger      zerolog.Logger
	tracer      trace.Tracer
}

// NewDashboardService builds the dashboard aggregator. The cache client
// may be nil; aggregation then always hits the store.
func NewDashboardService(questions repository.QuestionRepository, submissions repository.SubmissionRepository, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) DashboardService {
	return &dashboardService{
		questions:   questions,
		submissions: submissions,
		cache:       cache,
		cacheTTL:    ttl,
		logger:      logger.With().Str("component", "dashboard_service").Logger(),
		tracer:      otel.Tracer("github.com/peccode-dev/peccode-api/internal/service/dashboard"),
	}
}

func (s *dashboardService) StudentStats(ctx context.Context, userID string) (dto.StudentStatsResponse, error) {
	ctx, span := s.tracer.Start(ctx, "dashboard.student_stats",
		trace.WithAttributes(attribute.String("user.id", userID)))
	defer span.End()

	cacheKey := fmt.Sprintf("dashboard:student:%s", userID)

	var cached dto.StudentStatsResponse
	if s.readCache(ctx, cacheKey, &cached) {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return cached, nil
	}

	total, err := s.submissions.CountByUser(ctx, userID)
	if err != nil {
		return dto.StudentStatsResponse{}, err
	}

	accepted, err := s.submissions.CountAcceptedByUser(ctx, userID)
	if err != nil {
		return dto.StudentStatsResponse{}, err
	}

	attempted, err := s.submissions.CountDistinctQuestions(ctx, userID)
	if err != nil {
		return dto.StudentStatsResponse{}, err
	}

	perDifficulty, err := s.submissions.AttemptedPerDifficulty(ctx, userID)
	if err != nil {
		return dto.StudentStatsResponse{}, err
	}

	recent, err := s.submissions.RecentByUser(ctx, userID, recentLimit)
	if err != nil {
		return dto.StudentStatsResponse{}, err
	}

	response := dto.StudentStatsResponse{
		TotalSubmissions:      total,
		SuccessfulSubmissions: accepted,
		QuestionsAttempted:    attempted,
		QuestionsByDifficulty: difficultyCounts(perDifficulty),
		RecentSubmissions:     dto.NewSubmissionListResponse(recent),
	}

	s.writeCache(ctx, cacheKey, response)
	return response, nil
}

func (s *dashboardService) StaffStats(ctx context.Context, userID string) (dto.StaffStatsResponse, error) {
	ctx, span := s.tracer.Start(ctx, "dashboard.staff_stats",
		trace.WithAttributes(attribute.String("user.id", userID)))
	defer span.End()

	cacheKey := fmt.Sprintf("dashboard:staff:%s", userID)

	var cached dto.StaffStatsResponse
	if s.readCache(ctx, cacheKey, &cached) {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return cached, nil
	}

	totalQuestions, err := s.questions.CountByCreator(ctx, userID)
	if err != nil {
		return dto.StaffStatsResponse{}, err
	}

	perDifficulty, err := s.questions.CountByCreatorPerDifficulty(ctx, userID)
	if err != nil {
		return dto.StaffStatsResponse{}, err
	}

	totalSubmissions, err := s.submissions.CountForCreatorQuestions(ctx, userID)
	if err != nil {
		return dto.StaffStatsResponse{}, err
	}

	perStatus, err := s.submissions.StatusForCreatorQuestions(ctx, userID)
	if err != nil {
		return dto.StaffStatsResponse{}, err
	}

	recent, err := s.questions.RecentByCreator(ctx, userID, recentLimit)
	if err != nil {
		return dto.StaffStatsResponse{}, err
	}

	recentQuestions := make([]dto.QuestionResponse, 0, len(recent))
	for _, question := range recent {
		recentQuestions = append(recentQuestions, dto.NewQuestionResponse(question))
	}

	statusCounts := make([]dto.StatusCount, 0, len(perStatus))
	for _, bucket := range perStatus {
		statusCounts = append(statusCounts, dto.StatusCount{Status: bucket.Status, Count: bucket.Count})
	}

	response := dto.StaffStatsResponse{
		TotalQuestions:        totalQuestions,
		QuestionsByDifficulty: difficultyCounts(perDifficulty),
		TotalSubmissions:      totalSubmissions,
		SubmissionsByStatus:   statusCounts,
		RecentQuestions:       recentQuestions,
	}

	s.writeCache(ctx, cacheKey, response)
	return response, nil
}

func (s *dashboardService) readCache(ctx context.Context, key string, target interface{}) bool {
	if s.cache == nil {
		return false
	}

	cached, err := s.cache.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read dashboard cache")
		}
		return false
	}

	if err := json.Unmarshal([]byte(cached), target); err != nil {
		return false
	}

	s.logger.Debug().Str("key", key).Msg("dashboard cache hit")
	return true
}

func (s *dashboardService) writeCache(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := s.cache.Set(ctx, key, payload, s.cacheTTL).Err(); err != nil {
		s.logger.Warn().Err(err).Msg("failed to store dashboard cache")
	}
}

func difficultyCounts(buckets []repository.DifficultyBucket) []dto.DifficultyCount {
	counts := make([]dto.DifficultyCount, 0, len(buckets))
	for _, bucket := range buckets {
		counts = append(counts, dto.DifficultyCount{Difficulty: bucket.Difficulty, Count: bucket.Count})
	}
	return counts
}
