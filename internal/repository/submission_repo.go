package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/peccode-dev/peccode-api/internal/models"
)

// SubmissionQuery defines filters for a user's submissions.
type SubmissionQuery struct {
	UserID     string
	QuestionID string
	Status     string
}

// StatusBucket is an aggregate row grouped by submission status.
type StatusBucket struct {
	Status string
	Count  int64
}

// SubmissionRepository exposes persistence operations for submissions.
type SubmissionRepository interface {
	ListByUser(ctx context.Context, query SubmissionQuery) ([]models.Submission, error)
	Create(ctx context.Context, submission *models.Submission) error
	CountByUser(ctx context.Context, userID string) (int64, error)
	CountAcceptedByUser(ctx context.Context, userID string) (int64, error)
	CountDistinctQuestions(ctx context.Context, userID string) (int64, error)
	AttemptedPerDifficulty(ctx context.Context, userID string) ([]DifficultyBucket, error)
	RecentByUser(ctx context.Context, userID string, limit int) ([]models.Submission, error)
	CountForCreatorQuestions(ctx context.Context, creatorID string) (int64, error)
	StatusForCreatorQuestions(ctx context.Context, creatorID string) ([]StatusBucket, error)
}

// NewSubmissionRepository constructs a submission repository.
func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

type submissionRepository struct {
	db *gorm.DB
}

func (r *submissionRepository) ListByUser(ctx context.Context, query SubmissionQuery) ([]models.Submission, error) {
	db := r.db.WithContext(ctx).
		Preload("Question").
		Where("user_id = ?", query.UserID)

	if query.QuestionID != "" {
		db = db.Where("question_id = ?", query.QuestionID)
	}

	if query.Status != "" {
		db = db.Where("status = ?", strings.ToLower(strings.TrimSpace(query.Status)))
	}

	var submissions []models.Submission
	if err := db.Order("created_at DESC").Find(&submissions).Error; err != nil {
		return nil, err
	}

	return submissions, nil
}

func (r *submissionRepository) Create(ctx context.Context, submission *models.Submission) error {
	return r.db.WithContext(ctx).Create(submission).Error
}

func (r *submissionRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Submission{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}

func (r *submissionRepository) CountAcceptedByUser(ctx context.Context, userID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Submission{}).
		Where("user_id = ? AND status = ?", userID, models.SubmissionStatusAccepted).
		Count(&total).Error
	return total, err
}

func (r *submissionRepository) CountDistinctQuestions(ctx context.Context, userID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Submission{}).
		Where("user_id = ?", userID).
		Distinct("question_id").
		Count(&total).Error
	return total, err
}

func (r *submissionRepository) AttemptedPerDifficulty(ctx context.Context, userID string) ([]DifficultyBucket, error) {
	var buckets []DifficultyBucket
	err := r.db.WithContext(ctx).Model(&models.Submission{}).
		Select("questions.difficulty AS difficulty, COUNT(DISTINCT submissions.question_id) AS count").
		Joins("JOIN questions ON questions.id = submissions.question_id").
		Where("submissions.user_id = ?", userID).
		Group("questions.difficulty").
		Scan(&buckets).Error
	if err != nil {
		return nil, err
	}
	return buckets, nil
}

func (r *submissionRepository) RecentByUser(ctx context.Context, userID string, limit int) ([]models.Submission, error) {
	var submissions []models.Submission
	err := r.db.WithContext(ctx).
		Preload("Question").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&submissions).Error
	if err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *submissionRepository) CountForCreatorQuestions(ctx context.Context, creatorID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Submission{}).
		Joins("JOIN questions ON questions.id = submissions.question_id").
		Where("questions.created_by = ?", creatorID).
		Count(&total).Error
	return total, err
}

func (r *submissionRepository) StatusForCreatorQuestions(ctx context.Context, creatorID string) ([]StatusBucket, error) {
	var buckets []StatusBucket
	err := r.db.WithContext(ctx).Model(&models.Submission{}).
		Select("submissions.status AS status, COUNT(*) AS count").
		Joins("JOIN questions ON questions.id = submissions.question_id").
		Where("questions.created_by = ?", creatorID).
		Group("submissions.status").
		Scan(&buckets).Error
	if err != nil {
		return nil, err
	}
	return buckets, nil
}
