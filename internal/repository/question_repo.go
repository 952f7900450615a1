package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/peccode-dev/peccode-api/internal/models"
)

// QuestionQuery defines filters and pagination for questions.
type QuestionQuery struct {
	Difficulty string
	Tag        string
	Search     string
	Offset     int
	Limit      int
}

// QuestionRepository exposes persistence operations for questions.
type QuestionRepository interface {
	List(ctx context.Context, query QuestionQuery) ([]models.Question, int64, error)
	GetByID(ctx context.Context, id string) (models.Question, error)
	GetByIDAndCreator(ctx context.Context, id, creatorID string) (models.Question, error)
	Create(ctx context.Context, question *models.Question) error
	Update(ctx context.Context, question *models.Question) error
	Delete(ctx context.Context, id string) error
	CountByCreator(ctx context.Context, creatorID string) (int64, error)
	CountByCreatorPerDifficulty(ctx context.Context, creatorID string) ([]DifficultyBucket, error)
	RecentByCreator(ctx context.Context, creatorID string, limit int) ([]models.Question, error)
}

// DifficultyBucket is an aggregate row grouped by difficulty.
type DifficultyBucket struct {
	Difficulty string
	Count      int64
}

// NewQuestionRepository constructs a question repository.
func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

type questionRepository struct {
	db *gorm.DB
}

func (r *questionRepository) List(ctx context.Context, query QuestionQuery) ([]models.Question, int64, error) {
	db := r.db.WithContext(ctx).Model(&models.Question{})

	if query.Difficulty != "" && query.Difficulty != "all" {
		db = db.Where("LOWER(difficulty) = ?", strings.ToLower(query.Difficulty))
	}

	if query.Tag != "" && query.Tag != "all" {
		like := fmt.Sprintf("%%%s%%", strings.ToLower(strings.TrimSpace(query.Tag)))
		db = db.Where("LOWER(tags) LIKE ?", like)
	}

	if query.Search != "" {
		pattern := fmt.Sprintf("%%%s%%", strings.ToLower(query.Search))
		db = db.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if query.Offset > 0 {
		db = db.Offset(query.Offset)
	}
	if query.Limit > 0 {
		db = db.Limit(query.Limit)
	}

	db = db.Order("created_at DESC")

	var questions []models.Question
	if err := db.Find(&questions).Error; err != nil {
		return nil, 0, err
	}

	return questions, total, nil
}

func (r *questionRepository) GetByID(ctx context.Context, id string) (models.Question, error) {
	var question models.Question
	if err := r.db.WithContext(ctx).First(&question, "id = ?", id).Error; err != nil {
		return models.Question{}, err
	}
	return question, nil
}

func (r *questionRepository) GetByIDAndCreator(ctx context.Context, id, creatorID string) (models.Question, error) {
	var question models.Question
	err := r.db.WithContext(ctx).
		Where("id = ? AND created_by = ?", id, creatorID).
		First(&question).Error
	if err != nil {
		return models.Question{}, err
	}
	return question, nil
}

func (r *questionRepository) Create(ctx context.Context, question *models.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

func (r *questionRepository) Update(ctx context.Context, question *models.Question) error {
	return r.db.WithContext(ctx).Save(question).Error
}

func (r *questionRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Question{}, "id = ?", id).Error
}

func (r *questionRepository) CountByCreator(ctx context.Context, creatorID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Question{}).
		Where("created_by = ?", creatorID).
		Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *questionRepository) CountByCreatorPerDifficulty(ctx context.Context, creatorID string) ([]DifficultyBucket, error) {
	var buckets []DifficultyBucket
	err := r.db.WithContext(ctx).Model(&models.Question{}).
		Select("difficulty, COUNT(*) as count").
		Where("created_by = ?", creatorID).
		Group("difficulty").
		Scan(&buckets).Error
	if err != nil {
		return nil, err
	}
	return buckets, nil
}

func (r *questionRepository) RecentByCreator(ctx context.Context, creatorID string, limit int) ([]models.Question, error) {
	var questions []models.Question
	err := r.db.WithContext(ctx).
		Where("created_by = ?", creatorID).
		Order("created_at DESC").
		Limit(limit).
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}
