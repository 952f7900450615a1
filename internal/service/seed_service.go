package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/peccode-dev/peccode-api/internal/auth"
	"github.com/peccode-dev/peccode-api/internal/models"
	"github.com/peccode-dev/peccode-api/internal/repository"
)

// SeedService populates an empty store with the portal's demo accounts,
// questions and submissions.
type SeedService interface {
	SeedIfEmpty(ctx context.Context) error
}

type seedService struct {
	users       repository.UserRepository
	questions   repository.QuestionRepository
	submissions repository.SubmissionRepository
	logger      zerolog.Logger
}

// NewSeedService constructs a seeding service.
func NewSeedService(users repository.UserRepository, questions repository.QuestionRepository, submissions repository.SubmissionRepository, logger zerolog.Logger) SeedService {
	return &seedService{
		users:       users,
		questions:   questions,
		submissions: submissions,
		logger:      logger.With().Str("component", "seed_service").Logger(),
	}
}

func (s *seedService) SeedIfEmpty(ctx context.Context) error {
	total, err := s.users.Count(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	hash, err := auth.HashPassword("password")
	if err != nil {
		return err
	}

	student := models.User{
		ID:           uuid.NewString(),
		Name:         "Arun Kumar",
		Email:        "student@panimalar.edu",
		PasswordHash: hash,
		Role:         models.RoleStudent,
		Department:   "Computer Science",
		RollNumber:   "19CSE101",
	}
	staff := models.User{
		ID:           uuid.NewString(),
		Name:         "Dr. Priya Rajan",
		Email:        "staff@panimalar.edu",
		PasswordHash: hash,
		Role:         models.RoleStaff,
		Department:   "Computer Science",
	}

	for _, user := range []*models.User{&student, &staff} {
		if err := s.users.Create(ctx, user); err != nil {
			return err
		}
	}

	questions := []models.Question{
		{
			ID:           uuid.NewString(),
			Title:        "Two Sum",
			Description:  "Given an array of integers nums and an integer target, return indices of the two numbers such that they add up to target.",
			Difficulty:   models.DifficultyEasy,
			Tags:         models.EncodeTags([]string{"arrays", "hash-table"}),
			SampleInput:  "[2,7,11,15], target = 9",
			SampleOutput: "[0,1]",
			Constraints:  "You may assume that each input would have exactly one solution, and you may not use the same element twice.",
			CreatedBy:    staff.ID,
		},
		{
			ID:           uuid.NewString(),
			Title:        "Binary Tree Level Order Traversal",
			Description:  "Given the root of a binary tree, return the level order traversal of its nodes values.",
			Difficulty:   models.DifficultyMedium,
			Tags:         models.EncodeTags([]string{"binary-tree", "bfs"}),
			SampleInput:  "root = [3,9,20,null,null,15,7]",
			SampleOutput: "[[3],[9,20],[15,7]]",
			Constraints:  "The number of nodes in the tree is in the range [0, 2000].",
			CreatedBy:    staff.ID,
		},
		{
			ID:           uuid.NewString(),
			Title:        "Merge K Sorted Lists",
			Description:  "You are given an array of k linked-lists lists, each linked-list is sorted in ascending order. Merge all the linked-lists into one sorted linked-list and return it.",
			Difficulty:   models.DifficultyHard,
			Tags:         models.EncodeTags([]string{"linked-list", "heap"}),
			SampleInput:  "lists = [[1,4,5],[1,3,4],[2,6]]",
			SampleOutput: "[1,1,2,3,4,4,5,6]",
			Constraints:  "k == lists.length, 0 <= k <= 10^4",
			CreatedBy:    staff.ID,
		},
	}

	for i := range questions {
		if err := s.questions.Create(ctx, &questions[i]); err != nil {
			return err
		}
	}

	submissions := []models.Submission{
		{
			ID:         uuid.NewString(),
			UserID:     student.ID,
			QuestionID: questions[0].ID,
			Language:   "python",
			Code:       "def twoSum(nums, target):\n    seen = {}\n    for i, num in enumerate(nums):\n        complement = target - num\n        if complement in seen:\n            return [seen[complement], i]\n        seen[num] = i",
			Status:     models.SubmissionStatusAccepted,
		},
		{
			ID:         uuid.NewString(),
			UserID:     student.ID,
			QuestionID: questions[1].ID,
			Language:   "java",
			Code:       "class Solution {\n  public List<List<Integer>> levelOrder(TreeNode root) {\n    // BFS over levels\n  }\n}",
			Status:     models.SubmissionStatusWrong,
		},
		{
			ID:         uuid.NewString(),
			UserID:     student.ID,
			QuestionID: questions[0].ID,
			Language:   "c",
			Code:       "int* twoSum(int* nums, int numsSize, int target, int* returnSize) {\n    /* brute force */\n}",
			Status:     models.SubmissionStatusAccepted,
		},
	}

	for i := range submissions {
		if err := s.submissions.Create(ctx, &submissions[i]); err != nil {
			return err
		}
	}

	s.logger.Info().Msg("database seeded with demo data")
	return nil
}
