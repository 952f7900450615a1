package dto

// DifficultyCount is an aggregate bucket keyed by question difficulty.
type DifficultyCount struct {
	Difficulty string `json:"difficulty"`
	Count      int64  `json:"count"`
}

// StatusCount is an aggregate bucket keyed by submission status.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// StudentStatsResponse aggregates a student's submission activity.
type StudentStatsResponse struct {
	TotalSubmissions      int64                `json:"total_submissions"`
	SuccessfulSubmissions int64                `json:"successful_submissions"`
	QuestionsAttempted    int64                `json:"questions_attempted"`
	QuestionsByDifficulty []DifficultyCount    `json:"questions_by_difficulty"`
	RecentSubmissions     []SubmissionResponse `json:"recent_submissions"`
}

// StaffStatsResponse aggregates activity around a staff member's questions.
type StaffStatsResponse struct {
	TotalQuestions        int64              `json:"total_questions"`
	QuestionsByDifficulty []DifficultyCount  `json:"questions_by_difficulty"`
	TotalSubmissions      int64              `json:"total_submissions"`
	SubmissionsByStatus   []StatusCount      `json:"submissions_by_status"`
	RecentQuestions       []QuestionResponse `json:"recent_questions"`
}
