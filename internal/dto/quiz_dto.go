package dto

import (
	"time"

	"lingo-byte/internal/domain"
)

// GenerateQuizRequest is the body of POST /api/generate-adaptive-quiz/.
type GenerateQuizRequest struct {
	Topic        string `json:"topic"`
	NumQuestions int    `json:"num_questions"`
	// ForceDifficulty overrides the user's current level when set.
	ForceDifficulty string `json:"force_difficulty,omitempty"`
}

// GeneratedQuiz is the response of quiz generation. Nothing is persisted
// until the quiz is submitted.
type GeneratedQuiz struct {
	Questions         []domain.Question `json:"questions"`
	GeneratedForLevel string            `json:"generated_for_level"`
	WeakTopics        []string          `json:"weak_topics,omitempty"`
	ModelUsed         string            `json:"model_used,omitempty"`
	Fallback          bool              `json:"fallback,omitempty"`
}

// SubmittedQuestion is one answered item in a submission. The server
// recomputes is_correct; a client-supplied value is ignored.
type SubmittedQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	UserAnswer    string   `json:"user_answer"`
	Explanation   string   `json:"explanation"`
	Topic         string   `json:"topic"`
	Difficulty    string   `json:"difficulty"`
	Passage       string   `json:"passage,omitempty"`
}

// QuizData groups the answered questions of a submission.
type QuizData struct {
	Questions []SubmittedQuestion `json:"questions"`
}

// SubmitQuizRequest is the body of POST /api/evaluate-quiz/. Score is
// client-advisory only; the server recomputes it.
type SubmitQuizRequest struct {
	QuizData   QuizData `json:"quiz_data"`
	Score      int      `json:"score"`
	Topic      string   `json:"topic"`
	Difficulty string   `json:"difficulty"`
	QuizType   string   `json:"quiz_type"`
}

// QuizEvaluation is the response of a submission.
type QuizEvaluation struct {
	Score                 int                              `json:"score"`
	CurrentLevel          string                           `json:"current_level"`
	PreviousLevel         string                           `json:"previous_level,omitempty"`
	LevelChanged          bool                             `json:"level_changed"`
	LevelChangeType       string                           `json:"level_change_type,omitempty"`
	LevelChangeMessage    string                           `json:"level_change_message,omitempty"`
	TotalQuizzes          int                              `json:"total_quizzes"`
	AverageScore          float64                          `json:"average_score"`
	TopicPerformance      map[string]domain.TopicScore     `json:"topic_performance"`
	HasCompletedFirstQuiz bool                             `json:"has_completed_first_quiz"`
}

// TopicPerformanceEntry is the per-topic aggregate in detailed analytics.
type TopicPerformanceEntry struct {
	Percentage float64 `json:"percentage"`
	Correct    int     `json:"correct"`
	Total      int     `json:"total"`
}

// QuizHistoryEntry is one row of the chronological quiz list, numbered from 1
// in submission order.
type QuizHistoryEntry struct {
	QuizNumber int       `json:"quiz_number"`
	Score      int       `json:"score"`
	Topic      string    `json:"topic"`
	Difficulty string    `json:"difficulty"`
	Timestamp  time.Time `json:"timestamp"`
}

// Performance is the basic metrics projection, derived from quiz records.
type Performance struct {
	TotalQuizzes int     `json:"total_quizzes"`
	AverageScore float64 `json:"average_score"`
	EnglishLevel string  `json:"english_level"`
}

// PerformanceDetailed adds topic and level breakdowns to Performance.
type PerformanceDetailed struct {
	Performance
	TopicPerformance map[string]TopicPerformanceEntry `json:"topic_performance"`
	LevelCounts      map[string]int                   `json:"level_counts"`
	QuizHistory      []QuizHistoryEntry               `json:"quiz_history"`
}
