package domain

import (
	"fmt"
	"math"
	"time"
)

// Quiz types.
const (
	QuizTypeStatic   = "static"
	QuizTypeAdaptive = "adaptive"
)

// OptionsPerQuestion is the fixed option count for every multiple-choice item.
const OptionsPerQuestion = 4

// Question is a single multiple-choice item, both as generated and as
// answered. Passage is set only for Reading items and is shared across the
// items generated together.
type Question struct {
	QuestionText  string   `bson:"question_text" json:"question"`
	Options       []string `bson:"options" json:"options"`
	CorrectAnswer string   `bson:"correct_answer" json:"correct_answer"`
	UserAnswer    string   `bson:"user_answer,omitempty" json:"user_answer,omitempty"`
	IsCorrect     bool     `bson:"is_correct" json:"is_correct"`
	Explanation   string   `bson:"explanation" json:"explanation"`
	Topic         string   `bson:"topic" json:"topic"`
	Difficulty    string   `bson:"difficulty" json:"difficulty"`
	Passage       string   `bson:"passage,omitempty" json:"passage,omitempty"`
}

// Validate checks the structural invariants of a submitted or generated item.
func (q *Question) Validate() error {
	if q.QuestionText == "" {
		return NewInvalidQuizStructureError("question text is required")
	}
	if len(q.Options) != OptionsPerQuestion {
		return NewInvalidQuizStructureError(
			fmt.Sprintf("question must have exactly %d options, got %d", OptionsPerQuestion, len(q.Options)))
	}
	if q.CorrectAnswer == "" {
		return NewInvalidQuizStructureError("correct answer is required")
	}
	found := false
	for _, opt := range q.Options {
		if opt == q.CorrectAnswer {
			found = true
			break
		}
	}
	if !found {
		return NewInvalidQuizStructureError("correct answer must appear in options")
	}
	return nil
}

// TopicScore counts correct answers within one topic of one quiz.
type TopicScore struct {
	Correct int `bson:"correct" json:"correct"`
	Total   int `bson:"total" json:"total"`
}

// Quiz is a completed attempt, persisted on submission only.
type Quiz struct {
	ID               string                `bson:"_id" json:"id"`
	UserID           string                `bson:"user_id" json:"user_id"`
	QuizType         string                `bson:"quiz_type" json:"quiz_type"`
	Topic            string                `bson:"topic" json:"topic"`
	Difficulty       string                `bson:"difficulty" json:"difficulty"`
	Score            int                   `bson:"score" json:"score"`
	Questions        []Question            `bson:"questions" json:"questions"`
	TopicPerformance map[string]TopicScore `bson:"topic_performance" json:"topic_performance"`
	Timestamp        time.Time             `bson:"timestamp" json:"timestamp"`
}

// Grade recomputes per-question correctness, the score and the per-topic
// breakdown from the user answers. Client-supplied values for these fields
// are never trusted.
func (q *Quiz) Grade() {
	correct := 0
	perf := make(map[string]TopicScore)
	for i := range q.Questions {
		item := &q.Questions[i]
		item.IsCorrect = item.UserAnswer == item.CorrectAnswer
		if item.IsCorrect {
			correct++
		}
		topic := item.Topic
		if topic == "" {
			topic = q.Topic
		}
		ts := perf[topic]
		ts.Total++
		if item.IsCorrect {
			ts.Correct++
		}
		perf[topic] = ts
	}
	q.TopicPerformance = perf
	if len(q.Questions) > 0 {
		q.Score = int(math.Round(100 * float64(correct) / float64(len(q.Questions))))
	} else {
		q.Score = 0
	}
}

// Validate checks the structural invariants of the whole attempt.
func (q *Quiz) Validate() error {
	if len(q.Questions) == 0 {
		return NewInvalidQuizStructureError("quiz must contain at least one question")
	}
	for i := range q.Questions {
		if err := q.Questions[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}
