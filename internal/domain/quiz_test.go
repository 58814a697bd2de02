package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradedQuestion(topic, userAnswer string) Question {
	return Question{
		QuestionText:  "pick one (" + topic + "/" + userAnswer + ")",
		Options:       []string{"right", "wrong", "worse", "worst"},
		CorrectAnswer: "right",
		UserAnswer:    userAnswer,
		Explanation:   "because",
		Topic:         topic,
	}
}

func TestQuizGrade(t *testing.T) {
	quiz := &Quiz{
		Topic: TopicMixed,
		Questions: []Question{
			gradedQuestion("Grammar", "right"),
			gradedQuestion("Grammar", "wrong"),
			gradedQuestion("Vocabulary", "right"),
			// An unanswered question counts as wrong.
			gradedQuestion("Vocabulary", ""),
		},
		// Client-supplied values are overwritten.
		Score: 100,
	}
	quiz.Grade()

	assert.Equal(t, 50, quiz.Score)
	assert.True(t, quiz.Questions[0].IsCorrect)
	assert.False(t, quiz.Questions[1].IsCorrect)
	assert.Equal(t, TopicScore{Correct: 1, Total: 2}, quiz.TopicPerformance["Grammar"])
	assert.Equal(t, TopicScore{Correct: 1, Total: 2}, quiz.TopicPerformance["Vocabulary"])
}

func TestQuizGradeRounding(t *testing.T) {
	quiz := &Quiz{Questions: []Question{
		gradedQuestion("Grammar", "right"),
		gradedQuestion("Grammar", "wrong"),
		gradedQuestion("Grammar", "wrong"),
	}}
	quiz.Grade()
	// 1/3 rounds to 33, not truncates to 33.33.
	assert.Equal(t, 33, quiz.Score)
}

func TestQuizGradeFallsBackToQuizTopic(t *testing.T) {
	q := gradedQuestion("", "right")
	quiz := &Quiz{Topic: "Grammar", Questions: []Question{q}}
	quiz.Grade()
	assert.Equal(t, TopicScore{Correct: 1, Total: 1}, quiz.TopicPerformance["Grammar"])
}

func TestQuizValidate(t *testing.T) {
	empty := &Quiz{}
	require.Error(t, empty.Validate())

	bad := &Quiz{Questions: []Question{{
		QuestionText:  "q",
		Options:       []string{"a", "b"},
		CorrectAnswer: "a",
	}}}
	err := bad.Validate()
	require.Error(t, err)
	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, ErrInvalidQuizStructure, de.Code)

	missingAnswer := &Quiz{Questions: []Question{{
		QuestionText:  "q",
		Options:       []string{"a", "b", "c", "d"},
		CorrectAnswer: "e",
	}}}
	require.Error(t, missingAnswer.Validate())
}
