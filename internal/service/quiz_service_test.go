package service

import (
	"context"
	"fmt"
	"testing"

	"lingo-byte/internal/config"
	"lingo-byte/internal/domain"
	"lingo-byte/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type quizFixture struct {
	svc     *QuizService
	users   *fakeUserRepo
	quizzes *fakeQuizRepo
	llm     *fakeLLM
	userID  string
}

func newQuizFixture(t *testing.T) *quizFixture {
	t.Helper()
	f := &quizFixture{
		users:   newFakeUserRepo(),
		quizzes: newFakeQuizRepo(),
		llm:     newFakeLLM("gemma2:2b"),
		userID:  "user-1",
	}
	f.svc = NewQuizService(f.users, f.quizzes, f.llm, config.LearningConfig{
		LevelUpThreshold:         75,
		LevelDownThreshold:       50,
		MinQuizzesForLevelChange: 3,
		DefaultQuizQuestions:     4,
	})
	require.NoError(t, f.users.Create(context.Background(), &domain.User{
		ID:           f.userID,
		Username:     "learner",
		EnglishLevel: domain.LevelBeginner,
		Progress:     map[string]float64{},
	}))
	return f
}

// grammarQuizJSON is a minimal well-formed model answer for n Grammar
// questions at beginner level.
func grammarQuizJSON(n int) string {
	out := `{"questions":[`
	for i := 0; i < n; i++ {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf(`{
			"question": "Pick the correct form (%d)",
			"options": ["goes", "go", "going", "gone"],
			"correct_answer": "goes",
			"explanation": "Third person singular takes -s.",
			"topic": "Grammar",
			"difficulty": "beginner"
		}`, i)
	}
	return out + `]}`
}

func TestGenerateUsesModelOutput(t *testing.T) {
	f := newQuizFixture(t)
	f.llm.enqueue(grammarQuizJSON(2), nil)

	resp, err := f.svc.Generate(context.Background(), f.userID, &dto.GenerateQuizRequest{
		Topic:        "Grammar",
		NumQuestions: 2,
	})
	require.NoError(t, err)

	assert.False(t, resp.Fallback)
	assert.Equal(t, "gemma2:2b", resp.ModelUsed)
	assert.Equal(t, domain.LevelBeginner, resp.GeneratedForLevel)
	require.Len(t, resp.Questions, 2)
	for _, q := range resp.Questions {
		assert.Equal(t, "Grammar", q.Topic)
		assert.Equal(t, domain.LevelBeginner, q.Difficulty)
	}
	assert.Equal(t, 1, f.llm.callCount())

	// Generation never persists anything.
	count, err := f.quizzes.CountByUser(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestGenerateRetriesOnceOnRejectedOutput(t *testing.T) {
	f := newQuizFixture(t)
	f.llm.enqueue("I'd love to help! Here are some thoughts about grammar...", nil)
	f.llm.enqueue(grammarQuizJSON(2), nil)

	resp, err := f.svc.Generate(context.Background(), f.userID, &dto.GenerateQuizRequest{
		Topic:        "Grammar",
		NumQuestions: 2,
	})
	require.NoError(t, err)

	assert.False(t, resp.Fallback)
	require.Len(t, resp.Questions, 2)
	assert.Equal(t, 2, f.llm.callCount())
}

func TestGenerateFallsBackWhenModelFails(t *testing.T) {
	f := newQuizFixture(t)
	// Empty queue: every call errors.

	resp, err := f.svc.Generate(context.Background(), f.userID, &dto.GenerateQuizRequest{
		Topic:        "Grammar",
		NumQuestions: 3,
	})
	require.NoError(t, err)

	assert.True(t, resp.Fallback)
	assert.Empty(t, resp.ModelUsed)
	require.Len(t, resp.Questions, 3)
	for _, q := range resp.Questions {
		assert.Equal(t, "Grammar", q.Topic)
	}
}

func TestGenerateFallsBackWhenRetryAlsoRejected(t *testing.T) {
	f := newQuizFixture(t)
	f.llm.enqueue("garbage", nil)
	f.llm.enqueue(`{"questions": []}`, nil)

	resp, err := f.svc.Generate(context.Background(), f.userID, &dto.GenerateQuizRequest{
		Topic:        "Vocabulary",
		NumQuestions: 2,
	})
	require.NoError(t, err)

	assert.True(t, resp.Fallback)
	assert.Equal(t, 2, f.llm.callCount())
	require.Len(t, resp.Questions, 2)
}

func TestGenerateDefaultsAndMixedTopics(t *testing.T) {
	f := newQuizFixture(t)

	resp, err := f.svc.Generate(context.Background(), f.userID, &dto.GenerateQuizRequest{})
	require.NoError(t, err)

	// Defaults: quiz size from config, Mixed topic plan.
	require.Len(t, resp.Questions, 4)
	for _, q := range resp.Questions {
		assert.True(t, domain.IsValidTopic(q.Topic), "topic %q", q.Topic)
	}
}

func TestGenerateReportsWeakTopicsForMixed(t *testing.T) {
	f := newQuizFixture(t)
	user, err := f.users.GetByID(context.Background(), f.userID)
	require.NoError(t, err)
	user.Progress = map[string]float64{"Grammar": 40, "Vocabulary": 90, "Tenses": 60}
	require.NoError(t, f.users.UpdateCAS(context.Background(), user))

	resp, err := f.svc.Generate(context.Background(), f.userID, &dto.GenerateQuizRequest{
		Topic: domain.TopicMixed,
	})
	require.NoError(t, err)

	// Weakest first, strong topics excluded.
	assert.Equal(t, []string{"Grammar", "Tenses"}, resp.WeakTopics)
}

func TestGenerateForceDifficulty(t *testing.T) {
	f := newQuizFixture(t)

	resp, err := f.svc.Generate(context.Background(), f.userID, &dto.GenerateQuizRequest{
		Topic:           "Grammar",
		NumQuestions:    2,
		ForceDifficulty: domain.LevelAdvanced,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.LevelAdvanced, resp.GeneratedForLevel)

	_, err = f.svc.Generate(context.Background(), f.userID, &dto.GenerateQuizRequest{
		Topic:           "Grammar",
		ForceDifficulty: "expert",
	})
	assertCode(t, err, domain.ErrInvalidInput)
}

func TestGenerateRejectsBadInput(t *testing.T) {
	f := newQuizFixture(t)

	_, err := f.svc.Generate(context.Background(), f.userID, &dto.GenerateQuizRequest{
		Topic: "Astrophysics",
	})
	assertCode(t, err, domain.ErrInvalidInput)

	_, err = f.svc.Generate(context.Background(), f.userID, &dto.GenerateQuizRequest{
		Topic:        "Grammar",
		NumQuestions: 50,
	})
	assertCode(t, err, domain.ErrInvalidInput)
}
