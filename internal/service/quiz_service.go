package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"lingo-byte/internal/config"
	"lingo-byte/internal/domain"
	"lingo-byte/internal/dto"
	"lingo-byte/internal/logger"
	"lingo-byte/internal/quizgen"

	"go.uber.org/zap"
)

const (
	maxQuizQuestions = 10
	// avoidWindow is how many recent quizzes feed the repeat-avoidance list.
	avoidWindow = 10
)

// QuizService orchestrates quiz generation: it asks the model for questions
// matched to the learner's level and weak areas, validates the answer, and
// falls back to the static bank when the model cannot deliver. Generated
// quizzes are never persisted; only submissions are.
type QuizService struct {
	users   domain.UserRepository
	quizzes domain.QuizRepository
	llm     domain.LLMClient
	cfg     config.LearningConfig
}

func NewQuizService(
	users domain.UserRepository,
	quizzes domain.QuizRepository,
	llm domain.LLMClient,
	cfg config.LearningConfig,
) *QuizService {
	return &QuizService{users: users, quizzes: quizzes, llm: llm, cfg: cfg}
}

// Generate produces a quiz for the user. The response always contains exactly
// the requested number of questions; Fallback marks quizzes served from the
// static bank.
func (s *QuizService) Generate(ctx context.Context, userID string, req *dto.GenerateQuizRequest) (*dto.GeneratedQuiz, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	n := req.NumQuestions
	if n <= 0 {
		n = s.cfg.DefaultQuizQuestions
	}
	if n > maxQuizQuestions {
		return nil, domain.NewInvalidInputError(
			fmt.Sprintf("num_questions must be at most %d", maxQuizQuestions))
	}

	level := user.EnglishLevel
	if req.ForceDifficulty != "" {
		if !domain.IsValidLevel(req.ForceDifficulty) {
			return nil, domain.NewInvalidInputError(
				fmt.Sprintf("unknown difficulty %q", req.ForceDifficulty))
		}
		level = req.ForceDifficulty
	}

	topics, weakTopics, err := s.topicPlan(user, req.Topic, n)
	if err != nil {
		return nil, err
	}

	avoid, err := s.recentQuestionTexts(ctx, userID)
	if err != nil {
		// Repeat avoidance is best effort; a store hiccup here must not
		// block generation.
		logger.Get().Warn("failed to load recent questions", zap.Error(err))
		avoid = nil
	}

	params := quizgen.PromptParams{
		Level:          level,
		Topics:         topics,
		NumQuestions:   n,
		AvoidQuestions: avoid,
		WeakTopics:     weakTopics,
	}

	questions, generated := s.generateWithModel(ctx, params)
	resp := &dto.GeneratedQuiz{
		Questions:         questions,
		GeneratedForLevel: level,
		WeakTopics:        weakTopics,
	}
	if generated {
		resp.ModelUsed = s.llm.ModelInfo().CurrentModel
	} else {
		resp.Questions = quizgen.Select(level, topics, avoid)
		resp.Fallback = true
	}
	return resp, nil
}

// topicPlan resolves the requested topic into one topic per question. Mixed
// (or empty) quizzes are weighted toward the learner's weak areas.
func (s *QuizService) topicPlan(user *domain.User, topic string, n int) (topics, weakTopics []string, err error) {
	if topic == "" || topic == domain.TopicMixed {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		topics = quizgen.TopicMix(user.Progress, n, rng)
		weakTopics = quizgen.WeakTopics(user.Progress, s.cfg.LevelUpThreshold)
		return topics, weakTopics, nil
	}
	if !domain.IsValidTopic(topic) {
		return nil, nil, domain.NewInvalidInputError(fmt.Sprintf("unknown topic %q", topic))
	}
	topics = make([]string, n)
	for i := range topics {
		topics[i] = topic
	}
	return topics, nil, nil
}

// generateWithModel runs the prompt-parse-retry loop. It reports ok=false
// when both attempts fail, which routes the caller to the static bank.
func (s *QuizService) generateWithModel(ctx context.Context, params quizgen.PromptParams) ([]domain.Question, bool) {
	l := logger.Get()

	raw, err := s.llm.Complete(ctx, quizgen.BuildPrompt(params))
	if err != nil {
		l.Warn("quiz generation call failed, using fallback bank", zap.Error(err))
		return nil, false
	}

	questions, parseErr := quizgen.Parse(raw, params)
	if parseErr == nil {
		return questions, true
	}
	l.Warn("model output rejected, retrying once", zap.Error(parseErr))

	retry, err := s.llm.Complete(ctx, quizgen.BuildRetryPrompt(params, raw, parseErr.Error()))
	if err != nil {
		l.Warn("quiz generation retry failed, using fallback bank", zap.Error(err))
		return nil, false
	}
	questions, parseErr = quizgen.Parse(retry, params)
	if parseErr != nil {
		l.Warn("retry output rejected, using fallback bank", zap.Error(parseErr))
		return nil, false
	}
	return questions, true
}

// recentQuestionTexts collects question texts from the user's latest quizzes
// for the repeat-avoidance list.
func (s *QuizService) recentQuestionTexts(ctx context.Context, userID string) ([]string, error) {
	recent, err := s.quizzes.ListRecent(ctx, userID, avoidWindow)
	if err != nil {
		return nil, err
	}
	var texts []string
	for _, quiz := range recent {
		for _, q := range quiz.Questions {
			texts = append(texts, q.QuestionText)
		}
	}
	return texts, nil
}
