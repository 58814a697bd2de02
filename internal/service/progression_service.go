package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lingo-byte/internal/cache"
	"lingo-byte/internal/config"
	"lingo-byte/internal/domain"
	"lingo-byte/internal/dto"
	"lingo-byte/internal/logger"
	"lingo-byte/internal/util"

	"go.uber.org/zap"
)

// ProgressionService grades quiz submissions, keeps the user's aggregates in
// step with the quiz records, and moves the proficiency level when a window
// of recent results crosses a threshold.
type ProgressionService struct {
	users   domain.UserRepository
	quizzes domain.QuizRepository
	cache   domain.Cache // optional, may be nil
	cfg     config.LearningConfig
	locks   *keyedMutex
	now     func() time.Time
}

func NewProgressionService(
	users domain.UserRepository,
	quizzes domain.QuizRepository,
	cacheClient domain.Cache,
	cfg config.LearningConfig,
) *ProgressionService {
	return &ProgressionService{
		users:   users,
		quizzes: quizzes,
		cache:   cacheClient,
		cfg:     cfg,
		locks:   newKeyedMutex(),
		now:     time.Now,
	}
}

// Submit grades one quiz attempt, persists it, and folds it into the user's
// aggregates. The quiz record and the user update stand or fall together: if
// the user write cannot be applied, the quiz record is removed again.
func (s *ProgressionService) Submit(ctx context.Context, userID string, req *dto.SubmitQuizRequest) (*dto.QuizEvaluation, error) {
	quiz, err := s.buildQuiz(userID, req)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	if err := s.quizzes.Insert(ctx, quiz); err != nil {
		return nil, err
	}

	eval, err := s.applySubmission(ctx, userID, quiz)
	if err != nil {
		if delErr := s.quizzes.Delete(ctx, quiz.ID); delErr != nil {
			logger.Get().Error("failed to roll back quiz record",
				zap.String("quiz_id", quiz.ID), zap.Error(delErr))
		}
		return nil, err
	}

	s.invalidateAnalytics(ctx, userID)
	return eval, nil
}

// buildQuiz converts the submission into a graded quiz record. Every derived
// field is recomputed server-side.
func (s *ProgressionService) buildQuiz(userID string, req *dto.SubmitQuizRequest) (*domain.Quiz, error) {
	topic := req.Topic
	if topic == "" {
		topic = domain.TopicMixed
	}
	if topic != domain.TopicMixed && !domain.IsValidTopic(topic) {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("unknown topic %q", topic))
	}

	quizType := req.QuizType
	if quizType == "" {
		quizType = domain.QuizTypeAdaptive
	}
	if quizType != domain.QuizTypeAdaptive && quizType != domain.QuizTypeStatic {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("unknown quiz type %q", quizType))
	}

	questions := make([]domain.Question, len(req.QuizData.Questions))
	for i, q := range req.QuizData.Questions {
		questions[i] = domain.Question{
			QuestionText:  q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			UserAnswer:    q.UserAnswer,
			Explanation:   q.Explanation,
			Topic:         q.Topic,
			Difficulty:    q.Difficulty,
			Passage:       q.Passage,
		}
	}

	quiz := &domain.Quiz{
		ID:         util.NewULID(),
		UserID:     userID,
		QuizType:   quizType,
		Topic:      topic,
		Difficulty: req.Difficulty,
		Questions:  questions,
		Timestamp:  s.now().UTC(),
	}
	if err := quiz.Validate(); err != nil {
		return nil, err
	}
	quiz.Grade()
	return quiz, nil
}

// applySubmission recomputes the aggregates from the full quiz history and
// writes them back under compare-and-set, retrying on conflicts.
func (s *ProgressionService) applySubmission(ctx context.Context, userID string, quiz *domain.Quiz) (*dto.QuizEvaluation, error) {
	var lastErr error
	for attempt := 0; attempt < casRetries; attempt++ {
		user, err := s.users.GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		history, err := s.quizzes.ListByUser(ctx, userID)
		if err != nil {
			return nil, err
		}

		eval := s.fold(user, history, quiz)

		err = s.users.UpdateCAS(ctx, user)
		if err == nil {
			return eval, nil
		}
		if !errors.Is(err, domain.ErrVersionConflict) {
			return nil, err
		}
		lastErr = err
	}
	return nil, domain.NewInternalError("user update kept conflicting", lastErr)
}

// fold mutates user in place from the complete history (which includes the
// just-inserted quiz) and returns the evaluation response.
func (s *ProgressionService) fold(user *domain.User, history []domain.Quiz, quiz *domain.Quiz) *dto.QuizEvaluation {
	user.TotalQuizzes = len(history)
	user.AverageScore = averageScore(history)
	user.Progress = topicProgress(history)
	user.HasCompletedFirstQuiz = true

	changed, changeType := s.evaluateLevel(user, history, quiz.Timestamp)

	eval := &dto.QuizEvaluation{
		Score:                 quiz.Score,
		CurrentLevel:          user.EnglishLevel,
		TotalQuizzes:          user.TotalQuizzes,
		AverageScore:          user.AverageScore,
		TopicPerformance:      quiz.TopicPerformance,
		HasCompletedFirstQuiz: true,
	}
	if changed {
		eval.LevelChanged = true
		eval.LevelChangeType = changeType
		eval.PreviousLevel = user.PreviousLevel
		eval.LevelChangeMessage = levelChangeMessage(changeType, user.PreviousLevel, user.EnglishLevel)
	}
	return eval
}

// evaluateLevel applies the windowed threshold rule: the most recent
// MinQuizzesForLevelChange quizzes taken after the last level change decide,
// at least that many must have accumulated, and the level moves at most one
// step per submission.
func (s *ProgressionService) evaluateLevel(user *domain.User, history []domain.Quiz, submittedAt time.Time) (bool, string) {
	var window []domain.Quiz
	for _, q := range history {
		if user.LevelChangedAt != nil && !q.Timestamp.After(*user.LevelChangedAt) {
			continue
		}
		window = append(window, q)
	}
	if len(window) < s.cfg.MinQuizzesForLevelChange {
		return false, ""
	}
	// Older results inform the average score but not the level.
	window = window[len(window)-s.cfg.MinQuizzesForLevelChange:]

	avg := averageScore(window)
	switch {
	case avg >= s.cfg.LevelUpThreshold:
		next := domain.NextLevel(user.EnglishLevel)
		if next == user.EnglishLevel {
			return false, ""
		}
		s.transition(user, next, submittedAt)
		return true, domain.LevelChangeProgression
	case avg <= s.cfg.LevelDownThreshold:
		prev := domain.PrevLevel(user.EnglishLevel)
		if prev == user.EnglishLevel {
			return false, ""
		}
		s.transition(user, prev, submittedAt)
		return true, domain.LevelChangeRetrocession
	}
	return false, ""
}

func (s *ProgressionService) transition(user *domain.User, newLevel string, at time.Time) {
	user.PreviousLevel = user.EnglishLevel
	user.EnglishLevel = newLevel
	// Restart the evaluation window; results from the old level do not count
	// toward the next change.
	changedAt := at
	user.LevelChangedAt = &changedAt

	logger.Get().Info("level changed",
		zap.String("user_id", user.ID),
		zap.String("from", user.PreviousLevel),
		zap.String("to", newLevel))
}

func (s *ProgressionService) invalidateAnalytics(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cache.PerformanceDetailedKey(userID)); err != nil {
		logger.Get().Warn("failed to invalidate analytics cache",
			zap.String("user_id", userID), zap.Error(err))
	}
}

func levelChangeMessage(changeType, prevLevel, newLevel string) string {
	if changeType == domain.LevelChangeProgression {
		return fmt.Sprintf("Congratulations! You've progressed from %s to %s level!", prevLevel, newLevel)
	}
	return fmt.Sprintf("Your level has changed from %s to %s. Keep practicing to improve!", prevLevel, newLevel)
}

// averageScore is the mean quiz score rounded to one decimal.
func averageScore(quizzes []domain.Quiz) float64 {
	if len(quizzes) == 0 {
		return 0
	}
	sum := 0
	for _, q := range quizzes {
		sum += q.Score
	}
	return util.Round1(float64(sum) / float64(len(quizzes)))
}

// topicProgress is the mean of per-quiz topic percentages: each quiz that
// touches a topic contributes its percentage for that topic with equal
// weight, regardless of how many questions it held.
func topicProgress(quizzes []domain.Quiz) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, q := range quizzes {
		for topic, ts := range q.TopicPerformance {
			if ts.Total == 0 {
				continue
			}
			sums[topic] += util.Percent(ts.Correct, ts.Total)
			counts[topic]++
		}
	}

	progress := make(map[string]float64, len(sums))
	for topic, sum := range sums {
		progress[topic] = util.Round1(sum / float64(counts[topic]))
	}
	return progress
}
