package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"lingo-byte/internal/cache"
	"lingo-byte/internal/domain"
	"lingo-byte/internal/dto"
	"lingo-byte/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// analyticsCacheTTL bounds staleness of the detailed projection between the
// explicit invalidations done on submission.
const analyticsCacheTTL = 5 * time.Minute

// AnalyticsService serves read-side projections of a learner's history. The
// quiz records are the source of truth; cached aggregates on the user record
// are reconciled whenever a read finds them drifted.
type AnalyticsService struct {
	users   domain.UserRepository
	quizzes domain.QuizRepository
	cache   domain.Cache // optional, may be nil
}

func NewAnalyticsService(users domain.UserRepository, quizzes domain.QuizRepository, cacheClient domain.Cache) *AnalyticsService {
	return &AnalyticsService{users: users, quizzes: quizzes, cache: cacheClient}
}

// Profile returns the display projection of the user record.
func (s *AnalyticsService) Profile(ctx context.Context, userID string) (*dto.UserProfile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.UserProfile{
		UserID:                user.ID,
		Username:              user.Username,
		EnglishLevel:          user.EnglishLevel,
		HasCompletedFirstQuiz: user.HasCompletedFirstQuiz,
		TotalQuizzes:          user.TotalQuizzes,
		AverageScore:          user.AverageScore,
		Progress:              user.Progress,
		PreviousLevel:         user.PreviousLevel,
		CreatedAt:             user.CreatedAt,
		LastLogin:             user.LastLogin,
	}, nil
}

// Performance returns the basic metrics, derived from the quiz records rather
// than the user's cached aggregates.
func (s *AnalyticsService) Performance(ctx context.Context, userID string) (*dto.Performance, error) {
	user, quizzes, err := s.fetch(ctx, userID)
	if err != nil {
		return nil, err
	}

	perf := &dto.Performance{
		TotalQuizzes: len(quizzes),
		AverageScore: averageScore(quizzes),
		EnglishLevel: user.EnglishLevel,
	}
	s.reconcile(ctx, user, quizzes)
	return perf, nil
}

// PerformanceDetailed returns the full breakdown: per-topic performance, quiz
// counts per difficulty and the chronological history. The per-topic
// percentage uses the same mean-of-percentages definition as user.Progress,
// so the two surfaces always agree; the raw correct/total counts ride along
// for display.
func (s *AnalyticsService) PerformanceDetailed(ctx context.Context, userID string) (*dto.PerformanceDetailed, error) {
	if cached := s.cacheGet(ctx, userID); cached != nil {
		return cached, nil
	}

	user, quizzes, err := s.fetch(ctx, userID)
	if err != nil {
		return nil, err
	}

	topicPerf := make(map[string]dto.TopicPerformanceEntry)
	correct := make(map[string]int)
	total := make(map[string]int)
	levelCounts := make(map[string]int)
	history := make([]dto.QuizHistoryEntry, len(quizzes))

	for i, q := range quizzes {
		for topic, ts := range q.TopicPerformance {
			if ts.Total == 0 {
				continue
			}
			correct[topic] += ts.Correct
			total[topic] += ts.Total
		}
		if q.Difficulty != "" {
			levelCounts[q.Difficulty]++
		}
		history[i] = dto.QuizHistoryEntry{
			QuizNumber: i + 1,
			Score:      q.Score,
			Topic:      q.Topic,
			Difficulty: q.Difficulty,
			Timestamp:  q.Timestamp,
		}
	}
	progress := topicProgress(quizzes)
	for topic := range total {
		topicPerf[topic] = dto.TopicPerformanceEntry{
			Percentage: progress[topic],
			Correct:    correct[topic],
			Total:      total[topic],
		}
	}

	detailed := &dto.PerformanceDetailed{
		Performance: dto.Performance{
			TotalQuizzes: len(quizzes),
			AverageScore: averageScore(quizzes),
			EnglishLevel: user.EnglishLevel,
		},
		TopicPerformance: topicPerf,
		LevelCounts:      levelCounts,
		QuizHistory:      history,
	}

	s.reconcile(ctx, user, quizzes)
	s.cacheSet(ctx, userID, detailed)
	return detailed, nil
}

// fetch loads the user record and the full quiz history concurrently.
func (s *AnalyticsService) fetch(ctx context.Context, userID string) (*domain.User, []domain.Quiz, error) {
	var (
		user    *domain.User
		quizzes []domain.Quiz
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = s.users.GetByID(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		quizzes, err = s.quizzes.ListByUser(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return user, quizzes, nil
}

// reconcile writes derived aggregates back to the user record when they have
// drifted, for example after a crash between a quiz insert and its user
// update. Best effort: a conflicting concurrent write wins.
func (s *AnalyticsService) reconcile(ctx context.Context, user *domain.User, quizzes []domain.Quiz) {
	derivedAvg := averageScore(quizzes)
	if user.TotalQuizzes == len(quizzes) && user.AverageScore == derivedAvg {
		return
	}

	logger.Get().Warn("user aggregates drifted from quiz records, reconciling",
		zap.String("user_id", user.ID),
		zap.Int("stored_total", user.TotalQuizzes),
		zap.Int("derived_total", len(quizzes)))

	user.TotalQuizzes = len(quizzes)
	user.AverageScore = derivedAvg
	user.Progress = topicProgress(quizzes)
	if len(quizzes) > 0 {
		user.HasCompletedFirstQuiz = true
	}

	err := s.users.UpdateCAS(ctx, user)
	if err != nil && !errors.Is(err, domain.ErrVersionConflict) {
		logger.Get().Warn("failed to reconcile user aggregates",
			zap.String("user_id", user.ID), zap.Error(err))
	}
}

func (s *AnalyticsService) cacheGet(ctx context.Context, userID string) *dto.PerformanceDetailed {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, cache.PerformanceDetailedKey(userID))
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("analytics cache read failed", zap.Error(err))
		}
		return nil
	}
	var detailed dto.PerformanceDetailed
	if err := json.Unmarshal([]byte(raw), &detailed); err != nil {
		logger.Get().Warn("analytics cache entry corrupt, ignoring", zap.Error(err))
		return nil
	}
	return &detailed
}

func (s *AnalyticsService) cacheSet(ctx context.Context, userID string, detailed *dto.PerformanceDetailed) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(detailed)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cache.PerformanceDetailedKey(userID), string(raw), analyticsCacheTTL); err != nil {
		logger.Get().Warn("analytics cache write failed", zap.Error(err))
	}
}
