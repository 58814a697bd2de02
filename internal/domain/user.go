package domain

import (
	"regexp"
	"time"
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	letterPattern   = regexp.MustCompile(`[a-zA-Z]`)
	digitPattern    = regexp.MustCompile(`[0-9]`)
)

// User is a learner account. Cached aggregates (TotalQuizzes, AverageScore,
// Progress) must stay equal to what the quiz records imply; the analytics
// aggregator reconciles them if they ever drift.
type User struct {
	ID                    string             `bson:"_id" json:"user_id"`
	Username              string             `bson:"username" json:"username"`
	PasswordHash          string             `bson:"password_hash" json:"-"`
	PasswordSalt          string             `bson:"password_salt" json:"-"`
	EnglishLevel          string             `bson:"english_level" json:"english_level"`
	HasCompletedFirstQuiz bool               `bson:"has_completed_first_quiz" json:"has_completed_first_quiz"`
	TotalQuizzes          int                `bson:"total_quizzes" json:"total_quizzes"`
	AverageScore          float64            `bson:"average_score" json:"average_score"`
	Progress              map[string]float64 `bson:"progress" json:"progress"`
	PreviousLevel         string             `bson:"previous_level,omitempty" json:"previous_level,omitempty"`
	LevelChangedAt        *time.Time         `bson:"level_changed_at,omitempty" json:"-"`
	// Version is bumped on every write; user updates go through a
	// compare-and-set on it.
	Version   int64      `bson:"version" json:"-"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	LastLogin *time.Time `bson:"last_login,omitempty" json:"last_login,omitempty"`
}

// ValidateUsername checks the 3-20 chars alphanumeric+underscore rule.
func ValidateUsername(username string) bool {
	if len(username) < 3 || len(username) > 20 {
		return false
	}
	return usernamePattern.MatchString(username)
}

// ValidatePassword checks length >= 8 with at least one letter and one digit.
func ValidatePassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	return letterPattern.MatchString(password) && digitPattern.MatchString(password)
}

// Principal is the authenticated identity attached to a request.
type Principal struct {
	UserID                string `json:"user_id"`
	Username              string `json:"username"`
	EnglishLevel          string `json:"english_level"`
	HasCompletedFirstQuiz bool   `json:"has_completed_first_quiz"`
}
