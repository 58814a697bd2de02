package dto

import "time"

// SignUpRequest is the body of POST /api/auth/signup.
type SignUpRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignInRequest is the body of POST /api/auth/signin.
type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthData is returned by signup and signin.
type AuthData struct {
	UserID       string `json:"user_id"`
	SessionToken string `json:"session_token"`
	Username     string `json:"username"`
	EnglishLevel string `json:"english_level"`
}

// UpdateUsernameRequest is the body of PUT /api/auth/profile/username.
type UpdateUsernameRequest struct {
	NewUsername string `json:"new_username"`
}

// ChangePasswordRequest is the body of PUT /api/auth/profile/password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// DeleteAccountRequest is the body of DELETE /api/auth/profile.
type DeleteAccountRequest struct {
	Password string `json:"password"`
}

// UserProfile is the display projection of a user record.
type UserProfile struct {
	UserID                string             `json:"user_id"`
	Username              string             `json:"username"`
	EnglishLevel          string             `json:"english_level"`
	HasCompletedFirstQuiz bool               `json:"has_completed_first_quiz"`
	TotalQuizzes          int                `json:"total_quizzes"`
	AverageScore          float64            `json:"average_score"`
	Progress              map[string]float64 `json:"progress"`
	PreviousLevel         string             `json:"previous_level,omitempty"`
	CreatedAt             time.Time          `json:"created_at"`
	LastLogin             *time.Time         `json:"last_login,omitempty"`
}
