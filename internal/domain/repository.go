package domain

import (
	"context"
	"errors"
)

// ErrVersionConflict is returned by UpdateUserCAS when the stored version no
// longer matches; callers re-read and retry.
var ErrVersionConflict = errors.New("user version conflict")

// UserRepository is the port for the users collection.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	// UpdateCAS writes the user back iff the stored version equals
	// user.Version, then bumps it. Returns ErrVersionConflict otherwise.
	UpdateCAS(ctx context.Context, user *User) error
	Delete(ctx context.Context, id string) error
}

// QuizRepository is the port for the quizzes collection.
type QuizRepository interface {
	Insert(ctx context.Context, quiz *Quiz) error
	// Delete removes a quiz record. Only used to roll back a submission
	// whose paired user update could not be applied.
	Delete(ctx context.Context, id string) error
	// ListByUser returns all quizzes of a user in submission order
	// (timestamp ascending).
	ListByUser(ctx context.Context, userID string) ([]Quiz, error)
	// ListRecent returns up to limit quizzes, most recent first.
	ListRecent(ctx context.Context, userID string, limit int) ([]Quiz, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	DeleteAllForUser(ctx context.Context, userID string) error
}

// SessionRepository is the port for the user_sessions collection.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByToken(ctx context.Context, token string) (*Session, error)
	// Revoke marks a session inactive. Idempotent.
	Revoke(ctx context.Context, token string) error
	RevokeAllForUser(ctx context.Context, userID string) error
	DeleteAllForUser(ctx context.Context, userID string) error
}

// QARepository is the port for the qa_entries collection.
type QARepository interface {
	Insert(ctx context.Context, entry *QAEntry) error
	DeleteAllForUser(ctx context.Context, userID string) error
}

// ChatLogRepository is the port for the chat_logs collection.
type ChatLogRepository interface {
	Insert(ctx context.Context, log *ChatLog) error
	DeleteAllForUser(ctx context.Context, userID string) error
}
