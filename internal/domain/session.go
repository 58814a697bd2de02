package domain

import "time"

// Session is a bearer-token principal binding. The stored token is the random
// inner identifier; the value handed to clients is a signed envelope around
// it.
type Session struct {
	Token     string    `bson:"token" json:"-"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Username  string    `bson:"username" json:"username"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	IsActive  bool      `bson:"is_active" json:"is_active"`
}

// Valid reports whether the session can authenticate a request at the given
// instant.
func (s *Session) Valid(now time.Time) bool {
	return s.IsActive && now.Before(s.ExpiresAt)
}

// QAEntry is one question-answering exchange. Append-only.
type QAEntry struct {
	ID        string    `bson:"_id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Question  string    `bson:"question" json:"question"`
	Context   string    `bson:"context" json:"context"`
	Answer    string    `bson:"answer" json:"answer"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// ChatLog is a convenience transcript of one tutor exchange. The client is
// the source of truth for conversation state.
type ChatLog struct {
	ID           string    `bson:"_id" json:"id"`
	UserID       string    `bson:"user_id" json:"user_id"`
	Conversation []string  `bson:"conversation" json:"conversation"`
	Reply        string    `bson:"reply" json:"reply"`
	Timestamp    time.Time `bson:"timestamp" json:"timestamp"`
}
