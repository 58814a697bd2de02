package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"lingo-byte/internal/config"
	"lingo-byte/internal/domain"
	"lingo-byte/internal/logger"
	"lingo-byte/internal/util"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/pbkdf2"
)

const (
	pbkdf2Iterations = 100_000
	saltBytes        = 16
	sessionIDBytes   = 24

	// casRetries bounds the re-read-and-retry loop on version conflicts.
	casRetries = 3
)

// AuthService owns accounts and sessions: registration, credential checks,
// token minting and validation, profile updates and account deletion.
type AuthService struct {
	users    domain.UserRepository
	sessions domain.SessionRepository
	quizzes  domain.QuizRepository
	qa       domain.QARepository
	chats    domain.ChatLogRepository
	cfg      config.AuthConfig
	locks    *keyedMutex
	now      func() time.Time
}

func NewAuthService(
	users domain.UserRepository,
	sessions domain.SessionRepository,
	quizzes domain.QuizRepository,
	qa domain.QARepository,
	chats domain.ChatLogRepository,
	cfg config.AuthConfig,
) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		quizzes:  quizzes,
		qa:       qa,
		chats:    chats,
		cfg:      cfg,
		locks:    newKeyedMutex(),
		now:      time.Now,
	}
}

// Register creates an account and signs it in.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, string, error) {
	if !domain.ValidateUsername(username) {
		return nil, "", domain.NewInvalidUsernameError()
	}
	if !domain.ValidatePassword(password) {
		return nil, "", domain.NewWeakPasswordError()
	}

	salt, err := util.RandomToken(saltBytes)
	if err != nil {
		return nil, "", domain.NewInternalError("failed to generate salt", err)
	}

	now := s.now().UTC()
	user := &domain.User{
		ID:           util.NewULID(),
		Username:     username,
		PasswordHash: hashPassword(password, salt),
		PasswordSalt: salt,
		EnglishLevel: domain.LevelBeginner,
		Progress:     map[string]float64{},
		CreatedAt:    now,
		LastLogin:    &now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.issueSession(ctx, user)
	if err != nil {
		return nil, "", err
	}

	logger.Get().Info("user registered", zap.String("user_id", user.ID))
	return user, token, nil
}

// SignIn checks credentials and issues a fresh session.
func (s *AuthService) SignIn(ctx context.Context, username, password string) (*domain.User, string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		var de *domain.DomainError
		if errors.As(err, &de) && de.Code == domain.ErrNotFound {
			// Same error as a wrong password; do not leak which usernames
			// exist.
			return nil, "", domain.NewInvalidCredentialsError()
		}
		return nil, "", err
	}

	if !verifyPassword(password, user.PasswordSalt, user.PasswordHash) {
		return nil, "", domain.NewInvalidCredentialsError()
	}

	login := s.now().UTC()
	err = s.withUserCAS(ctx, user.ID, func(u *domain.User) error {
		u.LastLogin = &login
		return nil
	})
	if err != nil {
		logger.Get().Warn("failed to record last login", zap.String("user_id", user.ID), zap.Error(err))
	}

	token, err := s.issueSession(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Validate resolves a bearer token to the authenticated principal. Any
// failure, from a malformed envelope to a revoked session, reads as
// unauthenticated.
func (s *AuthService) Validate(ctx context.Context, token string) (*domain.Principal, error) {
	sid, err := s.openEnvelope(token)
	if err != nil {
		return nil, domain.NewUnauthenticatedError("")
	}

	session, err := s.sessions.GetByToken(ctx, sid)
	if err != nil {
		var de *domain.DomainError
		if errors.As(err, &de) && de.Code == domain.ErrNotFound {
			return nil, domain.NewUnauthenticatedError("")
		}
		return nil, err
	}
	if !session.Valid(s.now()) {
		return nil, domain.NewUnauthenticatedError("")
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		var de *domain.DomainError
		if errors.As(err, &de) && de.Code == domain.ErrNotFound {
			return nil, domain.NewUnauthenticatedError("")
		}
		return nil, err
	}

	return &domain.Principal{
		UserID:                user.ID,
		Username:              user.Username,
		EnglishLevel:          user.EnglishLevel,
		HasCompletedFirstQuiz: user.HasCompletedFirstQuiz,
	}, nil
}

// SignOut revokes the session behind the token. Idempotent; an unknown or
// garbled token is not an error.
func (s *AuthService) SignOut(ctx context.Context, token string) error {
	sid, err := s.openEnvelope(token)
	if err != nil {
		return nil
	}
	return s.sessions.Revoke(ctx, sid)
}

// UpdateUsername renames the account. Existing sessions stay valid.
func (s *AuthService) UpdateUsername(ctx context.Context, userID, newUsername string) (*domain.User, error) {
	if !domain.ValidateUsername(newUsername) {
		return nil, domain.NewInvalidUsernameError()
	}

	var updated *domain.User
	err := s.withUserCAS(ctx, userID, func(u *domain.User) error {
		u.Username = newUsername
		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ChangePassword verifies the current password, stores a fresh hash and salt,
// and revokes every session so old tokens stop working.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if !domain.ValidatePassword(newPassword) {
		return domain.NewWeakPasswordError()
	}

	salt, err := util.RandomToken(saltBytes)
	if err != nil {
		return domain.NewInternalError("failed to generate salt", err)
	}

	err = s.withUserCAS(ctx, userID, func(u *domain.User) error {
		if !verifyPassword(currentPassword, u.PasswordSalt, u.PasswordHash) {
			return domain.NewInvalidCredentialsError()
		}
		u.PasswordSalt = salt
		u.PasswordHash = hashPassword(newPassword, salt)
		return nil
	})
	if err != nil {
		return err
	}

	return s.sessions.RevokeAllForUser(ctx, userID)
}

// DeleteAccount verifies the password and removes the user with everything
// attached to it.
func (s *AuthService) DeleteAccount(ctx context.Context, userID, password string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !verifyPassword(password, user.PasswordSalt, user.PasswordHash) {
		return domain.NewInvalidCredentialsError()
	}

	// Dependent collections first; a crash mid-way leaves the account intact
	// and the deletion retryable.
	if err := s.quizzes.DeleteAllForUser(ctx, userID); err != nil {
		return err
	}
	if err := s.qa.DeleteAllForUser(ctx, userID); err != nil {
		return err
	}
	if err := s.chats.DeleteAllForUser(ctx, userID); err != nil {
		return err
	}
	if err := s.sessions.DeleteAllForUser(ctx, userID); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}

	logger.Get().Info("account deleted", zap.String("user_id", userID))
	return nil
}

// Profile returns the user record for display.
func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

// issueSession stores a fresh session and returns the signed envelope the
// client presents on later requests.
func (s *AuthService) issueSession(ctx context.Context, user *domain.User) (string, error) {
	sid, err := util.RandomToken(sessionIDBytes)
	if err != nil {
		return "", domain.NewInternalError("failed to generate session token", err)
	}

	now := s.now().UTC()
	session := &domain.Session{
		Token:     sid,
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.SessionTTL),
		IsActive:  true,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return "", err
	}

	return s.sealEnvelope(session)
}

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// sealEnvelope signs the session identifier into a compact token. The
// signature lets the middleware reject forgeries without a store round trip;
// revocation still lives in the store.
func (s *AuthService) sealEnvelope(session *domain.Session) (string, error) {
	claims := sessionClaims{
		SessionID: session.Token,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.UserID,
			IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.SigningSecret))
	if err != nil {
		return "", domain.NewInternalError("failed to sign session token", err)
	}
	return signed, nil
}

func (s *AuthService) openEnvelope(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.cfg.SigningSecret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || claims.SessionID == "" {
		return "", fmt.Errorf("missing session claim")
	}
	return claims.SessionID, nil
}

// withUserCAS re-reads the user and applies mutate under a bounded
// compare-and-set retry loop.
func (s *AuthService) withUserCAS(ctx context.Context, userID string, mutate func(*domain.User) error) error {
	unlock := s.locks.Lock(userID)
	defer unlock()

	var lastErr error
	for attempt := 0; attempt < casRetries; attempt++ {
		user, err := s.users.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if err := mutate(user); err != nil {
			return err
		}
		err = s.users.UpdateCAS(ctx, user)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrVersionConflict) {
			return err
		}
		lastErr = err
	}
	return domain.NewInternalError("user update kept conflicting", lastErr)
}

func hashPassword(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), pbkdf2Iterations, sha256.Size, sha256.New)
	return hex.EncodeToString(key)
}

func verifyPassword(password, salt, wantHash string) bool {
	got := hashPassword(password, salt)
	return subtle.ConstantTimeCompare([]byte(got), []byte(wantHash)) == 1
}
