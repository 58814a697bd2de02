package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"lingo-byte/internal/domain"
)

// In-memory repository fakes. They reproduce the store semantics the
// services rely on: version-guarded user writes, timestamp-ordered quiz
// listings and token-keyed sessions.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]domain.User
	// forceConflicts makes the next N UpdateCAS calls fail with a version
	// conflict regardless of the actual version.
	forceConflicts int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == user.Username {
			return domain.NewUsernameTakenError(user.Username)
		}
	}
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, domain.NewNotFoundError("user not found")
	}
	copied := u
	return &copied, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			copied := u
			return &copied, nil
		}
	}
	return nil, domain.NewNotFoundError("user not found")
}

func (f *fakeUserRepo) UpdateCAS(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.forceConflicts > 0 {
		f.forceConflicts--
		return domain.ErrVersionConflict
	}

	stored, ok := f.users[user.ID]
	if !ok {
		return domain.ErrVersionConflict
	}
	if stored.Version != user.Version {
		return domain.ErrVersionConflict
	}
	for id, u := range f.users {
		if id != user.ID && u.Username == user.Username {
			return domain.NewUsernameTakenError(user.Username)
		}
	}
	user.Version++
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
	return nil
}

type fakeQuizRepo struct {
	mu      sync.Mutex
	quizzes []domain.Quiz
}

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{}
}

func (f *fakeQuizRepo) Insert(_ context.Context, quiz *domain.Quiz) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.quizzes = append(f.quizzes, *quiz)
	return nil
}

func (f *fakeQuizRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, q := range f.quizzes {
		if q.ID == id {
			f.quizzes = append(f.quizzes[:i], f.quizzes[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeQuizRepo) ListByUser(_ context.Context, userID string) ([]domain.Quiz, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Quiz
	for _, q := range f.quizzes {
		if q.UserID == userID {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (f *fakeQuizRepo) ListRecent(ctx context.Context, userID string, limit int) ([]domain.Quiz, error) {
	all, _ := f.ListByUser(ctx, userID)
	sort.Slice(all, func(i, j int) bool { return all[i].Timestamp.After(all[j].Timestamp) })
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeQuizRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	all, _ := f.ListByUser(ctx, userID)
	return int64(len(all)), nil
}

func (f *fakeQuizRepo) DeleteAllForUser(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	var kept []domain.Quiz
	for _, q := range f.quizzes {
		if q.UserID != userID {
			kept = append(kept, q)
		}
	}
	f.quizzes = kept
	return nil
}

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]domain.Session)}
}

func (f *fakeSessionRepo) Create(_ context.Context, session *domain.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[session.Token] = *session
	return nil
}

func (f *fakeSessionRepo) GetByToken(_ context.Context, token string) (*domain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[token]
	if !ok {
		return nil, domain.NewNotFoundError("session not found")
	}
	copied := s
	return &copied, nil
}

func (f *fakeSessionRepo) Revoke(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.sessions[token]; ok {
		s.IsActive = false
		f.sessions[token] = s
	}
	return nil
}

func (f *fakeSessionRepo) RevokeAllForUser(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for token, s := range f.sessions {
		if s.UserID == userID {
			s.IsActive = false
			f.sessions[token] = s
		}
	}
	return nil
}

func (f *fakeSessionRepo) DeleteAllForUser(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for token, s := range f.sessions {
		if s.UserID == userID {
			delete(f.sessions, token)
		}
	}
	return nil
}

func (f *fakeSessionRepo) countForUser(userID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, s := range f.sessions {
		if s.UserID == userID {
			n++
		}
	}
	return n
}

type fakeQARepo struct {
	mu      sync.Mutex
	entries []domain.QAEntry
}

func newFakeQARepo() *fakeQARepo { return &fakeQARepo{} }

func (f *fakeQARepo) Insert(_ context.Context, entry *domain.QAEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeQARepo) DeleteAllForUser(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	var kept []domain.QAEntry
	for _, e := range f.entries {
		if e.UserID != userID {
			kept = append(kept, e)
		}
	}
	f.entries = kept
	return nil
}

type fakeChatLogRepo struct {
	mu   sync.Mutex
	logs []domain.ChatLog
}

func newFakeChatLogRepo() *fakeChatLogRepo { return &fakeChatLogRepo{} }

func (f *fakeChatLogRepo) Insert(_ context.Context, log *domain.ChatLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logs = append(f.logs, *log)
	return nil
}

func (f *fakeChatLogRepo) DeleteAllForUser(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	var kept []domain.ChatLog
	for _, l := range f.logs {
		if l.UserID != userID {
			kept = append(kept, l)
		}
	}
	f.logs = kept
	return nil
}

// fakeLLM serves queued responses in order. An entry with err set fails the
// call; once the queue runs dry every call fails.
type fakeLLM struct {
	mu    sync.Mutex
	queue []llmReply
	calls int
	model string
}

type llmReply struct {
	text string
	err  error
}

func newFakeLLM(model string) *fakeLLM {
	return &fakeLLM{model: model}
}

func (f *fakeLLM) enqueue(text string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queue = append(f.queue, llmReply{text: text, err: err})
}

func (f *fakeLLM) Complete(_ context.Context, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if len(f.queue) == 0 {
		return "", context.DeadlineExceeded
	}
	reply := f.queue[0]
	f.queue = f.queue[1:]
	return reply.text, reply.err
}

func (f *fakeLLM) HealthCheck(_ context.Context) error { return nil }

func (f *fakeLLM) ModelInfo() domain.ModelInfo {
	return domain.ModelInfo{CurrentModel: f.model}
}

func (f *fakeLLM) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeCache struct {
	mu      sync.Mutex
	entries map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]string)}
}

func (f *fakeCache) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.entries[key]
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return v, nil
}

func (f *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[key] = value
	return nil
}

func (f *fakeCache) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, key)
	return nil
}

func (f *fakeCache) Ping(_ context.Context) error { return nil }
