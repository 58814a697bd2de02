package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lingo-byte/internal/domain"
	"lingo-byte/internal/logger"
	"lingo-byte/internal/util"

	"go.uber.org/zap"
)

// degradedReply is served when the model is unreachable. Chat stays usable as
// a surface even during an AI outage; only the content degrades.
const degradedReply = "I'm sorry, I'm having trouble responding right now. Please try again in a moment."

const tutorSystemPrompt = `You are a friendly and patient English teacher. Help the student practice English conversation.
Keep your paragraphs to 2-3 sentences and give practical examples.
Adapt your vocabulary to the student's level, correct mistakes gently, and explain grammar briefly when useful.`

// ChatService backs the conversational endpoints. The client owns the
// conversation state; the server is stateless apart from a best-effort
// transcript log.
type ChatService struct {
	llm   domain.LLMClient
	chats domain.ChatLogRepository
	qa    domain.QARepository
	now   func() time.Time
}

func NewChatService(llm domain.LLMClient, chats domain.ChatLogRepository, qa domain.QARepository) *ChatService {
	return &ChatService{llm: llm, chats: chats, qa: qa, now: time.Now}
}

// Chat answers the latest user turn of an alternating conversation.
func (s *ChatService) Chat(ctx context.Context, userID string, conversation []string) (string, error) {
	if len(conversation) == 0 {
		return "", domain.NewInvalidInputError("conversation must not be empty")
	}

	var b strings.Builder
	b.WriteString(tutorSystemPrompt)
	b.WriteString("\n\n")
	for i, turn := range conversation {
		if i%2 == 0 {
			fmt.Fprintf(&b, "Student: %s\n", turn)
		} else {
			fmt.Fprintf(&b, "Tutor: %s\n", turn)
		}
	}
	b.WriteString("Tutor:")

	reply := s.complete(ctx, b.String())
	s.logChat(ctx, userID, conversation, reply)
	return reply, nil
}

// TeacherChat answers a single message with level-aware tutoring, optionally
// focused on one skill area.
func (s *ChatService) TeacherChat(ctx context.Context, userID, message, userLevel, focus string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", domain.NewInvalidInputError("message must not be empty")
	}

	var b strings.Builder
	b.WriteString(tutorSystemPrompt)
	if domain.IsValidLevel(userLevel) {
		fmt.Fprintf(&b, "\nThe student is at %s level; adjust your vocabulary and explanations accordingly.", userLevel)
	}
	if focus != "" {
		fmt.Fprintf(&b, "\nThe student wants to focus on: %s.", focus)
	}
	fmt.Fprintf(&b, "\n\nStudent: %s\nTutor:", message)

	reply := s.complete(ctx, b.String())
	s.logChat(ctx, userID, []string{message}, reply)
	return reply, nil
}

// AskQuestion answers a free-form English question, optionally grounded in a
// context snippet, and records the exchange. Unlike chat this endpoint fails
// loudly on an AI outage; there is no useful degraded answer to a question.
func (s *ChatService) AskQuestion(ctx context.Context, userID, question, contextText string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", domain.NewInvalidInputError("question must not be empty")
	}

	var b strings.Builder
	b.WriteString("You are an expert English teacher. Answer the student's question clearly and concisely.\n")
	if contextText != "" {
		fmt.Fprintf(&b, "\nContext:\n%s\n", contextText)
	}
	fmt.Fprintf(&b, "\nQuestion: %s\nAnswer:", question)

	answer, err := s.llm.Complete(ctx, b.String())
	if err != nil {
		return "", domain.NewError(domain.ErrAIUnavailable, "The AI tutor is unavailable right now", err)
	}
	answer = strings.TrimSpace(answer)

	entry := &domain.QAEntry{
		ID:        util.NewULID(),
		UserID:    userID,
		Question:  question,
		Context:   contextText,
		Answer:    answer,
		Timestamp: s.now().UTC(),
	}
	if err := s.qa.Insert(ctx, entry); err != nil {
		// The learner already has the answer; losing the log entry is not
		// worth failing the request.
		logger.Get().Warn("failed to record qa entry", zap.String("user_id", userID), zap.Error(err))
	}
	return answer, nil
}

func (s *ChatService) complete(ctx context.Context, prompt string) string {
	reply, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		logger.Get().Warn("chat completion failed, serving degraded reply", zap.Error(err))
		return degradedReply
	}
	return strings.TrimSpace(reply)
}

func (s *ChatService) logChat(ctx context.Context, userID string, conversation []string, reply string) {
	if reply == degradedReply {
		return
	}
	log := &domain.ChatLog{
		ID:           util.NewULID(),
		UserID:       userID,
		Conversation: conversation,
		Reply:        reply,
		Timestamp:    s.now().UTC(),
	}
	if err := s.chats.Insert(ctx, log); err != nil {
		logger.Get().Warn("failed to record chat transcript", zap.String("user_id", userID), zap.Error(err))
	}
}
