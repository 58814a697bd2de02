package dto

// ChatRequest is the body of POST /api/chat/. Conversation alternates
// user/assistant turns and ends with the user's latest message.
type ChatRequest struct {
	Conversation []string `json:"conversation"`
}

// TeacherChatRequest is the body of POST /api/teacher-chat/.
type TeacherChatRequest struct {
	Message   string `json:"message"`
	UserLevel string `json:"user_level"`
	Focus     string `json:"focus"`
}

// ChatReply carries the tutor's answer. On an AI outage Reply holds an
// apologetic placeholder rather than failing the request.
type ChatReply struct {
	Reply string `json:"reply"`
}

// AskQuestionRequest is the body of POST /api/ask-question/.
type AskQuestionRequest struct {
	Question string `json:"question"`
	Context  string `json:"context"`
}

// AskQuestionResponse returns the assistant's answer.
type AskQuestionResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// HealthStatus is the body of GET /api/health-check/.
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
