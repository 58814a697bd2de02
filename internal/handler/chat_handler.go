package handler

import (
	"lingo-byte/internal/domain"
	"lingo-byte/internal/dto"
	"lingo-byte/internal/middleware"
	"lingo-byte/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ChatHandler exposes the conversational endpoints.
type ChatHandler struct {
	chat *service.ChatService
}

func NewChatHandler(chat *service.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

func (h *ChatHandler) RegisterRoutes(api fiber.Router, protected fiber.Handler) {
	api.Post("/chat/", protected, h.Chat)
	api.Post("/teacher-chat/", protected, h.TeacherChat)
	api.Post("/ask-question/", protected, h.AskQuestion)
}

func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	principal := middleware.PrincipalFrom(c)
	reply, err := h.chat.Chat(c.UserContext(), principal.UserID, req.Conversation)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(dto.ChatReply{Reply: reply}))
}

func (h *ChatHandler) TeacherChat(c *fiber.Ctx) error {
	var req dto.TeacherChatRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	principal := middleware.PrincipalFrom(c)
	level := req.UserLevel
	if level == "" {
		level = principal.EnglishLevel
	}
	reply, err := h.chat.TeacherChat(c.UserContext(), principal.UserID, req.Message, level, req.Focus)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(dto.ChatReply{Reply: reply}))
}

func (h *ChatHandler) AskQuestion(c *fiber.Ctx) error {
	var req dto.AskQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	principal := middleware.PrincipalFrom(c)
	answer, err := h.chat.AskQuestion(c.UserContext(), principal.UserID, req.Question, req.Context)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(dto.AskQuestionResponse{Question: req.Question, Answer: answer}))
}
