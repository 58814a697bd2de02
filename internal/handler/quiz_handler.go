package handler

import (
	"lingo-byte/internal/domain"
	"lingo-byte/internal/dto"
	"lingo-byte/internal/middleware"
	"lingo-byte/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler exposes the quiz catalog, generation and submission endpoints.
type QuizHandler struct {
	quiz        *service.QuizService
	progression *service.ProgressionService
}

func NewQuizHandler(quiz *service.QuizService, progression *service.ProgressionService) *QuizHandler {
	return &QuizHandler{quiz: quiz, progression: progression}
}

func (h *QuizHandler) RegisterRoutes(api fiber.Router, protected fiber.Handler) {
	api.Get("/quiz-topics/", protected, h.Topics)
	api.Post("/generate-adaptive-quiz/", protected, h.Generate)
	api.Post("/evaluate-quiz/", protected, h.Evaluate)
}

// Topics serves the static topic catalog.
func (h *QuizHandler) Topics(c *fiber.Ctx) error {
	return c.JSON(dto.OK(fiber.Map{"topics": domain.TopicCatalog()}))
}

func (h *QuizHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	principal := middleware.PrincipalFrom(c)
	quiz, err := h.quiz.Generate(c.UserContext(), principal.UserID, &req)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(quiz))
}

func (h *QuizHandler) Evaluate(c *fiber.Ctx) error {
	var req dto.SubmitQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	principal := middleware.PrincipalFrom(c)
	eval, err := h.progression.Submit(c.UserContext(), principal.UserID, &req)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(eval))
}
