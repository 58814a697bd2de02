package handler

import (
	"lingo-byte/internal/domain"
	"lingo-byte/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// SystemHandler exposes health and model introspection endpoints. Health is
// public so monitors can probe it before any sign-in; model info is not.
type SystemHandler struct {
	llm domain.LLMClient
}

func NewSystemHandler(llm domain.LLMClient) *SystemHandler {
	return &SystemHandler{llm: llm}
}

func (h *SystemHandler) RegisterRoutes(api fiber.Router, protected fiber.Handler) {
	api.Get("/health-check/", h.HealthCheck)
	api.Get("/model-info/", protected, h.ModelInfo)
}

// HealthCheck probes the inference runtime. The endpoint itself answers 200
// either way; the body says whether the AI path is usable.
func (h *SystemHandler) HealthCheck(c *fiber.Ctx) error {
	if err := h.llm.HealthCheck(c.UserContext()); err != nil {
		return c.JSON(dto.OK(dto.HealthStatus{
			Status:  "unhealthy",
			Message: "AI model is unavailable; quizzes fall back to the static bank",
		}))
	}
	return c.JSON(dto.OK(dto.HealthStatus{
		Status:  "healthy",
		Message: "All systems operational",
	}))
}

func (h *SystemHandler) ModelInfo(c *fiber.Ctx) error {
	return c.JSON(dto.OK(h.llm.ModelInfo()))
}
