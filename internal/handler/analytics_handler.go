package handler

import (
	"lingo-byte/internal/domain"
	"lingo-byte/internal/dto"
	"lingo-byte/internal/middleware"
	"lingo-byte/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AnalyticsHandler exposes the read-side projections. All routes require a
// session, and a user can only read their own data.
type AnalyticsHandler struct {
	analytics *service.AnalyticsService
}

func NewAnalyticsHandler(analytics *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

func (h *AnalyticsHandler) RegisterRoutes(api fiber.Router, protected fiber.Handler) {
	api.Get("/user-profile/:user_id", protected, h.Profile)
	api.Get("/user-performance/", protected, h.Performance)
	api.Get("/user-performance-detailed/", protected, h.PerformanceDetailed)
}

func (h *AnalyticsHandler) Profile(c *fiber.Ctx) error {
	principal := middleware.PrincipalFrom(c)
	userID := c.Params("user_id")
	if userID != principal.UserID {
		return domain.NewError(domain.ErrForbidden, "You can only view your own profile", nil)
	}

	profile, err := h.analytics.Profile(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(profile))
}

func (h *AnalyticsHandler) Performance(c *fiber.Ctx) error {
	principal := middleware.PrincipalFrom(c)
	perf, err := h.analytics.Performance(c.UserContext(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(perf))
}

func (h *AnalyticsHandler) PerformanceDetailed(c *fiber.Ctx) error {
	principal := middleware.PrincipalFrom(c)
	detailed, err := h.analytics.PerformanceDetailed(c.UserContext(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(detailed))
}
