package handler

import (
	"lingo-byte/internal/domain"
	"lingo-byte/internal/dto"
	"lingo-byte/internal/middleware"
	"lingo-byte/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler exposes account and session endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// RegisterRoutes mounts the auth endpoints. Only signup and signin are
// reachable without a session.
func (h *AuthHandler) RegisterRoutes(api fiber.Router, protected fiber.Handler) {
	auth := api.Group("/auth")
	auth.Post("/signup", h.SignUp)
	auth.Post("/signin", h.SignIn)
	auth.Post("/logout", protected, h.Logout)
	auth.Get("/validate", protected, h.ValidateSession)

	profile := auth.Group("/profile", protected)
	profile.Get("/", h.Profile)
	profile.Put("/username", h.UpdateUsername)
	profile.Put("/password", h.ChangePassword)
	profile.Delete("/", h.DeleteAccount)
}

// ValidateSession lets clients check a stored token without any side effect.
// The protected middleware has already done the work.
func (h *AuthHandler) ValidateSession(c *fiber.Ctx) error {
	return c.JSON(dto.OK(middleware.PrincipalFrom(c)))
}

func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	principal := middleware.PrincipalFrom(c)
	user, err := h.auth.Profile(c.UserContext(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(dto.UserProfile{
		UserID:                user.ID,
		Username:              user.Username,
		EnglishLevel:          user.EnglishLevel,
		HasCompletedFirstQuiz: user.HasCompletedFirstQuiz,
		TotalQuizzes:          user.TotalQuizzes,
		AverageScore:          user.AverageScore,
		Progress:              user.Progress,
		PreviousLevel:         user.PreviousLevel,
		CreatedAt:             user.CreatedAt,
		LastLogin:             user.LastLogin,
	}))
}

func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var req dto.SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	user, token, err := h.auth.Register(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(dto.AuthData{
		UserID:       user.ID,
		SessionToken: token,
		Username:     user.Username,
		EnglishLevel: user.EnglishLevel,
	}))
}

func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var req dto.SignInRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	user, token, err := h.auth.SignIn(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(dto.AuthData{
		UserID:       user.ID,
		SessionToken: token,
		Username:     user.Username,
		EnglishLevel: user.EnglishLevel,
	}))
}

// Logout revokes the presented session. Succeeds even when the token is
// already revoked or unknown.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if token := middleware.BearerToken(c); token != "" {
		if err := h.auth.SignOut(c.UserContext(), token); err != nil {
			return err
		}
	}
	return c.JSON(dto.OK(fiber.Map{"message": "Logged out"}))
}

func (h *AuthHandler) UpdateUsername(c *fiber.Ctx) error {
	var req dto.UpdateUsernameRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	principal := middleware.PrincipalFrom(c)
	user, err := h.auth.UpdateUsername(c.UserContext(), principal.UserID, req.NewUsername)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(fiber.Map{"username": user.Username}))
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	principal := middleware.PrincipalFrom(c)
	err := h.auth.ChangePassword(c.UserContext(), principal.UserID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(fiber.Map{"message": "Password changed; please sign in again"}))
}

func (h *AuthHandler) DeleteAccount(c *fiber.Ctx) error {
	var req dto.DeleteAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	principal := middleware.PrincipalFrom(c)
	if err := h.auth.DeleteAccount(c.UserContext(), principal.UserID, req.Password); err != nil {
		return err
	}
	return c.JSON(dto.OK(fiber.Map{"message": "Account deleted"}))
}
