package middleware

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"lingo-byte/internal/domain"
	"lingo-byte/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator struct {
	principal *domain.Principal
}

func (s *stubValidator) Validate(_ context.Context, token string) (*domain.Principal, error) {
	if token == "good-token" {
		return s.principal, nil
	}
	return nil, domain.NewUnauthenticatedError("")
}

func newTestApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	validator := &stubValidator{principal: &domain.Principal{
		UserID:   "u1",
		Username: "alice",
	}}
	app.Get("/protected", Protected(validator), func(c *fiber.Ctx) error {
		return c.JSON(dto.OK(PrincipalFrom(c)))
	})
	return app
}

func TestProtectedAllowsValidToken(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer good-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var env dto.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.True(t, env.Success)
}

func TestProtectedRejectsMissingOrBadToken(t *testing.T) {
	app := newTestApp()

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic abc"},
		{"bad token", "Bearer nope"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tc.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tc.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

			var env dto.Envelope
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
			assert.False(t, env.Success)
			require.NotNil(t, env.Error)
			assert.Equal(t, "unauthenticated", env.Error.Kind)
		})
	}
}

func TestErrorHandlerStatusMapping(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	errs := map[string]error{
		"/invalid":     domain.NewInvalidInputError("bad"),
		"/notfound":    domain.NewNotFoundError("missing"),
		"/taken":       domain.NewUsernameTakenError("alice"),
		"/credentials": domain.NewInvalidCredentialsError(),
		"/store":       domain.NewStoreUnavailableError(nil),
		"/internal":    domain.NewInternalError("boom", nil),
	}
	for path, err := range errs {
		failErr := err
		app.Get(path, func(c *fiber.Ctx) error { return failErr })
	}

	cases := []struct {
		path   string
		status int
		kind   string
	}{
		{"/invalid", fiber.StatusBadRequest, "invalid_input"},
		{"/notfound", fiber.StatusNotFound, "not_found"},
		{"/taken", fiber.StatusConflict, "username_taken"},
		{"/credentials", fiber.StatusUnauthorized, "invalid_credentials"},
		{"/store", fiber.StatusServiceUnavailable, "store_unavailable"},
		{"/internal", fiber.StatusInternalServerError, "internal_error"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tc.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)

			var env dto.Envelope
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
			assert.False(t, env.Success)
			require.NotNil(t, env.Error)
			assert.Equal(t, tc.kind, env.Error.Kind)
		})
	}
}
