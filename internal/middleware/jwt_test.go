package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/peccode-dev/peccode-api/internal/auth"
	"github.com/peccode-dev/peccode-api/internal/middleware"
)

func newProtectedApp(tokens *auth.TokenManager) *fiber.App {
	app := fiber.New()
	app.Get("/", middleware.JWTProtected(tokens), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"id":   c.Locals(middleware.LocalUserID),
			"role": c.Locals(middleware.LocalUserRole),
		})
	})
	return app
}

func performWithToken(t *testing.T, app *fiber.App, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestJWTProtectedMissingHeader(t *testing.T) {
	app := newProtectedApp(auth.NewTokenManager("secret", time.Hour))

	resp := performWithToken(t, app, "")
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTProtectedInvalidToken(t *testing.T) {
	app := newProtectedApp(auth.NewTokenManager("secret", time.Hour))

	resp := performWithToken(t, app, "not.a.jwt")
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTProtectedWrongSecret(t *testing.T) {
	issuer := auth.NewTokenManager("other-secret", time.Hour)
	token, err := issuer.Issue(auth.Identity{ID: "u1", Email: "a@x.edu", Role: "student"})
	require.NoError(t, err)

	app := newProtectedApp(auth.NewTokenManager("secret", time.Hour))

	resp := performWithToken(t, app, token)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTProtectedExpiredToken(t *testing.T) {
	tokens := auth.NewTokenManager("secret", -time.Minute)
	token, err := tokens.Issue(auth.Identity{ID: "u1", Email: "a@x.edu", Role: "student"})
	require.NoError(t, err)

	app := newProtectedApp(tokens)

	resp := performWithToken(t, app, token)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTProtectedValidToken(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	token, err := tokens.Issue(auth.Identity{ID: "u1", Email: "a@x.edu", Role: "staff"})
	require.NoError(t, err)

	app := newProtectedApp(tokens)

	resp := performWithToken(t, app, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}
