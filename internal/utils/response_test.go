package utils_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/peccode-dev/peccode-api/internal/utils"
)

func perform(t *testing.T, handler fiber.Handler) (int, utils.APIResponse) {
	t.Helper()

	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	var parsed utils.APIResponse
	require.NoError(t, json.Unmarshal(body, &parsed))
	return resp.StatusCode, parsed
}

func TestSendSuccess(t *testing.T) {
	status, parsed := perform(t, func(c *fiber.Ctx) error {
		return utils.SendSuccess(c, "profile retrieved", map[string]string{"id": "u1"})
	})

	require.Equal(t, http.StatusOK, status)
	require.True(t, parsed.Success)
	require.Equal(t, "profile retrieved", parsed.Message)
	require.Equal(t, map[string]interface{}{"id": "u1"}, parsed.Data)
}

func TestSendSuccessWithStatus(t *testing.T) {
	status, parsed := perform(t, func(c *fiber.Ctx) error {
		return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "question created", nil)
	})

	require.Equal(t, http.StatusCreated, status)
	require.True(t, parsed.Success)
	require.Nil(t, parsed.Data)
}

func TestSendSuccessDefaultsMessage(t *testing.T) {
	status, parsed := perform(t, func(c *fiber.Ctx) error {
		return utils.SendSuccess(c, "", nil)
	})

	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "success", parsed.Message)
}

func TestSendError(t *testing.T) {
	status, parsed := perform(t, func(c *fiber.Ctx) error {
		return utils.SendError(c, fiber.StatusNotFound, "question not found")
	})

	require.Equal(t, http.StatusNotFound, status)
	require.False(t, parsed.Success)
	require.Equal(t, "question not found", parsed.Message)
	require.Nil(t, parsed.Data)
}
