package handler

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/peccode-dev/peccode-api/internal/dto"
	"github.com/peccode-dev/peccode-api/internal/service"
	"github.com/peccode-dev/peccode-api/internal/utils"
)

// ExecuteHandler exposes the simulated code runner endpoint.
type ExecuteHandler struct {
	service service.ExecuteService
	logger  zerolog.Logger
}

// NewExecuteHandler builds a new execute handler.
func NewExecuteHandler(service service.ExecuteService, logger zerolog.Logger) *ExecuteHandler {
	return &ExecuteHandler{
		service: service,
		logger:  logger.With().Str("component", "execute_handler").Logger(),
	}
}

// Register wires the handler routes into the router group.
func (h *ExecuteHandler) Register(router fiber.Router) {
	router.Post("", h.run)
}

func (h *ExecuteHandler) run(c *fiber.Ctx) error {
	var payload dto.ExecuteRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.service.Run(c.Context(), payload)
	if err != nil {
		switch {
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return utils.SendError(c, fiber.StatusRequestTimeout, "execution cancelled")
		default:
			h.logger.Error().Err(err).Msg("failed to run code")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to run code")
		}
	}

	return utils.SendSuccess(c, "code executed", result)
}
