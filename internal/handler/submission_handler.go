package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/peccode-dev/peccode-api/internal/dto"
	"github.com/peccode-dev/peccode-api/internal/service"
	"github.com/peccode-dev/peccode-api/internal/utils"
)

// SubmissionHandler exposes submission HTTP endpoints.
type SubmissionHandler struct {
	service service.SubmissionService
	logger  zerolog.Logger
}

// NewSubmissionHandler builds a new submission handler.
func NewSubmissionHandler(service service.SubmissionService, logger zerolog.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		service: service,
		logger:  logger.With().Str("component", "submission_handler").Logger(),
	}
}

// Register wires the handler routes into the router group.
func (h *SubmissionHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
}

func (h *SubmissionHandler) list(c *fiber.Ctx) error {
	userID := userIDFromContext(c)
	if userID == "" {
		return utils.SendError(c, fiber.StatusUnauthorized, "authentication required")
	}

	filter := dto.SubmissionFilter{
		QuestionID: c.Query("question_id"),
		Status:     c.Query("status"),
	}

	submissions, err := h.service.List(c.Context(), userID, filter)
	if err != nil {
		h.logger.Error().Err(err).Str("user_id", userID).Msg("failed to list submissions")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to retrieve submissions")
	}

	return utils.SendSuccess(c, "submissions retrieved", submissions)
}

func (h *SubmissionHandler) create(c *fiber.Ctx) error {
	userID := userIDFromContext(c)
	if userID == "" {
		return utils.SendError(c, fiber.StatusUnauthorized, "authentication required")
	}

	var payload dto.SubmissionRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	submission, err := h.service.Submit(c.Context(), userID, payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuestionNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "question not found")
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		default:
			h.logger.Error().Err(err).Str("user_id", userID).Msg("failed to record submission")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to record submission")
		}
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "submission recorded", submission)
}
