package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/peccode-dev/peccode-api/internal/dto"
	"github.com/peccode-dev/peccode-api/internal/service"
	"github.com/peccode-dev/peccode-api/internal/utils"
)

// QuestionHandler exposes question HTTP endpoints. Listing and reading are
// public; mutations are registered behind the staff role gate.
type QuestionHandler struct {
	service service.QuestionService
	logger  zerolog.Logger
}

// NewQuestionHandler builds a new question handler.
func NewQuestionHandler(service service.QuestionService, logger zerolog.Logger) *QuestionHandler {
	return &QuestionHandler{
		service: service,
		logger:  logger.With().Str("component", "question_handler").Logger(),
	}
}

// RegisterPublic wires the read-only routes.
func (h *QuestionHandler) RegisterPublic(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.get)
}

// RegisterStaff wires the mutation routes; callers must place these behind
// the auth and staff-role middleware.
func (h *QuestionHandler) RegisterStaff(router fiber.Router) {
	router.Post("", h.create)
	router.Put("/:id", h.update)
	router.Delete("/:id", h.remove)
}

func (h *QuestionHandler) list(c *fiber.Ctx) error {
	filter := dto.QuestionFilter{
		Difficulty: c.Query("difficulty"),
		Tag:        c.Query("tag"),
		Search:     c.Query("search"),
	}

	if page, err := strconv.Atoi(strings.TrimSpace(c.Query("page"))); err == nil {
		filter.Page = page
	}
	if pageSize, err := strconv.Atoi(strings.TrimSpace(c.Query("page_size"))); err == nil {
		filter.PageSize = pageSize
	}

	questions, err := h.service.List(c.Context(), filter)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list questions")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to retrieve questions")
	}

	return utils.SendSuccess(c, "questions retrieved", questions)
}

func (h *QuestionHandler) get(c *fiber.Ctx) error {
	question, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "question not found")
		}
		h.logger.Error().Err(err).Str("question_id", c.Params("id")).Msg("failed to get question")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to retrieve question")
	}

	return utils.SendSuccess(c, "question retrieved", question)
}

func (h *QuestionHandler) create(c *fiber.Ctx) error {
	var payload dto.QuestionRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	question, err := h.service.Create(c.Context(), userIDFromContext(c), payload)
	if err != nil {
		if isValidationError(err) {
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		}
		h.logger.Error().Err(err).Msg("failed to create question")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to create question")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "question created", question)
}

func (h *QuestionHandler) update(c *fiber.Ctx) error {
	var payload dto.QuestionRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	question, err := h.service.Update(c.Context(), c.Params("id"), userIDFromContext(c), payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuestionNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "question not found or unauthorized")
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		default:
			h.logger.Error().Err(err).Str("question_id", c.Params("id")).Msg("failed to update question")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to update question")
		}
	}

	return utils.SendSuccess(c, "question updated", question)
}

func (h *QuestionHandler) remove(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id"), userIDFromContext(c)); err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "question not found or unauthorized")
		}
		h.logger.Error().Err(err).Str("question_id", c.Params("id")).Msg("failed to delete question")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to delete question")
	}

	return utils.SendSuccess(c, "question deleted successfully", nil)
}
