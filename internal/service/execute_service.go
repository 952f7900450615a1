package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/peccode-dev/peccode-api/internal/dto"
)

// ExecuteService simulates running a code snippet. Output selection is
// plain substring matching against a few known demo inputs; there is no
// parser, interpreter or sandbox behind it.
type ExecuteService interface {
	Run(ctx context.Context, payload dto.ExecuteRequest) (dto.ExecuteResponse, error)
}

type executeService struct {
	validator *validator.Validate
	delay     time.Duration
	logger    zerolog.Logger
}

// NewExecuteService constructs the simulated runner. The delay imitates
// execution latency and is honored unless the request is cancelled first.
func NewExecuteService(validate *validator.Validate, delay time.Duration, logger zerolog.Logger) ExecuteService {
	return &executeService{
		validator: validate,
		delay:     delay,
		logger:    logger.With().Str("component", "execute_service").Logger(),
	}
}

func (s *executeService) Run(ctx context.Context, payload dto.ExecuteRequest) (dto.ExecuteResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ExecuteResponse{}, err
	}

	output := cannedOutput(strings.ToLower(strings.TrimSpace(payload.Language)), payload.Code, payload.Input)

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return dto.ExecuteResponse{}, ctx.Err()
		case <-timer.C:
		}
	}

	return dto.ExecuteResponse{Output: output}, nil
}

func cannedOutput(language, code, input string) string {
	if language == "c" {
		switch {
		case strings.Contains(code, "printf") && strings.Contains(input, "45 22 87"):
			return "Max: 91\nMin: 3\nSum: 376\nAverage: 41.78"
		case strings.Contains(code, "scanf") && strings.Contains(input, "3"):
			return "10\n20\n30"
		default:
			return "Program executed successfully. Output depends on actual C code execution."
		}
	}

	switch {
	case strings.Contains(code, "twoSum") && strings.Contains(input, "[2,7,11,15]"):
		return "[0,1]"
	case strings.Contains(code, "isValid") && strings.Contains(input, "()[]{}"):
		return "true"
	default:
		return "Program executed successfully. Output depends on actual code execution."
	}
}
