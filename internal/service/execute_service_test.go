package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/peccode-dev/peccode-api/internal/dto"
)

func newExecuteService(delay time.Duration) ExecuteService {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return NewExecuteService(validate, delay, zerolog.Nop())
}

func TestExecuteServiceCannedOutputs(t *testing.T) {
	svc := newExecuteService(0)

	cases := []struct {
		name    string
		request dto.ExecuteRequest
		output  string
	}{
		{
			name: "two sum demo",
			request: dto.ExecuteRequest{
				Language: "python",
				Code:     "def twoSum(nums, target): ...",
				Input:    "[2,7,11,15], target = 9",
			},
			output: "[0,1]",
		},
		{
			name: "valid parentheses demo",
			request: dto.ExecuteRequest{
				Language: "python",
				Code:     "def isValid(s): ...",
				Input:    "()[]{}",
			},
			output: "true",
		},
		{
			name: "c aggregate demo",
			request: dto.ExecuteRequest{
				Language: "c",
				Code:     `printf("%d", max);`,
				Input:    "45 22 87 3 91",
			},
			output: "Max: 91\nMin: 3\nSum: 376\nAverage: 41.78",
		},
		{
			name: "c scanf demo",
			request: dto.ExecuteRequest{
				Language: "c",
				Code:     `scanf("%d", &n);`,
				Input:    "3",
			},
			output: "10\n20\n30",
		},
		{
			name: "unknown c program",
			request: dto.ExecuteRequest{
				Language: "c",
				Code:     "int main() { return 0; }",
				Input:    "",
			},
			output: "Program executed successfully. Output depends on actual C code execution.",
		},
		{
			name: "unknown program",
			request: dto.ExecuteRequest{
				Language: "python",
				Code:     "print('hi')",
				Input:    "",
			},
			output: "Program executed successfully. Output depends on actual code execution.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := svc.Run(context.Background(), tc.request)
			require.NoError(t, err)
			require.Equal(t, tc.output, result.Output)
		})
	}
}

func TestExecuteServiceHonorsCancellation(t *testing.T) {
	svc := newExecuteService(5 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := svc.Run(ctx, dto.ExecuteRequest{Language: "python", Code: "print('hi')"})
	require.Error(t, err)
	require.Less(t, time.Since(start), time.Second)
}

func TestExecuteServiceValidatesPayload(t *testing.T) {
	svc := newExecuteService(0)

	_, err := svc.Run(context.Background(), dto.ExecuteRequest{Language: "", Code: ""})
	require.Error(t, err)
}
