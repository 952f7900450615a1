package dto

// ExecuteRequest carries a code snippet for a simulated run.
type ExecuteRequest struct {
	Language string `json:"language" validate:"required,min=1,max=32"`
	Code     string `json:"code" validate:"required"`
	Input    string `json:"input"`
}

// ExecuteResponse carries the simulated program output.
type ExecuteResponse struct {
	Output string `json:"output"`
}
