package domain

import "context"

// ModelInfo describes the configured inference endpoint.
type ModelInfo struct {
	CurrentModel    string   `json:"current_model"`
	BaseURL         string   `json:"base_url"`
	TimeoutSeconds  int      `json:"timeout"`
	Temperature     float64  `json:"temperature"`
	MaxTokens       int      `json:"max_tokens"`
	AvailableModels []string `json:"available_models"`
}

// LLMClient is the port for the inference endpoint: one prompt in, raw text
// out. Implementations enforce the configured timeout; callers treat the
// returned text as untrusted.
type LLMClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
	HealthCheck(ctx context.Context) error
	ModelInfo() ModelInfo
}
