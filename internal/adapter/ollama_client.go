package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"lingo-byte/internal/config"
	"lingo-byte/internal/domain"
	"lingo-byte/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
)

// OllamaClient implements domain.LLMClient against a local Ollama server.
type OllamaClient struct {
	llm *ollama.LLM
	cfg config.LLMConfig
}

// NewOllamaClient builds the client once at startup. The HTTP client timeout
// is the configured LLM timeout; generation is additionally bounded by the
// request context so a disconnected client cancels the call.
func NewOllamaClient(cfg config.LLMConfig) (*OllamaClient, error) {
	httpClient := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     30 * time.Second,
		},
	}

	llm, err := ollama.New(
		ollama.WithServerURL(cfg.BaseURL),
		ollama.WithModel(cfg.Model),
		ollama.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	return &OllamaClient{llm: llm, cfg: cfg}, nil
}

// Complete sends a single prompt and returns the raw model text.
func (c *OllamaClient) Complete(ctx context.Context, prompt string) (string, error) {
	l := logger.Get()

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	start := time.Now()
	response, err := c.llm.Call(ctx, prompt,
		llms.WithTemperature(c.cfg.Temperature),
		llms.WithMaxTokens(c.cfg.MaxTokens),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			l.Warn("LLM request timed out",
				zap.Duration("timeout", c.cfg.Timeout),
				zap.String("model", c.cfg.Model))
			return "", fmt.Errorf("LLM request timed out: %w", err)
		}
		l.Warn("LLM call failed", zap.Error(err), zap.String("model", c.cfg.Model))
		return "", fmt.Errorf("LLM call failed: %w", err)
	}

	l.Debug("LLM call completed",
		zap.Duration("duration", time.Since(start)),
		zap.Int("response_chars", len(response)))
	return response, nil
}

// HealthCheck probes the model with a tiny prompt and a short deadline.
func (c *OllamaClient) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := c.llm.Call(ctx, "Test",
		llms.WithTemperature(0.1),
		llms.WithMaxTokens(5),
	)
	return err
}

// ModelInfo returns the configured endpoint description.
func (c *OllamaClient) ModelInfo() domain.ModelInfo {
	return domain.ModelInfo{
		CurrentModel:    c.cfg.Model,
		BaseURL:         c.cfg.BaseURL,
		TimeoutSeconds:  int(c.cfg.Timeout.Seconds()),
		Temperature:     c.cfg.Temperature,
		MaxTokens:       c.cfg.MaxTokens,
		AvailableModels: config.AvailableModels(),
	}
}

var _ domain.LLMClient = (*OllamaClient)(nil)
