// Package llm talks to the hosted Mistral API through its OpenAI-compatible
// chat completions endpoint.
package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// GenerationError wraps any transport, timeout or API failure from the
// hosted model. Callers convert it into a degraded apology response.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("llm generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	Timeout   time.Duration
	MaxTokens int64
}

// MistralClient implements the agent.Generator interface.
type MistralClient struct {
	client  openai.Client
	model   string
	timeout time.Duration
	maxTok  int64
}

func NewMistralClient(cfg Config) *MistralClient {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	maxTok := cfg.MaxTokens
	if maxTok <= 0 {
		maxTok = 1024
	}

	return &MistralClient{
		client:  openai.NewClient(opts...),
		model:   cfg.Model,
		timeout: timeout,
		maxTok:  maxTok,
	}
}

// Generate sends the system prompt plus the user message (with retrieved
// context prepended, when present) and returns the model text. The call is
// bounded by the configured timeout so a request thread never hangs.
func (c *MistralClient) Generate(ctx context.Context, message, contextText, language, systemPrompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userContent(message, contextText, language)),
		},
		MaxTokens:   openai.Int(c.maxTok),
		Temperature: openai.Float(0.7),
	})
	if err != nil {
		return "", &GenerationError{Err: err}
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", &GenerationError{Err: fmt.Errorf("empty completion for model %s", c.model)}
	}

	return completion.Choices[0].Message.Content, nil
}

func userContent(message, contextText, language string) string {
	if contextText == "" {
		return message
	}
	if language == "kz" {
		return fmt.Sprintf("Контекст:\n%s\n\nСұрақ: %s", contextText, message)
	}
	return fmt.Sprintf("Контекст:\n%s\n\nВопрос: %s", contextText, message)
}
