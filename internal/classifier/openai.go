package classifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAIClassifier classifies mood text with an OpenAI chat model.
type OpenAIClassifier struct {
	client *openai.Client
	model  string
}

// NewOpenAIClassifier returns an OpenAI-backed classifier.
func NewOpenAIClassifier(apiKey, model string) (*OpenAIClassifier, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("model name cannot be empty")
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClassifier{
		client: &client,
		model:  model,
	}, nil
}

// Classify returns the sentiment label for text.
func (c *OpenAIClassifier) Classify(ctx context.Context, text string) (Result, error) {
	if c == nil || c.client == nil {
		return Result{}, fmt.Errorf("openai classifier not configured")
	}
	if strings.TrimSpace(text) == "" {
		return Result{Label: LabelNeutral}, nil
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(text),
		},
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to call openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Result{}, fmt.Errorf("empty completion response")
	}

	label, err := ParseLabel(resp.Choices[0].Message.Content)
	if err != nil {
		return Result{}, fmt.Errorf("malformed classifier response: %w", err)
	}
	return Result{Label: label, Confidence: 1}, nil
}
