package classifier

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiClassifier classifies mood text with a Gemini model.
type GeminiClassifier struct {
	client *genai.Client
	model  string
}

// NewGeminiClassifier returns a Gemini-backed classifier.
func NewGeminiClassifier(ctx context.Context, apiKey, model string) (*GeminiClassifier, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("model name cannot be empty")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiClassifier{
		client: client,
		model:  model,
	}, nil
}

// Classify returns the sentiment label for text.
func (c *GeminiClassifier) Classify(ctx context.Context, text string) (Result, error) {
	if c == nil || c.client == nil {
		return Result{}, fmt.Errorf("gemini classifier not configured")
	}
	if strings.TrimSpace(text) == "" {
		return Result{Label: LabelNeutral}, nil
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, "system"),
	}
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(text), config)
	if err != nil {
		return Result{}, fmt.Errorf("failed to call gemini: %w", err)
	}

	label, err := ParseLabel(extractText(resp))
	if err != nil {
		return Result{}, fmt.Errorf("malformed classifier response: %w", err)
	}
	return Result{Label: label, Confidence: 1}, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}
