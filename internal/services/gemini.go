package services

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// geminiReviewService is the alternate review provider, selected with
// LLM_PROVIDER=gemini. It applies the same sampling parameters and content
// validation as the chat-completions provider.
type geminiReviewService struct {
	client    *genai.Client
	modelName string
}

func NewGeminiReviewService(apiKey string) (ReviewService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiReviewService{
		client:    client,
		modelName: "gemini-2.5-flash",
	}, nil
}

func (g *geminiReviewService) Review(ctx context.Context, system, user string) (string, error) {
	temperature := float32(0.5)
	topP := float32(0.9)

	cfg := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		TopP:            &topP,
		MaxOutputTokens: 3000,
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(user), cfg)
	if err != nil {
		return "", fmt.Errorf("failed to generate review: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := strings.TrimSpace(resp.Text())
	if len(text) < minReviewLength {
		return "", fmt.Errorf("gemini returned empty or truncated review (%d chars)", len(text))
	}

	return CleanAIResponse(text), nil
}
