package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"github.com/Dinesh9529/ResumeGuru/internal/config"
)

// FallbackReview is served in place of the AI review whenever the upstream
// call fails. The request itself still succeeds with the ATS score.
const FallbackReview = "Sorry, the AI review could not be generated right now. Your ATS score above is still accurate - please try again in a few minutes."

// minReviewLength guards against empty or truncated completions; anything
// shorter is treated as a failed call.
const minReviewLength = 50

type ReviewService interface {
	Review(ctx context.Context, system, user string) (string, error)
}

// openRouterService talks to any OpenAI-compatible chat-completions endpoint.
type openRouterService struct {
	cfg    *config.LLMConfig
	client *resty.Client
}

func NewOpenRouterService(cfg *config.LLMConfig) ReviewService {
	return &openRouterService{
		cfg: cfg,
		client: resty.New().
			SetBaseURL(cfg.BaseURL).
			SetTimeout(90 * time.Second),
	}
}

// Review performs a single chat-completions call. No retries: a failure here
// is absorbed by the caller as the fallback review.
func (s *openRouterService) Review(ctx context.Context, system, user string) (string, error) {
	if s.cfg.APIKey == "" {
		return "", fmt.Errorf("llm api key is not configured")
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"model": s.cfg.Model,
			"messages": []map[string]string{
				{"role": "system", "content": system},
				{"role": "user", "content": user},
			},
			"temperature": 0.5,
			"max_tokens":  3000,
			"top_p":       0.9,
		}).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("llm returned status %d: %s", resp.StatusCode(), resp.String())
	}

	content := strings.TrimSpace(gjson.Get(resp.String(), "choices.0.message.content").String())
	if len(content) < minReviewLength {
		return "", fmt.Errorf("llm returned empty or truncated review (%d chars)", len(content))
	}

	return CleanAIResponse(content), nil
}

// CleanAIResponse strips the "---" separators the prompt template uses
// between sections and trims surrounding whitespace. Bold and list markdown
// is kept for display.
func CleanAIResponse(text string) string {
	return strings.TrimSpace(strings.ReplaceAll(text, "---", ""))
}
