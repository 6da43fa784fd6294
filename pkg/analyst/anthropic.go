package analyst

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"autopr/internal/model"
	"autopr/pkg/newswire"
)

type AnthropicAnalyst struct {
	client *anthropic.Client
	model  anthropic.Model
}

func NewAnthropicAnalyst(apiKey string) *AnthropicAnalyst {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicAnalyst{
		client: &client,
		model:  anthropic.ModelClaudeHaiku4_5,
	}
}

func (a *AnthropicAnalyst) Classify(ctx context.Context, article newswire.RawArticle, client string) (*Classification, error) {
	userPrompt := fmt.Sprintf(
		"Client: %s\nPublication: %s\nHeadline: %s\nSnippet: %s",
		client, article.Source, article.Title, article.Snippet,
	)

	content, err := a.complete(ctx, classifySystemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Tier           string `json:"tier"`
		Coverage       string `json:"coverage"`
		Sentiment      string `json:"sentiment"`
		EstimatedReach int    `json:"estimated_reach"`
	}
	if err := json.Unmarshal([]byte(cleanJSONResponse(content)), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse classification: %w, content: %s", err, content)
	}

	c := &Classification{
		Tier:           parsed.Tier,
		Coverage:       parsed.Coverage,
		Sentiment:      parsed.Sentiment,
		EstimatedReach: parsed.EstimatedReach,
	}
	if err := validateClassification(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (a *AnthropicAnalyst) Summarize(ctx context.Context, client string, headlines []string) (string, error) {
	userPrompt := fmt.Sprintf("Client: %s\nHeadlines:\n- %s", client, strings.Join(headlines, "\n- "))

	content, err := a.complete(ctx, summarySystemPrompt, userPrompt)
	if err != nil {
		return "", err
	}

	var parsed struct {
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal([]byte(cleanJSONResponse(content)), &parsed); err != nil {
		return "", fmt.Errorf("failed to parse summary: %w, content: %s", err, content)
	}
	return parsed.Summary, nil
}

func (a *AnthropicAnalyst) complete(ctx context.Context, system, user string) (string, error) {
	resp, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     a.model,
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic API error: %w", err)
	}
	if len(resp.Content) == 0 {
		return "", fmt.Errorf("no response from anthropic")
	}
	return resp.Content[0].Text, nil
}

func validateClassification(c *Classification) error {
	if !model.ValidTier(c.Tier) {
		return fmt.Errorf("invalid tier %q", c.Tier)
	}
	if !model.ValidCoverage(c.Coverage) {
		return fmt.Errorf("invalid coverage %q", c.Coverage)
	}
	if c.Sentiment != "" && !model.ValidSentiment(c.Sentiment) {
		return fmt.Errorf("invalid sentiment %q", c.Sentiment)
	}
	if c.EstimatedReach < 0 {
		return fmt.Errorf("negative estimated reach %d", c.EstimatedReach)
	}
	return nil
}

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
