package analyst

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"autopr/pkg/newswire"
)

type OpenAIAnalyst struct {
	client *openai.Client
	model  openai.ChatModel
}

func NewOpenAIAnalyst(apiKey string) *OpenAIAnalyst {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIAnalyst{
		client: &client,
		model:  openai.ChatModelGPT4oMini,
	}
}

func (a *OpenAIAnalyst) Classify(ctx context.Context, article newswire.RawArticle, client string) (*Classification, error) {
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

func (a *OpenAIAnalyst) Summarize(ctx context.Context, client string, headlines []string) (string, error) {
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

func (a *OpenAIAnalyst) complete(ctx context.Context, system, user string) (string, error) {
	resp, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: a.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}
	return resp.Choices[0].Message.Content, nil
}
