package newswire

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type GNewsClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewGNewsClient(apiKey string) *GNewsClient {
	return &GNewsClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *GNewsClient) Name() string {
	return "GNews"
}

func (c *GNewsClient) Search(ctx context.Context, query string, limit int) ([]RawArticle, error) {
	endpoint := fmt.Sprintf(
		"https://gnews.io/api/v4/search?q=%s&lang=en&max=%d&apikey=%s",
		url.QueryEscape(query), limit, c.apiKey,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("gnews request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gnews fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gnews status %d", resp.StatusCode)
	}

	var raw gnewsResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("gnews decode: %w", err)
	}

	articles := make([]RawArticle, 0, len(raw.Articles))
	for _, item := range raw.Articles {
		publishedAt, err := time.Parse(time.RFC3339, item.PublishedAt)
		if err != nil {
			publishedAt = time.Time{}
		}

		articles = append(articles, RawArticle{
			Title:       item.Title,
			Snippet:     item.Description,
			URL:         item.URL,
			Source:      item.Source.Name,
			ImageURL:    item.Image,
			PublishedAt: publishedAt,
		})
	}

	return articles, nil
}

type gnewsResponse struct {
	Articles []gnewsArticle `json:"articles"`
}

type gnewsArticle struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	URL         string      `json:"url"`
	Image       string      `json:"image"`
	PublishedAt string      `json:"publishedAt"`
	Source      gnewsSource `json:"source"`
}

type gnewsSource struct {
	Name string `json:"name"`
}
