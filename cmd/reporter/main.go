package main

import (
	"context"
	"encoding/json"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"autopr/internal/model"
	"autopr/internal/render"
	"autopr/pkg/analyst"
	"autopr/pkg/newswire"

	"github.com/joho/godotenv"
)

// mediaAnalyst is what the pipeline needs from its LLM backend: both
// per-article classification and the executive summary.
type mediaAnalyst interface {
	analyst.Analyst
	analyst.CopyEditor
}

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if len(os.Args) < 2 {
		log.Fatal("usage: reporter <client> [query]")
	}
	client := os.Args[1]
	query := client
	if len(os.Args) > 2 {
		query = os.Args[2]
	}

	gnewsKey := os.Getenv("GNEWS_API_KEY")
	if gnewsKey == "" {
		log.Fatal("GNEWS_API_KEY is not set")
	}
	source := newswire.NewGNewsClient(gnewsKey)

	var a mediaAnalyst = analyst.Heuristic{}
	switch {
	case os.Getenv("ANTHROPIC_API_KEY") != "":
		a = analyst.NewAnthropicAnalyst(os.Getenv("ANTHROPIC_API_KEY"))
		slog.Info("using anthropic analyst")
	case os.Getenv("OPENAI_API_KEY") != "":
		a = analyst.NewOpenAIAnalyst(os.Getenv("OPENAI_API_KEY"))
		slog.Info("using openai analyst")
	default:
		slog.Info("no LLM key configured, using heuristic analyst")
	}

	ctx := context.Background()

	raw, err := source.Search(ctx, query, 10)
	if err != nil {
		log.Fatalf("error searching coverage: %v", err)
	}
	if len(raw) == 0 {
		slog.Error("no coverage found", "query", query)
		return
	}

	var articles []model.Article
	var headlines []string
	tally := map[string]int{}

	for _, r := range raw {
		c, err := a.Classify(ctx, r, client)
		if err != nil {
			slog.Error("classification failed, skipping article", "url", r.URL, "error", err)
			continue
		}

		reach := c.EstimatedReach
		datePublished := ""
		if !r.PublishedAt.IsZero() {
			datePublished = r.PublishedAt.Format("2 Jan 2006")
		}

		articles = append(articles, model.Article{
			Title:          r.Title,
			Source:         r.Source,
			Tier:           c.Tier,
			Coverage:       c.Coverage,
			Snippet:        r.Snippet,
			URL:            r.URL,
			ScreenshotURL:  r.ImageURL,
			EstimatedReach: &reach,
			Sentiment:      c.Sentiment,
			DatePublished:  datePublished,
		})
		headlines = append(headlines, r.Title)
		tally[c.Sentiment]++
	}

	if len(articles) == 0 {
		slog.Error("no articles survived classification", "query", query)
		return
	}

	summary, err := a.Summarize(ctx, client, headlines)
	if err != nil {
		slog.Error("summary failed, using fallback", "error", err)
		summary, _ = analyst.Heuristic{}.Summarize(ctx, client, headlines)
	}

	report := &model.MediaReport{
		Client:           client,
		Summary:          summary,
		Date:             time.Now().Format("2 January 2006"),
		Articles:         articles,
		OverallSentiment: overallSentiment(tally),
	}

	slug := sanitize(client)

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("error encoding report: %v", err)
	}
	jsonPath := slug + "-media-report.json"
	if err := os.WriteFile(jsonPath, data, 0644); err != nil {
		log.Fatalf("error writing %s: %v", jsonPath, err)
	}
	slog.Info("report written", "path", jsonPath, "articles", len(articles))

	engine, err := render.NewEngine(render.Config{
		BrowserBin: os.Getenv("BROWSER_BIN"),
		NoSandbox:  os.Getenv("ROD_NO_SANDBOX") != "",
	})
	if err != nil {
		log.Fatalf("error starting render engine: %v", err)
	}
	defer engine.Close()

	pdf, err := engine.RenderReport(ctx, report, render.DefaultOptions())
	if err != nil {
		log.Fatalf("error rendering pdf: %v", err)
	}

	pdfPath := slug + "-media-report.pdf"
	if err := os.WriteFile(pdfPath, pdf, 0644); err != nil {
		log.Fatalf("error writing %s: %v", pdfPath, err)
	}
	slog.Info("pdf written", "path", pdfPath, "bytes", len(pdf))
}

func overallSentiment(tally map[string]int) string {
	best := ""
	bestCount := 0
	for _, s := range []string{model.SentimentPositive, model.SentimentNeutral, model.SentimentNegative} {
		if tally[s] > bestCount {
			best = s
			bestCount = tally[s]
		}
	}
	return best
}

func sanitize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune('-')
		}
	}
	return b.String()
}
