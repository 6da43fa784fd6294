package analyst

import (
	"context"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"

	"autopr/internal/model"
	"autopr/pkg/newswire"
)

func TestHeuristicClassify_KnownOutlet(t *testing.T) {
	c, err := Heuristic{}.Classify(context.Background(), newswire.RawArticle{
		Title:  "Dua Lipa Announces New Album",
		Source: "BBC Entertainment",
	}, "Dua Lipa")

	assert.Equal(t, nil, err)
	assert.Equal(t, model.TierTop, c.Tier)
	assert.Equal(t, model.CoverageHeadline, c.Coverage)
	assert.Equal(t, 2000000, c.EstimatedReach)
}

func TestHeuristicClassify_UnknownOutletIsLowTier(t *testing.T) {
	c, err := Heuristic{}.Classify(context.Background(), newswire.RawArticle{
		Title:  "Weekly entertainment roundup",
		Source: "Some Blog",
	}, "Dua Lipa")

	assert.Equal(t, nil, err)
	assert.Equal(t, model.TierLow, c.Tier)
	assert.Equal(t, model.CoverageMention, c.Coverage)
	assert.Equal(t, 300000, c.EstimatedReach)
}

func TestHeuristicClassify_Sentiment(t *testing.T) {
	positive, _ := Heuristic{}.Classify(context.Background(), newswire.RawArticle{
		Title:  "Star wins award for charity work",
		Source: "NME",
	}, "Star")
	assert.Equal(t, model.SentimentPositive, positive.Sentiment)

	negative, _ := Heuristic{}.Classify(context.Background(), newswire.RawArticle{
		Title:  "Backlash grows over controversy",
		Source: "NME",
	}, "Star")
	assert.Equal(t, model.SentimentNegative, negative.Sentiment)

	neutral, _ := Heuristic{}.Classify(context.Background(), newswire.RawArticle{
		Title:  "Star appears at event",
		Source: "NME",
	}, "Star")
	assert.Equal(t, model.SentimentNeutral, neutral.Sentiment)
}

func TestHeuristicClassify_Deterministic(t *testing.T) {
	article := newswire.RawArticle{Title: "Star stuns at premiere", Source: "Vogue UK"}

	first, _ := Heuristic{}.Classify(context.Background(), article, "Star")
	second, _ := Heuristic{}.Classify(context.Background(), article, "Star")

	assert.Equal(t, first, second)
}

func TestHeuristicSummarize(t *testing.T) {
	summary, err := Heuristic{}.Summarize(context.Background(), "Star", []string{"Headline one", "Headline two"})

	assert.Equal(t, nil, err)
	assert.Equal(t, true, strings.Contains(summary, "2 recent media mentions"))
	assert.Equal(t, true, strings.Contains(summary, "Star"))
	assert.Equal(t, true, strings.Contains(summary, "Headline one"))
}

func TestHeuristicSummarize_NoCoverage(t *testing.T) {
	summary, err := Heuristic{}.Summarize(context.Background(), "Star", nil)

	assert.Equal(t, nil, err)
	assert.Equal(t, "No recent media coverage was found for Star.", summary)
}

func TestCleanJSONResponse(t *testing.T) {
	assert.Equal(t, `{"tier": "Top Tier"}`, cleanJSONResponse("```json\n{\"tier\": \"Top Tier\"}\n```"))
	assert.Equal(t, `{"a":1}`, cleanJSONResponse(`Here you go: {"a":1} hope that helps`))
}

func TestValidateClassification(t *testing.T) {
	ok := &Classification{Tier: model.TierMid, Coverage: model.CoverageMention, Sentiment: model.SentimentNeutral, EstimatedReach: 10}
	assert.Equal(t, nil, validateClassification(ok))

	bad := &Classification{Tier: "Premium", Coverage: model.CoverageMention}
	assert.NotEqual(t, nil, validateClassification(bad))

	negativeReach := &Classification{Tier: model.TierMid, Coverage: model.CoverageMention, EstimatedReach: -1}
	assert.NotEqual(t, nil, validateClassification(negativeReach))
}
