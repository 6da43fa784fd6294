package analyst

import (
	"context"
	"fmt"
	"strings"

	"autopr/internal/model"
	"autopr/pkg/newswire"
)

// Heuristic is a deterministic analyst used when no LLM key is configured
// and in tests. Tier comes from a known-outlet table, coverage from whether
// the client is named in the headline, sentiment from keyword matching.
type Heuristic struct{}

var outletTiers = map[string]string{
	"bbc":                  model.TierTop,
	"bbc entertainment":    model.TierTop,
	"the guardian":         model.TierTop,
	"cnn":                  model.TierTop,
	"reuters":              model.TierTop,
	"billboard":            model.TierTop,
	"rolling stone":        model.TierTop,
	"variety":              model.TierTop,
	"hollywood reporter":   model.TierMid,
	"vogue":                model.TierMid,
	"vogue uk":             model.TierMid,
	"nme":                  model.TierMid,
	"harper's bazaar":      model.TierMid,
	"entertainment weekly": model.TierLow,
	"buzzfeed":             model.TierLow,
	"e! news":              model.TierLow,
}

var positiveWords = []string{"acclaim", "praise", "award", "record", "success", "triumph", "charity", "stuns", "celebrated"}

var negativeWords = []string{"backlash", "criticism", "controversy", "lawsuit", "scandal", "mixed", "flop", "slams"}

func (Heuristic) Classify(_ context.Context, article newswire.RawArticle, client string) (*Classification, error) {
	tier, ok := outletTiers[strings.ToLower(article.Source)]
	if !ok {
		tier = model.TierLow
	}

	coverage := model.CoverageMention
	if strings.Contains(strings.ToLower(article.Title), strings.ToLower(client)) {
		coverage = model.CoverageHeadline
	}

	reach := 300000
	switch tier {
	case model.TierTop:
		reach = 2000000
	case model.TierMid:
		reach = 800000
	}

	return &Classification{
		Tier:           tier,
		Coverage:       coverage,
		Sentiment:      keywordSentiment(article.Title + " " + article.Snippet),
		EstimatedReach: reach,
	}, nil
}

func (Heuristic) Summarize(_ context.Context, client string, headlines []string) (string, error) {
	if len(headlines) == 0 {
		return fmt.Sprintf("No recent media coverage was found for %s.", client), nil
	}

	return fmt.Sprintf(
		"This report summarizes %d recent media mentions of %s. Highlights include: %s.",
		len(headlines), client, strings.Join(headlines, "; "),
	), nil
}

func keywordSentiment(text string) string {
	text = strings.ToLower(text)

	score := 0
	for _, w := range positiveWords {
		if strings.Contains(text, w) {
			score++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(text, w) {
			score--
		}
	}

	switch {
	case score > 0:
		return model.SentimentPositive
	case score < 0:
		return model.SentimentNegative
	default:
		return model.SentimentNeutral
	}
}
