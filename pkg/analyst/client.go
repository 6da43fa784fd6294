package analyst

import (
	"context"

	"autopr/pkg/newswire"
)

// Classification is the editorial metadata an analyst assigns to one piece
// of raw coverage.
type Classification struct {
	Tier           string
	Coverage       string
	Sentiment      string
	EstimatedReach int
}

// Analyst tags a scraped article with tier, coverage type, sentiment and an
// estimated reach for the named client.
type Analyst interface {
	Classify(ctx context.Context, article newswire.RawArticle, client string) (*Classification, error)
}

// CopyEditor writes the executive summary for a set of classified articles.
type CopyEditor interface {
	Summarize(ctx context.Context, client string, headlines []string) (string, error)
}
