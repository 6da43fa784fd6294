package newswire

import (
	"context"
	"time"
)

// RawArticle is an unclassified piece of coverage as returned by a news
// search source. Tier, coverage type, sentiment and reach are assigned later
// by an analyst.
type RawArticle struct {
	Title       string
	Snippet     string
	URL         string
	Source      string
	ImageURL    string
	PublishedAt time.Time
}

type Source interface {
	Search(ctx context.Context, query string, limit int) ([]RawArticle, error)
	Name() string
}
