package model

const (
	TierTop = "Top Tier"
	TierMid = "Mid Tier"
	TierLow = "Low Tier"

	CoverageHeadline = "Headline"
	CoverageMention  = "Mention"

	SentimentPositive = "Positive"
	SentimentNeutral  = "Neutral"
	SentimentNegative = "Negative"
)

type Article struct {
	Title          string `json:"title"`
	Source         string `json:"source"`
	Tier           string `json:"tier"`
	Coverage       string `json:"coverage"`
	Snippet        string `json:"snippet"`
	URL            string `json:"url"`
	ScreenshotURL  string `json:"screenshot_url,omitempty"`
	EstimatedReach *int   `json:"estimated_reach,omitempty"`
	Sentiment      string `json:"sentiment,omitempty"`
	DatePublished  string `json:"date_published,omitempty"`
}

type MediaReport struct {
	Client              string    `json:"client"`
	Summary             string    `json:"summary"`
	Date                string    `json:"date,omitempty"`
	DateRange           string    `json:"date_range,omitempty"`
	Articles            []Article `json:"articles"`
	TotalEstimatedReach *int      `json:"total_estimated_reach,omitempty"`
	OverallSentiment    string    `json:"overall_sentiment,omitempty"`
}

func ValidTier(tier string) bool {
	return tier == TierTop || tier == TierMid || tier == TierLow
}

func ValidCoverage(coverage string) bool {
	return coverage == CoverageHeadline || coverage == CoverageMention
}

// ValidSentiment accepts the empty string because sentiment is optional.
func ValidSentiment(sentiment string) bool {
	return sentiment == "" ||
		sentiment == SentimentPositive ||
		sentiment == SentimentNeutral ||
		sentiment == SentimentNegative
}
