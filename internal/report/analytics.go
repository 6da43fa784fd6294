package report

import (
	"fmt"
	"strconv"

	"autopr/internal/model"
)

// Analytics holds the aggregate numbers shown in the coverage analytics
// block. All values are computed fresh from the article list on every call.
type Analytics struct {
	TotalArticles int
	TotalReach    int
	TopTier       int
	MidTier       int
	LowTier       int
	Headlines     int
	Positive      int
	Neutral       int
	Negative      int
}

// Derive computes coverage analytics for a report. The report's explicit
// TotalEstimatedReach wins over the per-article sum only when the field is
// present, so an explicit zero stays zero.
func Derive(r *model.MediaReport) Analytics {
	a := Analytics{TotalArticles: len(r.Articles)}

	for _, article := range r.Articles {
		switch article.Tier {
		case model.TierTop:
			a.TopTier++
		case model.TierMid:
			a.MidTier++
		case model.TierLow:
			a.LowTier++
		}

		if article.Coverage == model.CoverageHeadline {
			a.Headlines++
		}

		switch article.Sentiment {
		case model.SentimentPositive:
			a.Positive++
		case model.SentimentNeutral:
			a.Neutral++
		case model.SentimentNegative:
			a.Negative++
		}

		if article.EstimatedReach != nil {
			a.TotalReach += *article.EstimatedReach
		}
	}

	if r.TotalEstimatedReach != nil {
		a.TotalReach = *r.TotalEstimatedReach
	}

	return a
}

// HasSentiment reports whether any article carried a sentiment label. The
// sentiment breakdown block is omitted entirely when this is false.
func (a Analytics) HasSentiment() bool {
	return a.Positive > 0 || a.Neutral > 0 || a.Negative > 0
}

// FormatReach renders a reach figure with a magnitude suffix:
// 15200000 -> "15.2M", 450000 -> "450.0K", 999 -> "999".
func FormatReach(n int) string {
	switch {
	case n >= 1000000:
		return fmt.Sprintf("%.1fM", float64(n)/1000000)
	case n >= 1000:
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	default:
		return strconv.Itoa(n)
	}
}
