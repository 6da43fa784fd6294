package handler

import (
	"fmt"

	"autopr/internal/model"
)

// ReportRequest mirrors the MediaReport JSON shape. Articles is a pointer so
// a request that omits the field entirely can be told apart from one with an
// empty list, which is valid. Unknown extra fields are ignored by the
// decoder.
type ReportRequest struct {
	Client              string            `json:"client"`
	Summary             string            `json:"summary"`
	Date                string            `json:"date"`
	DateRange           string            `json:"date_range"`
	Articles            *[]ArticleRequest `json:"articles"`
	TotalEstimatedReach *int              `json:"total_estimated_reach"`
	OverallSentiment    string            `json:"overall_sentiment"`
}

type ArticleRequest struct {
	Title          string `json:"title"`
	Source         string `json:"source"`
	Tier           string `json:"tier"`
	Coverage       string `json:"coverage"`
	Snippet        string `json:"snippet"`
	URL            string `json:"url"`
	ScreenshotURL  string `json:"screenshot_url"`
	EstimatedReach *int   `json:"estimated_reach"`
	Sentiment      string `json:"sentiment"`
	DatePublished  string `json:"date_published"`
}

// validate returns the names of missing or invalid fields, empty when the
// request is acceptable.
func (r *ReportRequest) validate() []string {
	var problems []string

	if r.Client == "" {
		problems = append(problems, "client")
	}
	if r.Summary == "" {
		problems = append(problems, "summary")
	}
	if r.Articles == nil {
		problems = append(problems, "articles")
		return problems
	}
	if !model.ValidSentiment(r.OverallSentiment) {
		problems = append(problems, "overall_sentiment")
	}

	for i, a := range *r.Articles {
		if a.Title == "" {
			problems = append(problems, field(i, "title"))
		}
		if a.Source == "" {
			problems = append(problems, field(i, "source"))
		}
		if a.Snippet == "" {
			problems = append(problems, field(i, "snippet"))
		}
		if a.URL == "" {
			problems = append(problems, field(i, "url"))
		}
		if !model.ValidTier(a.Tier) {
			problems = append(problems, field(i, "tier"))
		}
		if !model.ValidCoverage(a.Coverage) {
			problems = append(problems, field(i, "coverage"))
		}
		if !model.ValidSentiment(a.Sentiment) {
			problems = append(problems, field(i, "sentiment"))
		}
	}

	return problems
}

func field(i int, name string) string {
	return fmt.Sprintf("articles[%d].%s", i, name)
}

func (r *ReportRequest) toModel() *model.MediaReport {
	articles := make([]model.Article, 0, len(*r.Articles))
	for _, a := range *r.Articles {
		articles = append(articles, model.Article{
			Title:          a.Title,
			Source:         a.Source,
			Tier:           a.Tier,
			Coverage:       a.Coverage,
			Snippet:        a.Snippet,
			URL:            a.URL,
			ScreenshotURL:  a.ScreenshotURL,
			EstimatedReach: a.EstimatedReach,
			Sentiment:      a.Sentiment,
			DatePublished:  a.DatePublished,
		})
	}

	return &model.MediaReport{
		Client:              r.Client,
		Summary:             r.Summary,
		Date:                r.Date,
		DateRange:           r.DateRange,
		Articles:            articles,
		TotalEstimatedReach: r.TotalEstimatedReach,
		OverallSentiment:    r.OverallSentiment,
	}
}
