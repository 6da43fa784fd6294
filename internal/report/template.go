package report

import (
	"html/template"
	"strings"
	"time"

	"autopr/internal/model"
)

// RenderHTML renders a media report and its derived analytics into the
// printable document markup. It is pure: the generation timestamp is a
// parameter, so the same report and timestamp always produce identical
// output. All article text is auto-escaped by html/template because it
// originates from scraped web content.
func RenderHTML(r *model.MediaReport, a Analytics, generatedAt time.Time) (string, error) {
	var b strings.Builder
	if err := reportTmpl.Execute(&b, buildPage(r, a, generatedAt)); err != nil {
		return "", err
	}
	return b.String(), nil
}

type reportPage struct {
	Client         string
	Summary        string
	ReportDate     string
	GeneratedDate  string
	GeneratedStamp string
	Year           int
	Analytics      Analytics
	TotalReach     string
	ShowSentiment  bool
	Tiers          []tierSection
}

type tierSection struct {
	Name       string
	BadgeClass string
	Count      int
	CountLabel string
	Articles   []articleEntry
}

type articleEntry struct {
	Title          string
	Source         string
	URL            string
	Snippet        string
	Tier           string
	TierClass      string
	Coverage       string
	Sentiment      string
	SentimentClass string
	Reach          string
	DatePublished  string
	ScreenshotURL  string
}

func buildPage(r *model.MediaReport, a Analytics, generatedAt time.Time) reportPage {
	reportDate := r.DateRange
	if reportDate == "" {
		reportDate = r.Date
	}
	if reportDate == "" {
		reportDate = generatedAt.Format("2 January 2006")
	}

	return reportPage{
		Client:         r.Client,
		Summary:        r.Summary,
		ReportDate:     reportDate,
		GeneratedDate:  generatedAt.Format("02/01/2006"),
		GeneratedStamp: generatedAt.Format("02/01/2006, 15:04:05"),
		Year:           generatedAt.Year(),
		Analytics:      a,
		TotalReach:     FormatReach(a.TotalReach),
		ShowSentiment:  a.HasSentiment(),
		Tiers: []tierSection{
			buildTierSection(model.TierTop, "tier-toptier-large", r.Articles),
			buildTierSection(model.TierMid, "tier-midtier-large", r.Articles),
			buildTierSection(model.TierLow, "tier-lowtier-large", r.Articles),
		},
	}
}

func buildTierSection(tier, badgeClass string, articles []model.Article) tierSection {
	section := tierSection{
		Name:       tier,
		BadgeClass: badgeClass,
		CountLabel: "articles",
	}

	for _, a := range articles {
		if a.Tier == tier {
			section.Articles = append(section.Articles, buildArticleEntry(a))
		}
	}

	section.Count = len(section.Articles)
	if section.Count == 1 {
		section.CountLabel = "article"
	}
	return section
}

func buildArticleEntry(a model.Article) articleEntry {
	entry := articleEntry{
		Title:         a.Title,
		Source:        a.Source,
		URL:           a.URL,
		Snippet:       a.Snippet,
		Tier:          a.Tier,
		TierClass:     "tier-" + strings.ToLower(strings.ReplaceAll(a.Tier, " ", "")),
		Coverage:      a.Coverage,
		Sentiment:     a.Sentiment,
		DatePublished: a.DatePublished,
		ScreenshotURL: a.ScreenshotURL,
	}

	if a.Sentiment != "" {
		entry.SentimentClass = "sentiment-" + strings.ToLower(a.Sentiment) + "-badge"
	}
	if a.EstimatedReach != nil {
		entry.Reach = FormatReach(*a.EstimatedReach)
	}
	return entry
}

var reportTmpl = template.Must(template.New("report").Parse(reportTemplate))

const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Media Coverage Report - {{.Client}}</title>
  <style>
    @import url('https://fonts.googleapis.com/css2?family=Inter:wght@300;400;500;600;700&display=swap');

    * {
      margin: 0;
      padding: 0;
      box-sizing: border-box;
    }

    body {
      font-family: 'Inter', -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      line-height: 1.6;
      color: #2c2c2c;
      background: #ffffff;
      font-size: 14px;
      font-weight: 400;
    }

    .report-container {
      max-width: 8.5in;
      margin: 0 auto;
      padding: 0;
    }

    .header {
      display: flex;
      justify-content: space-between;
      align-items: flex-start;
      border-bottom: 2px solid #e8e8e8;
      padding-bottom: 32px;
      margin-bottom: 40px;
      page-break-after: avoid;
    }

    .header h1 {
      font-size: 28px;
      font-weight: 700;
      color: #2c2c2c;
      margin-bottom: 8px;
      letter-spacing: -0.5px;
    }

    .client-name {
      font-size: 18px;
      font-weight: 600;
      color: #4a4a4a;
      margin-bottom: 4px;
    }

    .report-date {
      font-size: 14px;
      color: #6a6a6a;
      font-weight: 400;
    }

    .header-right {
      text-align: right;
      font-size: 11px;
      color: #8a8a8a;
      flex-shrink: 0;
    }

    .summary-section {
      background: #f8f9fa;
      border-left: 4px solid #2c2c2c;
      padding: 28px;
      margin-bottom: 40px;
      border-radius: 0 8px 8px 0;
      page-break-after: avoid;
    }

    .summary-section h2 {
      font-size: 20px;
      font-weight: 600;
      color: #2c2c2c;
      margin-bottom: 16px;
    }

    .summary-section p {
      font-size: 15px;
      line-height: 1.7;
      color: #4a4a4a;
      font-weight: 400;
    }

    .analytics-section {
      background: #ffffff;
      border: 1px solid #e8e8e8;
      border-radius: 8px;
      padding: 24px;
      margin-bottom: 32px;
      box-shadow: 0 1px 2px rgba(0, 0, 0, 0.04);
    }

    .analytics-header {
      font-size: 16px;
      font-weight: 600;
      color: #2c2c2c;
      margin-bottom: 16px;
      text-align: center;
    }

    .analytics-grid {
      display: grid;
      grid-template-columns: repeat(auto-fit, minmax(100px, 1fr));
      gap: 16px;
      text-align: center;
    }

    .analytics-item {
      padding: 16px 8px;
      background: #f8f9fa;
      border-radius: 6px;
      border: 1px solid #e8e8e8;
    }

    .analytics-number {
      font-size: 24px;
      font-weight: 700;
      color: #2c2c2c;
      display: block;
    }

    .analytics-label {
      font-size: 10px;
      color: #6a6a6a;
      text-transform: uppercase;
      letter-spacing: 0.5px;
      margin-top: 4px;
      font-weight: 500;
    }

    .reach-highlight {
      color: #e50815 !important;
    }

    .sentiment-grid {
      display: grid;
      grid-template-columns: repeat(3, 1fr);
      gap: 12px;
      margin-top: 16px;
    }

    .sentiment-item {
      padding: 12px 8px;
      border-radius: 6px;
      text-align: center;
      border: 1px solid;
    }

    .sentiment-positive {
      background: #e8f5e8;
      border-color: #d4edd4;
      color: #2d5a2d;
    }

    .sentiment-neutral {
      background: #f5f5f5;
      border-color: #e0e0e0;
      color: #6a6a6a;
    }

    .sentiment-negative {
      background: #fef2f2;
      border-color: #f8d7d7;
      color: #b91c1c;
    }

    .sentiment-number {
      font-size: 18px;
      font-weight: 600;
      display: block;
    }

    .sentiment-label {
      font-size: 10px;
      text-transform: uppercase;
      letter-spacing: 0.3px;
      margin-top: 2px;
    }

    .tier-section {
      margin-bottom: 40px;
    }

    .tier-header {
      display: flex;
      align-items: center;
      gap: 12px;
      margin-bottom: 20px;
      padding-bottom: 12px;
      border-bottom: 1px solid #e8e8e8;
      page-break-after: avoid;
    }

    .tier-title {
      font-size: 18px;
      font-weight: 600;
      color: #2c2c2c;
    }

    .tier-count {
      background: #f0f0f0;
      color: #6a6a6a;
      padding: 4px 10px;
      border-radius: 12px;
      font-size: 11px;
      font-weight: 500;
    }

    .tier-badge-large {
      padding: 4px 12px;
      border-radius: 12px;
      font-size: 11px;
      font-weight: 500;
      text-transform: uppercase;
      letter-spacing: 0.3px;
    }

    .tier-toptier-large,
    .tier-toptier {
      background: #e8f5e8;
      color: #2d5a2d;
      border: 1px solid #d4edd4;
    }

    .tier-midtier-large,
    .tier-midtier {
      background: #fff4e6;
      color: #b8620a;
      border: 1px solid #f2d7b8;
    }

    .tier-lowtier-large,
    .tier-lowtier {
      background: #fef2f2;
      color: #b91c1c;
      border: 1px solid #f8d7d7;
    }

    .article {
      border: 1px solid #e8e8e8;
      border-radius: 8px;
      padding: 24px;
      margin-bottom: 20px;
      background: #ffffff;
      box-shadow: 0 1px 2px rgba(0, 0, 0, 0.04);
      page-break-inside: avoid;
      break-inside: avoid;
    }

    .article-header {
      display: flex;
      justify-content: space-between;
      align-items: flex-start;
      margin-bottom: 12px;
      gap: 16px;
    }

    .article-title-link {
      font-size: 18px;
      font-weight: 600;
      color: #2c2c2c;
      text-decoration: none;
      line-height: 1.3;
      flex: 1;
    }

    .article-analytics {
      display: flex;
      flex-direction: column;
      align-items: flex-end;
      gap: 4px;
      flex-shrink: 0;
    }

    .reach-stat {
      font-size: 12px;
      font-weight: 600;
      color: #e50815;
    }

    .date-stat {
      font-size: 11px;
      color: #8a8a8a;
    }

    .article-meta-row {
      display: flex;
      flex-wrap: wrap;
      gap: 16px;
      margin-bottom: 16px;
      align-items: center;
    }

    .article-source {
      font-size: 14px;
      font-weight: 500;
      color: #4a4a4a;
    }

    .article-badges {
      display: flex;
      gap: 6px;
      flex-wrap: wrap;
    }

    .tier-badge,
    .coverage-badge,
    .sentiment-badge {
      padding: 3px 10px;
      border-radius: 10px;
      font-size: 10px;
      font-weight: 500;
      text-transform: uppercase;
      letter-spacing: 0.3px;
    }

    .coverage-badge {
      background: #f0f0f0;
      color: #6a6a6a;
      border: 1px solid #e0e0e0;
    }

    .sentiment-positive-badge {
      background: #e8f5e8;
      color: #2d5a2d;
      border: 1px solid #d4edd4;
    }

    .sentiment-neutral-badge {
      background: #f5f5f5;
      color: #6a6a6a;
      border: 1px solid #e0e0e0;
    }

    .sentiment-negative-badge {
      background: #fef2f2;
      color: #b91c1c;
      border: 1px solid #f8d7d7;
    }

    .article-snippet {
      font-size: 14px;
      line-height: 1.6;
      color: #4a4a4a;
      margin: 16px 0;
      font-style: italic;
      padding: 16px;
      background: #f8f9fa;
      border-left: 3px solid #e0e0e0;
      border-radius: 0 6px 6px 0;
    }

    .article-url {
      font-size: 11px;
      color: #2c2c2c;
      text-decoration: none;
      word-break: break-all;
      background: #f5f5f5;
      padding: 6px 10px;
      border-radius: 4px;
      display: inline-block;
      margin-top: 8px;
      border: 1px solid #e8e8e8;
    }

    .article-screenshot {
      margin: 16px 0;
      text-align: center;
      page-break-inside: avoid;
    }

    .article-screenshot img {
      max-width: 100%;
      max-height: 200px;
      height: auto;
      border-radius: 6px;
      box-shadow: 0 2px 4px rgba(0, 0, 0, 0.1);
      border: 1px solid #e8e8e8;
    }

    .footer {
      margin-top: 48px;
      padding: 24px 0;
      border-top: 1px solid #e8e8e8;
      color: #6a6a6a;
      font-size: 11px;
      background: #f8f9fa;
    }

    .footer-content {
      display: flex;
      justify-content: space-between;
      align-items: flex-start;
      flex-wrap: wrap;
      gap: 16px;
      margin-bottom: 16px;
    }

    .footer-right {
      text-align: right;
      color: #8a8a8a;
    }

    .copyright-section {
      border-top: 1px solid #e8e8e8;
      padding-top: 16px;
      text-align: center;
      font-size: 10px;
      color: #8a8a8a;
      line-height: 1.4;
    }

    @media print {
      .report-container {
        max-width: none;
      }

      .article {
        page-break-inside: avoid;
        break-inside: avoid;
      }

      .header,
      .summary-section,
      .tier-header {
        page-break-after: avoid;
      }

      .analytics-section {
        page-break-inside: avoid;
      }

      a {
        color: inherit;
        text-decoration: none;
      }
    }

    @page {
      margin: 0.75in;
      size: A4;
    }
  </style>
</head>
<body>
  <div class="report-container">
    <header class="header">
      <div class="header-main">
        <h1>Media Coverage Report</h1>
        <div class="client-name">Client: {{.Client}}</div>
        <div class="report-date">Report Date: {{.ReportDate}}</div>
      </div>
      <div class="header-right">
        <strong>CONFIDENTIAL</strong><br>
        Generated: {{.GeneratedDate}}
      </div>
    </header>

    <section class="summary-section">
      <h2>Executive Summary</h2>
      <p>{{.Summary}}</p>
    </section>

    <section class="analytics-section">
      <div class="analytics-header">Coverage Analytics</div>
      <div class="analytics-grid">
        <div class="analytics-item">
          <span class="analytics-number">{{.Analytics.TotalArticles}}</span>
          <div class="analytics-label">Total Articles</div>
        </div>
        <div class="analytics-item">
          <span class="analytics-number">{{.Analytics.TopTier}}</span>
          <div class="analytics-label">Top Tier</div>
        </div>
        <div class="analytics-item">
          <span class="analytics-number">{{.Analytics.MidTier}}</span>
          <div class="analytics-label">Mid Tier</div>
        </div>
        <div class="analytics-item">
          <span class="analytics-number">{{.Analytics.LowTier}}</span>
          <div class="analytics-label">Low Tier</div>
        </div>
        <div class="analytics-item">
          <span class="analytics-number">{{.Analytics.Headlines}}</span>
          <div class="analytics-label">Headlines</div>
        </div>
        <div class="analytics-item">
          <span class="analytics-number reach-highlight">{{.TotalReach}}</span>
          <div class="analytics-label">Est. Reach</div>
        </div>
      </div>
{{- if .ShowSentiment}}
      <div class="sentiment-grid">
        <div class="sentiment-item sentiment-positive">
          <span class="sentiment-number">{{.Analytics.Positive}}</span>
          <div class="sentiment-label">Positive</div>
        </div>
        <div class="sentiment-item sentiment-neutral">
          <span class="sentiment-number">{{.Analytics.Neutral}}</span>
          <div class="sentiment-label">Neutral</div>
        </div>
        <div class="sentiment-item sentiment-negative">
          <span class="sentiment-number">{{.Analytics.Negative}}</span>
          <div class="sentiment-label">Negative</div>
        </div>
      </div>
{{- end}}
    </section>
{{- range .Tiers}}
{{- if .Articles}}
    <section class="tier-section">
      <div class="tier-header">
        <h2 class="tier-title">{{.Name}}</h2>
        <span class="tier-count">{{.Count}} {{.CountLabel}}</span>
        <span class="tier-badge-large {{.BadgeClass}}">{{.Name}}</span>
      </div>
{{- range .Articles}}
      <article class="article">
        <div class="article-header">
          <a href="{{.URL}}" class="article-title-link" target="_blank">{{.Title}}</a>
{{- if or .Reach .DatePublished}}
          <div class="article-analytics">
{{- if .Reach}}
            <div class="reach-stat">{{.Reach}} reach</div>
{{- end}}
{{- if .DatePublished}}
            <div class="date-stat">{{.DatePublished}}</div>
{{- end}}
          </div>
{{- end}}
        </div>
        <div class="article-meta-row">
          <div class="article-source">Source: {{.Source}}</div>
          <div class="article-badges">
            <span class="tier-badge {{.TierClass}}">{{.Tier}}</span>
            <span class="coverage-badge">{{.Coverage}}</span>
{{- if .Sentiment}}
            <span class="sentiment-badge {{.SentimentClass}}">{{.Sentiment}}</span>
{{- end}}
          </div>
        </div>
        <blockquote class="article-snippet">{{.Snippet}}</blockquote>
{{- if .ScreenshotURL}}
        <div class="article-screenshot">
          <img src="{{.ScreenshotURL}}" alt="Screenshot of {{.Title}}" />
        </div>
{{- end}}
        <a href="{{.URL}}" class="article-url" target="_blank">{{.URL}}</a>
      </article>
{{- end}}
    </section>
{{- end}}
{{- end}}

    <footer class="footer">
      <div class="footer-content">
        <div class="footer-left">
          <strong>AutoPR</strong><br>
          Report generated: {{.GeneratedStamp}}
        </div>
        <div class="footer-right">
          <strong>Confidential &amp; Proprietary</strong><br>
          This report contains confidential information<br>
          intended solely for the named client.
        </div>
      </div>
      <div class="copyright-section">
        <p>&copy; {{.Year}} AutoPR. All rights reserved.</p>
        <p>No part of this report may be reproduced or distributed without prior written permission.</p>
      </div>
    </footer>
  </div>
</body>
</html>
`
