// Package mock builds media reports for fixtures, demos and the sample
// endpoint. All randomness lives here; the render pipeline itself is
// deterministic.
package mock

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"autopr/internal/model"
)

// SampleReport returns the fixed six-article report used to smoke-test the
// render pipeline without external input.
func SampleReport() *model.MediaReport {
	return &model.MediaReport{
		Client:              "Dua Lipa",
		Summary:             "Dua Lipa received significant media coverage today with 6 top-tier mentions across major entertainment outlets. The coverage was overwhelmingly positive, focusing on her upcoming album announcement and recent charity work. Notable highlights include a BBC exclusive interview and trending status on multiple social platforms. Total estimated reach of 15.2M demonstrates exceptional visibility across key demographics.",
		Date:                "March 15, 2024",
		DateRange:           "March 15-16, 2024",
		TotalEstimatedReach: intp(15200000),
		OverallSentiment:    model.SentimentPositive,
		Articles: []model.Article{
			{
				Title:          "Dua Lipa Announces Surprise Album at Wembley Stadium",
				Source:         "BBC Entertainment",
				Tier:           model.TierTop,
				Coverage:       model.CoverageHeadline,
				Snippet:        "In a stunning move that surprised fans worldwide, Dua Lipa announced her highly anticipated third studio album during her sold-out Wembley Stadium performance last night.",
				URL:            "https://bbc.co.uk/entertainment/dua-lipa-album-announcement",
				ScreenshotURL:  "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=600&h=400&fit=crop",
				EstimatedReach: intp(8500000),
				Sentiment:      model.SentimentPositive,
				DatePublished:  "15 Mar 2024",
			},
			{
				Title:          "Chart-Topper Dua Lipa's Charity Initiative Gains Momentum",
				Source:         "The Guardian",
				Tier:           model.TierTop,
				Coverage:       model.CoverageHeadline,
				Snippet:        "The pop star's foundation for music education in underserved communities has raised over £2 million in its first month, demonstrating her commitment to social causes.",
				URL:            "https://guardian.co.uk/music/dua-lipa-charity",
				ScreenshotURL:  "https://images.unsplash.com/photo-1516450360452-9312f5e86fc7?w=600&h=400&fit=crop",
				EstimatedReach: intp(4200000),
				Sentiment:      model.SentimentPositive,
				DatePublished:  "15 Mar 2024",
			},
			{
				Title:          "Celebrity Style: Dua Lipa's Fashion Week Moments",
				Source:         "Vogue UK",
				Tier:           model.TierMid,
				Coverage:       model.CoverageMention,
				Snippet:        "Among the standout celebrities at London Fashion Week, Dua Lipa made waves with her sustainable fashion choices and bold statement pieces.",
				URL:            "https://vogue.co.uk/fashion/dua-lipa-fashion-week",
				EstimatedReach: intp(1800000),
				Sentiment:      model.SentimentPositive,
				DatePublished:  "14 Mar 2024",
			},
			{
				Title:          "Social Media Buzz: Dua Lipa Trends Again",
				Source:         "Entertainment Weekly",
				Tier:           model.TierLow,
				Coverage:       model.CoverageMention,
				Snippet:        "The singer's latest Instagram post featuring behind-the-scenes studio footage has fans speculating about new music collaborations.",
				URL:            "https://ew.com/celebrity/dua-lipa-social-media",
				EstimatedReach: intp(450000),
				Sentiment:      model.SentimentNeutral,
				DatePublished:  "16 Mar 2024",
			},
			{
				Title:          "Music Industry Insider: Dua Lipa's Strategic Career Moves",
				Source:         "Billboard",
				Tier:           model.TierTop,
				Coverage:       model.CoverageHeadline,
				Snippet:        "Industry experts praise Dua Lipa's calculated approach to album releases and brand partnerships, cementing her status as a savvy businesswoman beyond her musical talents.",
				URL:            "https://billboard.com/music/dua-lipa-career-strategy",
				EstimatedReach: intp(2100000),
				Sentiment:      model.SentimentPositive,
				DatePublished:  "15 Mar 2024",
			},
			{
				Title:          "Concert Review: Mixed Reception for New Songs",
				Source:         "NME",
				Tier:           model.TierMid,
				Coverage:       model.CoverageMention,
				Snippet:        "While fans were thrilled by the surprise announcement, some critics noted that the new material needs more development before the album release.",
				URL:            "https://nme.com/reviews/dua-lipa-wembley-review",
				EstimatedReach: intp(680000),
				Sentiment:      model.SentimentNegative,
				DatePublished:  "16 Mar 2024",
			},
		},
	}
}

type mockSource struct {
	name string
	tier string
}

var sources = []mockSource{
	{"BBC Entertainment", model.TierTop},
	{"The Guardian", model.TierTop},
	{"CNN Entertainment", model.TierTop},
	{"Rolling Stone", model.TierTop},
	{"Billboard", model.TierTop},
	{"Variety", model.TierTop},
	{"Hollywood Reporter", model.TierMid},
	{"Vogue UK", model.TierMid},
	{"NME", model.TierMid},
	{"Harper's Bazaar", model.TierMid},
	{"Entertainment Weekly", model.TierLow},
	{"BuzzFeed", model.TierLow},
	{"E! News", model.TierLow},
}

var headlines = []string{
	"%s Stuns at Red Carpet Premiere",
	"Breaking: %s Announces Major New Project",
	"%s's Latest Performance Receives Critical Acclaim",
	"Inside %s's Charitable Initiative",
	"%s Trends on Social Media After Latest Appearance",
	"Music Industry Insider: %s's Strategic Career Moves",
	"Fashion Icon %s Sets New Trends",
	"%s's Environmental Campaign Gains Support",
	"Concert Review: %s Delivers Unforgettable Show",
	"Celebrity Style: %s's Fashion Evolution",
}

var snippets = []string{
	"In a stunning move that surprised fans worldwide, %s delivered an exceptional performance that showcased their artistic evolution and commitment to excellence.",
	"The star's latest initiative has garnered support from industry leaders and fans alike, demonstrating their influence beyond entertainment.",
	"Critics and audiences agree that %s's recent work represents a new chapter in their already impressive career.",
	"%s's commitment to social causes continues to inspire fans and fellow celebrities, showing their dedication to making a positive impact.",
	"The entertainment industry is buzzing about %s's latest project, which promises to be their most ambitious work yet.",
	"Fashion experts praise %s's style choices, noting their ability to set trends while maintaining authenticity.",
	"%s's business acumen continues to impress industry insiders, with strategic partnerships that benefit both their career and chosen causes.",
}

var screenshotIDs = []string{
	"photo-1493225457124-a3eb161ffa5f",
	"photo-1516450360452-9312f5e86fc7",
	"photo-1470225620780-dba8ba36b745",
	"photo-1571019613454-1cb2f99b2d8b",
	"photo-1598928506311-c55ded91a20c",
	"photo-1522794338816-ee3a8b5f7db9",
}

// RandomReport builds a randomized single-client report with 3-10 articles.
func RandomReport(client string) *model.MediaReport {
	articles := randomArticles(client, rand.Intn(8)+3)
	return assembleReport(client, articles)
}

// BulkReport builds one combined report covering several clients, capped at
// 20 articles for readability.
func BulkReport(clients []string) *model.MediaReport {
	if len(clients) == 0 {
		return &model.MediaReport{TotalEstimatedReach: intp(0)}
	}

	var articles []model.Article
	for _, name := range clients {
		articles = append(articles, randomArticles(name, rand.Intn(3)+1)...)
	}
	if len(articles) > 20 {
		articles = articles[:20]
	}

	client := clients[0]
	if len(clients) > 1 {
		client = fmt.Sprintf("%s + %d others", clients[0], len(clients)-1)
	}
	return assembleReport(client, articles)
}

func assembleReport(client string, articles []model.Article) *model.MediaReport {
	total := 0
	for _, a := range articles {
		if a.EstimatedReach != nil {
			total += *a.EstimatedReach
		}
	}

	now := time.Now()
	weekAgo := now.AddDate(0, 0, -7)

	return &model.MediaReport{
		Client:              client,
		Summary:             fmt.Sprintf("%s received significant media coverage with %d mentions across major entertainment outlets. The coverage was overwhelmingly positive, focusing on recent projects and public appearances. Notable highlights include top-tier coverage in major publications and strong social media engagement.", client, len(articles)),
		Date:                now.Format("2 January 2006"),
		DateRange:           weekAgo.Format("2 Jan 2006") + " - " + now.Format("2 Jan 2006"),
		TotalEstimatedReach: intp(total),
		OverallSentiment:    randomSentiment(),
		Articles:            articles,
	}
}

func randomArticles(client string, count int) []model.Article {
	articles := make([]model.Article, 0, count)
	for i := 0; i < count; i++ {
		source := sources[rand.Intn(len(sources))]

		baseReach := 300000
		switch source.tier {
		case model.TierTop:
			baseReach = 2000000
		case model.TierMid:
			baseReach = 800000
		}
		reach := baseReach + rand.Intn(baseReach/2)

		coverage := model.CoverageMention
		if rand.Float64() > 0.4 {
			coverage = model.CoverageHeadline
		}

		articles = append(articles, model.Article{
			Title:          fill(headlines[rand.Intn(len(headlines))], client),
			Source:         source.name,
			Tier:           source.tier,
			Coverage:       coverage,
			Snippet:        fill(snippets[rand.Intn(len(snippets))], client),
			URL:            fmt.Sprintf("https://%s.com/%s-%d", slug(source.name), slug(client), i+1),
			ScreenshotURL:  fmt.Sprintf("https://images.unsplash.com/%s?w=600&h=400&fit=crop", screenshotIDs[rand.Intn(len(screenshotIDs))]),
			EstimatedReach: intp(reach),
			Sentiment:      randomSentiment(),
			DatePublished:  time.Now().AddDate(0, 0, -(rand.Intn(7) + 1)).Format("2 Jan 2006"),
		})
	}
	return articles
}

// fill substitutes the client name into templates that reference it; some
// snippet templates have no placeholder at all.
func fill(tmpl, client string) string {
	if strings.Count(tmpl, "%s") == 0 {
		return tmpl
	}
	args := make([]any, strings.Count(tmpl, "%s"))
	for i := range args {
		args[i] = client
	}
	return fmt.Sprintf(tmpl, args...)
}

func slug(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func randomSentiment() string {
	r := rand.Float64()
	switch {
	case r > 0.7:
		return model.SentimentPositive
	case r > 0.2:
		return model.SentimentNeutral
	default:
		return model.SentimentNegative
	}
}

func intp(v int) *int {
	return &v
}
