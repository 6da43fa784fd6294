package newswire

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

// rewriteTransport redirects every request to the test server so the client
// code can keep its real endpoint URL.
type rewriteTransport struct {
	target *url.URL
}

func (t rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = t.target.Scheme
	req.URL.Host = t.target.Host
	return http.DefaultTransport.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *GNewsClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	target, _ := url.Parse(srv.URL)
	c := NewGNewsClient("test-key")
	c.httpClient = &http.Client{Transport: rewriteTransport{target: target}}
	return c
}

func TestGNewsSearch(t *testing.T) {
	var gotQuery url.Values
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{
			"totalArticles": 2,
			"articles": [
				{
					"title": "Dua Lipa Announces Tour",
					"description": "A new world tour.",
					"url": "https://example.com/tour",
					"image": "https://example.com/tour.jpg",
					"publishedAt": "2024-03-15T10:30:00Z",
					"source": {"name": "BBC Entertainment"}
				},
				{
					"title": "Concert Review",
					"description": "Mixed reception.",
					"url": "https://example.com/review",
					"image": "",
					"publishedAt": "not-a-date",
					"source": {"name": "NME"}
				}
			]
		}`))
	})

	articles, err := c.Search(context.Background(), "Dua Lipa", 10)

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(articles))

	assert.Equal(t, "Dua Lipa", gotQuery.Get("q"))
	assert.Equal(t, "10", gotQuery.Get("max"))
	assert.Equal(t, "test-key", gotQuery.Get("apikey"))
	assert.Equal(t, "en", gotQuery.Get("lang"))

	assert.Equal(t, "Dua Lipa Announces Tour", articles[0].Title)
	assert.Equal(t, "A new world tour.", articles[0].Snippet)
	assert.Equal(t, "BBC Entertainment", articles[0].Source)
	assert.Equal(t, "https://example.com/tour.jpg", articles[0].ImageURL)
	assert.Equal(t, time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC), articles[0].PublishedAt)

	// Unparseable timestamps degrade to the zero time rather than failing.
	assert.Equal(t, true, articles[1].PublishedAt.IsZero())
}

func TestGNewsSearch_NoResults(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"totalArticles": 0, "articles": []}`))
	})

	articles, err := c.Search(context.Background(), "Nobody", 10)

	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(articles))
}

func TestGNewsSearch_UpstreamError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := c.Search(context.Background(), "Dua Lipa", 10)

	assert.NotEqual(t, nil, err)
}

func TestGNewsSearch_MalformedBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"articles": [`))
	})

	_, err := c.Search(context.Background(), "Dua Lipa", 10)

	assert.NotEqual(t, nil, err)
}
