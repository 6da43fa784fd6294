//go:build integration

package render

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

// Needs a local Chromium, so it only runs under the integration build tag:
//
//	go test -tags integration ./internal/render/
func TestRenderHTML_TimeoutReleasesPage(t *testing.T) {
	hang := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-hang
	}))
	defer srv.Close()
	defer close(hang)

	engine, err := NewEngine(Config{NoSandbox: true, LoadTimeout: 2 * time.Second})
	assert.Equal(t, nil, err)
	defer engine.Close()

	stalled := `<html><body><img src="` + srv.URL + `/shot.png"></body></html>`
	_, err = engine.RenderHTML(context.Background(), stalled, DefaultOptions())
	assert.Equal(t, true, errors.Is(err, ErrContentLoad))

	// The stalled page must not take the shared browser down with it.
	assert.Equal(t, nil, engine.Ping(context.Background()))

	pdf, err := engine.RenderHTML(context.Background(), "<html><body><p>ok</p></body></html>", DefaultOptions())
	assert.Equal(t, nil, err)
	assert.Equal(t, true, len(pdf) > 0)
}
