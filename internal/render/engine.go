package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"autopr/internal/model"
	"autopr/internal/report"
)

var (
	// ErrBrowserStart means the headless browser process could not be
	// launched or connected to.
	ErrBrowserStart = errors.New("browser failed to start")

	// ErrContentLoad means the document did not finish loading within the
	// configured timeout.
	ErrContentLoad = errors.New("document content failed to load")
)

type Config struct {
	// BrowserBin overrides the Chromium binary the launcher resolves.
	BrowserBin string
	NoSandbox  bool
	// LoadTimeout bounds the content-load wait per render. Zero means the
	// 30 second default.
	LoadTimeout time.Duration
}

// Engine turns report markup into paginated PDF bytes through a headless
// Chromium instance. The browser is shared across renders; every render gets
// its own page, which is closed on all exit paths.
type Engine struct {
	launcher    *launcher.Launcher
	browser     *rod.Browser
	loadTimeout time.Duration
}

func NewEngine(cfg Config) (*Engine, error) {
	l := launcher.New().Headless(true)
	if cfg.BrowserBin != "" {
		l = l.Bin(cfg.BrowserBin)
	}
	if cfg.NoSandbox {
		l = l.NoSandbox(true)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBrowserStart, err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		l.Cleanup()
		return nil, fmt.Errorf("%w: %v", ErrBrowserStart, err)
	}

	timeout := cfg.LoadTimeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Engine{launcher: l, browser: browser, loadTimeout: timeout}, nil
}

// RenderReport derives analytics, renders the report template and prints the
// result to PDF.
func (e *Engine) RenderReport(ctx context.Context, r *model.MediaReport, opts Options) ([]byte, error) {
	analytics := report.Derive(r)
	html, err := report.RenderHTML(r, analytics, time.Now())
	if err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}
	return e.RenderHTML(ctx, html, opts)
}

// RenderHTML loads markup into a fresh page, waits for the DOM and any
// referenced resources (screenshot images) to settle, and prints the page.
// Either complete PDF bytes or an error is returned, never partial output.
func (e *Engine) RenderHTML(ctx context.Context, html string, opts Options) ([]byte, error) {
	width, height, err := paperSize(opts.Format)
	if err != nil {
		return nil, err
	}

	margins, err := parseMargins(opts.Margin)
	if err != nil {
		return nil, err
	}

	page, err := e.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	// The deferred close uses the browser context, so the page is released
	// even when the render context below has already expired.
	defer page.Close()

	p := page.Context(ctx).Timeout(e.loadTimeout)

	err = p.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             1200,
		Height:            800,
		DeviceScaleFactor: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("set viewport: %w", err)
	}

	waitIdle := p.WaitRequestIdle(500*time.Millisecond, nil, nil, nil)

	if err := p.SetDocumentContent(html); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContentLoad, err)
	}
	if err := p.WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContentLoad, err)
	}
	waitIdle()

	// waitIdle gives up silently once the page deadline passes; surface
	// that as a load failure instead of a confusing print error.
	if err := p.GetContext().Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContentLoad, err)
	}

	stream, err := p.PDF(&proto.PagePrintToPDF{
		PaperWidth:          &width,
		PaperHeight:         &height,
		MarginTop:           &margins[0],
		MarginRight:         &margins[1],
		MarginBottom:        &margins[2],
		MarginLeft:          &margins[3],
		PrintBackground:     true,
		PreferCSSPageSize:   true,
		DisplayHeaderFooter: opts.DisplayHeaderFooter,
		HeaderTemplate:      opts.HeaderTemplate,
		FooterTemplate:      opts.FooterTemplate,
	})
	if err != nil {
		return nil, fmt.Errorf("print to pdf: %w", err)
	}

	pdf, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read pdf stream: %w", err)
	}
	return pdf, nil
}

// Ping verifies the browser connection is still alive.
func (e *Engine) Ping(ctx context.Context) error {
	_, err := proto.BrowserGetVersion{}.Call(e.browser.Context(ctx))
	return err
}

// Close tears down the browser and the launched process.
func (e *Engine) Close() error {
	err := e.browser.Close()
	e.launcher.Cleanup()
	return err
}

func parseMargins(m Margin) ([4]float64, error) {
	var out [4]float64
	for i, s := range []string{m.Top, m.Right, m.Bottom, m.Left} {
		v, err := parseLength(s)
		if err != nil {
			return out, fmt.Errorf("margin: %w", err)
		}
		out[i] = v
	}
	return out, nil
}
