package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"autopr/internal/model"
	"autopr/internal/render"
)

type fakeRenderer struct {
	pdf        []byte
	err        error
	pingErr    error
	lastReport *model.MediaReport
}

func (f *fakeRenderer) RenderReport(ctx context.Context, report *model.MediaReport, opts render.Options) ([]byte, error) {
	f.lastReport = report
	return f.pdf, f.err
}

func (f *fakeRenderer) Ping(ctx context.Context) error {
	return f.pingErr
}

func newTestRouter(renderer ReportRenderer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewReportHandler(renderer)
	r.POST("/reports/pdf", h.GeneratePDF)
	r.GET("/reports/sample", h.SamplePDF)
	r.GET("/health", h.GetHealth)
	return r
}

func validBody() map[string]any {
	return map[string]any{
		"client":  "Dua Lipa",
		"summary": "Strong week of coverage.",
		"articles": []map[string]any{
			{
				"title":    "Album Announcement",
				"source":   "BBC Entertainment",
				"tier":     "Top Tier",
				"coverage": "Headline",
				"snippet":  "A surprise announcement.",
				"url":      "https://example.com/album",
			},
		},
	}
}

func postReport(r *gin.Engine, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/reports/pdf", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestGeneratePDF_ReturnsDocument(t *testing.T) {
	renderer := &fakeRenderer{pdf: []byte("%PDF-1.4 fake")}
	r := newTestRouter(renderer)

	w := postReport(r, validBody())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", w.Header().Get("Cache-Control"))
	assert.Equal(t, "13", w.Header().Get("Content-Length"))
	assert.Equal(t, []byte("%PDF-1.4 fake"), w.Body.Bytes())

	disposition := w.Header().Get("Content-Disposition")
	assert.Equal(t, true, strings.Contains(disposition, "attachment"))
	assert.Equal(t, true, strings.Contains(disposition, "Dua-Lipa-media-report-"))
	assert.Equal(t, true, strings.HasSuffix(disposition, `.pdf"`))

	assert.Equal(t, "Dua Lipa", renderer.lastReport.Client)
	assert.Equal(t, 1, len(renderer.lastReport.Articles))
}

func TestGeneratePDF_MissingFields(t *testing.T) {
	renderer := &fakeRenderer{pdf: []byte("pdf")}
	r := newTestRouter(renderer)

	w := postReport(r, map[string]any{"date": "today"})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, true, strings.Contains(res["error"], "client"))
	assert.Equal(t, true, strings.Contains(res["error"], "summary"))
	assert.Equal(t, true, strings.Contains(res["error"], "articles"))
}

func TestGeneratePDF_EmptyArticlesIsValid(t *testing.T) {
	renderer := &fakeRenderer{pdf: []byte("pdf")}
	r := newTestRouter(renderer)

	body := validBody()
	body["articles"] = []map[string]any{}
	w := postReport(r, body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, len(renderer.lastReport.Articles))
}

func TestGeneratePDF_InvalidTierRejected(t *testing.T) {
	renderer := &fakeRenderer{pdf: []byte("pdf")}
	r := newTestRouter(renderer)

	body := validBody()
	body["articles"].([]map[string]any)[0]["tier"] = "Premium Tier"
	w := postReport(r, body)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, true, strings.Contains(res["error"], "articles[0].tier"))
}

func TestGeneratePDF_UnknownFieldsIgnored(t *testing.T) {
	renderer := &fakeRenderer{pdf: []byte("pdf")}
	r := newTestRouter(renderer)

	body := validBody()
	body["workspace_id"] = 42
	w := postReport(r, body)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGeneratePDF_RenderFailure(t *testing.T) {
	renderer := &fakeRenderer{err: fmt.Errorf("%w: navigation timed out", render.ErrContentLoad)}
	r := newTestRouter(renderer)

	w := postReport(r, validBody())

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "Report content failed to load", res["error"])
}

func TestGeneratePDF_EngineUnavailable(t *testing.T) {
	renderer := &fakeRenderer{err: fmt.Errorf("%w: no chromium binary", render.ErrBrowserStart)}
	r := newTestRouter(renderer)

	w := postReport(r, validBody())

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "Render engine unavailable", res["error"])
}

func TestSamplePDF_RendersBuiltInReport(t *testing.T) {
	renderer := &fakeRenderer{pdf: []byte("pdf")}
	r := newTestRouter(renderer)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/reports/sample", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, true, strings.Contains(w.Header().Get("Content-Disposition"), "sample-media-report.pdf"))
	assert.Equal(t, "Dua Lipa", renderer.lastReport.Client)
	assert.Equal(t, 6, len(renderer.lastReport.Articles))
}

func TestGetHealth(t *testing.T) {
	r := newTestRouter(&fakeRenderer{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetHealth_BrowserDown(t *testing.T) {
	r := newTestRouter(&fakeRenderer{pingErr: errors.New("connection lost")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
