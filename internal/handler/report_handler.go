package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"autopr/internal/model"
	"autopr/internal/render"
	"autopr/pkg/mock"
)

type ReportRenderer interface {
	RenderReport(ctx context.Context, report *model.MediaReport, opts render.Options) ([]byte, error)
	Ping(ctx context.Context) error
}

type ReportHandler struct {
	renderer ReportRenderer
}

func NewReportHandler(renderer ReportRenderer) *ReportHandler {
	return &ReportHandler{renderer: renderer}
}

// GeneratePDF validates a MediaReport request body, renders it and responds
// with the PDF bytes as a download.
func (h *ReportHandler) GeneratePDF(c *gin.Context) {
	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("invalid report body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	if problems := req.validate(); len(problems) > 0 {
		slog.Error("report validation failed", "fields", problems)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing or invalid fields: " + strings.Join(problems, ", "),
		})
		return
	}

	report := req.toModel()
	slog.Info("generating report pdf", "client", report.Client, "articles", len(report.Articles))

	pdf, err := h.renderer.RenderReport(c.Request.Context(), report, render.DefaultOptions())
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.writePDF(c, pdf, pdfFilename(report.Client))
}

// SamplePDF renders the built-in sample report, used to smoke-test the
// pipeline without external input.
func (h *ReportHandler) SamplePDF(c *gin.Context) {
	pdf, err := h.renderer.RenderReport(c.Request.Context(), mock.SampleReport(), render.DefaultOptions())
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.writePDF(c, pdf, "sample-media-report.pdf")
}

func (h *ReportHandler) GetHealth(c *gin.Context) {
	if err := h.renderer.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unhealthy",
			"browser": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"browser": "connected",
	})
}

func (h *ReportHandler) renderError(c *gin.Context, err error) {
	slog.Error("pdf generation failed", "error", err)

	body := gin.H{"error": "Failed to generate PDF"}
	switch {
	case errors.Is(err, render.ErrBrowserStart):
		body["error"] = "Render engine unavailable"
	case errors.Is(err, render.ErrContentLoad):
		body["error"] = "Report content failed to load"
	}

	// Diagnostic detail stays out of release-mode responses.
	if gin.Mode() != gin.ReleaseMode {
		body["details"] = err.Error()
	}

	c.JSON(http.StatusInternalServerError, body)
}

func (h *ReportHandler) writePDF(c *gin.Context, pdf []byte, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Length", strconv.Itoa(len(pdf)))
	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// pdfFilename derives a download name from the client, with every
// non-alphanumeric character replaced by a dash and today's date appended.
func pdfFilename(client string) string {
	var b strings.Builder
	for _, r := range client {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune('-')
		}
	}
	return fmt.Sprintf("%s-media-report-%s.pdf", b.String(), time.Now().Format("2006-01-02"))
}
