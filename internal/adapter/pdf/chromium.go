// Package pdf renders HTML documents to PDF with a headless Chromium
// subprocess. Chromium ships on the application image; no browser pool is
// kept because CV exports are infrequent and short-lived.
package pdf

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/Chudy3122/doradca-ai/internal/adapter/observability"
	"github.com/Chudy3122/doradca-ai/internal/domain"
)

// ChromiumRenderer shells out to a headless browser for each render.
type ChromiumRenderer struct {
	binary  string
	timeout time.Duration
}

// NewChromiumRenderer builds a renderer around the given chromium binary.
func NewChromiumRenderer(binary string, timeout time.Duration) *ChromiumRenderer {
	if binary == "" {
		binary = "chromium"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ChromiumRenderer{binary: binary, timeout: timeout}
}

// RenderHTML writes the document to a temp dir, prints it to PDF and returns
// the bytes. The temp dir is removed whether or not the render succeeds.
func (r *ChromiumRenderer) RenderHTML(ctx domain.Context, html string) ([]byte, error) {
	start := time.Now()
	out, err := r.render(ctx, html)
	if err != nil {
		observability.ObservePDFRender("error", 0)
		return nil, err
	}
	observability.ObservePDFRender("ok", time.Since(start))
	return out, nil
}

func (r *ChromiumRenderer) render(ctx domain.Context, html string) ([]byte, error) {
	dir, err := os.MkdirTemp("", "cv-render-*")
	if err != nil {
		return nil, fmt.Errorf("op=pdf.render mkdtemp: %w: %w", domain.ErrInternal, err)
	}
	defer func() { _ = os.RemoveAll(dir) }()

	inPath := filepath.Join(dir, "cv.html")
	outPath := filepath.Join(dir, "cv.pdf")
	if err := os.WriteFile(inPath, []byte(html), 0o600); err != nil {
		return nil, fmt.Errorf("op=pdf.render write html: %w: %w", domain.ErrInternal, err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.binary,
		"--headless",
		"--disable-gpu",
		"--no-sandbox",
		"--no-pdf-header-footer",
		"--print-to-pdf="+outPath,
		inPath,
	)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("op=pdf.render timeout after %s: %w", r.timeout, domain.ErrUpstreamTimeout)
		}
		observability.LoggerFromContext(ctx).Error("chromium render failed",
			"error", err, "output", truncate(string(output), 512))
		return nil, fmt.Errorf("op=pdf.render chromium: %w: %w", domain.ErrInternal, err)
	}

	pdfBytes, err := os.ReadFile(outPath)
	if err != nil {
		return nil, fmt.Errorf("op=pdf.render read output: %w: %w", domain.ErrInternal, err)
	}
	if len(pdfBytes) == 0 {
		return nil, fmt.Errorf("op=pdf.render empty output: %w", domain.ErrInternal)
	}
	return pdfBytes, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
