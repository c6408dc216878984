// Package browser produces the live, script-rendered DOM of a page.
package browser

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/dtnitsch/og-preview/pkg/storage"
)

// DefaultSettle is how long scripts get to run after the body is ready.
const DefaultSettle = 500 * time.Millisecond

// RenderedPage is the document as it exists after script execution.
type RenderedPage struct {
	HTML string
	URL  string // location.href after redirects and client-side routing
}

// Source yields the live DOM for a URL.
type Source interface {
	Render(ctx context.Context, url string) (*RenderedPage, error)
	Name() string
}

// Options configures the headless Chrome renderer.
type Options struct {
	ExecPath string
	Settle   time.Duration
}

// Renderer drives a headless Chrome per call. A fresh browser per run keeps
// cookies and storage from leaking between inspections.
type Renderer struct {
	opts   Options
	logger *slog.Logger
}

// NewRenderer returns a Chrome-backed Source.
func NewRenderer(opts Options, logger *slog.Logger) *Renderer {
	if opts.Settle <= 0 {
		opts.Settle = DefaultSettle
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{opts: opts, logger: logger}
}

// Name implements Source.
func (r *Renderer) Name() string { return "chrome" }

// Render navigates to url and returns the outer HTML of the document.
func (r *Renderer) Render(ctx context.Context, url string) (*RenderedPage, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.DisableGPU,
		chromedp.Headless,
		chromedp.NoSandbox,
		chromedp.Flag("blink-settings", "imagesEnabled=false"),
	)
	if r.opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(r.opts.ExecPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()

	taskCtx, cancelTask := chromedp.NewContext(allocCtx)
	defer cancelTask()

	start := time.Now()
	var html, location string
	err := chromedp.Run(taskCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(r.opts.Settle),
		chromedp.Location(&location),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s in chrome: %w", url, err)
	}

	r.logger.Info("rendered live DOM", "url", url, "location", location, "bytes", len(html), "elapsed", time.Since(start))
	return &RenderedPage{HTML: html, URL: location}, nil
}

// FileSource reads a DOM that was rendered and saved elsewhere, for example
// with the browser's "copy outerHTML".
type FileSource struct {
	Path    string
	Storage *storage.Storage
}

// Name implements Source.
func (f *FileSource) Name() string { return "file" }

// Render implements Source. The target URL is kept as the page URL.
func (f *FileSource) Render(_ context.Context, url string) (*RenderedPage, error) {
	data, err := f.Storage.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read live DOM file: %w", err)
	}
	return &RenderedPage{HTML: string(data), URL: url}, nil
}
