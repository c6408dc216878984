// Package inspector runs the full pipeline for one URL: extract the live and
// raw snapshots, reconcile them, validate the crawler-visible result and
// build previews and advisories.
package inspector

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dtnitsch/og-preview/models"
	"github.com/dtnitsch/og-preview/pkg/browser"
	"github.com/dtnitsch/og-preview/pkg/extractor"
	"github.com/dtnitsch/og-preview/pkg/fetcher"
	"github.com/dtnitsch/og-preview/pkg/preview"
	"github.com/dtnitsch/og-preview/pkg/reconciler"
	"github.com/dtnitsch/og-preview/pkg/robots"
	"github.com/dtnitsch/og-preview/pkg/suggest"
	"github.com/dtnitsch/og-preview/pkg/validator"
)

// Inspector wires the pipeline stages together. Robots and Suggester are
// optional; a nil value skips that stage.
type Inspector struct {
	Live      browser.Source
	Fetcher   *fetcher.Fetcher
	Previews  *preview.Builder
	Robots    *robots.Checker
	Suggester *suggest.Suggester
	Logger    *slog.Logger
}

// liveResult and rawResult are the outcomes of the two extraction passes.
type liveResult struct {
	snap *models.PageSnapshot
	html string
	err  error
}

type rawResult struct {
	snap *models.PageSnapshot
	html string
	meta *models.HTTPMetadata
	err  error
}

// Inspect runs the pipeline against target. Only a live DOM failure is
// returned as an error; a failed raw fetch degrades to "reconciliation
// skipped" and is recorded on the report.
func (in *Inspector) Inspect(ctx context.Context, target string) (*models.Report, error) {
	logger := in.logger()
	start := time.Now()

	var (
		wg   sync.WaitGroup
		live liveResult
		raw  rawResult
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		live = in.extractLive(ctx, target)
	}()
	go func() {
		defer wg.Done()
		raw = in.fetchRaw(ctx, target)
	}()
	wg.Wait()

	if live.err != nil {
		return nil, live.err
	}
	if raw.err != nil {
		logger.Warn("raw HTML unavailable, reconciliation skipped", "url", target, "error", raw.err)
	}

	issues := reconciler.Reconcile(live.snap, raw.snap)
	effective, source := reconciler.Effective(live.snap, raw.snap, issues)
	if !issues.Empty() {
		logger.Warn("tags only present after script execution", "url", target, "tags", []string(issues))
	}

	result := validator.Validate(effective)
	report := &models.Report{
		URL:            target,
		Live:           live.snap,
		Raw:            raw.snap,
		RawHTTP:        raw.meta,
		LiveFrom:       in.Live.Name(),
		Effective:      source,
		ScriptOnlyTags: issues,
		Validation:     result,
		Badge:          validator.Score(result),
		Previews:       in.previews().Build(effective),
		InspectedAt:    start.UTC(),
	}
	if raw.err != nil {
		report.RawError = raw.err.Error()
	}

	if in.Robots != nil {
		report.Crawlers = in.Robots.Check(ctx, effective.URL)
	}
	if in.Suggester != nil {
		html := live.html
		if source == models.SourceRaw {
			html = raw.html
		}
		report.Suggestions = in.Suggester.Suggest(effective, html)
	}

	report.DurationMS = time.Since(start).Milliseconds()
	logger.Info("inspection complete",
		"url", target,
		"effective", source,
		"errors", len(result.Errors),
		"warnings", len(result.Warnings),
		"script_only", len(issues),
		"duration_ms", report.DurationMS,
	)
	return report, nil
}

func (in *Inspector) extractLive(ctx context.Context, target string) liveResult {
	page, err := in.Live.Render(ctx, target)
	if err != nil {
		return liveResult{err: fmt.Errorf("failed to read live page: %w", err)}
	}
	pageURL := page.URL
	if pageURL == "" {
		pageURL = target
	}
	snap, err := extractor.ExtractHTML(page.HTML, pageURL)
	if err != nil {
		return liveResult{err: fmt.Errorf("failed to read live page: %w", err)}
	}
	return liveResult{snap: snap, html: page.HTML}
}

// fetchRaw fails softly: any fetch or parse error comes back in err with a
// nil snapshot.
func (in *Inspector) fetchRaw(ctx context.Context, target string) rawResult {
	if in.Fetcher == nil {
		return rawResult{err: fmt.Errorf("no raw fetcher configured")}
	}
	doc, page, err := in.Fetcher.GetHTML(ctx, target)
	if err != nil {
		return rawResult{err: err}
	}
	snap := extractor.Extract(doc, page.Meta.FinalURL)
	meta := page.Meta
	return rawResult{snap: snap, html: page.HTML, meta: &meta}
}

func (in *Inspector) previews() *preview.Builder {
	if in.Previews == nil {
		return preview.NewBuilder()
	}
	return in.Previews
}

func (in *Inspector) logger() *slog.Logger {
	if in.Logger == nil {
		return slog.Default()
	}
	return in.Logger
}

// RawSource serves the raw HTML as the live DOM, for environments without
// Chrome. Reconciliation then finds nothing by construction.
type RawSource struct {
	Fetcher *fetcher.Fetcher
}

// Name implements browser.Source.
func (r *RawSource) Name() string { return "raw" }

// Render implements browser.Source.
func (r *RawSource) Render(ctx context.Context, url string) (*browser.RenderedPage, error) {
	page, err := r.Fetcher.GetPage(ctx, url)
	if err != nil {
		return nil, err
	}
	return &browser.RenderedPage{HTML: page.HTML, URL: page.Meta.FinalURL}, nil
}
