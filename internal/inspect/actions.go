package inspect

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dtnitsch/og-preview/internal/common"
	"github.com/dtnitsch/og-preview/models"
	"github.com/dtnitsch/og-preview/pkg/browser"
	"github.com/dtnitsch/og-preview/pkg/fetcher"
	"github.com/dtnitsch/og-preview/pkg/inspector"
	"github.com/dtnitsch/og-preview/pkg/preview"
	"github.com/dtnitsch/og-preview/pkg/render"
	"github.com/dtnitsch/og-preview/pkg/robots"
	"github.com/dtnitsch/og-preview/pkg/storage"
	"github.com/dtnitsch/og-preview/pkg/suggest"
	"github.com/urfave/cli/v2"
)

// Exit codes, same meaning across commands.
const (
	ExitValidation = 1
	ExitFailure    = 2
)

// Flags returns the flags accepted by the inspect command.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "url", Aliases: []string{"u"}, Usage: "page to inspect (or pass it as the first argument)"},
		&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "text", Usage: "output format: text, json, yaml or html"},
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "write the report to `FILE` instead of stdout"},
		&cli.StringFlag{Name: "live-file", Usage: "read the rendered DOM from `FILE` instead of launching Chrome"},
		&cli.BoolFlag{Name: "no-browser", Usage: "use the raw HTML as the live DOM (no Chrome needed)"},
		&cli.StringFlag{Name: "chrome-path", Usage: "path to the Chrome/Chromium binary"},
		&cli.DurationFlag{Name: "timeout", Value: models.DefaultTimeout, Usage: "overall time limit"},
		&cli.DurationFlag{Name: "settle", Value: browser.DefaultSettle, Usage: "time scripts get to run after the page is ready"},
		&cli.StringFlag{Name: "user-agent", Value: models.DefaultUserAgent, Usage: "User-Agent for the raw fetch"},
		&cli.BoolFlag{Name: "no-robots", Usage: "skip the robots.txt crawler access check"},
		&cli.BoolFlag{Name: "no-suggest", Usage: "skip tag suggestions"},
		&cli.BoolFlag{Name: "fail-on-error", Usage: "exit 1 when validation reports errors"},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "only log errors"},
	}
}

// ConfigFromContext maps CLI flags onto an InspectConfig.
func ConfigFromContext(c *cli.Context) models.InspectConfig {
	target := c.String("url")
	if target == "" {
		target = c.Args().First()
	}
	return models.InspectConfig{
		URL:        target,
		LiveFile:   c.String("live-file"),
		NoBrowser:  c.Bool("no-browser"),
		ChromePath: c.String("chrome-path"),
		UserAgent:  c.String("user-agent"),
		Timeout:    c.Duration("timeout"),
		Settle:     c.Duration("settle"),
		NoRobots:   c.Bool("no-robots"),
		NoSuggest:  c.Bool("no-suggest"),
	}
}

// NewInspector builds the pipeline described by config.
func NewInspector(config models.InspectConfig, logger *slog.Logger) *inspector.Inspector {
	f := fetcher.NewFetcher(config.UserAgent, config.Timeout)

	var live browser.Source
	switch {
	case config.LiveFile != "":
		live = &browser.FileSource{Path: config.LiveFile, Storage: &storage.Storage{}}
	case config.NoBrowser:
		logger.Warn("--no-browser: live DOM is the raw HTML, script-injected tags cannot be detected")
		live = &inspector.RawSource{Fetcher: f}
	default:
		live = browser.NewRenderer(browser.Options{ExecPath: config.ChromePath, Settle: config.Settle}, logger)
	}

	in := &inspector.Inspector{
		Live:     live,
		Fetcher:  f,
		Previews: preview.NewBuilder(),
		Logger:   logger,
	}
	if !config.NoRobots {
		in.Robots = robots.NewChecker(f.Client(), f.UserAgent())
	}
	if !config.NoSuggest {
		in.Suggester = suggest.NewSuggester(logger)
	}
	return in
}

// InspectAction runs one inspection and prints or saves the report.
func InspectAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))
	config := ConfigFromContext(c)

	if config.URL == "" {
		fmt.Fprintln(os.Stderr, "Error: No URL provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  og-preview inspect https://example.com/post`)
		fmt.Fprintln(os.Stderr, `  og-preview inspect --format html -o report.html https://example.com/post`)
		fmt.Fprintln(os.Stderr, `  og-preview inspect --live-file dom.html https://example.com/post`)
		return cli.Exit("", ExitValidation)
	}

	target, err := common.NormalizeTarget(config.URL)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), ExitValidation)
	}
	config.URL = target
	if config.Timeout <= 0 {
		config.Timeout = models.DefaultTimeout
	}

	format, err := render.ParseFormat(c.String("format"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), ExitValidation)
	}

	ctx, cancel := context.WithTimeout(c.Context, config.Timeout)
	defer cancel()

	in := NewInspector(config, logger)
	report, err := in.Inspect(ctx, config.URL)
	if err != nil {
		logger.Error("inspection failed", "url", config.URL, "error", err)
		return cli.Exit(fmt.Sprintf("Error: %v", err), ExitFailure)
	}

	var out bytes.Buffer
	if err := render.Render(&out, report, format); err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), ExitFailure)
	}

	if path := c.String("output"); path != "" {
		s := &storage.Storage{}
		if err := s.SaveFile(path, out.Bytes()); err != nil {
			return cli.Exit(fmt.Sprintf("Error: %v", err), ExitFailure)
		}
		fmt.Fprintf(os.Stderr, "Report saved to: %s\n", path)
	} else if _, err := os.Stdout.Write(out.Bytes()); err != nil {
		return err
	}

	if c.Bool("fail-on-error") && len(report.Validation.Errors) > 0 {
		return cli.Exit("", ExitValidation)
	}
	return nil
}
