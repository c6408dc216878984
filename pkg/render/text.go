package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/dtnitsch/og-preview/models"
)

const notSet = "not set"

// Text writes a terminal report.
func Text(w io.Writer, r *models.Report) error {
	p := &printer{w: w}

	p.printf("OG Preview: %s\n", r.URL)
	p.printf("%s\n", strings.Repeat("=", 60))
	p.printf("Live DOM from: %s    Evaluated: %s HTML\n", r.LiveFrom, r.Effective)
	if r.RawError != "" {
		p.printf("Raw HTML unavailable (%s); reconciliation skipped\n", r.RawError)
	}
	if banner := Banner(r.ScriptOnlyTags); banner != "" {
		p.printf("\n!! %s\n", banner)
	}

	snap := r.EffectiveSnapshot()
	p.section("Open Graph tags")
	p.tags(TagRows(snap.OGTags, models.CommonOGKeys, r.ScriptOnlyTags))
	p.section("Twitter tags")
	p.tags(TagRows(snap.TwitterTags, models.CommonTwitterKeys, r.ScriptOnlyTags))

	p.section(fmt.Sprintf("Validation [%s]", r.Badge.Text))
	for _, msg := range r.Validation.Errors {
		p.printf("  ✘ %s\n", msg)
	}
	for _, msg := range r.Validation.Warnings {
		p.printf("  ⚠ %s\n", msg)
	}
	for _, msg := range r.Validation.Passes {
		p.printf("  ✔ %s\n", msg)
	}

	p.section("Previews")
	for _, pv := range r.Previews {
		p.preview(pv)
	}

	if len(r.Crawlers) > 0 {
		p.section("Crawler access (robots.txt)")
		for _, c := range r.Crawlers {
			status := "allowed"
			switch {
			case !c.Checked:
				status = "unknown: " + c.Reason
			case !c.Allowed:
				status = "BLOCKED"
			}
			p.printf("  %-10s %-20s %s\n", c.Platform, c.UserAgent, status)
		}
	}

	if len(r.Suggestions) > 0 {
		p.section("Suggestions")
		for _, s := range r.Suggestions {
			p.printf("  <meta property=%q content=%q>  (%s)\n", s.Key, s.Value, s.Source)
		}
	}

	return p.err
}

// printer remembers the first write error so callers check once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) section(title string) {
	p.printf("\n%s\n%s\n", title, strings.Repeat("-", len(title)))
}

func (p *printer) tags(rows []TagRow) {
	for _, row := range rows {
		value := row.Value
		if !row.Set {
			value = notSet
		}
		marker := ""
		if row.ScriptOnly {
			marker = "  [JS only]"
		}
		p.printf("  %-22s %s%s\n", row.Key, value, marker)
	}
}

func (p *printer) preview(pv models.Preview) {
	p.printf("  [%s / %s]\n", pv.Platform, pv.Layout)
	p.printf("    site:  %s\n", orNotSet(pv.Site))
	p.printf("    title: %s\n", orNotSet(pv.Title))
	if pv.Platform != models.PlatformLinkedIn {
		p.printf("    desc:  %s\n", orNotSet(pv.Description))
	}
	p.printf("    image: %s\n", orNotSet(pv.Image))
}

func orNotSet(s string) string {
	if s == "" {
		return notSet
	}
	return s
}
