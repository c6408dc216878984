package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dtnitsch/og-preview/models"
	"github.com/dtnitsch/og-preview/pkg/preview"
	"github.com/dtnitsch/og-preview/pkg/validator"
	"gopkg.in/yaml.v3"
)

func sampleReport(issues models.ReconciliationIssue) *models.Report {
	live := &models.PageSnapshot{
		OGTags: models.TagMap{
			"og:title":       "Hello <World>",
			"og:description": "Desc",
			"og:image":       "https://example.com/i.png",
			"og:custom":      "x",
		},
		TwitterTags: models.TagMap{"twitter:card": "summary_large_image"},
		SiteName:    "example.com",
		URL:         "https://example.com/",
	}
	raw := &models.PageSnapshot{OGTags: models.TagMap{}, TwitterTags: models.TagMap{}, URL: "https://example.com/"}

	effective, source := live, models.SourceLive
	if !issues.Empty() {
		effective, source = raw, models.SourceRaw
	}
	result := validator.Validate(effective)
	return &models.Report{
		URL:            "https://example.com/",
		Live:           live,
		Raw:            raw,
		LiveFrom:       "chrome",
		Effective:      source,
		ScriptOnlyTags: issues,
		Validation:     result,
		Badge:          validator.Score(result),
		Previews:       preview.NewBuilder().Build(effective),
		Crawlers: []models.CrawlerAccess{
			{Platform: models.PlatformX, UserAgent: "Twitterbot", Checked: true, Allowed: false, Reason: "blocked"},
		},
		Suggestions: []models.Suggestion{{Key: "og:locale", Value: "en_US", Source: "language-detection"}},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"TEXT", FormatText, false},
		{"json", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"html", FormatHTML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBanner(t *testing.T) {
	if got := Banner(models.ReconciliationIssue{}); got != "" {
		t.Errorf("Banner(empty) = %q", got)
	}
	got := Banner(models.ReconciliationIssue{"og:title", "og:image"})
	if !strings.Contains(got, "og:title, og:image") {
		t.Errorf("Banner() = %q, want tag list", got)
	}
}

func TestTagRows(t *testing.T) {
	rows := TagRows(models.TagMap{"og:title": "T", "og:zzz": "z", "og:aaa": "a"}, []string{"og:title", "og:image"}, models.ReconciliationIssue{"og:image"})

	var keys []string
	for _, r := range rows {
		keys = append(keys, r.Key)
	}
	if strings.Join(keys, ",") != "og:title,og:image,og:aaa,og:zzz" {
		t.Errorf("keys = %v", keys)
	}
	if rows[1].Set || !rows[1].ScriptOnly {
		t.Errorf("og:image row = %+v, want unset and script-only", rows[1])
	}
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	if err := Text(&buf, sampleReport(models.ReconciliationIssue{"og:title"})); err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"only set by JavaScript",
		"og:title",
		"[JS only]",
		"not set",
		"Validation [3 errors]",
		"Missing og:image",
		"[x / summary]",
		"BLOCKED",
		`<meta property="og:locale" content="en_US">`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Text() output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderJSONAndYAML(t *testing.T) {
	report := sampleReport(models.ReconciliationIssue{})

	var buf bytes.Buffer
	if err := Render(&buf, report, FormatJSON); err != nil {
		t.Fatalf("Render(json) error = %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	badge, _ := decoded["badge"].(map[string]any)
	if badge["level"] != "warning" {
		t.Errorf("badge.level = %v, want warning", badge["level"])
	}

	buf.Reset()
	if err := Render(&buf, report, FormatYAML); err != nil {
		t.Fatalf("Render(yaml) error = %v", err)
	}
	var y map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &y); err != nil {
		t.Fatalf("invalid YAML: %v", err)
	}
	if y["effective"] != "live" {
		t.Errorf("effective = %v", y["effective"])
	}
}

func TestHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sampleReport(models.ReconciliationIssue{}), FormatHTML); err != nil {
		t.Fatalf("Render(html) error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		`data-platform="x" data-layout="large_image"`,
		`data-platform="whatsapp" data-layout="thumbnail"`,
		`data-platform="slack" data-layout="attachment"`,
		`badge-warning`,
		`Hello &lt;World&gt;`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("HTML output missing %q", want)
		}
	}
	if strings.Contains(out, "only set by JavaScript") {
		t.Error("banner must not render without script-only tags")
	}
}
