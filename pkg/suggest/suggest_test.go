package suggest

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/dtnitsch/og-preview/models"
)

const articlePage = `<!doctype html>
<html><head>
<title>Migrating a Payment Service</title>
<meta name="description" content="How we moved a payment service to a new queue without downtime.">
</head><body>
<article>
<h1>Migrating a Payment Service</h1>
<p>Last spring we moved our payment service from a homegrown queue to a managed broker, and we did it without a single minute of downtime for our customers.</p>
<p>The migration took six weeks, three feature flags, and a great deal of patience from everyone on the team, including the people answering support tickets.</p>
<p>This post walks through the plan, the mistakes we made along the way, and the tooling we built so that the next migration will be a lot less stressful.</p>
</article>
</body></html>`

func find(suggestions []models.Suggestion, key string) (models.Suggestion, bool) {
	for _, s := range suggestions {
		if s.Key == key {
			return s, true
		}
	}
	return models.Suggestion{}, false
}

func TestSuggestMissingTags(t *testing.T) {
	snap := &models.PageSnapshot{
		OGTags:      models.TagMap{},
		TwitterTags: models.TagMap{},
		Title:       "Migrating a Payment Service",
		Description: "How we moved a payment service to a new queue without downtime.",
		URL:         "https://blog.example.com/payments",
	}

	got := NewSuggester(nil).Suggest(snap, articlePage)

	desc, ok := find(got, "og:description")
	if !ok {
		t.Fatalf("no og:description suggestion in %v", got)
	}
	if desc.Source != SourceReadability || desc.Value == "" {
		t.Errorf("og:description suggestion = %+v", desc)
	}

	locale, ok := find(got, "og:locale")
	if !ok {
		t.Fatalf("no og:locale suggestion in %v", got)
	}
	if locale.Value != "en_US" {
		t.Errorf("og:locale = %q, want en_US", locale.Value)
	}
}

func TestSuggestSkipsPresentTags(t *testing.T) {
	snap := &models.PageSnapshot{
		OGTags: models.TagMap{
			"og:title":       "T",
			"og:description": "D",
			"og:image":       "https://example.com/i.png",
			"og:locale":      "en_GB",
		},
		TwitterTags: models.TagMap{},
		URL:         "https://blog.example.com/payments",
	}

	if got := NewSuggester(nil).Suggest(snap, articlePage); len(got) != 0 {
		t.Errorf("Suggest() = %v, want nothing for a complete page", got)
	}
}

func TestSuggestEmptyHTML(t *testing.T) {
	snap := &models.PageSnapshot{OGTags: models.TagMap{}, TwitterTags: models.TagMap{}, URL: "https://example.com"}
	if got := NewSuggester(nil).Suggest(snap, ""); len(got) != 0 {
		t.Errorf("Suggest() = %v, want nothing without content", got)
	}
}

func TestLocale(t *testing.T) {
	g := NewSuggester(nil)
	tests := []struct {
		text string
		want string
	}{
		{"The quick brown fox jumps over the lazy dog while the farmer watches from the porch.", "en_US"},
		{"Der schnelle braune Fuchs springt über den faulen Hund, während der Bauer von der Veranda zusieht.", "de_DE"},
		{"short", ""},
	}
	for _, tt := range tests {
		if got := g.Locale(tt.text); got != tt.want {
			t.Errorf("Locale(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short text", 200); got != "short text" {
		t.Errorf("Truncate() = %q", got)
	}

	long := strings.Repeat("word ", 60)
	got := Truncate(long, 200)
	if n := utf8.RuneCountInString(got); n > 200 {
		t.Errorf("len(Truncate()) = %d, want <= 200", n)
	}
	if !strings.HasSuffix(got, "word…") {
		t.Errorf("Truncate() = %q, want cut on a word boundary", got)
	}
}
