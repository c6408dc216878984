// Package suggest proposes values for core social tags a page is missing,
// derived from the page's own content.
package suggest

import (
	"log/slog"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/og-preview/models"
	"github.com/dtnitsch/og-preview/pkg/extractor"
	"github.com/dtnitsch/og-preview/pkg/validator"
	"github.com/go-shiori/go-readability"
	"github.com/pemistahl/lingua-go"
)

const (
	SourceReadability = "readability"
	SourceLanguage    = "language-detection"
)

// locales maps detected languages to the og:locale Facebook expects.
var locales = map[lingua.Language]string{
	lingua.English:    "en_US",
	lingua.German:     "de_DE",
	lingua.French:     "fr_FR",
	lingua.Spanish:    "es_ES",
	lingua.Portuguese: "pt_BR",
	lingua.Italian:    "it_IT",
	lingua.Dutch:      "nl_NL",
	lingua.Polish:     "pl_PL",
	lingua.Swedish:    "sv_SE",
	lingua.Turkish:    "tr_TR",
	lingua.Russian:    "ru_RU",
	lingua.Japanese:   "ja_JP",
	lingua.Chinese:    "zh_CN",
	lingua.Korean:     "ko_KR",
}

// minLanguageText is the shortest text worth running detection on.
const minLanguageText = 20

type Suggester struct {
	detector lingua.LanguageDetector
	logger   *slog.Logger
}

func NewSuggester(logger *slog.Logger) *Suggester {
	if logger == nil {
		logger = slog.Default()
	}
	languages := make([]lingua.Language, 0, len(locales))
	for lang := range locales {
		languages = append(languages, lang)
	}
	return &Suggester{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			WithMinimumRelativeDistance(0.1).
			Build(),
		logger: logger,
	}
}

// Suggest returns proposals for og:title, og:description, og:image and
// og:locale, only for keys s does not already carry.
func (g *Suggester) Suggest(s *models.PageSnapshot, html string) []models.Suggestion {
	var out []models.Suggestion

	article, ok := g.article(html, s.URL)
	if ok {
		if !s.OGTags.Has("og:title") && article.Title != "" {
			out = append(out, models.Suggestion{Key: "og:title", Value: normalize(article.Title), Source: SourceReadability})
		}
		if !s.OGTags.Has("og:description") {
			if excerpt := Truncate(normalize(article.Excerpt), validator.MaxDescriptionLength); excerpt != "" {
				out = append(out, models.Suggestion{Key: "og:description", Value: excerpt, Source: SourceReadability})
			}
		}
		if !s.OGTags.Has("og:image") {
			if img := leadImage(article, s.URL); img != "" {
				out = append(out, models.Suggestion{Key: "og:image", Value: img, Source: SourceReadability})
			}
		}
	}

	if !s.OGTags.Has("og:locale") {
		text := strings.TrimSpace(s.Title + " " + s.Description)
		if utf8.RuneCountInString(text) < minLanguageText && ok {
			text = article.TextContent
		}
		if locale := g.Locale(text); locale != "" {
			out = append(out, models.Suggestion{Key: "og:locale", Value: locale, Source: SourceLanguage})
		}
	}

	return out
}

// Locale detects the language of text and returns a ll_CC locale, or ""
// when the text is too short or the language is not recognised.
func (g *Suggester) Locale(text string) string {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < minLanguageText {
		return ""
	}
	lang, exists := g.detector.DetectLanguageOf(text)
	if !exists {
		return ""
	}
	return locales[lang]
}

func (g *Suggester) article(html, pageURL string) (readability.Article, bool) {
	if strings.TrimSpace(html) == "" {
		return readability.Article{}, false
	}
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return readability.Article{}, false
	}
	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(html), parsedURL)
	if err != nil {
		g.logger.Debug("readability failed", "url", pageURL, "error", err)
		return readability.Article{}, false
	}
	return article, true
}

// leadImage prefers readability's metadata image, then the first image in
// the extracted content.
func leadImage(article readability.Article, pageURL string) string {
	if article.Image != "" {
		return extractor.ResolveURL(article.Image, pageURL)
	}
	if article.Content == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return ""
	}
	src := strings.TrimSpace(doc.Find("img[src]").First().AttrOr("src", ""))
	return extractor.ResolveURL(src, pageURL)
}

// Truncate cuts s to at most limit characters, backing off to the last word
// boundary and appending an ellipsis when anything was removed.
func Truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	if limit < 1 {
		return ""
	}
	runes := []rune(s)
	cut := string(runes[:limit-1])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}

func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
