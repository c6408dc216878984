// Package extractor reads Open Graph and Twitter Card tags out of an HTML
// document into a models.PageSnapshot.
package extractor

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/og-preview/models"
)

const (
	ogPrefix      = "og:"
	twitterPrefix = "twitter:"
)

// faviconRels are checked in order; the first match wins.
var faviconRels = []string{"icon", "shortcut icon", "apple-touch-icon"}

// ExtractHTML parses markup and extracts a snapshot from it.
func ExtractHTML(html, pageURL string) (*models.PageSnapshot, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return Extract(doc, pageURL), nil
}

// Extract builds a snapshot from a parsed document. It never fails: a page
// without any social tags produces empty maps and document-level fallbacks.
//
// Meta elements are visited in document order. When a key repeats, the last
// element with non-empty content wins; empty content counts as absent.
func Extract(doc *goquery.Document, pageURL string) *models.PageSnapshot {
	og := models.TagMap{}
	twitter := models.TagMap{}

	doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		content := strings.TrimSpace(s.AttrOr("content", ""))
		if content == "" {
			return
		}

		property := strings.TrimSpace(s.AttrOr("property", ""))
		name := strings.TrimSpace(s.AttrOr("name", ""))

		if strings.HasPrefix(property, ogPrefix) {
			og[property] = content
		}
		if key := twitterKey(name, property); key != "" {
			twitter[key] = content
		}
	})

	snap := &models.PageSnapshot{
		OGTags:      og,
		TwitterTags: twitter,
		URL:         pageURL,
	}

	snap.Title = og.Get("og:title")
	if snap.Title == "" {
		snap.Title = normalizeText(doc.Find("title").First().Text())
	}

	snap.Description = og.Get("og:description")
	if snap.Description == "" {
		snap.Description = metaDescription(doc)
	}

	snap.SiteName = og.Get("og:site_name")
	if snap.SiteName == "" {
		snap.SiteName = Hostname(pageURL)
	}

	snap.Favicon = favicon(doc, pageURL)

	return snap
}

// twitterKey returns whichever of name/property carries the twitter: prefix,
// preferring name.
func twitterKey(name, property string) string {
	if strings.HasPrefix(name, twitterPrefix) {
		return name
	}
	if strings.HasPrefix(property, twitterPrefix) {
		return property
	}
	return ""
}

func metaDescription(doc *goquery.Document) string {
	var desc string
	doc.Find("meta").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !strings.EqualFold(strings.TrimSpace(s.AttrOr("name", "")), "description") {
			return true
		}
		desc = strings.TrimSpace(s.AttrOr("content", ""))
		return false
	})
	return desc
}

func favicon(doc *goquery.Document, pageURL string) string {
	links := doc.Find("link[rel]")
	for _, rel := range faviconRels {
		var href string
		links.EachWithBreak(func(_ int, s *goquery.Selection) bool {
			if !strings.EqualFold(strings.Join(strings.Fields(s.AttrOr("rel", "")), " "), rel) {
				return true
			}
			href = strings.TrimSpace(s.AttrOr("href", ""))
			return href == ""
		})
		if href != "" {
			return ResolveURL(href, pageURL)
		}
	}
	return ""
}

// ResolveURL resolves ref against base. Unparseable input is returned as is.
func ResolveURL(ref, base string) string {
	if ref == "" {
		return ""
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return baseURL.ResolveReference(refURL).String()
}

// Hostname returns the host part of rawURL without port, or rawURL itself
// when it cannot be parsed.
func Hostname(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return rawURL
	}
	return u.Hostname()
}

// normalizeText collapses runs of whitespace into single spaces.
func normalizeText(input string) string {
	return strings.Join(strings.Fields(input), " ")
}
