// Package preview builds mock link previews for the major sharing platforms.
package preview

import (
	"html"
	"strings"

	"github.com/dtnitsch/og-preview/models"
	"github.com/dtnitsch/og-preview/pkg/extractor"
	"github.com/microcosm-cc/bluemonday"
)

// Platforms lists every preview Build produces, in display order.
var Platforms = []models.Platform{
	models.PlatformFacebook,
	models.PlatformX,
	models.PlatformLinkedIn,
	models.PlatformSlack,
	models.PlatformWhatsApp,
}

// TwitterLargeImageCard selects the large-image layout on X.
const TwitterLargeImageCard = "summary_large_image"

// Builder turns a snapshot into previews. Platforms render tag values as
// plain text, so markup is stripped before display.
type Builder struct {
	policy *bluemonday.Policy
}

func NewBuilder() *Builder {
	return &Builder{policy: bluemonday.StrictPolicy()}
}

// common holds the values every platform starts from.
type common struct {
	image       string
	title       string
	description string
	host        string
}

// Build returns one preview per platform for s.
func (b *Builder) Build(s *models.PageSnapshot) []models.Preview {
	c := common{
		image:       extractor.ResolveURL(firstNonEmpty(s.Tag("og:image"), s.Tag("twitter:image")), s.URL),
		title:       b.text(firstNonEmpty(s.Tag("og:title"), s.Tag("twitter:title"), s.Title)),
		description: b.text(firstNonEmpty(s.Tag("og:description"), s.Tag("twitter:description"), s.Description)),
		host:        extractor.Hostname(s.URL),
	}

	return []models.Preview{
		{
			Platform:    models.PlatformFacebook,
			Layout:      models.LayoutLargeImage,
			Image:       c.image,
			Title:       c.title,
			Description: c.description,
			Site:        c.host,
		},
		b.x(s, c),
		{
			Platform: models.PlatformLinkedIn,
			Layout:   models.LayoutLargeImage,
			Image:    c.image,
			Title:    c.title,
			Site:     c.host,
		},
		{
			Platform:    models.PlatformSlack,
			Layout:      models.LayoutAttachment,
			Image:       c.image,
			Title:       c.title,
			Description: c.description,
			Site:        b.text(s.SiteName),
			Favicon:     s.Favicon,
		},
		{
			Platform:    models.PlatformWhatsApp,
			Layout:      models.LayoutThumbnail,
			Image:       c.image,
			Title:       c.title,
			Description: c.description,
			Site:        c.host,
		},
	}
}

func (b *Builder) x(s *models.PageSnapshot, c common) models.Preview {
	p := models.Preview{
		Platform:    models.PlatformX,
		Layout:      XLayout(s.Tag("twitter:card")),
		Image:       c.image,
		Title:       firstNonEmpty(b.text(s.Tag("twitter:title")), c.title),
		Description: firstNonEmpty(b.text(s.Tag("twitter:description")), c.description),
		Site:        c.host,
	}
	return p
}

// XLayout maps a twitter:card value to a layout; anything other than the
// large-image card, including a missing one, renders as a summary.
func XLayout(card string) models.Layout {
	if card == TwitterLargeImageCard {
		return models.LayoutLargeImage
	}
	return models.LayoutSummary
}

// text strips markup and decodes entities so the value reads like plain text.
func (b *Builder) text(v string) string {
	if v == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(b.policy.Sanitize(v)))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
