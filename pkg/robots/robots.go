// Package robots checks whether link-preview crawlers may fetch a page.
package robots

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dtnitsch/og-preview/models"
	"github.com/temoto/robotstxt"
)

// Crawler pairs a platform with the user agent its unfurler announces.
type Crawler struct {
	Platform  models.Platform
	UserAgent string
}

// Crawlers are tested in this order.
var Crawlers = []Crawler{
	{Platform: models.PlatformFacebook, UserAgent: "facebookexternalhit"},
	{Platform: models.PlatformX, UserAgent: "Twitterbot"},
	{Platform: models.PlatformLinkedIn, UserAgent: "LinkedInBot"},
	{Platform: models.PlatformSlack, UserAgent: "Slackbot"},
	{Platform: models.PlatformWhatsApp, UserAgent: "WhatsApp"},
}

// Checker fetches robots.txt and evaluates it for every crawler.
type Checker struct {
	client    *http.Client
	userAgent string
}

func NewChecker(client *http.Client, userAgent string) *Checker {
	if client == nil {
		client = http.DefaultClient
	}
	return &Checker{client: client, userAgent: userAgent}
}

// Check never fails: when robots.txt cannot be read every entry is returned
// unchecked with the reason.
func (c *Checker) Check(ctx context.Context, pageURL string) []models.CrawlerAccess {
	data, target, err := c.fetch(ctx, pageURL)
	if err != nil {
		return unchecked(err.Error())
	}

	out := make([]models.CrawlerAccess, 0, len(Crawlers))
	for _, cr := range Crawlers {
		allowed := data.TestAgent(target, cr.UserAgent)
		access := models.CrawlerAccess{
			Platform:  cr.Platform,
			UserAgent: cr.UserAgent,
			Allowed:   allowed,
			Checked:   true,
		}
		if !allowed {
			access.Reason = fmt.Sprintf("robots.txt disallows %s for %s", target, cr.UserAgent)
		}
		out = append(out, access)
	}
	return out
}

// fetch returns the parsed robots.txt and the path (plus query) to test.
func (c *Checker) fetch(ctx context.Context, pageURL string) (*robotstxt.RobotsData, string, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return nil, "", fmt.Errorf("invalid URL: %w", err)
	}
	robotsURL := u.Scheme + "://" + u.Host + "/robots.txt"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create robots.txt request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch robots.txt: %w", err)
	}
	defer resp.Body.Close()

	data, err := robotstxt.FromResponse(resp)
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse robots.txt: %w", err)
	}

	target := u.EscapedPath()
	if target == "" {
		target = "/"
	}
	if u.RawQuery != "" {
		target += "?" + u.RawQuery
	}
	return data, target, nil
}

func unchecked(reason string) []models.CrawlerAccess {
	out := make([]models.CrawlerAccess, 0, len(Crawlers))
	for _, cr := range Crawlers {
		out = append(out, models.CrawlerAccess{
			Platform:  cr.Platform,
			UserAgent: cr.UserAgent,
			Reason:    reason,
		})
	}
	return out
}
