// Package fetcher retrieves the raw, server-delivered HTML of a page: the
// markup a non-executing crawler sees.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/og-preview/models"
)

// MaxBodyBytes caps how much of a response is read.
const MaxBodyBytes int64 = 5 << 20

// ErrNonHTML is returned when the response is not an HTML document.
var ErrNonHTML = errors.New("response is not HTML")

// Page is a fetched document together with its HTTP metadata.
type Page struct {
	HTML string
	Meta models.HTTPMetadata
}

// Fetcher performs credential-less GET requests: no cookie jar, no auth.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// NewFetcher returns a Fetcher sending userAgent (DefaultUserAgent if empty).
func NewFetcher(userAgent string, timeout time.Duration) *Fetcher {
	if userAgent == "" {
		userAgent = models.DefaultUserAgent
	}
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Client exposes the underlying HTTP client for sibling requests such as
// robots.txt.
func (f *Fetcher) Client() *http.Client {
	return f.client
}

// UserAgent returns the User-Agent header the fetcher sends.
func (f *Fetcher) UserAgent() string {
	return f.userAgent
}

// GetHTML fetches rawURL and parses it with goquery.
func (f *Fetcher) GetHTML(ctx context.Context, rawURL string) (*goquery.Document, *Page, error) {
	page, err := f.GetPage(ctx, rawURL)
	if err != nil {
		return nil, nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, page, nil
}

// GetPage fetches rawURL and returns the body as a string.
func (f *Fetcher) GetPage(ctx context.Context, rawURL string) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch HTML, status code: %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if !isHTML(contentType) {
		return nil, fmt.Errorf("%w: %s", ErrNonHTML, contentType)
	}

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Page{
		HTML: string(bodyBytes),
		Meta: models.HTTPMetadata{
			StatusCode:  resp.StatusCode,
			ContentType: contentType,
			FinalURL:    resp.Request.URL.String(),
			SizeBytes:   len(bodyBytes),
		},
	}, nil
}

// isHTML accepts a missing Content-Type; servers omit it often enough.
func isHTML(contentType string) bool {
	if contentType == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}
