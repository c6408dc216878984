package models

import (
	"sort"
	"strings"
)

// TagMap maps a tag key such as "og:title" to its content.
type TagMap map[string]string

// Get returns the value stored under key, or "" when absent.
func (m TagMap) Get(key string) string {
	if m == nil {
		return ""
	}
	return m[key]
}

// Has reports whether key carries a non-empty value.
func (m TagMap) Has(key string) bool {
	return m.Get(key) != ""
}

// Keys returns preferred keys first (whether set or not), followed by the
// remaining keys of the map in lexical order.
func (m TagMap) Keys(preferred []string) []string {
	seen := make(map[string]struct{}, len(preferred))
	keys := make([]string, 0, len(preferred)+len(m))
	for _, k := range preferred {
		seen[k] = struct{}{}
		keys = append(keys, k)
	}

	var rest []string
	for k := range m {
		if _, ok := seen[k]; !ok {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

// Preferred display order for the tag inspector.
var (
	CommonOGKeys      = []string{"og:title", "og:description", "og:image", "og:url", "og:type", "og:site_name", "og:locale"}
	CommonTwitterKeys = []string{"twitter:card", "twitter:title", "twitter:description", "twitter:image", "twitter:site", "twitter:creator"}
)

// PageSnapshot is the social metadata read from one HTML document.
// It is built once per extraction pass and never modified afterwards.
type PageSnapshot struct {
	OGTags      TagMap `json:"og_tags" yaml:"og_tags"`
	TwitterTags TagMap `json:"twitter_tags" yaml:"twitter_tags"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	SiteName    string `json:"site_name" yaml:"site_name"`
	URL         string `json:"url" yaml:"url"`
	Favicon     string `json:"favicon,omitempty" yaml:"favicon,omitempty"`
}

// Tag looks key up in the Open Graph or Twitter map depending on its prefix.
func (s *PageSnapshot) Tag(key string) string {
	if s == nil {
		return ""
	}
	if strings.HasPrefix(key, "twitter:") {
		return s.TwitterTags.Get(key)
	}
	return s.OGTags.Get(key)
}

// ReconciliationIssue lists tag keys that only exist after script execution.
type ReconciliationIssue []string

// Empty reports whether no script-only tags were found.
func (r ReconciliationIssue) Empty() bool {
	return len(r) == 0
}

// Contains reports whether key is part of the issue.
func (r ReconciliationIssue) Contains(key string) bool {
	for _, k := range r {
		if k == key {
			return true
		}
	}
	return false
}

// Source names the snapshot a report was evaluated against.
type Source string

const (
	SourceLive Source = "live"
	SourceRaw  Source = "raw"
)
