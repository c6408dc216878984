// Package reconciler compares the live (script-rendered) snapshot of a page
// with the raw server response to find tags crawlers will never see.
package reconciler

import "github.com/dtnitsch/og-preview/models"

// CriticalKeys are the tags whose absence from the raw HTML breaks link
// previews. Order is the order issues are reported in.
var CriticalKeys = []string{
	"og:title",
	"og:description",
	"og:image",
	"og:url",
	"twitter:card",
	"twitter:title",
	"twitter:image",
}

// Reconcile returns the critical keys set in live but missing from raw.
// A nil raw snapshot means the raw fetch failed; no issue is reported then.
func Reconcile(live, raw *models.PageSnapshot) models.ReconciliationIssue {
	issues := models.ReconciliationIssue{}
	if live == nil || raw == nil {
		return issues
	}
	for _, key := range CriticalKeys {
		if live.Tag(key) != "" && raw.Tag(key) == "" {
			issues = append(issues, key)
		}
	}
	return issues
}

// Effective picks the snapshot that validation and previews should use.
// Script-only tags are invisible to crawlers, so the raw snapshot wins
// whenever there are any.
func Effective(live, raw *models.PageSnapshot, issues models.ReconciliationIssue) (*models.PageSnapshot, models.Source) {
	if !issues.Empty() && raw != nil {
		return raw, models.SourceRaw
	}
	return live, models.SourceLive
}
