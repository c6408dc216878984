// Package render turns an inspection report into text, JSON, YAML or HTML.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dtnitsch/og-preview/models"
	"gopkg.in/yaml.v3"
)

// Format names an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHTML Format = "html"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML, FormatHTML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json, yaml or html)", s)
	}
}

// Render encodes report in the given format.
func Render(w io.Writer, report *models.Report, format Format) error {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatYAML:
		data, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		_, err = w.Write(data)
		return err
	case FormatHTML:
		return HTML(w, report)
	default:
		return Text(w, report)
	}
}

// Banner is the advisory shown when tags only exist after script execution.
// It returns "" when there is nothing to report.
func Banner(issues models.ReconciliationIssue) string {
	if issues.Empty() {
		return ""
	}
	return fmt.Sprintf("These tags are only set by JavaScript and are invisible to crawlers: %s. "+
		"Validation and previews below use the server-rendered HTML.", strings.Join(issues, ", "))
}

// TagRow is one line of the tag inspector.
type TagRow struct {
	Key        string
	Value      string
	Set        bool
	ScriptOnly bool
}

// TagRows lists preferred keys first, marking those that are not set.
func TagRows(tags models.TagMap, preferred []string, issues models.ReconciliationIssue) []TagRow {
	keys := tags.Keys(preferred)
	rows := make([]TagRow, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, TagRow{
			Key:        k,
			Value:      tags.Get(k),
			Set:        tags.Has(k),
			ScriptOnly: issues.Contains(k),
		})
	}
	return rows
}
