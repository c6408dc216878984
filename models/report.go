package models

import "time"

// HTTPMetadata describes the response of the raw fetch.
type HTTPMetadata struct {
	StatusCode  int    `json:"status_code" yaml:"status_code"`
	ContentType string `json:"content_type,omitempty" yaml:"content_type,omitempty"`
	FinalURL    string `json:"final_url,omitempty" yaml:"final_url,omitempty"`
	SizeBytes   int    `json:"size_bytes" yaml:"size_bytes"`
}

// Report is the complete outcome of one inspection.
type Report struct {
	URL string `json:"url" yaml:"url"`

	Live      *PageSnapshot `json:"live" yaml:"live"`
	Raw       *PageSnapshot `json:"raw" yaml:"raw"`
	RawError  string        `json:"raw_error,omitempty" yaml:"raw_error,omitempty"`
	RawHTTP   *HTTPMetadata `json:"raw_http,omitempty" yaml:"raw_http,omitempty"`
	LiveFrom  string        `json:"live_from" yaml:"live_from"` // chrome, file or raw
	Effective Source        `json:"effective" yaml:"effective"`

	ScriptOnlyTags ReconciliationIssue `json:"script_only_tags" yaml:"script_only_tags"`
	Validation     ValidationResult    `json:"validation" yaml:"validation"`
	Badge          Badge               `json:"badge" yaml:"badge"`
	Previews       []Preview           `json:"previews" yaml:"previews"`
	Crawlers       []CrawlerAccess     `json:"crawlers,omitempty" yaml:"crawlers,omitempty"`
	Suggestions    []Suggestion        `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`

	InspectedAt time.Time `json:"inspected_at" yaml:"inspected_at"`
	DurationMS  int64     `json:"duration_ms" yaml:"duration_ms"`
}

// EffectiveSnapshot returns the snapshot validation and previews used.
func (r *Report) EffectiveSnapshot() *PageSnapshot {
	if r.Effective == SourceRaw && r.Raw != nil {
		return r.Raw
	}
	return r.Live
}
