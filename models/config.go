// Package models defines the data structures shared by the inspection pipeline.
package models

import "time"

// InspectConfig holds runtime configuration for a single inspection.
// All values come from CLI flags, not external config files.
type InspectConfig struct {
	URL        string
	LiveFile   string // rendered DOM saved by the caller; skips Chrome
	NoBrowser  bool   // treat the raw HTML as the live DOM
	ChromePath string
	UserAgent  string
	Timeout    time.Duration
	Settle     time.Duration // script run time after the page is ready
	NoRobots   bool
	NoSuggest  bool
}

// DefaultTimeout bounds a whole inspection when no --timeout is given.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is sent with the raw fetch and the robots.txt request.
const DefaultUserAgent = "og-preview/1.0 (+https://github.com/dtnitsch/og-preview)"
