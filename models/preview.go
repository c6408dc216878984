package models

// Platform identifies a link-preview consumer.
type Platform string

const (
	PlatformFacebook Platform = "facebook"
	PlatformX        Platform = "x"
	PlatformLinkedIn Platform = "linkedin"
	PlatformSlack    Platform = "slack"
	PlatformWhatsApp Platform = "whatsapp"
)

// Layout is the card variant a platform would pick.
type Layout string

const (
	LayoutLargeImage Layout = "large_image"
	LayoutSummary    Layout = "summary"
	LayoutThumbnail  Layout = "thumbnail"
	LayoutAttachment Layout = "attachment"
)

// Preview is a mock of how one platform would display the link.
type Preview struct {
	Platform    Platform `json:"platform" yaml:"platform"`
	Layout      Layout   `json:"layout" yaml:"layout"`
	Image       string   `json:"image,omitempty" yaml:"image,omitempty"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Site        string   `json:"site" yaml:"site"`
	Favicon     string   `json:"favicon,omitempty" yaml:"favicon,omitempty"`
}

// CrawlerAccess reports whether a platform's crawler may fetch the page.
type CrawlerAccess struct {
	Platform  Platform `json:"platform" yaml:"platform"`
	UserAgent string   `json:"user_agent" yaml:"user_agent"`
	Allowed   bool     `json:"allowed" yaml:"allowed"`
	Checked   bool     `json:"checked" yaml:"checked"`
	Reason    string   `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Suggestion proposes a value for a tag the page is missing.
type Suggestion struct {
	Key    string `json:"key" yaml:"key"`
	Value  string `json:"value" yaml:"value"`
	Source string `json:"source" yaml:"source"`
}
