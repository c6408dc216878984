package validator

import "github.com/dtnitsch/og-preview/models"

// MaxDescriptionLength is the recommended upper bound for og:description.
const MaxDescriptionLength = 200

// Rule checks one tag. A rule with a Fallback is satisfied when either key
// is set. PassMsg may be empty, in which case a satisfied rule reports
// nothing.
type Rule struct {
	Key        string
	Fallback   string
	Missing    models.Severity
	MissingMsg string
	PassMsg    string

	// MaxLen > 0 turns an over-long value into a warning. TooLongMsg is a
	// format string taking the actual length and MaxLen.
	MaxLen     int
	TooLongMsg string
}

// Rules is evaluated top to bottom; message order follows it.
var Rules = []Rule{
	{
		Key:        "og:title",
		Missing:    models.SeverityError,
		MissingMsg: "Missing og:title",
		PassMsg:    "og:title is set",
	},
	{
		Key:        "og:description",
		Missing:    models.SeverityError,
		MissingMsg: "Missing og:description",
		PassMsg:    "og:description is set",
		MaxLen:     MaxDescriptionLength,
		TooLongMsg: "og:description is %d chars (recommended: under %d)",
	},
	{
		Key:        "og:image",
		Missing:    models.SeverityError,
		MissingMsg: "Missing og:image - link previews will have no thumbnail",
		PassMsg:    "og:image is set",
	},
	{
		Key:        "og:url",
		Missing:    models.SeverityWarning,
		MissingMsg: "Missing og:url - should be the canonical URL",
		PassMsg:    "og:url is set",
	},
	{
		Key:        "og:type",
		Missing:    models.SeverityWarning,
		MissingMsg: `Missing og:type - defaults to "website"`,
		PassMsg:    "og:type is set",
	},
	{
		Key:        "twitter:card",
		Missing:    models.SeverityWarning,
		MissingMsg: "Missing twitter:card - Twitter won't show a rich preview",
		PassMsg:    "twitter:card is set",
	},
	{
		Key:        "twitter:title",
		Fallback:   "og:title",
		Missing:    models.SeverityWarning,
		MissingMsg: "Missing twitter:title (no og:title fallback either)",
	},
	{
		Key:        "twitter:image",
		Fallback:   "og:image",
		Missing:    models.SeverityWarning,
		MissingMsg: "Missing twitter:image (no og:image fallback either)",
	},
}
