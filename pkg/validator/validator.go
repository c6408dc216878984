// Package validator scores a page snapshot against a fixed table of
// social-metadata rules.
package validator

import (
	"fmt"
	"unicode/utf8"

	"github.com/dtnitsch/og-preview/models"
)

// Validate applies Rules to s. It does not modify s and always produces the
// same result for the same input.
func Validate(s *models.PageSnapshot) models.ValidationResult {
	return ValidateWith(Rules, s)
}

// ValidateWith applies an arbitrary rule table.
func ValidateWith(rules []Rule, s *models.PageSnapshot) models.ValidationResult {
	result := models.ValidationResult{
		Errors:   []string{},
		Warnings: []string{},
		Passes:   []string{},
	}
	for _, r := range rules {
		sev, msg := r.Evaluate(s)
		result.Add(sev, msg)
	}
	return result
}

// Evaluate returns the severity and message of the rule for s.
func (r Rule) Evaluate(s *models.PageSnapshot) (models.Severity, string) {
	value := s.Tag(r.Key)
	if value == "" && r.Fallback != "" {
		if s.Tag(r.Fallback) != "" {
			return models.SeverityNone, ""
		}
	}
	if value == "" {
		return r.Missing, r.MissingMsg
	}

	if r.MaxLen > 0 {
		if n := utf8.RuneCountInString(value); n > r.MaxLen {
			return models.SeverityWarning, fmt.Sprintf(r.TooLongMsg, n, r.MaxLen)
		}
	}

	if r.PassMsg == "" {
		return models.SeverityNone, ""
	}
	return models.SeverityPass, r.PassMsg
}

// Score reduces a result to one badge: errors beat warnings beat all clear.
func Score(r models.ValidationResult) models.Badge {
	switch {
	case len(r.Errors) > 0:
		return models.Badge{Level: models.SeverityError, Text: models.Plural(len(r.Errors), "error")}
	case len(r.Warnings) > 0:
		return models.Badge{Level: models.SeverityWarning, Text: models.Plural(len(r.Warnings), "warning")}
	default:
		return models.Badge{Level: models.SeverityPass, Text: "All good"}
	}
}
