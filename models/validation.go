package models

import "fmt"

// Severity classifies a single validation finding.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityPass
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityPass:
		return "pass"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "none"
	}
}

// MarshalText lets Severity serialize as its name in JSON and YAML.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Severity) UnmarshalText(b []byte) error {
	switch string(b) {
	case "pass":
		*s = SeverityPass
	case "warning":
		*s = SeverityWarning
	case "error":
		*s = SeverityError
	case "none", "":
		*s = SeverityNone
	default:
		return fmt.Errorf("unknown severity %q", b)
	}
	return nil
}

// ValidationResult holds human-readable findings bucketed by severity.
type ValidationResult struct {
	Errors   []string `json:"errors" yaml:"errors"`
	Warnings []string `json:"warnings" yaml:"warnings"`
	Passes   []string `json:"passes" yaml:"passes"`
}

// Add appends msg to the bucket matching sev. SeverityNone is dropped.
func (r *ValidationResult) Add(sev Severity, msg string) {
	switch sev {
	case SeverityError:
		r.Errors = append(r.Errors, msg)
	case SeverityWarning:
		r.Warnings = append(r.Warnings, msg)
	case SeverityPass:
		r.Passes = append(r.Passes, msg)
	}
}

// Badge is the single summary shown next to the validation report.
type Badge struct {
	Level Severity `json:"level" yaml:"level"`
	Text  string   `json:"text" yaml:"text"`
}

// Plural renders "1 error" / "3 errors".
func Plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
