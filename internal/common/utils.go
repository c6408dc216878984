package common

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"
)

// ErrInvalidURL is returned for targets that stay malformed after cleanup.
var ErrInvalidURL = errors.New("invalid URL")

var markdownLinkPattern = regexp.MustCompile(`^\[.*?\]\((https?://.+)\)$`)

// closers maps each closing bracket to its opener.
var closers = map[byte]byte{')': '(', ']': '[', '}': '{', '>': '<'}

// NewLogger returns the JSON logger every command writes to stderr.
func NewLogger(quiet bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if quiet {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// SanitizeURL performs basic cleanup on URLs to handle common copy-paste issues.
// Removes whitespace, markdown artifacts, trailing punctuation and wrapping
// brackets. A bracket is only stripped when it is unbalanced, so
// https://en.wikipedia.org/wiki/Go_(programming_language) survives intact.
func SanitizeURL(rawURL string) string {
	cleaned := strings.TrimSpace(rawURL)

	// [text](url) -> url
	if matches := markdownLinkPattern.FindStringSubmatch(cleaned); len(matches) > 1 {
		cleaned = matches[1]
	}

	for {
		next := trimOnce(cleaned)
		if next == cleaned {
			break
		}
		cleaned = next
	}

	return strings.TrimSpace(cleaned)
}

// trimOnce removes at most one stray character from either end of s.
func trimOnce(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}

	first, last := s[0], s[len(s)-1]

	if opener, ok := closers[last]; ok && len(s) > 1 && first == opener && balanced(s[1:len(s)-1], opener, last) {
		return s[1 : len(s)-1]
	}

	switch last {
	case ',', '.', ';', '"', '\'':
		return s[:len(s)-1]
	}
	if opener, ok := closers[last]; ok && strings.Count(s, string(last)) > strings.Count(s, string(opener)) {
		return s[:len(s)-1]
	}

	switch first {
	case '"', '\'':
		return s[1:]
	}
	for closer, opener := range closers {
		if first == opener && strings.Count(s, string(opener)) > strings.Count(s, string(closer)) {
			return s[1:]
		}
	}

	return s
}

func balanced(s string, opener, closer byte) bool {
	return strings.Count(s, string(opener)) == strings.Count(s, string(closer))
}

// NormalizeTarget sanitizes rawURL, adds https:// when no scheme is given
// and validates the result.
func NormalizeTarget(rawURL string) (string, error) {
	cleaned := SanitizeURL(rawURL)
	if cleaned == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidURL)
	}

	if !strings.HasPrefix(cleaned, "http://") && !strings.HasPrefix(cleaned, "https://") {
		if strings.Contains(cleaned, "://") {
			return "", fmt.Errorf("%w: only http and https are supported: %s", ErrInvalidURL, rawURL)
		}
		cleaned = "https://" + cleaned
	}

	// Spaces must be pre-encoded as %20
	if strings.ContainsAny(cleaned, " \t\n") {
		return "", fmt.Errorf("%w: contains spaces: %s", ErrInvalidURL, rawURL)
	}

	parsed, err := url.Parse(cleaned)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	host := parsed.Hostname()
	if host == "" || strings.ContainsAny(host, "{}[]<>\"'") {
		return "", fmt.Errorf("%w: bad host in %s", ErrInvalidURL, rawURL)
	}

	return cleaned, nil
}
