package utils

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidURL is returned for targets that are not absolute http(s) URLs
var ErrInvalidURL = errors.New("invalid target URL")

// IsValidURL validates if a string is a valid URL
func IsValidURL(rawURL string) bool {
	if rawURL == "" {
		return false
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return false
	}

	// Check if URL has a scheme
	return u.Scheme == "http" || u.Scheme == "https"
}

// ValidateTarget returns ErrInvalidURL wrapped with the offending value
func ValidateTarget(rawURL string) error {
	if !IsValidURL(rawURL) {
		return fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}
	return nil
}

// NormalizeURL strips trailing slashes from a base URL
func NormalizeURL(rawURL string) string {
	return strings.TrimRight(rawURL, "/")
}

// JoinURL resolves ref against base the way a browser would: an absolute
// path such as "/actuator" replaces whatever path the base carries.
func JoinURL(base, ref string) string {
	b, err := url.Parse(base)
	if err != nil {
		return base + ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return base + ref
	}
	return b.ResolveReference(r).String()
}

const upperhex = "0123456789ABCDEF"

// Quote percent-encodes s for appending to a URL. Unreserved characters and
// '/' pass through; everything else, including space, becomes %XX.
func Quote(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) || c == '/' {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '.', c == '_', c == '~':
		return true
	}
	return false
}
