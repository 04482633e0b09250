package common

import (
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strings"
)

// urlPattern is a coarse shape check applied before net/url parsing.
// Must start with http:// or https:// and carry a plausible domain.
var urlPattern = regexp.MustCompile(`^https?://[a-zA-Z0-9][-a-zA-Z0-9.:]*[a-zA-Z0-9](/[^\s]*)?$`)

// markdownLinkPattern extracts the URL from a pasted markdown link.
var markdownLinkPattern = regexp.MustCompile(`^\[.*?\]\((https?://[^\)]+)\)$`)

// blockedHostSuffixes are hostname suffixes that resolve to private or
// local infrastructure and must never be fetched.
var blockedHostSuffixes = []string{
	".local",
	".localhost",
	".internal",
}

// blockedHostnames are exact hostnames that must never be fetched.
var blockedHostnames = map[string]struct{}{
	"localhost":                {},
	"metadata":                 {},
	"metadata.google.internal": {},
}

// SanitizeURL performs basic cleanup on URLs to handle common copy-paste
// issues: whitespace, trailing punctuation, markdown artifacts.
func SanitizeURL(rawURL string) string {
	cleaned := strings.TrimSpace(rawURL)

	if matches := markdownLinkPattern.FindStringSubmatch(cleaned); len(matches) > 1 {
		cleaned = matches[1]
	}

	trailingChars := []string{",", ".", ")", "}", "]", "\"", "'", ">", ";"}
	for _, char := range trailingChars {
		cleaned = strings.TrimSuffix(cleaned, char)
	}

	leadingChars := []string{"(", "[", "<", "\"", "'"}
	for _, char := range leadingChars {
		cleaned = strings.TrimPrefix(cleaned, char)
	}

	return strings.TrimSpace(cleaned)
}

// ValidateTarget sanitizes and validates one analysis target, including the
// blocked-hostname gate for private and local addresses. It returns the
// cleaned URL or an error describing why the target is rejected.
func ValidateTarget(rawURL string) (string, error) {
	cleaned := SanitizeURL(rawURL)
	if cleaned == "" {
		return "", fmt.Errorf("empty URL")
	}
	if strings.Contains(cleaned, " ") {
		return "", fmt.Errorf("URL contains literal spaces (encode them as %%20): %s", cleaned)
	}
	if !urlPattern.MatchString(cleaned) {
		return "", fmt.Errorf("malformed URL: %s", cleaned)
	}

	parsed, err := url.Parse(cleaned)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme: %s", parsed.Scheme)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("URL has no host: %s", cleaned)
	}
	if strings.ContainsAny(parsed.Host, "{}[]<>\"'") {
		return "", fmt.Errorf("malformed host: %s", parsed.Host)
	}

	if IsBlockedHost(parsed.Hostname()) {
		return "", fmt.Errorf("blocked host: %s resolves to private or local infrastructure", parsed.Hostname())
	}

	return cleaned, nil
}

// IsBlockedHost reports whether a hostname points at private or local
// infrastructure: loopback, link-local, private ranges, or well-known
// internal names. Every fetch target passes through this gate first.
func IsBlockedHost(hostname string) bool {
	host := strings.ToLower(strings.TrimSuffix(hostname, "."))
	if host == "" {
		return true
	}

	if _, blocked := blockedHostnames[host]; blocked {
		return true
	}
	for _, suffix := range blockedHostSuffixes {
		if strings.HasSuffix(host, suffix) {
			return true
		}
	}

	if ip := net.ParseIP(host); ip != nil {
		return ip.IsLoopback() ||
			ip.IsPrivate() ||
			ip.IsLinkLocalUnicast() ||
			ip.IsLinkLocalMulticast() ||
			ip.IsUnspecified()
	}

	return false
}
