// ABOUTME: URL normalization for the catalog base URL
// ABOUTME: Trims whitespace and trailing slashes so paths can be appended verbatim

package httputil

import (
	"fmt"
	"net/url"
	"strings"
)

// NormalizeBaseURL trims surrounding whitespace and trailing slashes, so that
// "https://fakestoreapi.com/" + "/products" never produces a double slash.
func NormalizeBaseURL(baseURL string) string {
	return strings.TrimRight(strings.TrimSpace(baseURL), "/")
}

// ValidateBaseURL reports whether baseURL is an absolute http or https URL.
func ValidateBaseURL(baseURL string) error {
	u, err := url.Parse(NormalizeBaseURL(baseURL))
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid base URL %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid base URL %q: missing host", baseURL)
	}
	return nil
}
