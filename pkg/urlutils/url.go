// Package urlutils validates the URLs that end up in feed channels and items.
package urlutils

import "net/url"

// IsValidURL reports whether s parses as an absolute URL with a host.
func IsValidURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
