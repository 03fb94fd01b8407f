// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package urlutil normalizes URLs for display and deduplication.
package urlutil

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidURL is returned when the input is not an absolute URL with a
// scheme and host.
var ErrInvalidURL = errors.New("invalid URL")

// Normalize reduces an absolute URL to its registrable domain, defined here
// as the last two dot-separated labels of the host:
//
//	https://www.levistrauss.com/ → levistrauss.com
//
// Hosts with fewer than two labels are returned unchanged. Normalize does
// not consult the public suffix list and does not check reachability.
func Normalize(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidURL, raw, err)
	}
	if u.Scheme == "" || u.Hostname() == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}

	labels := strings.Split(u.Hostname(), ".")
	if len(labels) <= 2 {
		return u.Hostname(), nil
	}
	return strings.Join(labels[len(labels)-2:], "."), nil
}
