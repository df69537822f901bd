package errors

import (
	"net/url"
	"unicode"
)

// ValidateURL checks that rawURL is an absolute http or https URL with a host.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return Wrap(ErrCodeInvalidInput, err, "parse URL %q", rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return New(ErrCodeInvalidInput, "URL %q must use http or https", rawURL)
	}
	if u.Host == "" {
		return New(ErrCodeInvalidInput, "URL %q has no host", rawURL)
	}
	return nil
}

// ValidateIdentifier validates an item identifier read from an untrusted
// source (snapshot files, API requests).
//
// Identifiers must be non-empty, at most 256 characters and free of control
// characters. Any other string is accepted; identifiers are compared byte
// for byte.
func ValidateIdentifier(id string) error {
	if id == "" {
		return New(ErrCodeInvalidSnapshot, "identifier cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidSnapshot, "identifier too long (max 256 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidSnapshot, "identifier %q contains control characters", id)
		}
	}

	return nil
}

// ValidateColumns validates a grid column count.
func ValidateColumns(columns int) error {
	if columns <= 0 {
		return New(ErrCodeInvalidGrid, "column count must be positive, got %d", columns)
	}
	return nil
}

// ValidateTile validates a tile footprint against a grid column count.
func ValidateTile(width, height, columns int) error {
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidTile, "tile %dx%d must have positive dimensions", width, height)
	}
	if width > columns {
		return New(ErrCodeInvalidTile, "tile width %d exceeds %d columns", width, columns)
	}
	return nil
}
