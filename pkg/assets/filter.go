// Package assets classifies URLs against the downloadable file-type
// allow-list.
package assets

import (
	"net/url"
	"strings"
)

// DefaultExtension is the asset type the crawler collects.
const DefaultExtension = ".png"

// Filter decides whether a URL points at a downloadable asset.
type Filter struct {
	extension string
}

// NewFilter creates a filter for the given extension. The extension is
// matched case-insensitively and a missing leading dot is tolerated.
func NewFilter(extension string) *Filter {
	ext := strings.ToLower(strings.TrimSpace(extension))
	if ext == "" {
		ext = DefaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return &Filter{extension: ext}
}

// Extension returns the configured extension, with leading dot.
func (f *Filter) Extension() string {
	return f.extension
}

// IsEligible reports whether the URL's path ends with the configured
// extension. Pure classification, no I/O.
func (f *Filter) IsEligible(rawURL string) bool {
	path := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		path = u.Path
	}
	return strings.HasSuffix(strings.ToLower(path), f.extension)
}
