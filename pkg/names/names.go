// Package names derives filesystem-safe identifiers from scraped text.
// NormalizeFileName and SanitizeFolderName each guard a different path
// segment class and are never composed.
package names

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun  = regexp.MustCompile(`\s+`)
	forbiddenChars = regexp.MustCompile(`[\\/:*?"<>|]`)
)

// NormalizeFileName lowercases the input, drops leading and trailing
// whitespace and collapses every interior run of whitespace to a single
// hyphen. No other character class is touched; path-unsafe folder
// segments are the job of SanitizeFolderName.
func NormalizeFileName(name string) string {
	trimmed := strings.TrimSpace(strings.ToLower(name))
	return whitespaceRun.ReplaceAllString(trimmed, "-")
}

// SanitizeFolderName replaces each character that is invalid in a
// directory name (\ / : * ? " < > |) with a hyphen. Case and whitespace
// pass through unchanged.
func SanitizeFolderName(name string) string {
	return forbiddenChars.ReplaceAllString(name, "-")
}
