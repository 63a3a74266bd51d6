package errors

import (
	"fmt"
	"unicode/utf8"
)

// ErrorType represents different types of errors that can occur
type ErrorType string

const (
	ErrorTypeNetwork     ErrorType = "network"
	ErrorTypeParsing     ErrorType = "parsing"
	ErrorTypeFilesystem  ErrorType = "filesystem"
	ErrorTypeNotFound    ErrorType = "not_found"
	ErrorTypeServerError ErrorType = "server_error"
	ErrorTypeUnknown     ErrorType = "unknown"
)

// Error represents a crawl error with type information
type Error struct {
	Type    ErrorType
	Message string
	Code    int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error (code %d): %s", e.Type, e.Code, e.Message)
}

// Truncate shortens an error message to at most n characters for the
// single-line console diagnostics. The cut lands on a rune boundary so
// multibyte characters are never split.
func Truncate(err error, n int) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if utf8.RuneCountInString(msg) <= n {
		return msg
	}
	return string([]rune(msg)[:n])
}
