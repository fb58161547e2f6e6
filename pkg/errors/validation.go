package errors

import (
	"strings"
	"unicode"
)

// ValidatePath validates a path given on the command line.
//
// Absolute paths and parent references are allowed here; the formatter only
// ever touches files the user named or that discovery found beneath them.
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 bytes
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d bytes)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidatePattern performs the cheap checks on a discovery glob pattern that
// the glob library does not: patterns are slash-separated and relative to the
// walk root.
func ValidatePattern(pattern string) error {
	if strings.TrimSpace(pattern) == "" {
		return New(ErrCodeInvalidPattern, "pattern cannot be empty")
	}
	if strings.HasPrefix(pattern, "/") {
		return New(ErrCodeInvalidPattern, "pattern %q must be relative", pattern)
	}
	if strings.Contains(pattern, "\\") {
		return New(ErrCodeInvalidPattern, "pattern %q must use forward slashes", pattern)
	}
	return nil
}
