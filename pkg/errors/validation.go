package errors

import (
	"slices"
	"strings"
	"unicode"
)

// maxWidgetIDLength bounds widget ids read from scene files.
const maxWidgetIDLength = 256

// ValidateWidgetID validates a widget id read from a scene file.
// Ids end up in DOT output and terminal tables, so control characters,
// quotes and the arrow used in edge labels are rejected.
func ValidateWidgetID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidWidgetID, "widget id cannot be empty")
	}

	if len(id) > maxWidgetIDLength {
		return New(ErrCodeInvalidWidgetID, "widget id too long (max %d characters)", maxWidgetIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidWidgetID, "widget id contains invalid control characters")
		}
	}

	for _, pattern := range []string{`"`, "->", "\\"} {
		if strings.Contains(id, pattern) {
			return New(ErrCodeInvalidWidgetID, "widget id contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateFormat checks that format is one of allowed (case-sensitive).
func ValidateFormat(format string, allowed ...string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if !slices.Contains(allowed, format) {
		return New(ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", format, strings.Join(allowed, ", "))
	}
	return nil
}

// ValidatePath validates an output path given on the command line.
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
