package errors

import (
	"strings"
	"unicode"
)

// MaxLabelLength bounds component labels accepted from documents and requests.
const MaxLabelLength = 64

// ValidateLabel validates a component label.
//
// The validation rules are intentionally conservative:
//   - No empty labels
//   - No control characters (labels are drawn on a single line)
//   - Maximum length of MaxLabelLength runes
func ValidateLabel(label string) error {
	if strings.TrimSpace(label) == "" {
		return New(ErrCodeInvalidInput, "component label cannot be empty")
	}

	if n := len([]rune(label)); n > MaxLabelLength {
		return New(ErrCodeInvalidInput, "component label too long (%d runes, max %d)", n, MaxLabelLength)
	}

	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "component label %q contains control characters", label)
		}
	}

	return nil
}

// MaxContainerSide bounds the container width and height of a render request.
// A larger frame would allocate an unreasonably large PNG.
const MaxContainerSide = 8192

// ValidateContainer validates a container size for rendering.
// Zero is allowed (it simply produces no geometry); negatives and oversized
// frames are rejected.
func ValidateContainer(width, height int) error {
	if width < 0 || height < 0 {
		return New(ErrCodeInvalidSize, "container size cannot be negative: %dx%d", width, height)
	}
	if width > MaxContainerSide || height > MaxContainerSide {
		return New(ErrCodeInvalidSize, "container size %dx%d exceeds %d pixels", width, height, MaxContainerSide)
	}
	return nil
}

// ValidateOutputPath validates a file path an artifact will be written to.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
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
