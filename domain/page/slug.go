package page

import (
	"errors"
	"fmt"
	"strings"
)

// Delimiter separates the segments of a slug.
const Delimiter = "/"

// ErrInvalidSlug indicates a slug that cannot be split into non-empty segments.
var ErrInvalidSlug = errors.New("invalid slug")

// Segments splits a slug into its ordered path components.
// It fails with ErrInvalidSlug if the slug is empty, begins or ends with the
// delimiter, or contains an empty segment.
func Segments(slug string) ([]string, error) {
	if slug == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidSlug)
	}
	if strings.HasPrefix(slug, Delimiter) {
		return nil, fmt.Errorf("%w: %q starts with %q", ErrInvalidSlug, slug, Delimiter)
	}
	if strings.HasSuffix(slug, Delimiter) {
		return nil, fmt.Errorf("%w: %q ends with %q", ErrInvalidSlug, slug, Delimiter)
	}

	segments := strings.Split(slug, Delimiter)
	for _, seg := range segments {
		if seg == "" {
			return nil, fmt.Errorf("%w: %q contains an empty segment", ErrInvalidSlug, slug)
		}
	}
	return segments, nil
}

// JoinSegments is the inverse of Segments.
func JoinSegments(segments []string) string {
	return strings.Join(segments, Delimiter)
}

// ValidateSlug reports whether slug is well formed.
func ValidateSlug(slug string) error {
	_, err := Segments(slug)
	return err
}

// Parent returns the slug of the enclosing path, or "" for a top-level slug.
func Parent(slug string) string {
	i := strings.LastIndex(slug, Delimiter)
	if i < 0 {
		return ""
	}
	return slug[:i]
}
