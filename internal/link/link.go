// Package link finds YouTube video references in chat messages.
package link

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidLink is returned when a message mentions YouTube but carries no video id.
var ErrInvalidLink = errors.New("invalid youtube link")

var (
	domains = []string{"youtube.com", "youtu.be"}

	// An id follows "v=" or a slash and is exactly 11 characters long.
	reVideoID = regexp.MustCompile(`(?:v=|/)([a-zA-Z0-9_-]{11})(?:[^a-zA-Z0-9_-]|$)`)
	reID      = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)
)

// Reference points at a single video.
type Reference struct {
	ID  string
	URL string
}

// ContainsVideoDomain reports whether text mentions a YouTube domain.
func ContainsVideoDomain(text string) bool {
	lower := strings.ToLower(text)
	for _, d := range domains {
		if strings.Contains(lower, d) {
			return true
		}
	}
	return false
}

// Extract returns the first video reference found in text.
func Extract(text string) (Reference, error) {
	m := reVideoID.FindStringSubmatch(text)
	if m == nil {
		return Reference{}, ErrInvalidLink
	}
	return NewReference(m[1])
}

// NewReference builds the canonical watch URL for id.
func NewReference(id string) (Reference, error) {
	if !reID.MatchString(id) {
		return Reference{}, ErrInvalidLink
	}
	return Reference{
		ID:  id,
		URL: "https://www.youtube.com/watch?v=" + id,
	}, nil
}
