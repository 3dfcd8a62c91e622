package query

import "github.com/google/uuid"

// CanView decides whether a caller may read a piece of content. Private
// content is visible to its author only; public content is visible to
// everyone, including anonymous callers (nil viewer).
func CanView(viewer *uuid.UUID, authorID uuid.UUID, isPrivate bool) bool {
	if !isPrivate {
		return true
	}
	if viewer == nil {
		return false
	}
	return *viewer == authorID
}
