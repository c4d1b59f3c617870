package bumpversion

import "errors"

var (
	// ErrNoMatch is returned when a template is malformed, a pattern cannot
	// be found in a file, or the changelog anchor is missing.
	ErrNoMatch = errors.New("no match")

	// ErrMultipleMatches is returned when a pattern matches a file more than once.
	ErrMultipleMatches = errors.New("multiple matches")

	// ErrUnknownKey is returned when a template placeholder names a key that
	// is missing from the pattern or replacement table.
	ErrUnknownKey = errors.New("unknown placeholder key")

	// ErrTypeMismatch is returned when the milestones API does not answer
	// with a JSON list.
	ErrTypeMismatch = errors.New("unexpected response type")

	// ErrNotFound is returned when no milestone exists for a version.
	ErrNotFound = errors.New("not found")

	// ErrInvalidVersion is returned for version strings that cannot be parsed.
	ErrInvalidVersion = errors.New("invalid version")

	// ErrDirtyFiles is returned by the clean check when target files have
	// uncommitted changes.
	ErrDirtyFiles = errors.New("uncommitted changes")
)
