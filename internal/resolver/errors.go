package resolver

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCompatibleRelease means no release matches the category's loaders
	// and file suffix at all.
	ErrNoCompatibleRelease = errors.New("no compatible release")

	// ErrNoFallbackAvailable means no release lists the target version and
	// none supports only older versions.
	ErrNoFallbackAvailable = errors.New("no fallback release available")

	// ErrNoDownloadableFile means the chosen release has no files.
	ErrNoDownloadableFile = errors.New("release has no downloadable file")
)

// Error is a resolution failure for a single request. Reason is one of the
// sentinel errors above and can be tested with errors.Is.
type Error struct {
	Query  string
	Reason error
}

func (e *Error) Error() string {
	return fmt.Sprintf("resolve %q: %v", e.Query, e.Reason)
}

func (e *Error) Unwrap() error {
	return e.Reason
}
