package download

import "errors"

// Failure kinds. Every per-item error returned in an Outcome wraps exactly
// one of the per-item sentinels, so callers can classify with errors.Is.
var (
	// ErrManifest marks a manifest that is missing or unreadable. It is the
	// only fatal kind and is raised before any item runs.
	ErrManifest = errors.New("manifest error")

	// ErrLookup marks a search or version listing that found nothing or failed.
	ErrLookup = errors.New("lookup failed")

	// ErrResolution marks an item with no compatible release or file.
	ErrResolution = errors.New("resolution failed")

	// ErrTransport marks a fetch or placement that failed.
	ErrTransport = errors.New("transport failed")
)

// errProjectNotFound is wrapped with ErrLookup when the registry has no
// project for a query.
var errProjectNotFound = errors.New("project not found")

// errNoReleases is wrapped with ErrLookup when a project lists no releases.
var errNoReleases = errors.New("project has no releases")
