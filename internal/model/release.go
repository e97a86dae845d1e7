package model

// ReleaseRecord is one published release of a registry project.
//
// A release declares which target (game) versions it supports, which loaders
// it runs on, and carries one or more downloadable files. Records come from
// the registry and are treated as read-only by the resolver.
//
// Example:
//
//	rel := model.ReleaseRecord{
//	    Name:         "Sodium 0.5.8",
//	    Version:      "mc1.20.4-0.5.8",
//	    GameVersions: []string{"1.20.3", "1.20.4"},
//	    Loaders:      []string{"fabric", "quilt"},
//	    Files: []model.ReleaseFile{
//	        {URL: "https://cdn.modrinth.com/...", FileName: "sodium-0.5.8.jar", Primary: true},
//	    },
//	}
type ReleaseRecord struct {
	// Name is the human readable release title.
	Name string

	// Version is the release's own version label (not the game version).
	Version string

	// GameVersions lists the target versions the release declares support for,
	// in registry order.
	GameVersions []string

	// Loaders lists loader identifiers such as "fabric" or "paper".
	Loaders []string

	// Files lists the downloadable artifacts of the release.
	Files []ReleaseFile
}

// ReleaseFile is a single downloadable artifact of a release.
type ReleaseFile struct {
	// URL is where the file can be fetched from.
	URL string

	// FileName is the name the file is published under.
	FileName string

	// Primary marks the file the publisher flagged as the main artifact.
	Primary bool

	// SHA1 and SHA512 are lower-case hex digests when the registry provides them.
	SHA1   string
	SHA512 string
}

// HasGameVersion reports whether target appears verbatim in GameVersions.
func (r ReleaseRecord) HasGameVersion(target string) bool {
	for _, v := range r.GameVersions {
		if v == target {
			return true
		}
	}
	return false
}

// Resolution is the outcome of a successful compatibility resolution: the
// release that was picked, the file within it, and whether the pick was a
// fallback to an older target version.
//
// FallbackLabel is set if and only if IsFallback is true; it holds the
// highest target version the chosen release supports.
type Resolution struct {
	Release       ReleaseRecord
	File          ReleaseFile
	IsFallback    bool
	FallbackLabel string
}

// FileName returns the name the file should be written under. Fallback picks
// are prefixed with a bracketed tag naming the version they were built for,
// e.g. "[OD_1.21]sodium-0.6.0.jar".
func (r Resolution) FileName() string {
	name := sanitizeFileName(r.File.FileName)
	if r.IsFallback {
		return FallbackTag(r.FallbackLabel) + name
	}
	return name
}

// FallbackTag returns the file name prefix used for fallback downloads.
func FallbackTag(label string) string {
	return "[OD_" + label + "]"
}
