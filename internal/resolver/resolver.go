package resolver

import (
	"github.com/handiism/modrinth-downloader/internal/model"
	"github.com/handiism/modrinth-downloader/internal/version"
)

// Resolve picks the release and file to download for item out of releases,
// for the given target version.
//
// The steps are:
//  1. Keep releases that declare at least one loader accepted by the item's
//     category and carry at least one file with the category's suffix.
//  2. If any of those lists target verbatim, the first one in catalog order
//     wins and the result is not a fallback.
//  3. Otherwise keep releases whose highest supported version is strictly
//     below target and pick the one with the greatest such maximum (first in
//     catalog order on ties). The result is a fallback labelled with that
//     maximum.
//  4. Within the chosen release pick the first file with the suffix, else the
//     first file.
//
// Releases whose maximum equals target without listing target itself (for
// example "1.21.0" against target "1.21") are not fallback candidates. This
// mirrors long-standing behavior and is kept on purpose.
//
// Failures are returned as *Error wrapping ErrNoCompatibleRelease,
// ErrNoFallbackAvailable or ErrNoDownloadableFile.
func Resolve(item model.RequestItem, releases []model.ReleaseRecord, target string) (model.Resolution, error) {
	eligible := filterEligible(item.Category, releases)
	if len(eligible) == 0 {
		return model.Resolution{}, &Error{Query: item.Query, Reason: ErrNoCompatibleRelease}
	}

	res, ok := exactMatch(eligible, target)
	if !ok {
		res, ok = fallbackMatch(eligible, target)
		if !ok {
			return model.Resolution{}, &Error{Query: item.Query, Reason: ErrNoFallbackAvailable}
		}
	}

	file, ok := selectFile(item.Category, res.Release)
	if !ok {
		return model.Resolution{}, &Error{Query: item.Query, Reason: ErrNoDownloadableFile}
	}
	res.File = file
	return res, nil
}

func filterEligible(cat model.Category, releases []model.ReleaseRecord) []model.ReleaseRecord {
	var out []model.ReleaseRecord
	for _, rel := range releases {
		if acceptsAnyLoader(cat, rel.Loaders) && hasSuffixFile(cat, rel.Files) {
			out = append(out, rel)
		}
	}
	return out
}

func acceptsAnyLoader(cat model.Category, loaders []string) bool {
	for _, l := range loaders {
		if cat.AcceptsLoader(l) {
			return true
		}
	}
	return false
}

func hasSuffixFile(cat model.Category, files []model.ReleaseFile) bool {
	for _, f := range files {
		if cat.AcceptsFileName(f.FileName) {
			return true
		}
	}
	return false
}

func exactMatch(eligible []model.ReleaseRecord, target string) (model.Resolution, bool) {
	for _, rel := range eligible {
		if rel.HasGameVersion(target) {
			return model.Resolution{Release: rel}, true
		}
	}
	return model.Resolution{}, false
}

func fallbackMatch(eligible []model.ReleaseRecord, target string) (model.Resolution, bool) {
	var (
		best    model.ReleaseRecord
		bestMax string
		found   bool
	)
	for _, rel := range eligible {
		maxSupported, ok := version.Max(rel.GameVersions)
		if !ok || !version.Less(maxSupported, target) {
			continue
		}
		if !found || version.Compare(maxSupported, bestMax) > 0 {
			best, bestMax, found = rel, maxSupported, true
		}
	}
	if !found {
		return model.Resolution{}, false
	}
	return model.Resolution{Release: best, IsFallback: true, FallbackLabel: bestMax}, true
}

func selectFile(cat model.Category, rel model.ReleaseRecord) (model.ReleaseFile, bool) {
	if len(rel.Files) == 0 {
		return model.ReleaseFile{}, false
	}
	for _, f := range rel.Files {
		if cat.AcceptsFileName(f.FileName) {
			return f, true
		}
	}
	return rel.Files[0], true
}
