// Package resolver decides which release of a project to download for a
// requested target version.
//
// # Resolution Policy
//
// A release is eligible when it runs on one of the category's loaders and
// ships a file with the category's suffix. An eligible release that lists
// the target version verbatim always wins (first in catalog order). Without
// one, the resolver falls back to the release whose highest supported
// version is the greatest one strictly below the target:
//
//	res, err := resolver.Resolve(item, releases, "1.21.2")
//	if errors.Is(err, resolver.ErrNoFallbackAvailable) {
//	    // every eligible release targets 1.21.2 or newer without listing it
//	}
//	if res.IsFallback {
//	    fmt.Println("using build for", res.FallbackLabel)
//	}
//
// Releases that only support versions newer than the target are never used
// as fallbacks.
package resolver
