// Package manifest reads the plain-text list of projects to download.
//
// # Format
//
//	# comment
//	[plugins]
//	LuckPerms
//	---dir:optional
//	Chunky
//
//	[mods]
//	sodium
//
// Sections select the category, "---dir:" lines pick a sub-directory below
// the category directory until the next section header, and every other
// line is a project name or slug.
//
// # Usage
//
//	items, warnings, err := manifest.ParseFile("packlist.txt")
//	if errors.Is(err, manifest.ErrNotFound) {
//	    // fatal: nothing to do
//	}
//	for _, w := range warnings {
//	    fmt.Println("ignored", w)
//	}
package manifest
