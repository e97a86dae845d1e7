// Package model defines the core data structures used throughout
// the modrinth-downloader application.
//
// # Category
//
// Category is the closed set of manifest sections (plugin, datapack, mod).
// Each category fixes its output directory, accepted loaders and file suffix:
//
//	model.CategoryMod.Dir()                   // "mods"
//	model.CategoryMod.AcceptsLoader("fabric") // true
//	model.CategoryDatapack.Suffix()           // ".zip"
//
// # RequestItem
//
// RequestItem is one manifest line, tagged with its category and the
// sub-directory that was active when it was read:
//
//	item := model.RequestItem{Query: "sodium", Category: model.CategoryMod}
//
// # Releases and Resolution
//
// ReleaseRecord and ReleaseFile mirror what the registry publishes for a
// project. A Resolution names the release and file picked for an item and
// whether the pick is a fallback. Destination paths are computed from both:
//
//	path := item.Destination(".", resolution)
//	// "mods/sodium-0.5.8.jar" or "mods/[OD_1.20.4]sodium-0.5.8.jar"
package model
