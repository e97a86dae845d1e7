package model

import "strings"

// Category classifies a manifest entry and decides where its file lands,
// which loaders a release must declare and which file suffix is accepted.
//
// The set of categories is closed: Plugin, Datapack and Mod. The zero value
// is not a valid category; use Valid to check values coming from outside.
//
// Example:
//
//	cat, ok := model.CategoryFromHeader("[mods]")
//	// cat == model.CategoryMod, ok == true
//	cat.Dir()     // "mods"
//	cat.Suffix()  // ".jar"
type Category int

const (
	categoryUnknown Category = iota

	// CategoryPlugin is a server plugin placed under plugins/.
	CategoryPlugin

	// CategoryDatapack is a world datapack placed under datapacks/.
	CategoryDatapack

	// CategoryMod is a client/server mod placed under mods/.
	CategoryMod
)

type categoryInfo struct {
	name        string
	dir         string
	loaders     []string
	suffix      string
	projectType string
}

var categories = map[Category]categoryInfo{
	CategoryPlugin: {
		name:        "plugin",
		dir:         "plugins",
		loaders:     []string{"paper", "spigot", "purpur"},
		suffix:      ".jar",
		projectType: "plugin",
	},
	CategoryDatapack: {
		name:        "datapack",
		dir:         "datapacks",
		loaders:     []string{"datapack"},
		suffix:      ".zip",
		projectType: "datapack",
	},
	CategoryMod: {
		name:        "mod",
		dir:         "mods",
		loaders:     []string{"fabric", "quilt"},
		suffix:      ".jar",
		projectType: "mod",
	},
}

// Categories returns every known category in declaration order.
func Categories() []Category {
	return []Category{CategoryPlugin, CategoryDatapack, CategoryMod}
}

// CategoryFromHeader maps a manifest section header such as "[plugins]" to
// its category. Matching is case-insensitive and accepts both the singular
// and plural spelling. The brackets are optional.
func CategoryFromHeader(header string) (Category, bool) {
	name := strings.ToLower(strings.TrimSpace(header))
	name = strings.TrimSuffix(strings.TrimPrefix(name, "["), "]")
	name = strings.TrimSpace(name)
	for _, c := range Categories() {
		info := categories[c]
		if name == info.name || name == info.dir {
			return c, true
		}
	}
	return categoryUnknown, false
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categories[c]
	return ok
}

// String returns the singular lower-case name ("plugin", "datapack", "mod").
func (c Category) String() string {
	if info, ok := categories[c]; ok {
		return info.name
	}
	return "unknown"
}

// Dir returns the output directory name for the category.
func (c Category) Dir() string {
	return categories[c].dir
}

// Suffix returns the file name suffix a downloadable file must carry.
func (c Category) Suffix() string {
	return categories[c].suffix
}

// ProjectType returns the registry project type used to narrow searches.
func (c Category) ProjectType() string {
	return categories[c].projectType
}

// Loaders returns a copy of the accepted loader identifiers.
func (c Category) Loaders() []string {
	loaders := categories[c].loaders
	out := make([]string, len(loaders))
	copy(out, loaders)
	return out
}

// AcceptsLoader reports whether loader is in the category's accepted set.
func (c Category) AcceptsLoader(loader string) bool {
	for _, l := range categories[c].loaders {
		if l == loader {
			return true
		}
	}
	return false
}

// AcceptsFileName reports whether name ends with the category's suffix.
func (c Category) AcceptsFileName(name string) bool {
	suffix := categories[c].suffix
	return suffix != "" && strings.HasSuffix(name, suffix)
}
