package model

import (
	"path/filepath"
	"testing"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"normal-file.jar", "normal-file.jar"},
		{"file:with:colons.jar", "file_with_colons.jar"},
		{"file<with>brackets.jar", "file_with_brackets.jar"},
		{"file/with\\slashes.jar", "file_with_slashes.jar"},
		{"file|with|pipes.jar", "file_with_pipes.jar"},
		{"file?with*wildcards.jar", "file_with_wildcards.jar"},
		{"[OD_1.21]tagged.jar", "[OD_1.21]tagged.jar"},
		{"trailing dots...", "trailing dots"},
		{"multiple   spaces", "multiple spaces"},
		{"trailing spaces   ", "trailing spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := sanitizeFileName(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCategoryFromHeader(t *testing.T) {
	tests := []struct {
		header string
		want   Category
		ok     bool
	}{
		{"[plugin]", CategoryPlugin, true},
		{"[plugins]", CategoryPlugin, true},
		{"[PLUGINS]", CategoryPlugin, true},
		{"[Datapack]", CategoryDatapack, true},
		{"[datapacks]", CategoryDatapack, true},
		{"[mod]", CategoryMod, true},
		{"[Mods]", CategoryMod, true},
		{"[shaders]", categoryUnknown, false},
		{"[]", categoryUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, ok := CategoryFromHeader(tt.header)
			if got != tt.want || ok != tt.ok {
				t.Errorf("CategoryFromHeader(%q) = (%v, %v), want (%v, %v)", tt.header, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestCategory_Attributes(t *testing.T) {
	tests := []struct {
		cat     Category
		dir     string
		suffix  string
		loader  string
		rejects string
	}{
		{CategoryPlugin, "plugins", ".jar", "paper", "fabric"},
		{CategoryDatapack, "datapacks", ".zip", "datapack", "paper"},
		{CategoryMod, "mods", ".jar", "quilt", "forge"},
	}

	for _, tt := range tests {
		t.Run(tt.cat.String(), func(t *testing.T) {
			if tt.cat.Dir() != tt.dir {
				t.Errorf("Dir() = %q, want %q", tt.cat.Dir(), tt.dir)
			}
			if tt.cat.Suffix() != tt.suffix {
				t.Errorf("Suffix() = %q, want %q", tt.cat.Suffix(), tt.suffix)
			}
			if !tt.cat.AcceptsLoader(tt.loader) {
				t.Errorf("AcceptsLoader(%q) = false, want true", tt.loader)
			}
			if tt.cat.AcceptsLoader(tt.rejects) {
				t.Errorf("AcceptsLoader(%q) = true, want false", tt.rejects)
			}
		})
	}

	loaders := CategoryPlugin.Loaders()
	loaders[0] = "mutated"
	if !CategoryPlugin.AcceptsLoader("paper") {
		t.Error("Loaders() must return a copy")
	}
}

func TestRequestItem_Destination(t *testing.T) {
	exact := Resolution{File: ReleaseFile{FileName: "foo-1.0.jar"}}
	fallback := Resolution{
		File:          ReleaseFile{FileName: "foo-0.9.jar"},
		IsFallback:    true,
		FallbackLabel: "1.21",
	}

	tests := []struct {
		name string
		item RequestItem
		res  Resolution
		want string
	}{
		{
			name: "no sub dir",
			item: RequestItem{Query: "Foo", Category: CategoryPlugin},
			res:  exact,
			want: filepath.Join("plugins", "foo-1.0.jar"),
		},
		{
			name: "with sub dir",
			item: RequestItem{Query: "Bar", Category: CategoryPlugin, SubDir: "extra"},
			res:  exact,
			want: filepath.Join("plugins", "extra", "foo-1.0.jar"),
		},
		{
			name: "nested sub dir",
			item: RequestItem{Query: "Bar", Category: CategoryDatapack, SubDir: "world/pack"},
			res:  exact,
			want: filepath.Join("datapacks", "world", "pack", "foo-1.0.jar"),
		},
		{
			name: "traversal dropped",
			item: RequestItem{Query: "Bar", Category: CategoryMod, SubDir: "../../etc"},
			res:  exact,
			want: filepath.Join("mods", "etc", "foo-1.0.jar"),
		},
		{
			name: "fallback tag",
			item: RequestItem{Query: "Foo", Category: CategoryMod},
			res:  fallback,
			want: filepath.Join("mods", "[OD_1.21]foo-0.9.jar"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.item.Destination(".", tt.res)
			if got != tt.want {
				t.Errorf("Destination() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReleaseRecord_HasGameVersion(t *testing.T) {
	rel := ReleaseRecord{GameVersions: []string{"1.20.1", "1.20.4"}}
	if !rel.HasGameVersion("1.20.4") {
		t.Error("HasGameVersion(1.20.4) = false, want true")
	}
	if rel.HasGameVersion("1.20") {
		t.Error("HasGameVersion must match verbatim, got true for 1.20")
	}
}
