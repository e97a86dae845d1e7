package dto

import (
	"fmt"

	"github.com/handiism/modrinth-downloader/internal/model"
)

// JSONVersion represents one entry of GET /project/{id}/version.
//
// The list fields are pointers so a field missing from the payload can be
// told apart from an empty list.
type JSONVersion struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	VersionNumber string      `json:"version_number"`
	GameVersions  *[]string   `json:"game_versions"`
	Loaders       *[]string   `json:"loaders"`
	Files         *[]JSONFile `json:"files"`
}

// JSONFile represents a downloadable file of a version.
type JSONFile struct {
	URL      string            `json:"url"`
	Filename string            `json:"filename"`
	Primary  bool              `json:"primary"`
	Hashes   map[string]string `json:"hashes"`
}

// ToRelease converts JSONVersion to a model.ReleaseRecord, rejecting
// payloads that lack a required field.
func (jv *JSONVersion) ToRelease() (model.ReleaseRecord, error) {
	label := jv.VersionNumber
	if label == "" {
		label = jv.ID
	}
	switch {
	case jv.GameVersions == nil:
		return model.ReleaseRecord{}, fmt.Errorf("version %q: missing game_versions", label)
	case jv.Loaders == nil:
		return model.ReleaseRecord{}, fmt.Errorf("version %q: missing loaders", label)
	case jv.Files == nil:
		return model.ReleaseRecord{}, fmt.Errorf("version %q: missing files", label)
	}

	rel := model.ReleaseRecord{
		Name:         jv.Name,
		Version:      jv.VersionNumber,
		GameVersions: append([]string(nil), (*jv.GameVersions)...),
		Loaders:      append([]string(nil), (*jv.Loaders)...),
	}
	for i, f := range *jv.Files {
		if f.URL == "" || f.Filename == "" {
			return model.ReleaseRecord{}, fmt.Errorf("version %q: file %d missing url or filename", label, i)
		}
		rel.Files = append(rel.Files, model.ReleaseFile{
			URL:      f.URL,
			FileName: f.Filename,
			Primary:  f.Primary,
			SHA1:     f.Hashes["sha1"],
			SHA512:   f.Hashes["sha512"],
		})
	}
	return rel, nil
}
