package releasemanager

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	yaml "gopkg.in/yaml.v3"
)

// Manifest is the list of releases published by a self-hosted update server
type Manifest struct {
	Releases []*ManifestRelease `yaml:"releases"`
}

// ManifestRelease is one release of a Manifest
type ManifestRelease struct {
	TagName    string `yaml:"tag_name"`
	URL        string `yaml:"url"`
	Prerelease bool   `yaml:"prerelease"`
}

func (r *ManifestRelease) GetTagName() string {
	return r.TagName
}

func (r *ManifestRelease) GetURL() string {
	return r.URL
}

func (r *ManifestRelease) GetPrerelease() bool {
	return r.Prerelease
}

var _ SourceRelease = &ManifestRelease{}

// ManifestDecoder decodes a YAML manifest
type ManifestDecoder struct{}

// Decode reads the manifest. Unknown fields and releases without tag are rejected.
func (ManifestDecoder) Decode(body []byte) ([]SourceRelease, error) {
	manifest := new(Manifest)
	decoder := yaml.NewDecoder(bytes.NewReader(body))
	decoder.KnownFields(true)
	// an empty document is an empty manifest
	if err := decoder.Decode(manifest); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	releases := make([]SourceRelease, len(manifest.Releases))
	for i, release := range manifest.Releases {
		if release == nil || release.TagName == "" {
			return nil, fmt.Errorf("%w: release #%d has no tag_name", ErrDecode, i+1)
		}
		releases[i] = release
	}
	return releases, nil
}

// Verify interface
var _ Decoder = ManifestDecoder{}
