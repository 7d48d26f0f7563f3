package releasemanager

import (
	"sort"
	"strings"
)

const (
	// DefaultReleasesAPIURL lists every release of a GitHub repository
	DefaultReleasesAPIURL = "https://api.github.com/repos/{maintainer}/{repository}/releases"
	// DefaultReleaseTagURL is the page of one tagged release on GitHub
	DefaultReleaseTagURL = "http://github.com/{maintainer}/{repository}/releases/tag/{version}"
)

// Release represents one published version of the application.
type Release struct {
	// URL is a URL to release page for browsing
	URL string
	// Prerelease is set to true for alpha, beta, snapshots or release candidates
	Prerelease bool
	// version is the parsed release label
	version Version
}

// NewRelease creates a release from its label, page URL and pre-release flag.
func NewRelease(version, url string, prerelease bool) *Release {
	return &Release{
		URL:        url,
		Prerelease: prerelease,
		version:    ParseVersion(version),
	}
}

func newReleaseFromSource(rel SourceRelease) *Release {
	return NewRelease(rel.GetTagName(), rel.GetURL(), rel.GetPrerelease())
}

// Version is the version string of the release
func (r *Release) Version() string {
	return r.version.String()
}

// ParsedVersion gives access to the parsed version of the release
func (r *Release) ParsedVersion() Version {
	return r.version
}

func (r *Release) String() string {
	return r.version.String() + " (" + r.URL + ")"
}

// Equal tests if two releases have the same version.
func (r *Release) Equal(other *Release) bool {
	return r.version.Equal(other.version)
}

// LessThan tests if one release is older than another one.
func (r *Release) LessThan(other *Release) bool {
	return r.version.LessThan(other.version)
}

// GreaterThan tests if one release is newer than another one.
func (r *Release) GreaterThan(other *Release) bool {
	return r.version.GreaterThan(other.version)
}

// SortReleases orders the releases newest first. Releases with the same version keep their relative order.
func SortReleases(releases []*Release) {
	sort.SliceStable(releases, func(i, j int) bool {
		return releases[i].GreaterThan(releases[j])
	})
}

// ReleasesAPIURL substitutes maintainer and repository into the template.
// An empty template falls back to DefaultReleasesAPIURL.
func ReleasesAPIURL(template, maintainer, repository string) string {
	if template == "" {
		template = DefaultReleasesAPIURL
	}
	return strings.NewReplacer(
		"{maintainer}", maintainer,
		"{repository}", repository,
	).Replace(template)
}

// ReleaseTagURL substitutes maintainer, repository and version into the template.
// Values are used verbatim, they are not URL-encoded.
// An empty template falls back to DefaultReleaseTagURL.
func ReleaseTagURL(template, maintainer, repository, version string) string {
	if template == "" {
		template = DefaultReleaseTagURL
	}
	return strings.NewReplacer(
		"{maintainer}", maintainer,
		"{repository}", repository,
		"{version}", version,
	).Replace(template)
}
