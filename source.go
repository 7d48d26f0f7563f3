package releasemanager

import "context"

// SourceRelease is one release as published on the source platform
type SourceRelease interface {
	GetTagName() string
	GetURL() string
	GetPrerelease() bool
}

// Source interface to load the releases from (GitHubSource for example).
//
// ListReleases returns every known release, in no particular order. An empty list is not an error.
// Decoding is all or nothing: one malformed entry fails the whole call with ErrDecode,
// and transport failures are reported with ErrNetwork. Sources never retry.
type Source interface {
	ListReleases(ctx context.Context, repository Repository) ([]SourceRelease, error)
}
