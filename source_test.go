package releasemanager

import (
	"context"
)

// MockSource is a Source in memory used for unit tests
type MockSource struct {
	releases []SourceRelease
	err      error
	calls    int
}

// NewMockSource instantiates a new MockSource
func NewMockSource(releases []SourceRelease, err error) *MockSource {
	return &MockSource{
		releases: releases,
		err:      err,
	}
}

// ListReleases returns the list of releases, or the error. repository parameter is only validated.
func (s *MockSource) ListReleases(ctx context.Context, repository Repository) ([]SourceRelease, error) {
	s.calls++
	if _, _, err := repository.GetSlug(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.releases, nil
}

// Verify interface
var _ Source = &MockSource{}

// mockReleases builds source releases from version labels
func mockReleases(versions ...string) []SourceRelease {
	releases := make([]SourceRelease, len(versions))
	for i, version := range versions {
		releases[i] = &ManifestRelease{
			TagName: version,
			URL:     "http://github.com/owner/repo/releases/tag/" + version,
		}
	}
	return releases
}
