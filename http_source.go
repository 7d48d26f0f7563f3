package releasemanager

import (
	"context"
	"fmt"
)

// HTTPConfig is an object to pass to NewHTTPSource
type HTTPConfig struct {
	// URLTemplate is the URL of the list of releases, where {maintainer} and {repository} are replaced
	// by the repository slug. It defaults to DefaultReleasesAPIURL.
	URLTemplate string
	// Fetcher loads the body (default to an HTTPFetcher with default configuration)
	Fetcher Fetcher
	// Decoder reads the body (default to a JSONDecoder for the GitHub API response)
	Decoder Decoder
}

// HTTPSource loads the list of releases in one request and decodes it in one go
type HTTPSource struct {
	urlTemplate string
	fetcher     Fetcher
	decoder     Decoder
}

// NewHTTPSource creates a new HTTPSource from a config object.
func NewHTTPSource(config HTTPConfig) (*HTTPSource, error) {
	fetcher := config.Fetcher
	if fetcher == nil {
		fetcher = NewHTTPFetcher(HTTPFetcherConfig{})
	}
	decoder := config.Decoder
	if decoder == nil {
		var err error
		decoder, err = NewJSONDecoder()
		if err != nil {
			return nil, err
		}
	}
	return &HTTPSource{
		urlTemplate: config.URLTemplate,
		fetcher:     fetcher,
		decoder:     decoder,
	}, nil
}

// ListReleases returns all available releases
func (s *HTTPSource) ListReleases(ctx context.Context, repository Repository) ([]SourceRelease, error) {
	owner, repo, err := repository.GetSlug()
	if err != nil {
		return nil, err
	}

	uri := ReleasesAPIURL(s.urlTemplate, owner, repo)
	body, err := s.fetcher.Fetch(ctx, uri)
	if err != nil {
		log.Printf("Cannot load releases from %s: %s", uri, err)
		return nil, err
	}

	releases, err := s.decoder.Decode(body)
	if err != nil {
		return nil, fmt.Errorf("releases from %s: %w", uri, err)
	}
	return releases, nil
}

// Verify interface
var _ Source = &HTTPSource{}
