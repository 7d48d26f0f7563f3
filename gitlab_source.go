package releasemanager

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/xanzy/go-gitlab"
)

const gitlabPageSize = 100

// GitLabConfig is an object to pass to NewGitLabSource
type GitLabConfig struct {
	// APIToken represents GitLab API token. If it's not empty, it will be used for authentication for the API
	APIToken string
	// BaseURL is a base URL of your private GitLab instance
	BaseURL string
	// HTTPClient used to call the API (default to a client with a timeout)
	HTTPClient *http.Client
}

// GitLabSource is used to load release information from GitLab
type GitLabSource struct {
	api *gitlab.Client
}

// NewGitLabSource creates a new GitLabSource from a config object.
// It initializes a GitLab API client.
// If you set your API token to the $GITLAB_TOKEN environment variable, the client will use it.
// You can pass an empty GitLabConfig{} to use the default configuration
// The function will return an error if the GitLab URL in the config object cannot be parsed
func NewGitLabSource(config GitLabConfig) (*GitLabSource, error) {
	token := config.APIToken
	if token == "" {
		// try the environment variable
		token = os.Getenv("GITLAB_TOKEN")
	}
	hc := config.HTTPClient
	if hc == nil {
		hc = defaultHTTPClient()
	}
	// sources never retry: a failed call simply means no update information
	option := []gitlab.ClientOptionFunc{
		gitlab.WithHTTPClient(hc),
		gitlab.WithCustomRetryMax(0),
	}
	if config.BaseURL != "" {
		option = append(option, gitlab.WithBaseURL(config.BaseURL))
	}
	client, err := gitlab.NewClient(token, option...)
	if err != nil {
		return nil, fmt.Errorf("cannot create GitLab client: %w", err)
	}
	return &GitLabSource{
		api: client,
	}, nil
}

// ListReleases returns all available releases.
// The repository can either be a slug or a numeric project ID.
func (s *GitLabSource) ListReleases(ctx context.Context, repository Repository) ([]SourceRelease, error) {
	pid, err := repository.Get()
	if err != nil {
		return nil, err
	}

	releases := make([]SourceRelease, 0)
	opt := &gitlab.ListReleasesOptions{ListOptions: gitlab.ListOptions{Page: 1, PerPage: gitlabPageSize}}
	for {
		rels, res, err := s.api.Releases.ListReleases(pid, opt, gitlab.WithContext(ctx))
		if err != nil {
			log.Printf("API returned an error response: %s", err)
			if res != nil && res.StatusCode == http.StatusNotFound {
				return nil, fmt.Errorf("%w: project %v not found or not accessible: %w", ErrNetwork, pid, err)
			}
			return nil, classifyError(err)
		}
		for _, rel := range rels {
			releases = append(releases, NewGitLabRelease(rel))
		}
		if res == nil || res.NextPage == 0 {
			break
		}
		opt.Page = res.NextPage
	}
	return releases, nil
}

// Verify interface
var _ Source = &GitLabSource{}
