package releasemanager

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"code.gitea.io/sdk/gitea"
)

// giteaPageSize is the largest page a Gitea server returns by default
const giteaPageSize = 50

// GiteaConfig is an object to pass to NewGiteaSource
type GiteaConfig struct {
	// APIToken represents Gitea API token. If it's not empty, it will be used for authentication for the API
	APIToken string
	// BaseURL is a base URL of your gitea instance
	BaseURL string
	// HTTPClient used to call the API (default to a client with a timeout)
	HTTPClient *http.Client
}

// GiteaSource is used to load release information from Gitea
type GiteaSource struct {
	api *gitea.Client
}

// NewGiteaSource creates a new GiteaSource from a config object.
// It initializes a Gitea API Client.
// If you set your API token to the $GITEA_TOKEN environment variable, the client will use it.
func NewGiteaSource(config GiteaConfig) (*GiteaSource, error) {
	token := config.APIToken
	if token == "" {
		// try the environment variable
		token = os.Getenv("GITEA_TOKEN")
	}
	if config.BaseURL == "" {
		return nil, fmt.Errorf("gitea base url must be set")
	}
	hc := config.HTTPClient
	if hc == nil {
		hc = defaultHTTPClient()
	}

	client, err := gitea.NewClient(config.BaseURL, gitea.SetToken(token), gitea.SetHTTPClient(hc))
	if err != nil {
		return nil, fmt.Errorf("error connecting to gitea: %w", err)
	}

	return &GiteaSource{
		api: client,
	}, nil
}

// ListReleases returns all available releases. Drafts are skipped.
func (s *GiteaSource) ListReleases(ctx context.Context, repository Repository) ([]SourceRelease, error) {
	owner, repo, err := repository.GetSlug()
	if err != nil {
		return nil, err
	}

	s.api.SetContext(ctx)
	releases := make([]SourceRelease, 0)
	opt := gitea.ListReleasesOptions{ListOptions: gitea.ListOptions{Page: 1, PageSize: giteaPageSize}}
	for {
		rels, res, err := s.api.ListReleases(owner, repo, opt)
		if err != nil {
			log.Printf("API returned an error response: %s", err)
			if res != nil && res.StatusCode == http.StatusNotFound {
				return nil, fmt.Errorf("%w: repository %s/%s not found or not accessible: %w", ErrNetwork, owner, repo, err)
			}
			return nil, classifyError(err)
		}
		// the server may cap the page size below ours: only an empty page ends the list
		if len(rels) == 0 {
			break
		}
		for _, rel := range rels {
			if rel.IsDraft {
				log.Printf("Skip draft version %s", rel.TagName)
				continue
			}
			releases = append(releases, NewGiteaRelease(rel))
		}
		opt.Page++
	}
	return releases, nil
}

// Verify interface
var _ Source = &GiteaSource{}
