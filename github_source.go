package releasemanager

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/google/go-github/v30/github"
	"golang.org/x/oauth2"
)

const githubPageSize = 100

// GitHubConfig is an object to pass to NewGitHubSource
type GitHubConfig struct {
	// APIToken represents GitHub API token. If it's not empty, it will be used for authentication of GitHub API
	APIToken string
	// EnterpriseBaseURL is a base URL of GitHub API. If you want to use this library with GitHub Enterprise,
	// please set "https://{your-organization-address}/api/v3/" to this field.
	EnterpriseBaseURL string
	// EnterpriseUploadURL is a URL to upload stuffs to GitHub Enterprise instance. This is often the same as an API base URL.
	// So if this field is not set and EnterpriseBaseURL is set, EnterpriseBaseURL is also set to this field.
	EnterpriseUploadURL string
	// HTTPClient used for unauthenticated calls (default to a client with a timeout)
	HTTPClient *http.Client
}

// GitHubSource is used to load release information from GitHub
type GitHubSource struct {
	api *github.Client
}

// NewGitHubSource creates a new GitHubSource from a config object.
// It initializes a GitHub API client.
// If you set your API token to the $GITHUB_TOKEN environment variable, the client will use it.
// You can pass an empty GitHubConfig{} to use the default configuration
// The function will return an error if the GitHub Enterprise URLs in the config object cannot be parsed
func NewGitHubSource(config GitHubConfig) (*GitHubSource, error) {
	token := config.APIToken
	if token == "" {
		// try the environment variable
		token = os.Getenv("GITHUB_TOKEN")
	}
	hc := newHTTPClient(token, config.HTTPClient)

	if config.EnterpriseBaseURL == "" {
		// public (or private) repository on standard GitHub offering
		return &GitHubSource{
			api: github.NewClient(hc),
		}, nil
	}

	u := config.EnterpriseUploadURL
	if u == "" {
		u = config.EnterpriseBaseURL
	}
	client, err := github.NewEnterpriseClient(config.EnterpriseBaseURL, u, hc)
	if err != nil {
		return nil, fmt.Errorf("cannot parse GitHub enterprise URL: %w", err)
	}
	return &GitHubSource{
		api: client,
	}, nil
}

// ListReleases returns all published releases. Drafts are skipped.
func (s *GitHubSource) ListReleases(ctx context.Context, repository Repository) ([]SourceRelease, error) {
	owner, repo, err := repository.GetSlug()
	if err != nil {
		return nil, err
	}

	releases := make([]SourceRelease, 0)
	opt := &github.ListOptions{PerPage: githubPageSize}
	for {
		rels, res, err := s.api.Repositories.ListReleases(ctx, owner, repo, opt)
		if err != nil {
			log.Printf("API returned an error response: %s", err)
			if res != nil && res.StatusCode == http.StatusNotFound {
				// a repository without release gives an empty list, not a 404
				return nil, fmt.Errorf("%w: repository %s/%s not found or not accessible: %w", ErrNetwork, owner, repo, err)
			}
			return nil, classifyError(err)
		}
		for _, rel := range rels {
			if rel.GetDraft() {
				log.Printf("Skip draft version %s", rel.GetTagName())
				continue
			}
			releases = append(releases, NewGitHubRelease(rel))
		}
		if res == nil || res.NextPage == 0 {
			break
		}
		opt.Page = res.NextPage
	}
	return releases, nil
}

func newHTTPClient(token string, client *http.Client) *http.Client {
	if client == nil {
		client = defaultHTTPClient()
	}
	if token == "" {
		return client
	}
	return &http.Client{
		Timeout: client.Timeout,
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
			Base:   client.Transport,
		},
	}
}

// classifyError tells apart a response that could not be decoded from a failure to reach the API.
func classifyError(err error) error {
	var syntaxError *json.SyntaxError
	var typeError *json.UnmarshalTypeError
	if errors.As(err, &syntaxError) || errors.As(err, &typeError) {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return fmt.Errorf("%w: %w", ErrNetwork, err)
}

// Verify interface
var _ Source = &GitHubSource{}
