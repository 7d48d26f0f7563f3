package cmd

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/eivindveg/go-releasemanager"
)

// SplitDomainSlug tries to make sense of the repository string
// and returns a domain name (if present) and a slug.
//
// Example of valid entries:
//
//   - "owner/name"
//   - "github.com/owner/name"
//   - "http://github.com/owner/name"
func SplitDomainSlug(repo string) (domain, slug string, err error) {
	// simple case first => only a slug
	parts := strings.Split(repo, "/")
	if len(parts) == 2 {
		if parts[0] == "" || parts[1] == "" {
			return "", "", fmt.Errorf("invalid slug or URL %q", repo)
		}
		return "", repo, nil
	}
	// trim trailing /
	repo = strings.TrimSuffix(repo, "/")

	if !strings.HasPrefix(repo, "http") && !strings.Contains(repo, "://") && !strings.HasPrefix(repo, "/") {
		// add missing scheme
		repo = "https://" + repo
	}

	repoURL, err := url.Parse(repo)
	if err != nil {
		return "", "", err
	}

	// make sure hostname looks like a real domain name
	if !strings.Contains(repoURL.Hostname(), ".") {
		return "", "", fmt.Errorf("invalid domain name %q", repoURL.Hostname())
	}
	domain = repoURL.Scheme + "://" + repoURL.Host
	slug = strings.TrimPrefix(repoURL.Path, "/")

	if strings.Count(slug, "/") != 1 || strings.HasPrefix(slug, "/") || strings.HasSuffix(slug, "/") {
		return "", "", fmt.Errorf("invalid URL %q", repo)
	}
	return domain, slug, nil
}

// GetSource returns the release source for the version control type.
// With "auto" the type is guessed from the domain name, GitHub being the default.
// The "http" type reads the releases from the URL template, and the manifest
// format is selected when the template ends with ".yaml" or ".yml".
func GetSource(cvsType, domain, urlTemplate string) (releasemanager.Source, error) {
	if cvsType == "" || cvsType == "auto" {
		cvsType = guessType(domain, urlTemplate)
	}

	switch cvsType {
	case "gitea":
		return releasemanager.NewGiteaSource(releasemanager.GiteaConfig{BaseURL: domain})

	case "gitlab":
		return releasemanager.NewGitLabSource(releasemanager.GitLabConfig{BaseURL: domain})

	case "http":
		config := releasemanager.HTTPConfig{URLTemplate: urlTemplate}
		if strings.HasSuffix(urlTemplate, ".yaml") || strings.HasSuffix(urlTemplate, ".yml") {
			config.Decoder = releasemanager.ManifestDecoder{}
		}
		return releasemanager.NewHTTPSource(config)

	case "github":
		return newGitHubSource(domain)

	default:
		return nil, fmt.Errorf("unknown version control type %q", cvsType)
	}
}

func guessType(domain, urlTemplate string) string {
	switch {
	case urlTemplate != "":
		return "http"
	case strings.Contains(domain, "gitea"):
		return "gitea"
	case strings.Contains(domain, "gitlab"):
		return "gitlab"
	default:
		return "github"
	}
}

func newGitHubSource(domain string) (*releasemanager.GitHubSource, error) {
	config := releasemanager.GitHubConfig{}
	if domain != "" && !strings.HasSuffix(domain, "://github.com") {
		config.EnterpriseBaseURL = domain
	}
	return releasemanager.NewGitHubSource(config)
}
