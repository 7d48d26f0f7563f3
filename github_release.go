package releasemanager

import (
	"github.com/google/go-github/v30/github"
)

// GitHubRelease is a release loaded from the GitHub API
type GitHubRelease struct {
	tagName    string
	url        string
	draft      bool
	prerelease bool
}

func NewGitHubRelease(from *github.RepositoryRelease) *GitHubRelease {
	return &GitHubRelease{
		tagName:    from.GetTagName(),
		url:        from.GetHTMLURL(),
		draft:      from.GetDraft(),
		prerelease: from.GetPrerelease(),
	}
}

func (r *GitHubRelease) GetTagName() string {
	return r.tagName
}

func (r *GitHubRelease) GetURL() string {
	return r.url
}

func (r *GitHubRelease) GetDraft() bool {
	return r.draft
}

func (r *GitHubRelease) GetPrerelease() bool {
	return r.prerelease
}

// Verify interface
var _ SourceRelease = &GitHubRelease{}
