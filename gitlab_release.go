package releasemanager

import (
	"github.com/xanzy/go-gitlab"
)

// GitLabRelease is a release loaded from GitLab. GitLab has no notion of pre-release.
// The client library doesn't expose the release page link, so GetURL returns
// the web page of the tagged commit instead.
type GitLabRelease struct {
	tagName string
	url     string
}

func NewGitLabRelease(from *gitlab.Release) *GitLabRelease {
	return &GitLabRelease{
		tagName: from.TagName,
		url:     from.Commit.WebURL,
	}
}

func (r *GitLabRelease) GetTagName() string {
	return r.tagName
}

func (r *GitLabRelease) GetURL() string {
	return r.url
}

func (r *GitLabRelease) GetPrerelease() bool {
	return false
}

// Verify interface
var _ SourceRelease = &GitLabRelease{}
