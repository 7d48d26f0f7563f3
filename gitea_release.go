package releasemanager

import (
	"code.gitea.io/sdk/gitea"
)

// GiteaRelease is a release loaded from a Gitea instance
type GiteaRelease struct {
	tagName    string
	url        string
	prerelease bool
}

func NewGiteaRelease(from *gitea.Release) *GiteaRelease {
	return &GiteaRelease{
		tagName:    from.TagName,
		url:        from.HTMLURL,
		prerelease: from.IsPrerelease,
	}
}

func (r *GiteaRelease) GetTagName() string {
	return r.tagName
}

func (r *GiteaRelease) GetURL() string {
	return r.url
}

func (r *GiteaRelease) GetPrerelease() bool {
	return r.prerelease
}

// Verify interface
var _ SourceRelease = &GiteaRelease{}
