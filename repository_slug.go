package releasemanager

import (
	"strings"
)

// RepositorySlug is the maintainer and name of a repository
type RepositorySlug struct {
	owner string
	repo  string
}

var _ Repository = RepositorySlug{}

// ParseSlug reads an "owner/repo" string. The separator can also be URL-encoded ("owner%2Frepo").
// An invalid slug only reports its error from GetSlug and Get.
func ParseSlug(slug string) RepositorySlug {
	slug = strings.ReplaceAll(slug, "%2F", "/")
	owner, repo, ok := strings.Cut(slug, "/")
	if !ok || strings.Contains(repo, "/") {
		return RepositorySlug{}
	}
	return NewRepositorySlug(owner, repo)
}

// NewRepositorySlug creates a RepositorySlug from maintainer and repository names
func NewRepositorySlug(owner, repo string) RepositorySlug {
	return RepositorySlug{
		owner: owner,
		repo:  repo,
	}
}

// GetSlug returns the maintainer and repository names, with an error when any of them is missing.
func (r RepositorySlug) GetSlug() (string, string, error) {
	switch {
	case r.owner == "" && r.repo == "":
		return "", "", ErrInvalidSlug
	case r.owner == "":
		return r.owner, r.repo, ErrIncorrectParameterOwner
	case r.repo == "":
		return r.owner, r.repo, ErrIncorrectParameterRepo
	}
	return r.owner, r.repo, nil
}

// Get returns the "owner/repo" string
func (r RepositorySlug) Get() (interface{}, error) {
	if _, _, err := r.GetSlug(); err != nil {
		return "", err
	}
	return r.String(), nil
}

func (r RepositorySlug) String() string {
	return r.owner + "/" + r.repo
}
