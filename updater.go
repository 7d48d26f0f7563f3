package releasemanager

import (
	"context"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Updater is responsible for finding out whether a newer release than the running one is published.
type Updater struct {
	source     Source
	repository RepositorySlug
	current    *Release
	constraint *semver.Constraints
}

// NewUpdater creates a new updater instance.
// If you don't specify a source in the config object, GitHub will be used
func NewUpdater(config Config) (*Updater, error) {
	repository := NewRepositorySlug(config.Maintainer, config.Repository)
	if _, _, err := repository.GetSlug(); err != nil {
		return nil, err
	}

	var constraint *semver.Constraints
	if config.Constraint != "" {
		var err error
		constraint, err = semver.NewConstraint(config.Constraint)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrInvalidConstraint, config.Constraint, err)
		}
	}

	source := config.Source
	if source == nil {
		// default source is GitHub
		source, _ = NewGitHubSource(GitHubConfig{})
	}

	url := ReleaseTagURL(config.ReleaseURLTemplate, config.Maintainer, config.Repository, config.CurrentVersion)
	return &Updater{
		source:     source,
		repository: repository,
		current:    NewRelease(config.CurrentVersion, url, false),
		constraint: constraint,
	}, nil
}

// CurrentVersion returns the version label of the running application
func (up *Updater) CurrentVersion() string {
	return up.current.Version()
}

// CurrentRelease returns the release of the running application
func (up *Updater) CurrentRelease() *Release {
	return up.current
}

// NewerVersion returns the latest published release if it is strictly newer than the running one.
// Any failure to load the releases is logged and reported as no newer release.
func (up *Updater) NewerVersion(ctx context.Context) (*Release, bool) {
	result := up.Check(ctx)
	return result.Release, result.Found()
}

// Check loads the published releases and compares the latest one with the running release.
// It never returns an error: a failure to load the releases gives a StatusUnavailable result.
func (up *Updater) Check(ctx context.Context) CheckResult {
	rels, err := up.source.ListReleases(ctx, up.repository)
	if err != nil {
		log.Printf("Unable to get latest versions: %s", err)
		return CheckResult{Status: StatusUnavailable, Err: err}
	}

	latest := up.findLatest(rels)
	if latest == nil {
		log.Printf("No release published for %s", up.repository)
		return CheckResult{Status: StatusNotFound}
	}

	if !latest.GreaterThan(up.current) {
		log.Printf("%s is the newest version.", up.current)
		return CheckResult{Status: StatusNotFound}
	}
	log.Printf("Newer release is: %s", latest)
	return CheckResult{Status: StatusFound, Release: latest}
}
